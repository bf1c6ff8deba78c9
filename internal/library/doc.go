// Package library owns the on-disk pointer file tree: resolving a stable
// file identity for each stream (including duplicate "same title, different
// stream" versions), deciding between create, in-place update and no-op, and
// sweeping orphaned pointers left behind by a changed playlist.
package library
