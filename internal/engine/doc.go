// Package engine implements the reconciliation engine: one playlist fetch
// followed by one full pass that mirrors the parse into the pointer file
// tree. The pass is idempotent, resumable under a per-run item quota, and
// guarded against empty or corrupt downloads wiping existing output.
package engine
