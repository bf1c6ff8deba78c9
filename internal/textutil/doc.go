// Package textutil provides small string helpers shared across the sync
// pipeline, primarily filename sanitization for pointer files.
package textutil
