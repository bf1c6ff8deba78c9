// Package title normalizes raw playlist display titles into stable,
// filesystem-safe identities. Normalization is an ordered chain of pure
// transformation rules; the same raw title always yields the same canonical
// title, which is what keeps repeated syncs idempotent.
package title
