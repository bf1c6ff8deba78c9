// Package history records run summaries in a local SQLite database so
// operators can inspect how recent syncs behaved without trawling logs.
package history
