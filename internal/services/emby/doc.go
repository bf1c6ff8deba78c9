// Package emby talks to an Emby-compatible media indexing service: item
// lookup by path, per-item refresh, recursive library-path refresh, and item
// deletion. Container-to-host path overrides are applied to every path sent.
// When no server is configured a noop implementation is used, so callers
// never branch on configuration.
package emby
