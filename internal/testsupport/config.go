// Package testsupport provides shared fixtures for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"strmsync/internal/config"
)

// NewConfig returns a validated config rooted in per-test temporary
// directories.
func NewConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()

	cfg := config.Default()
	cfg.Source.URL = "http://provider.example/playlist.m3u"
	cfg.Library.MoviesDir = filepath.Join(root, "movies")
	cfg.Library.SeriesDir = filepath.Join(root, "series")
	cfg.Library.LiveTVDir = filepath.Join(root, "livetv")
	cfg.State.Dir = filepath.Join(root, "state")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}
