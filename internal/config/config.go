package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Source describes where the playlist comes from and how downloads are cached.
type Source struct {
	URL            string `toml:"url"`
	CachePath      string `toml:"cache_path"`
	CacheHours     int    `toml:"cache_hours"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Library holds the content root directories the pointer tree is written to.
type Library struct {
	MoviesDir string `toml:"movies_dir"`
	SeriesDir string `toml:"series_dir"`
	LiveTVDir string `toml:"livetv_dir"`
}

// Sync controls reconciliation behavior.
type Sync struct {
	// RunQuota bounds how many movie+series items a single run may create or
	// update. 0 means unlimited.
	RunQuota        int  `toml:"run_quota"`
	RemoveOrphans   bool `toml:"remove_orphans"`
	RemoveEmptyDirs bool `toml:"remove_empty_dirs"`
}

// Filter holds live TV country filtering sets. A non-empty include set fully
// overrides the exclude set.
type Filter struct {
	IncludeCountries []string `toml:"include_countries"`
	ExcludeCountries []string `toml:"exclude_countries"`
}

// Emby contains settings for the media indexing service, including the
// container-to-host path overrides applied to every path sent to it.
type Emby struct {
	URL            string `toml:"url"`
	APIKey         string `toml:"api_key"`
	MoviesPath     string `toml:"movies_path"`
	SeriesPath     string `toml:"series_path"`
	LiveTVPath     string `toml:"livetv_path"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Logging contains log output settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// State locates the working directory used for the lock file, the run history
// database, and the playlist download cache.
type State struct {
	Dir string `toml:"dir"`
}

// Config encapsulates all configuration values for strmsync.
//
// Sections by subsystem:
//   - Source: playlist URL, download cache and timeout
//   - Library: movies/series/livetv content roots
//   - Sync: per-run quota, orphan removal, empty directory pruning
//   - Filter: live TV country include/exclude sets
//   - Emby: indexing service endpoint, token and path mapping
//   - Logging: log format and level
//   - State: lock file, history database and cache location
type Config struct {
	Source  Source  `toml:"source"`
	Library Library `toml:"library"`
	Sync    Sync    `toml:"sync"`
	Filter  Filter  `toml:"filter"`
	Emby    Emby    `toml:"emby"`
	Logging Logging `toml:"logging"`
	State   State   `toml:"state"`
}

// DefaultConfigPath returns the absolute path of the default config location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/strmsync/config.toml")
}

// Load locates, parses, normalizes and validates a configuration file. The
// returned config has all path fields expanded and country codes uppercased.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("strmsync.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories a run needs. Content roots are
// created on a best-effort basis so a run can start while external storage is
// temporarily unavailable; the fetch failure surfaces the real problem.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.State.Dir, 0o755); err != nil {
		return fmt.Errorf("create state directory %q: %w", c.State.Dir, err)
	}
	for _, dir := range []string{c.Library.MoviesDir, c.Library.SeriesDir, c.Library.LiveTVDir} {
		if strings.TrimSpace(dir) != "" {
			_ = os.MkdirAll(dir, 0o755)
		}
	}
	return nil
}

// LockPath returns the daemon lock file location.
func (c *Config) LockPath() string {
	return filepath.Join(c.State.Dir, "strmsync.lock")
}

// HistoryDBPath returns the run history database location.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.State.Dir, "history.db")
}

// PlaylistCachePath returns the playlist download cache location, honoring an
// explicit override from [source].
func (c *Config) PlaylistCachePath() string {
	if strings.TrimSpace(c.Source.CachePath) != "" {
		return c.Source.CachePath
	}
	return filepath.Join(c.State.Dir, "playlist.m3u")
}

// EmbyConfigured reports whether indexer notifications are enabled.
func (c *Config) EmbyConfigured() bool {
	return strings.TrimSpace(c.Emby.URL) != "" && strings.TrimSpace(c.Emby.APIKey) != ""
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
