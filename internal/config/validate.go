package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateSource(); err != nil {
		return err
	}
	if err := c.validateLibrary(); err != nil {
		return err
	}
	if err := c.validateSync(); err != nil {
		return err
	}
	if err := c.validateEmby(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSource() error {
	if c.Source.URL == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/strmsync/config.toml"
		}
		return fmt.Errorf("source.url is required. Edit %s (create with 'strmsync config init')", defaultPath)
	}
	parsed, err := url.Parse(c.Source.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("source.url %q is not a valid URL", c.Source.URL)
	}
	if c.Source.CacheHours < 0 {
		return errors.New("source.cache_hours must not be negative")
	}
	if c.Source.TimeoutSeconds <= 0 {
		return errors.New("source.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLibrary() error {
	if c.Library.MoviesDir == "" {
		return errors.New("library.movies_dir must be set")
	}
	if c.Library.SeriesDir == "" {
		return errors.New("library.series_dir must be set")
	}
	if c.Library.LiveTVDir == "" {
		return errors.New("library.livetv_dir must be set")
	}
	return nil
}

func (c *Config) validateSync() error {
	if c.Sync.RunQuota < 0 {
		return errors.New("sync.run_quota must not be negative")
	}
	return nil
}

func (c *Config) validateEmby() error {
	if c.Emby.URL == "" && c.Emby.APIKey == "" {
		return nil
	}
	if c.Emby.URL == "" || c.Emby.APIKey == "" {
		return errors.New("emby.url and emby.api_key must both be set to enable notifications")
	}
	if c.Emby.TimeoutSeconds <= 0 {
		return errors.New("emby.timeout_seconds must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}
