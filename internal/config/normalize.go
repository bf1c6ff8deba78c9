package config

import (
	"fmt"
	"strings"
)

// normalize expands filesystem paths and canonicalizes country code sets.
func (c *Config) normalize() error {
	paths := []*string{
		&c.Library.MoviesDir,
		&c.Library.SeriesDir,
		&c.Library.LiveTVDir,
		&c.State.Dir,
		&c.Source.CachePath,
	}
	for _, field := range paths {
		if strings.TrimSpace(*field) == "" {
			*field = ""
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Source.URL = strings.TrimSpace(c.Source.URL)
	c.Emby.URL = strings.TrimRight(strings.TrimSpace(c.Emby.URL), "/")
	c.Emby.APIKey = strings.TrimSpace(c.Emby.APIKey)

	var err error
	if c.Filter.IncludeCountries, err = normalizeCountries(c.Filter.IncludeCountries); err != nil {
		return err
	}
	if c.Filter.ExcludeCountries, err = normalizeCountries(c.Filter.ExcludeCountries); err != nil {
		return err
	}
	return nil
}

func normalizeCountries(codes []string) ([]string, error) {
	out := make([]string, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, raw := range codes {
		// Comma-separated values inside a single entry are tolerated so the
		// sample's "US,GB" form round-trips.
		for _, part := range strings.Split(raw, ",") {
			code := strings.ToUpper(strings.TrimSpace(part))
			if code == "" {
				continue
			}
			if len(code) != 2 {
				return nil, fmt.Errorf("country code %q must be exactly two letters", part)
			}
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, code)
		}
	}
	return out, nil
}
