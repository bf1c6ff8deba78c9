package emby

import (
	"path/filepath"
	"strings"

	"strmsync/internal/config"
)

type mapping struct {
	containerRoot string
	hostRoot      string
}

// PathMapper rewrites container paths into the paths the indexing service
// sees on its host, one override per content root. Paths outside every
// configured root pass through unchanged.
type PathMapper struct {
	mappings []mapping
}

// NewPathMapper builds the mapper from the configured overrides.
func NewPathMapper(cfg *config.Config) *PathMapper {
	var mappings []mapping
	add := func(containerRoot, hostRoot string) {
		if strings.TrimSpace(containerRoot) != "" && strings.TrimSpace(hostRoot) != "" {
			mappings = append(mappings, mapping{containerRoot: containerRoot, hostRoot: hostRoot})
		}
	}
	if cfg != nil {
		add(cfg.Library.MoviesDir, cfg.Emby.MoviesPath)
		add(cfg.Library.SeriesDir, cfg.Emby.SeriesPath)
		add(cfg.Library.LiveTVDir, cfg.Emby.LiveTVPath)
	}
	return &PathMapper{mappings: mappings}
}

// Map converts a container path to the indexer's view of it.
func (m *PathMapper) Map(path string) string {
	if m == nil {
		return path
	}
	for _, mp := range m.mappings {
		if path == mp.containerRoot {
			return mp.hostRoot
		}
		prefix := mp.containerRoot + string(filepath.Separator)
		if strings.HasPrefix(path, prefix) {
			return filepath.Join(mp.hostRoot, strings.TrimPrefix(path, prefix))
		}
	}
	return path
}
