package engine

import (
	"path/filepath"
	"strings"

	"strmsync/internal/fileutil"
	"strmsync/internal/logging"
	"strmsync/internal/playlist"
)

const liveTVFileName = "livetv.m3u"

// writeLiveTV rewrites the aggregated live TV playlist from the filtered
// pass-through pairs. The file is rewritten in full every run, so entries
// dropped by the filter or the source disappear from it.
func (e *Engine) writeLiveTV(entries []playlist.Entry, summary *Summary) {
	pairs := make([]string, 0, len(entries))
	for _, entry := range entries {
		pairs = append(pairs, entry.Raw)
	}
	content := strings.Join(pairs, "\n")
	if content != "" {
		content += "\n"
	}

	path := filepath.Join(e.cfg.Library.LiveTVDir, liveTVFileName)
	if err := fileutil.WriteText(path, content); err != nil {
		summary.IOSkipped++
		e.logger.Warn("live TV playlist write failed", logging.Args(
			logging.String("path", path), logging.Error(err))...)
		return
	}
	e.logger.Debug("live TV playlist written", logging.Args(
		logging.String("path", path), logging.Int("channels", len(entries)))...)
}
