package engine

import (
	"context"

	"strmsync/internal/library"
	"strmsync/internal/logging"
)

// sweepOrphans removes pointer files no longer present in the source playlist
// and optionally prunes directories left without pointers. Callers have
// already applied the empty-playlist guard; this adds a second guard for
// quota-truncated runs, whose processed sets do not reflect the full
// playlist.
func (e *Engine) sweepOrphans(ctx context.Context, state *runState, summary *Summary) {
	if !e.cfg.Sync.RemoveOrphans && !e.cfg.Sync.RemoveEmptyDirs {
		return
	}
	if summary.Deferred() > 0 {
		e.logger.Warn("quota deferred items this run; skipping orphan cleanup",
			logging.Args(logging.Int("deferred", summary.Deferred()))...)
		return
	}

	roots := []struct {
		root      string
		processed map[string]struct{}
	}{
		{e.cfg.Library.MoviesDir, state.processedMovies},
		{e.cfg.Library.SeriesDir, state.processedSeries},
	}

	for _, r := range roots {
		if e.cfg.Sync.RemoveOrphans {
			existing, err := library.ListPointers(r.root)
			if err != nil {
				e.logger.Warn("orphan scan failed", logging.Args(
					logging.String("root", r.root), logging.Error(err))...)
				continue
			}
			for _, path := range library.Orphans(existing, r.processed) {
				e.dispatch.removed(ctx, path)
				if err := library.Remove(path); err != nil {
					summary.IOSkipped++
					e.logger.Warn("orphan removal failed", logging.Args(
						logging.String("path", path), logging.Error(err))...)
					continue
				}
				summary.OrphansRemoved++
				e.logger.Info("orphan removed", logging.Args(logging.String("path", path))...)
			}
		}

		if e.cfg.Sync.RemoveEmptyDirs {
			pruned, err := library.PruneEmptyDirs(r.root)
			if err != nil {
				e.logger.Warn("directory pruning failed", logging.Args(
					logging.String("root", r.root), logging.Error(err))...)
			}
			summary.PrunedDirs += pruned
		}
	}
}
