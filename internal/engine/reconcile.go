package engine

import (
	"context"
	"path/filepath"

	"strmsync/internal/library"
	"strmsync/internal/logging"
	"strmsync/internal/playlist"
	"strmsync/internal/title"
)

// destination is the resolved target for one item: the directory the pointer
// file lives in and the base name the identity rules apply to.
type destination struct {
	dir  string
	base string
}

func (e *Engine) reconcileMovies(ctx context.Context, entries []playlist.Entry, state *runState, summary *Summary) {
	summary.DeferredMovies = e.reconcile(ctx, entries, state, state.processedMovies, summary,
		func(entry playlist.Entry) (destination, error) {
			name, err := title.Movie(entry.RawTitle)
			if err != nil {
				return destination{}, err
			}
			return destination{
				dir:  filepath.Join(e.cfg.Library.MoviesDir, name),
				base: name,
			}, nil
		})
}

func (e *Engine) reconcileSeries(ctx context.Context, entries []playlist.Entry, state *runState, summary *Summary) {
	summary.DeferredSeries = e.reconcile(ctx, entries, state, state.processedSeries, summary,
		func(entry playlist.Entry) (destination, error) {
			name, err := title.Series(entry.RawTitle)
			if err != nil {
				return destination{}, err
			}
			season, episode := title.SeasonEpisode(entry.RawTitle)
			return destination{
				dir:  filepath.Join(e.cfg.Library.SeriesDir, name, season),
				base: episode,
			}, nil
		})
}

// reconcile walks one category in playlist order, resolving each entry's
// destination and applying the write decision. It returns the number of
// entries deferred by quota exhaustion; once the quota is spent, every
// remaining entry is deferred without any identity resolution so the next
// run re-attempts them in the same order.
func (e *Engine) reconcile(
	ctx context.Context,
	entries []playlist.Entry,
	state *runState,
	processed map[string]struct{},
	summary *Summary,
	resolve func(playlist.Entry) (destination, error),
) int {
	deferred := 0
	for _, entry := range entries {
		if state.exhausted() {
			deferred++
			continue
		}

		dest, err := resolve(entry)
		if err != nil {
			summary.TitleSkipped++
			e.logger.Warn("entry skipped: unusable title", logging.Args(
				logging.String("raw_title", entry.RawTitle),
				logging.Error(err))...)
			continue
		}

		path, outcome, err := library.WritePointer(dest.dir, dest.base, library.ContentID(entry.StreamURL), entry.StreamURL)
		if err != nil {
			summary.IOSkipped++
			e.logger.Warn("entry skipped: write failed", logging.Args(
				logging.String("raw_title", entry.RawTitle),
				logging.String("dir", dest.dir),
				logging.Error(err))...)
			continue
		}

		processed[path] = struct{}{}

		switch outcome {
		case library.OutcomeCreated:
			summary.Added++
			state.touchDir(filepath.Dir(path))
			state.consume()
			e.logger.Debug("pointer created", logging.Args(logging.String("path", path))...)
		case library.OutcomeUpdated:
			summary.Updated++
			state.consume()
			e.logger.Debug("pointer updated", logging.Args(logging.String("path", path))...)
			e.dispatch.updated(ctx, path)
		default:
			summary.Unchanged++
		}
	}
	return deferred
}
