package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"strmsync/internal/config"
	"strmsync/internal/logging"
	"strmsync/internal/playlist"
	"strmsync/internal/services/emby"
)

// Fetcher supplies the raw playlist text for a run.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Engine performs one full reconciliation pass: parse, classify, filter,
// write pointer files under quota, sweep orphans, notify the indexer.
// A single Engine is not safe for concurrent runs against the same tree;
// the daemon's lock provides mutual exclusion.
type Engine struct {
	cfg      *config.Config
	fetcher  Fetcher
	dispatch *dispatcher
	logger   *slog.Logger
}

// New constructs an engine from its collaborators.
func New(cfg *config.Config, fetcher Fetcher, indexer emby.Service, logger *slog.Logger) *Engine {
	return &Engine{
		cfg:      cfg,
		fetcher:  fetcher,
		dispatch: newDispatcher(indexer, logger),
		logger:   logging.NewComponentLogger(logger, "sync"),
	}
}

// Run executes one synchronization pass. Only a fetch failure returns an
// error; every other condition is recovered at item granularity and surfaces
// in the Summary counts.
func (e *Engine) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	defer func() {
		summary.Duration = time.Since(summary.StartedAt)
	}()

	text, err := e.fetcher.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	parsed := playlist.Parse(text)
	summary.ParseSkipped = parsed.Skipped

	filter := playlist.NewCountryFilter(e.cfg.Filter.IncludeCountries, e.cfg.Filter.ExcludeCountries)
	liveTV, filtered := filter.Apply(parsed.LiveTV)

	summary.Movies = len(parsed.Movies)
	summary.Series = len(parsed.Series)
	summary.LiveTV = len(liveTV)
	summary.Filtered = filtered

	e.logger.Info("playlist parsed", logging.Args(
		logging.String("run_id", summary.RunID),
		logging.Int("movies", summary.Movies),
		logging.Int("series", summary.Series),
		logging.Int("livetv", summary.LiveTV),
		logging.Int("filtered", filtered),
		logging.Int("parse_skipped", parsed.Skipped))...)

	state := newRunState(e.cfg.Sync.RunQuota)
	e.reconcileMovies(ctx, parsed.Movies, state, summary)
	e.reconcileSeries(ctx, parsed.Series, state, summary)

	if summary.Accepted() == 0 {
		summary.GuardTriggered = true
		e.logger.Warn("no valid entries parsed; skipping live TV rewrite and orphan cleanup",
			logging.Args(logging.String("run_id", summary.RunID))...)
	} else {
		e.writeLiveTV(liveTV, summary)
		e.sweepOrphans(ctx, state, summary)
	}

	e.dispatch.newDirectories(ctx, state.touchedDirs)

	e.logger.Info("run complete", logging.Args(
		logging.String("run_id", summary.RunID),
		logging.Int("added", summary.Added),
		logging.Int("updated", summary.Updated),
		logging.Int("unchanged", summary.Unchanged),
		logging.Int("skipped", summary.TitleSkipped+summary.IOSkipped),
		logging.Int("deferred", summary.Deferred()),
		logging.Int("orphans_removed", summary.OrphansRemoved),
		logging.Duration("elapsed", time.Since(summary.StartedAt).Truncate(time.Millisecond)))...)

	return summary, nil
}
