package engine

import (
	"context"
	"log/slog"
	"path/filepath"

	"strmsync/internal/logging"
	"strmsync/internal/services/emby"
)

// dispatcher translates reconciliation events into indexer calls. Every call
// is best-effort: a failure is logged and degraded to a coarser notification
// where one exists, and never propagates into the file reconciliation.
type dispatcher struct {
	indexer emby.Service
	logger  *slog.Logger
}

func newDispatcher(indexer emby.Service, logger *slog.Logger) *dispatcher {
	return &dispatcher{
		indexer: indexer,
		logger:  logging.NewComponentLogger(logger, "notify"),
	}
}

// updated signals one in-place pointer file update. The item is looked up by
// path and refreshed; a missing or failing item lookup falls back to a
// directory-level refresh.
func (d *dispatcher) updated(ctx context.Context, path string) {
	if !d.indexer.Enabled() {
		return
	}
	itemID, err := d.indexer.ItemByPath(ctx, path)
	if err != nil {
		d.logger.Warn("item lookup failed, falling back to directory refresh",
			logging.Args(logging.String("path", path), logging.Error(err))...)
		d.refreshDir(ctx, filepath.Dir(path))
		return
	}
	if itemID == "" {
		d.logger.Warn("item not indexed yet, falling back to directory refresh",
			logging.Args(logging.String("path", path))...)
		d.refreshDir(ctx, filepath.Dir(path))
		return
	}
	if err := d.indexer.RefreshItem(ctx, itemID); err != nil {
		d.logger.Warn("item refresh failed, falling back to directory refresh",
			logging.Args(logging.String("path", path), logging.String("item_id", itemID), logging.Error(err))...)
		d.refreshDir(ctx, filepath.Dir(path))
	}
}

// newDirectories signals the directories that received new files this run,
// one recursive path refresh per directory.
func (d *dispatcher) newDirectories(ctx context.Context, dirs []string) {
	if !d.indexer.Enabled() {
		return
	}
	for _, dir := range dirs {
		d.refreshDir(ctx, dir)
	}
}

// removed asks the indexer to forget a pointer file that is about to be
// deleted from disk. The local delete proceeds regardless of the outcome.
func (d *dispatcher) removed(ctx context.Context, path string) {
	if !d.indexer.Enabled() {
		return
	}
	itemID, err := d.indexer.ItemByPath(ctx, path)
	if err != nil {
		d.logger.Warn("orphan item lookup failed",
			logging.Args(logging.String("path", path), logging.Error(err))...)
		return
	}
	if itemID == "" {
		return
	}
	if err := d.indexer.DeleteItem(ctx, itemID); err != nil {
		d.logger.Warn("orphan item delete failed",
			logging.Args(logging.String("path", path), logging.String("item_id", itemID), logging.Error(err))...)
	}
}

func (d *dispatcher) refreshDir(ctx context.Context, dir string) {
	if err := d.indexer.RefreshPath(ctx, dir); err != nil {
		d.logger.Warn("directory refresh failed",
			logging.Args(logging.String("dir", dir), logging.Error(err))...)
	}
}
