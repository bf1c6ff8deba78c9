// Package daemonrun drives scheduled sync executions: it serializes runs via
// a lock file, wires the engine to its collaborators, records each outcome in
// the run history, and repeats on a fixed interval until the context ends.
package daemonrun

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofrs/flock"

	"strmsync/internal/config"
	"strmsync/internal/engine"
	"strmsync/internal/history"
	"strmsync/internal/logging"
	"strmsync/internal/playlist"
	"strmsync/internal/services/emby"
)

// ErrAlreadyRunning reports that another strmsync instance holds the lock.
var ErrAlreadyRunning = errors.New("another strmsync instance is already running")

// Options configures runtime behavior.
type Options struct {
	// Interval between run starts. Zero or negative means a single run.
	Interval time.Duration
}

// RunOnce performs a single locked sync pass and records it in history.
func RunOnce(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*engine.Summary, error) {
	release, err := acquireLock(cfg)
	if err != nil {
		return nil, err
	}
	defer release()

	store := openHistory(cfg, logger)
	defer store.Close()

	return runAndRecord(ctx, newEngine(cfg, logger), store, logger)
}

// Run executes sync passes on a fixed interval until the context is canceled
// or an interrupt arrives. Individual run failures are logged and retried on
// the next tick; only lock acquisition fails the daemon outright.
func Run(cmdCtx context.Context, cfg *config.Config, logger *slog.Logger, opts Options) error {
	ctx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	release, err := acquireLock(cfg)
	if err != nil {
		return err
	}
	defer release()

	store := openHistory(cfg, logger)
	defer store.Close()

	eng := newEngine(cfg, logger)
	interval := opts.Interval
	if interval <= 0 {
		_, err := runAndRecord(ctx, eng, store, logger)
		return err
	}

	logger.Info("daemon started", logging.Args(
		logging.Duration("interval", interval),
		logging.String("lock", cfg.LockPath()))...)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		if _, err := runAndRecord(ctx, eng, store, logger); err != nil && ctx.Err() == nil {
			logger.Error("run failed; retrying on next interval", logging.Args(logging.Error(err))...)
		}
		select {
		case <-ctx.Done():
			logger.Info("daemon stopping")
			return nil
		case <-ticker.C:
		}
	}
}

func newEngine(cfg *config.Config, logger *slog.Logger) *engine.Engine {
	return engine.New(cfg, playlist.NewFetcher(cfg, logger), emby.NewService(cfg), logger)
}

func runAndRecord(ctx context.Context, eng *engine.Engine, store *history.Store, logger *slog.Logger) (*engine.Summary, error) {
	summary, err := eng.Run(ctx)
	if err != nil {
		if store != nil {
			if recordErr := store.RecordFailure(ctx, err); recordErr != nil {
				logger.Warn("unable to record failed run", logging.Args(logging.Error(recordErr))...)
			}
		}
		return nil, err
	}
	if store != nil {
		if recordErr := store.RecordRun(ctx, summary); recordErr != nil {
			logger.Warn("unable to record run", logging.Args(logging.Error(recordErr))...)
		}
	}
	return summary, nil
}

func acquireLock(cfg *config.Config) (func(), error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %q: %w", cfg.LockPath(), err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	return func() { _ = lock.Unlock() }, nil
}

func openHistory(cfg *config.Config, logger *slog.Logger) *history.Store {
	store, err := history.Open(cfg)
	if err != nil {
		logger.Warn("run history unavailable", logging.Args(logging.Error(err))...)
		return nil
	}
	return store
}
