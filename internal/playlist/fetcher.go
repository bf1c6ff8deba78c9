package playlist

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"strmsync/internal/config"
	"strmsync/internal/fileutil"
	"strmsync/internal/logging"
	"strmsync/internal/services"
)

// HTTPDoer describes the HTTP client used by the fetcher.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Fetcher downloads the raw playlist text, keeping a local cached copy so
// repeated runs within the cache window skip the refetch.
type Fetcher struct {
	URL         string
	CachePath   string
	CacheWindow time.Duration
	Client      HTTPDoer
	Logger      *slog.Logger
}

// NewFetcher builds a fetcher from configuration.
func NewFetcher(cfg *config.Config, logger *slog.Logger) *Fetcher {
	timeout := time.Duration(cfg.Source.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Fetcher{
		URL:         cfg.Source.URL,
		CachePath:   cfg.PlaylistCachePath(),
		CacheWindow: time.Duration(cfg.Source.CacheHours) * time.Hour,
		Client:      &http.Client{Timeout: timeout},
		Logger:      logging.NewComponentLogger(logger, "fetcher"),
	}
}

// Fetch returns the playlist text. A failure here aborts the whole run; no
// file under the content roots is touched without playlist data.
func (f *Fetcher) Fetch(ctx context.Context) (string, error) {
	if text, ok := f.cached(); ok {
		return text, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return "", services.Wrap(services.ErrFetch, "playlist", "download", "build request", err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return "", services.Wrap(services.ErrFetch, "playlist", "download", "http get", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", services.Wrap(services.ErrFetch, "playlist", "download",
			fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", services.Wrap(services.ErrFetch, "playlist", "download", "read body", err)
	}

	text := string(body)
	if err := fileutil.WriteText(f.CachePath, text); err != nil {
		f.Logger.Warn("unable to cache playlist", logging.Args(
			logging.String("path", f.CachePath), logging.Error(err))...)
	} else {
		f.Logger.Debug("playlist cached", logging.Args(
			logging.String("path", f.CachePath), logging.Int("bytes", len(body)))...)
	}
	return text, nil
}

func (f *Fetcher) cached() (string, bool) {
	if f.CacheWindow <= 0 {
		return "", false
	}
	info, err := os.Stat(f.CachePath)
	if err != nil || info.Size() == 0 {
		return "", false
	}
	age := time.Since(info.ModTime())
	if age >= f.CacheWindow {
		return "", false
	}
	data, err := os.ReadFile(f.CachePath)
	if err != nil {
		return "", false
	}
	f.Logger.Info("using cached playlist", logging.Args(
		logging.String("path", f.CachePath),
		logging.Duration("age", age.Truncate(time.Second)))...)
	return string(data), true
}
