package emby

import (
	"context"
	"net/http"
	"time"

	"strmsync/internal/config"
)

// Service defines the indexing-service operations the sync engine consumes.
// Every call is best-effort from the engine's point of view: failures degrade
// to coarser notifications or are dropped, never aborting a run.
type Service interface {
	// Enabled reports whether calls reach a real server.
	Enabled() bool
	// ItemByPath returns the indexed item id for a filesystem path, or ""
	// when the indexer knows no item at that path.
	ItemByPath(ctx context.Context, path string) (string, error)
	// RefreshItem re-reads the metadata of one indexed item.
	RefreshItem(ctx context.Context, itemID string) error
	// RefreshPath scans a directory path recursively, picking up new content.
	RefreshPath(ctx context.Context, path string) error
	// DeleteItem removes one item from the index.
	DeleteItem(ctx context.Context, itemID string) error
}

// HTTPDoer describes the HTTP client used by the Emby service.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewService returns an HTTP-backed Emby service when a URL and token are
// configured, and a noop implementation otherwise.
func NewService(cfg *config.Config) Service {
	if cfg == nil || !cfg.EmbyConfigured() {
		return noopService{}
	}
	timeout := time.Duration(cfg.Emby.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return NewHTTPService(cfg.Emby.URL, cfg.Emby.APIKey, NewPathMapper(cfg), &http.Client{Timeout: timeout})
}

type noopService struct{}

func (noopService) Enabled() bool                                  { return false }
func (noopService) ItemByPath(context.Context, string) (string, error) { return "", nil }
func (noopService) RefreshItem(context.Context, string) error      { return nil }
func (noopService) RefreshPath(context.Context, string) error      { return nil }
func (noopService) DeleteItem(context.Context, string) error       { return nil }
