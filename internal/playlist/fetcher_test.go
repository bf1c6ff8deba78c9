package playlist

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"strmsync/internal/logging"
	"strmsync/internal/services"
)

func newTestFetcher(t *testing.T, url string, window time.Duration) *Fetcher {
	t.Helper()
	return &Fetcher{
		URL:         url,
		CachePath:   filepath.Join(t.TempDir(), "playlist.m3u"),
		CacheWindow: window,
		Client:      &http.Client{Timeout: 5 * time.Second},
		Logger:      logging.NewNop(),
	}
}

func TestFetchDownloadsAndCaches(t *testing.T) {
	const payload = "#EXTM3U\n#EXTINF:-1 tvg-name=\"A\",A\nhttp://x/movie/1.mkv\n"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, time.Hour)
	text, err := fetcher.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != payload {
		t.Fatalf("unexpected body %q", text)
	}
	cached, err := os.ReadFile(fetcher.CachePath)
	if err != nil {
		t.Fatalf("cache not written: %v", err)
	}
	if string(cached) != payload {
		t.Fatalf("cache content %q", cached)
	}
}

func TestFetchUsesFreshCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte("remote"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, time.Hour)
	if err := os.WriteFile(fetcher.CachePath, []byte("cached"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := fetcher.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != "cached" {
		t.Fatalf("expected cached copy, got %q", text)
	}
	if calls != 0 {
		t.Fatalf("server called %d times with fresh cache", calls)
	}
}

func TestFetchIgnoresStaleCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, time.Hour)
	if err := os.WriteFile(fetcher.CachePath, []byte("cached"), 0o644); err != nil {
		t.Fatal(err)
	}
	stale := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(fetcher.CachePath, stale, stale); err != nil {
		t.Fatal(err)
	}

	text, err := fetcher.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != "remote" {
		t.Fatalf("expected refetch, got %q", text)
	}
}

func TestFetchIgnoresEmptyCache(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("remote"))
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, time.Hour)
	if err := os.WriteFile(fetcher.CachePath, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := fetcher.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if text != "remote" {
		t.Fatalf("expected refetch past empty cache, got %q", text)
	}
}

func TestFetchErrorOnBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	fetcher := newTestFetcher(t, server.URL, 0)
	_, err := fetcher.Fetch(context.Background())
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestFetchErrorOnUnreachableHost(t *testing.T) {
	fetcher := newTestFetcher(t, "http://127.0.0.1:1", 0)
	_, err := fetcher.Fetch(context.Background())
	if !errors.Is(err, services.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}
