package emby

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"strmsync/internal/services"
)

type httpService struct {
	baseURL string
	apiKey  string
	mapper  *PathMapper
	client  HTTPDoer
}

// NewHTTPService constructs an HTTP-backed Emby service.
func NewHTTPService(baseURL, apiKey string, mapper *PathMapper, client HTTPDoer) Service {
	return &httpService{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		apiKey:  strings.TrimSpace(apiKey),
		mapper:  mapper,
		client:  client,
	}
}

func (s *httpService) Enabled() bool {
	return s != nil && s.client != nil && s.baseURL != "" && s.apiKey != ""
}

type itemsResponse struct {
	Items []struct {
		ID string `json:"Id"`
	} `json:"Items"`
}

func (s *httpService) ItemByPath(ctx context.Context, path string) (string, error) {
	query := url.Values{}
	query.Set("Path", s.mapper.Map(path))
	query.Set("Recursive", "false")

	resp, err := s.do(ctx, http.MethodGet, "/emby/Items", query)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if err := checkStatus(resp, "item lookup"); err != nil {
		return "", err
	}

	var payload itemsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", services.Wrap(services.ErrNotification, "emby", "item lookup", "decode response", err)
	}
	if len(payload.Items) == 0 {
		return "", nil
	}
	return payload.Items[0].ID, nil
}

func (s *httpService) RefreshItem(ctx context.Context, itemID string) error {
	query := url.Values{}
	query.Set("Recursive", "false")
	query.Set("ImageRefreshMode", "FullRefresh")
	query.Set("MetadataRefreshMode", "FullRefresh")
	query.Set("ReplaceAllImages", "false")
	query.Set("ReplaceAllMetadata", "false")

	resp, err := s.do(ctx, http.MethodPost, "/emby/Items/"+url.PathEscape(itemID)+"/Refresh", query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp, "item refresh")
}

func (s *httpService) RefreshPath(ctx context.Context, path string) error {
	query := url.Values{}
	query.Set("Path", s.mapper.Map(path))
	query.Set("Recursive", "true")

	resp, err := s.do(ctx, http.MethodPost, "/emby/Library/Refresh", query)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp, "library refresh")
}

func (s *httpService) DeleteItem(ctx context.Context, itemID string) error {
	resp, err := s.do(ctx, http.MethodDelete, "/emby/Items/"+url.PathEscape(itemID), nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	return checkStatus(resp, "item delete")
}

func (s *httpService) do(ctx context.Context, method, endpoint string, query url.Values) (*http.Response, error) {
	target := s.baseURL + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return nil, services.Wrap(services.ErrNotification, "emby", "build request", endpoint, err)
	}
	req.Header.Set("X-Emby-Token", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, services.Wrap(services.ErrNotification, "emby", "request", endpoint, err)
	}
	return resp, nil
}

func checkStatus(resp *http.Response, operation string) error {
	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}
	return services.Wrap(services.ErrNotification, "emby", operation,
		fmt.Sprintf("unexpected status %d", resp.StatusCode), nil)
}
