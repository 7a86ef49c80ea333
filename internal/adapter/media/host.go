package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Host encapsulates outbound calls to the external media host that stores
// and transcodes asset binaries. This service only tracks records; bytes
// never pass through it.
type Host interface {
	DeleteAsset(ctx context.Context, publicID string) error
}

// HTTPHost is the default HTTP implementation.
type HTTPHost struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

var _ Host = (*HTTPHost)(nil)

// NewHTTPHost constructs the default media host client. An empty baseURL
// yields a client whose deletions are no-ops, for development without a
// configured host.
func NewHTTPHost(baseURL, apiKey string, client *http.Client) *HTTPHost {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HTTPHost{baseURL: strings.TrimRight(baseURL, "/"), apiKey: apiKey, httpClient: client}
}

// DeleteAsset removes the asset binary from the media host.
func (h *HTTPHost) DeleteAsset(ctx context.Context, publicID string) error {
	if h.baseURL == "" {
		return nil
	}

	endpoint := h.baseURL + "/assets/" + url.PathEscape(publicID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+h.apiKey)

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("delete asset request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<10))
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		return fmt.Errorf("delete asset failed: status=%d", resp.StatusCode)
	}
	return nil
}
