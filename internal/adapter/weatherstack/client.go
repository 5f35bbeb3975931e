package weatherstack

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// Client calls the weatherstack current weather endpoint. The access key and
// base URL are injected at construction so tests can point it at a stub
// server; an empty access key is sent as-is and rejected by the upstream.
type Client struct {
	baseURL    string
	accessKey  string
	httpClient *http.Client
	log        *zap.Logger
}

// NewClient creates a new weatherstack client. If httpClient is nil,
// http.DefaultClient is used (no timeout, single best-effort call).
func NewClient(baseURL, accessKey string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		accessKey:  accessKey,
		httpClient: httpClient,
		log:        log,
	}
}

// FetchCurrent performs one outbound request for the current weather at the
// named location and returns the full provider payload. There is no retry
// and no caching; network errors propagate, a non-2xx status yields an error
// carrying the upstream status text, and a malformed body yields a decode error.
func (c *Client) FetchCurrent(ctx context.Context, query string) (*APIResponse, error) {
	params := url.Values{}
	params.Set("access_key", c.accessKey)
	params.Set("query", query)
	endpoint := fmt.Sprintf("%s/current?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("failed to fetch weather data", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("weather upstream returned non-success status",
			zap.String("query", query),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("error fetching weather data: %s", http.StatusText(resp.StatusCode))
	}

	var payload APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("failed to decode weather payload", zap.String("query", query), zap.Error(err))
		return nil, fmt.Errorf("failed to decode weather payload: %w", err)
	}

	c.log.Debug("weather data fetched",
		zap.String("query", query),
		zap.String("location", payload.Location.Name),
	)
	return &payload, nil
}
