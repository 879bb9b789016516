package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"placesync/internal/models"
)

// HTTPCollector fetches the remote collections over plain GET. Each fetch
// materializes the full array in one shot; the upstream endpoints return a
// single bounded JSON array per resource. No retries here, retry policy
// belongs to the caller.
type HTTPCollector struct {
	Client  *http.Client
	BaseURL string
}

func NewHTTPCollector(baseURL string, timeout time.Duration) *HTTPCollector {
	return &HTTPCollector{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   5 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout: 5 * time.Second,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

func (c *HTTPCollector) FetchAccounts(ctx context.Context) ([]models.RawRecord, error) {
	return c.fetch(ctx, "/users")
}

func (c *HTTPCollector) FetchPosts(ctx context.Context) ([]models.RawRecord, error) {
	return c.fetch(ctx, "/posts")
}

func (c *HTTPCollector) fetch(ctx context.Context, path string) ([]models.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: upstream returned %d", ErrUnavailable, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	var records []models.RawRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return records, nil
}
