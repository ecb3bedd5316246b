package openstreetmap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bihius/weather-app/internal/observability"
	"github.com/bihius/weather-app/internal/providers"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Search/
// Sample request: https://nominatim.openstreetmap.org/search?q=Paris&format=json&limit=50&addressdetails=1&extratags=1
const (
	DefaultBaseURL   = "https://nominatim.openstreetmap.org/search"
	DefaultUserAgent = "WeatherApp/1.0 (contact: weather-app@example.com)"

	providerName = "nominatim"
	searchLimit  = 50
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
}

func NewClient(opts Options, metrics *observability.Metrics, logger *slog.Logger) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: opts.Timeout},
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		metrics:    metrics,
		logger:     logger.With("component", "nominatim-client"),
	}
}

// Search runs a free-text place search. Nominatim's usage policy requires an
// identifying User-Agent on every request.
func (c *Client) Search(ctx context.Context, query string) ([]SearchResult, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("q", query)
	q.Set("format", "json")
	q.Set("limit", strconv.Itoa(searchLimit))
	q.Set("addressdetails", "1")
	q.Set("extratags", "1")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.observe(start)
	if err != nil {
		c.logger.Warn("search request failed", "query", query, "error", err)
		return nil, providers.LookupError(providerName, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("search returned non-200", "query", query, "status", resp.StatusCode)
		return nil, &providers.StatusError{Provider: providerName, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var results []SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, providers.LookupError(providerName, fmt.Errorf("failed to decode response: %w", err))
	}

	c.logger.Debug("search completed", "query", query, "results", len(results), "duration", time.Since(start))
	return results, nil
}

func (c *Client) observe(start time.Time) {
	if c.metrics == nil {
		return
	}
	c.metrics.ProviderDuration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
}
