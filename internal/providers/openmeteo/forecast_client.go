package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bihius/weather-app/internal/observability"
	"github.com/bihius/weather-app/internal/providers"
)

// API Docs: https://open-meteo.com/en/docs
// Sample request: https://api.open-meteo.com/v1/forecast?latitude=52.23&longitude=21.01&current=temperature_2m,weather_code,wind_speed_10m,wind_direction_10m,precipitation,cloud_cover&daily=weather_code,temperature_2m_max,temperature_2m_min,precipitation_probability_max&timezone=auto&forecast_days=6
const (
	DefaultBaseURL = "https://api.open-meteo.com/v1/forecast"

	providerName = "open-meteo"
	// Today plus the five days shown in the forecast strip.
	forecastDays = 6
)

var (
	currentVars = []string{
		"temperature_2m",
		"weather_code",
		"wind_speed_10m",
		"wind_direction_10m",
		"precipitation",
		"cloud_cover",
	}

	dailyVars = []string{
		"weather_code",
		"temperature_2m_max",
		"temperature_2m_min",
		"precipitation_probability_max",
	}
)

type ForecastClient struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

func NewForecastClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *ForecastClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ForecastClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		metrics:    metrics,
		logger:     logger.With("component", "open-meteo-client"),
	}
}

// GetForecast fetches current conditions and the daily forecast, in celsius
// and km/h, with dates in the location's own timezone.
func (c *ForecastClient) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	q.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	q.Set("current", strings.Join(currentVars, ","))
	q.Set("daily", strings.Join(dailyVars, ","))
	q.Set("timezone", "auto")
	q.Set("forecast_days", strconv.Itoa(forecastDays))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.ProviderDuration.WithLabelValues(providerName).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		c.logger.Warn("forecast request failed", "latitude", latitude, "longitude", longitude, "error", err)
		return nil, providers.LookupError(providerName, err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("forecast returned non-200", "status", resp.StatusCode)
		return nil, &providers.StatusError{Provider: providerName, StatusCode: resp.StatusCode, Body: string(body)}
	}

	var apiResp ForecastAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, providers.LookupError(providerName, fmt.Errorf("failed to decode response: %w", err))
	}

	return &apiResp, nil
}
