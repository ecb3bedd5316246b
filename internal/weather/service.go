package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bihius/weather-app/internal/observability"
	"github.com/bihius/weather-app/internal/providers/openmeteo"
	"github.com/bihius/weather-app/internal/timezone"
	"github.com/bihius/weather-app/internal/types"
	"github.com/jonboulle/clockwork"
)

const DefaultCacheTTL = 10 * time.Minute

type ForecastProvider interface {
	// GetForecast fetches current conditions and six days of daily data.
	GetForecast(ctx context.Context, latitude, longitude float64) (*openmeteo.ForecastAPIResponse, error)
}

type Service interface {
	GetSnapshot(ctx context.Context, latitude, longitude float64) (*types.WeatherSnapshot, error)
	// GetCurrent is the temperature and icon only, for favorites overviews.
	GetCurrent(ctx context.Context, latitude, longitude float64) (*types.CurrentWeather, error)
}

type Options struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type weatherService struct {
	forecastProvider ForecastProvider
	timezoneService  timezone.Service
	cache            *Cache[*types.WeatherSnapshot]
	clock            clockwork.Clock
	metrics          *observability.Metrics
	logger           *slog.Logger
}

func NewWeatherService(opts Options, metrics *observability.Metrics, logger *slog.Logger) (Service, error) {
	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}
	client := openmeteo.NewForecastClient(opts.BaseURL, opts.Timeout, metrics, logger)
	return NewWeatherServiceWithProvider(client, tzSvc, opts.CacheTTL, clockwork.NewRealClock(), metrics, logger), nil
}

// NewWeatherServiceWithProvider wires custom dependencies. timezoneService
// may be nil, in which case the timezone reported by the provider is used.
func NewWeatherServiceWithProvider(
	forecastProvider ForecastProvider,
	timezoneService timezone.Service,
	cacheTTL time.Duration,
	clock clockwork.Clock,
	metrics *observability.Metrics,
	logger *slog.Logger,
) Service {
	if cacheTTL <= 0 {
		cacheTTL = DefaultCacheTTL
	}
	return &weatherService{
		forecastProvider: forecastProvider,
		timezoneService:  timezoneService,
		cache:            NewCache[*types.WeatherSnapshot](cacheTTL, clock),
		clock:            clock,
		metrics:          metrics,
		logger:           logger.With("component", "weather-service"),
	}
}

func (s *weatherService) GetSnapshot(ctx context.Context, latitude, longitude float64) (*types.WeatherSnapshot, error) {
	if err := types.NewCoords(latitude, longitude).Validate(); err != nil {
		return nil, err
	}

	key := gridKey(latitude, longitude)
	if cached, ok := s.cache.Get(key); ok {
		s.count("cached")
		return cached, nil
	}

	apiResponse, err := s.forecastProvider.GetForecast(ctx, latitude, longitude)
	if err != nil {
		s.count("error")
		s.logger.Error("failed to get forecast from provider",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	loc := s.location(latitude, longitude, apiResponse.Timezone)
	snapshot := mapSnapshot(apiResponse, s.clock.Now(), loc)

	s.cache.Set(key, snapshot)
	s.count("success")
	return snapshot, nil
}

func (s *weatherService) GetCurrent(ctx context.Context, latitude, longitude float64) (*types.CurrentWeather, error) {
	snapshot, err := s.GetSnapshot(ctx, latitude, longitude)
	if err != nil {
		return nil, err
	}
	return mapCurrent(snapshot), nil
}

// location resolves the place's timezone offline first, then trusts the
// provider's answer, then falls back to UTC.
func (s *weatherService) location(latitude, longitude float64, reported string) *time.Location {
	if s.timezoneService != nil {
		loc, err := s.timezoneService.Location(latitude, longitude)
		if err == nil {
			return loc
		}
		s.logger.Debug("offline timezone lookup failed", "latitude", latitude, "longitude", longitude, "error", err)
	}
	if reported != "" {
		if loc, err := time.LoadLocation(reported); err == nil {
			return loc
		}
	}
	return time.UTC
}

func (s *weatherService) count(outcome string) {
	if s.metrics != nil {
		s.metrics.ForecastRequests.WithLabelValues(outcome).Inc()
	}
}
