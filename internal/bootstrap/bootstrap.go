// Package bootstrap builds the service graph shared by the API server and the
// CLI from a loaded Config.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/bihius/weather-app/internal/config"
	"github.com/bihius/weather-app/internal/events"
	"github.com/bihius/weather-app/internal/favorites"
	"github.com/bihius/weather-app/internal/icons"
	"github.com/bihius/weather-app/internal/location"
	"github.com/bihius/weather-app/internal/observability"
	"github.com/bihius/weather-app/internal/providers/openstreetmap"
	"github.com/bihius/weather-app/internal/settings"
	"github.com/bihius/weather-app/internal/weather"
	"github.com/redis/go-redis/v9"
)

const redisPingTimeout = 5 * time.Second

type Services struct {
	Location  location.Service
	Weather   weather.Service
	Favorites favorites.Service
	Settings  settings.Service
	Icons     *icons.Resolver

	redis     *redis.Client
	publisher events.Publisher
}

// Build wires every service. Favorites and settings live in Redis when an
// address is configured and in memory otherwise; favorite events go to Kafka
// when brokers are configured.
func Build(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) (*Services, error) {
	weatherSvc, err := weather.NewWeatherService(weather.Options{
		BaseURL:  cfg.Forecast.BaseURL,
		Timeout:  cfg.Forecast.Timeout,
		CacheTTL: cfg.Forecast.CacheTTL,
	}, metrics, logger)
	if err != nil {
		return nil, err
	}

	s := &Services{
		Location: location.NewLocationService(openstreetmap.Options{
			BaseURL:   cfg.Geocoder.BaseURL,
			UserAgent: cfg.Geocoder.UserAgent,
			Timeout:   cfg.Geocoder.Timeout,
		}, cfg.Geocoder.CacheSize, metrics, logger),
		Weather:   weatherSvc,
		Icons:     icons.NewResolver(cfg.Icons.LightFolder, cfg.Icons.DarkFolder, metrics, logger),
		publisher: events.NopPublisher{},
	}

	var (
		favoritesStore favorites.Store = favorites.NewMemoryStore()
		settingsStore  settings.Store  = settings.NewMemoryStore()
	)
	if cfg.Redis.Addr != "" {
		s.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
		defer cancel()
		if err := s.redis.Ping(ctx).Err(); err != nil {
			_ = s.redis.Close()
			return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Redis.Addr, err)
		}
		favoritesStore = favorites.NewRedisStore(s.redis, cfg.Redis.FavoritesKey)
		settingsStore = settings.NewRedisStore(s.redis, cfg.Redis.SettingsKey)
		logger.Info("using Redis storage", "addr", cfg.Redis.Addr)
	} else {
		logger.Info("using in-memory storage")
	}

	if len(cfg.Kafka.Brokers) > 0 {
		s.publisher = events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		logger.Info("publishing favorite events", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	}

	s.Favorites = favorites.NewService(favoritesStore, s.publisher, metrics, logger)
	s.Settings = settings.NewService(settingsStore, logger)
	return s, nil
}

func (s *Services) Close() error {
	var errs []error
	if s.publisher != nil {
		errs = append(errs, s.publisher.Close())
	}
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	return errors.Join(errs...)
}
