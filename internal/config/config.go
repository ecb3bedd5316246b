package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "WEATHER_APP"

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Geocoder GeocoderConfig
	Forecast ForecastConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Search   SearchConfig
	Icons    IconsConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

type GeocoderConfig struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	CacheSize int
}

type ForecastConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

// RedisConfig selects the favorites and settings backend. An empty Addr keeps
// both in memory.
type RedisConfig struct {
	Addr         string
	Password     string
	DB           int
	FavoritesKey string
	SettingsKey  string
}

// KafkaConfig enables favorite events when at least one broker is set.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type SearchConfig struct {
	Debounce time.Duration
}

type IconsConfig struct {
	LightFolder string
	DarkFolder  string
}

// Load reads configuration from .env, the config file and environment
// variables, in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.weather-app")

	setDefaults(v)

	// Read from environment variables, e.g. WEATHER_APP_REDIS_ADDR
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.ginmode", "release")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("geocoder.baseurl", "https://nominatim.openstreetmap.org/search")
	v.SetDefault("geocoder.useragent", "WeatherApp/1.0 (contact: weather-app@example.com)")
	v.SetDefault("geocoder.timeout", 10*time.Second)
	v.SetDefault("geocoder.cachesize", 256)

	v.SetDefault("forecast.baseurl", "https://api.open-meteo.com/v1/forecast")
	v.SetDefault("forecast.timeout", 10*time.Second)
	v.SetDefault("forecast.cachettl", 10*time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.favoriteskey", "favorites")
	v.SetDefault("redis.settingskey", "settings")

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "weather-app.favorites")

	v.SetDefault("search.debounce", 500*time.Millisecond)

	v.SetDefault("icons.lightfolder", "WeatherIconsLight")
	v.SetDefault("icons.darkfolder", "WeatherIconsDark")
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	return c.NewLoggerTo(os.Stdout)
}

// NewLoggerTo is NewLogger writing to w. The CLI logs to stderr so stdout
// stays clean for results.
func (c *Config) NewLoggerTo(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(c.Log.Level),
	}

	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
