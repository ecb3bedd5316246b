package settings

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bihius/weather-app/internal/icons"
	"github.com/bihius/weather-app/internal/types"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultKey = "settings"

	fieldUnit  = "unit"
	fieldTheme = "theme"

	maxTxAttempts = 10
)

var ErrConcurrentUpdate = errors.New("settings were modified concurrently, giving up")

// Settings are the user's display preferences.
type Settings struct {
	Unit  types.TemperatureUnit `json:"unit" enum:"celsius,fahrenheit,kelvin"`
	Theme icons.Theme           `json:"theme" enum:"light,dark"`
}

// Defaults are used for anything never saved.
func Defaults() Settings {
	return Settings{Unit: types.Celsius, Theme: icons.ThemeLight}
}

// Store persists Settings. Update must apply fn atomically.
type Store interface {
	Load(ctx context.Context) (Settings, error)
	Update(ctx context.Context, fn func(Settings) (Settings, error)) (Settings, error)
}

type MemoryStore struct {
	mu       sync.Mutex
	settings Settings
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{settings: Defaults()}
}

func (s *MemoryStore) Load(_ context.Context) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings, nil
}

func (s *MemoryStore) Update(_ context.Context, fn func(Settings) (Settings, error)) (Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.settings)
	if err != nil {
		return Settings{}, err
	}
	s.settings = next
	return next, nil
}

// RedisStore keeps settings as a hash with one field per preference.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

func NewRedisStore(client redis.UniversalClient, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Load(ctx context.Context) (Settings, error) {
	return readSettings(ctx, s.client, s.key)
}

func (s *RedisStore) Update(ctx context.Context, fn func(Settings) (Settings, error)) (Settings, error) {
	var result Settings

	txf := func(tx *redis.Tx) error {
		current, err := readSettings(ctx, tx, s.key)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.key, fieldUnit, string(next.Unit), fieldTheme, string(next.Theme))
			return nil
		})
		if err != nil {
			return err
		}
		result = next
		return nil
	}

	for i := 0; i < maxTxAttempts; i++ {
		err := s.client.Watch(ctx, txf, s.key)
		if err == nil {
			return result, nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return Settings{}, err
	}
	return Settings{}, ErrConcurrentUpdate
}

type hashGetter interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// readSettings fills unknown or missing fields from Defaults.
func readSettings(ctx context.Context, c hashGetter, key string) (Settings, error) {
	fields, err := c.HGetAll(ctx, key).Result()
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read settings from Redis: %w", err)
	}

	out := Defaults()
	if unit, err := types.ParseTemperatureUnit(fields[fieldUnit]); err == nil {
		out.Unit = unit
	}
	if theme, ok := fields[fieldTheme]; ok {
		out.Theme = icons.ParseTheme(theme)
	}
	return out, nil
}
