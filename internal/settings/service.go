// Package settings is the single owner of the user's temperature unit and
// theme. Everything that renders a temperature asks this package.
package settings

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bihius/weather-app/internal/icons"
	"github.com/bihius/weather-app/internal/types"
)

type Service interface {
	Get(ctx context.Context) (Settings, error)
	Unit(ctx context.Context) (types.TemperatureUnit, error)
	// SetUnit rejects anything but celsius, fahrenheit and kelvin with
	// types.ErrInvalidUnit and leaves the stored unit unchanged.
	SetUnit(ctx context.Context, unit string) (Settings, error)
	// ToggleUnit flips celsius and fahrenheit; kelvin goes back to celsius.
	ToggleUnit(ctx context.Context) (Settings, error)
	SetTheme(ctx context.Context, theme string) (Settings, error)
	ToggleTheme(ctx context.Context) (Settings, error)
}

type settingsService struct {
	store  Store
	logger *slog.Logger
}

func NewService(store Store, logger *slog.Logger) Service {
	return &settingsService{
		store:  store,
		logger: logger.With("component", "settings-service"),
	}
}

func (s *settingsService) Get(ctx context.Context) (Settings, error) {
	settings, err := s.store.Load(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Unit(ctx context.Context) (types.TemperatureUnit, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return "", err
	}
	return settings.Unit, nil
}

func (s *settingsService) SetUnit(ctx context.Context, unit string) (Settings, error) {
	parsed, err := types.ParseTemperatureUnit(unit)
	if err != nil {
		return Settings{}, err
	}
	return s.update(ctx, func(cur Settings) Settings {
		cur.Unit = parsed
		return cur
	})
}

func (s *settingsService) ToggleUnit(ctx context.Context) (Settings, error) {
	return s.update(ctx, func(cur Settings) Settings {
		if cur.Unit == types.Celsius {
			cur.Unit = types.Fahrenheit
		} else {
			cur.Unit = types.Celsius
		}
		return cur
	})
}

func (s *settingsService) SetTheme(ctx context.Context, theme string) (Settings, error) {
	parsed := icons.ParseTheme(theme)
	return s.update(ctx, func(cur Settings) Settings {
		cur.Theme = parsed
		return cur
	})
}

func (s *settingsService) ToggleTheme(ctx context.Context) (Settings, error) {
	return s.update(ctx, func(cur Settings) Settings {
		if cur.Theme == icons.ThemeDark {
			cur.Theme = icons.ThemeLight
		} else {
			cur.Theme = icons.ThemeDark
		}
		return cur
	})
}

func (s *settingsService) update(ctx context.Context, fn func(Settings) Settings) (Settings, error) {
	next, err := s.store.Update(ctx, func(cur Settings) (Settings, error) {
		return fn(cur), nil
	})
	if err != nil {
		return Settings{}, fmt.Errorf("failed to save settings: %w", err)
	}
	s.logger.Info("settings updated", "unit", next.Unit, "theme", next.Theme)
	return next, nil
}
