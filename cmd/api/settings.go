package main

import (
	"context"

	"github.com/bihius/weather-app/internal/settings"
)

type SettingsOutput struct {
	Body settings.Settings
}

type UpdateSettingsInput struct {
	Body struct {
		Unit  string `json:"unit,omitempty" example:"fahrenheit"`
		Theme string `json:"theme,omitempty" example:"dark"`
	}
}

func (app *App) handleGetSettings(ctx context.Context, input *struct{}) (*SettingsOutput, error) {
	current, err := app.services.Settings.Get(ctx)
	if err != nil {
		return nil, app.toHTTPError("failed to load settings", err)
	}
	return &SettingsOutput{Body: current}, nil
}

func (app *App) handleUpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*SettingsOutput, error) {
	current, err := app.services.Settings.Get(ctx)
	if err != nil {
		return nil, app.toHTTPError("failed to load settings", err)
	}

	if input.Body.Unit != "" {
		if current, err = app.services.Settings.SetUnit(ctx, input.Body.Unit); err != nil {
			return nil, app.toHTTPError("failed to update unit", err)
		}
	}
	if input.Body.Theme != "" {
		if current, err = app.services.Settings.SetTheme(ctx, input.Body.Theme); err != nil {
			return nil, app.toHTTPError("failed to update theme", err)
		}
	}
	return &SettingsOutput{Body: current}, nil
}
