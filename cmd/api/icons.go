package main

import (
	"context"

	"github.com/bihius/weather-app/internal/types"
)

type IconPathInput struct {
	Token string `query:"token" doc:"Icon name in any known format" example:"lcloud-lsunny"`
	Theme string `query:"theme" doc:"light or dark; defaults to the saved setting"`
}

type IconPathOutput struct {
	Body struct {
		Category types.IconCategory `json:"category" example:"Partly_Cloudy"`
		Path     string             `json:"path" example:"/WeatherIconsLight/Partly_Cloudy.svg"`
	}
}

func (app *App) handleIconPath(ctx context.Context, input *IconPathInput) (*IconPathOutput, error) {
	_, theme, err := app.displayPreferences(ctx, "", input.Theme)
	if err != nil {
		return nil, err
	}

	resp := &IconPathOutput{}
	resp.Body.Category = app.services.Icons.Resolve(input.Token)
	resp.Body.Path = app.services.Icons.CategoryPath(resp.Body.Category, theme)
	return resp, nil
}
