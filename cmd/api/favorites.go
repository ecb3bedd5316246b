package main

import (
	"context"

	"github.com/bihius/weather-app/internal/favorites"
	"github.com/bihius/weather-app/internal/types"
	"github.com/danielgtaylor/huma/v2"
)

type ListFavoritesInput struct {
	IncludeWeather bool `query:"includeWeather" doc:"Attach current temperature and icon to favorites with coordinates"`
}

type FavoriteView struct {
	ID      string                `json:"id" example:"Paris|48.8566|2.3522"`
	City    string                `json:"city"`
	Lat     *float64              `json:"lat,omitempty"`
	Lon     *float64              `json:"lon,omitempty"`
	Current *types.CurrentWeather `json:"current,omitempty"`
}

type ListFavoritesOutput struct {
	Body struct {
		Favorites []FavoriteView `json:"favorites"`
	}
}

type ToggleFavoriteInput struct {
	Body struct {
		City string   `json:"city" minLength:"1" example:"Paris"`
		Lat  *float64 `json:"lat,omitempty" example:"48.8566"`
		Lon  *float64 `json:"lon,omitempty" example:"2.3522"`
	}
}

type ToggleFavoriteOutput struct {
	Body struct {
		Added bool     `json:"added" doc:"True when the place became a favorite, false when it was removed"`
		IDs   []string `json:"ids"`
	}
}

func (app *App) handleListFavorites(ctx context.Context, input *ListFavoritesInput) (*ListFavoritesOutput, error) {
	list, err := app.services.Favorites.List(ctx)
	if err != nil {
		return nil, app.toHTTPError("failed to list favorites", err)
	}

	resp := &ListFavoritesOutput{}
	resp.Body.Favorites = make([]FavoriteView, 0, len(list))
	for _, f := range list {
		view := FavoriteView{
			ID:   favorites.Encode(f.City, f.Lat, f.Lon),
			City: f.City,
			Lat:  f.Lat,
			Lon:  f.Lon,
		}
		if input.IncludeWeather && f.HasCoords() {
			current, err := app.services.Weather.GetCurrent(ctx, *f.Lat, *f.Lon)
			if err != nil {
				// One unreachable favorite should not hide the rest.
				app.logger.Warn("failed to get current weather for favorite", "id", view.ID, "error", err)
			} else {
				view.Current = current
			}
		}
		resp.Body.Favorites = append(resp.Body.Favorites, view)
	}
	return resp, nil
}

func (app *App) handleToggleFavorite(ctx context.Context, input *ToggleFavoriteInput) (*ToggleFavoriteOutput, error) {
	if (input.Body.Lat == nil) != (input.Body.Lon == nil) {
		return nil, huma.Error400BadRequest("lat and lon must be given together")
	}

	added, ids, err := app.services.Favorites.Toggle(ctx, input.Body.City, input.Body.Lat, input.Body.Lon)
	if err != nil {
		return nil, app.toHTTPError("failed to toggle favorite", err)
	}

	resp := &ToggleFavoriteOutput{}
	resp.Body.Added = added
	resp.Body.IDs = ids
	return resp, nil
}
