package main

import (
	"context"

	"github.com/bihius/weather-app/internal/types"
)

type SearchPlacesInput struct {
	Query string `query:"q" doc:"Free-text place name" example:"Kraków"`
	Limit int    `query:"limit" default:"10" minimum:"1" maximum:"50" doc:"Maximum number of places"`
}

type SearchPlacesOutput struct {
	Body struct {
		Places []types.Place `json:"places" doc:"Places, best match first"`
	}
}

func (app *App) handleSearchPlaces(ctx context.Context, input *SearchPlacesInput) (*SearchPlacesOutput, error) {
	places, err := app.services.Location.Resolve(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, app.toHTTPError("failed to search places", err)
	}

	resp := &SearchPlacesOutput{}
	resp.Body.Places = places
	return resp, nil
}
