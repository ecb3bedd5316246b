package main

import (
	"errors"

	"github.com/bihius/weather-app/internal/providers"
	"github.com/bihius/weather-app/internal/types"
	"github.com/danielgtaylor/huma/v2"
)

// toHTTPError maps domain errors to API errors. Validation problems are the
// caller's fault, upstream failures are reported as a bad gateway.
func (app *App) toHTTPError(msg string, err error) error {
	switch {
	case errors.Is(err, types.ErrInvalidLatitude),
		errors.Is(err, types.ErrInvalidLongitude),
		errors.Is(err, types.ErrInvalidUnit):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, providers.ErrLookupFailure):
		app.logger.Warn(msg, "error", err)
		return huma.Error502BadGateway(msg)
	default:
		app.logger.Error(msg, "error", err)
		return huma.Error500InternalServerError(msg)
	}
}
