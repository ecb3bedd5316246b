package main

import (
	"context"

	"github.com/bihius/weather-app/internal/icons"
	"github.com/bihius/weather-app/internal/types"
)

type GetWeatherInput struct {
	Latitude  float64 `query:"latitude" required:"true" minimum:"-90" maximum:"90" doc:"Latitude in decimal degrees" example:"52.2297"`
	Longitude float64 `query:"longitude" required:"true" minimum:"-180" maximum:"180" doc:"Longitude in decimal degrees" example:"21.0122"`
	Unit      string  `query:"unit" doc:"celsius, fahrenheit or kelvin; defaults to the saved setting"`
	Theme     string  `query:"theme" doc:"light or dark icon set; defaults to the saved setting"`
}

type TemperatureView struct {
	Value   float64               `json:"value"`
	Unit    types.TemperatureUnit `json:"unit"`
	Display string                `json:"display" example:"64°F"`
}

type DailyView struct {
	Day         string             `json:"day" example:"Tomorrow"`
	Temperature TemperatureView    `json:"temperature"`
	Icon        types.IconCategory `json:"icon"`
	IconPath    string             `json:"iconPath" example:"/WeatherIconsLight/Sunny.svg"`
}

type GetWeatherOutput struct {
	Body struct {
		Temperature TemperatureView        `json:"temperature"`
		IconPath    string                 `json:"iconPath"`
		Forecast    []DailyView            `json:"forecast"`
		Snapshot    *types.WeatherSnapshot `json:"snapshot" doc:"Normalized snapshot, temperatures in celsius"`
	}
}

func (app *App) handleGetWeather(ctx context.Context, input *GetWeatherInput) (*GetWeatherOutput, error) {
	unit, theme, err := app.displayPreferences(ctx, input.Unit, input.Theme)
	if err != nil {
		return nil, err
	}

	snapshot, err := app.services.Weather.GetSnapshot(ctx, input.Latitude, input.Longitude)
	if err != nil {
		return nil, app.toHTTPError("failed to get weather", err)
	}

	resp := &GetWeatherOutput{}
	resp.Body.Snapshot = snapshot
	resp.Body.Temperature = temperatureView(snapshot.TemperatureC, unit)
	resp.Body.IconPath = app.services.Icons.CategoryPath(snapshot.Icon, theme)
	resp.Body.Forecast = make([]DailyView, 0, len(snapshot.Forecast))
	for _, day := range snapshot.Forecast {
		resp.Body.Forecast = append(resp.Body.Forecast, DailyView{
			Day:         day.Day,
			Temperature: temperatureView(day.TemperatureC, unit),
			Icon:        day.Icon,
			IconPath:    app.services.Icons.CategoryPath(day.Icon, theme),
		})
	}
	return resp, nil
}

// displayPreferences uses explicit query values when given and the saved
// settings otherwise.
func (app *App) displayPreferences(ctx context.Context, unit, theme string) (types.TemperatureUnit, icons.Theme, error) {
	saved, err := app.services.Settings.Get(ctx)
	if err != nil {
		return "", "", app.toHTTPError("failed to load settings", err)
	}

	resolvedUnit := saved.Unit
	if unit != "" {
		resolvedUnit, err = types.ParseTemperatureUnit(unit)
		if err != nil {
			return "", "", app.toHTTPError("invalid unit", err)
		}
	}

	resolvedTheme := saved.Theme
	if theme != "" {
		resolvedTheme = icons.ParseTheme(theme)
	}
	return resolvedUnit, resolvedTheme, nil
}

func temperatureView(celsius int, unit types.TemperatureUnit) TemperatureView {
	return TemperatureView{
		Value:   types.ToUnit(float64(celsius), unit),
		Unit:    unit,
		Display: unit.Format(float64(celsius)),
	}
}
