package weather

import (
	"time"

	"github.com/bihius/weather-app/internal/providers/openmeteo"
	"github.com/bihius/weather-app/internal/types"
)

const tomorrowLabel = "Tomorrow"

// mapSnapshot converts an Open-Meteo response into a WeatherSnapshot. Daily
// index 0 is today and is skipped; indexes 1..5 become the forecast strip.
// now and loc decide the weekday labels when the response has no dates.
func mapSnapshot(resp *openmeteo.ForecastAPIResponse, now time.Time, loc *time.Location) *types.WeatherSnapshot {
	cur := resp.Current

	conditions := types.Weather{Description: "Unknown"}
	precipType := types.PrecipitationNone
	if cur.WeatherCode != nil {
		conditions = types.NewWeather(*cur.WeatherCode)
		precipType = types.PrecipitationTypeForCode(*cur.WeatherCode)
	}

	return &types.WeatherSnapshot{
		TemperatureC: types.RoundInt(value(cur.Temperature2M)),
		Icon:         types.IconForOptionalCode(cur.WeatherCode),
		Conditions:   conditions,
		Precipitation: types.Precipitation{
			Probability: percent(value(cur.Precipitation)),
			Type:        precipType,
			Amount:      0,
		},
		Wind:          types.NewWindFromKmh(value(cur.WindSpeed10M), value(cur.WindDirection10M)),
		CloudCoverPct: percent(value(cur.CloudCover)),
		Forecast:      mapDaily(resp.Daily, now.In(loc)),
		Timezone:      loc.String(),
	}
}

func mapDaily(daily openmeteo.Daily, today time.Time) []types.DailyForecast {
	forecast := make([]types.DailyForecast, 0, types.ForecastDays)
	for i := 1; i <= types.ForecastDays && i < len(daily.WeatherCode); i++ {
		high := types.RoundInt(valueAt(daily.Temperature2MMax, i))
		low := types.RoundInt(valueAt(daily.Temperature2MMin, i))

		forecast = append(forecast, types.DailyForecast{
			Day:          dayLabel(daily.Time, i, today),
			TemperatureC: types.RoundInt(float64(high+low) / 2),
			Icon:         types.IconForOptionalCode(daily.WeatherCode[i]),
		})
	}
	return forecast
}

// dayLabel names daily index i. Dates from the response are already local to
// the place; without one the label is counted from today.
func dayLabel(dates []string, i int, today time.Time) string {
	if i == 1 {
		return tomorrowLabel
	}
	if i < len(dates) {
		if d, err := time.Parse(time.DateOnly, dates[i]); err == nil {
			return d.Format("Mon")
		}
	}
	return today.AddDate(0, 0, i).Format("Mon")
}

func mapCurrent(s *types.WeatherSnapshot) *types.CurrentWeather {
	return &types.CurrentWeather{
		TemperatureC: s.TemperatureC,
		Icon:         s.Icon,
	}
}

func value(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func valueAt(values []*float64, i int) float64 {
	if i >= len(values) {
		return 0
	}
	return value(values[i])
}

func percent(v float64) int {
	return min(max(types.RoundInt(v), 0), 100)
}
