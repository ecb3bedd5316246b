package types

// ForecastDays is the number of upcoming days carried by a snapshot.
const ForecastDays = 5

// DailyForecast is one upcoming day in a WeatherSnapshot.
type DailyForecast struct {
	Day          string       `json:"day" example:"Tomorrow"`
	TemperatureC int          `json:"temperatureC"`
	Icon         IconCategory `json:"icon"`
}

// WeatherSnapshot is the normalized current conditions plus the next days.
type WeatherSnapshot struct {
	TemperatureC  int             `json:"temperatureC"`
	Icon          IconCategory    `json:"icon"`
	Conditions    Weather         `json:"conditions"`
	Precipitation Precipitation   `json:"precipitation"`
	Wind          Wind            `json:"wind"`
	CloudCoverPct int             `json:"cloudCoverPct" minimum:"0" maximum:"100"`
	Forecast      []DailyForecast `json:"forecast"`
	Timezone      string          `json:"timezone,omitempty"`
}

// CurrentWeather is the reduced view used for favorites overviews.
type CurrentWeather struct {
	TemperatureC int          `json:"temperatureC"`
	Icon         IconCategory `json:"icon"`
}
