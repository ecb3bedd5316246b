package openmeteo

// ForecastAPIResponse is the subset of /v1/forecast this app requests.
// Values Open-Meteo may report as null are pointers.
type ForecastAPIResponse struct {
	Latitude             float64      `json:"latitude"`
	Longitude            float64      `json:"longitude"`
	GenerationtimeMs     float64      `json:"generationtime_ms"`
	UtcOffsetSeconds     int          `json:"utc_offset_seconds"`
	Timezone             string       `json:"timezone"`
	TimezoneAbbreviation string       `json:"timezone_abbreviation"`
	Elevation            float64      `json:"elevation"`
	CurrentUnits         CurrentUnits `json:"current_units"`
	Current              Current      `json:"current"`
	DailyUnits           DailyUnits   `json:"daily_units"`
	Daily                Daily        `json:"daily"`
}

type CurrentUnits struct {
	Time             string `json:"time"`
	Temperature2M    string `json:"temperature_2m"`
	WeatherCode      string `json:"weather_code"`
	WindSpeed10M     string `json:"wind_speed_10m"`
	WindDirection10M string `json:"wind_direction_10m"`
	Precipitation    string `json:"precipitation"`
	CloudCover       string `json:"cloud_cover"`
}

type Current struct {
	Time             string   `json:"time"`
	Interval         int      `json:"interval"`
	Temperature2M    *float64 `json:"temperature_2m"`
	WeatherCode      *int     `json:"weather_code"`
	WindSpeed10M     *float64 `json:"wind_speed_10m"`
	WindDirection10M *float64 `json:"wind_direction_10m"`
	Precipitation    *float64 `json:"precipitation"`
	CloudCover       *float64 `json:"cloud_cover"`
}

type DailyUnits struct {
	Time                        string `json:"time"`
	WeatherCode                 string `json:"weather_code"`
	Temperature2MMax            string `json:"temperature_2m_max"`
	Temperature2MMin            string `json:"temperature_2m_min"`
	PrecipitationProbabilityMax string `json:"precipitation_probability_max"`
}

type Daily struct {
	Time                        []string   `json:"time"`
	WeatherCode                 []*int     `json:"weather_code"`
	Temperature2MMax            []*float64 `json:"temperature_2m_max"`
	Temperature2MMin            []*float64 `json:"temperature_2m_min"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
}
