package types

// WeatherCode is a WMO 4677 present-weather code as reported by Open-Meteo.
type WeatherCode int

// Weather is a weather code together with its English description.
type Weather struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// The subset of WMO codes Open-Meteo reports, plus code 4 which some feeds
// send for smoke haze.
const (
	ClearSky                     WeatherCode = 0
	MainlyClear                  WeatherCode = 1
	PartlyCloudy                 WeatherCode = 2
	Overcast                     WeatherCode = 3
	SmokeHaze                    WeatherCode = 4
	Fog                          WeatherCode = 45
	DepositingRimeFog            WeatherCode = 48
	DrizzleLight                 WeatherCode = 51
	DrizzleModerate              WeatherCode = 53
	DrizzleDense                 WeatherCode = 55
	FreezingDrizzleLight         WeatherCode = 56
	FreezingDrizzleDense         WeatherCode = 57
	RainSlight                   WeatherCode = 61
	RainModerate                 WeatherCode = 63
	RainHeavy                    WeatherCode = 65
	FreezingRainLight            WeatherCode = 66
	FreezingRainHeavy            WeatherCode = 67
	SnowFallSlight               WeatherCode = 71
	SnowFallModerate             WeatherCode = 73
	SnowFallHeavy                WeatherCode = 75
	SnowGrains                   WeatherCode = 77
	RainShowersSlight            WeatherCode = 80
	RainShowersModerate          WeatherCode = 81
	RainShowersViolent           WeatherCode = 82
	SnowShowersSlight            WeatherCode = 85
	SnowShowersHeavy             WeatherCode = 86
	ThunderstormSlightOrModerate WeatherCode = 95
	ThunderstormWithSlightHail   WeatherCode = 96
	ThunderstormWithHeavyHail    WeatherCode = 99
)

var weatherDescriptions = map[WeatherCode]string{
	ClearSky:                     "Clear sky",
	MainlyClear:                  "Mainly clear",
	PartlyCloudy:                 "Partly cloudy",
	Overcast:                     "Overcast",
	SmokeHaze:                    "Haze",
	Fog:                          "Fog",
	DepositingRimeFog:            "Depositing rime fog",
	DrizzleLight:                 "Light drizzle",
	DrizzleModerate:              "Moderate drizzle",
	DrizzleDense:                 "Dense drizzle",
	FreezingDrizzleLight:         "Light freezing drizzle",
	FreezingDrizzleDense:         "Dense freezing drizzle",
	RainSlight:                   "Slight rain",
	RainModerate:                 "Moderate rain",
	RainHeavy:                    "Heavy rain",
	FreezingRainLight:            "Light freezing rain",
	FreezingRainHeavy:            "Heavy freezing rain",
	SnowFallSlight:               "Slight snow fall",
	SnowFallModerate:             "Moderate snow fall",
	SnowFallHeavy:                "Heavy snow fall",
	SnowGrains:                   "Snow grains",
	RainShowersSlight:            "Slight rain showers",
	RainShowersModerate:          "Moderate rain showers",
	RainShowersViolent:           "Violent rain showers",
	SnowShowersSlight:            "Slight snow showers",
	SnowShowersHeavy:             "Heavy snow showers",
	ThunderstormSlightOrModerate: "Thunderstorm",
	ThunderstormWithSlightHail:   "Thunderstorm with slight hail",
	ThunderstormWithHeavyHail:    "Thunderstorm with heavy hail",
}

// GetWeatherDescription returns "Unknown" for codes outside the table.
func GetWeatherDescription(code int) string {
	if desc, ok := weatherDescriptions[WeatherCode(code)]; ok {
		return desc
	}
	return "Unknown"
}

func NewWeather(code int) Weather {
	return Weather{
		Code:        code,
		Description: GetWeatherDescription(code),
	}
}

// IconCategory is the closed vocabulary every icon lookup collapses to.
// The string value doubles as the asset file name.
type IconCategory string

const (
	IconSunny        IconCategory = "Sunny"
	IconPartlyCloudy IconCategory = "Partly_Cloudy"
	IconOvercast     IconCategory = "Overcast"
	IconFoggy        IconCategory = "Foggy"
	IconHaze         IconCategory = "Haze"
	IconLightRain    IconCategory = "Light_Rain"
	IconModerateRain IconCategory = "Moderate_Rain"
	IconLightSnow    IconCategory = "Light_Snow"
	IconModerateSnow IconCategory = "Moderate_Snow"
	IconHeavySnow    IconCategory = "Heavy_Snow"
	IconHail         IconCategory = "Hail"
	IconThunderstorm IconCategory = "Thunderstorm"
	IconBlowingSand  IconCategory = "Blowing_Sand"
	IconNight        IconCategory = "Night"
	IconUnknown      IconCategory = "Unknown"
)

// IconCategories lists every member of the vocabulary.
var IconCategories = []IconCategory{
	IconSunny,
	IconPartlyCloudy,
	IconOvercast,
	IconFoggy,
	IconHaze,
	IconLightRain,
	IconModerateRain,
	IconLightSnow,
	IconModerateSnow,
	IconHeavySnow,
	IconHail,
	IconThunderstorm,
	IconBlowingSand,
	IconNight,
	IconUnknown,
}

// DefaultCodeIcon is returned for codes outside the table, not IconUnknown.
const DefaultCodeIcon = IconPartlyCloudy

// codeRange covers from..to inclusive.
type codeRange struct {
	from, to WeatherCode
}

func (r codeRange) contains(code WeatherCode) bool {
	return code >= r.from && code <= r.to
}

var codeIcons = []struct {
	codeRange
	icon IconCategory
}{
	{codeRange{ClearSky, MainlyClear}, IconSunny},
	{codeRange{PartlyCloudy, Overcast}, IconPartlyCloudy},
	{codeRange{SmokeHaze, SmokeHaze}, IconOvercast},
	{codeRange{Fog, Fog}, IconFoggy},
	{codeRange{DepositingRimeFog, DepositingRimeFog}, IconFoggy},
	{codeRange{DrizzleLight, FreezingDrizzleDense}, IconLightRain},
	{codeRange{RainSlight, FreezingRainHeavy}, IconModerateRain},
	{codeRange{SnowFallSlight, SnowFallHeavy}, IconLightSnow},
	{codeRange{SnowGrains, SnowGrains}, IconHeavySnow},
	{codeRange{RainShowersSlight, RainShowersViolent}, IconLightRain},
	{codeRange{SnowShowersSlight, SnowShowersHeavy}, IconLightSnow},
	{codeRange{ThunderstormSlightOrModerate, ThunderstormSlightOrModerate}, IconThunderstorm},
	{codeRange{ThunderstormWithSlightHail, ThunderstormWithHeavyHail}, IconThunderstorm},
}

// IconForCode maps a WMO weather code to an icon category.
func IconForCode(code int) IconCategory {
	for _, r := range codeIcons {
		if r.contains(WeatherCode(code)) {
			return r.icon
		}
	}
	return DefaultCodeIcon
}

// IconForOptionalCode treats a missing code like an unmapped one.
func IconForOptionalCode(code *int) IconCategory {
	if code == nil {
		return DefaultCodeIcon
	}
	return IconForCode(*code)
}
