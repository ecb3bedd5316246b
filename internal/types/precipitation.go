package types

type PrecipitationType string

const (
	PrecipitationRain PrecipitationType = "rain"
	PrecipitationSnow PrecipitationType = "snow"
	PrecipitationHail PrecipitationType = "hail"
	PrecipitationNone PrecipitationType = "none"
)

type Precipitation struct {
	Probability int               `json:"probability" minimum:"0" maximum:"100"`
	Type        PrecipitationType `json:"type" enum:"rain,snow,hail,none"`
	Amount      float64           `json:"amount" minimum:"0" doc:"Amount in mm"`
}

// PrecipitationTypeForCode derives the precipitation kind from a WMO code.
func PrecipitationTypeForCode(code int) PrecipitationType {
	for _, r := range precipitationKinds {
		if r.contains(WeatherCode(code)) {
			return r.kind
		}
	}
	return PrecipitationNone
}

var precipitationKinds = []struct {
	codeRange
	kind PrecipitationType
}{
	{codeRange{SnowFallSlight, SnowGrains}, PrecipitationSnow},
	{codeRange{SnowShowersSlight, SnowShowersHeavy}, PrecipitationSnow},
	{codeRange{ThunderstormWithSlightHail, ThunderstormWithHeavyHail}, PrecipitationHail},
	{codeRange{DrizzleLight, FreezingRainHeavy}, PrecipitationRain},
	{codeRange{RainShowersSlight, RainShowersViolent}, PrecipitationRain},
}
