package icons

import "github.com/bihius/weather-app/internal/types"

// aliases maps sanitized names from the older PNG icon set, and a few common
// spellings, onto the category that replaced them.
var aliases = map[string]types.IconCategory{
	// sun
	"sun":      types.IconSunny,
	"clear":    types.IconSunny,
	"clearsky": types.IconSunny,
	"sunwind":  types.IconSunny,
	"sunrise":  types.IconSunny,
	"sunset":   types.IconSunny,
	"spring":   types.IconSunny,
	"glasses":  types.IconSunny,

	// clouds
	"cloud":          types.IconPartlyCloudy,
	"cloudy":         types.IconPartlyCloudy,
	"cloudicon":      types.IconPartlyCloudy,
	"cloudsunny":     types.IconPartlyCloudy,
	"cloudsunnywind": types.IconPartlyCloudy,
	"partlycloud":    types.IconPartlyCloudy,
	"cloudwind":      types.IconOvercast,
	"overcastcloud":  types.IconOvercast,
	"wind":           types.IconOvercast,
	"autumn":         types.IconOvercast,

	// fog and haze
	"fog":  types.IconFoggy,
	"mist": types.IconFoggy,
	"smog": types.IconHaze,

	// rain
	"drop":           types.IconLightRain,
	"drops":          types.IconLightRain,
	"drizzle":        types.IconLightRain,
	"showers":        types.IconLightRain,
	"umbrella":       types.IconLightRain,
	"clouddrops":     types.IconModerateRain,
	"rainycloud":     types.IconModerateRain,
	"rain":           types.IconModerateRain,
	"flood":          types.IconModerateRain,
	"cloudelecrainy": types.IconThunderstorm,

	// snow
	"snow":          types.IconLightSnow,
	"snowycloud":    types.IconModerateSnow,
	"snowycloudbig": types.IconHeavySnow,

	// storms
	"storm":     types.IconThunderstorm,
	"storm1":    types.IconThunderstorm,
	"thunder":   types.IconThunderstorm,
	"cloudelec": types.IconThunderstorm,
	"lightning": types.IconThunderstorm,
	"hailstorm": types.IconHail,
	"sand":      types.IconBlowingSand,
	"sandstorm": types.IconBlowingSand,
	"dust":      types.IconBlowingSand,
	"toorbin":   types.IconBlowingSand,

	// night
	"moon":          types.IconNight,
	"moonstar":      types.IconNight,
	"moonwind":      types.IconNight,
	"stars":         types.IconNight,
	"cloudmoon":     types.IconNight,
	"cloudmoonwind": types.IconNight,
}

// buildLookup indexes every category by its sanitized name, then layers the
// aliases on top. Canonical names always win over an alias with the same key.
func buildLookup() map[string]types.IconCategory {
	lookup := make(map[string]types.IconCategory, len(types.IconCategories)+len(aliases))
	for key, category := range aliases {
		lookup[key] = category
	}
	for _, category := range types.IconCategories {
		lookup[sanitize(string(category))] = category
	}
	return lookup
}
