package location

import (
	"strings"
	"unicode"

	"github.com/bihius/weather-app/internal/providers/openstreetmap"
)

const greaterPrefix = "greater"

// canonicalName picks the first non-blank candidate from the record and its
// address, then strips "Greater " and anything after the first comma.
func canonicalName(r openstreetmap.SearchResult) string {
	name := firstNonBlank(
		r.Name,
		r.Address.City,
		r.Address.Town,
		r.Address.Village,
		r.Address.Municipality,
		r.Address.Administrative,
		r.Address.County,
		r.Address.StateDistrict,
		firstSegment(r.DisplayName),
	)
	return trimCityName(stripGreater(name))
}

// stripGreater turns "Greater London" into "London" but leaves a bare
// "Greater" alone.
func stripGreater(name string) string {
	name = strings.TrimSpace(name)
	if len(name) <= len(greaterPrefix) || !strings.EqualFold(name[:len(greaterPrefix)], greaterPrefix) {
		return name
	}
	rest := name[len(greaterPrefix):]
	if r := []rune(rest); !unicode.IsSpace(r[0]) {
		return name
	}
	if rest = strings.TrimSpace(rest); rest == "" {
		return name
	}
	return rest
}

// trimCityName keeps only the part before the first comma.
func trimCityName(name string) string {
	if i := strings.IndexByte(name, ','); i >= 0 {
		name = name[:i]
	}
	return strings.TrimSpace(name)
}

func firstSegment(displayName string) string {
	return trimCityName(displayName)
}

func region(a openstreetmap.Address) string {
	return firstNonBlank(a.State, a.Region, a.Province, a.StateDistrict)
}

func firstNonBlank(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
