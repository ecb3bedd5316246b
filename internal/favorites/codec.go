package favorites

import (
	"math"
	"strconv"
	"strings"
)

// Identity is the logical form of a persisted favorite. Lat and Lon are
// either both set or both nil; a zero coordinate is a real coordinate.
type Identity struct {
	City string   `json:"city"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}

// HasCoords reports whether the identity carries a usable coordinate pair.
func (i Identity) HasCoords() bool {
	return i.Lat != nil && i.Lon != nil && isFinite(*i.Lat) && isFinite(*i.Lon)
}

// Equal compares city and coordinates by value.
func (i Identity) Equal(other Identity) bool {
	if i.City != other.City || i.HasCoords() != other.HasCoords() {
		return false
	}
	if !i.HasCoords() {
		return true
	}
	return *i.Lat == *other.Lat && *i.Lon == *other.Lon
}

// Codec is one version of the persisted identity format.
type Codec interface {
	Name() string
	Encode(id Identity) (string, bool)
	Decode(s string) (Identity, bool)
}

// delimitedCodec stores "<city><sep><lat><sep><lon>". The last two fields are
// always the coordinates, so the city may itself contain the separator.
type delimitedCodec struct {
	name string
	sep  string
	// signedFields reattaches a minus sign that the separator split off, so
	// "Paris-48.85--2.35" reads as lat 48.85, lon -2.35.
	signedFields bool
}

func (c delimitedCodec) Name() string { return c.name }

func (c delimitedCodec) Encode(id Identity) (string, bool) {
	if !id.HasCoords() {
		return "", false
	}
	return id.City + c.sep + formatCoord(*id.Lat) + c.sep + formatCoord(*id.Lon), true
}

func (c delimitedCodec) Decode(s string) (Identity, bool) {
	parts := strings.Split(s, c.sep)
	if len(parts) < 3 {
		return Identity{}, false
	}

	end := len(parts)
	lon, end, ok := c.takeCoord(parts, end)
	if !ok {
		return Identity{}, false
	}
	lat, end, ok := c.takeCoord(parts, end)
	if !ok || end < 1 {
		return Identity{}, false
	}

	return Identity{
		City: strings.Join(parts[:end], c.sep),
		Lat:  &lat,
		Lon:  &lon,
	}, true
}

// takeCoord parses parts[end-1] and returns the new end of the unread prefix.
func (c delimitedCodec) takeCoord(parts []string, end int) (float64, int, bool) {
	if end < 1 {
		return 0, end, false
	}
	v, ok := parseCoord(parts[end-1])
	if !ok {
		return 0, end, false
	}
	end--
	if c.signedFields && end >= 2 && parts[end-1] == "" {
		v = -v
		end--
	}
	return v, end, true
}

var (
	// PipeCodec is the current format: "Paris|48.8566|2.3522".
	PipeCodec Codec = delimitedCodec{name: "pipe", sep: "|"}
	// HyphenCodec is the legacy format: "Paris-48.8566-2.3522". It is kept
	// for decoding only; new identities are never written with it.
	HyphenCodec Codec = delimitedCodec{name: "hyphen", sep: "-", signedFields: true}
)

// decoders are tried in order; the first that accepts the string wins.
var decoders = []Codec{PipeCodec, HyphenCodec}

// Encode returns the persisted form of a favorite. Without a complete, finite
// coordinate pair the bare city name is stored.
func Encode(city string, lat, lon *float64) string {
	if s, ok := PipeCodec.Encode(Identity{City: city, Lat: lat, Lon: lon}); ok {
		return s
	}
	return city
}

// Decode never fails: strings no codec recognises decode to a bare city.
func Decode(s string) Identity {
	for _, codec := range decoders {
		if id, ok := codec.Decode(s); ok {
			return id
		}
	}
	return Identity{City: s}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseCoord(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || !isFinite(v) {
		return 0, false
	}
	return v, true
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
