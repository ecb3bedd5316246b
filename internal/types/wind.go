package types

import "math"

var compassPoints = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

type Wind struct {
	SpeedKmh  int    `json:"speedKmh"`
	Direction string `json:"direction" enum:"N,NE,E,SE,S,SW,W,NW"`
	Degree    int    `json:"degree" minimum:"0" maximum:"359"`
}

// NewWindFromKmh builds a Wind from a raw speed and meteorological bearing.
// Negative speeds clamp to zero and the bearing is folded into [0, 360).
func NewWindFromKmh(speedKmh, directionDegrees float64) Wind {
	speed := int(math.Round(speedKmh))
	if speed < 0 || math.IsNaN(speedKmh) {
		speed = 0
	}

	degrees := math.Mod(directionDegrees, 360)
	if math.IsNaN(degrees) {
		degrees = 0
	}
	if degrees < 0 {
		degrees += 360
	}

	index := int((degrees/45)+.5) % 8 // .5 for rounding
	degree := int(math.Round(degrees)) % 360

	return Wind{
		SpeedKmh:  speed,
		Direction: compassPoints[index],
		Degree:    degree,
	}
}
