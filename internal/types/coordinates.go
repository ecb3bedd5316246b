package types

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrInvalidLatitude  = errors.New("latitude must be a finite number between -90 and 90")
	ErrInvalidLongitude = errors.New("longitude must be a finite number between -180 and 180")
	ErrNullIsland       = errors.New("coordinates (0, 0) are not a valid place")
)

type Coords struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// Validate reports whether the coordinates are finite and inside the WGS84 range.
func (c Coords) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: got %v", ErrInvalidLongitude, c.Longitude)
	}
	return nil
}

// ValidatePlace is Validate plus the rejection of the exact (0, 0) pair,
// which geocoders return for records they could not locate.
func (c Coords) ValidatePlace() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Latitude == 0 && c.Longitude == 0 {
		return ErrNullIsland
	}
	return nil
}

// Near reports whether both axes differ by less than tolerance degrees.
func (c Coords) Near(other Coords, tolerance float64) bool {
	return math.Abs(c.Latitude-other.Latitude) < tolerance &&
		math.Abs(c.Longitude-other.Longitude) < tolerance
}
