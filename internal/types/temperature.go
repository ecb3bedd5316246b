package types

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var ErrInvalidUnit = errors.New("temperature unit must be one of celsius, fahrenheit, kelvin")

// TemperatureUnit is the display unit preference for temperatures.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "celsius"
	Fahrenheit TemperatureUnit = "fahrenheit"
	Kelvin     TemperatureUnit = "kelvin"
)

// ParseTemperatureUnit accepts the unit name in any case.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch TemperatureUnit(strings.ToLower(strings.TrimSpace(s))) {
	case Celsius:
		return Celsius, nil
	case Fahrenheit:
		return Fahrenheit, nil
	case Kelvin:
		return Kelvin, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidUnit, s)
}

// ToUnit converts a celsius reading for display. Fahrenheit and kelvin are
// rounded to whole degrees; celsius passes through untouched, and so does any
// unit this package does not know.
func ToUnit(celsius float64, unit TemperatureUnit) float64 {
	switch unit {
	case Fahrenheit:
		return roundHalfUp(celsius*9/5 + 32)
	case Kelvin:
		return roundHalfUp(celsius + 273.15)
	default:
		return celsius
	}
}

// Symbol returns the suffix shown next to a temperature in the given unit.
func (u TemperatureUnit) Symbol() string {
	switch u {
	case Fahrenheit:
		return "°F"
	case Kelvin:
		return "K"
	default:
		return "°C"
	}
}

// Format renders a celsius reading in the given unit, e.g. "59°F".
func (u TemperatureUnit) Format(celsius float64) string {
	return fmt.Sprintf("%g%s", ToUnit(celsius, u), u.Symbol())
}

// roundHalfUp rounds .5 toward positive infinity so -0.5 becomes 0, not -1.
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundInt rounds like roundHalfUp and converts to int. NaN becomes 0.
func RoundInt(v float64) int {
	if math.IsNaN(v) {
		return 0
	}
	return int(roundHalfUp(v))
}
