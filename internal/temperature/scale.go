package temperature

import (
	"fmt"
	"strings"
)

// Scale identifies the unit a temperature reading is expressed in.
// The canonical form is lower case.
type Scale string

const (
	Celsius    Scale = "celsius"
	Fahrenheit Scale = "fahrenheit"
	Kelvin     Scale = "kelvin"
)

// InvalidScaleError reports a scale value that is not one of the three
// supported scales.
type InvalidScaleError struct {
	Arg   string // which argument carried the bad value ("original", "target", "scale")
	Value string // the value as given by the caller
}

func (e *InvalidScaleError) Error() string {
	return fmt.Sprintf("invalid %s scale: %q; use celsius, fahrenheit or kelvin", e.Arg, e.Value)
}

// ParseScale normalizes s case-insensitively into a canonical Scale.
// arg names the argument being parsed and is echoed in the error so callers
// can tell which of several scale inputs was rejected.
func ParseScale(arg, s string) (Scale, error) {
	switch Scale(strings.ToLower(s)) {
	case Celsius:
		return Celsius, nil
	case Fahrenheit:
		return Fahrenheit, nil
	case Kelvin:
		return Kelvin, nil
	default:
		return "", &InvalidScaleError{Arg: arg, Value: s}
	}
}
