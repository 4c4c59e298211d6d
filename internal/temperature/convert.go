package temperature

import "math"

// Round2 rounds v to two decimal places, half away from zero (math.Round
// semantics). Every value this package returns to callers goes through it.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Convert converts a single value between temperature scales via a Celsius
// pivot. Scale arguments are matched case-insensitively; an unrecognized
// scale yields an *InvalidScaleError naming the offending argument. When the
// scales are equal the value is returned rounded, with no arithmetic applied,
// so out-of-physical-range values pass through untouched.
func Convert(value float64, original, target Scale) (float64, error) {
	from, err := ParseScale("original", string(original))
	if err != nil {
		return 0, err
	}
	to, err := ParseScale("target", string(target))
	if err != nil {
		return 0, err
	}

	if from == to {
		return Round2(value), nil
	}

	celsius := value
	switch from {
	case Fahrenheit:
		celsius = (value - 32) * 5 / 9
	case Kelvin:
		celsius = value - 273.15
	}

	converted := celsius
	switch to {
	case Fahrenheit:
		converted = celsius*9/5 + 32
	case Kelvin:
		converted = celsius + 273.15
	}

	return Round2(converted), nil
}
