package temperature

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertKnownValues(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		from, to Scale
		want     float64
	}{
		{"freezing C to F", 0, Celsius, Fahrenheit, 32},
		{"boiling C to F", 100, Celsius, Fahrenheit, 212},
		{"freezing C to K", 0, Celsius, Kelvin, 273.15},
		{"freezing F to C", 32, Fahrenheit, Celsius, 0},
		{"boiling F to C", 212, Fahrenheit, Celsius, 100},
		{"freezing K to C", 273.15, Kelvin, Celsius, 0},
		{"body temp F to K", 98.6, Fahrenheit, Kelvin, 310.15},
		{"room temp K to F", 300, Kelvin, Fahrenheit, 80.33},
		{"negative C to F", -40, Celsius, Fahrenheit, -40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.value, tt.from, tt.to)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestConvertIdentity(t *testing.T) {
	for _, scale := range []Scale{Celsius, Fahrenheit, Kelvin} {
		got, err := Convert(21.456, scale, scale)
		require.NoError(t, err)
		assert.InDelta(t, 21.46, got, 1e-9, "identity conversion must only round")
	}
}

func TestConvertRoundTrip(t *testing.T) {
	values := []float64{-40, 0, 36.6, 100, 451}
	pairs := [][2]Scale{
		{Celsius, Fahrenheit},
		{Celsius, Kelvin},
		{Fahrenheit, Kelvin},
	}

	for _, pair := range pairs {
		for _, v := range values {
			there, err := Convert(v, pair[0], pair[1])
			require.NoError(t, err)
			back, err := Convert(there, pair[1], pair[0])
			require.NoError(t, err)
			assert.InDelta(t, v, back, 0.011, "%v -> %v -> back with %v", pair[0], pair[1], v)
		}
	}
}

func TestConvertCaseInsensitive(t *testing.T) {
	got, err := Convert(0, Scale("Celsius"), Scale("FAHRENHEIT"))
	require.NoError(t, err)
	assert.InDelta(t, 32.0, got, 1e-9)
}

func TestConvertInvalidScale(t *testing.T) {
	_, err := Convert(100, Scale("bogus"), Celsius)
	var scaleErr *InvalidScaleError
	require.ErrorAs(t, err, &scaleErr)
	assert.Equal(t, "original", scaleErr.Arg)
	assert.Equal(t, "bogus", scaleErr.Value)

	_, err = Convert(100, Celsius, Scale("bogus"))
	scaleErr = nil
	require.True(t, errors.As(err, &scaleErr))
	assert.Equal(t, "target", scaleErr.Arg)
}

func TestConvertNoPhysicalRangeCheck(t *testing.T) {
	// Below absolute zero is still converted; plausibility is not this
	// package's concern.
	got, err := Convert(-500, Celsius, Kelvin)
	require.NoError(t, err)
	assert.InDelta(t, -226.85, got, 1e-9)
}
