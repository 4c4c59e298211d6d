package temperature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageAcrossDays(t *testing.T) {
	records := []*Record{
		NewRecord("d1", []float64{10, 20}, Celsius),
		NewRecord("d2", []float64{30}, Celsius),
	}
	assert.InDelta(t, 20.0, AverageAcrossDays(records), 1e-9)
}

func TestAverageAcrossDaysIgnoresScales(t *testing.T) {
	// Raw stored values are averaged; scales are deliberately not normalized.
	records := []*Record{
		NewRecord("d1", []float64{10}, Celsius),
		NewRecord("d2", []float64{20}, Kelvin),
	}
	assert.InDelta(t, 15.0, AverageAcrossDays(records), 1e-9)
}

func TestAverageAcrossDaysEmpty(t *testing.T) {
	assert.Zero(t, AverageAcrossDays(nil))
	assert.Zero(t, AverageAcrossDays([]*Record{
		NewRecord("d1", nil, Celsius),
		NewRecord("d2", nil, Celsius),
	}))
}

func TestHottestDay(t *testing.T) {
	records := []*Record{
		NewRecord("mild", []float64{15, 16}, Celsius),
		NewRecord("hot", []float64{30, 31}, Celsius),
		NewRecord("cold", []float64{2, 3}, Celsius),
	}

	got, err := HottestDay(records)
	require.NoError(t, err)
	assert.Equal(t, "hot", got)
}

func TestHottestDayNormalizesToCelsius(t *testing.T) {
	// 0C, 32F and 273.15K all mean the same temperature; first in input
	// order wins the tie.
	records := []*Record{
		NewRecord("c-day", []float64{0}, Celsius),
		NewRecord("f-day", []float64{32}, Fahrenheit),
		NewRecord("k-day", []float64{273.15}, Kelvin),
	}

	got, err := HottestDay(records)
	require.NoError(t, err)
	assert.Equal(t, "c-day", got)
}

func TestHottestDayEmptyReadingsNeverWin(t *testing.T) {
	records := []*Record{
		NewRecord("empty", nil, Celsius),
		NewRecord("freezing", []float64{-40}, Celsius),
	}

	got, err := HottestDay(records)
	require.NoError(t, err)
	assert.Equal(t, "freezing", got)
}

func TestHottestDayEmptyInput(t *testing.T) {
	got, err := HottestDay(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestHottestDayInvalidStoredScale(t *testing.T) {
	records := []*Record{
		{Date: "d", Readings: []float64{10}, Scale: Scale("bogus")},
	}

	_, err := HottestDay(records)
	var scaleErr *InvalidScaleError
	require.ErrorAs(t, err, &scaleErr)
}

func TestDetectExtremeDays(t *testing.T) {
	records := []*Record{
		NewRecord("d1", []float64{25, 31}, Celsius),
		NewRecord("d2", []float64{20}, Celsius),
		NewRecord("d3", []float64{35}, Celsius),
	}

	assert.Equal(t, []string{"d1", "d3"}, DetectExtremeDays(records, 30))
	assert.Empty(t, DetectExtremeDays(nil, 30))
}

func TestDetectExtremeDaysStrictBoundary(t *testing.T) {
	records := []*Record{NewRecord("d1", []float64{25.0}, Celsius)}

	assert.Empty(t, DetectExtremeDays(records, 25.0), "equal does not count")
	assert.Equal(t, []string{"d1"}, DetectExtremeDays(records, 24.9))
}

func TestRangeForEachDay(t *testing.T) {
	records := []*Record{
		NewRecord("d1", []float64{10, 30, 20}, Celsius),
		NewRecord("d2", nil, Celsius),
	}

	assert.Equal(t, map[string]Range{
		"d1": {Min: 10, Max: 30},
		"d2": {Min: 0, Max: 0},
	}, RangeForEachDay(records))

	assert.Empty(t, RangeForEachDay(nil))
}

func TestRangeForEachDayDuplicateDateLaterWins(t *testing.T) {
	records := []*Record{
		NewRecord("d1", []float64{1, 2}, Celsius),
		NewRecord("d1", []float64{5, 9}, Celsius),
	}

	assert.Equal(t, map[string]Range{"d1": {Min: 5, Max: 9}}, RangeForEachDay(records))
}

func TestTrend(t *testing.T) {
	assert.Equal(t, []string{"up", "same", "down"}, Trend([]float64{10, 12, 12, 8}))
	assert.Equal(t, []string{"same", "same"}, Trend([]float64{15, 15, 15}))
	assert.Empty(t, Trend([]float64{10}))
	assert.Empty(t, Trend(nil))
}

func TestDetectSpike(t *testing.T) {
	assert.True(t, DetectSpike([]float64{10, 20}), "default threshold 5")
	assert.False(t, DetectSpike([]float64{10, 14}))
	assert.True(t, DetectSpike([]float64{10, 15}), "threshold is inclusive")
	assert.True(t, DetectSpike([]float64{20.0, 20.1, 30.5}))
}

func TestDetectSpikeExplicitThreshold(t *testing.T) {
	assert.True(t, DetectSpike([]float64{10, 13}, 3))
	assert.False(t, DetectSpike([]float64{20, 22}, 3))
}

func TestDetectSpikeShortInput(t *testing.T) {
	assert.False(t, DetectSpike(nil))
	assert.False(t, DetectSpike([]float64{100}))
}
