package temperature

import "math"

// DefaultSpikeThreshold is the minimum adjacent-pair difference DetectSpike
// treats as a spike when the caller does not pass an explicit threshold.
const DefaultSpikeThreshold = 5.0

// AverageAcrossDays returns the mean of every reading across all records,
// rounded to two decimals. Readings are averaged as stored, with no scale
// normalization; callers wanting a physically meaningful average must convert
// the records to a common scale first. Returns 0 when there are no readings
// at all.
func AverageAcrossDays(records []*Record) float64 {
	var sum float64
	var n int
	for _, r := range records {
		for _, v := range r.Readings {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return Round2(sum / float64(n))
}

// HottestDay returns the date of the record with the highest mean reading
// normalized to Celsius. A record with no readings is assigned -Inf and can
// never win. Ties go to the first record in input order. Returns "" for
// empty input. Fails only if a record holds a scale Convert does not
// recognize.
func HottestDay(records []*Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	var best string
	bestMean := math.Inf(-1)
	first := true

	for _, r := range records {
		mean := math.Inf(-1)
		if len(r.Readings) > 0 {
			var sum float64
			for _, v := range r.Readings {
				c, err := Convert(v, r.Scale, Celsius)
				if err != nil {
					return "", err
				}
				sum += c
			}
			mean = sum / float64(len(r.Readings))
		}

		if first || mean > bestMean {
			best = r.Date
			bestMean = mean
			first = false
		}
	}

	return best, nil
}

// DetectExtremeDays returns the dates, in input order, of every record with
// at least one reading strictly greater than threshold. The threshold is
// compared against raw stored values regardless of each record's scale.
func DetectExtremeDays(records []*Record, threshold float64) []string {
	dates := make([]string, 0, len(records))
	for _, r := range records {
		for _, v := range r.Readings {
			if v > threshold {
				dates = append(dates, r.Date)
				break
			}
		}
	}
	return dates
}

// Range is one day's minimum and maximum reading.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// RangeForEachDay maps each record's date to its (min, max) rounded to two
// decimals; a record with no readings maps to (0, 0). When dates collide the
// later record wins.
func RangeForEachDay(records []*Record) map[string]Range {
	result := make(map[string]Range, len(records))
	for _, r := range records {
		s := r.Summary()
		result[r.Date] = Range{Min: s.Min, Max: s.Max}
	}
	return result
}

// Trend classifies each adjacent pair of readings as "up", "down" or "same",
// producing a sequence one shorter than the input. Fewer than two readings
// yield an empty sequence.
func Trend(temps []float64) []string {
	if len(temps) < 2 {
		return []string{}
	}

	trend := make([]string, 0, len(temps)-1)
	for i := 1; i < len(temps); i++ {
		switch {
		case temps[i] > temps[i-1]:
			trend = append(trend, "up")
		case temps[i] < temps[i-1]:
			trend = append(trend, "down")
		default:
			trend = append(trend, "same")
		}
	}
	return trend
}

// DetectSpike reports whether any adjacent pair of readings differs by at
// least the threshold (inclusive). Omitting the threshold uses
// DefaultSpikeThreshold. Fewer than two readings never spike.
func DetectSpike(temps []float64, threshold ...float64) bool {
	limit := DefaultSpikeThreshold
	if len(threshold) > 0 {
		limit = threshold[0]
	}

	for i := 1; i < len(temps); i++ {
		if math.Abs(temps[i]-temps[i-1]) >= limit {
			return true
		}
	}
	return false
}
