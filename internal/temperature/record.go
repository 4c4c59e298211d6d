package temperature

import "strings"

// Record holds one day's temperature readings and the scale they are
// expressed in. Date is an opaque label; it is never parsed or validated as
// a calendar date. Readings and Scale must always be read together: every
// reading is interpreted under the record's current scale.
type Record struct {
	Date     string    `json:"date"`
	Readings []float64 `json:"readings"`
	Scale    Scale     `json:"scale"`
}

// NewRecord creates a record, storing the scale lower-cased. The scale is
// not validated here; conversion is the validation boundary.
func NewRecord(date string, readings []float64, scale Scale) *Record {
	return &Record{
		Date:     date,
		Readings: readings,
		Scale:    Scale(strings.ToLower(string(scale))),
	}
}

// ConvertTo rescales every reading into target and updates the stored scale.
// A target equal to the current scale is a no-op. The readings slice is only
// swapped in once every value converted, so an error leaves the record
// untouched.
func (r *Record) ConvertTo(target Scale) error {
	to, err := ParseScale("target", string(target))
	if err != nil {
		return err
	}
	if to == r.Scale {
		return nil
	}

	converted := make([]float64, len(r.Readings))
	for i, v := range r.Readings {
		c, err := Convert(v, r.Scale, to)
		if err != nil {
			return err
		}
		converted[i] = c
	}

	r.Readings = converted
	r.Scale = to
	return nil
}

// Summary is the fixed-field per-record report.
type Summary struct {
	Date  string  `json:"date"`
	Scale Scale   `json:"scale"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Avg   float64 `json:"avg"`
}

// Summary computes min/max/avg over the readings, rounded to two decimals.
// A record with no readings reports 0 for all three; that sentinel is policy,
// not a missing-data signal.
func (r *Record) Summary() Summary {
	s := Summary{Date: r.Date, Scale: r.Scale}
	if len(r.Readings) == 0 {
		return s
	}

	min, max := r.Readings[0], r.Readings[0]
	var sum float64
	for _, v := range r.Readings {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}

	s.Min = Round2(min)
	s.Max = Round2(max)
	s.Avg = Round2(sum / float64(len(r.Readings)))
	return s
}

// IsAboveThreshold reports whether every reading is strictly greater than
// threshold, in whatever scale the readings are currently stored in.
// Vacuously true for empty readings.
func (r *Record) IsAboveThreshold(threshold float64) bool {
	for _, v := range r.Readings {
		if v <= threshold {
			return false
		}
	}
	return true
}

// IsAtOrAboveThreshold is IsAboveThreshold with >= instead of >.
func (r *Record) IsAtOrAboveThreshold(threshold float64) bool {
	for _, v := range r.Readings {
		if v < threshold {
			return false
		}
	}
	return true
}
