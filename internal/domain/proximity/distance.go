package proximity

import (
	"math"
	"strconv"
)

// Distance is a single sensor reading in centimeters.
//
// A Distance is either a finite, positive value or Invalid, which means the
// sensor produced no trustworthy echo during the cycle.
type Distance struct {
	// centimeters holds the measured value; meaningless when valid is false.
	centimeters float64
	// valid is false for the Invalid sentinel.
	valid bool
}

// Invalid is the single failure value of a measurement cycle.
//
//nolint:gochecknoglobals // Sentinel value shared by the whole pipeline.
var Invalid = Distance{}

// Centimeters returns a valid Distance holding cm.
// NaN and infinities collapse to Invalid.
func Centimeters(cm float64) Distance {
	if math.IsNaN(cm) || math.IsInf(cm, 0) {
		return Invalid
	}

	return Distance{
		centimeters: cm,
		valid:       true,
	}
}

// Valid reports whether the distance carries a measurement.
func (d Distance) Valid() bool {
	return d.valid
}

// Centimeters returns the measured value and whether it is valid.
func (d Distance) Centimeters() (float64, bool) {
	return d.centimeters, d.valid
}

// String renders the distance for diagnostics.
func (d Distance) String() string {
	if !d.valid {
		return "invalid"
	}

	return strconv.FormatFloat(d.centimeters, 'f', 2, 64) + " cm"
}
