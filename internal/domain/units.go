package domain

import "math"

const (
	kib = 1024.0
	mib = kib * 1024
	gib = mib * 1024
)

// gigabyteFactors maps a reported unit to the multiplier that converts it to gigabytes.
var gigabyteFactors = map[string]float64{
	"B":  1 / gib,
	"KB": 1 / mib,
	"MB": 1 / kib,
	"GB": 1,
	"TB": kib,
	"PB": mib,
}

// KnownUnits lists the units in ascending order of size.
var KnownUnits = []string{"B", "KB", "MB", "GB", "TB", "PB"}

// GigabyteFactor returns the multiplier for unit. Unknown units fall back to
// the byte factor and report false.
func GigabyteFactor(unit string) (float64, bool) {
	f, ok := gigabyteFactors[unit]
	if !ok {
		return gigabyteFactors["B"], false
	}
	return f, true
}

// ToGigabytes converts value in unit to gigabytes rounded to 2 decimals.
// The boolean is false when unit was not recognized and bytes were assumed.
func ToGigabytes(value float64, unit string) (float64, bool) {
	f, known := GigabyteFactor(unit)
	return RoundGB(value * f), known
}

// RoundGB rounds half away from zero to 2 decimal places.
func RoundGB(v float64) float64 {
	return math.Round(v*100) / 100
}
