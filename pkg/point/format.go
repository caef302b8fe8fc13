package point

import (
	"math"
	"strconv"
)

const (
	// IntegerEpsilon is the distance from an integer below which a value is
	// snapped to that integer.
	IntegerEpsilon = 1e-6

	// MaxDecimals is the number of fractional digits kept for non-integers.
	MaxDecimals = 4
)

// Round removes floating-point noise from a computed coordinate.
//
// A value within [IntegerEpsilon] of the nearest integer becomes that
// integer (2.9999999999 -> 3). Anything else is rounded to at most
// [MaxDecimals] fractional digits (1.23456 -> 1.2346), with exact halves
// rounded away from zero (1.03125 -> 1.0313). Negative zero is returned
// as 0.
func Round(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return n
	}

	r := math.Round(n)
	if math.Abs(r-n) < IntegerEpsilon {
		return positiveZero(r)
	}

	if isDecimalTie(n) {
		return positiveZero(math.Round(n*1e4) / 1e4)
	}

	s := strconv.FormatFloat(n, 'f', MaxDecimals, 64)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return n
	}
	return positiveZero(v)
}

// FormatNumber rounds n with [Round] and renders it in its shortest plain
// decimal form: no exponent, no trailing zeros, no decimal point for
// integers.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(Round(n), 'f', -1, 64)
}

// isDecimalTie reports whether n lies exactly halfway between two
// 4-decimal values. Those are the odd multiples of 1/32.
func isDecimalTie(n float64) bool {
	t := n * 32
	return t == math.Trunc(t) && math.Abs(t) < 1<<53 && math.Mod(t, 2) != 0
}

func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
