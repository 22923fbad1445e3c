package gm

import "math"

const (
	// FuzzyEpsilon is the tolerance of FuzzyCompare relative to the interval size.
	FuzzyEpsilon = 1e-6

	// FuzzyAbsEpsilon is the tolerance used for an empty interval.
	FuzzyAbsEpsilon = 1e-12
)

// FuzzyCompare compares a and b and returns -1 if a is less than b, 1 if a is
// greater than b and 0 if both are equal within FuzzyEpsilon times the
// size of the interval span.
func FuzzyCompare(a, b, span float64) int {
	eps := math.Abs(FuzzyEpsilon * span)
	if eps == 0 {
		eps = FuzzyAbsEpsilon
	}

	switch {
	case b-a > eps:
		return -1
	case a-b > eps:
		return 1
	default:
		return 0
	}
}

// FuzzyIsZero reports whether value is zero relative to span.
func FuzzyIsZero(value, span float64) bool {
	return FuzzyCompare(value, 0, span) == 0
}
