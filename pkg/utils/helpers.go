package utils

import "math"

// Percent returns part/total as a percentage, and 0 when total is 0 so
// callers never divide by zero.
func Percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// Round rounds v to the given number of decimal places, half away from
// zero.
func Round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
