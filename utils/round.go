package utils

import "math"

// Round2 rounds to two decimal places, used for percentage reporting.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
