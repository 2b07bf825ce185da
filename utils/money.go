package utils

import (
	"fmt"
	"math"
)

// RoundCurrency rounds to two decimals, half away from zero, matching
// standard currency display. math.Round breaks ties away from zero.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatAmount renders a currency amount the way bills print it: $1012.50.
func FormatAmount(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
