package main

import (
	"fmt"
	"math"
	"strings"
)

var numberSuffixes = []string{"", "K", "M", "B", "T", "Qa", "Qi", "Sx", "Sp", "Oc", "No", "Dc"}

// formatNumber renders a point total the way the client shows it: one decimal
// under a thousand, a two-decimal suffixed value up to the decillions, then
// scientific notation.
func formatNumber(value float64) string {
	if value < 1000 {
		s := fmt.Sprintf("%.1f", value)
		return strings.TrimSuffix(s, ".0")
	}

	tier := int(math.Floor(math.Log10(value) / 3))
	if tier >= len(numberSuffixes) {
		return fmt.Sprintf("%.2e", value)
	}

	scale := math.Pow(10, float64(tier*3))
	return fmt.Sprintf("%.2f%s", value/scale, numberSuffixes[tier])
}
