package service

import (
	"fmt"
	"math"
)

// Rate returns numerator/denominator as a percentage rounded half-up to two decimals.
// A zero denominator yields 0, never NaN or Inf.
func Rate(numerator, denominator int) float64 {
	if denominator <= 0 || numerator <= 0 {
		return 0
	}
	return float64(divRoundHalfUp(int64(numerator)*10000, int64(denominator))) / 100
}

// WholePercent is Rate rounded half-up to an integer percentage.
func WholePercent(numerator, denominator int) int {
	if denominator <= 0 || numerator <= 0 {
		return 0
	}
	return int(divRoundHalfUp(int64(numerator)*100, int64(denominator)))
}

// AverageRating is the mean rating rounded half-up to the given number of decimals; 0 without feedback.
func AverageRating(sum, count, decimals int) float64 {
	if count <= 0 || sum <= 0 {
		return 0
	}
	scale := int64(math.Pow10(decimals))
	return float64(divRoundHalfUp(int64(sum)*scale, int64(count))) / float64(scale)
}

// FormatRating renders a mean rating as a fixed one-decimal string, e.g. "4.5".
func FormatRating(sum, count int) string {
	return fmt.Sprintf("%.1f", AverageRating(sum, count, 1))
}

// roundMean rounds a non-negative mean half-up to the given decimals.
func roundMean(value float64, decimals int) float64 {
	if value <= 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0
	}
	scale := math.Pow10(decimals)
	// The nudge absorbs binary representation error such as 2.25 being stored as 2.2499999.
	return math.Floor(value*scale+0.5+1e-9) / scale
}

func divRoundHalfUp(numerator, denominator int64) int64 {
	return (2*numerator + denominator) / (2 * denominator)
}
