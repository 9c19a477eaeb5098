package formulas

import "math"

// FutureValue calculates the compound-growth value of a lump sum
// Formula: FV = principal * (1 + annualRate)^years
func FutureValue(principal, annualRate float64, years int) float64 {
	if years <= 0 {
		return principal
	}
	return principal * math.Pow(1+annualRate, float64(years))
}

// Round2 rounds to 2 decimal places
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Round4 rounds to 4 decimal places (used for return rates)
func Round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
