package formulas

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Mean calculates the arithmetic mean of a slice of float64 values
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return stat.Mean(data, nil)
}

// WeightedAverage calculates Σ(values[i] * weights[i]) / Σ(weights[i])
func WeightedAverage(values, weights []float64) float64 {
	if len(values) == 0 || len(values) != len(weights) {
		return 0
	}
	total := floats.Sum(weights)
	if total == 0 {
		return 0
	}
	return floats.Dot(values, weights) / total
}

// QuadraticSum calculates sqrt(Σ values[i]²), the Euclidean norm.
// Used to combine independent volatility contributions.
func QuadraticSum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Norm(values, 2)
}
