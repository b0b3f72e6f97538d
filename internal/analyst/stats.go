package analyst

import (
	"math"

	"github.com/erp/salesengine/internal/domain/sales"
)

// round2 rounds to 2 decimal places. Applied only at the final display step;
// intermediate sums stay unrounded.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// average returns the mean of xs rounded to 2 decimals. An empty sample is
// surfaced as ErrEmptyDataset rather than NaN.
func average(xs []float64) (float64, error) {
	if len(xs) == 0 {
		return 0, sales.ErrEmptyDataset
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return round2(sum / float64(len(xs))), nil
}

// sampleStdDev returns the sample standard deviation of xs around mean,
// rounded to 2 decimals. The denominator is n-1, so a sample of one (or
// none) fails with ErrInsufficientData instead of returning 0 or NaN.
func sampleStdDev(xs []float64, mean float64) (float64, error) {
	if len(xs) <= 1 {
		return 0, sales.ErrInsufficientData
	}
	var sum float64
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}
	return round2(math.Sqrt(sum / float64(len(xs)-1))), nil
}
