// Package calib fits model parameters to an observed discharge series.
package calib

import (
	"fmt"
	"math"
)

// RMSE is the root-mean-square error between simulated and observed series.
func RMSE(simulated, observed []float64) (float64, error) {
	if len(simulated) != len(observed) {
		return 0, fmt.Errorf("calib: series length mismatch (%d vs %d)", len(simulated), len(observed))
	}
	if len(simulated) == 0 {
		return 0, fmt.Errorf("calib: empty series")
	}

	sum := 0.0
	for i := range simulated {
		d := simulated[i] - observed[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(simulated))), nil
}

// NashSutcliffe is the model-efficiency coefficient: 1 for a perfect fit,
// 0 for a model no better than the observed mean, negative for worse.
func NashSutcliffe(simulated, observed []float64) (float64, error) {
	if len(simulated) != len(observed) {
		return 0, fmt.Errorf("calib: series length mismatch (%d vs %d)", len(simulated), len(observed))
	}
	if len(simulated) == 0 {
		return 0, fmt.Errorf("calib: empty series")
	}

	mean := 0.0
	for _, q := range observed {
		mean += q
	}
	mean /= float64(len(observed))

	var num, den float64
	for i := range simulated {
		d := simulated[i] - observed[i]
		num += d * d
		v := observed[i] - mean
		den += v * v
	}
	if den == 0 {
		return 0, fmt.Errorf("calib: observed series has zero variance")
	}
	return 1 - num/den, nil
}
