// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"errors"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Bell curve defaults and the range of candidate numbers.
const (
	DefaultLowPct  = 0.15
	DefaultHighPct = 0.85
	MaxBallNumber  = 90
)

var ErrInvalidPercentiles = errors.New("percentiles must satisfy 0 < low < high < 1")

// PredictBellCurve fits a normal distribution to draws and returns every
// number in 1..MaxBallNumber that falls between its lowPct and highPct
// quantiles. A flat history is widened to a standard deviation of 1.
func PredictBellCurve(draws []int, lowPct, highPct float64) ([]int, error) {
	if !(lowPct > 0 && lowPct < highPct && highPct < 1) {
		return nil, ErrInvalidPercentiles
	}
	if len(draws) == 0 {
		return []int{}, nil
	}

	values := make([]float64, len(draws))
	for i, d := range draws {
		values[i] = float64(d)
	}

	mean, stdDev := stat.PopMeanStdDev(values, nil)
	if stdDev == 0 {
		stdDev = 1.0
	}

	dist := distuv.Normal{Mu: mean, Sigma: stdDev}
	lower := dist.Quantile(lowPct)
	upper := dist.Quantile(highPct)

	predicted := []int{}
	for n := 1; n <= MaxBallNumber; n++ {
		x := float64(n)
		if lower <= x && x <= upper {
			predicted = append(predicted, n)
		}
	}
	return predicted, nil
}
