// Package metrics provides quality measures for regression fits.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/statfolk/linefit/pkg/errors"
)

// MSE computes the mean squared error between observed and predicted values.
func MSE(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("MSE", "empty vector")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("MSE", n, len(yPred))
	}

	var sum float64
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}
	return sum / float64(n), nil
}

// RMSE computes the root mean squared error between observed and predicted
// values.
func RMSE(yTrue, yPred []float64) (float64, error) {
	mse, err := MSE(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	return math.Sqrt(mse), nil
}

// R2Score computes the coefficient of determination R² = 1 - RSS/TSS.
// A constant yTrue has zero total variation and no defined R².
func R2Score(yTrue, yPred []float64) (float64, error) {
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("R2Score", "empty vector")
	}
	if len(yPred) != n {
		return 0, errors.NewDimensionError("R2Score", n, len(yPred))
	}

	yMean := stat.Mean(yTrue, nil)

	var tss, rss float64
	for i := range yTrue {
		tss += (yTrue[i] - yMean) * (yTrue[i] - yMean)
		rss += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
	}

	if tss == 0 {
		return 0, errors.Newf("total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}
