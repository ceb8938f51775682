package regress

import (
	"github.com/statfolk/linefit/metrics"
	"github.com/statfolk/linefit/pkg/errors"
)

// Fit computes the least-squares line through the current data and caches
// its coefficients. It returns (intercept, slope) in that order.
//
// The slope is the ratio of the weighted x/y co-deviation to the weighted
// squared x-deviation. The degeneracy test on the squared x-deviation is an
// exact zero comparison, not a tolerance check.
func (m *Model) Fit() (intercept, slope float64, err error) {
	const op = "Model.Fit"

	if err := m.validate(op); err != nil {
		return 0, 0, err
	}

	sums, err := m.Sums()
	if err != nil {
		return 0, 0, err
	}

	n := float64(len(m.x))

	sqdevX := sums.XX - sums.X*sums.X/n
	if sqdevX == 0 {
		return 0, 0, errors.NewDegenerateFitError(op, "x values all equal; slope undefined")
	}

	sqdevXY := sums.XY - sums.X*sums.Y/n
	slope = sqdevXY / sqdevX
	intercept = (sums.Y - slope*sums.X) / n

	m.slope = slope
	m.intercept = intercept
	m.SetFitted()

	return intercept, slope, nil
}

// Coefficients returns (intercept, slope), fitting first if no cached fit
// is available. Repeated calls without replacing x or y return identical
// values without recomputation.
func (m *Model) Coefficients() (intercept, slope float64, err error) {
	if m.IsFitted() {
		return m.intercept, m.slope, nil
	}
	return m.Fit()
}

// FittedValues returns the predicted y for each x, in input order.
func (m *Model) FittedValues() ([]float64, error) {
	intercept, slope, err := m.Coefficients()
	if err != nil {
		return nil, err
	}

	yf := make([]float64, len(m.x))
	for i, x := range m.x {
		yf[i] = intercept + slope*x
	}
	return yf, nil
}

// Residuals returns y_i - fitted_i for each observation, in input order.
func (m *Model) Residuals() ([]float64, error) {
	yf, err := m.FittedValues()
	if err != nil {
		return nil, err
	}

	res := make([]float64, len(m.y))
	for i := range res {
		res[i] = m.y[i] - yf[i]
	}
	return res, nil
}

// Score returns the coefficient of determination R² of the fitted line
// against the observed y.
func (m *Model) Score() (float64, error) {
	yf, err := m.FittedValues()
	if err != nil {
		return 0, err
	}
	return metrics.R2Score(m.y, yf)
}
