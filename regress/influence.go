package regress

import (
	"github.com/statfolk/linefit/core/parallel"
	"github.com/statfolk/linefit/pkg/errors"
)

// Leave-one-out refits are independent, so above this point count they are
// distributed across CPU cores. Results are written by index either way,
// which keeps the output in original observation order.
const cooksParallelThreshold = 256

// CooksDistance measures the influence of each observation: the model is
// refit with that observation removed, and the squared shift in the fitted
// values over the whole dataset is scaled by the full model's residual
// variance. The result holds one distance per observation, in input order.
//
// The leave-one-out refits are always unweighted, even when the outer model
// carries a weight vector. For n <= 2 the distances are zero or negative
// rather than rejected. A zero residual sum of squares (perfect fit) has no
// defined distance and returns a DegenerateFitError.
func (m *Model) CooksDistance() (dists []float64, err error) {
	const op = "Model.CooksDistance"
	defer errors.Recover(&err, op)

	yf, err := m.FittedValues()
	if err != nil {
		return nil, err
	}
	res, err := m.Residuals()
	if err != nil {
		return nil, err
	}

	var ssr float64
	for _, r := range res {
		ssr += r * r
	}
	if ssr == 0 {
		return nil, errors.NewDegenerateFitError(op, "residual sum of squares is zero")
	}

	n := len(m.y)
	dists = make([]float64, n)
	errs := make([]error, n)

	parallel.ParallelizeWithThreshold(n, cooksParallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			a, b, fitErr := m.leaveOneOutFit(i)
			if fitErr != nil {
				errs[i] = errors.Wrapf(fitErr, "leave-one-out fit without observation %d", i)
				continue
			}

			var shift float64
			for j, xj := range m.x {
				d := yf[j] - (a + b*xj)
				shift += d * d
			}
			dists[i] = shift * float64(n-2) / ssr / 2
		}
	})

	for _, e := range errs {
		if e != nil {
			return nil, e
		}
	}
	return dists, nil
}

// leaveOneOutFit fits an unweighted model on the data with observation i
// removed and returns its (intercept, slope).
func (m *Model) leaveOneOutFit(i int) (intercept, slope float64, err error) {
	n := len(m.x)
	x := make([]float64, 0, n-1)
	y := make([]float64, 0, n-1)
	x = append(x, m.x[:i]...)
	x = append(x, m.x[i+1:]...)
	y = append(y, m.y[:i]...)
	y = append(y, m.y[i+1:]...)

	sub := New(WithX(x), WithY(y))
	return sub.Fit()
}
