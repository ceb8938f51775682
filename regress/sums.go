package regress

import (
	"github.com/statfolk/linefit/pkg/errors"
)

// Sums holds the five weighted sums a least-squares fit is derived from.
// With no weight vector set, each weight is 1 and these are the ordinary
// sums over the data.
type Sums struct {
	X  float64 // Σ w*x
	Y  float64 // Σ w*y
	XX float64 // Σ w*x²
	YY float64 // Σ w*y²
	XY float64 // Σ w*x*y
}

// Sums computes the weighted sums over the current data. The result is
// never cached; it is always consistent with the vectors as they stand.
func (m *Model) Sums() (Sums, error) {
	const op = "Model.Sums"

	if len(m.x) != len(m.y) {
		return Sums{}, errors.NewValueError(op, "no data or length mismatch")
	}
	if m.weights != nil && len(m.weights) != len(m.x) {
		return Sums{}, errors.NewDimensionError(op, len(m.x), len(m.weights))
	}

	var s Sums
	for i, x := range m.x {
		w := m.weightAt(i)
		y := m.y[i]

		s.X += w * x
		s.Y += w * y
		s.XX += w * x * x
		s.YY += w * y * y
		s.XY += w * x * y
	}
	return s, nil
}
