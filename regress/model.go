// Package regress fits a straight line y = a + b*x by ordinary or weighted
// least squares and derives per-observation influence diagnostics.
//
// A Model caches its coefficients after the first successful fit. Replacing
// x or y through SetX/SetY invalidates the cache; mutating a slice in place
// after handing it to the model is not observed as a change.
package regress

import (
	"github.com/statfolk/linefit/core/model"
	"github.com/statfolk/linefit/pkg/errors"
)

// Model is a bivariate least-squares regression model.
//
// The zero value is usable: it holds empty vectors and no weights. Data is
// supplied either through options at construction or through SetX/SetY/
// SetWeights afterwards. A Model is not safe for concurrent mutation.
type Model struct {
	model.BaseEstimator

	x       []float64
	y       []float64
	weights []float64

	slope     float64
	intercept float64
}

// New creates a Model configured by the given options.
func New(opts ...Option) *Model {
	m := &Model{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// SetX replaces the x vector and invalidates any cached fit.
func (m *Model) SetX(x []float64) {
	m.x = x
	m.Reset()
}

// SetY replaces the y vector and invalidates any cached fit.
func (m *Model) SetY(y []float64) {
	m.y = y
	m.Reset()
}

// SetWeights replaces the weight vector. Passing nil restores implicit unit
// weights. Unlike SetX/SetY this does not invalidate a cached fit; only
// replacing x or y does.
func (m *Model) SetWeights(w []float64) {
	m.weights = w
}

// X returns the current x vector.
func (m *Model) X() []float64 { return m.x }

// Y returns the current y vector.
func (m *Model) Y() []float64 { return m.y }

// Weights returns the current weight vector, or nil when every observation
// implicitly carries weight 1.
func (m *Model) Weights() []float64 { return m.weights }

// Slope returns the cached slope, or 0 when the model is not fitted.
func (m *Model) Slope() float64 {
	if !m.IsFitted() {
		return 0
	}
	return m.slope
}

// Intercept returns the cached intercept, or 0 when the model is not fitted.
func (m *Model) Intercept() float64 {
	if !m.IsFitted() {
		return 0
	}
	return m.intercept
}

// weightAt returns the weight of observation i, defaulting to 1.
func (m *Model) weightAt(i int) float64 {
	if m.weights == nil {
		return 1
	}
	return m.weights[i]
}

// validate checks that x and y are non-empty, equal-length, and that any
// weight vector is aligned with them.
func (m *Model) validate(op string) error {
	if len(m.x) == 0 || len(m.x) != len(m.y) {
		return errors.NewValueError(op, "no data or length mismatch")
	}
	if m.weights != nil && len(m.weights) != len(m.x) {
		return errors.NewDimensionError(op, len(m.x), len(m.weights))
	}
	return nil
}
