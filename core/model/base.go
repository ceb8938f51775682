// Package model provides the shared estimator lifecycle for linefit models.
package model

// EstimatorState represents the fit state of a model.
type EstimatorState int

const (
	// NotFitted means no valid coefficients are cached.
	NotFitted EstimatorState = iota
	// Fitted means coefficients are cached and usable.
	Fitted
)

// BaseEstimator is embedded by models to track whether a fit has been
// computed. Replacing a model's data must call Reset so that stale
// coefficients are never served.
type BaseEstimator struct {
	state EstimatorState
}

// IsFitted reports whether the model holds valid cached coefficients.
func (e *BaseEstimator) IsFitted() bool {
	return e.state == Fitted
}

// SetFitted marks the model as holding valid cached coefficients.
func (e *BaseEstimator) SetFitted() {
	e.state = Fitted
}

// Reset invalidates any cached coefficients.
func (e *BaseEstimator) Reset() {
	e.state = NotFitted
}
