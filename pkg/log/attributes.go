// Package log defines standard attribute keys for regression operations.
//
// Using these keys consistently keeps log output filterable: every fit or
// diagnostic computation is logged with the same vocabulary regardless of
// which package emitted the record.

package log

// Model and operation context.
const (
	// ModelNameKey identifies the model type, e.g. "regress.Model".
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "fitted_values", "residuals", "cooks_distance".
	OperationKey = "fit.operation"
)

// Data shape and characteristics.
const (
	// PointsKey is the number of (x, y) observations in the dataset.
	PointsKey = "data.points"

	// WeightedKey reports whether an explicit weight vector is in use.
	WeightedKey = "data.weighted"
)

// Fit results.
const (
	// SlopeKey records the fitted slope b of y = a + b*x.
	SlopeKey = "fit.slope"

	// InterceptKey records the fitted intercept a of y = a + b*x.
	InterceptKey = "fit.intercept"

	// R2ScoreKey records the coefficient of determination of a fit.
	R2ScoreKey = "metrics.r2_score"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Standard operation values.
const (
	OperationFit           = "fit"
	OperationFittedValues  = "fitted_values"
	OperationResiduals     = "residuals"
	OperationCooksDistance = "cooks_distance"
	OperationScore         = "score"
)
