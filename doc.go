// Package linefit provides ordinary and weighted least-squares fitting of a
// straight line y = a + b*x, together with per-observation influence
// diagnostics for outlier detection.
//
// The core type is regress.Model, which holds the observation vectors,
// lazily fits and caches the slope and intercept, and derives fitted
// values, residuals and Cook's distances from the cached fit.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/statfolk/linefit/regress"
//	)
//
//	func main() {
//	    m := regress.New(
//	        regress.WithX([]float64{1, 2, 3, 4, 5, 6}),
//	        regress.WithY([]float64{1, 2.1, 3.2, 4, 7, 6}),
//	    )
//
//	    intercept, slope, err := m.Fit()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("y = %.3f + %.3f*x\n", intercept, slope)
//
//	    dists, err := m.CooksDistance()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("influence:", dists)
//	}
//
// # Packages
//
// - regress: the line-fitting model and influence diagnostics
// - metrics: regression quality metrics (MSE, RMSE, R²)
// - pkg/errors: structured error types with stack traces
// - pkg/log: slog-based structured logging helpers
//
// A Model is not safe for concurrent mutation; use one Model per goroutine
// or serialize access externally.
package linefit
