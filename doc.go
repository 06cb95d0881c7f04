// Package permetrics provides performance metrics for regression models,
// with first-class multi-output support.
//
// The library scores a pair of ground-truth and prediction arrays against
// a suite of regression metrics (MSE, RMSE, MAE, R2s, NSE, KGE and more).
// Arrays may be 1-D, or 2-D with one column per independent output; 2-D
// samples are scored per column and then combined by an unweighted mean,
// a weighted mean, or reported raw.
//
// # Features
//
// - Uniform contract: every metric runs the same clean / dispatch /
// compute / combine / round pipeline
// - Multi-output aware: per-column results or configurable aggregation
// - Robust error handling: structured errors with stack traces instead of
// silent NaN propagation
// - Concurrent-safe: evaluators are immutable after construction
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/galessiorob/permetrics/regression"
//	)
//
//	func main() {
//	    eval, err := regression.NewEvaluatorFromSlices(
//	        []float64{3, -0.5, 2, 7},
//	        []float64{2.5, 0.0, 2, 8},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    mse, err := eval.MSE()
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println("MSE:", mse) // MSE: 0.375
//	}
//
// Metrics can also be selected by name through the registry:
//
//	results, err := eval.ComputeAll([]string{"MSE", "RMSE", "R2s"})
//
// # Packages
//
// - regression: the metric evaluator and registry
// - core/parallel: CPU-parallel helpers for per-column computation
// - pkg/errors: structured errors and the warning system
// - pkg/log: slog-compatible structured logging
package permetrics
