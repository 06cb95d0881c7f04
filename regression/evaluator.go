// Package regression implements regression evaluation metrics with
// multi-output support.
//
// An Evaluator holds one immutable sample: a pair of aligned ground-truth
// and prediction arrays, either 1-D (a single output) or 2-D (one column
// per independent output). Every metric runs through the same pipeline:
// clean, dispatch on shape, compute per column, combine across columns,
// round. Metric calls are pure functions of the sample and their options,
// so a single Evaluator can be shared across goroutines without
// synchronization.
package regression

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/galessiorob/permetrics/core/parallel"
	"github.com/galessiorob/permetrics/pkg/errors"
	"github.com/galessiorob/permetrics/pkg/log"
)

// columnMetric computes one scalar over a single aligned column pair.
// Implementations receive at least one element and may assume both slices
// have the same length.
type columnMetric func(yTrue, yPred []float64) (float64, error)

// Columns below this count are evaluated sequentially; goroutine startup
// costs more than the per-column arithmetic for narrow samples.
const parallelColumnThreshold = 8

// DefaultDecimal is the rounding precision applied when neither the
// evaluator nor the call specifies one.
const DefaultDecimal = 5

// Evaluator computes regression metrics over one ground-truth/prediction
// sample. Construct it with NewEvaluator or NewEvaluatorFromSlices; the
// sample is validated, optionally cleaned, and then never mutated.
type Evaluator struct {
	colsTrue [][]float64 // column-major, cleaned
	colsPred [][]float64
	n        int // rows after cleaning
	m        int // output columns
	oneDim   bool
	removed  int // rows dropped by cleaning

	clean        bool
	positiveOnly bool
	decimal      int
	logger       log.Logger
}

// NewEvaluator creates an Evaluator from two gonum matrices of identical
// shape. A length-n vector and an n×1 matrix are interchangeable; both are
// treated as a 1-D sample. Shape mismatch fails with ShapeMismatchError,
// an empty input with EmptyDataError.
func NewEvaluator(yTrue, yPred mat.Matrix, opts ...Option) (*Evaluator, error) {
	const op = "NewEvaluator"

	if yTrue == nil || yPred == nil {
		return nil, errors.NewValueError(op, "y_true and y_pred must be non-nil")
	}

	rt, ct := yTrue.Dims()
	rp, cp := yPred.Dims()
	if rt != rp || ct != cp {
		return nil, errors.NewShapeMismatchError(op, []int{rt, ct}, []int{rp, cp})
	}
	if rt == 0 || ct == 0 {
		return nil, errors.NewEmptyDataError(op, 0)
	}

	rowsTrue := make([][]float64, rt)
	rowsPred := make([][]float64, rt)
	for i := 0; i < rt; i++ {
		rowsTrue[i] = make([]float64, ct)
		rowsPred[i] = make([]float64, ct)
		for j := 0; j < ct; j++ {
			rowsTrue[i][j] = yTrue.At(i, j)
			rowsPred[i][j] = yPred.At(i, j)
		}
	}

	return newEvaluator(op, rowsTrue, rowsPred, ct, opts)
}

// NewEvaluatorFromSlices creates a 1-D Evaluator directly from two slices
// of equal length.
func NewEvaluatorFromSlices(yTrue, yPred []float64, opts ...Option) (*Evaluator, error) {
	const op = "NewEvaluatorFromSlices"

	if len(yTrue) != len(yPred) {
		return nil, errors.NewShapeMismatchError(op, []int{len(yTrue), 1}, []int{len(yPred), 1})
	}
	if len(yTrue) == 0 {
		return nil, errors.NewEmptyDataError(op, 0)
	}

	rowsTrue := make([][]float64, len(yTrue))
	rowsPred := make([][]float64, len(yPred))
	for i := range yTrue {
		rowsTrue[i] = []float64{yTrue[i]}
		rowsPred[i] = []float64{yPred[i]}
	}

	return newEvaluator(op, rowsTrue, rowsPred, 1, opts)
}

// newEvaluator applies options, runs the cleaning stage, and transposes
// the surviving rows into column-major storage.
func newEvaluator(op string, rowsTrue, rowsPred [][]float64, m int, opts []Option) (*Evaluator, error) {
	e := &Evaluator{
		m:       m,
		oneDim:  m == 1,
		decimal: DefaultDecimal,
		logger:  log.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.decimal < 0 {
		return nil, errors.NewValueError(op, "decimal precision must be non-negative")
	}

	total := len(rowsTrue)
	kept := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if e.keepRow(rowsTrue[i], rowsPred[i]) {
			kept = append(kept, i)
		}
	}
	e.removed = total - len(kept)
	if len(kept) == 0 {
		return nil, errors.NewEmptyDataError(op, e.removed)
	}

	e.n = len(kept)
	e.colsTrue = make([][]float64, m)
	e.colsPred = make([][]float64, m)
	for j := 0; j < m; j++ {
		e.colsTrue[j] = make([]float64, e.n)
		e.colsPred[j] = make([]float64, e.n)
		for i, row := range kept {
			e.colsTrue[j][i] = rowsTrue[row][j]
			e.colsPred[j][i] = rowsPred[row][j]
		}
	}

	if e.removed > 0 {
		errors.Warn(errors.NewDataCleaningWarning(op, e.removed, e.n))
		e.logger.Debug("cleaning removed rows",
			log.RemovedRowsKey, e.removed,
			log.SamplesKey, e.n,
			log.OutputsKey, e.m,
		)
	}
	return e, nil
}

// keepRow implements the cleaning policy for one row across both arrays.
func (e *Evaluator) keepRow(yTrue, yPred []float64) bool {
	for j := range yTrue {
		if e.clean && (!errors.IsFinite(yTrue[j]) || !errors.IsFinite(yPred[j])) {
			return false
		}
		if e.positiveOnly && (yTrue[j] <= 0 || yPred[j] <= 0) {
			return false
		}
	}
	return true
}

// Samples returns the number of rows after cleaning.
func (e *Evaluator) Samples() int { return e.n }

// Outputs returns the number of output columns (1 for a 1-D sample).
func (e *Evaluator) Outputs() int { return e.m }

// RemovedRows returns how many rows the cleaning stage dropped.
func (e *Evaluator) RemovedRows() int { return e.removed }

// evaluate is the shared metric pipeline: per-call option handling,
// per-column computation, multi-output combination and rounding. Every
// public metric method delegates here with its per-column closure.
func (e *Evaluator) evaluate(name string, fn columnMetric, opts []CallOption) (Result, error) {
	cfg := callConfig{decimal: e.decimal}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.decimal < 0 {
		return Result{}, errors.NewValueError(name, "decimal precision must be non-negative")
	}
	// A 1-D sample has nothing to combine, so the multi-output spec is
	// ignored entirely and never validated.
	if !e.oneDim {
		if err := cfg.multiOutput.validate(name, e.m); err != nil {
			return Result{}, err
		}
	}

	values := make([]float64, e.m)
	errs := make([]error, e.m)
	parallel.ParallelizeWithThreshold(e.m, parallelColumnThreshold, func(start, end int) {
		for j := start; j < end; j++ {
			values[j], errs[j] = fn(e.colsTrue[j], e.colsPred[j])
		}
	})
	for j, err := range errs {
		if err != nil {
			// Annotate degenerate-input failures with the offending column.
			var degErr *errors.DegenerateInputError
			if !e.oneDim && errors.As(err, &degErr) {
				degErr.Column = j
			}
			return Result{}, err
		}
	}

	if e.oneDim {
		v := roundTo(values[0], cfg.decimal)
		e.logDebug(name, cfg, 1)
		return newScalarResult(v), nil
	}

	combined := cfg.multiOutput.combine(values)
	rounded := make([]float64, len(combined))
	for i, v := range combined {
		rounded[i] = roundTo(v, cfg.decimal)
	}
	e.logDebug(name, cfg, len(rounded))

	if cfg.multiOutput.mode == modeRaw {
		return newColumnsResult(rounded), nil
	}
	return newScalarResult(rounded[0]), nil
}

func (e *Evaluator) logDebug(name string, cfg callConfig, count int) {
	e.logger.Debug("metric evaluated",
		log.MetricNameKey, name,
		log.SamplesKey, e.n,
		log.OutputsKey, e.m,
		log.MultiOutputKey, cfg.multiOutput.String(),
		log.DecimalKey, cfg.decimal,
		log.ResultCountKey, count,
	)
}

// roundTo rounds half-to-even at the given number of fractional digits,
// matching the rounding mode of IEEE 754 and numpy.
func roundTo(v float64, decimal int) float64 {
	scale := math.Pow10(decimal)
	return math.RoundToEven(v*scale) / scale
}
