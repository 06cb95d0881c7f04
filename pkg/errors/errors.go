// Package errors provides error handling and the warning system for the
// whole library. Errors carry structured fields and stack traces so that
// callers can react programmatically and logs stay searchable.
package errors

import (
	"fmt"
	"log"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
)

// ===========================================================================
//
//	Global warning handling
//
// ===========================================================================
var (
	warningMutex   sync.Mutex
	warningHandler = func(w error) {
		// Default handler logs to standard error.
		log.Printf("permetrics-Warning: %v\n", w)
	}
	// zerolog warn hook, initialized lazily to avoid an import cycle.
	zerologWarnFunc func(warning error)
)

// SetWarningHandler installs a library-wide warning handler.
// Use it to silence or redirect advisory warnings such as
// UndefinedMetricWarning.
//
// Example:
//
//	errors.SetWarningHandler(func(w error) {
//	    // ignore warnings
//	})
func SetWarningHandler(handler func(w error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	warningHandler = handler
}

// SetZerologWarnFunc installs the zerolog warn hook (kept separate to avoid
// an import cycle with the logging package).
func SetZerologWarnFunc(warnFunc func(warning error)) {
	warningMutex.Lock()
	defer warningMutex.Unlock()
	zerologWarnFunc = warnFunc
}

// Warn emits a warning. When a zerolog hook is installed it takes priority,
// otherwise the plain handler is used.
func Warn(w error) {
	warningMutex.Lock()
	defer warningMutex.Unlock()

	if zerologWarnFunc != nil {
		zerologWarnFunc(w)
		return
	}

	if warningHandler != nil {
		warningHandler(w)
	}
}

// ===========================================================================
//
//	Warning types
//
// ===========================================================================

// UndefinedMetricWarning is raised when a metric value is ill-defined for
// the given data and a substitute value is being reported instead of an
// error. Example: a percentage error over a ground truth containing zeros.
type UndefinedMetricWarning struct {
	Metric    string
	Condition string
	Result    float64 // value reported under this condition
}

func (w *UndefinedMetricWarning) Error() string {
	return fmt.Sprintf("'%s' is ill-defined and being set to %f due to %s.", w.Metric, w.Result, w.Condition)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *UndefinedMetricWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("metric", w.Metric).
		Str("condition", w.Condition).
		Float64("result", w.Result).
		Str("type", "UndefinedMetricWarning")
}

// NewUndefinedMetricWarning creates a new UndefinedMetricWarning.
func NewUndefinedMetricWarning(metric, condition string, result float64) *UndefinedMetricWarning {
	return &UndefinedMetricWarning{Metric: metric, Condition: condition, Result: result}
}

// DataCleaningWarning is raised when the cleaning step drops rows from the
// sample. The evaluation continues on the surviving rows.
type DataCleaningWarning struct {
	Op       string
	Removed  int
	Remained int
}

func (w *DataCleaningWarning) Error() string {
	return fmt.Sprintf("%s: cleaning removed %d row(s), %d remain", w.Op, w.Removed, w.Remained)
}

// MarshalZerologObject adds the structured warning fields to a zerolog event.
func (w *DataCleaningWarning) MarshalZerologObject(e *zerolog.Event) {
	e.Str("operation", w.Op).
		Int("removed_rows", w.Removed).
		Int("remaining_rows", w.Remained).
		Str("type", "DataCleaningWarning")
}

// NewDataCleaningWarning creates a new DataCleaningWarning.
func NewDataCleaningWarning(op string, removed, remained int) *DataCleaningWarning {
	return &DataCleaningWarning{Op: op, Removed: removed, Remained: remained}
}

// ===========================================================================
//
//	Structured error types
//
// ===========================================================================

// ShapeMismatchError reports that the ground-truth and prediction arrays do
// not share a compatible shape after column-vector alignment.
type ShapeMismatchError struct {
	Op        string
	TrueShape []int
	PredShape []int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("permetrics: %s: shape mismatch between y_true %v and y_pred %v", e.Op, e.TrueShape, e.PredShape)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *ShapeMismatchError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Ints("true_shape", e.TrueShape).
		Ints("pred_shape", e.PredShape).
		Str("type", "ShapeMismatchError")
}

// NewShapeMismatchError creates a ShapeMismatchError with a stack trace.
func NewShapeMismatchError(op string, trueShape, predShape []int) error {
	err := &ShapeMismatchError{Op: op, TrueShape: trueShape, PredShape: predShape}
	return errors.WithStack(err)
}

// EmptyDataError reports that no rows are left to evaluate, either because
// the input was empty or because cleaning removed everything.
type EmptyDataError struct {
	Op      string
	Removed int // rows dropped by cleaning; 0 when the input itself was empty
}

func (e *EmptyDataError) Error() string {
	if e.Removed > 0 {
		return fmt.Sprintf("permetrics: %s: cleaning removed all %d row(s), nothing left to evaluate", e.Op, e.Removed)
	}
	return fmt.Sprintf("permetrics: %s: empty data, nothing to evaluate", e.Op)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *EmptyDataError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Int("removed_rows", e.Removed).
		Str("type", "EmptyDataError")
}

// NewEmptyDataError creates an EmptyDataError with a stack trace.
func NewEmptyDataError(op string, removed int) error {
	err := &EmptyDataError{Op: op, Removed: removed}
	return errors.WithStack(err)
}

// DegenerateInputError reports input on which a metric's formula is not
// defined, such as zero variance feeding a correlation denominator. The
// computation is rejected outright instead of letting a NaN or Inf leak
// into downstream results.
type DegenerateInputError struct {
	Metric string
	Column int // affected output column; -1 for 1-D samples
	Reason string
}

func (e *DegenerateInputError) Error() string {
	if e.Column >= 0 {
		return fmt.Sprintf("permetrics: %s: degenerate input in column %d: %s", e.Metric, e.Column, e.Reason)
	}
	return fmt.Sprintf("permetrics: %s: degenerate input: %s", e.Metric, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *DegenerateInputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("metric", e.Metric).
		Int("column", e.Column).
		Str("reason", e.Reason).
		Str("type", "DegenerateInputError")
}

// NewDegenerateInputError creates a DegenerateInputError with a stack trace.
func NewDegenerateInputError(metric string, column int, reason string) error {
	err := &DegenerateInputError{Metric: metric, Column: column, Reason: reason}
	return errors.WithStack(err)
}

// InvalidMultiOutputError reports an unusable multi-output specification:
// wrong weight count, negative weights, or a zero weight sum.
type InvalidMultiOutputError struct {
	Op      string
	Reason  string
	Columns int
	Weights []float64
}

func (e *InvalidMultiOutputError) Error() string {
	return fmt.Sprintf("permetrics: %s: invalid multi-output spec for %d column(s): %s", e.Op, e.Columns, e.Reason)
}

// MarshalZerologObject adds the structured error fields to a zerolog event.
func (e *InvalidMultiOutputError) MarshalZerologObject(event *zerolog.Event) {
	event.Str("operation", e.Op).
		Str("reason", e.Reason).
		Int("columns", e.Columns).
		Floats64("weights", e.Weights).
		Str("type", "InvalidMultiOutputError")
}

// NewInvalidMultiOutputError creates an InvalidMultiOutputError with a stack trace.
func NewInvalidMultiOutputError(op, reason string, columns int, weights []float64) error {
	err := &InvalidMultiOutputError{Op: op, Reason: reason, Columns: columns, Weights: weights}
	return errors.WithStack(err)
}

// ValueError reports an inappropriate argument value, such as a negative
// decimal precision or an unknown metric name.
type ValueError struct {
	Op      string
	Message string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("permetrics: %s: %s", e.Op, e.Message)
}

// NewValueError creates a ValueError with a stack trace.
func NewValueError(op, message string) error {
	err := &ValueError{Op: op, Message: message}
	return errors.WithStack(err)
}

// ===========================================================================
//
//	cockroachdb/errors wrappers
//
// ===========================================================================

// Is reports whether err matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with a message.
func Wrap(err error, message string) error {
	return errors.Wrap(err, message)
}

// Wrapf wraps an error with a format string.
func Wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}

// New creates a new error.
func New(message string) error {
	return errors.New(message)
}

// Newf creates a new formatted error.
func Newf(format string, args ...interface{}) error {
	return errors.Newf(format, args...)
}

// WithStack annotates an error with a stack trace.
func WithStack(err error) error {
	return errors.WithStack(err)
}

// ===========================================================================
//
//	Common error variables
//
// ===========================================================================

var (
	// ErrNotImplemented is returned for unimplemented functionality.
	ErrNotImplemented = New("not implemented")

	// ErrEmptyData is returned when empty data is passed in.
	ErrEmptyData = New("empty data")

	// ErrUnknownMetric is returned for a metric name the registry does not know.
	ErrUnknownMetric = New("unknown metric")
)
