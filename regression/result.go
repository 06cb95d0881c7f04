package regression

import (
	"fmt"
	"strings"
)

// Result holds the outcome of a metric evaluation: either a single scalar,
// or an ordered sequence of per-column values when the raw_values
// multi-output mode was requested on a 2-D sample.
type Result struct {
	values []float64
	scalar bool
}

func newScalarResult(v float64) Result {
	return Result{values: []float64{v}, scalar: true}
}

func newColumnsResult(values []float64) Result {
	return Result{values: values}
}

// IsScalar reports whether the result is a single value.
func (r Result) IsScalar() bool {
	return r.scalar
}

// Scalar returns the single result value. It panics when the result holds
// per-column values; check IsScalar first when the multi-output mode is not
// known statically.
func (r Result) Scalar() float64 {
	if !r.scalar {
		panic("permetrics: Scalar() called on a per-column result")
	}
	return r.values[0]
}

// Values returns the result as an ordered slice. For a scalar result the
// slice has length 1. The slice must not be modified.
func (r Result) Values() []float64 {
	return r.values
}

// Len returns the number of values in the result.
func (r Result) Len() int {
	return len(r.values)
}

// String implements fmt.Stringer.
func (r Result) String() string {
	if r.scalar {
		return fmt.Sprintf("%g", r.values[0])
	}
	parts := make([]string, len(r.values))
	for i, v := range r.values {
		parts[i] = fmt.Sprintf("%g", v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
