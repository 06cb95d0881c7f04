package regression

import (
	"strconv"

	"github.com/galessiorob/permetrics/pkg/errors"
	"github.com/galessiorob/permetrics/pkg/log"
)

// multiOutputMode selects how per-column metric values are combined.
type multiOutputMode int

const (
	// modeAverage is the default: unweighted arithmetic mean of the
	// per-column values, collapsing to a single scalar.
	modeAverage multiOutputMode = iota

	// modeRaw returns the per-column values unchanged.
	modeRaw

	// modeWeighted collapses to a weighted mean,
	// sum(w_j * v_j) / sum(w_j).
	modeWeighted
)

// MultiOutput is the validated, tagged form of a multi-output
// specification. The zero value means "average across columns". Raw and
// weight-vector forms are built with Raw and Weighted call options; runtime
// type switching never leaves the option boundary.
type MultiOutput struct {
	mode    multiOutputMode
	weights []float64
}

func (m MultiOutput) String() string {
	switch m.mode {
	case modeRaw:
		return log.MultiOutputRaw
	case modeWeighted:
		return log.MultiOutputWeights
	default:
		return log.MultiOutputAverage
	}
}

// validate checks the combination mode against the number of output
// columns. Weights
// must match the column count, be non-negative, and sum to a positive
// value. op names the metric for error reporting.
func (m MultiOutput) validate(op string, columns int) error {
	if m.mode != modeWeighted {
		return nil
	}
	if len(m.weights) != columns {
		return errors.NewInvalidMultiOutputError(op,
			"expected "+strconv.Itoa(columns)+" weight(s), got "+strconv.Itoa(len(m.weights)),
			columns, m.weights)
	}
	sum := 0.0
	for _, w := range m.weights {
		if w < 0 {
			return errors.NewInvalidMultiOutputError(op, "negative weight", columns, m.weights)
		}
		sum += w
	}
	if sum <= 0 {
		return errors.NewInvalidMultiOutputError(op, "weights sum to zero", columns, m.weights)
	}
	return nil
}

// combine reduces per-column values to the final result. Raw mode returns
// the values as-is; the other modes collapse to a single scalar. validate
// must have passed before combine is called.
func (m MultiOutput) combine(values []float64) []float64 {
	switch m.mode {
	case modeRaw:
		return values
	case modeWeighted:
		var sum, wsum float64
		for j, v := range values {
			sum += m.weights[j] * v
			wsum += m.weights[j]
		}
		return []float64{sum / wsum}
	default:
		sum := 0.0
		for _, v := range values {
			sum += v
		}
		return []float64{sum / float64(len(values))}
	}
}
