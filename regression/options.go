package regression

import (
	"github.com/galessiorob/permetrics/pkg/log"
)

// Option configures an Evaluator at construction time.
type Option func(*Evaluator)

// WithClean enables the cleaning step: any row containing a non-finite
// value (NaN or ±Inf) in either array is removed from both arrays in
// lock-step before any metric is computed.
func WithClean(clean bool) Option {
	return func(e *Evaluator) {
		e.clean = clean
	}
}

// WithPositiveOnly restricts the sample to rows where both the ground
// truth and the prediction are strictly positive. Log-scale metrics such
// as MSLE require this.
func WithPositiveOnly(positiveOnly bool) Option {
	return func(e *Evaluator) {
		e.positiveOnly = positiveOnly
	}
}

// WithDecimal sets the default number of fractional digits results are
// rounded to (default 5). Individual calls can override it with Decimal.
func WithDecimal(decimal int) Option {
	return func(e *Evaluator) {
		e.decimal = decimal
	}
}

// WithLogger attaches a structured logger to the evaluator. Cleaning and
// evaluation details are logged at debug level. The default is a no-op
// logger.
func WithLogger(logger log.Logger) Option {
	return func(e *Evaluator) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// CallOption configures a single metric call.
type CallOption func(*callConfig)

type callConfig struct {
	multiOutput MultiOutput
	decimal     int
}

// Raw requests per-column results for 2-D samples instead of collapsing
// them to a single scalar. It has no effect on 1-D samples.
func Raw() CallOption {
	return func(c *callConfig) {
		c.multiOutput = MultiOutput{mode: modeRaw}
	}
}

// Weighted requests a weighted average across output columns. The weight
// count must equal the number of columns; weights must be non-negative and
// sum to a positive value. The mean is normalized by the weight sum, so
// weights do not need to sum to 1.
func Weighted(weights []float64) CallOption {
	w := make([]float64, len(weights))
	copy(w, weights)
	return func(c *callConfig) {
		c.multiOutput = MultiOutput{mode: modeWeighted, weights: w}
	}
}

// Decimal overrides the evaluator's rounding precision for this call.
func Decimal(decimal int) CallOption {
	return func(c *callConfig) {
		c.decimal = decimal
	}
}
