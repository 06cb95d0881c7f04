// Standard attribute keys for metric evaluation logging.
//
// Using these keys consistently keeps log output searchable across the
// library. The keys follow a hierarchical naming convention (e.g.
// "metric.name", "data.samples") to enable structured log filtering.

package log

// Evaluation context.
// These attributes identify the metric and component producing a record.
const (
	// MetricNameKey identifies the metric being computed.
	// Examples: "MSE", "R2s", "RMSE"
	MetricNameKey = "metric.name"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "regression", "registry"
	ComponentKey = "metric.component"

	// MultiOutputKey records the multi-output combination mode.
	// Standard values: "average", "raw_values", "weighted"
	MultiOutputKey = "metric.multi_output"

	// DecimalKey records the rounding precision applied to the result.
	DecimalKey = "metric.decimal"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of rows in the sample after cleaning.
	SamplesKey = "data.samples"

	// OutputsKey indicates the number of output columns (1 for 1-D samples).
	OutputsKey = "data.outputs"

	// RemovedRowsKey indicates how many rows the cleaning step dropped.
	RemovedRowsKey = "clean.removed_rows"
)

// Result context.
const (
	// ResultKey records a scalar metric result.
	ResultKey = "result.value"

	// ResultCountKey records the number of per-column values returned.
	ResultCountKey = "result.count"

	// DurationMsKey records the execution time of an evaluation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Error context.
const (
	// ErrorTypeKey categorizes the type of error encountered.
	// Examples: "ShapeMismatchError", "DegenerateInputError"
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging handler.
	StacktraceKey = "error.stacktrace"
)

// Standard attribute value constants for the multi-output modes.
const (
	MultiOutputAverage = "average"
	MultiOutputRaw     = "raw_values"
	MultiOutputWeights = "weighted"
)
