package regression

import (
	"sort"
	"strings"

	"github.com/galessiorob/permetrics/pkg/errors"
)

// metricEntry binds a canonical metric name, its long-form aliases and the
// method that computes it.
type metricEntry struct {
	name    string
	aliases []string
	fn      func(*Evaluator, ...CallOption) (Result, error)
}

var metricTable = []metricEntry{
	{"MSE", []string{"mean_squared_error"}, (*Evaluator).MSE},
	{"RMSE", []string{"root_mean_squared_error"}, (*Evaluator).RMSE},
	{"MAE", []string{"mean_absolute_error"}, (*Evaluator).MAE},
	{"ME", []string{"max_error"}, (*Evaluator).ME},
	{"MedAE", []string{"median_absolute_error"}, (*Evaluator).MedAE},
	{"MSLE", []string{"mean_squared_log_error"}, (*Evaluator).MSLE},
	{"MRE", []string{"mean_relative_error"}, (*Evaluator).MRE},
	{"MAPE", []string{"mean_absolute_percentage_error"}, (*Evaluator).MAPE},
	{"SMAPE", []string{"symmetric_mean_absolute_percentage_error"}, (*Evaluator).SMAPE},
	{"NSE", []string{"nash_sutcliffe_efficiency"}, (*Evaluator).NSE},
	{"WI", []string{"willmott_index"}, (*Evaluator).WI},
	{"R", []string{"pearson_correlation_coefficient"}, (*Evaluator).R},
	{"R2s", []string{"pearson_correlation_coefficient_square"}, (*Evaluator).R2s},
	{"R2", []string{"coefficient_of_determination"}, (*Evaluator).R2},
	{"CI", []string{"confidence_index", "performance_index"}, (*Evaluator).CI},
	{"EVS", []string{"explained_variance_score"}, (*Evaluator).EVS},
	{"VAF", []string{"variance_accounted_for"}, (*Evaluator).VAF},
	{"RAE", []string{"relative_absolute_error"}, (*Evaluator).RAE},
	{"KGE", []string{"kling_gupta_efficiency"}, (*Evaluator).KGE},
	{"A10", []string{"a10_index"}, (*Evaluator).A10},
	{"A20", []string{"a20_index"}, (*Evaluator).A20},
}

// metricLookup maps lowercased canonical names and aliases to table indices.
var metricLookup = func() map[string]int {
	lookup := make(map[string]int, len(metricTable)*2)
	for i, entry := range metricTable {
		lookup[strings.ToLower(entry.name)] = i
		for _, alias := range entry.aliases {
			lookup[strings.ToLower(alias)] = i
		}
	}
	return lookup
}()

// Metrics returns the canonical names of all registered metrics, sorted.
func Metrics() []string {
	names := make([]string, len(metricTable))
	for i, entry := range metricTable {
		names[i] = entry.name
	}
	sort.Strings(names)
	return names
}

// Compute evaluates a metric selected by name. Both canonical short names
// ("MSE", "R2s") and long aliases ("mean_squared_error") resolve,
// case-insensitively. Unknown names fail with ErrUnknownMetric.
func (e *Evaluator) Compute(name string, opts ...CallOption) (Result, error) {
	i, ok := metricLookup[strings.ToLower(name)]
	if !ok {
		return Result{}, errors.Wrapf(errors.ErrUnknownMetric, "%q", name)
	}
	return metricTable[i].fn(e, opts...)
}

// ComputeAll evaluates several metrics by name and returns a map keyed by
// canonical name. The shared opts apply to every metric. Evaluation is
// atomic: the first failure aborts and no partial map is returned.
func (e *Evaluator) ComputeAll(names []string, opts ...CallOption) (map[string]Result, error) {
	results := make(map[string]Result, len(names))
	for _, name := range names {
		i, ok := metricLookup[strings.ToLower(name)]
		if !ok {
			return nil, errors.Wrapf(errors.ErrUnknownMetric, "%q", name)
		}
		result, err := metricTable[i].fn(e, opts...)
		if err != nil {
			return nil, errors.Wrapf(err, "computing %s", metricTable[i].name)
		}
		results[metricTable[i].name] = result
	}
	return results, nil
}
