package regression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/galessiorob/permetrics/pkg/errors"
)

func TestComputeByName(t *testing.T) {
	e := mustEvaluator(t, []float64{3, -0.5, 2, 7}, []float64{2.5, 0.0, 2, 8})

	direct, err := e.MSE()
	require.NoError(t, err)

	// Canonical name, lower case, and long alias all resolve to the same
	// computation.
	for _, name := range []string{"MSE", "mse", "mean_squared_error", "Mean_Squared_Error"} {
		got, err := e.Compute(name)
		require.NoError(t, err, "Compute(%q)", name)
		assert.Equal(t, direct.Scalar(), got.Scalar(), "Compute(%q)", name)
	}
}

func TestComputeUnknownMetric(t *testing.T) {
	e := mustEvaluator(t, []float64{1, 2}, []float64{1, 2})

	_, err := e.Compute("bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrUnknownMetric))
}

func TestComputeAll(t *testing.T) {
	e := mustEvaluator(t, []float64{3, -0.5, 2, 7}, []float64{2.5, 0.0, 2, 8})

	results, err := e.ComputeAll([]string{"MSE", "rmse", "mean_absolute_error"})
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Keys are canonical regardless of the requested spelling.
	assert.Contains(t, results, "MSE")
	assert.Contains(t, results, "RMSE")
	assert.Contains(t, results, "MAE")
	assert.InDelta(t, 0.375, results["MSE"].Scalar(), 1e-10)
	assert.InDelta(t, 0.5, results["MAE"].Scalar(), 1e-10)
}

func TestComputeAllIsAtomic(t *testing.T) {
	// Constant ground truth makes R2s fail; no partial map may escape.
	e := mustEvaluator(t, []float64{2, 2, 2}, []float64{1, 2, 3})

	results, err := e.ComputeAll([]string{"MSE", "R2s"})
	require.Error(t, err)
	assert.Nil(t, results)

	var degErr *errors.DegenerateInputError
	assert.True(t, errors.As(err, &degErr))
}

func TestComputeAllUnknownName(t *testing.T) {
	e := mustEvaluator(t, []float64{1, 2}, []float64{1, 2})

	results, err := e.ComputeAll([]string{"MSE", "nope"})
	require.Error(t, err)
	assert.Nil(t, results)
	assert.True(t, errors.Is(err, errors.ErrUnknownMetric))
}

func TestMetricsListsEverything(t *testing.T) {
	names := Metrics()
	assert.Len(t, names, len(metricTable))
	assert.Contains(t, names, "MSE")
	assert.Contains(t, names, "R2s")

	// Sorted output.
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}

	// Every listed name must resolve through Compute.
	e := mustEvaluator(t, []float64{1, 2, 3, 4}, []float64{1.1, 2.1, 2.9, 4.2})
	for _, name := range names {
		_, err := e.Compute(name)
		assert.NoError(t, err, "Compute(%q)", name)
	}
}
