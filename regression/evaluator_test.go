package regression

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/galessiorob/permetrics/pkg/errors"
	"github.com/galessiorob/permetrics/pkg/log"
)

func TestNewEvaluatorShapeValidation(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   mat.Matrix
		yPred   mat.Matrix
		wantErr bool
	}{
		{
			name:  "matching vectors",
			yTrue: mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred: mat.NewVecDense(3, []float64{1, 2, 3}),
		},
		{
			name:  "vector against column matrix",
			yTrue: mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred: mat.NewDense(3, 1, []float64{1, 2, 3}),
		},
		{
			name:  "matching 2-D",
			yTrue: mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
			yPred: mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
		},
		{
			name:    "row count mismatch",
			yTrue:   mat.NewVecDense(3, []float64{1, 2, 3}),
			yPred:   mat.NewVecDense(4, []float64{1, 2, 3, 4}),
			wantErr: true,
		},
		{
			name:    "column count mismatch",
			yTrue:   mat.NewDense(2, 2, []float64{1, 2, 3, 4}),
			yPred:   mat.NewDense(2, 3, []float64{1, 2, 3, 4, 5, 6}),
			wantErr: true,
		},
		{
			name:    "nil input",
			yTrue:   nil,
			yPred:   mat.NewVecDense(2, []float64{1, 2}),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEvaluator(tt.yTrue, tt.yPred)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, e)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, e)
		})
	}
}

func TestNewEvaluatorShapeMismatchType(t *testing.T) {
	_, err := NewEvaluator(
		mat.NewVecDense(3, []float64{1, 2, 3}),
		mat.NewVecDense(4, []float64{1, 2, 3, 4}),
	)
	require.Error(t, err)

	var shapeErr *errors.ShapeMismatchError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, []int{3, 1}, shapeErr.TrueShape)
	assert.Equal(t, []int{4, 1}, shapeErr.PredShape)
}

func TestNewEvaluatorFromSlicesEmpty(t *testing.T) {
	_, err := NewEvaluatorFromSlices(nil, nil)
	require.Error(t, err)

	var emptyErr *errors.EmptyDataError
	assert.True(t, errors.As(err, &emptyErr))
}

func TestCleaningRemovesNonFiniteRows(t *testing.T) {
	yTrue := []float64{3, math.NaN(), 2, 7, -0.5}
	yPred := []float64{2.5, 1, 2, 8, 0}

	e, err := NewEvaluatorFromSlices(yTrue, yPred, WithClean(true))
	require.NoError(t, err)
	assert.Equal(t, 4, e.Samples())
	assert.Equal(t, 1, e.RemovedRows())

	// Surviving rows must contribute exactly as in a hand-cleaned sample.
	got, err := e.MSE()
	require.NoError(t, err)
	assert.InDelta(t, 0.375, got.Scalar(), 1e-10)
}

func TestCleaningInfInPredictions(t *testing.T) {
	yTrue := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	yPred := mat.NewDense(3, 2, []float64{1, 2, 3, math.Inf(1), 5, 6})

	e, err := NewEvaluator(yTrue, yPred, WithClean(true))
	require.NoError(t, err)
	// The whole second row goes, both columns.
	assert.Equal(t, 2, e.Samples())
	assert.Equal(t, 2, e.Outputs())
	assert.Equal(t, 1, e.RemovedRows())
}

func TestCleaningDisabledKeepsNaN(t *testing.T) {
	e, err := NewEvaluatorFromSlices([]float64{1, math.NaN()}, []float64{1, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, e.Samples())

	// Without cleaning the NaN flows through the arithmetic.
	got, err := e.MSE()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Scalar()))
}

func TestCleaningRemovesEverything(t *testing.T) {
	nan := math.NaN()
	_, err := NewEvaluatorFromSlices([]float64{nan, nan}, []float64{1, 2}, WithClean(true))
	require.Error(t, err)

	var emptyErr *errors.EmptyDataError
	require.True(t, errors.As(err, &emptyErr))
	assert.Equal(t, 2, emptyErr.Removed)
}

func TestCleaningEmitsWarning(t *testing.T) {
	var captured error
	errors.SetWarningHandler(func(w error) { captured = w })
	defer errors.SetWarningHandler(func(error) {})

	_, err := NewEvaluatorFromSlices(
		[]float64{1, math.NaN(), 3},
		[]float64{1, 2, 3},
		WithClean(true),
	)
	require.NoError(t, err)

	var cleanWarn *errors.DataCleaningWarning
	require.True(t, errors.As(captured, &cleanWarn))
	assert.Equal(t, 1, cleanWarn.Removed)
	assert.Equal(t, 2, cleanWarn.Remained)
}

func TestEvaluatorLogging(t *testing.T) {
	logger, _ := log.NewTestLogger(log.LevelDebug)

	e, err := NewEvaluatorFromSlices(
		[]float64{1, math.NaN(), 3},
		[]float64{1, 2, 3},
		WithClean(true),
		WithLogger(logger),
	)
	require.NoError(t, err)

	assert.True(t, logger.ContainsMessage("cleaning removed rows"))

	_, err = e.MSE()
	require.NoError(t, err)
	assert.True(t, logger.ContainsMessage("metric evaluated"))
	assert.True(t, logger.ContainsField(log.MetricNameKey, "MSE"))
}

func TestWithDecimalDefault(t *testing.T) {
	e, err := NewEvaluatorFromSlices(
		[]float64{10, 20, 30},
		[]float64{12, 18, 33},
		WithDecimal(2),
	)
	require.NoError(t, err)

	got, err := e.MSE()
	require.NoError(t, err)
	assert.Equal(t, 5.67, got.Scalar())

	// Per-call override wins.
	got, err = e.MSE(Decimal(0))
	require.NoError(t, err)
	assert.Equal(t, 6.0, got.Scalar())
}

func TestNegativeDecimalRejected(t *testing.T) {
	_, err := NewEvaluatorFromSlices([]float64{1}, []float64{1}, WithDecimal(-1))
	require.Error(t, err)

	var valErr *errors.ValueError
	assert.True(t, errors.As(err, &valErr))
}

func TestPositiveOnlyFiltering(t *testing.T) {
	e, err := NewEvaluatorFromSlices(
		[]float64{1, -2, 3, 4},
		[]float64{1, 2, 0, 4},
		WithPositiveOnly(true),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, e.Samples())
	assert.Equal(t, 2, e.RemovedRows())
}

func TestAccessors(t *testing.T) {
	yTrue := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	yPred := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 7})

	e, err := NewEvaluator(yTrue, yPred)
	require.NoError(t, err)

	assert.Equal(t, 3, e.Samples())
	assert.Equal(t, 2, e.Outputs())
	assert.Equal(t, 0, e.RemovedRows())
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "0.375", newScalarResult(0.375).String())
	assert.Equal(t, "[0.41667 1]", newColumnsResult([]float64{0.41667, 1}).String())
}

func TestEvaluatorImmutableAgainstCallerMutation(t *testing.T) {
	yTrue := []float64{1, 2, 3}
	yPred := []float64{1, 2, 4}

	e, err := NewEvaluatorFromSlices(yTrue, yPred)
	require.NoError(t, err)

	before, err := e.MSE()
	require.NoError(t, err)

	// Mutating the caller's slices after construction must not matter.
	yPred[2] = 100

	after, err := e.MSE()
	require.NoError(t, err)
	assert.Equal(t, before.Scalar(), after.Scalar())
}
