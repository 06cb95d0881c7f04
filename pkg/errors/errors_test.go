package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestNewShapeMismatchError(t *testing.T) {
	tests := []struct {
		name      string
		op        string
		trueShape []int
		predShape []int
		wantMsg   string
	}{
		{
			name:      "2-D mismatch",
			op:        "NewEvaluator",
			trueShape: []int{4, 2},
			predShape: []int{4, 3},
			wantMsg:   "permetrics: NewEvaluator: shape mismatch between y_true [4 2] and y_pred [4 3]",
		},
		{
			name:      "1-D length mismatch",
			op:        "NewEvaluator",
			trueShape: []int{4, 1},
			predShape: []int{3, 1},
			wantMsg:   "permetrics: NewEvaluator: shape mismatch between y_true [4 1] and y_pred [3 1]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewShapeMismatchError(tt.op, tt.trueShape, tt.predShape)

			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			// Stack trace should point back at this test file.
			formatted := fmt.Sprintf("%+v", err)
			if !strings.Contains(formatted, "errors_test.go") {
				t.Error("Expected stack trace to contain test file name")
			}

			var shapeErr *ShapeMismatchError
			if !As(err, &shapeErr) {
				t.Error("Error should be castable to *ShapeMismatchError")
			}
		})
	}
}

func TestNewEmptyDataError(t *testing.T) {
	err := NewEmptyDataError("clean", 5)

	want := "permetrics: clean: cleaning removed all 5 row(s), nothing left to evaluate"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var emptyErr *EmptyDataError
	if !As(err, &emptyErr) {
		t.Error("Error should be castable to *EmptyDataError")
	}
	if emptyErr.Removed != 5 {
		t.Errorf("Removed = %d, want 5", emptyErr.Removed)
	}

	// Zero removed rows means the input itself was empty.
	err = NewEmptyDataError("NewEvaluator", 0)
	want = "permetrics: NewEvaluator: empty data, nothing to evaluate"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}
}

func TestNewDegenerateInputError(t *testing.T) {
	tests := []struct {
		name    string
		metric  string
		column  int
		reason  string
		wantMsg string
	}{
		{
			name:    "1-D sample",
			metric:  "R2s",
			column:  -1,
			reason:  "zero variance in y_true",
			wantMsg: "permetrics: R2s: degenerate input: zero variance in y_true",
		},
		{
			name:    "per-column",
			metric:  "R2s",
			column:  1,
			reason:  "zero variance in y_pred",
			wantMsg: "permetrics: R2s: degenerate input in column 1: zero variance in y_pred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewDegenerateInputError(tt.metric, tt.column, tt.reason)
			if err.Error() != tt.wantMsg {
				t.Errorf("Error() = %v, want %v", err.Error(), tt.wantMsg)
			}

			var degErr *DegenerateInputError
			if !As(err, &degErr) {
				t.Error("Error should be castable to *DegenerateInputError")
			}
		})
	}
}

func TestNewInvalidMultiOutputError(t *testing.T) {
	err := NewInvalidMultiOutputError("MSE", "expected 3 weight(s), got 2", 3, []float64{0.5, 0.5})

	want := "permetrics: MSE: invalid multi-output spec for 3 column(s): expected 3 weight(s), got 2"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var moErr *InvalidMultiOutputError
	if !As(err, &moErr) {
		t.Error("Error should be castable to *InvalidMultiOutputError")
	}
	if moErr.Columns != 3 {
		t.Errorf("Columns = %d, want 3", moErr.Columns)
	}
}

func TestNewValueError(t *testing.T) {
	err := NewValueError("WithDecimal", "decimal precision must be non-negative")

	want := "permetrics: WithDecimal: decimal precision must be non-negative"
	if err.Error() != want {
		t.Errorf("Error() = %v, want %v", err.Error(), want)
	}

	var valErr *ValueError
	if !As(err, &valErr) {
		t.Error("Error should be castable to *ValueError")
	}
}

func TestWarningHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) {
		captured = w
	})
	defer SetWarningHandler(func(w error) {})

	warning := NewUndefinedMetricWarning("MAPE", "zero values in y_true", 0)
	Warn(warning)

	if captured == nil {
		t.Fatal("Warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "MAPE") {
		t.Errorf("Warning = %v, want mention of MAPE", captured)
	}
}

func TestDataCleaningWarning(t *testing.T) {
	w := NewDataCleaningWarning("clean", 2, 8)

	want := "clean: cleaning removed 2 row(s), 8 remain"
	if w.Error() != want {
		t.Errorf("Error() = %v, want %v", w.Error(), want)
	}
}

func TestWrapPreservesType(t *testing.T) {
	base := NewEmptyDataError("clean", 3)
	wrapped := Wrap(base, "evaluating MSE")

	var emptyErr *EmptyDataError
	if !As(wrapped, &emptyErr) {
		t.Error("Wrapped error should still be castable to *EmptyDataError")
	}
	if !strings.Contains(wrapped.Error(), "evaluating MSE") {
		t.Errorf("Wrapped message = %v, want wrap prefix", wrapped)
	}
}
