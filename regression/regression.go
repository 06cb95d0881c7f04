package regression

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/galessiorob/permetrics/pkg/errors"
)

// MSE computes the Mean Squared Error, mean((y_true - y_pred)^2).
// Best possible score is 0.0, smaller is better. Range = [0, +inf).
func (e *Evaluator) MSE(opts ...CallOption) (Result, error) {
	return e.evaluate("MSE", mseColumn, opts)
}

// RMSE computes the Root Mean Squared Error, sqrt(MSE).
// Best possible score is 0.0, smaller is better. Range = [0, +inf).
func (e *Evaluator) RMSE(opts ...CallOption) (Result, error) {
	return e.evaluate("RMSE", func(yTrue, yPred []float64) (float64, error) {
		v, err := mseColumn(yTrue, yPred)
		if err != nil {
			return 0, err
		}
		return math.Sqrt(v), nil
	}, opts)
}

// MAE computes the Mean Absolute Error.
// Best possible score is 0.0, smaller is better. Range = [0, +inf).
func (e *Evaluator) MAE(opts ...CallOption) (Result, error) {
	return e.evaluate("MAE", func(yTrue, yPred []float64) (float64, error) {
		var sum float64
		for i := range yTrue {
			sum += math.Abs(yTrue[i] - yPred[i])
		}
		return sum / float64(len(yTrue)), nil
	}, opts)
}

// ME computes the Max Error, the largest absolute difference between a
// ground-truth value and its prediction.
// Best possible score is 0.0, smaller is better. Range = [0, +inf).
func (e *Evaluator) ME(opts ...CallOption) (Result, error) {
	return e.evaluate("ME", func(yTrue, yPred []float64) (float64, error) {
		var max float64
		for i := range yTrue {
			if d := math.Abs(yTrue[i] - yPred[i]); d > max {
				max = d
			}
		}
		return max, nil
	}, opts)
}

// MedAE computes the Median Absolute Error. For an even number of rows the
// two middle absolute errors are averaged.
// Best possible score is 0.0, smaller is better. Range = [0, +inf).
func (e *Evaluator) MedAE(opts ...CallOption) (Result, error) {
	return e.evaluate("MedAE", func(yTrue, yPred []float64) (float64, error) {
		abs := make([]float64, len(yTrue))
		for i := range yTrue {
			abs[i] = math.Abs(yTrue[i] - yPred[i])
		}
		sort.Float64s(abs)
		n := len(abs)
		if n%2 == 1 {
			return abs[n/2], nil
		}
		return (abs[n/2-1] + abs[n/2]) / 2, nil
	}, opts)
}

// MSLE computes the Mean Squared Log Error, mean(log(y_true/y_pred)^2).
// Both arrays must be strictly positive; construct the Evaluator with
// WithPositiveOnly to drop offending rows up front.
// Best possible score is 0.0, smaller is better. Range = [0, +inf).
func (e *Evaluator) MSLE(opts ...CallOption) (Result, error) {
	return e.evaluate("MSLE", func(yTrue, yPred []float64) (float64, error) {
		var sum float64
		for i := range yTrue {
			if yTrue[i] <= 0 || yPred[i] <= 0 {
				return 0, errors.NewDegenerateInputError("MSLE", -1,
					"non-positive value; construct with WithPositiveOnly(true)")
			}
			l := math.Log(yTrue[i] / yPred[i])
			sum += l * l
		}
		return sum / float64(len(yTrue)), nil
	}, opts)
}

// MRE computes the Mean Relative Error, mean(|y_true - y_pred| / y_true).
// Best possible score is 0.0, smaller is better. Range = [0, +inf) for a
// positive ground truth.
func (e *Evaluator) MRE(opts ...CallOption) (Result, error) {
	return e.evaluate("MRE", func(yTrue, yPred []float64) (float64, error) {
		var sum float64
		for i := range yTrue {
			if yTrue[i] == 0 {
				return 0, errors.NewDegenerateInputError("MRE", -1, "zero value in y_true")
			}
			sum += math.Abs(yTrue[i]-yPred[i]) / yTrue[i]
		}
		return sum / float64(len(yTrue)), nil
	}, opts)
}

// MAPE computes the Mean Absolute Percentage Error,
// mean(|y_true - y_pred| / |y_true|).
// Best possible score is 0.0, smaller is better. Range = [0, +inf).
func (e *Evaluator) MAPE(opts ...CallOption) (Result, error) {
	return e.evaluate("MAPE", func(yTrue, yPred []float64) (float64, error) {
		var sum float64
		for i := range yTrue {
			if yTrue[i] == 0 {
				return 0, errors.NewDegenerateInputError("MAPE", -1, "zero value in y_true")
			}
			sum += math.Abs(yTrue[i]-yPred[i]) / math.Abs(yTrue[i])
		}
		return sum / float64(len(yTrue)), nil
	}, opts)
}

// SMAPE computes the Symmetric Mean Absolute Percentage Error,
// mean(2*|y_true - y_pred| / (|y_true| + |y_pred|)).
// Best possible score is 0.0, smaller is better. Range = [0, 2].
func (e *Evaluator) SMAPE(opts ...CallOption) (Result, error) {
	return e.evaluate("SMAPE", func(yTrue, yPred []float64) (float64, error) {
		var sum float64
		for i := range yTrue {
			denom := math.Abs(yTrue[i]) + math.Abs(yPred[i])
			if denom == 0 {
				return 0, errors.NewDegenerateInputError("SMAPE", -1,
					"y_true and y_pred both zero at the same row")
			}
			sum += 2 * math.Abs(yTrue[i]-yPred[i]) / denom
		}
		return sum / float64(len(yTrue)), nil
	}, opts)
}

// NSE computes the Nash-Sutcliffe Efficiency,
// 1 - sum((y_true - y_pred)^2) / sum((y_true - mean(y_true))^2).
// Best possible score is 1.0, bigger is better. Range = (-inf, 1].
func (e *Evaluator) NSE(opts ...CallOption) (Result, error) {
	return e.evaluate("NSE", func(yTrue, yPred []float64) (float64, error) {
		tss := sumSquaredDev(yTrue, stat.Mean(yTrue, nil))
		if tss == 0 {
			return 0, errors.NewDegenerateInputError("NSE", -1, "zero variance in y_true")
		}
		var rss float64
		for i := range yTrue {
			d := yTrue[i] - yPred[i]
			rss += d * d
		}
		return 1 - rss/tss, nil
	}, opts)
}

// WI computes the Willmott Index of agreement.
// Best possible score is 1.0, bigger is better. Range = [0, 1].
func (e *Evaluator) WI(opts ...CallOption) (Result, error) {
	return e.evaluate("WI", wiColumn, opts)
}

// R computes the Pearson Correlation Coefficient between ground truth and
// prediction. Both sides must have non-zero variance.
// Best possible score is 1.0, bigger is better. Range = [-1, 1].
func (e *Evaluator) R(opts ...CallOption) (Result, error) {
	return e.evaluate("R", func(yTrue, yPred []float64) (float64, error) {
		return pearson("R", yTrue, yPred)
	}, opts)
}

// R2s computes the squared Pearson correlation,
// (cov(y_true, y_pred) / (std(y_true)*std(y_pred)))^2.
//
// Not to be confused with R2, the coefficient of determination: R2s is the
// square of the correlation and therefore cannot go negative.
// Best possible score is 1.0, bigger is better. Range = [0, 1].
func (e *Evaluator) R2s(opts ...CallOption) (Result, error) {
	return e.evaluate("R2s", func(yTrue, yPred []float64) (float64, error) {
		r, err := pearson("R2s", yTrue, yPred)
		if err != nil {
			return 0, err
		}
		return r * r, nil
	}, opts)
}

// R2 computes the Coefficient of Determination,
// 1 - sum((y_true - y_pred)^2) / sum((y_true - mean(y_true))^2).
// Best possible score is 1.0, bigger is better. Range = (-inf, 1].
func (e *Evaluator) R2(opts ...CallOption) (Result, error) {
	return e.evaluate("R2", func(yTrue, yPred []float64) (float64, error) {
		tss := sumSquaredDev(yTrue, stat.Mean(yTrue, nil))
		if tss == 0 {
			return 0, errors.NewDegenerateInputError("R2", -1, "zero variance in y_true")
		}
		var rss float64
		for i := range yTrue {
			d := yTrue[i] - yPred[i]
			rss += d * d
		}
		return 1 - rss/tss, nil
	}, opts)
}

// CI computes the Confidence Index (also called Performance Index), the
// product of the Pearson correlation and the Willmott index.
// Best possible score is 1.0, bigger is better. Range = [0, 1].
func (e *Evaluator) CI(opts ...CallOption) (Result, error) {
	return e.evaluate("CI", func(yTrue, yPred []float64) (float64, error) {
		r, err := pearson("CI", yTrue, yPred)
		if err != nil {
			return 0, err
		}
		d, err := wiColumn(yTrue, yPred)
		if err != nil {
			return 0, err
		}
		return r * d, nil
	}, opts)
}

// EVS computes the Explained Variance Score,
// 1 - var(y_true - y_pred) / var(y_true).
// Best possible score is 1.0, bigger is better. Range = (-inf, 1].
func (e *Evaluator) EVS(opts ...CallOption) (Result, error) {
	return e.evaluate("EVS", func(yTrue, yPred []float64) (float64, error) {
		varTrue := popVariance(yTrue)
		if varTrue == 0 {
			return 0, errors.NewDegenerateInputError("EVS", -1, "zero variance in y_true")
		}
		diff := make([]float64, len(yTrue))
		for i := range yTrue {
			diff[i] = yTrue[i] - yPred[i]
		}
		return 1 - popVariance(diff)/varTrue, nil
	}, opts)
}

// VAF computes the Variance Accounted For between the two signals, in
// percent: (1 - var(y_true - y_pred)/var(y_true)) * 100.
// Best possible score is 100, bigger is better. Range = (-inf, 100].
func (e *Evaluator) VAF(opts ...CallOption) (Result, error) {
	return e.evaluate("VAF", func(yTrue, yPred []float64) (float64, error) {
		varTrue := popVariance(yTrue)
		if varTrue == 0 {
			return 0, errors.NewDegenerateInputError("VAF", -1, "zero variance in y_true")
		}
		diff := make([]float64, len(yTrue))
		for i := range yTrue {
			diff[i] = yTrue[i] - yPred[i]
		}
		return (1 - popVariance(diff)/varTrue) * 100, nil
	}, opts)
}

// RAE computes the Relative Absolute Error,
// sqrt(sum((y_pred - y_true)^2)) / sqrt(sum(y_true^2)).
// Best possible score is 0.0, smaller is better. Range = [0, +inf).
func (e *Evaluator) RAE(opts ...CallOption) (Result, error) {
	return e.evaluate("RAE", func(yTrue, yPred []float64) (float64, error) {
		var num, denom float64
		for i := range yTrue {
			d := yPred[i] - yTrue[i]
			num += d * d
			denom += yTrue[i] * yTrue[i]
		}
		if denom == 0 {
			return 0, errors.NewDegenerateInputError("RAE", -1, "y_true is all zeros")
		}
		return math.Sqrt(num) / math.Sqrt(denom), nil
	}, opts)
}

// KGE computes the Kling-Gupta Efficiency,
// 1 - sqrt((r-1)^2 + (beta-1)^2 + (gamma-1)^2), with r the Pearson
// correlation, beta the bias ratio mean(y_pred)/mean(y_true), and gamma
// the variability ratio of the coefficients of variation.
// Best possible score is 1.0, bigger is better.
func (e *Evaluator) KGE(opts ...CallOption) (Result, error) {
	return e.evaluate("KGE", func(yTrue, yPred []float64) (float64, error) {
		r, err := pearson("KGE", yTrue, yPred)
		if err != nil {
			return 0, err
		}
		meanTrue := stat.Mean(yTrue, nil)
		meanPred := stat.Mean(yPred, nil)
		if meanTrue == 0 || meanPred == 0 {
			return 0, errors.NewDegenerateInputError("KGE", -1, "zero mean")
		}
		beta := meanPred / meanTrue
		gamma := (popStd(yPred) / meanPred) / (popStd(yTrue) / meanTrue)
		return 1 - math.Sqrt((r-1)*(r-1)+(beta-1)*(beta-1)+(gamma-1)*(gamma-1)), nil
	}, opts)
}

// A10 computes the a10-index: the fraction of rows whose ratio
// y_true/y_pred falls within ±10% of 1.
// Best possible score is 1.0, bigger is better. Range = [0, 1].
func (e *Evaluator) A10(opts ...CallOption) (Result, error) {
	return e.evaluate("A10", func(yTrue, yPred []float64) (float64, error) {
		return aIndex("A10", yTrue, yPred, 0.1)
	}, opts)
}

// A20 computes the a20-index: the fraction of rows whose ratio
// y_true/y_pred falls within ±20% of 1.
// Best possible score is 1.0, bigger is better. Range = [0, 1].
func (e *Evaluator) A20(opts ...CallOption) (Result, error) {
	return e.evaluate("A20", func(yTrue, yPred []float64) (float64, error) {
		return aIndex("A20", yTrue, yPred, 0.2)
	}, opts)
}

// ===========================================================================
//
//	Per-column kernels and numeric helpers
//
// ===========================================================================

func mseColumn(yTrue, yPred []float64) (float64, error) {
	var sum float64
	for i := range yTrue {
		d := yTrue[i] - yPred[i]
		sum += d * d
	}
	return sum / float64(len(yTrue)), nil
}

// wiColumn is the Willmott index kernel, shared by WI and CI.
func wiColumn(yTrue, yPred []float64) (float64, error) {
	m := stat.Mean(yTrue, nil)
	var num, denom float64
	for i := range yTrue {
		d := yPred[i] - yTrue[i]
		num += d * d
		s := math.Abs(yPred[i]-m) + math.Abs(yTrue[i]-m)
		denom += s * s
	}
	if denom == 0 {
		return 0, errors.NewDegenerateInputError("WI", -1, "zero variance in y_true and y_pred")
	}
	return 1 - num/denom, nil
}

// pearson computes the correlation coefficient with unnormalized sums; the
// sample-size factor cancels in the ratio. The metric name is carried for
// error reporting, since R, R2s, CI and KGE all share this kernel.
func pearson(metric string, yTrue, yPred []float64) (float64, error) {
	meanTrue := stat.Mean(yTrue, nil)
	meanPred := stat.Mean(yPred, nil)

	var cov, devTrue, devPred float64
	for i := range yTrue {
		dt := yTrue[i] - meanTrue
		dp := yPred[i] - meanPred
		cov += dt * dp
		devTrue += dt * dt
		devPred += dp * dp
	}
	if devTrue == 0 {
		return 0, errors.NewDegenerateInputError(metric, -1, "zero variance in y_true")
	}
	if devPred == 0 {
		return 0, errors.NewDegenerateInputError(metric, -1, "zero variance in y_pred")
	}
	return cov / (math.Sqrt(devTrue) * math.Sqrt(devPred)), nil
}

// aIndex counts the fraction of ratio values within [1-tol, 1+tol].
func aIndex(metric string, yTrue, yPred []float64, tol float64) (float64, error) {
	var hits int
	for i := range yTrue {
		if yPred[i] == 0 {
			return 0, errors.NewDegenerateInputError(metric, -1, "zero value in y_pred")
		}
		ratio := yTrue[i] / yPred[i]
		if ratio >= 1-tol && ratio <= 1+tol {
			hits++
		}
	}
	return float64(hits) / float64(len(yTrue)), nil
}

// sumSquaredDev returns sum((x - m)^2).
func sumSquaredDev(xs []float64, m float64) float64 {
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return sum
}

// popVariance is the population variance (divides by n, like numpy's var,
// not n-1). The ratio metrics built on it need the same normalization on
// both sides, and it stays defined for a single-row sample.
func popVariance(xs []float64) float64 {
	return sumSquaredDev(xs, stat.Mean(xs, nil)) / float64(len(xs))
}

func popStd(xs []float64) float64 {
	return math.Sqrt(popVariance(xs))
}
