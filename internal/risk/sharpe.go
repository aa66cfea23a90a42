package risk

import "math"

// DefaultRiskFreeRate is the annual risk-free rate used when the caller
// does not supply one.
const DefaultRiskFreeRate = 0.05

// minStdDev guards the near-zero-variance blowup: below this the Sharpe
// ratio is reported as undefined rather than exploding.
const minStdDev = 0.0001

// =============================================================================
// Sharpe ratio
// =============================================================================

// SharpeRatio computes an annualized Sharpe ratio from decimal period
// returns, treating each as one monthly sample:
//
//  1. monthly risk-free = annualRiskFree / 12
//  2. excess return per period = return - monthly risk-free
//  3. mean and sample standard deviation (n-1) of excess returns
//  4. stddev < 0.0001 -> undefined (ok=false), not zero and not an error
//  5. Sharpe = mean/stddev * sqrt(12)
//
// The screener feeds this the 3-element proxy vector
// {1M, 6M, 1Y change}/100, which holds cumulative overlapping-horizon
// percentages rather than true monthly returns. The resulting number is
// a comparative proxy, not a textbook Sharpe ratio.
func SharpeRatio(returns []float64, annualRiskFree float64) (float64, bool) {
	if len(returns) < 2 {
		return 0, false
	}

	monthlyRiskFree := annualRiskFree / 12

	excess := make([]float64, len(returns))
	for i, r := range returns {
		excess[i] = r - monthlyRiskFree
	}

	mean := Mean(excess)
	stdDev := SampleStdDev(excess, mean)
	if stdDev < minStdDev {
		return 0, false
	}

	return mean / stdDev * math.Sqrt(12), true
}

// RiskAdjustedReturn divides an annual return by beta. Undefined when
// beta is zero.
func RiskAdjustedReturn(annualReturn, beta float64) (float64, bool) {
	if beta == 0 {
		return 0, false
	}
	return annualReturn / beta, true
}

// =============================================================================
// Statistics helpers
// =============================================================================

// Mean returns the arithmetic mean, 0 for an empty slice.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// SampleStdDev returns the sample standard deviation (n-1 denominator)
// around a precomputed mean, 0 when fewer than two values.
func SampleStdDev(values []float64, mean float64) float64 {
	if len(values) < 2 {
		return 0
	}
	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(len(values)-1))
}
