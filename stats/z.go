package stats

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// ZVal returns the two-tailed Z-value associated with a specific
// confidence interval, given as a percentage from 0 to 100.
func ZVal(confidenceInterval float64) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	area := (1 + confidenceInterval/100) / 2
	return dist.Quantile(area)
}

// ProportionInterval returns the half-width of the normal-approximation
// confidence interval for a proportion pHat observed over n trials.
func ProportionInterval(pHat float64, n int, confidenceInterval float64) float64 {
	if n == 0 {
		return 0
	}
	return ZVal(confidenceInterval) * math.Sqrt(pHat*(1-pHat)/float64(n))
}
