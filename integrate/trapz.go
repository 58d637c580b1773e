package integrate

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/clustobs/units"
)

// trapzLogLog integrates ys over xs treating the integrand as a power
// law on every interval: y = y1 (x/x1)^p with p read off the interval
// endpoints. For steep profiles sampled logarithmically this is far
// more accurate than linear trapezoids.
//
// Intervals where either endpoint is zero or negative (absorption
// cutoffs) cannot be log-transformed and fall back to a linear
// trapezoid contribution, so zeros never produce NaN.
func trapzLogLog(xs, ys []float64) float64 {
	sum := 0.0
	for i := 0; i < len(xs)-1; i++ {
		x1, x2 := xs[i], xs[i+1]
		y1, y2 := ys[i], ys[i+1]

		if y1 <= 0 || y2 <= 0 || x1 <= 0 {
			sum += 0.5 * (y1 + y2) * (x2 - x1)
			continue
		}

		p := math.Log(y2/y1) / math.Log(x2/x1)
		if math.Abs(p+1) < 1e-10 {
			// y ~ 1/x integrates to a log.
			sum += x1 * y1 * math.Log(x2/x1)
		} else {
			sum += y1 * x1 / (p + 1) * (math.Pow(x2/x1, p+1) - 1)
		}
	}
	return sum
}

// TrapzLogLog integrates y over x with the power-law trapezoid rule.
// The result carries the product unit of y and x.
func TrapzLogLog(y, x units.Array) units.Scalar {
	if y.Len() != x.Len() {
		panic(fmt.Sprintf(
			"Integrand has %d samples, but grid has %d.", y.Len(), x.Len(),
		))
	}
	return units.NewScalar(trapzLogLog(x.Data, y.Data), y.Unit.Mul(x.Unit))
}
