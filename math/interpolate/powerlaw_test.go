package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func logspace(lo, hi float64, n int) []float64 {
	llo, lhi := math.Log10(lo), math.Log10(hi)
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = math.Pow(10, llo+(lhi-llo)*float64(i)/float64(n-1))
	}
	xs[n-1] = hi
	return xs
}

func TestPowerLawExactOnPowerLaws(t *testing.T) {
	// A log-log interpolator reproduces pure power laws exactly, even
	// on coarse grids.
	for _, p := range []float64{-2.5, -1, 0.5, 3} {
		xs := logspace(1, 1e4, 9)
		ys := make([]float64, len(xs))
		for i, x := range xs {
			ys[i] = 7 * math.Pow(x, p)
		}
		itp := NewPowerLaw(xs, ys)
		for _, x := range logspace(1, 1e4, 100) {
			assert.InEpsilon(t, 7*math.Pow(x, p), itp.Eval(x), 1e-10,
				"slope %g at x = %g", p, x)
		}
	}
}

func TestPowerLawZeroSegmentsAreLinear(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	ys := []float64{4, 0, 0, 16}
	itp := NewPowerLaw(xs, ys)

	// Segments touching a zero sample degrade to linear interpolation
	// rather than producing NaN.
	assert.InDelta(t, 2.0, itp.Eval(1.5), 1e-10)
	assert.InDelta(t, 0.0, itp.Eval(3), 1e-10)
	assert.InDelta(t, 8.0, itp.Eval(6), 1e-10)
	assert.False(t, math.IsNaN(itp.Eval(7.99)))
}

func TestPowerLawBounds(t *testing.T) {
	itp := NewPowerLaw([]float64{1, 10, 100}, []float64{1, 2, 3})
	assert.Equal(t, 1.0, itp.Lo())
	assert.Equal(t, 100.0, itp.Hi())
	assert.Panics(t, func() { itp.Eval(0.5) })
	assert.Panics(t, func() { itp.Eval(101) })
}

func TestPowerLawRejectsNonPositiveX(t *testing.T) {
	assert.Panics(t, func() {
		NewPowerLaw([]float64{0, 1, 2}, []float64{1, 1, 1})
	})
}

func TestLinearEval(t *testing.T) {
	lin := NewLinear([]float64{0, 1, 3}, []float64{0, 2, 6})
	assert.InDelta(t, 1.0, lin.Eval(0.5), 1e-10)
	assert.InDelta(t, 4.0, lin.Eval(2), 1e-10)
	out := make([]float64, 2)
	lin.EvalAll([]float64{0, 3}, out)
	assert.Equal(t, []float64{0, 6}, out)
}
