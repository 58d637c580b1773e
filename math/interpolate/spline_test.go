package interpolate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	xs[n-1] = hi
	return xs
}

func TestSplineReproducesNodes(t *testing.T) {
	xs := []float64{0, 0.5, 1, 1.75, 2, 3}
	ys := []float64{2, -1, 4, 4, 0, 1}
	sp := NewSpline(xs, ys)
	for i := range xs {
		assert.InDelta(t, ys[i], sp.Eval(xs[i]), 1e-10, "node %d", i)
	}
}

func TestSplineLinearExact(t *testing.T) {
	// A natural spline through collinear points is that line.
	xs := linspace(1, 10, 12)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 3*x - 7
	}
	sp := NewSpline(xs, ys)
	for _, x := range linspace(1, 10, 101) {
		assert.InDelta(t, 3*x-7, sp.Eval(x), 1e-9)
	}
}

func TestSplineSmoothFunction(t *testing.T) {
	xs := linspace(0, math.Pi, 50)
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = math.Sin(x)
	}
	sp := NewSpline(xs, ys)
	for _, x := range linspace(0, math.Pi, 500) {
		assert.InDelta(t, math.Sin(x), sp.Eval(x), 1e-4)
	}
}

func TestSplineOutOfBoundsPanics(t *testing.T) {
	sp := NewSpline([]float64{0, 1, 2}, []float64{0, 1, 4})
	assert.Panics(t, func() { sp.Eval(-0.1) })
	assert.Panics(t, func() { sp.Eval(2.1) })
}

func TestSplineTwoPoints(t *testing.T) {
	sp := NewSpline([]float64{1, 2}, []float64{10, 20})
	assert.InDelta(t, 15.0, sp.Eval(1.5), 1e-10)
}

func TestTriDiagAt(t *testing.T) {
	// | 2 1 0 |   |x0|   | 4 |
	// | 1 2 1 | * |x1| = | 8 |
	// | 0 1 2 |   |x2|   | 8 |
	as := []float64{0, 1, 1}
	bs := []float64{2, 2, 2}
	cs := []float64{1, 1, 0}
	rs := []float64{4, 8, 8}
	out := make([]float64, 3)
	TriDiagAt(as, bs, cs, rs, out)
	assert.InDelta(t, 1.0, out[0], 1e-10)
	assert.InDelta(t, 2.0, out[1], 1e-10)
	assert.InDelta(t, 3.0, out[2], 1e-10)
}
