package interpolate

import (
	"fmt"
)

// Linear is a piecewise-linear interpolator.
type Linear struct {
	xs   searcher
	vals []float64
}

// NewLinear creates a linear interpolator over the strictly increasing
// points xs taking the values vals.
//
// xs and vals must not be modified during the lifetime of the Linear.
func NewLinear(xs, vals []float64) *Linear {
	if len(xs) != len(vals) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(vals) = %d.", len(xs), len(vals),
		))
	}
	lin := &Linear{}
	lin.xs.init(xs)
	lin.vals = vals
	return lin
}

func (lin *Linear) Lo() float64 { return lin.xs.x0 }
func (lin *Linear) Hi() float64 { return lin.xs.lim }

// Eval returns the interpolated value at x.
//
// Eval panics if x is outside [Lo, Hi].
func (lin *Linear) Eval(x float64) float64 {
	i := lin.xs.search(x)
	x1, x2 := lin.xs.xs[i], lin.xs.xs[i+1]
	v1, v2 := lin.vals[i], lin.vals[i+1]
	return (v2-v1)/(x2-x1)*(x-x1) + v1
}

// EvalAll evaluates the interpolator at every given x value. If an
// output array is given, the result is written to it (and still
// returned as a convenience).
func (lin *Linear) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = lin.Eval(x)
	}
	return out[0]
}
