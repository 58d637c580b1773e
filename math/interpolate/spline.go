package interpolate

import (
	"fmt"
)

type splineCoeff struct {
	a, b, c, d float64
}

// Spline is a natural cubic spline. It is the interpolant used when the
// flux dispatcher resamples a densely computed base spectrum or profile
// at many sub-ranges: smoother than Linear, and unlike PowerLaw it
// tolerates sign changes.
type Spline struct {
	xs     searcher
	ys     []float64
	y2s    []float64
	coeffs []splineCoeff
}

// NewSpline creates a spline through the table of strictly increasing
// xs and their values ys.
//
// xs and ys must not be modified during the lifetime of the Spline.
func NewSpline(xs, ys []float64) *Spline {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(ys) = %d.", len(xs), len(ys),
		))
	}
	sp := &Spline{}
	sp.xs.init(xs)
	sp.ys = ys
	sp.y2s = make([]float64, len(xs))
	sp.coeffs = make([]splineCoeff, len(xs)-1)
	sp.calcY2s()
	sp.calcCoeffs()
	return sp
}

func (sp *Spline) Lo() float64 { return sp.xs.x0 }
func (sp *Spline) Hi() float64 { return sp.xs.lim }

// Eval returns the value of the spline at x.
//
// Eval panics if x is outside [Lo, Hi].
func (sp *Spline) Eval(x float64) float64 {
	i := sp.xs.search(x)
	dx := x - sp.xs.xs[i]
	co := &sp.coeffs[i]
	return ((co.a*dx+co.b)*dx+co.c)*dx + co.d
}

// EvalAll evaluates the spline at every given x value. If an output
// array is given, the result is written to it (and still returned as a
// convenience).
func (sp *Spline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = sp.Eval(x)
	}
	return out[0]
}

// calcY2s solves the tridiagonal system for the second derivative at
// every table point. Natural boundary conditions: the second derivative
// vanishes at both ends.
func (sp *Spline) calcY2s() {
	n := len(sp.ys)
	sp.y2s[0], sp.y2s[n-1] = 0, 0
	if n == 2 {
		return
	}

	as, bs := make([]float64, n-2), make([]float64, n-2)
	cs, rs := make([]float64, n-2), make([]float64, n-2)

	xs, ys := sp.xs.xs, sp.ys
	for i := range rs {
		// j indexes into xs and ys.
		j := i + 1

		as[i] = (xs[j] - xs[j-1]) / 6
		bs[i] = (xs[j+1] - xs[j-1]) / 3
		cs[i] = (xs[j+1] - xs[j]) / 6
		rs[i] = ((ys[j+1] - ys[j]) / (xs[j+1] - xs[j])) -
			((ys[j] - ys[j-1]) / (xs[j] - xs[j-1]))
	}

	TriDiagAt(as, bs, cs, rs, sp.y2s[1:n-1])
}

func (sp *Spline) calcCoeffs() {
	coeffs, xs, ys, y2s := sp.coeffs, sp.xs.xs, sp.ys, sp.y2s
	for i := range sp.coeffs {
		h := xs[i+1] - xs[i]
		coeffs[i].a = (y2s[i+1] - y2s[i]) / (6 * h)
		coeffs[i].b = y2s[i] / 2
		coeffs[i].c = (ys[i+1]-ys[i])/h - h*(2*y2s[i]+y2s[i+1])/6
		coeffs[i].d = ys[i]
	}
}

// TriDiagAt solves the system of equations
//
// | b0 c0 ..    |   | out0 |   | r0 |
// | a1 b1 c1 .. |   | out1 |   | r1 |
// | ..          | * | ..   | = | .. |
// | ..    an bn |   | outn |   | rn |
//
// for out0 .. outn in place in the given slice.
func TriDiagAt(as, bs, cs, rs, out []float64) {
	if len(as) != len(bs) || len(as) != len(cs) ||
		len(as) != len(out) || len(as) != len(rs) {

		panic("Lengths of arguments to TriDiagAt are unequal.")
	}

	tmp := make([]float64, len(as))

	beta := bs[0]
	if beta == 0 {
		panic("TriDiagAt cannot solve the given system.")
	}
	out[0] = rs[0] / beta

	for i := 1; i < len(out); i++ {
		tmp[i] = cs[i-1] / beta
		beta = bs[i] - as[i]*tmp[i]
		if beta == 0 {
			panic("TriDiagAt cannot solve the given system.")
		}
		out[i] = (rs[i] - as[i]*out[i-1]) / beta
	}

	for i := len(out) - 2; i >= 0; i-- {
		out[i] -= tmp[i+1] * out[i+1]
	}
}
