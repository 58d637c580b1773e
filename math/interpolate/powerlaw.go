package interpolate

import (
	"fmt"
	"math"
)

// PowerLaw interpolates a table in log-log space: between two samples
// the function is treated as y = y1 (x/x1)^p. This is the right model
// for steep emission-rate profiles, which are locally power laws over
// many decades of radius and energy.
//
// Segments where either endpoint is not strictly positive cannot be
// log-transformed and degrade to linear interpolation. This happens at
// absorption cutoffs, where rates vanish exactly.
type PowerLaw struct {
	xs       searcher
	ys       []float64
	lxs, lys []float64
	loglog   []bool
}

// NewPowerLaw creates a log-log interpolator over the strictly
// increasing, strictly positive points xs taking the values ys.
//
// xs and ys must not be modified during the lifetime of the PowerLaw.
func NewPowerLaw(xs, ys []float64) *PowerLaw {
	if len(xs) != len(ys) {
		panic(fmt.Sprintf(
			"len(xs) = %d, but len(ys) = %d.", len(xs), len(ys),
		))
	}
	if xs[0] <= 0 {
		panic("Points given to NewPowerLaw are not strictly positive.")
	}

	p := &PowerLaw{}
	p.xs.init(xs)
	p.ys = ys

	p.lxs = make([]float64, len(xs))
	p.lys = make([]float64, len(xs))
	for i := range xs {
		p.lxs[i] = math.Log(xs[i])
		if ys[i] > 0 {
			p.lys[i] = math.Log(ys[i])
		}
	}

	p.loglog = make([]bool, len(xs)-1)
	for i := range p.loglog {
		p.loglog[i] = ys[i] > 0 && ys[i+1] > 0
	}
	return p
}

func (p *PowerLaw) Lo() float64 { return p.xs.x0 }
func (p *PowerLaw) Hi() float64 { return p.xs.lim }

// Eval returns the interpolated value at x.
//
// Eval panics if x is outside [Lo, Hi].
func (p *PowerLaw) Eval(x float64) float64 {
	i := p.xs.search(x)
	if !p.loglog[i] {
		x1, x2 := p.xs.xs[i], p.xs.xs[i+1]
		y1, y2 := p.ys[i], p.ys[i+1]
		return (y2-y1)/(x2-x1)*(x-x1) + y1
	}
	lx1, lx2 := p.lxs[i], p.lxs[i+1]
	ly1, ly2 := p.lys[i], p.lys[i+1]
	lx := math.Log(x)
	return math.Exp((ly2-ly1)/(lx2-lx1)*(lx-lx1) + ly1)
}

// EvalAll evaluates the interpolator at every given x value. If an
// output array is given, the result is written to it (and still
// returned as a convenience).
func (p *PowerLaw) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = p.Eval(x)
	}
	return out[0]
}
