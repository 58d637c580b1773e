package interpolate

// Interpolator is a 1D interpolator over a table of sample points.
type Interpolator interface {
	Eval(x float64) float64
	EvalAll(xs []float64, out ...[]float64) []float64

	// Lo and Hi bound the domain the interpolator may be evaluated on.
	// Evaluating outside [Lo, Hi] panics: tabulated emission rates are
	// only valid over their sampled range, so callers that cannot
	// guarantee in-range queries must check bounds first.
	Lo() float64
	Hi() float64
}

var (
	_ Interpolator = &Linear{}
	_ Interpolator = &Spline{}
	_ Interpolator = &PowerLaw{}
)
