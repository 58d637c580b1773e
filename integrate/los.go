package integrate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/phil-mansfield/clustobs/math/interpolate"
	"github.com/phil-mansfield/clustobs/units"
)

// LOS projects a 3D volumetric rate onto projected radii: for every
// projected radius R in r2d it evaluates the rate at the 3D radii
// sqrt(R^2 + l^2) for each line-of-sight depth l in los, and
// integrates over depth. The factor of two for the far side of the
// cluster is included. The result carries the unit of rate times
// length.
//
// The rate is interpolated in log-log space on its sampled grid. If
// any composite radius sqrt(R^2 + l^2) falls outside the sampled range
// of r3d, a DomainError is returned: rates are routinely tabulated only
// over a bounded validity range and must not be extrapolated.
//
// Outer truncation is not applied here. Callers zero the projected
// profile beyond the truncation radius themselves, so that spherical,
// cylindrical and map-level code paths share one truncation semantic.
func LOS(rate units.Array, r3d Grid, r2d units.Array, los Grid) (units.Array, error) {
	if rate.Len() != r3d.Len() {
		panic(fmt.Sprintf(
			"Rate has %d samples, but 3D radius grid has %d.",
			rate.Len(), r3d.Len(),
		))
	}

	rs := r2d.In(r3d.Unit)
	ls := los.In(r3d.Unit)

	// Reject out-of-range composite radii before evaluating anything:
	// over the product of the two axes the extremes are
	// hypot(min R, min l) and hypot(max R, max l).
	minR, maxR := floats.Min(rs), floats.Max(rs)
	rMin := math.Hypot(minR, ls[0])
	rMax := math.Hypot(maxR, ls[len(ls)-1])
	lo, hi := r3d.Data[0], r3d.Data[r3d.Len()-1]
	if rMin < lo {
		return units.Array{}, &DomainError{rMin, lo, hi}
	}
	if rMax > hi {
		return units.Array{}, &DomainError{rMax, lo, hi}
	}

	itp := interpolate.NewPowerLaw(r3d.Data, rate.Data)

	out := make([]float64, len(rs))
	samples := make([]float64, len(ls))
	for i, R := range rs {
		for j, l := range ls {
			samples[j] = itp.Eval(math.Hypot(R, l))
		}
		out[i] = 2 * trapzLogLog(ls, samples)
	}

	return units.NewArray(out, rate.Unit.Mul(r3d.Unit)), nil
}
