/*
package integrate is the projection and integration engine shared by
every observable calculation: log-spaced sampling grids, log-log
trapezoidal integration over spheres, disks and energy bands, and
line-of-sight projection of 3D radial rates onto 2D projected radii.

All routines operate on unit-tagged arrays from the units package.
Shape and unit mismatches are programmer errors and panic; contract
violations (bad bounds, out-of-range interpolation) are returned as
typed errors.
*/
package integrate

import (
	"math"

	"github.com/phil-mansfield/clustobs/units"
)

// Grid is a strictly positive, strictly increasing, logarithmically
// spaced 1D sampling array. Grids are created by Sampling; their
// spacing guarantees are relied on by the integrators.
type Grid struct {
	units.Array
}

// Sampling creates a log-spaced grid between lo and hi with nptPd
// points per decade. Both endpoints are included, so the grid has
// max(1, nptPd*log10(hi/lo)) intervals. The grid is expressed in lo's
// unit; hi may use any compatible unit.
//
// A ParameterError is returned if lo is not strictly positive, hi does
// not exceed lo, or nptPd is not positive.
func Sampling(lo, hi units.Scalar, nptPd int) (Grid, error) {
	lov := lo.Value
	hiv := hi.In(lo.Unit)

	if nptPd <= 0 {
		return Grid{}, ParamErrf("points per decade %d is not positive", nptPd)
	}
	if lov <= 0 {
		return Grid{}, ParamErrf("sampling lower bound %g is not positive", lov)
	}
	if hiv <= lov {
		return Grid{}, ParamErrf(
			"sampling upper bound %g does not exceed lower bound %g", hiv, lov,
		)
	}

	llo, lhi := math.Log10(lov), math.Log10(hiv)
	n := int(math.Ceil(float64(nptPd) * (lhi - llo)))
	if n < 1 {
		n = 1
	}

	xs := make([]float64, n+1)
	for i := range xs {
		xs[i] = math.Pow(10, llo+(lhi-llo)*float64(i)/float64(n))
	}
	// The endpoints are exact, not merely within rounding error.
	xs[0], xs[n] = lov, hiv

	return Grid{units.NewArray(xs, lo.Unit)}, nil
}

// NewGrid validates a caller-supplied sampling array (for example a
// user-chosen set of photon energies) as a Grid. The values must be
// strictly positive and strictly increasing; a single value is allowed
// for monochromatic computations.
func NewGrid(a units.Array) (Grid, error) {
	if a.Len() == 0 {
		return Grid{}, ParamErrf("sampling array is empty")
	}
	if a.Data[0] <= 0 {
		return Grid{}, ParamErrf(
			"sampling array starts at %g, not strictly positive", a.Data[0],
		)
	}
	for i := 0; i < a.Len()-1; i++ {
		if a.Data[i+1] <= a.Data[i] {
			return Grid{}, ParamErrf(
				"sampling array is not strictly increasing at index %d", i+1,
			)
		}
	}
	return Grid{a}, nil
}

// Profile is a function of projected or 3D radius sampled on a radius
// array.
type Profile struct {
	Radius units.Array
	Value  units.Array
}

// Truncate zeroes, in place, every profile value at a radius strictly
// beyond rtrunc. This is applied after interpolation and projection so
// that the cut stays exact at the truncation radius rather than being
// smoothed over.
func (p Profile) Truncate(rtrunc units.Scalar) {
	p.Value.ZeroBeyond(p.Radius, rtrunc)
}

// Spectrum is a differential rate sampled on an energy (or frequency)
// grid.
type Spectrum struct {
	Energy units.Array
	Value  units.Array
}
