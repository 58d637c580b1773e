package obs

import (
	"fmt"

	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/math/interpolate"
	"github.com/phil-mansfield/clustobs/units"
)

// FluxResult is the outcome of a Flux call: a scalar for scalar bounds
// and an array with one element per bound otherwise.
type FluxResult struct {
	scalar  units.Scalar
	array   units.Array
	isArray bool
}

func (r FluxResult) IsArray() bool { return r.isArray }

// Scalar returns the single flux value. It panics on an array result.
func (r FluxResult) Scalar() units.Scalar {
	if r.isArray {
		panic("Scalar() called on an array FluxResult.")
	}
	return r.scalar
}

// Array returns the per-bound flux values. It panics on a scalar
// result.
func (r FluxResult) Array() units.Array {
	if !r.isArray {
		panic("Array() called on a scalar FluxResult.")
	}
	return r.array
}

// Flux integrates the rate over radius and over the energy band
// [emin, emax]. Either emin or rmax, but not both, may be an array of
// query points; the expensive volumetric integral is then done once on
// a dense base grid and each query point re-integrates a sub-range of a
// cubic-spline interpolant over it. If energyDensity is set the
// spectrum is weighted by energy before the band integration.
func (c *Calculator) Flux(
	kind IntegralKind, emin Bound, emax units.Scalar, rmax Bound,
	energyDensity bool,
) (FluxResult, error) {
	if kind != Spherical && kind != Cylindrical {
		return FluxResult{}, integrate.ParamErrf(
			"unknown integral kind %d", int(kind),
		)
	}
	if emin.IsArray() && rmax.IsArray() {
		return FluxResult{}, queryErrf(
			"energy lower bound and outer radius cannot both be arrays",
		)
	}

	switch {
	case emin.IsArray():
		a, err := c.fluxEminArray(kind, emin.Array(), emax,
			rmax.Scalar(), energyDensity)
		if err != nil {
			return FluxResult{}, err
		}
		return FluxResult{array: a, isArray: true}, nil

	case rmax.IsArray():
		a, err := c.fluxRmaxArray(kind, emin.Scalar(), emax,
			rmax.Array(), energyDensity)
		if err != nil {
			return FluxResult{}, err
		}
		return FluxResult{array: a, isArray: true}, nil
	}

	s, err := c.fluxScalar(kind, emin.Scalar(), emax, rmax.Scalar(),
		energyDensity)
	if err != nil {
		return FluxResult{}, err
	}
	return FluxResult{scalar: s}, nil
}

func (c *Calculator) fluxScalar(
	kind IntegralKind, emin, emax, rmax units.Scalar, energyDensity bool,
) (units.Scalar, error) {
	energy, err := integrate.Sampling(emin, emax, c.Geom.NptPd)
	if err != nil {
		return units.Scalar{}, err
	}
	spec, err := c.Spectrum(kind, energy, rmax)
	if err != nil {
		return units.Scalar{}, err
	}
	return integrate.Energy(spec.Value, energy, energyDensity), nil
}

// fluxEminArray computes the band flux for each requested lower bound
// by re-integrating sub-ranges of one densely sampled base spectrum.
func (c *Calculator) fluxEminArray(
	kind IntegralKind, emins units.Array, emax, rmax units.Scalar,
	energyDensity bool,
) (units.Array, error) {
	base, err := integrate.Sampling(emins.Min(), emax, c.Geom.NptPd)
	if err != nil {
		return units.Array{}, err
	}
	spec, err := c.Spectrum(kind, base, rmax)
	if err != nil {
		return units.Array{}, err
	}
	sp := interpolate.NewSpline(base.Data, spec.Value.Data)

	fs := make([]units.Scalar, emins.Len())
	err = eachQuery(emins.Len(), func(i int) error {
		sub, err := integrate.Sampling(emins.At(i), emax, c.Geom.NptPd)
		if err != nil {
			return err
		}
		es := sub.In(base.Unit)
		vals := units.NewArray(sp.EvalAll(es), spec.Value.Unit)
		fs[i] = integrate.Energy(
			vals, integrate.Grid{Array: units.NewArray(es, base.Unit)},
			energyDensity,
		)
		return nil
	})
	if err != nil {
		return units.Array{}, err
	}
	return collectScalars(fs), nil
}

// collectScalars packs per-query integrals, all carrying the same
// unit, into one array.
func collectScalars(fs []units.Scalar) units.Array {
	out := make([]float64, len(fs))
	for i, f := range fs {
		out[i] = f.Value
	}
	return units.NewArray(out, fs[0].Unit)
}

// fluxRmaxArray computes the flux inside each requested outer radius.
// The rate is sampled and energy-integrated once out to the largest
// radius, truncated, and interpolated; each query point then
// re-integrates the interpolant over its own radius grid.
func (c *Calculator) fluxRmaxArray(
	kind IntegralKind, emin, emax units.Scalar, rmaxs units.Array,
	energyDensity bool,
) (units.Array, error) {
	energy, err := integrate.Sampling(emin, emax, c.Geom.NptPd)
	if err != nil {
		return units.Array{}, err
	}

	// Radial base profile: volumetric rate for the spherical kind,
	// line-of-sight projected rate for the cylindrical kind. Truncation
	// is applied before the interpolant is built so the cut survives
	// every sub-range re-integration.
	var rbase integrate.Grid
	var profile units.Array
	switch kind {
	case Spherical:
		rbase, err = c.Geom.RadiusGrid(rmaxs.Max())
		if err != nil {
			return units.Array{}, err
		}
		rate, err := c.sample(energy, rbase)
		if err != nil {
			return units.Array{}, err
		}
		profile = integrate.EnergyTable(rate, energy, energyDensity)
	case Cylindrical:
		rbase, err = c.Geom.RadiusGrid(rmaxs.Max())
		if err != nil {
			return units.Array{}, err
		}
		prof, err := c.Profile(energy, rbase, energyDensity)
		if err != nil {
			return units.Array{}, err
		}
		profile = prof.Value
	}
	return c.reintegrate(kind, rbase, profile, rmaxs)
}

// reintegrate truncates a radial base profile, builds a cubic spline
// over it, and integrates the spline out to each requested outer
// radius: a volume integral for the spherical kind, a disk integral for
// the cylindrical kind. Shared by the energy-dependent observables and
// the radial-only ones (SZ, X-ray).
func (c *Calculator) reintegrate(
	kind IntegralKind, rbase integrate.Grid, profile units.Array,
	rmaxs units.Array,
) (units.Array, error) {
	profile.ZeroBeyond(rbase.Array, c.Geom.Rtrunc)
	sp := interpolate.NewSpline(rbase.Data, profile.Data)

	fs := make([]units.Scalar, rmaxs.Len())
	err := eachQuery(rmaxs.Len(), func(i int) error {
		sub, err := integrate.Sampling(c.Geom.Rmin, rmaxs.At(i), c.Geom.NptPd)
		if err != nil {
			return err
		}
		rs := sub.In(rbase.Unit)
		vals := units.NewArray(sp.EvalAll(rs), profile.Unit)
		rgrid := units.NewArray(rs, rbase.Unit)

		switch kind {
		case Spherical:
			fs[i] = integrate.Spherical(vals, integrate.Grid{Array: rgrid})
		case Cylindrical:
			fs[i] = integrate.Disk(vals, rgrid)
		default:
			panic(fmt.Sprintf("Unknown integral kind %d.", int(kind)))
		}
		return nil
	})
	if err != nil {
		return units.Array{}, err
	}
	return collectScalars(fs), nil
}

// Mul scales the result by s, e.g. by a luminosity-to-flux factor.
func (r FluxResult) Mul(s units.Scalar) FluxResult {
	if r.isArray {
		r.array = r.array.MulScalar(s)
	} else {
		r.scalar = r.scalar.Mul(s)
	}
	return r
}

// Convert expresses the result in the unit u.
func (r FluxResult) Convert(u units.Unit) FluxResult {
	if r.isArray {
		r.array = r.array.Convert(u)
	} else {
		r.scalar = r.scalar.Convert(u)
	}
	return r
}
