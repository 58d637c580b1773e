package obs

import (
	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
)

// RadialCalculator is the energy-less counterpart of Calculator, used
// by observables whose rate has no spectral axis (thermal SZ pressure,
// temperature-folded X-ray emissivity). It shares the geometry, grid
// and re-integration machinery.
type RadialCalculator struct {
	Geom   *ClusterGeometry
	Source ProfileSource
}

func (c *RadialCalculator) sample(r3d integrate.Grid) (units.Array, error) {
	rate, err := c.Source.Profile(r3d)
	if err != nil {
		return units.Array{}, err
	}
	if rate.Len() != r3d.Len() {
		panic("Rate profile length does not match its radius grid.")
	}
	return rate, nil
}

// Profile projects the rate along the line of sight onto the 2D radius
// grid r2d and truncates beyond Rtrunc.
func (c *RadialCalculator) Profile(r2d integrate.Grid) (integrate.Profile, error) {
	r3d, err := c.Geom.R3dGrid(r2d.Array.Max())
	if err != nil {
		return integrate.Profile{}, err
	}
	los, err := c.Geom.LosGrid()
	if err != nil {
		return integrate.Profile{}, err
	}
	rate, err := c.sample(r3d)
	if err != nil {
		return integrate.Profile{}, err
	}

	value, err := integrate.LOS(rate, r3d, r2d.Array, los)
	if err != nil {
		return integrate.Profile{}, err
	}

	prof := integrate.Profile{Radius: r2d.Array, Value: value}
	prof.Truncate(c.Geom.Rtrunc)
	return prof, nil
}

// Flux integrates the rate out to rmax, which may be a scalar or an
// array of outer radii.
func (c *RadialCalculator) Flux(
	kind IntegralKind, rmax Bound,
) (FluxResult, error) {
	if kind != Spherical && kind != Cylindrical {
		return FluxResult{}, integrate.ParamErrf(
			"unknown integral kind %d", int(kind),
		)
	}

	// Both paths go through the same base-profile-plus-reintegration
	// code; the scalar path is the degenerate one-element case.
	rmaxs := rmax.array
	if !rmax.IsArray() {
		rmaxs = units.NewArray([]float64{rmax.scalar.Value}, rmax.scalar.Unit)
	}

	var rbase integrate.Grid
	var profile units.Array
	var err error
	switch kind {
	case Spherical:
		rbase, err = c.Geom.RadiusGrid(rmaxs.Max())
		if err != nil {
			return FluxResult{}, err
		}
		profile, err = c.sample(rbase)
		if err != nil {
			return FluxResult{}, err
		}
	case Cylindrical:
		rbase, err = c.Geom.RadiusGrid(rmaxs.Max())
		if err != nil {
			return FluxResult{}, err
		}
		prof, err := c.Profile(rbase)
		if err != nil {
			return FluxResult{}, err
		}
		profile = prof.Value
	}

	calc := Calculator{Geom: c.Geom}
	out, err := calc.reintegrate(kind, rbase, profile, rmaxs)
	if err != nil {
		return FluxResult{}, err
	}
	if !rmax.IsArray() {
		return FluxResult{scalar: out.At(0)}, nil
	}
	return FluxResult{array: out, isArray: true}, nil
}
