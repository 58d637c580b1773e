package obs

import (
	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
)

// Synchrotron computes radio synchrotron observables. The source
// supplies the volumetric emissivity per unit frequency; fluxes come
// out in Jansky.
type Synchrotron struct {
	Calc Calculator
}

func NewSynchrotron(g *ClusterGeometry, src RateSource) *Synchrotron {
	return &Synchrotron{Calculator{Geom: g, Source: src}}
}

// Spectrum returns the flux density spectrum S_nu over the frequency
// grid, in Jy.
func (o *Synchrotron) Spectrum(
	kind IntegralKind, freq integrate.Grid, rmax units.Scalar,
) (integrate.Spectrum, error) {
	spec, err := o.Calc.Spectrum(kind, freq, rmax)
	if err != nil {
		return integrate.Spectrum{}, err
	}
	spec.Value = spec.Value.MulScalar(o.Calc.Geom.FluxFactor()).Convert(units.Jy)
	return spec, nil
}

// monoGrid wraps a single frequency as a one-point sampling grid.
func monoGrid(freq units.Scalar) integrate.Grid {
	g, err := integrate.NewGrid(
		units.NewArray([]float64{freq.Value}, freq.Unit),
	)
	if err != nil {
		panic(err.Error())
	}
	return g
}

// atFreq binds the source to a single frequency, yielding a radial
// emissivity profile.
func (o *Synchrotron) atFreq(freq units.Scalar) ProfileSource {
	return ProfileFunc(func(r integrate.Grid) (units.Array, error) {
		rate, err := o.Calc.Source.Rate(monoGrid(freq), r)
		if err != nil {
			return units.Array{}, err
		}
		return rate.Row(0), nil
	})
}

// Flux returns the flux density at the frequency freq inside rmax,
// in Jy.
func (o *Synchrotron) Flux(
	kind IntegralKind, freq units.Scalar, rmax Bound,
) (FluxResult, error) {
	rc := RadialCalculator{Geom: o.Calc.Geom, Source: o.atFreq(freq)}
	res, err := rc.Flux(kind, rmax)
	if err != nil {
		return FluxResult{}, err
	}
	return res.Mul(o.Calc.Geom.FluxFactor()).Convert(units.Jy), nil
}

// Profile returns the projected surface brightness profile at the
// frequency freq, in Jy/sr.
func (o *Synchrotron) Profile(
	freq units.Scalar, r2d integrate.Grid,
) (integrate.Profile, error) {
	rc := RadialCalculator{Geom: o.Calc.Geom, Source: o.atFreq(freq)}
	prof, err := rc.Profile(r2d)
	if err != nil {
		return integrate.Profile{}, err
	}
	prof.Value = surfaceFlux(prof.Value, o.Calc.Geom).Convert(units.Jy.Div(units.Sr))
	return prof, nil
}
