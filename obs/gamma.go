package obs

import (
	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
)

var (
	// PhotonFlux is the unit of integrated particle fluxes, 1/(cm^2 s).
	PhotonFlux = units.Cm.Pow(-2).Div(units.Sec)
	// EnergyFlux is the unit of integrated energy fluxes,
	// GeV/(cm^2 s).
	EnergyFlux = PhotonFlux.Mul(units.GeV)
	// DiffFlux is the unit of differential fluxes, 1/(GeV cm^2 s).
	DiffFlux = PhotonFlux.Div(units.GeV)
)

// Gamma computes gamma-ray observables. The injected source supplies
// the volumetric photon production rate dN/(dE dV dt); the optional
// absorber models attenuation on the extragalactic background light.
type Gamma struct {
	Calc Calculator
}

func NewGamma(g *ClusterGeometry, src RateSource, abs Absorber) *Gamma {
	return &Gamma{Calculator{Geom: g, Source: src, Abs: abs}}
}

// Spectrum returns the differential photon flux spectrum at Earth, in
// 1/(GeV cm^2 s).
func (o *Gamma) Spectrum(
	kind IntegralKind, energy integrate.Grid, rmax units.Scalar,
) (integrate.Spectrum, error) {
	spec, err := o.Calc.Spectrum(kind, energy, rmax)
	if err != nil {
		return integrate.Spectrum{}, err
	}
	spec.Value = spec.Value.MulScalar(o.Calc.Geom.FluxFactor()).Convert(DiffFlux)
	return spec, nil
}

// Flux returns the photon (or, with energyDensity, energy) flux at
// Earth integrated over the band [emin, emax].
func (o *Gamma) Flux(
	kind IntegralKind, emin Bound, emax units.Scalar, rmax Bound,
	energyDensity bool,
) (FluxResult, error) {
	res, err := o.Calc.Flux(kind, emin, emax, rmax, energyDensity)
	if err != nil {
		return FluxResult{}, err
	}
	u := PhotonFlux
	if energyDensity {
		u = EnergyFlux
	}
	return res.Mul(o.Calc.Geom.FluxFactor()).Convert(u), nil
}

// Profile returns the projected surface flux profile on r2d, in
// 1/(cm^2 s sr) (or GeV/(cm^2 s sr) with energyDensity) after dividing
// by the solid angle subtended by a unit projected area.
func (o *Gamma) Profile(
	energy integrate.Grid, r2d integrate.Grid, energyDensity bool,
) (integrate.Profile, error) {
	prof, err := o.Calc.Profile(energy, r2d, energyDensity)
	if err != nil {
		return integrate.Profile{}, err
	}
	u := PhotonFlux.Div(units.Sr)
	if energyDensity {
		u = EnergyFlux.Div(units.Sr)
	}
	prof.Value = surfaceFlux(prof.Value, o.Calc.Geom).Convert(u)
	return prof, nil
}

// surfaceFlux turns a line-of-sight projected volumetric rate (a rate
// per unit projected area) into a surface brightness at Earth: the flux
// factor converts emitted to received, and D_ang^2 converts per-area to
// per-solid-angle.
func surfaceFlux(v units.Array, g *ClusterGeometry) units.Array {
	dang2 := g.DAng.Mul(g.DAng)
	perSr := units.NewScalar(dang2.Value, dang2.Unit.Div(units.Sr))
	return v.MulScalar(g.FluxFactor()).MulScalar(perSr)
}
