package obs

import (
	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
)

// Flavor selects which neutrino species a NeutrinoSource reports.
type Flavor int

const (
	AllFlavors Flavor = iota
	NuE
	NuMu
)

// ParseFlavor converts a configuration string into a Flavor.
func ParseFlavor(s string) (Flavor, error) {
	switch s {
	case "all":
		return AllFlavors, nil
	case "nue":
		return NuE, nil
	case "numu":
		return NuMu, nil
	}
	return 0, integrate.ParamErrf(
		"unknown neutrino flavor %q: must be \"all\", \"nue\" or \"numu\"", s,
	)
}

func (f Flavor) String() string {
	switch f {
	case AllFlavors:
		return "all"
	case NuE:
		return "nue"
	case NuMu:
		return "numu"
	}
	return "unknown"
}

// A NeutrinoSource supplies per-flavor volumetric neutrino production
// rates.
type NeutrinoSource interface {
	Rate(f Flavor, energy, radius integrate.Grid) (units.Table, error)
}

// Neutrino computes neutrino observables for one flavor. Neutrinos are
// not absorbed in transit, so there is no absorber hook.
type Neutrino struct {
	Calc   Calculator
	Flavor Flavor
}

func NewNeutrino(g *ClusterGeometry, src NeutrinoSource, f Flavor) *Neutrino {
	bound := RateFunc(func(e, r integrate.Grid) (units.Table, error) {
		return src.Rate(f, e, r)
	})
	return &Neutrino{Calculator{Geom: g, Source: bound}, f}
}

// Spectrum returns the differential neutrino flux spectrum at Earth.
func (o *Neutrino) Spectrum(
	kind IntegralKind, energy integrate.Grid, rmax units.Scalar,
) (integrate.Spectrum, error) {
	spec, err := o.Calc.Spectrum(kind, energy, rmax)
	if err != nil {
		return integrate.Spectrum{}, err
	}
	spec.Value = spec.Value.MulScalar(o.Calc.Geom.FluxFactor()).Convert(DiffFlux)
	return spec, nil
}

// Flux returns the neutrino flux at Earth over the band [emin, emax].
func (o *Neutrino) Flux(
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

// Profile returns the projected neutrino surface flux profile.
func (o *Neutrino) Profile(
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
