package obs

import (
	"math"

	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
	"github.com/phil-mansfield/clustobs/xray"
)

// nHPerNe is the hydrogen-to-electron number density ratio of a fully
// ionized plasma with primordial abundances.
const nHPerNe = 1 / 1.2

// XRay computes X-ray observables from injected electron density and
// gas temperature profiles folded through an Xspec-style response
// table.
type XRay struct {
	Geom *ClusterGeometry
	// Density is the electron number density profile.
	Density ProfileSource
	// Temperature is the gas temperature profile.
	Temperature ProfileSource
	Resp        *xray.Table
}

func NewXRay(
	g *ClusterGeometry, density, temperature ProfileSource, resp *xray.Table,
) *XRay {
	return &XRay{g, density, temperature, resp}
}

// normFactor is the Xspec normalization prefactor,
// 1e-14 / (4 pi D_ang^2 (1+z)^2) with D_ang in cm.
func (o *XRay) normFactor() units.Scalar {
	d := o.Geom.DAng.In(units.Cm)
	z := o.Geom.Redshift
	v := 1e-14 / (4 * math.Pi * d * d * (1 + z) * (1 + z))
	return units.NewScalar(v, units.Cm.Pow(-2))
}

// emissivity binds the collaborators into a volumetric source term
// n_e n_H Lambda(T) for the requested channel.
func (o *XRay) emissivity(ch xray.Channel) ProfileSource {
	return ProfileFunc(func(r integrate.Grid) (units.Array, error) {
		ne, err := o.Density.Profile(r)
		if err != nil {
			return units.Array{}, err
		}
		T, err := o.Temperature.Profile(r)
		if err != nil {
			return units.Array{}, err
		}
		lambda, err := o.Resp.Lookup(ch, T)
		if err != nil {
			return units.Array{}, err
		}
		nH := ne.Scaled(nHPerNe)
		return ne.Mul(nH).Mul(lambda), nil
	})
}

// fluxUnit is the unit an integrated flux in the channel comes out in.
func fluxUnit(ch xray.Channel) units.Unit {
	if ch == xray.EnergyCounts {
		return units.Erg.Div(units.Sec).Div(units.Cm.Pow(2))
	}
	return PhotonFlux
}

// Flux returns the X-ray flux at the detector in the requested
// channel, inside rmax.
func (o *XRay) Flux(
	ch xray.Channel, kind IntegralKind, rmax Bound,
) (FluxResult, error) {
	rc := RadialCalculator{Geom: o.Geom, Source: o.emissivity(ch)}
	res, err := rc.Flux(kind, rmax)
	if err != nil {
		return FluxResult{}, err
	}
	return res.Mul(o.normFactor()).Convert(fluxUnit(ch)), nil
}

// Profile returns the X-ray surface brightness profile in the
// requested channel, per steradian.
func (o *XRay) Profile(
	ch xray.Channel, r2d integrate.Grid,
) (integrate.Profile, error) {
	rc := RadialCalculator{Geom: o.Geom, Source: o.emissivity(ch)}
	prof, err := rc.Profile(r2d)
	if err != nil {
		return integrate.Profile{}, err
	}

	dang2 := o.Geom.DAng.Mul(o.Geom.DAng)
	perSr := units.NewScalar(dang2.Value, dang2.Unit.Div(units.Sr))
	prof.Value = prof.Value.
		MulScalar(o.normFactor()).
		MulScalar(perSr).
		Convert(fluxUnit(ch).Div(units.Sr))
	return prof, nil
}
