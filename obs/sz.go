package obs

import (
	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
)

const (
	// sigmaTCm2 is the Thomson cross section in cm^2.
	sigmaTCm2 = 6.6524587321e-25
	// electronRestMeV is the electron rest energy in MeV.
	electronRestMeV = 0.51099895
)

// comptonFactor is sigma_T / (m_e c^2), the conversion from an
// integrated electron pressure to a Compton-y value.
func comptonFactor() units.Scalar {
	sigmaT := units.NewScalar(sigmaTCm2, units.Cm.Pow(2))
	meC2 := units.NewScalar(electronRestMeV, units.MeV)
	return sigmaT.Div(meC2)
}

// SZ computes thermal Sunyaev-Zel'dovich observables from an injected
// electron pressure profile.
type SZ struct {
	Rad RadialCalculator
}

// NewSZ builds the SZ adapter around an electron pressure profile
// (energy per unit volume).
func NewSZ(g *ClusterGeometry, pressure ProfileSource) *SZ {
	return &SZ{RadialCalculator{Geom: g, Source: pressure}}
}

// YProfile returns the dimensionless Compton-y profile on the
// projected radius grid r2d.
func (o *SZ) YProfile(r2d integrate.Grid) (integrate.Profile, error) {
	prof, err := o.Rad.Profile(r2d)
	if err != nil {
		return integrate.Profile{}, err
	}
	prof.Value = prof.Value.
		MulScalar(comptonFactor()).
		Convert(units.Dimensionless)
	return prof, nil
}

// Y returns the integrated Compton parameter inside rmax, in sr:
// sigma_T/(m_e c^2) times the pressure integral, divided by the
// angular diameter distance squared. The spherical kind integrates the
// pressure over the ball, the cylindrical kind integrates the y
// profile over the projected disk.
func (o *SZ) Y(kind IntegralKind, rmax Bound) (FluxResult, error) {
	res, err := o.Rad.Flux(kind, rmax)
	if err != nil {
		return FluxResult{}, err
	}
	dang2 := o.Rad.Geom.DAng.Mul(o.Rad.Geom.DAng)
	perSr := units.NewScalar(1/dang2.Value, dang2.Unit.Pow(-1).Mul(units.Sr))
	return res.Mul(comptonFactor()).Mul(perSr).Convert(units.Sr), nil
}
