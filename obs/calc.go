package obs

import (
	"fmt"

	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
)

// IntegralKind selects how a volumetric rate is collapsed to a
// luminosity: over a sphere, or over a line-of-sight cylinder.
type IntegralKind int

const (
	Spherical IntegralKind = iota
	Cylindrical
)

// ParseIntegralKind converts a configuration string into an
// IntegralKind. Anything other than "spherical" or "cylindrical" is an
// error.
func ParseIntegralKind(s string) (IntegralKind, error) {
	switch s {
	case "spherical":
		return Spherical, nil
	case "cylindrical":
		return Cylindrical, nil
	}
	return 0, integrate.ParamErrf(
		"unknown integral kind %q: must be \"spherical\" or \"cylindrical\"", s,
	)
}

func (k IntegralKind) String() string {
	switch k {
	case Spherical:
		return "spherical"
	case Cylindrical:
		return "cylindrical"
	}
	return fmt.Sprintf("IntegralKind(%d)", int(k))
}

// Calculator owns the generic spectrum/profile/flux machinery shared by
// every observable. The physics is injected: Source supplies the
// volumetric differential rate, and Abs attenuates it in energy.
type Calculator struct {
	Geom   *ClusterGeometry
	Source RateSource
	// Abs may be nil, meaning no absorption.
	Abs Absorber
}

// absorb multiplies each energy row of rate by the absorption factor at
// that energy. It runs exactly once per computation, before any energy
// integration.
func (c *Calculator) absorb(rate units.Table, energy integrate.Grid) error {
	if c.Abs == nil {
		return nil
	}
	fs, err := c.Abs.Factor(energy, c.Geom.Redshift)
	if err != nil {
		return err
	}
	if !fs.Unit.Compatible(units.Dimensionless) {
		panic(fmt.Sprintf("Absorption factor has unit %s.", fs.Unit.String()))
	}
	rate.ScaleRows(fs.In(units.Dimensionless))
	return nil
}

// sample asks the rate source for its table and applies absorption.
func (c *Calculator) sample(
	energy, r3d integrate.Grid,
) (units.Table, error) {
	rate, err := c.Source.Rate(energy, r3d)
	if err != nil {
		return units.Table{}, err
	}
	if rate.Rows() != energy.Len() || rate.Cols() != r3d.Len() {
		panic(fmt.Sprintf(
			"Rate table is %d x %d, but grids are %d x %d.",
			rate.Rows(), rate.Cols(), energy.Len(), r3d.Len(),
		))
	}
	if err := c.absorb(rate, energy); err != nil {
		return units.Table{}, err
	}
	return rate, nil
}

// Spectrum computes the differential luminosity spectrum dL/dE out to
// the outer radius rmax. For Spherical this is the volume integral of
// the rate at each energy; for Cylindrical it is the disk integral of
// the line-of-sight projection. Truncation beyond the geometry's Rtrunc
// is applied in both cases.
func (c *Calculator) Spectrum(
	kind IntegralKind, energy integrate.Grid, rmax units.Scalar,
) (integrate.Spectrum, error) {
	var value units.Array

	switch kind {
	case Spherical:
		r3d, err := c.Geom.RadiusGrid(rmax)
		if err != nil {
			return integrate.Spectrum{}, err
		}
		rate, err := c.sample(energy, r3d)
		if err != nil {
			return integrate.Spectrum{}, err
		}

		out := make([]float64, energy.Len())
		var u units.Unit
		for i := 0; i < rate.Rows(); i++ {
			row := rate.Row(i)
			row.ZeroBeyond(r3d.Array, c.Geom.Rtrunc)
			lum := integrate.Spherical(row, r3d)
			out[i], u = lum.Value, lum.Unit
		}
		value = units.NewArray(out, u)

	case Cylindrical:
		r3d, err := c.Geom.R3dGrid(rmax)
		if err != nil {
			return integrate.Spectrum{}, err
		}
		los, err := c.Geom.LosGrid()
		if err != nil {
			return integrate.Spectrum{}, err
		}
		r2d, err := c.Geom.RadiusGrid(rmax)
		if err != nil {
			return integrate.Spectrum{}, err
		}
		rate, err := c.sample(energy, r3d)
		if err != nil {
			return integrate.Spectrum{}, err
		}

		value, err = integrate.CylindricalSpectrum(
			rate, r3d, r2d, los, c.Geom.Rtrunc,
		)
		if err != nil {
			return integrate.Spectrum{}, err
		}

	default:
		panic(fmt.Sprintf("Unknown integral kind %d.", int(kind)))
	}

	return integrate.Spectrum{Energy: energy.Array, Value: value}, nil
}

// Profile computes the projected (surface) profile on the 2D radius
// grid r2d: the rate is projected along the line of sight at each
// energy, integrated over energy, and truncated beyond Rtrunc. A
// single-point energy grid skips the energy integration and returns the
// monochromatic projection.
func (c *Calculator) Profile(
	energy integrate.Grid, r2d integrate.Grid, energyDensity bool,
) (integrate.Profile, error) {
	r3d, err := c.Geom.R3dGrid(r2d.Array.Max())
	if err != nil {
		return integrate.Profile{}, err
	}
	los, err := c.Geom.LosGrid()
	if err != nil {
		return integrate.Profile{}, err
	}
	rate, err := c.sample(energy, r3d)
	if err != nil {
		return integrate.Profile{}, err
	}

	proj := units.NewTable(energy.Len(), r2d.Len(), units.Dimensionless)
	for i := 0; i < rate.Rows(); i++ {
		p, err := integrate.LOS(rate.Row(i), r3d, r2d.Array, los)
		if err != nil {
			return integrate.Profile{}, err
		}
		copy(proj.Data[i], p.Data)
		proj.Unit = p.Unit
	}

	var value units.Array
	if energy.Len() == 1 {
		value = proj.Row(0)
	} else {
		value = integrate.EnergyTable(proj, energy, energyDensity)
	}

	prof := integrate.Profile{Radius: r2d.Array, Value: value}
	prof.Truncate(c.Geom.Rtrunc)
	return prof, nil
}
