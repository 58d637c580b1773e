package obs

import (
	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
)

// A RateSource supplies a volumetric differential emission rate sampled
// on the grids the caller constructs. Rate is called once per needed
// grid pair and must return a table with one row per energy and one
// column per radius. Sources defined only over a bounded radial range
// should return a DomainError rather than extrapolate.
type RateSource interface {
	Rate(energy integrate.Grid, radius integrate.Grid) (units.Table, error)
}

// A ProfileSource supplies a volumetric rate with no energy dependence,
// e.g. an electron pressure profile or a temperature-folded X-ray
// emissivity.
type ProfileSource interface {
	Profile(radius integrate.Grid) (units.Array, error)
}

// An Absorber attenuates a differential spectrum, e.g. extragalactic
// background light absorption of gamma rays. Factor returns a
// dimensionless array in [0, 1] with one element per energy sample.
type Absorber interface {
	Factor(energy integrate.Grid, redshift float64) (units.Array, error)
}

// NoAbsorption is the Absorber used when absorption is disabled. Its
// factor is identically one.
type NoAbsorption struct{}

func (NoAbsorption) Factor(
	energy integrate.Grid, redshift float64,
) (units.Array, error) {
	return units.Uniform(energy.Len(), 1, units.Dimensionless), nil
}

// RateFunc adapts a plain function to the RateSource interface.
type RateFunc func(integrate.Grid, integrate.Grid) (units.Table, error)

func (f RateFunc) Rate(
	energy, radius integrate.Grid,
) (units.Table, error) {
	return f(energy, radius)
}

// ProfileFunc adapts a plain function to the ProfileSource interface.
type ProfileFunc func(integrate.Grid) (units.Array, error)

func (f ProfileFunc) Profile(radius integrate.Grid) (units.Array, error) {
	return f(radius)
}
