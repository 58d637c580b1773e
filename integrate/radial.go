package integrate

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/clustobs/units"
)

// Spherical integrates a volumetric rate over the ball spanned by its
// radius grid, i.e. the volume integral of 4 pi r^2 rate(r) dr. The
// result carries the unit of rate times radius cubed.
func Spherical(rate units.Array, r Grid) units.Scalar {
	if rate.Len() != r.Len() {
		panic(fmt.Sprintf(
			"Rate has %d samples, but radius grid has %d.",
			rate.Len(), r.Len(),
		))
	}
	ys := make([]float64, rate.Len())
	for i, x := range r.Data {
		ys[i] = 4 * math.Pi * x * x * rate.Data[i]
	}
	val := trapzLogLog(r.Data, ys)
	return units.NewScalar(val, rate.Unit.Mul(r.Unit.Pow(3)))
}

// Disk integrates a projected rate over the disk spanned by its
// projected radius array, i.e. the surface integral of
// 2 pi R proj(R) dR. The result carries the unit of proj times radius
// squared.
func Disk(proj units.Array, r2d units.Array) units.Scalar {
	if proj.Len() != r2d.Len() {
		panic(fmt.Sprintf(
			"Projected rate has %d samples, but radius grid has %d.",
			proj.Len(), r2d.Len(),
		))
	}
	ys := make([]float64, proj.Len())
	for i, x := range r2d.Data {
		ys[i] = 2 * math.Pi * x * proj.Data[i]
	}
	val := trapzLogLog(r2d.Data, ys)
	return units.NewScalar(val, proj.Unit.Mul(r2d.Unit.Pow(2)))
}

// CylindricalSpectrum projects a 3D rate table (energy rows by r3d
// columns) along the line of sight and integrates each energy's
// projected profile over the disk spanned by r2d. Projected values
// beyond rtrunc are zeroed before the disk integral, after the
// projection interpolants have been evaluated. The result is one
// luminosity per energy row.
func CylindricalSpectrum(
	rate units.Table, r3d Grid, r2d Grid, los Grid, rtrunc units.Scalar,
) (units.Array, error) {
	if rate.Cols() != r3d.Len() {
		panic(fmt.Sprintf(
			"Rate table has %d radius columns, but 3D grid has %d points.",
			rate.Cols(), r3d.Len(),
		))
	}

	out := make([]float64, rate.Rows())
	var unit units.Unit
	for i := 0; i < rate.Rows(); i++ {
		proj, err := LOS(rate.Row(i), r3d, r2d.Array, los)
		if err != nil {
			return units.Array{}, err
		}
		proj.ZeroBeyond(r2d.Array, rtrunc)
		lum := Disk(proj, r2d.Array)
		out[i], unit = lum.Value, lum.Unit
	}
	return units.NewArray(out, unit), nil
}

// Cylindrical integrates a 3D rate table over a truncated cylinder: a
// line-of-sight projection per energy, a disk integral over r2d, and,
// when more than one energy row is present, an energy integral over
// the energy grid. As the line-of-sight depth grows far beyond rtrunc
// the result converges to the spherical integral over the same volume.
func Cylindrical(
	rate units.Table, energy Grid, r3d Grid, r2d Grid, los Grid,
	rtrunc units.Scalar, energyDensity bool,
) (units.Scalar, error) {
	if rate.Rows() != energy.Len() {
		panic(fmt.Sprintf(
			"Rate table has %d energy rows, but energy grid has %d points.",
			rate.Rows(), energy.Len(),
		))
	}

	lum, err := CylindricalSpectrum(rate, r3d, r2d, los, rtrunc)
	if err != nil {
		return units.Scalar{}, err
	}
	if energy.Len() == 1 {
		return lum.At(0), nil
	}
	return Energy(lum, energy, energyDensity), nil
}
