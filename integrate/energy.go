package integrate

import (
	"fmt"

	"github.com/phil-mansfield/clustobs/units"
)

// Energy integrates a differential rate over its energy grid with the
// power-law trapezoid rule. If energyDensity is set the integrand is
// weighted by energy first, so the result is an energy flux rather
// than a particle rate. The integral is linear in the rate either way.
func Energy(rate units.Array, energy Grid, energyDensity bool) units.Scalar {
	if rate.Len() != energy.Len() {
		panic(fmt.Sprintf(
			"Rate has %d samples, but energy grid has %d.",
			rate.Len(), energy.Len(),
		))
	}

	if !energyDensity {
		return TrapzLogLog(rate, energy.Array)
	}

	ys := make([]float64, rate.Len())
	for i, e := range energy.Data {
		ys[i] = rate.Data[i] * e
	}
	val := trapzLogLog(energy.Data, ys)
	return units.NewScalar(val, rate.Unit.Mul(energy.Unit.Pow(2)))
}

// EnergyTable collapses the energy axis of a rate table (energy rows
// by radius columns), integrating each radius column over the energy
// grid. The result has one value per radius column.
func EnergyTable(rate units.Table, energy Grid, energyDensity bool) units.Array {
	if rate.Rows() != energy.Len() {
		panic(fmt.Sprintf(
			"Rate table has %d energy rows, but energy grid has %d points.",
			rate.Rows(), energy.Len(),
		))
	}

	nR := rate.Cols()
	out := make([]float64, nR)
	col := make([]float64, rate.Rows())
	for j := 0; j < nR; j++ {
		for i := range col {
			col[i] = rate.Data[i][j]
			if energyDensity {
				col[i] *= energy.Data[i]
			}
		}
		out[j] = trapzLogLog(energy.Data, col)
	}

	unit := rate.Unit.Mul(energy.Unit)
	if energyDensity {
		unit = unit.Mul(energy.Unit)
	}
	return units.NewArray(out, unit)
}
