package units

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitConversions(t *testing.T) {
	assert.InEpsilon(t, CmPerKpc, NewScalar(1, Kpc).In(Cm), 1e-12)
	assert.InEpsilon(t, 1.0, NewScalar(CmPerKpc, Cm).In(Kpc), 1e-12)
	assert.InEpsilon(t, ErgPerGeV, NewScalar(1, GeV).In(Erg), 1e-12)
	assert.InEpsilon(t, 1e3, NewScalar(1, GeV).In(MeV), 1e-12)
	assert.InEpsilon(t, 1e9, NewScalar(1, GHz).In(Hz), 1e-12)
}

func TestIncompatibleUnitsPanic(t *testing.T) {
	assert.Panics(t, func() { NewScalar(1, Kpc).In(GeV) })
	assert.Panics(t, func() { NewScalar(1, Hz).In(Sr) })
}

func TestDerivedUnits(t *testing.T) {
	flux := Erg.Div(Sec).Div(Cm.Pow(2)).Div(Hz)
	assert.True(t, Jy.Compatible(flux))
	assert.InEpsilon(t, 1e-23, NewScalar(1, Jy).In(flux), 1e-12)

	rate := GeV.Pow(-1).Div(Cm.Pow(3)).Div(Sec)
	assert.True(t, rate.Compatible(MeV.Pow(-1).Div(Cm.Pow(3)).Div(Sec)))
	assert.False(t, rate.Compatible(GeV.Div(Cm.Pow(3)).Div(Sec)))
}

func TestScalarArithmetic(t *testing.T) {
	d := NewScalar(2, Kpc)
	v := d.Mul(d).Mul(d)
	assert.InEpsilon(t, 8.0, v.In(Kpc.Pow(3)), 1e-12)

	r := NewScalar(4, Kpc).Div(NewScalar(2, Sec))
	assert.InEpsilon(t, 2.0, r.In(Kpc.Div(Sec)), 1e-12)

	assert.True(t, NewScalar(1, Kpc).Less(NewScalar(CmPerKpc*2, Cm)))
	assert.False(t, NewScalar(3, Kpc).Less(NewScalar(CmPerKpc*2, Cm)))
}

func TestArrayOps(t *testing.T) {
	a := NewArray([]float64{1, 2, 3}, Kpc)
	b := NewArray([]float64{2, 2, 2}, Sec.Pow(-1))

	p := a.Mul(b)
	assert.Equal(t, []float64{2, 4, 6}, p.Data)
	assert.True(t, p.Unit.Compatible(Kpc.Div(Sec)))

	assert.Equal(t, 3.0, a.Max().Value)
	assert.Equal(t, 1.0, a.Min().Value)

	assert.Panics(t, func() {
		a.Mul(NewArray([]float64{1, 2}, Sec))
	})
}

func TestZeroBeyond(t *testing.T) {
	r := NewArray([]float64{1, 10, 100, 1000}, Kpc)
	v := NewArray([]float64{1, 1, 1, 1}, Dimensionless)

	v.ZeroBeyond(r, NewScalar(50, Kpc))
	assert.Equal(t, []float64{1, 1, 0, 0}, v.Data)

	// An infinite truncation radius leaves everything untouched.
	w := NewArray([]float64{2, 2, 2, 2}, Dimensionless)
	w.ZeroBeyond(r, NewScalar(math.Inf(1), Kpc))
	assert.Equal(t, []float64{2, 2, 2, 2}, w.Data)

	// The comparison reconciles units first.
	x := NewArray([]float64{3, 3, 3, 3}, Dimensionless)
	x.ZeroBeyond(r, NewScalar(50*CmPerKpc, Cm))
	assert.Equal(t, []float64{3, 3, 0, 0}, x.Data)
}

func TestTableScaleRows(t *testing.T) {
	tab := NewTable(2, 3, GeV)
	for j := 0; j < 3; j++ {
		tab.Data[0][j] = 1
		tab.Data[1][j] = 2
	}
	tab.ScaleRows([]float64{0.5, 2})
	assert.Equal(t, []float64{0.5, 0.5, 0.5}, tab.Data[0])
	assert.Equal(t, []float64{4, 4, 4}, tab.Data[1])

	assert.Panics(t, func() { tab.ScaleRows([]float64{1}) })
}
