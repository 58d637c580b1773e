package integrate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/clustobs/units"
)

func kpc(x float64) units.Scalar { return units.NewScalar(x, units.Kpc) }
func gev(x float64) units.Scalar { return units.NewScalar(x, units.GeV) }

func mustSampling(t *testing.T, lo, hi units.Scalar, nptPd int) Grid {
	g, err := Sampling(lo, hi, nptPd)
	if err != nil {
		t.Fatal(err.Error())
	}
	return g
}

func TestSamplingGrid(t *testing.T) {
	g := mustSampling(t, kpc(1), kpc(1000), 10)

	// Three decades at 10 points per decade: 30 intervals, endpoints
	// included exactly.
	assert.Equal(t, 31, g.Len())
	assert.Equal(t, 1.0, g.Data[0])
	assert.Equal(t, 1000.0, g.Data[30])
	for i := 0; i < g.Len()-1; i++ {
		assert.Less(t, g.Data[i], g.Data[i+1])
	}
	// Log-uniform spacing.
	r0 := g.Data[1] / g.Data[0]
	for i := 1; i < g.Len()-1; i++ {
		assert.InEpsilon(t, r0, g.Data[i+1]/g.Data[i], 1e-8)
	}
}

func TestSamplingNarrowRange(t *testing.T) {
	// Far less than a decade still yields at least one interval with
	// both endpoints.
	g := mustSampling(t, kpc(1), kpc(1.01), 10)
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, 1.0, g.Data[0])
	assert.Equal(t, 1.01, g.Data[1])
}

func TestSamplingUnitReconciliation(t *testing.T) {
	g := mustSampling(t, kpc(1), units.NewScalar(10*units.CmPerKpc, units.Cm), 10)
	assert.InEpsilon(t, 10.0, g.Data[g.Len()-1], 1e-12)
}

func TestSamplingErrors(t *testing.T) {
	var perr *ParameterError

	_, err := Sampling(kpc(0), kpc(10), 10)
	assert.ErrorAs(t, err, &perr)
	_, err = Sampling(kpc(-1), kpc(10), 10)
	assert.ErrorAs(t, err, &perr)
	_, err = Sampling(kpc(10), kpc(10), 10)
	assert.ErrorAs(t, err, &perr)
	_, err = Sampling(kpc(10), kpc(1), 10)
	assert.ErrorAs(t, err, &perr)
	_, err = Sampling(kpc(1), kpc(10), 0)
	assert.ErrorAs(t, err, &perr)
}

func TestNewGrid(t *testing.T) {
	_, err := NewGrid(units.NewArray([]float64{1, 2, 3}, units.GeV))
	assert.NoError(t, err)
	_, err = NewGrid(units.NewArray([]float64{5}, units.GeV))
	assert.NoError(t, err)

	var perr *ParameterError
	_, err = NewGrid(units.NewArray([]float64{}, units.GeV))
	assert.ErrorAs(t, err, &perr)
	_, err = NewGrid(units.NewArray([]float64{0, 1}, units.GeV))
	assert.ErrorAs(t, err, &perr)
	_, err = NewGrid(units.NewArray([]float64{1, 1}, units.GeV))
	assert.ErrorAs(t, err, &perr)
}

func TestTrapzLogLogExactPowerLaw(t *testing.T) {
	// The rule fits a power law per interval, so pure power laws
	// integrate exactly whatever the sampling density.
	g := mustSampling(t, kpc(1), kpc(100), 3)
	ys := make([]float64, g.Len())
	for i, x := range g.Data {
		ys[i] = 5 * math.Pow(x, -2)
	}
	got := trapzLogLog(g.Data, ys)
	want := 5 * (1 - 1.0/100) // int of 5 x^-2 over [1, 100]
	assert.InEpsilon(t, want, got, 1e-10)
}

func TestTrapzLogLogInverseX(t *testing.T) {
	g := mustSampling(t, kpc(1), kpc(1000), 5)
	ys := make([]float64, g.Len())
	for i, x := range g.Data {
		ys[i] = 1 / x
	}
	got := trapzLogLog(g.Data, ys)
	assert.InEpsilon(t, math.Log(1000), got, 1e-10)
}

func TestTrapzLogLogZeroSamples(t *testing.T) {
	xs := []float64{1, 2, 4, 8}
	ys := []float64{1, 0, 0, 1}
	got := trapzLogLog(xs, ys)
	// Pure linear trapezoids: 0.5*1*1 + 0 + 0.5*1*4.
	assert.InDelta(t, 2.5, got, 1e-12)
	assert.False(t, math.IsNaN(got))
}

func TestSphericalConstantRate(t *testing.T) {
	rho := 3.0
	g := mustSampling(t, kpc(1), kpc(1000), 10)
	rate := units.Uniform(g.Len(), rho, units.Kpc.Pow(-3))

	lum := Spherical(rate, g)
	want := 4.0 / 3.0 * math.Pi * (math.Pow(1000, 3) - 1) * rho
	assert.InEpsilon(t, want, lum.Value, 1e-2)
	assert.True(t, lum.Unit.Compatible(units.Dimensionless))
}

func TestSphericalInverseSquare(t *testing.T) {
	// rate = r^-2 from 1 kpc to 1000 kpc integrates to 4 pi (1000-1).
	g := mustSampling(t, kpc(1), kpc(1000), 10)
	ys := make([]float64, g.Len())
	for i, x := range g.Data {
		ys[i] = math.Pow(x, -2)
	}
	rate := units.NewArray(ys, units.Kpc.Pow(-2))

	lum := Spherical(rate, g)
	want := 4 * math.Pi * (1000.0 - 1.0)
	assert.InEpsilon(t, want, lum.Value, 1e-2)
}

func TestEnergyLinearity(t *testing.T) {
	g := mustSampling(t, gev(0.1), gev(1000), 7)
	ys := make([]float64, g.Len())
	for i, e := range g.Data {
		ys[i] = 2.5 * math.Pow(e, -1.7)
	}
	rate := units.NewArray(ys, units.GeV.Pow(-1))

	one := Energy(rate, g, false)
	two := Energy(rate.Scaled(2), g, false)
	assert.InEpsilon(t, 2*one.Value, two.Value, 1e-12)

	oneED := Energy(rate, g, true)
	twoED := Energy(rate.Scaled(2), g, true)
	assert.InEpsilon(t, 2*oneED.Value, twoED.Value, 1e-12)

	// Energy weighting changes the carried unit.
	assert.True(t, one.Unit.Compatible(units.Dimensionless))
	assert.True(t, oneED.Unit.Compatible(units.GeV))
}

func TestEnergyTableMatchesPerColumn(t *testing.T) {
	eg := mustSampling(t, gev(1), gev(100), 5)
	nR := 4
	tab := units.NewTable(eg.Len(), nR, units.GeV.Pow(-1))
	for i, e := range eg.Data {
		for j := 0; j < nR; j++ {
			tab.Data[i][j] = float64(j+1) * math.Pow(e, -2)
		}
	}

	got := EnergyTable(tab, eg, false)
	for j := 0; j < nR; j++ {
		col := make([]float64, eg.Len())
		for i := range col {
			col[i] = tab.Data[i][j]
		}
		want := Energy(units.NewArray(col, tab.Unit), eg, false)
		assert.InEpsilon(t, want.Value, got.Data[j], 1e-12, "column %d", j)
	}
}

// betaRate is a steep beta-model-like profile with rapid outer
// falloff, used for the cylindrical/spherical consistency check.
func betaRate(r float64) float64 {
	rc := 100.0
	return math.Pow(1+(r/rc)*(r/rc), -3)
}

func TestLOSMatchesDirectIntegration(t *testing.T) {
	r3d := mustSampling(t, kpc(0.5), kpc(5000), 20)
	ys := make([]float64, r3d.Len())
	for i, r := range r3d.Data {
		ys[i] = betaRate(r)
	}
	rate := units.NewArray(ys, units.Kpc.Pow(-3))

	los := mustSampling(t, kpc(1), kpc(3000), 20)
	r2d := units.NewArray([]float64{10, 50, 200}, units.Kpc)

	proj, err := LOS(rate, r3d, r2d, los)
	if err != nil {
		t.Fatal(err.Error())
	}

	// Reference: fine midpoint integration of the analytic rate.
	for i, R := range r2d.Data {
		want := 0.0
		n := 200000
		lMin, lMax := 1.0, 3000.0
		dl := (lMax - lMin) / float64(n)
		for j := 0; j < n; j++ {
			l := lMin + (float64(j)+0.5)*dl
			want += betaRate(math.Hypot(R, l)) * dl
		}
		want *= 2
		assert.InEpsilon(t, want, proj.Data[i], 1e-2, "R = %g", R)
	}
}

func TestLOSDomainError(t *testing.T) {
	r3d := mustSampling(t, kpc(1), kpc(100), 10)
	rate := units.Uniform(r3d.Len(), 1, units.Kpc.Pow(-3))
	los := mustSampling(t, kpc(1), kpc(1000), 10)
	r2d := units.NewArray([]float64{10}, units.Kpc)

	// hypot(10, 1000) is far beyond the 100 kpc sampled range.
	_, err := LOS(rate, r3d, r2d, los)
	var derr *DomainError
	assert.ErrorAs(t, err, &derr)
}

func TestCylindricalConvergesToSpherical(t *testing.T) {
	r500 := 500.0
	nptPd := 20

	r3d := mustSampling(t, kpc(0.5), kpc(1.1*math.Hypot(1000*r500, 2000)), nptPd)
	ys := make([]float64, r3d.Len())
	for i, r := range r3d.Data {
		ys[i] = betaRate(r)
	}
	rate := units.NewArray(ys, units.Kpc.Pow(-3))

	// Spherical reference over a radius enclosing essentially all the
	// emission.
	sphGrid := mustSampling(t, kpc(1), kpc(2000), nptPd)
	sphRate := make([]float64, sphGrid.Len())
	for i, r := range sphGrid.Data {
		sphRate[i] = betaRate(r)
	}
	sph := Spherical(units.NewArray(sphRate, rate.Unit), sphGrid)

	// Cylindrical with a line of sight 1000 R500 deep.
	tab := units.NewTable(1, r3d.Len(), rate.Unit)
	copy(tab.Data[0], rate.Data)
	eg, _ := NewGrid(units.NewArray([]float64{1}, units.GeV))
	r2d := mustSampling(t, kpc(1), kpc(2000), nptPd)
	los := mustSampling(t, kpc(1), kpc(1000*r500), nptPd)

	cyl, err := Cylindrical(
		tab, eg, r3d, r2d, los,
		units.NewScalar(math.Inf(1), units.Kpc), false,
	)
	if err != nil {
		t.Fatal(err.Error())
	}

	assert.InEpsilon(t, sph.Value, cyl.Value, 2e-2)
}

func TestTruncationIsExactZero(t *testing.T) {
	r := units.NewArray([]float64{10, 100, 400, 900, 2000}, units.Kpc)
	v := units.NewArray([]float64{1, 2, 3, 4, 5}, units.Dimensionless)
	p := Profile{Radius: r, Value: v}

	p.Truncate(kpc(500))
	assert.Equal(t, []float64{1, 2, 3, 0, 0}, p.Value.Data)
}
