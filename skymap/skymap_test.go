package skymap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
)

// testGrids builds an n x n RA/Dec pixel grid of the given width
// (degrees) centered on (raC, decC).
func testGrids(n int, width, raC, decC float64) (ra, dec [][]float64) {
	cosDec := math.Cos(decC * math.Pi / 180)
	ra = make([][]float64, n)
	dec = make([][]float64, n)
	for i := 0; i < n; i++ {
		ra[i] = make([]float64, n)
		dec[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			ra[i][j] = raC + width*(float64(j)/float64(n-1)-0.5)/cosDec
			dec[i][j] = decC + width*(float64(i)/float64(n-1)-0.5)
		}
	}
	return ra, dec
}

// testProfile is a Gaussian surface brightness profile over projected
// radius, in kpc.
func testProfile(dAngKpc, coreDeg float64) integrate.Profile {
	core := dAngKpc * math.Tan(coreDeg*math.Pi/180)
	r, err := integrate.Sampling(
		units.NewScalar(core/100, units.Kpc),
		units.NewScalar(core*20, units.Kpc), 40,
	)
	if err != nil {
		panic(err.Error())
	}
	v := make([]float64, r.Len())
	for i, x := range r.Data {
		v[i] = math.Exp(-x * x / (2 * core * core))
	}
	return integrate.Profile{
		Radius: r.Array,
		Value:  units.NewArray(v, units.Dimensionless.Div(units.Sr)),
	}
}

func TestDistanceMapCenterAndScales(t *testing.T) {
	ra, dec := testGrids(41, 2.0, 30, 45)
	dm := NewDistanceMap(ra, dec, 30, 45)

	// Center pixel sits on the cluster.
	assert.InDelta(t, 0, dm.Dist[20][20], 1e-10)
	// Corner pixel is half the diagonal away.
	assert.InDelta(t, math.Hypot(1, 1), dm.Dist[0][0], 1e-10)
	assert.InDelta(t, 0.05, dm.ScaleX, 1e-10)
	assert.InDelta(t, 0.05, dm.ScaleY, 1e-10)
}

func TestFromProfileValues(t *testing.T) {
	dAng := units.NewScalar(100e3, units.Kpc)
	prof := testProfile(100e3, 0.2)
	ra, dec := testGrids(41, 2.0, 0, 0)
	dm := NewDistanceMap(ra, dec, 0, 0)

	m := FromProfile(prof, dm, dAng, units.NewScalar(math.Inf(1), units.Deg))

	// The center pixel clamps to the innermost profile sample.
	assert.InEpsilon(t, prof.Value.Data[0], m.Values[20][20], 1e-10)
	// Values decrease outward along a row.
	for j := 21; j < 40; j++ {
		assert.Less(t, m.Values[20][j], m.Values[20][j-1])
	}
}

func TestFromProfileThetaTruncation(t *testing.T) {
	dAng := units.NewScalar(100e3, units.Kpc)
	prof := testProfile(100e3, 0.2)
	ra, dec := testGrids(41, 2.0, 0, 0)
	dm := NewDistanceMap(ra, dec, 0, 0)

	m := FromProfile(prof, dm, dAng, units.NewScalar(0.5, units.Deg))
	for i := range m.Values {
		for j := range m.Values[i] {
			if dm.Dist[i][j] > 0.5 {
				assert.Equal(t, 0.0, m.Values[i][j])
			}
		}
	}
}

func TestSmoothPreservesTotal(t *testing.T) {
	dAng := units.NewScalar(100e3, units.Kpc)
	prof := testProfile(100e3, 0.2)
	ra, dec := testGrids(81, 4.0, 0, 0)
	dm := NewDistanceMap(ra, dec, 0, 0)

	m := FromProfile(prof, dm, dAng, units.NewScalar(math.Inf(1), units.Deg))
	before := m.Integral()
	m.Smooth(units.NewScalar(0.1, units.Deg))
	after := m.Integral()

	// The beam moves flux around but barely changes the total: the
	// profile is compact, so leakage off the map edge is tiny.
	assert.InEpsilon(t, before.Value, after.Value, 1e-2)
}

func TestNormalizeIntegratesToOne(t *testing.T) {
	dAng := units.NewScalar(100e3, units.Kpc)
	prof := testProfile(100e3, 0.1)
	ra, dec := testGrids(101, 4.0, 0, 0)
	dm := NewDistanceMap(ra, dec, 0, 0)

	m := FromProfile(prof, dm, dAng, units.NewScalar(math.Inf(1), units.Deg))

	// Total flux: disk integral of the profile over angle.
	thetas := make([]float64, prof.Radius.Len())
	for i, r := range prof.Radius.Data {
		thetas[i] = math.Atan(r / dAng.Value)
	}
	total := integrate.Disk(
		prof.Value, units.NewArray(thetas, units.Rad),
	)
	// The disk integral is per rad^2; re-tag as per sr.
	total = units.NewScalar(total.Value, units.Dimensionless)

	m.Normalize(total)
	assert.InEpsilon(t, 1.0, m.Integral().In(units.Dimensionless), 3e-2)
}
