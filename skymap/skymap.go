/*
package skymap turns projected radial profiles into 2D sky maps. The
coordinate system is external: callers supply RA/Dec pixel grids from
whatever header machinery they use, and this package only measures
angular distances against them.
*/
package skymap

import (
	"fmt"
	"log"
	"math"
	"runtime"

	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/math/interpolate"
	"github.com/phil-mansfield/clustobs/units"
)

// fwhmToSigma converts a Gaussian full width at half maximum into a
// standard deviation: 1 / (2 sqrt(2 ln 2)).
const fwhmToSigma = 0.42466090014400953

// offsetWarnFactor triggers the advisory field-of-view warning when
// the closest pixel is this many map widths from the cluster center.
const offsetWarnFactor = 2.0

// A DistanceMap holds each pixel's angular distance from the cluster
// center, in degrees, along with the pixel scales of the two axes. It
// is computed once per header and reused for every observable.
type DistanceMap struct {
	// Dist[i][j] is the distance of pixel (row i, column j), deg.
	Dist [][]float64
	// ScaleX and ScaleY are the pixel scales along the two axes, deg.
	ScaleX, ScaleY float64
}

// NewDistanceMap builds a distance map from RA/Dec pixel coordinate
// grids (degrees) and a cluster center. Separations use the flat-sky
// approximation with the cos(Dec) convergence factor, which is
// accurate at cluster field-of-view scales.
func NewDistanceMap(ra, dec [][]float64, raC, decC float64) *DistanceMap {
	ny := len(ra)
	if ny == 0 || len(ra[0]) < 2 || ny < 2 {
		panic("Coordinate grids must be at least 2 x 2.")
	}
	nx := len(ra[0])
	if len(dec) != ny || len(dec[0]) != nx {
		panic(fmt.Sprintf(
			"RA grid is %d x %d, but Dec grid is %d x %d.",
			ny, nx, len(dec), len(dec[0]),
		))
	}

	cosDec := math.Cos(decC * math.Pi / 180)
	dist := make([][]float64, ny)
	for i := range dist {
		dist[i] = make([]float64, nx)
		for j := range dist[i] {
			dx := (ra[i][j] - raC) * cosDec
			dy := dec[i][j] - decC
			dist[i][j] = math.Hypot(dx, dy)
		}
	}

	dm := &DistanceMap{
		Dist:   dist,
		ScaleX: math.Abs((ra[0][nx-1]-ra[0][0])*cosDec) / float64(nx-1),
		ScaleY: math.Abs(dec[ny-1][0]-dec[0][0]) / float64(ny-1),
	}
	dm.warnIfOffset()
	return dm
}

// warnIfOffset prints an advisory message when the requested field of
// view sits far from the cluster center. Computation proceeds: the map
// is simply near-empty.
func (dm *DistanceMap) warnIfOffset() {
	min := dm.Dist[0][0]
	for _, row := range dm.Dist {
		for _, d := range row {
			if d < min {
				min = d
			}
		}
	}
	width := dm.ScaleX * float64(len(dm.Dist[0]))
	if min > offsetWarnFactor*width {
		log.Printf(
			"Warning: field of view is %.2f deg from the cluster center "+
				"(map width %.2f deg); the map will be mostly empty.",
			min, width,
		)
	}
}

// A Map is a 2D pixel grid of values in a single unit, aligned with
// the DistanceMap it was built from.
type Map struct {
	Values [][]float64
	Unit   units.Unit
	dm     *DistanceMap
}

// FromProfile evaluates a projected profile at each pixel's angular
// distance. The profile's radius axis is converted to an angle through
// the angular diameter distance dAng. Pixels beyond the profile's
// outer sample, or beyond thetaTrunc, are exactly zero; pixels inside
// the innermost sample clamp to it.
func FromProfile(
	prof integrate.Profile, dm *DistanceMap, dAng units.Scalar,
	thetaTrunc units.Scalar,
) *Map {
	rs := prof.Radius.In(dAng.Unit)
	thetas := make([]float64, len(rs))
	for i, r := range rs {
		thetas[i] = math.Atan(r/dAng.Value) * 180 / math.Pi
	}
	interp := interpolate.NewLinear(thetas, prof.Value.Data)
	lo, hi := thetas[0], thetas[len(thetas)-1]

	tTrunc := math.Inf(1)
	if !thetaTrunc.IsInf() {
		tTrunc = thetaTrunc.In(units.Deg)
	}

	vals := make([][]float64, len(dm.Dist))
	eachRow(len(vals), func(i int) {
		row := make([]float64, len(dm.Dist[i]))
		for j, d := range dm.Dist[i] {
			switch {
			case d > hi || d > tTrunc:
				row[j] = 0
			case d < lo:
				row[j] = prof.Value.Data[0]
			default:
				row[j] = interp.Eval(d)
			}
		}
		vals[i] = row
	})

	return &Map{Values: vals, Unit: prof.Value.Unit, dm: dm}
}

// eachRow runs f(i) for i in [0, n) across a fixed pool of workers,
// one row per call. Rows are independent, so no locking is needed.
func eachRow(n int, f func(i int)) {
	workers := runtime.NumCPU()
	if workers > n {
		workers = n
	}
	out := make(chan int, workers)
	for id := 0; id < workers; id++ {
		go func(id int) {
			for i := id; i < n; i += workers {
				f(i)
			}
			out <- id
		}(id)
	}
	for i := 0; i < workers; i++ {
		<-out
	}
}

// Smooth convolves the map with a Gaussian beam of the given full
// width at half maximum, applied independently per axis so non-square
// pixels smooth correctly.
func (m *Map) Smooth(fwhm units.Scalar) {
	f := fwhm.In(units.Deg)
	sigX := f * fwhmToSigma / m.dm.ScaleX
	sigY := f * fwhmToSigma / m.dm.ScaleY

	kx := gaussKernel(sigX)
	ky := gaussKernel(sigY)

	// Rows, then columns.
	eachRow(len(m.Values), func(i int) {
		m.Values[i] = kx.Convolve(m.Values[i], interpolate.ZeroPad)
	})
	nx := len(m.Values[0])
	eachRow(nx, func(j int) {
		col := make([]float64, len(m.Values))
		for i := range m.Values {
			col[i] = m.Values[i][j]
		}
		col = ky.Convolve(col, interpolate.ZeroPad)
		for i := range m.Values {
			m.Values[i][j] = col[i]
		}
	})
}

func gaussKernel(sigma float64) *interpolate.Kernel {
	// Cover +/- 4 sigma.
	width := 2*int(math.Ceil(4*sigma)) + 1
	return interpolate.NewGaussianKernel(width, sigma, 1)
}

// Normalize divides the map by the total flux so that the map
// integrates to one over solid angle, turning it into a spatial
// template.
func (m *Map) Normalize(total units.Scalar) {
	inv := units.NewScalar(1/total.Value, total.Unit.Pow(-1))
	u := m.Unit.Mul(inv.Unit)
	for _, row := range m.Values {
		for j := range row {
			row[j] *= inv.Value
		}
	}
	m.Unit = u
}

// Integral returns the map's integral over solid angle, pixel value
// times pixel solid angle summed over the grid.
func (m *Map) Integral() units.Scalar {
	degToRad := math.Pi / 180
	omega := m.dm.ScaleX * degToRad * m.dm.ScaleY * degToRad
	sum := 0.0
	for _, row := range m.Values {
		for _, v := range row {
			sum += v
		}
	}
	return units.NewScalar(sum*omega, m.Unit.Mul(units.Sr))
}
