/*
package obs computes integrated spectra, projected radial profiles and
fluxes of cluster observables. The physics enters through injected rate
sources sampled on grids this package constructs; the numerical work is
done by the integrate package.

The entry point is Calculator, which pairs a ClusterGeometry with a rate
source and an optional absorption model. Per-observable types (Gamma,
Neutrino, InverseCompton, Synchrotron, SZ, XRay) are thin adapters that
choose units and rate sources and delegate to Calculator.
*/
package obs

import (
	"math"

	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/units"
)

// losDepthR500 is the line-of-sight integration depth in units of R500.
const losDepthR500 = 10.0

// ClusterGeometry describes the geometry of a single cluster. It is an
// immutable value passed explicitly into every computation: nothing in
// this package reads shared state.
type ClusterGeometry struct {
	// DAng and DLum are the angular diameter and luminosity distances.
	DAng, DLum units.Scalar
	// Redshift of the cluster.
	Redshift float64
	// R500 is the characteristic radius setting the line-of-sight
	// depth.
	R500 units.Scalar
	// Rmin is the smallest radius ever sampled. Grids never reach r=0,
	// so Rmin must be strictly positive.
	Rmin units.Scalar
	// Rtrunc is the radius beyond which the model emits nothing. It
	// may be +Inf, in which case no truncation is applied.
	Rtrunc units.Scalar
	// ThetaTrunc is the angular truncation radius applied to sky maps.
	ThetaTrunc units.Scalar
	// NptPd is the sampling density in points per decade for every
	// grid built on the cluster's behalf.
	NptPd int
}

// LosGrid returns the line-of-sight depth grid, spanning from just
// inside Rmin out to losDepthR500 times R500.
func (g *ClusterGeometry) LosGrid() (integrate.Grid, error) {
	lo := g.Rmin.Scaled(0.5)
	hi := g.R500.Scaled(losDepthR500)
	return integrate.Sampling(lo, hi, g.NptPd)
}

// R3dGrid returns the 3D radius grid needed to project out to the
// projected radius rmax: composite radii reach sqrt(losMax^2 + rmax^2),
// and the bounds carry small margins so interpolation at the extreme
// sample points stays inside the grid.
func (g *ClusterGeometry) R3dGrid(rmax units.Scalar) (integrate.Grid, error) {
	losMin := g.Rmin.Scaled(0.5)
	losMax := g.R500.Scaled(losDepthR500)

	lo := hypot(losMin, g.Rmin).Scaled(0.9)
	hi := hypot(losMax, rmax).Scaled(1.1)
	return integrate.Sampling(lo, hi, g.NptPd)
}

// RadiusGrid returns the radius grid from Rmin to rmax.
func (g *ClusterGeometry) RadiusGrid(rmax units.Scalar) (integrate.Grid, error) {
	return integrate.Sampling(g.Rmin, rmax, g.NptPd)
}

// FluxFactor is the luminosity-to-flux conversion 1/(4 pi DLum^2).
func (g *ClusterGeometry) FluxFactor() units.Scalar {
	d2 := g.DLum.Mul(g.DLum)
	return units.NewScalar(1/(4*math.Pi*d2.Value), d2.Unit.Pow(-1))
}

func hypot(a, b units.Scalar) units.Scalar {
	bv := b.In(a.Unit)
	return units.NewScalar(math.Hypot(a.Value, bv), a.Unit)
}
