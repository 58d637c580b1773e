package io

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/clustobs/units"
)

func TestExampleClusterFileParses(t *testing.T) {
	wrap := DefaultClusterWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleClusterFile)
	assert.NoError(t, err)

	con := &wrap.Cluster
	assert.True(t, con.ValidDAng())
	assert.True(t, con.ValidDLum())
	assert.True(t, con.ValidRedshift())
	assert.True(t, con.ValidR500())
	assert.True(t, con.ValidRmin())
	assert.True(t, con.ValidRtrunc())
	assert.True(t, con.ValidPointsPerDecade())

	// Defaults survive when the optional parameters stay commented
	// out.
	assert.Equal(t, 20, con.PointsPerDecade)
	assert.Equal(t, "none", con.Absorption)
}

func TestExampleMapFileParses(t *testing.T) {
	wrap := DefaultMapWrapper()
	err := gcfg.ReadStringInto(wrap, ExampleMapFile)
	assert.NoError(t, err)

	con := &wrap.Map
	assert.True(t, con.ValidWidth())
	assert.True(t, con.ValidPixels())
	assert.False(t, con.Normalize)
}

func TestGeometryConversion(t *testing.T) {
	con := &ClusterConfig{
		DAng: 100, DLum: 110, Redshift: 0.02,
		R500: 1300, Rmin: 1, PointsPerDecade: 20,
	}
	g := con.Geometry()

	assert.InEpsilon(t, 100e3, g.DAng.In(units.Kpc), 1e-12)
	assert.InEpsilon(t, 110e3, g.DLum.In(units.Kpc), 1e-12)
	assert.True(t, g.Rtrunc.IsInf())
	assert.True(t, g.ThetaTrunc.IsInf())

	con.Rtrunc = 3000
	con.ThetaTrunc = 2.5
	g = con.Geometry()
	assert.InEpsilon(t, 3000.0, g.Rtrunc.In(units.Kpc), 1e-12)
	assert.InEpsilon(t, 2.5, g.ThetaTrunc.In(units.Deg), 1e-12)
}

func TestPixelGrids(t *testing.T) {
	con := &MapConfig{
		RACenter: 30, DecCenter: 60, Width: 2, Pixels: 21,
	}
	ra, dec := con.PixelGrids()

	assert.Equal(t, 21, len(ra))
	assert.Equal(t, 21, len(ra[0]))
	// Center pixel sits on the field center.
	assert.InDelta(t, 30.0, ra[10][10], 1e-12)
	assert.InDelta(t, 60.0, dec[10][10], 1e-12)
	// The RA span is stretched by 1/cos(Dec) so the field is square
	// on the sky.
	cosDec := math.Cos(60 * math.Pi / 180)
	assert.InDelta(t, 2/cosDec, ra[0][20]-ra[0][0], 1e-10)
	assert.InDelta(t, 2.0, dec[20][0]-dec[0][0], 1e-10)
}
