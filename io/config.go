package io

import (
	"math"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/clustobs/obs"
	"github.com/phil-mansfield/clustobs/units"
)

const (
	ExampleClusterFile = `[Cluster]

#######################
# Required Parameters #
#######################

# Angular diameter and luminosity distances to the cluster, in Mpc.
# Computing them from the redshift is your cosmology code's job, not
# this one's.
DAng = 98.2
DLum = 102.7

Redshift = 0.0231

# Characteristic radius in kpc. The line of sight extends to ten times
# this value.
R500 = 1300

# Smallest radius ever sampled, in kpc. Grids never touch r = 0, so
# this must be positive.
Rmin = 1

#######################
# Optional Parameters #
#######################

# Radius beyond which the model emits nothing, in kpc. Leave unset for
# no truncation.
# Rtrunc = 3000

# Angular truncation radius applied to sky maps, in degrees. Leave
# unset for no truncation.
# ThetaTrunc = 2.5

# Sampling density of every radial and energy grid. Default is 20.
# PointsPerDecade = 20

# Spectral absorption model applied to gamma-ray spectra. "none"
# disables absorption; anything else must be wired to an absorption
# table by the caller.
# Absorption = none`

	ExampleMapFile = `[Map]

#######################
# Required Parameters #
#######################

# Field-of-view center, in degrees.
RACenter  = 10.2
DecCenter = -27.5

# Field-of-view width in degrees and the number of pixels across it.
Width  = 4.0
Pixels = 200

#######################
# Optional Parameters #
#######################

# Gaussian beam full width at half maximum, in degrees. Leave unset
# for no smoothing.
# FWHM = 0.1

# Divide the map by the total flux, turning it into a spatial template
# that integrates to one over solid angle.
# Normalize = false`
)

type ClusterConfig struct {
	// Required
	DAng, DLum float64
	Redshift   float64
	R500       float64
	Rmin       float64

	// Optional
	Rtrunc          float64
	ThetaTrunc      float64
	PointsPerDecade int
	Absorption      string
}

type MapConfig struct {
	// Required
	RACenter, DecCenter float64
	Width               float64
	Pixels              int

	// Optional
	FWHM      float64
	Normalize bool
}

type ClusterWrapper struct {
	Cluster ClusterConfig
}

type MapWrapper struct {
	Map MapConfig
}

func DefaultClusterWrapper() *ClusterWrapper {
	con := ClusterConfig{}
	con.PointsPerDecade = 20
	con.Absorption = "none"
	return &ClusterWrapper{con}
}

func DefaultMapWrapper() *MapWrapper {
	return &MapWrapper{MapConfig{}}
}

func (con *ClusterConfig) ValidDAng() bool     { return con.DAng > 0 }
func (con *ClusterConfig) ValidDLum() bool     { return con.DLum > 0 }
func (con *ClusterConfig) ValidRedshift() bool { return con.Redshift >= 0 }
func (con *ClusterConfig) ValidR500() bool     { return con.R500 > 0 }
func (con *ClusterConfig) ValidRmin() bool     { return con.Rmin > 0 }
func (con *ClusterConfig) ValidRtrunc() bool {
	return con.Rtrunc == 0 || con.Rtrunc > con.Rmin
}
func (con *ClusterConfig) ValidPointsPerDecade() bool {
	return con.PointsPerDecade > 0
}

func (con *MapConfig) ValidWidth() bool  { return con.Width > 0 }
func (con *MapConfig) ValidPixels() bool { return con.Pixels > 1 }
func (con *MapConfig) ValidFWHM() bool   { return con.FWHM >= 0 }

// ReadClusterConfig reads a [Cluster] section, applying defaults for
// unset optional parameters.
func ReadClusterConfig(fname string) (*ClusterConfig, error) {
	wrap := DefaultClusterWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Cluster, nil
}

// ReadMapConfig reads a [Map] section.
func ReadMapConfig(fname string) (*MapConfig, error) {
	wrap := DefaultMapWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil {
		return nil, err
	}
	return &wrap.Map, nil
}

// Geometry converts the configuration into the geometry value the obs
// package works with. An unset Rtrunc or ThetaTrunc becomes +Inf.
func (con *ClusterConfig) Geometry() *obs.ClusterGeometry {
	rtrunc := math.Inf(1)
	if con.Rtrunc > 0 {
		rtrunc = con.Rtrunc
	}
	thetaTrunc := math.Inf(1)
	if con.ThetaTrunc > 0 {
		thetaTrunc = con.ThetaTrunc
	}

	mpc := units.Kpc.Scaled(1000)
	return &obs.ClusterGeometry{
		DAng:       units.NewScalar(con.DAng, mpc),
		DLum:       units.NewScalar(con.DLum, mpc),
		Redshift:   con.Redshift,
		R500:       units.NewScalar(con.R500, units.Kpc),
		Rmin:       units.NewScalar(con.Rmin, units.Kpc),
		Rtrunc:     units.NewScalar(rtrunc, units.Kpc),
		ThetaTrunc: units.NewScalar(thetaTrunc, units.Deg),
		NptPd:      con.PointsPerDecade,
	}
}

// PixelGrids builds the RA/Dec coordinate grids for the configured
// field of view, in degrees. Rows run along Dec, columns along RA,
// with the cos(Dec) stretch so pixels stay square on the sky.
func (con *MapConfig) PixelGrids() (ra, dec [][]float64) {
	n := con.Pixels
	cosDec := math.Cos(con.DecCenter * math.Pi / 180)
	ra = make([][]float64, n)
	dec = make([][]float64, n)
	for i := 0; i < n; i++ {
		ra[i] = make([]float64, n)
		dec[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			fx := float64(j)/float64(n-1) - 0.5
			fy := float64(i)/float64(n-1) - 0.5
			ra[i][j] = con.RACenter + con.Width*fx/cosDec
			dec[i][j] = con.DecCenter + con.Width*fy
		}
	}
	return ra, dec
}
