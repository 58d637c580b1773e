/*
clustobs computes cluster observables from a config file and a
built-in parametric emission model, writing text tables that the
scripts/ plotting tools understand.

Real analyses inject their own rate sources through the obs package;
this binary exists so the machinery can be exercised end to end from
the command line.
*/
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"

	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/io"
	"github.com/phil-mansfield/clustobs/obs"
	"github.com/phil-mansfield/clustobs/skymap"
	"github.com/phil-mansfield/clustobs/units"
	"github.com/phil-mansfield/clustobs/xray"
)

var (
	configFlag = flag.String("Config", "", "[Cluster] configuration file.")
	mapFlag    = flag.String("MapConfig", "", "[Map] configuration file.")
	obsFlag    = flag.String("Observable", "gamma",
		"One of gamma, neutrino, ic, sync, sz, xray.")
	productFlag = flag.String("Product", "spectrum",
		"One of spectrum, profile, flux, map.")
	kindFlag = flag.String("Integral", "spherical",
		"One of spherical, cylindrical.")
	channelFlag = flag.String("Channel", "photon",
		"X-ray response channel: energy, photon or rate.")
	flavorFlag = flag.String("Flavor", "all",
		"Neutrino flavor: all, nue or numu.")
	respFlag = flag.String("ResponseTable", "",
		"Xspec-style response table, required for xray.")
	outFlag = flag.String("Output", "", "Output file. Default is stdout.")

	exampleFlag = flag.Bool("ExampleConfig", false,
		"Print example configuration files and exit.")
)

func main() {
	flag.Parse()

	if *exampleFlag {
		fmt.Println(io.ExampleClusterFile)
		fmt.Println()
		fmt.Println(io.ExampleMapFile)
		return
	}
	if *configFlag == "" {
		log.Fatalf("No -Config file given. Run with -ExampleConfig to " +
			"see what one looks like.")
	}

	con, err := io.ReadClusterConfig(*configFlag)
	if err != nil {
		log.Fatalf(err.Error())
	}
	geom := con.Geometry()

	kind, err := obs.ParseIntegralKind(*kindFlag)
	if err != nil {
		log.Fatalf(err.Error())
	}

	out := os.Stdout.Name()
	if *outFlag != "" {
		out = *outFlag
	}

	switch *obsFlag {
	case "gamma":
		run(geom, kind, obs.NewGamma(geom, toyRate(), nil), out)
	case "neutrino":
		f, err := obs.ParseFlavor(*flavorFlag)
		if err != nil {
			log.Fatalf(err.Error())
		}
		run(geom, kind, obs.NewNeutrino(geom, toyNeutrinoRate(), f), out)
	case "ic":
		run(geom, kind, obs.NewInverseCompton(geom, toyRate()), out)
	case "sync":
		runSync(geom, kind, out)
	case "sz":
		runSZ(geom, kind, out)
	case "xray":
		runXRay(geom, kind, out)
	default:
		log.Fatalf("Unknown observable %q.", *obsFlag)
	}
}

// A spectralObservable is an adapter with the full
// spectrum/profile/flux method set: gamma, neutrino and inverse
// Compton.
type spectralObservable interface {
	Spectrum(
		kind obs.IntegralKind, energy integrate.Grid, rmax units.Scalar,
	) (integrate.Spectrum, error)
	Flux(
		kind obs.IntegralKind, emin obs.Bound, emax units.Scalar,
		rmax obs.Bound, energyDensity bool,
	) (obs.FluxResult, error)
	Profile(
		energy integrate.Grid, r2d integrate.Grid, energyDensity bool,
	) (integrate.Profile, error)
}

// run drives the spectrum/profile/flux/map products for the
// energy-dependent observables.
func run(
	geom *obs.ClusterGeometry, kind obs.IntegralKind, c spectralObservable,
	out string,
) {
	emin := units.NewScalar(1, units.GeV)
	emax := units.NewScalar(1e5, units.GeV)
	rmax := geom.R500

	switch *productFlag {
	case "spectrum":
		energy, err := integrate.Sampling(emin, emax, geom.NptPd)
		if err != nil {
			log.Fatalf(err.Error())
		}
		spec, err := c.Spectrum(kind, energy, rmax)
		if err != nil {
			log.Fatalf(err.Error())
		}
		check(io.WriteSpectrum(out, spec))

	case "profile":
		energy, err := integrate.Sampling(emin, emax, geom.NptPd)
		if err != nil {
			log.Fatalf(err.Error())
		}
		r2d, err := geom.RadiusGrid(rmax)
		if err != nil {
			log.Fatalf(err.Error())
		}
		prof, err := c.Profile(energy, r2d, false)
		if err != nil {
			log.Fatalf(err.Error())
		}
		check(io.WriteProfile(out, prof))

	case "flux":
		res, err := c.Flux(
			kind, obs.ScalarBound(emin), emax, obs.ScalarBound(rmax), false,
		)
		if err != nil {
			log.Fatalf(err.Error())
		}
		s := res.Scalar()
		fmt.Printf("%g [%s]\n", s.Value, s.Unit.String())

	case "map":
		energy, err := integrate.Sampling(emin, emax, geom.NptPd)
		if err != nil {
			log.Fatalf(err.Error())
		}
		r2d, err := geom.RadiusGrid(rmax)
		if err != nil {
			log.Fatalf(err.Error())
		}
		prof, err := c.Profile(energy, r2d, false)
		if err != nil {
			log.Fatalf(err.Error())
		}
		writeMap(geom, prof, out, func() units.Scalar {
			res, err := c.Flux(
				obs.Cylindrical, obs.ScalarBound(emin), emax,
				obs.ScalarBound(rmax), false,
			)
			if err != nil {
				log.Fatalf(err.Error())
			}
			return res.Scalar()
		})

	default:
		log.Fatalf("Unknown product %q.", *productFlag)
	}
}

func runSync(geom *obs.ClusterGeometry, kind obs.IntegralKind, out string) {
	sync := obs.NewSynchrotron(geom, toySyncRate())
	freq := units.NewScalar(1.4, units.GHz)

	switch *productFlag {
	case "spectrum":
		lo := units.NewScalar(0.1, units.GHz)
		hi := units.NewScalar(10, units.GHz)
		fg, err := integrate.Sampling(lo, hi, geom.NptPd)
		if err != nil {
			log.Fatalf(err.Error())
		}
		spec, err := sync.Spectrum(kind, fg, geom.R500)
		if err != nil {
			log.Fatalf(err.Error())
		}
		check(io.WriteSpectrum(out, spec))
	case "profile":
		r2d, err := geom.RadiusGrid(geom.R500)
		if err != nil {
			log.Fatalf(err.Error())
		}
		prof, err := sync.Profile(freq, r2d)
		if err != nil {
			log.Fatalf(err.Error())
		}
		check(io.WriteProfile(out, prof))
	case "flux":
		res, err := sync.Flux(kind, freq, obs.ScalarBound(geom.R500))
		if err != nil {
			log.Fatalf(err.Error())
		}
		s := res.Scalar()
		fmt.Printf("%g [%s]\n", s.Value, s.Unit.String())
	case "map":
		r2d, err := geom.RadiusGrid(geom.R500)
		if err != nil {
			log.Fatalf(err.Error())
		}
		prof, err := sync.Profile(freq, r2d)
		if err != nil {
			log.Fatalf(err.Error())
		}
		writeMap(geom, prof, out, func() units.Scalar {
			res, err := sync.Flux(
				obs.Cylindrical, freq, obs.ScalarBound(geom.R500),
			)
			if err != nil {
				log.Fatalf(err.Error())
			}
			return res.Scalar()
		})
	default:
		log.Fatalf("Product %q is not supported for sync.", *productFlag)
	}
}

func runSZ(geom *obs.ClusterGeometry, kind obs.IntegralKind, out string) {
	sz := obs.NewSZ(geom, toyPressure())

	switch *productFlag {
	case "profile":
		r2d, err := geom.RadiusGrid(geom.R500)
		if err != nil {
			log.Fatalf(err.Error())
		}
		prof, err := sz.YProfile(r2d)
		if err != nil {
			log.Fatalf(err.Error())
		}
		check(io.WriteProfile(out, prof))
	case "flux":
		res, err := sz.Y(kind, obs.ScalarBound(geom.R500))
		if err != nil {
			log.Fatalf(err.Error())
		}
		s := res.Scalar()
		fmt.Printf("%g [%s]\n", s.Value, s.Unit.String())
	case "map":
		r2d, err := geom.RadiusGrid(geom.R500)
		if err != nil {
			log.Fatalf(err.Error())
		}
		prof, err := sz.YProfile(r2d)
		if err != nil {
			log.Fatalf(err.Error())
		}
		writeMap(geom, prof, out, func() units.Scalar {
			res, err := sz.Y(obs.Cylindrical, obs.ScalarBound(geom.R500))
			if err != nil {
				log.Fatalf(err.Error())
			}
			return res.Scalar()
		})
	default:
		log.Fatalf("Product %q is not supported for sz.", *productFlag)
	}
}

func runXRay(geom *obs.ClusterGeometry, kind obs.IntegralKind, out string) {
	if *respFlag == "" {
		log.Fatalf("xray needs a -ResponseTable file.")
	}
	resp, err := xray.ReadTable(*respFlag)
	if err != nil {
		log.Fatalf(err.Error())
	}
	ch, err := xray.ParseChannel(*channelFlag)
	if err != nil {
		log.Fatalf(err.Error())
	}
	x := obs.NewXRay(geom, toyDensity(), toyTemperature(), resp)

	switch *productFlag {
	case "profile":
		r2d, err := geom.RadiusGrid(geom.R500)
		if err != nil {
			log.Fatalf(err.Error())
		}
		prof, err := x.Profile(ch, r2d)
		if err != nil {
			log.Fatalf(err.Error())
		}
		check(io.WriteProfile(out, prof))
	case "flux":
		res, err := x.Flux(ch, kind, obs.ScalarBound(geom.R500))
		if err != nil {
			log.Fatalf(err.Error())
		}
		s := res.Scalar()
		fmt.Printf("%g [%s]\n", s.Value, s.Unit.String())
	case "map":
		r2d, err := geom.RadiusGrid(geom.R500)
		if err != nil {
			log.Fatalf(err.Error())
		}
		prof, err := x.Profile(ch, r2d)
		if err != nil {
			log.Fatalf(err.Error())
		}
		writeMap(geom, prof, out, func() units.Scalar {
			res, err := x.Flux(ch, obs.Cylindrical, obs.ScalarBound(geom.R500))
			if err != nil {
				log.Fatalf(err.Error())
			}
			return res.Scalar()
		})
	default:
		log.Fatalf("Product %q is not supported for xray.", *productFlag)
	}
}

// writeMap turns a projected profile into a sky map per the -MapConfig
// file and writes it out, normalizing by the cylindrical flux when the
// config asks for it.
func writeMap(
	geom *obs.ClusterGeometry, prof integrate.Profile, out string,
	totalFlux func() units.Scalar,
) {
	if *mapFlag == "" {
		log.Fatalf("A map product needs a -MapConfig file.")
	}
	mcon, err := io.ReadMapConfig(*mapFlag)
	if err != nil {
		log.Fatalf(err.Error())
	}

	ra, dec := mcon.PixelGrids()
	dm := skymap.NewDistanceMap(ra, dec, mcon.RACenter, mcon.DecCenter)
	m := skymap.FromProfile(prof, dm, geom.DAng, geom.ThetaTrunc)
	if mcon.FWHM > 0 {
		m.Smooth(units.NewScalar(mcon.FWHM, units.Deg))
	}
	if mcon.Normalize {
		m.Normalize(totalFlux())
	}
	check(io.WriteMap(out, m))
}

func check(err error) {
	if err != nil {
		log.Fatalf(err.Error())
	}
}

// The toy model below is a beta-model gas profile with power-law
// spectra, normalized arbitrarily. It stands in for a real emission
// code.

func betaProfile(r float64) float64 {
	rc := 200.0
	return math.Pow(1+(r/rc)*(r/rc), -1.5)
}

func toyRate() obs.RateSource {
	u := units.GeV.Pow(-1).Div(units.Sec).Div(units.Cm.Pow(3))
	return obs.RateFunc(func(e, r integrate.Grid) (units.Table, error) {
		t := units.NewTable(e.Len(), r.Len(), u)
		for i, ev := range e.Data {
			for j, rv := range r.Data {
				f := betaProfile(rv)
				t.Data[i][j] = 1e-9 * math.Pow(ev, -2.2) * f * f
			}
		}
		return t, nil
	})
}

func toyNeutrinoRate() obs.NeutrinoSource {
	base := toyRate()
	return neutrinoFunc(func(
		f obs.Flavor, e, r integrate.Grid,
	) (units.Table, error) {
		t, err := base.Rate(e, r)
		if err != nil {
			return units.Table{}, err
		}
		// Pion decay splits the flux 1:2 between electron and muon
		// flavors.
		switch f {
		case obs.NuE:
			for i := range t.Data {
				for j := range t.Data[i] {
					t.Data[i][j] /= 3
				}
			}
		case obs.NuMu:
			for i := range t.Data {
				for j := range t.Data[i] {
					t.Data[i][j] *= 2.0 / 3
				}
			}
		}
		return t, nil
	})
}

type neutrinoFunc func(
	obs.Flavor, integrate.Grid, integrate.Grid,
) (units.Table, error)

func (f neutrinoFunc) Rate(
	fl obs.Flavor, e, r integrate.Grid,
) (units.Table, error) {
	return f(fl, e, r)
}

func toySyncRate() obs.RateSource {
	u := units.Erg.Div(units.Sec).Div(units.Hz).Div(units.Cm.Pow(3))
	return obs.RateFunc(func(nu, r integrate.Grid) (units.Table, error) {
		t := units.NewTable(nu.Len(), r.Len(), u)
		fs := nu.In(units.GHz)
		for i := range t.Data {
			for j, rv := range r.Data {
				f := betaProfile(rv)
				t.Data[i][j] = 1e-40 * math.Pow(fs[i], -1.2) * f * f
			}
		}
		return t, nil
	})
}

func toyPressure() obs.ProfileSource {
	u := units.GeV.Div(units.Cm.Pow(3))
	return obs.ProfileFunc(func(r integrate.Grid) (units.Array, error) {
		out := make([]float64, r.Len())
		for i, rv := range r.Data {
			out[i] = 1e-11 * betaProfile(rv)
		}
		return units.NewArray(out, u), nil
	})
}

func toyDensity() obs.ProfileSource {
	u := units.Cm.Pow(-3)
	return obs.ProfileFunc(func(r integrate.Grid) (units.Array, error) {
		out := make([]float64, r.Len())
		for i, rv := range r.Data {
			out[i] = 1e-3 * betaProfile(rv)
		}
		return units.NewArray(out, u), nil
	})
}

func toyTemperature() obs.ProfileSource {
	return obs.ProfileFunc(func(r integrate.Grid) (units.Array, error) {
		out := make([]float64, r.Len())
		for i, rv := range r.Data {
			// Mild outward decline, stays inside any sane table range.
			out[i] = 6 / (1 + rv/2000)
		}
		return units.NewArray(out, units.KeV), nil
	})
}
