/*
package io reads the INI configuration files and writes the computed
products as plain text tables, one value pair per line, so they can be
plotted or fed to fitting code without any binary format in between.
*/
package io

import (
	"bufio"
	"fmt"
	"os"

	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/skymap"
	"github.com/phil-mansfield/clustobs/units"
)

// WriteSpectrum writes an energy / value table to fname. The header
// comment records the units so the file is self-describing.
func WriteSpectrum(fname string, spec integrate.Spectrum) error {
	return writePairs(fname, spec.Energy, spec.Value, "energy", "flux")
}

// WriteProfile writes a radius / value table to fname.
func WriteProfile(fname string, prof integrate.Profile) error {
	return writePairs(fname, prof.Radius, prof.Value, "radius", "value")
}

func writePairs(fname string, x, y units.Array, xName, yName string) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintf(w, "# %s [%s]  %s [%s]\n",
		xName, x.Unit.String(), yName, y.Unit.String())
	for i := range x.Data {
		fmt.Fprintf(w, "%.10g %.10g\n", x.Data[i], y.Data[i])
	}
	return nil
}

// WriteMap writes a sky map as a whitespace-separated pixel grid, one
// map row per line.
func WriteMap(fname string, m *skymap.Map) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	fmt.Fprintf(w, "# %d x %d map [%s]\n",
		len(m.Values), len(m.Values[0]), m.Unit.String())
	for _, row := range m.Values {
		for j, v := range row {
			if j > 0 {
				fmt.Fprintf(w, " ")
			}
			fmt.Fprintf(w, "%.6g", v)
		}
		fmt.Fprintf(w, "\n")
	}
	return nil
}
