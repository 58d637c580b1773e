/*
plot_observables renders the text tables written by the clustobs
binary as log-log matplotlib figures through pyplot.

	plot_observables spectrum.dat profile.dat ... out.png

Each input file becomes one curve. The axis labels come from the first
file's header comment.
*/
package main

import (
	"bufio"
	"log"
	"os"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"github.com/phil-mansfield/table"
)

var colors = []string{"b", "r", "g", "m", "c", "k"}

func main() {
	if len(os.Args) < 3 {
		log.Fatalf("Usage: plot_observables table1 [table2 ...] out.png")
	}
	fnames := os.Args[1 : len(os.Args)-1]
	out := os.Args[len(os.Args)-1]

	plt.Figure()

	xLabel, yLabel := "", ""
	for i, fname := range fnames {
		cols, err := table.ReadTable(fname, []int{0, 1}, nil)
		if err != nil {
			log.Fatalf(err.Error())
		}
		if i == 0 {
			xLabel, yLabel = readLabels(fname)
		}

		c := colors[i%len(colors)]
		plt.Plot(cols[0], cols[1], c, plt.LW(2), plt.Label(fname))
	}

	plt.XScale("log")
	plt.YScale("log")
	plt.XLabel(xLabel, plt.FontSize(16))
	plt.YLabel(yLabel, plt.FontSize(16))
	plt.Legend(plt.Loc("upper right"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))
	plt.Grid(plt.Axis("y"))
	plt.SaveFig(out)

	plt.Execute()
}

// readLabels pulls axis names out of the "# x [unit]  y [unit]" header
// comment the io package writes.
func readLabels(fname string) (x, y string) {
	f, err := os.Open(fname)
	if err != nil {
		log.Fatalf(err.Error())
	}
	defer f.Close()

	scan := bufio.NewScanner(f)
	if !scan.Scan() {
		return "", ""
	}
	line := strings.TrimPrefix(strings.TrimSpace(scan.Text()), "#")
	fields := strings.Fields(line)
	if len(fields) >= 4 {
		return fields[0] + " " + fields[1], fields[2] + " " + fields[3]
	}
	return "", ""
}
