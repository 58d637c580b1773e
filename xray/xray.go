/*
package xray interpolates Xspec-style response tables: text files
mapping gas temperature to per-channel emissivity coefficients. The
tables are produced externally by folding a plasma emission model
through an instrument response; this package only looks them up.
*/
package xray

import (
	"fmt"
	"math"

	"github.com/phil-mansfield/table"

	"github.com/phil-mansfield/clustobs/integrate"
	"github.com/phil-mansfield/clustobs/math/interpolate"
	"github.com/phil-mansfield/clustobs/units"
)

// Channel selects which response column of the table is used.
type Channel int

const (
	// EnergyCounts is the emitted energy channel, erg cm^3/s.
	EnergyCounts Channel = iota
	// PhotonCounts is the emitted photon channel, cm^3/s.
	PhotonCounts
	// CountRate is the detector count-rate channel, counts cm^3/s.
	CountRate
	channelNum
)

// ParseChannel converts a configuration string into a Channel.
func ParseChannel(s string) (Channel, error) {
	switch s {
	case "energy":
		return EnergyCounts, nil
	case "photon":
		return PhotonCounts, nil
	case "rate":
		return CountRate, nil
	}
	return 0, integrate.ParamErrf(
		"unknown X-ray channel %q: must be \"energy\", \"photon\" or \"rate\"", s,
	)
}

func (ch Channel) String() string {
	switch ch {
	case EnergyCounts:
		return "energy"
	case PhotonCounts:
		return "photon"
	case CountRate:
		return "rate"
	}
	return fmt.Sprintf("Channel(%d)", int(ch))
}

// Unit returns the physical unit of the channel's coefficients.
func (ch Channel) Unit() units.Unit {
	u := units.Cm.Pow(3).Div(units.Sec)
	if ch == EnergyCounts {
		u = u.Mul(units.Erg)
	}
	return u
}

// ChannelError reports a requested channel that the loaded table does
// not provide. Tables generated without a detector response leave the
// count-rate column as NaN, so asking for it is a configuration
// mistake, not a numerical one.
type ChannelError struct {
	Channel Channel
}

func (e *ChannelError) Error() string {
	return fmt.Sprintf(
		"response table does not provide the %q channel", e.Channel.String(),
	)
}

// Table maps gas temperature to response coefficients for each
// channel.
type Table struct {
	temps []float64 // keV, strictly increasing
	cols  [channelNum][]float64
}

// ReadTable reads a four-column text table: temperature in keV
// followed by the energy, photon and count-rate coefficients. Missing
// channels are marked by NaN columns in the file.
func ReadTable(fname string) (*Table, error) {
	cols, err := table.ReadTable(fname, []int{0, 1, 2, 3}, nil)
	if err != nil {
		return nil, err
	}

	t := &Table{temps: cols[0]}
	for i := 0; i < int(channelNum); i++ {
		t.cols[i] = cols[i+1]
	}
	if len(t.temps) < 2 {
		return nil, integrate.ParamErrf(
			"response table has only %d rows", len(t.temps),
		)
	}
	for i := 0; i < len(t.temps)-1; i++ {
		if t.temps[i] >= t.temps[i+1] {
			return nil, integrate.ParamErrf(
				"response table temperatures are not increasing at row %d", i,
			)
		}
	}
	return t, nil
}

// NewTable builds a table directly from slices, mainly for tests.
// Missing channels may be passed as nil.
func NewTable(tempsKeV []float64, energy, photon, rate []float64) *Table {
	t := &Table{temps: tempsKeV}
	for i, col := range [][]float64{energy, photon, rate} {
		if col == nil {
			col = make([]float64, len(tempsKeV))
			for j := range col {
				col[j] = math.NaN()
			}
		}
		t.cols[i] = col
	}
	return t
}

func allNaN(xs []float64) bool {
	for _, x := range xs {
		if !math.IsNaN(x) {
			return false
		}
	}
	return true
}

// Lookup interpolates the channel's coefficient at each temperature.
// It returns a ChannelError if the channel is absent from the table
// and a DomainError if any temperature falls outside the tabulated
// range.
func (t *Table) Lookup(ch Channel, temp units.Array) (units.Array, error) {
	if ch < 0 || ch >= channelNum {
		return units.Array{}, integrate.ParamErrf(
			"unknown X-ray channel %d", int(ch),
		)
	}
	col := t.cols[ch]
	if allNaN(col) {
		return units.Array{}, &ChannelError{ch}
	}

	lo, hi := t.temps[0], t.temps[len(t.temps)-1]
	ts := temp.In(units.KeV)
	for _, T := range ts {
		if T < lo || T > hi {
			return units.Array{}, &integrate.DomainError{
				Value: T, Lo: lo, Hi: hi,
			}
		}
	}

	interp := interpolate.NewLinear(t.temps, col)
	return units.NewArray(interp.EvalAll(ts), ch.Unit()), nil
}
