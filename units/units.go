/*
package units provides unit-tagged numeric values for the observable
calculations: scalars, 1D arrays and 2D energy-radius tables. Units are
tracked as a scale factor and integer exponents over four base dimensions
(length, time, energy, solid angle) with base units kpc, s, GeV and sr.

Mixing incompatible units is a programming error and panics. There is no
runtime coercion.
*/
package units

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Physical constants used when converting between unit systems.
const (
	CmPerKpc  = 3.0856775814913673e21
	ErgPerGeV = 1.602176634e-3
	// PlanckGeVPerGHz is Planck's constant in GeV/GHz, used to turn a
	// photon frequency into an energy.
	PlanckGeVPerGHz = 4.135667696e-15
)

// Unit is a physical unit: a scale relative to the base units (kpc, s,
// GeV, sr) and an integer exponent for each base dimension.
type Unit struct {
	scale                       float64
	length, time, energy, angle int
}

var (
	Dimensionless = Unit{scale: 1}

	Kpc = Unit{scale: 1, length: 1}
	Cm  = Unit{scale: 1 / CmPerKpc, length: 1}

	Sec = Unit{scale: 1, time: 1}
	Hz  = Unit{scale: 1, time: -1}
	GHz = Unit{scale: 1e9, time: -1}

	GeV = Unit{scale: 1, energy: 1}
	MeV = Unit{scale: 1e-3, energy: 1}
	TeV = Unit{scale: 1e3, energy: 1}
	KeV = Unit{scale: 1e-6, energy: 1}
	Erg = Unit{scale: 1 / ErgPerGeV, energy: 1}

	Sr = Unit{scale: 1, angle: 1}

	// Plane angles are dimensionless with radians as the base.
	Rad    = Dimensionless
	Deg    = Dimensionless.Scaled(math.Pi / 180)
	Arcmin = Deg.Scaled(1.0 / 60)
	Arcsec = Deg.Scaled(1.0 / 3600)

	// Jy is the Jansky, 1e-23 erg / (s cm^2 Hz).
	Jy = Erg.Scaled(1e-23).Div(Sec).Div(Cm.Pow(2)).Div(Hz)
)

// Scaled returns u multiplied by the dimensionless factor x, e.g.
// Kpc.Scaled(1000) is a Mpc.
func (u Unit) Scaled(x float64) Unit {
	u.scale *= x
	return u
}

// Mul returns the product unit of u and v.
func (u Unit) Mul(v Unit) Unit {
	return Unit{
		u.scale * v.scale,
		u.length + v.length, u.time + v.time,
		u.energy + v.energy, u.angle + v.angle,
	}
}

// Div returns the quotient unit of u and v.
func (u Unit) Div(v Unit) Unit {
	return u.Mul(v.Pow(-1))
}

// Pow returns u raised to the integer power n.
func (u Unit) Pow(n int) Unit {
	return Unit{
		math.Pow(u.scale, float64(n)),
		u.length * n, u.time * n, u.energy * n, u.angle * n,
	}
}

// Compatible returns true if u and v share the same dimensions, i.e. if
// values in one can be converted to the other.
func (u Unit) Compatible(v Unit) bool {
	return u.length == v.length && u.time == v.time &&
		u.energy == v.energy && u.angle == v.angle
}

func (u Unit) String() string {
	return fmt.Sprintf(
		"%g kpc^%d s^%d GeV^%d sr^%d",
		u.scale, u.length, u.time, u.energy, u.angle,
	)
}

// to returns the factor converting a value in u to a value in v.
func (u Unit) to(v Unit) float64 {
	if !u.Compatible(v) {
		panic(fmt.Sprintf(
			"Cannot convert between incompatible units %v and %v.", u, v,
		))
	}
	return u.scale / v.scale
}

// Scalar is a single value tagged with a unit.
type Scalar struct {
	Value float64
	Unit  Unit
}

func NewScalar(x float64, u Unit) Scalar { return Scalar{x, u} }

// In returns the value of s expressed in the unit u.
func (s Scalar) In(u Unit) float64 { return s.Value * s.Unit.to(u) }

// Convert returns s expressed in the unit u.
func (s Scalar) Convert(u Unit) Scalar { return Scalar{s.In(u), u} }

// IsInf returns true if s is infinite, regardless of unit.
func (s Scalar) IsInf() bool { return math.IsInf(s.Value, 0) }

func (s Scalar) Mul(t Scalar) Scalar {
	return Scalar{s.Value * t.Value, s.Unit.Mul(t.Unit)}
}

func (s Scalar) Div(t Scalar) Scalar {
	return Scalar{s.Value / t.Value, s.Unit.Div(t.Unit)}
}

// Scaled returns s multiplied by the dimensionless factor x.
func (s Scalar) Scaled(x float64) Scalar {
	return Scalar{s.Value * x, s.Unit}
}

// Less compares two scalars after reconciling their units.
func (s Scalar) Less(t Scalar) bool { return s.Value < t.In(s.Unit) }

// Array is a 1D sequence of values sharing a unit. Operations that
// combine two Arrays panic if their lengths differ.
type Array struct {
	Data []float64
	Unit Unit
}

// NewArray creates an Array around xs without copying.
func NewArray(xs []float64, u Unit) Array { return Array{xs, u} }

// Uniform creates an n-element Array with every value set to x.
func Uniform(n int, x float64, u Unit) Array {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = x
	}
	return Array{xs, u}
}

func (a Array) Len() int { return len(a.Data) }

// At returns the i'th element as a Scalar.
func (a Array) At(i int) Scalar { return Scalar{a.Data[i], a.Unit} }

// In returns a copy of a's values expressed in the unit u.
func (a Array) In(u Unit) []float64 {
	f := a.Unit.to(u)
	out := make([]float64, len(a.Data))
	for i, x := range a.Data {
		out[i] = x * f
	}
	return out
}

// Convert returns a copy of a expressed in the unit u.
func (a Array) Convert(u Unit) Array { return Array{a.In(u), u} }

// Copy returns a deep copy of a.
func (a Array) Copy() Array {
	out := make([]float64, len(a.Data))
	copy(out, a.Data)
	return Array{out, a.Unit}
}

// Min and Max return the extreme values of a as Scalars.
func (a Array) Min() Scalar { return Scalar{floats.Min(a.Data), a.Unit} }
func (a Array) Max() Scalar { return Scalar{floats.Max(a.Data), a.Unit} }

// Mul returns the elementwise product of a and b.
func (a Array) Mul(b Array) Array {
	if len(a.Data) != len(b.Data) {
		panic(fmt.Sprintf(
			"Array length mismatch: %d and %d.", len(a.Data), len(b.Data),
		))
	}
	out := make([]float64, len(a.Data))
	copy(out, a.Data)
	floats.Mul(out, b.Data)
	return Array{out, a.Unit.Mul(b.Unit)}
}

// Div returns the elementwise quotient of a and b.
func (a Array) Div(b Array) Array {
	if len(a.Data) != len(b.Data) {
		panic(fmt.Sprintf(
			"Array length mismatch: %d and %d.", len(a.Data), len(b.Data),
		))
	}
	out := make([]float64, len(a.Data))
	copy(out, a.Data)
	floats.Div(out, b.Data)
	return Array{out, a.Unit.Div(b.Unit)}
}

// MulScalar returns a with every element multiplied by s.
func (a Array) MulScalar(s Scalar) Array {
	out := make([]float64, len(a.Data))
	copy(out, a.Data)
	floats.Scale(s.Value, out)
	return Array{out, a.Unit.Mul(s.Unit)}
}

// DivScalar returns a with every element divided by s.
func (a Array) DivScalar(s Scalar) Array {
	return a.MulScalar(Scalar{1 / s.Value, s.Unit.Pow(-1)})
}

// Scaled returns a multiplied by the dimensionless factor x.
func (a Array) Scaled(x float64) Array {
	out := make([]float64, len(a.Data))
	copy(out, a.Data)
	floats.Scale(x, out)
	return Array{out, a.Unit}
}

// ZeroBeyond sets to zero, in place, every element whose corresponding
// x value is strictly greater than lim. The comparison reconciles the
// units of x and lim.
func (a Array) ZeroBeyond(x Array, lim Scalar) {
	if len(a.Data) != len(x.Data) {
		panic(fmt.Sprintf(
			"Array length mismatch: %d and %d.", len(a.Data), len(x.Data),
		))
	}
	if lim.IsInf() {
		return
	}
	l := lim.In(x.Unit)
	for i := range a.Data {
		if x.Data[i] > l {
			a.Data[i] = 0
		}
	}
}

// Table is a 2D grid of values sharing a unit, laid out as energy rows
// by radius columns. The shape is fixed at construction.
type Table struct {
	Data [][]float64
	Unit Unit
}

// NewTable creates a rows x cols Table of zeros.
func NewTable(rows, cols int, u Unit) Table {
	data := make([][]float64, rows)
	buf := make([]float64, rows*cols)
	for i := range data {
		data[i], buf = buf[:cols:cols], buf[cols:]
	}
	return Table{data, u}
}

func (t Table) Rows() int { return len(t.Data) }
func (t Table) Cols() int {
	if len(t.Data) == 0 {
		return 0
	}
	return len(t.Data[0])
}

// Row returns row i of t as an Array sharing t's storage.
func (t Table) Row(i int) Array { return Array{t.Data[i], t.Unit} }

// ScaleRows multiplies row i of t, in place, by the dimensionless
// factor fs[i]. This is the explicit broadcast of a per-energy factor
// (e.g. an absorption curve) across the radius axis; fs must have
// exactly one entry per row.
func (t Table) ScaleRows(fs []float64) {
	if len(fs) != len(t.Data) {
		panic(fmt.Sprintf(
			"Table has %d rows, but %d row factors given.",
			len(t.Data), len(fs),
		))
	}
	for i, f := range fs {
		floats.Scale(f, t.Data[i])
	}
}
