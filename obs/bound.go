package obs

import (
	"fmt"

	"github.com/phil-mansfield/clustobs/units"
)

// A Bound is an integration limit that is either a single value or an
// array of values. Which one it is gets decided when the caller builds
// it, not by runtime inspection deeper in the call chain.
type Bound struct {
	scalar  units.Scalar
	array   units.Array
	isArray bool
}

// ScalarBound wraps a single integration limit.
func ScalarBound(x units.Scalar) Bound {
	return Bound{scalar: x}
}

// ArrayBound wraps an array of integration limits.
func ArrayBound(xs units.Array) Bound {
	if xs.Len() == 0 {
		panic("Bound array is empty.")
	}
	return Bound{array: xs, isArray: true}
}

// IsArray reports whether b holds an array of limits.
func (b Bound) IsArray() bool { return b.isArray }

// Scalar returns the wrapped value. It panics if b holds an array.
func (b Bound) Scalar() units.Scalar {
	if b.isArray {
		panic("Scalar() called on an array Bound.")
	}
	return b.scalar
}

// Array returns the wrapped values. It panics if b holds a scalar.
func (b Bound) Array() units.Array {
	if !b.isArray {
		panic("Array() called on a scalar Bound.")
	}
	return b.array
}

// Min returns the smallest wrapped value.
func (b Bound) Min() units.Scalar {
	if !b.isArray {
		return b.scalar
	}
	return b.array.Min()
}

// Max returns the largest wrapped value.
func (b Bound) Max() units.Scalar {
	if !b.isArray {
		return b.scalar
	}
	return b.array.Max()
}

// QueryError reports a query whose bounds cannot be resolved, such as
// asking for an array of energy bounds and an array of radius bounds at
// the same time.
type QueryError struct {
	Msg string
}

func (e *QueryError) Error() string { return e.Msg }

func queryErrf(format string, args ...interface{}) *QueryError {
	return &QueryError{fmt.Sprintf(format, args...)}
}
