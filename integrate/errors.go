package integrate

import (
	"fmt"
)

// ParameterError reports an invalid argument to one of the integration
// routines: non-positive or inverted sampling bounds, an unknown
// integral kind, an unknown output channel. Nothing is computed when a
// ParameterError is returned.
type ParameterError struct {
	Msg string
}

func (e *ParameterError) Error() string { return e.Msg }

// ParamErrf creates a ParameterError with a formatted message.
func ParamErrf(format string, args ...interface{}) *ParameterError {
	return &ParameterError{fmt.Sprintf(format, args...)}
}

// DomainError reports a requested evaluation point outside the sampled
// range of an interpolation table. Emission-rate tables are only valid
// over the range they were computed on, so extrapolation is never
// performed silently.
type DomainError struct {
	Value, Lo, Hi float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf(
		"evaluation point %g outside sampled range [%g, %g]",
		e.Value, e.Lo, e.Hi,
	)
}
