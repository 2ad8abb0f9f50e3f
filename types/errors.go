package types

import "fmt"

// ConfigurationError reports invalid construction or solve-entry inputs:
// bad polynomial degree, non-positive cell counts, inconsistent initial and
// boundary data. It is never retried.
type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

func ConfigErrorf(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

// BoundaryConditionError reports a boundary closure that cannot produce a
// physically admissible ghost state. It carries the offending time and
// boundary side and is fatal to the run.
type BoundaryConditionError struct {
	Side string
	Time float64
	Msg  string
}

func (e *BoundaryConditionError) Error() string {
	return fmt.Sprintf("boundary condition error at %s boundary, t = %g: %s", e.Side, e.Time, e.Msg)
}

// IntegrationError reports a fatal time-integration failure: a non-positive
// step size, or a non-finite value detected in a produced state. No step
// rejection or retry is performed.
type IntegrationError struct {
	Time float64
	Dt   float64
	Msg  string
}

func (e *IntegrationError) Error() string {
	return fmt.Sprintf("integration error at t = %g, dt = %g: %s", e.Time, e.Dt, e.Msg)
}
