package flux

import (
	"github.com/dgwave/dgwave/types"
)

// Side names the two domain boundaries.
type Side uint8

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	if s == Left {
		return "left"
	}
	return "right"
}

// Boundary produces the numerical flux at a domain endpoint from the
// interior trace state and the current time. The returned flux is oriented
// in +x regardless of side; the engine applies the outward normal.
type Boundary func(uIn []float64, t float64) ([]float64, error)

// Transmissive is the zero-gradient outflow closure: the ghost state equals
// the interior trace, so by flux consistency the boundary flux is exactly
// F(interior trace) and no wave is reflected.
func Transmissive(sys types.System) Boundary {
	return func(uIn []float64, t float64) ([]float64, error) {
		return sys.Flux(uIn), nil
	}
}

// PrescribedInflow drives one conserved component to a time-dependent
// target value: the ghost state copies the interior trace for all other
// components, overrides component with value(t), and feeds both states to
// the numerical flux num. If the ghost state is not physically admissible
// the closure fails with a BoundaryConditionError carrying the time and
// side; it never clamps.
func PrescribedInflow(sys types.System, num Intercell, component int, value func(t float64) float64, side Side) Boundary {
	return func(uIn []float64, t float64) ([]float64, error) {
		ghost := append([]float64(nil), uIn...)
		ghost[component] = value(t)
		if err := sys.Admissible(ghost); err != nil {
			return nil, &types.BoundaryConditionError{
				Side: side.String(),
				Time: t,
				Msg:  err.Error(),
			}
		}
		if side == Left {
			return num(ghost, uIn), nil
		}
		return num(uIn, ghost), nil
	}
}

// Fixed drives the boundary with a fully prescribed exterior state, e.g. a
// far-field condition. The exterior state is checked for admissibility on
// every call, and the flux is evaluated against the interior trace.
func Fixed(sys types.System, num Intercell, exterior func(t float64) []float64, side Side) Boundary {
	return func(uIn []float64, t float64) ([]float64, error) {
		ghost := exterior(t)
		if err := sys.Admissible(ghost); err != nil {
			return nil, &types.BoundaryConditionError{
				Side: side.String(),
				Time: t,
				Msg:  err.Error(),
			}
		}
		if side == Left {
			return num(ghost, uIn), nil
		}
		return num(uIn, ghost), nil
	}
}
