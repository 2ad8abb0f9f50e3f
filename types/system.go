package types

import "github.com/dgwave/dgwave/utils"

// System is the capability contract a physical conservation-law system
// u_t + F(u)_x = S(u) must satisfy to be solved by the DG engine. All
// methods are pure: they receive read-only state snapshots and return
// freshly allocated results.
type System interface {
	// NumFields is the number of conserved quantities in u.
	NumFields() int
	// FieldNames labels the conserved quantities, for output and plotting.
	FieldNames() []string
	// Flux evaluates F(u) at a single state.
	Flux(u []float64) []float64
	// FluxJacobian evaluates F'(u), the NumFields x NumFields Jacobian of
	// the flux at a single state. Its spectral radius bounds the local
	// wave speed.
	FluxJacobian(u []float64) utils.Matrix
	// Source evaluates S(u) at a single state located at coordinate x and
	// time t.
	Source(u []float64, x, t float64) []float64
	// Admissible reports whether u is a physically valid state (e.g.
	// positive depth for shallow water). A nil return means admissible.
	Admissible(u []float64) error
}
