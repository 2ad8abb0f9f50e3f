package flux

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/dgwave/dgwave/types"
)

// Intercell maps the two trace states at an interface, ordered left to
// right in x, to a single numerical flux vector. Implementations must be
// consistent (f(u,u) = F(u)) and are shared by both adjacent elements, so
// interface contributions telescope exactly.
type Intercell func(uL, uR []float64) []float64

// LaxFriedrichs builds the local Lax-Friedrichs (Rusanov) flux for sys:
//
//	f* = 0.5*(F(uL)+F(uR)) - 0.5*alpha*(uR-uL)
//
// with alpha the larger of the two spectral radii of F', so the dissipation
// speed is never underestimated.
func LaxFriedrichs(sys types.System) Intercell {
	return func(uL, uR []float64) []float64 {
		var (
			fL    = sys.Flux(uL)
			fR    = sys.Flux(uR)
			alpha = math.Max(MaxWaveSpeed(sys, uL), MaxWaveSpeed(sys, uR))
			out   = make([]float64, len(uL))
		)
		for m := range out {
			out[m] = 0.5*(fL[m]+fR[m]) - 0.5*alpha*(uR[m]-uL[m])
		}
		return out
	}
}

// MaxWaveSpeed is the spectral radius of the flux Jacobian at u, the local
// upper bound on signal speed used for dissipation and CFL estimates.
func MaxWaveSpeed(sys types.System, u []float64) (rho float64) {
	J := sys.FluxJacobian(u)
	var eig mat.Eigen
	if ok := eig.Factorize(J, mat.EigenNone); !ok {
		panic("eigenvalue decomposition of flux Jacobian failed")
	}
	for _, lambda := range eig.Values(nil) {
		if a := cmplx.Abs(lambda); a > rho {
			rho = a
		}
	}
	return
}
