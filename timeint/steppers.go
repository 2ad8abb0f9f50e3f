package timeint

import (
	"github.com/dgwave/dgwave/types"
	"github.com/dgwave/dgwave/utils"
)

// RHS evaluates the semi-discrete right-hand side dU/dt at state U and
// time t. The state is one matrix per conserved field.
type RHS func(U []utils.Matrix, t float64) ([]utils.Matrix, error)

// Stepper advances a state by one explicit step. Steppers hold only their
// fixed scheme coefficients; all stage storage is per call.
type Stepper interface {
	Name() string
	Step(rhs RHS, U []utils.Matrix, t, dt float64) ([]utils.Matrix, error)
}

// NewStepper selects a time-integration scheme by name. An empty method
// selects SSPRK33.
func NewStepper(method string) (Stepper, error) {
	switch method {
	case "", "SSPRK33":
		return SSPRK33{}, nil
	case "LSRK4":
		return LSRK4{}, nil
	default:
		return nil, types.ConfigErrorf("unknown time integration method %q", method)
	}
}

// SSPRK33 is the three-stage, third-order strong-stability-preserving
// Runge-Kutta scheme of Shu and Osher. Each stage is a convex combination
// of forward-Euler steps, so the scheme is stable under the same CFL
// restriction as forward Euler.
type SSPRK33 struct{}

func (SSPRK33) Name() string { return "SSPRK33" }

func (SSPRK33) Step(rhs RHS, U []utils.Matrix, t, dt float64) ([]utils.Matrix, error) {
	k, err := rhs(U, t)
	if err != nil {
		return nil, err
	}
	// u1 = u + dt*L(u, t)
	U1 := copyState(U)
	addScaled(U1, dt, k)

	if k, err = rhs(U1, t+dt); err != nil {
		return nil, err
	}
	// u2 = 3/4 u + 1/4 (u1 + dt*L(u1, t+dt))
	addScaled(U1, dt, k)
	U2 := copyState(U)
	scaleState(U2, 0.75)
	addScaled(U2, 0.25, U1)

	if k, err = rhs(U2, t+0.5*dt); err != nil {
		return nil, err
	}
	// u_next = 1/3 u + 2/3 (u2 + dt*L(u2, t+dt/2))
	addScaled(U2, dt, k)
	Un := copyState(U)
	scaleState(Un, 1./3.)
	addScaled(Un, 2./3., U2)
	return Un, nil
}

// LSRK4 is the five-stage, fourth-order low-storage Runge-Kutta scheme of
// Carpenter and Kennedy, the workhorse explicit integrator for nodal DG.
type LSRK4 struct{}

func (LSRK4) Name() string { return "LSRK4" }

var (
	rk4a = [5]float64{
		0.,
		-567301805773. / 1357537059087.,
		-2404267990393. / 2016746695238.,
		-3550918686646. / 2091501179385.,
		-1275806237668. / 842570457699.,
	}
	rk4b = [5]float64{
		1432997174477. / 9575080441755.,
		5161836677717. / 13612090177932.,
		1720146321549. / 2090206949498.,
		3134564353537. / 4481467310338.,
		2277821191437. / 14882151754819.,
	}
	rk4c = [5]float64{
		0.,
		1432997174477. / 9575080441755.,
		2526269341429. / 6820363962896.,
		2006345519317. / 3224310063776.,
		2802321613138. / 2924317926251.,
	}
)

func (LSRK4) Step(rhs RHS, U []utils.Matrix, t, dt float64) ([]utils.Matrix, error) {
	Un := copyState(U)
	res := zeroStateLike(U)
	for s := 0; s < 5; s++ {
		k, err := rhs(Un, t+rk4c[s]*dt)
		if err != nil {
			return nil, err
		}
		// res = rk4a[s]*res + dt*k ; u += rk4b[s]*res
		scaleState(res, rk4a[s])
		addScaled(res, dt, k)
		addScaled(Un, rk4b[s], res)
	}
	return Un, nil
}

func copyState(U []utils.Matrix) (R []utils.Matrix) {
	R = make([]utils.Matrix, len(U))
	for m := range U {
		R[m] = U[m].Copy()
	}
	return
}

func zeroStateLike(U []utils.Matrix) (R []utils.Matrix) {
	R = make([]utils.Matrix, len(U))
	for m := range U {
		nr, nc := U[m].Dims()
		R[m] = utils.NewMatrix(nr, nc)
	}
	return
}

func scaleState(U []utils.Matrix, a float64) {
	for m := range U {
		U[m].Scale(a)
	}
}

func addScaled(Y []utils.Matrix, a float64, X []utils.Matrix) {
	for m := range Y {
		Y[m].Add(X[m].Copy().Scale(a))
	}
}
