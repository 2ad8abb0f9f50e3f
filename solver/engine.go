package solver

import (
	"github.com/dgwave/dgwave/dg1d"
	"github.com/dgwave/dgwave/flux"
	"github.com/dgwave/dgwave/timeint"
	"github.com/dgwave/dgwave/types"
	"github.com/dgwave/dgwave/utils"
)

// InitialCondition evaluates the conserved fields at a physical coordinate.
type InitialCondition func(x float64) []float64

// Hyperbolic1DSolver is the generic DG engine for one-dimensional
// conservation-law systems u_t + F(u)_x = S(u). It owns the mesh and the
// elemental operators; the physics enters only through the injected
// System, intercell flux and boundary closures.
type Hyperbolic1DSolver struct {
	El              *dg1d.Elements1D
	Sys             types.System
	NumFlux         flux.Intercell
	LeftBC, RightBC flux.Boundary
	U               []utils.Matrix // Initial state, one Np x K matrix per field
	nrF, ncF, nFlds int
}

// NewHyperbolic1DSolver builds the mesh and reference operators for K
// elements of degree N on [xmin, xmax], and evaluates the initial condition
// at every nodal point. All invalid inputs fail with a ConfigurationError.
func NewHyperbolic1DSolver(xmin, xmax float64, K, N int, ic InitialCondition,
	sys types.System, num flux.Intercell, left, right flux.Boundary) (s *Hyperbolic1DSolver, err error) {
	switch {
	case sys == nil:
		return nil, types.ConfigErrorf("physical system must be supplied")
	case ic == nil:
		return nil, types.ConfigErrorf("initial condition must be supplied")
	case num == nil:
		return nil, types.ConfigErrorf("intercell numerical flux must be supplied")
	case left == nil || right == nil:
		return nil, types.ConfigErrorf("both boundary flux closures must be supplied")
	case xmax <= xmin:
		return nil, types.ConfigErrorf("domain is empty: xmin = %g, xmax = %g", xmin, xmax)
	case K < 1:
		return nil, types.ConfigErrorf("cell count must be at least 1, got %d", K)
	}
	if n := len(ic(xmin)); n != sys.NumFields() {
		return nil, types.ConfigErrorf("initial condition returns %d values for a system of %d fields",
			n, sys.NumFields())
	}

	VX, EToV := dg1d.SimpleMesh1D(xmin, xmax, K)
	var el *dg1d.Elements1D
	if el, err = dg1d.NewElements1D(N, VX, EToV); err != nil {
		return
	}
	s = &Hyperbolic1DSolver{
		El:      el,
		Sys:     sys,
		NumFlux: num,
		LeftBC:  left,
		RightBC: right,
		nrF:     el.Nfp * el.NFaces,
		ncF:     el.K,
		nFlds:   sys.NumFields(),
	}
	s.U = s.evalInitialCondition(ic)
	return
}

func (s *Hyperbolic1DSolver) evalInitialCondition(ic InitialCondition) (U []utils.Matrix) {
	var (
		el = s.El
	)
	U = make([]utils.Matrix, s.nFlds)
	for m := range U {
		U[m] = utils.NewMatrix(el.Np, el.K)
	}
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			u0 := ic(el.X.At(i, k))
			for m := range U {
				U[m].Set(i, k, u0[m])
			}
		}
	}
	return
}

// RHS assembles the semi-discrete right-hand side at state U and time t:
// per-element volume terms -Rx.(Dr F(U)) plus the source S(U), coupled by
// one shared numerical flux per interior interface and the injected
// boundary closures at the two domain faces, lifted through the inverse
// mass matrix. Interior contributions telescope, so the only net change of
// a conserved quantity comes from the boundaries and the source.
func (s *Hyperbolic1DSolver) RHS(U []utils.Matrix, t float64) (RHSU []utils.Matrix, err error) {
	var (
		el = s.El
		F  = s.evalFlux(U)
	)

	// Face traces gathered through the elemental trace maps: UM is each
	// face's interior trace, UP the neighboring element's matching trace,
	// FM the interior flux trace. Face fi = f + NFaces*k.
	UM := make([]utils.Vector, s.nFlds)
	UP := make([]utils.Vector, s.nFlds)
	FM := make([]utils.Vector, s.nFlds)
	for m := range U {
		UM[m] = U[m].SubsetVector(el.VmapM)
		UP[m] = U[m].SubsetVector(el.VmapP)
		FM[m] = F[m].SubsetVector(el.VmapM)
	}

	// Surface flux differences nx*(F(uM) - f*) per face node, one 2 x K
	// matrix per field.
	dF := make([]utils.Matrix, s.nFlds)
	for m := range dF {
		dF[m] = utils.NewMatrix(s.nrF, s.ncF)
	}

	// Interior interfaces: interface i joins the right face of element i-1
	// to the left face of element i. Both sides receive the same f*, so
	// what leaves one element enters its neighbor exactly.
	uL := make([]float64, s.nFlds)
	uR := make([]float64, s.nFlds)
	for i := 1; i < el.K; i++ {
		fi := el.NFaces*(i-1) + 1 // right face of element i-1
		for m := range U {
			uL[m] = UM[m].AtVec(fi)
			uR[m] = UP[m].AtVec(fi)
		}
		fstar := s.NumFlux(uL, uR)
		for m := range dF {
			dF[m].Set(1, i-1, FM[m].AtVec(fi)-fstar[m]) // nx = +1
			dF[m].Set(0, i, fstar[m]-FM[m].AtVec(fi+1)) // nx = -1
		}
	}

	// Domain boundaries: the inflow/outflow faces use the injected
	// closures against the traces addressed by MapI and MapO.
	for m := range U {
		uL[m] = UM[m].AtVec(el.MapI[0])
		uR[m] = UM[m].AtVec(el.MapO[0])
	}
	var fb []float64
	if fb, err = s.LeftBC(uL, t); err != nil {
		return nil, err
	}
	for m := range dF {
		dF[m].AssignScalar(el.MapI, fb[m]-FM[m].AtVec(el.MapI[0]))
	}
	if fb, err = s.RightBC(uR, t); err != nil {
		return nil, err
	}
	for m := range dF {
		dF[m].AssignScalar(el.MapO, FM[m].AtVec(el.MapO[0])-fb[m])
	}

	S := s.evalSource(U, t)
	RHSU = make([]utils.Matrix, s.nFlds)
	for m := range RHSU {
		RHSU[m] = el.Rx.Copy().ElMul(el.Dr.Mul(F[m])).Scale(-1).
			Add(el.LIFT.Mul(dF[m].ElMul(el.FScale))).
			Add(S[m])
	}
	return
}

func (s *Hyperbolic1DSolver) evalFlux(U []utils.Matrix) (F []utils.Matrix) {
	var (
		el = s.El
		u  = make([]float64, s.nFlds)
	)
	F = make([]utils.Matrix, s.nFlds)
	for m := range F {
		F[m] = utils.NewMatrix(el.Np, el.K)
	}
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			for m := range u {
				u[m] = U[m].At(i, k)
			}
			f := s.Sys.Flux(u)
			for m := range F {
				F[m].Set(i, k, f[m])
			}
		}
	}
	return
}

func (s *Hyperbolic1DSolver) evalSource(U []utils.Matrix, t float64) (S []utils.Matrix) {
	var (
		el = s.El
		u  = make([]float64, s.nFlds)
	)
	S = make([]utils.Matrix, s.nFlds)
	for m := range S {
		S[m] = utils.NewMatrix(el.Np, el.K)
	}
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			for m := range u {
				u[m] = U[m].At(i, k)
			}
			src := s.Sys.Source(u, el.X.At(i, k), t)
			for m := range S {
				S[m].Set(i, k, src[m])
			}
		}
	}
	return
}

// Solve integrates the semi-discrete system over the output times in opts
// and returns the recorded trajectory. Errors from the integrator or the
// boundary closures surface unchanged; a failed run yields no trajectory.
func (s *Hyperbolic1DSolver) Solve(opts timeint.Options) (*Trajectory, error) {
	times, states, err := timeint.Integrate(s.RHS, s.U, opts)
	if err != nil {
		return nil, err
	}
	return &Trajectory{
		Times:      times,
		States:     states,
		X:          s.El.X.Copy(),
		FieldNames: s.Sys.FieldNames(),
	}, nil
}

// IntegrateField computes the quadrature-weighted integral of a nodal
// field over the whole domain, sum_k sum_i w_i J_ik Q_ik. Used to verify
// discrete conservation.
func (s *Hyperbolic1DSolver) IntegrateField(Q utils.Matrix) (total float64) {
	var (
		el = s.El
		W  = el.Ref.W
	)
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			total += W.AtVec(i) * Q.At(i, k) / el.Rx.At(i, k)
		}
	}
	return
}
