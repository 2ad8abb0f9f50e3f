package solver

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgwave/dgwave/flux"
	"github.com/dgwave/dgwave/timeint"
	"github.com/dgwave/dgwave/types"
	"github.com/dgwave/dgwave/utils"
)

type transport struct {
	a float64
}

func (s transport) NumFields() int       { return 1 }
func (s transport) FieldNames() []string { return []string{"u"} }
func (s transport) Flux(u []float64) []float64 {
	return []float64{s.a * u[0]}
}
func (s transport) FluxJacobian(u []float64) utils.Matrix {
	return utils.NewMatrix(1, 1, []float64{s.a})
}
func (s transport) Source(u []float64, x, t float64) []float64 { return []float64{0} }
func (s transport) Admissible(u []float64) error               { return nil }

func newTransportSolver(t *testing.T, K, N int, ic InitialCondition) *Hyperbolic1DSolver {
	sys := transport{a: 1}
	num := flux.LaxFriedrichs(sys)
	s, err := NewHyperbolic1DSolver(0, 2*math.Pi, K, N, ic, sys,
		num, flux.Transmissive(sys), flux.Transmissive(sys))
	assert.NoError(t, err)
	return s
}

func TestNewHyperbolic1DSolver(t *testing.T) {
	sys := transport{a: 1}
	num := flux.LaxFriedrichs(sys)
	ic := func(x float64) []float64 { return []float64{1} }
	bc := flux.Transmissive(sys)
	var cfgErr *types.ConfigurationError
	{
		_, err := NewHyperbolic1DSolver(0, 1, 4, 2, ic, nil, num, bc, bc)
		assert.True(t, errors.As(err, &cfgErr))
	}
	{
		_, err := NewHyperbolic1DSolver(1, 0, 4, 2, ic, sys, num, bc, bc)
		assert.True(t, errors.As(err, &cfgErr))
	}
	{
		_, err := NewHyperbolic1DSolver(0, 1, 0, 2, ic, sys, num, bc, bc)
		assert.True(t, errors.As(err, &cfgErr))
	}
	{
		_, err := NewHyperbolic1DSolver(0, 1, 4, 0, ic, sys, num, bc, bc)
		assert.True(t, errors.As(err, &cfgErr))
	}
	{ // Initial condition must produce one value per conserved field
		short := func(x float64) []float64 { return nil }
		_, err := NewHyperbolic1DSolver(0, 1, 4, 2, short, sys, num, bc, bc)
		assert.True(t, errors.As(err, &cfgErr))
	}
	{ // Initial condition is sampled at the nodes
		s := newTransportSolver(t, 4, 3, func(x float64) []float64 { return []float64{math.Sin(x)} })
		el := s.El
		for k := 0; k < el.K; k++ {
			for i := 0; i < el.Np; i++ {
				assert.True(t, near(s.U[0].At(i, k), math.Sin(el.X.At(i, k)), 1.e-12))
			}
		}
	}
}

func TestSteadyState(t *testing.T) {
	// A constant state with matched constant boundaries is an exact steady
	// solution: the RHS vanishes and integration preserves it bit for bit
	// up to roundoff.
	sys := transport{a: 1}
	num := flux.LaxFriedrichs(sys)
	ext := func(t float64) []float64 { return []float64{1} }
	ic := func(x float64) []float64 { return []float64{1} }
	s, err := NewHyperbolic1DSolver(0, 1, 4, 1, ic, sys, num,
		flux.Fixed(sys, num, ext, flux.Left), flux.Fixed(sys, num, ext, flux.Right))
	assert.NoError(t, err)

	RHSU, err := s.RHS(s.U, 0)
	assert.NoError(t, err)
	assert.True(t, near(RHSU[0].Apply(math.Abs).Max(), 0, 1.e-13))

	traj, err := s.Solve(timeint.Options{TEval: []float64{0, 1}, MaxStep: 0.01})
	assert.NoError(t, err)
	_, U := traj.Frame(traj.NumFrames() - 1)
	assert.True(t, near(U[0].Min(), 1, 1.e-12))
	assert.True(t, near(U[0].Max(), 1, 1.e-12))
}

func TestConservation(t *testing.T) {
	// The interior interface fluxes telescope, so the integral of the RHS
	// equals the boundary flux imbalance exactly.
	s := newTransportSolver(t, 8, 4, func(x float64) []float64 {
		return []float64{math.Sin(x) + 2}
	})
	RHSU, err := s.RHS(s.U, 0)
	assert.NoError(t, err)
	el := s.El
	fIn := s.U[0].At(0, 0)             // Transmissive left: F(u) = u
	fOut := s.U[0].At(el.Np-1, el.K-1) // Transmissive right
	total := s.IntegrateField(RHSU[0])
	assert.True(t, near(total, fIn-fOut, 1.e-10))
}

func TestAdvectionAccuracy(t *testing.T) {
	// Advect sin(x) with the exact inflow trace; the final state must match
	// the exact solution sin(x - t) to discretization accuracy.
	sys := transport{a: 1}
	num := flux.LaxFriedrichs(sys)
	left := flux.PrescribedInflow(sys, num, 0,
		func(t float64) float64 { return -math.Sin(t) }, flux.Left)
	ic := func(x float64) []float64 { return []float64{math.Sin(x)} }
	s, err := NewHyperbolic1DSolver(0, 2*math.Pi, 20, 5, ic, sys, num, left, flux.Transmissive(sys))
	assert.NoError(t, err)

	final := 0.5
	traj, err := s.Solve(timeint.Options{
		TEval:   []float64{0, final},
		MaxStep: 0.3 * s.El.MinSpacing(),
	})
	assert.NoError(t, err)
	_, U := traj.Frame(1)
	var maxErr float64
	for k := 0; k < s.El.K; k++ {
		for i := 0; i < s.El.Np; i++ {
			exact := math.Sin(s.El.X.At(i, k) - final)
			if e := math.Abs(U[0].At(i, k) - exact); e > maxErr {
				maxErr = e
			}
		}
	}
	assert.True(t, maxErr < 1.e-2)
}

func TestInterfaceCoupling(t *testing.T) {
	// A jump across the interior interface must reach both neighbors
	// through the trace maps. On two linear elements of width 1 with
	// F(u) = u, the state below gives the closed-form RHS worked out from
	// Dr = [[-1/2, 1/2], [-1/2, 1/2]], LIFT = [[2, -1], [-1, 2]],
	// Rx = FScale = 2 and the upwind interface flux f* = 2.
	s := newTransportSolver2(t)
	s.U[0].Set(1, 0, 2) // right trace of element 0
	s.U[0].Set(1, 1, 1) // right boundary trace

	RHSU, err := s.RHS(s.U, 0)
	assert.NoError(t, err)
	// Element 0 sees only its volume term: dF vanishes at both faces
	assert.True(t, near(RHSU[0].At(0, 0), -2, 1.e-12))
	assert.True(t, near(RHSU[0].At(1, 0), -2, 1.e-12))
	// Element 1 receives the upwinded jump at its left face
	assert.True(t, near(RHSU[0].At(0, 1), 7, 1.e-12))
	assert.True(t, near(RHSU[0].At(1, 1), -5, 1.e-12))
}

func newTransportSolver2(t *testing.T) *Hyperbolic1DSolver {
	sys := transport{a: 1}
	num := flux.LaxFriedrichs(sys)
	ic := func(x float64) []float64 { return []float64{0} }
	s, err := NewHyperbolic1DSolver(0, 2, 2, 1, ic, sys,
		num, flux.Transmissive(sys), flux.Transmissive(sys))
	assert.NoError(t, err)
	return s
}

func TestTrajectoryRows(t *testing.T) {
	s := newTransportSolver(t, 2, 1, func(x float64) []float64 { return []float64{x} })
	traj, err := s.Solve(timeint.Options{TEval: []float64{0, 0.1}, MaxStep: 0.01})
	assert.NoError(t, err)
	rows := traj.Rows()
	assert.Equal(t, 2*2*2, len(rows)) // frames x K x Np
	// First record is frame 0, element 0, node 0
	assert.True(t, near(rows[0][0], 0, 1.e-15))
	assert.True(t, near(rows[0][3], traj.X.At(0, 0), 1.e-15))
	assert.Equal(t, []string{"u"}, traj.FieldNames)
}

func near(a, b float64, tolI ...float64) (l bool) {
	var (
		tol float64
	)
	if len(tolI) == 0 {
		tol = 1.e-08
	} else {
		tol = tolI[0]
	}
	bound := math.Max(tol, tol*math.Abs(a))
	if math.Abs(a-b) <= bound {
		l = true
	}
	return
}
