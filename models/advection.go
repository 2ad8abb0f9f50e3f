package models

import (
	"fmt"
	"math"
	"time"

	"github.com/dgwave/dgwave/flux"
	"github.com/dgwave/dgwave/solver"
	"github.com/dgwave/dgwave/timeint"
	"github.com/dgwave/dgwave/types"
	"github.com/dgwave/dgwave/utils"
)

// Advection is linear scalar transport u_t + (a u)_x = 0, the simplest
// consumer of the system interface and the standard smoke test for the
// engine.
type Advection struct {
	A float64
}

func NewAdvection(a float64) *Advection { return &Advection{A: a} }

func (s *Advection) NumFields() int       { return 1 }
func (s *Advection) FieldNames() []string { return []string{"u"} }

func (s *Advection) Flux(u []float64) []float64 {
	return []float64{s.A * u[0]}
}

func (s *Advection) FluxJacobian(u []float64) utils.Matrix {
	return utils.NewMatrix(1, 1, []float64{s.A})
}

func (s *Advection) Source(u []float64, x, t float64) []float64 {
	return []float64{0}
}

func (s *Advection) Admissible(u []float64) error { return nil }

// Advection1D runs a sine wave advected through [0, 2pi] with the exact
// solution prescribed at the inflow boundary and transmissive outflow.
type Advection1D struct {
	A, CFL, FinalTime float64
	Frames            int
	Method            string
	Solver            *solver.Hyperbolic1DSolver
}

func NewAdvection1D(a, CFL, FinalTime float64, N, K int) (mdl *Advection1D, err error) {
	if a <= 0 {
		return nil, types.ConfigErrorf("advection speed must be positive, got %g", a)
	}
	sys := NewAdvection(a)
	num := flux.LaxFriedrichs(sys)
	left := flux.PrescribedInflow(sys, num, 0,
		func(t float64) float64 { return -math.Sin(a * t) }, flux.Left)
	right := flux.Transmissive(sys)
	ic := func(x float64) []float64 { return []float64{math.Sin(x)} }

	mdl = &Advection1D{A: a, CFL: CFL, FinalTime: FinalTime, Frames: 100, Method: "SSPRK33"}
	mdl.Solver, err = solver.NewHyperbolic1DSolver(0, 2*math.Pi, K, N, ic, sys, num, left, right)
	return
}

// Solve advances to FinalTime with the Method stepper, recording Frames
// evenly spaced states. The sub-step size comes from the CFL restriction on
// the mesh spacing.
func (mdl *Advection1D) Solve() (*solver.Trajectory, error) {
	maxStep := mdl.CFL * mdl.Solver.El.MinSpacing() / mdl.A
	return mdl.Solver.Solve(timeint.Options{
		Method:  mdl.Method,
		TEval:   evenTimes(0, mdl.FinalTime, mdl.Frames),
		MaxStep: maxStep,
	})
}

// Run solves and optionally plays the trajectory back as a live plot,
// logging the solution range per frame.
func (mdl *Advection1D) Run(showGraph bool, graphDelay ...time.Duration) error {
	traj, err := mdl.Solve()
	if err != nil {
		return err
	}
	logFrequency := 10
	for frame := 0; frame < traj.NumFrames(); frame++ {
		if frame%logFrequency != 0 && frame != traj.NumFrames()-1 {
			continue
		}
		t, U := traj.Frame(frame)
		fmt.Printf("Time = %8.4f, umin = %8.4f, umax = %8.4f\n", t, U[0].Min(), U[0].Max())
	}
	if showGraph {
		playTrajectory(traj, graphDelay...)
	}
	return nil
}

func evenTimes(t0, t1 float64, n int) (ts []float64) {
	if n < 2 {
		n = 2
	}
	ts = make([]float64, n)
	dt := (t1 - t0) / float64(n-1)
	for i := range ts {
		ts[i] = t0 + dt*float64(i)
	}
	ts[n-1] = t1
	return
}
