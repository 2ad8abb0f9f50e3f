package models

import (
	"fmt"
	"math"
	"time"

	"github.com/dgwave/dgwave/flux"
	"github.com/dgwave/dgwave/solver"
	"github.com/dgwave/dgwave/swe"
	"github.com/dgwave/dgwave/timeint"
	"github.com/dgwave/dgwave/types"
)

// ShallowWater1D runs a shallow-water channel with an optional prescribed
// discharge hydrograph at the left boundary and transmissive outflow at the
// right. A nil Inflow makes both boundaries transmissive.
type ShallowWater1D struct {
	CFL, FinalTime float64
	Frames         int
	Method         string
	Sys            *swe.ShallowWater
	Inflow         func(t float64) float64
	Solver         *solver.Hyperbolic1DSolver
}

func NewShallowWater1D(p swe.Params, xmin, xmax float64, N, K int,
	CFL, FinalTime float64, ic solver.InitialCondition,
	inflow func(t float64) float64) (mdl *ShallowWater1D, err error) {
	var sys *swe.ShallowWater
	if sys, err = swe.New(p); err != nil {
		return
	}
	num := flux.LaxFriedrichs(sys)
	var left flux.Boundary
	if inflow != nil {
		// The run starts from a state already consistent with the
		// hydrograph; a jump at t=0 would inject a spurious bore.
		u0 := ic(xmin)
		if math.Abs(u0[1]-inflow(0)) > 1.e-12 {
			return nil, types.ConfigErrorf(
				"initial discharge %g at the left boundary does not match the hydrograph value %g at t = 0",
				u0[1], inflow(0))
		}
		left = flux.PrescribedInflow(sys, num, 1, inflow, flux.Left)
	} else {
		left = flux.Transmissive(sys)
	}
	right := flux.Transmissive(sys)

	mdl = &ShallowWater1D{
		CFL:       CFL,
		FinalTime: FinalTime,
		Frames:    100,
		Method:    "SSPRK33",
		Sys:       sys,
		Inflow:    inflow,
	}
	mdl.Solver, err = solver.NewHyperbolic1DSolver(xmin, xmax, K, N, ic, sys, num, left, right)
	return
}

// Solve advances to FinalTime with the Method stepper and the sub-step size
// set by the CFL restriction against the fastest wave in the initial state.
func (mdl *ShallowWater1D) Solve() (*solver.Trajectory, error) {
	maxStep := mdl.CFL * mdl.Solver.El.MinSpacing() / mdl.maxInitialWaveSpeed()
	return mdl.Solver.Solve(timeint.Options{
		Method:  mdl.Method,
		TEval:   evenTimes(0, mdl.FinalTime, mdl.Frames),
		MaxStep: maxStep,
	})
}

func (mdl *ShallowWater1D) maxInitialWaveSpeed() (speed float64) {
	var (
		el = mdl.Solver.El
		u  = make([]float64, 2)
	)
	for k := 0; k < el.K; k++ {
		for i := 0; i < el.Np; i++ {
			u[0] = mdl.Solver.U[0].At(i, k)
			u[1] = mdl.Solver.U[1].At(i, k)
			if s := mdl.Sys.MaxWaveSpeed(u); s > speed {
				speed = s
			}
		}
	}
	return
}

// Run solves and optionally plays the trajectory back as a live plot,
// logging depth and discharge ranges per frame.
func (mdl *ShallowWater1D) Run(showGraph bool, graphDelay ...time.Duration) error {
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
		fmt.Printf("Time = %8.4f, hmin = %8.4f, hmax = %8.4f, qmin = %8.4f, qmax = %8.4f\n",
			t, U[0].Min(), U[0].Max(), U[1].Min(), U[1].Max())
	}
	if showGraph {
		playTrajectory(traj, graphDelay...)
	}
	return nil
}
