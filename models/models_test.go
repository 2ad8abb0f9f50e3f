package models

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgwave/dgwave/params"
	"github.com/dgwave/dgwave/swe"
	"github.com/dgwave/dgwave/types"
)

func TestNewAdvection1D(t *testing.T) {
	_, err := NewAdvection1D(0, 1, 1, 3, 10)
	assert.Error(t, err)
	var cfgErr *types.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))

	mdl, err := NewAdvection1D(1, 0.5, 1, 3, 10)
	assert.NoError(t, err)
	traj, err := mdl.Solve()
	assert.NoError(t, err)
	assert.Equal(t, mdl.Frames, traj.NumFrames())
	tFinal, _ := traj.Frame(traj.NumFrames() - 1)
	assert.True(t, near(tFinal, 1))
}

func TestShallowWater1DInflowConsistency(t *testing.T) {
	p := swe.Params{Gravity: 9.81}
	ic := func(x float64) []float64 { return []float64{1, 0} }
	{ // Hydrograph must match the initial discharge at t = 0
		_, err := NewShallowWater1D(p, 0, 10, 2, 8, 0.5, 1, ic,
			func(t float64) float64 { return 0.5 })
		assert.Error(t, err)
		var cfgErr *types.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr))
	}
	{ // A matching hydrograph constructs fine
		mdl, err := NewShallowWater1D(p, 0, 10, 2, 8, 0.5, 1, ic,
			func(t float64) float64 { return 0 })
		assert.NoError(t, err)
		assert.NotNil(t, mdl.Solver)
	}
}

func TestLakeAtRest(t *testing.T) {
	// Still water over a flat bed is an exact steady state: the RHS must
	// vanish to roundoff and stay there over a run.
	p := swe.Params{Gravity: 9.81}
	ic := func(x float64) []float64 { return []float64{1, 0} }
	mdl, err := NewShallowWater1D(p, 0, 10, 3, 8, 0.5, 0.5, ic, nil)
	assert.NoError(t, err)

	RHSU, err := mdl.Solver.RHS(mdl.Solver.U, 0)
	assert.NoError(t, err)
	for m := range RHSU {
		assert.True(t, near(RHSU[m].Apply(math.Abs).Max(), 0, 1.e-11))
	}

	traj, err := mdl.Solve()
	assert.NoError(t, err)
	_, U := traj.Frame(traj.NumFrames() - 1)
	assert.True(t, near(U[0].Min(), 1, 1.e-10))
	assert.True(t, near(U[0].Max(), 1, 1.e-10))
	assert.True(t, near(U[1].Apply(math.Abs).Max(), 0, 1.e-10))
}

func TestStepperSelection(t *testing.T) {
	// A YAML TimeStepper choice must reach the integrator through the
	// model's Method field.
	rp := params.Defaults()
	assert.NoError(t, rp.Parse([]byte("TimeStepper: LSRK4\n")))
	assert.Equal(t, "LSRK4", rp.TimeStepper)

	p := swe.Params{Gravity: 9.81}
	ic := func(x float64) []float64 { return []float64{1, 0} }
	mdl, err := NewShallowWater1D(p, 0, 10, 2, 4, 0.5, 0.1, ic, nil)
	assert.NoError(t, err)

	mdl.Method = rp.TimeStepper
	_, err = mdl.Solve()
	assert.NoError(t, err)

	// An unknown scheme is diagnosed instead of silently replaced
	mdl.Method = "RK99"
	_, err = mdl.Solve()
	assert.Error(t, err)
	var cfgErr *types.ConfigurationError
	assert.True(t, errors.As(err, &cfgErr))
}

func TestWriteCSV(t *testing.T) {
	mdl, err := NewAdvection1D(1, 0.5, 0.1, 1, 2)
	assert.NoError(t, err)
	mdl.Frames = 2
	traj, err := mdl.Solve()
	assert.NoError(t, err)

	var buf bytes.Buffer
	assert.NoError(t, WriteCSV(&buf, traj))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, "time,element,node,x,u", lines[0])
	// Header plus frames x K x Np records
	assert.Equal(t, 1+2*2*2, len(lines))
}

func TestEvenTimes(t *testing.T) {
	ts := evenTimes(0, 1, 5)
	assert.Equal(t, 5, len(ts))
	assert.True(t, near(ts[0], 0))
	assert.True(t, near(ts[2], 0.5))
	assert.True(t, near(ts[4], 1))
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
