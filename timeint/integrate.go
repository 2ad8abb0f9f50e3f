package timeint

import (
	"math"

	"github.com/dgwave/dgwave/types"
	"github.com/dgwave/dgwave/utils"
)

// Options is the integration configuration bag.
type Options struct {
	// Method selects the stepping scheme; empty means SSPRK33.
	Method string
	// TEval is the ascending sequence of output times. The first entry is
	// the initial time of the run.
	TEval []float64
	// MaxStep bounds the internal sub-step size between output times.
	MaxStep float64
}

// Integrate advances U0 from TEval[0] through every requested output time,
// recording the state at exactly those times. The interval between
// consecutive outputs is subdivided into equal sub-steps no larger than
// MaxStep. It fails with an IntegrationError on a non-positive step or as
// soon as a produced state contains a non-finite value; a failed run
// returns no states.
func Integrate(rhs RHS, U0 []utils.Matrix, opts Options) (times []float64, states [][]utils.Matrix, err error) {
	var stepper Stepper
	if stepper, err = NewStepper(opts.Method); err != nil {
		return nil, nil, err
	}
	if len(opts.TEval) == 0 {
		return nil, nil, types.ConfigErrorf("t_eval must contain at least the initial time")
	}
	for i := 1; i < len(opts.TEval); i++ {
		if opts.TEval[i] <= opts.TEval[i-1] {
			return nil, nil, types.ConfigErrorf("t_eval must be strictly ascending: t_eval[%d] = %g, t_eval[%d] = %g",
				i-1, opts.TEval[i-1], i, opts.TEval[i])
		}
	}
	if opts.MaxStep <= 0 && len(opts.TEval) > 1 {
		return nil, nil, &types.IntegrationError{
			Time: opts.TEval[0],
			Dt:   opts.MaxStep,
			Msg:  "max_step must be positive",
		}
	}

	t := opts.TEval[0]
	U := copyState(U0)
	times = append(times, t)
	states = append(states, copyState(U))

	for _, target := range opts.TEval[1:] {
		nSub := int(math.Ceil((target - t) / opts.MaxStep))
		if nSub < 1 {
			nSub = 1
		}
		dt := (target - t) / float64(nSub)
		if dt <= 0 {
			return nil, nil, &types.IntegrationError{Time: t, Dt: dt, Msg: "non-positive step size"}
		}
		for s := 0; s < nSub; s++ {
			if U, err = stepper.Step(rhs, U, t, dt); err != nil {
				return nil, nil, err
			}
			t += dt
			if !finiteState(U) {
				return nil, nil, &types.IntegrationError{
					Time: t,
					Dt:   dt,
					Msg:  "solution diverged: non-finite value in state",
				}
			}
		}
		t = target // guard against substep roundoff drift
		times = append(times, t)
		states = append(states, copyState(U))
	}
	return
}

func finiteState(U []utils.Matrix) bool {
	for m := range U {
		for _, val := range U[m].RawMatrix().Data {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return false
			}
		}
	}
	return true
}
