package swe

import (
	"fmt"
	"math"

	"github.com/dgwave/dgwave/types"
	"github.com/dgwave/dgwave/utils"
)

// Params are the physical constants of a shallow-water run, bound once at
// construction and immutable for the whole run.
type Params struct {
	Gravity float64
	// Manning is the Manning roughness coefficient n; zero disables
	// friction.
	Manning float64
	// Bathymetry returns the bed elevation and its slope at x. Nil means a
	// flat bed.
	Bathymetry func(x float64) (b, slope float64)
}

// ShallowWater is the 1D shallow-water system in conservative variables
// (h, q) = (depth, discharge):
//
//	h_t + q_x                      = 0
//	q_t + (q^2/h + g h^2/2)_x      = -g h dB/dx - g n^2 q|q| h^{-7/3}
//
// It implements types.System and is one consumer of the generic engine.
type ShallowWater struct {
	p Params
}

func New(p Params) (*ShallowWater, error) {
	if p.Gravity <= 0 {
		return nil, types.ConfigErrorf("gravity must be positive, got %g", p.Gravity)
	}
	if p.Manning < 0 {
		return nil, types.ConfigErrorf("Manning coefficient must be non-negative, got %g", p.Manning)
	}
	if p.Bathymetry == nil {
		p.Bathymetry = func(x float64) (b, slope float64) { return 0, 0 }
	}
	return &ShallowWater{p: p}, nil
}

func (sw *ShallowWater) NumFields() int       { return 2 }
func (sw *ShallowWater) FieldNames() []string { return []string{"h", "q"} }
func (sw *ShallowWater) Params() Params       { return sw.p }

func (sw *ShallowWater) Flux(u []float64) []float64 {
	h, q := u[0], u[1]
	return []float64{
		q,
		q*q/h + 0.5*sw.p.Gravity*h*h,
	}
}

func (sw *ShallowWater) FluxJacobian(u []float64) utils.Matrix {
	h, q := u[0], u[1]
	vel := q / h
	return utils.NewMatrix(2, 2, []float64{
		0, 1,
		sw.p.Gravity*h - vel*vel, 2 * vel,
	})
}

func (sw *ShallowWater) Source(u []float64, x, t float64) []float64 {
	var (
		h, q     = u[0], u[1]
		g        = sw.p.Gravity
		_, slope = sw.p.Bathymetry(x)
		sq       float64
	)
	if n := sw.p.Manning; n > 0 {
		sq = -g * n * n * q * math.Abs(q) * math.Pow(h, -7./3.)
	}
	return []float64{
		0,
		-g*h*slope + sq,
	}
}

func (sw *ShallowWater) Admissible(u []float64) error {
	if h := u[0]; h <= 0 {
		return fmt.Errorf("water depth must be positive, got h = %g", h)
	}
	return nil
}

// MaxWaveSpeed is the analytic spectral radius |q/h| + sqrt(g h) of the
// flux Jacobian, handy for CFL step estimates.
func (sw *ShallowWater) MaxWaveSpeed(u []float64) float64 {
	h, q := u[0], u[1]
	return math.Abs(q/h) + math.Sqrt(sw.p.Gravity*h)
}

// Bump returns a smooth bathymetry hump of the given height centered at
// x0 with characteristic width w, the standard flow-over-a-bump test bed.
func Bump(height, x0, w float64) func(x float64) (b, slope float64) {
	return func(x float64) (b, slope float64) {
		arg := (x - x0) / w
		e := math.Exp(-arg * arg)
		b = height * e
		slope = -2 * arg / w * height * e
		return
	}
}
