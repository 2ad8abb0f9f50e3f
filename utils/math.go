package utils

import "math"

const (
	// NODETOL is the coordinate tolerance used when matching face nodes.
	NODETOL = 1.e-12
)

type EvalOp uint8

const (
	Equal EvalOp = iota
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
)

func ConstArray(n int, val float64) (v []float64) {
	v = make([]float64, n)
	for i := range v {
		v[i] = val
	}
	return
}

// POW raises x to a small integer power without the transcendental cost of
// math.Pow for the common exponents.
func POW(x float64, p int) (y float64) {
	var flipped bool
	if p < 0 {
		p = -p
		flipped = true
	}
	switch p {
	case 0:
		y = 1
	case 1:
		y = x
	case 2:
		y = x * x
	case 3:
		y = x * x * x
	case 4:
		y = x * x
		y = y * y
	default:
		y = math.Pow(x, float64(p))
	}
	if flipped {
		y = 1. / y
	}
	return
}
