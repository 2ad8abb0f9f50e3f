package flux

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dgwave/dgwave/types"
	"github.com/dgwave/dgwave/utils"
)

// transport is scalar advection with speed a, the minimal test system.
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
func (s transport) Admissible(u []float64) error {
	if u[0] < 0 {
		return fmt.Errorf("state must be non-negative, got %g", u[0])
	}
	return nil
}

func TestLaxFriedrichs(t *testing.T) {
	sys := transport{a: 2}
	num := LaxFriedrichs(sys)
	{ // Consistency: f*(u,u) = F(u)
		for _, u := range []float64{0, 0.5, 3} {
			fstar := num([]float64{u}, []float64{u})
			assert.True(t, near(fstar[0], 2*u))
		}
	}
	{ // Positive speed reduces to pure upwinding from the left
		fstar := num([]float64{1}, []float64{5})
		assert.True(t, near(fstar[0], 2))
	}
	{ // Negative speed upwinds from the right
		numDown := LaxFriedrichs(transport{a: -2})
		fstar := numDown([]float64{1}, []float64{5})
		assert.True(t, near(fstar[0], -10))
	}
}

func TestMaxWaveSpeed(t *testing.T) {
	assert.True(t, near(MaxWaveSpeed(transport{a: 3}, []float64{1}), 3))
	assert.True(t, near(MaxWaveSpeed(transport{a: -3}, []float64{1}), 3))
}

func TestBoundaries(t *testing.T) {
	sys := transport{a: 1}
	num := LaxFriedrichs(sys)
	{ // Transmissive returns exactly the interior flux
		b := Transmissive(sys)
		f, err := b([]float64{2.5}, 0)
		assert.NoError(t, err)
		assert.True(t, near(f[0], 2.5))
	}
	{ // Prescribed inflow from the left upwinds the prescribed value
		b := PrescribedInflow(sys, num, 0, func(t float64) float64 { return 4 }, Left)
		f, err := b([]float64{1}, 0)
		assert.NoError(t, err)
		assert.True(t, near(f[0], 4))
	}
	{ // Inadmissible ghost state fails with a BoundaryConditionError
		b := PrescribedInflow(sys, num, 0, func(t float64) float64 { return -1 }, Left)
		_, err := b([]float64{1}, 2.5)
		assert.Error(t, err)
		var bcErr *types.BoundaryConditionError
		assert.True(t, errors.As(err, &bcErr))
		assert.Equal(t, "left", bcErr.Side)
		assert.True(t, near(bcErr.Time, 2.5))
	}
	{ // Fixed exterior state, right side
		b := Fixed(sys, num, func(t float64) []float64 { return []float64{3} }, Right)
		f, err := b([]float64{3}, 0)
		assert.NoError(t, err)
		assert.True(t, near(f[0], 3))
	}
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
