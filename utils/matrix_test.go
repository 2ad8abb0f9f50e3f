package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrixOps(t *testing.T) {
	{ // Chained elementwise operations modify the receiver
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		B := NewMatrix(2, 2, []float64{1, 1, 1, 1})
		A.Add(B).Scale(2)
		assert.True(t, near(A.At(0, 0), 4))
		assert.True(t, near(A.At(1, 1), 10))
	}
	{ // Mul and Transpose do not modify the receiver
		A := NewMatrix(2, 3, []float64{1, 2, 3, 4, 5, 6})
		At := A.Transpose()
		assert.True(t, near(A.At(0, 1), 2))
		assert.True(t, near(At.At(1, 0), 2))
		AAt := A.Mul(At)
		assert.True(t, near(AAt.At(0, 0), 14))
		assert.True(t, near(AAt.At(0, 1), 32))
	}
	{ // Row and column sums
		A := NewMatrix(2, 2, []float64{1, 2, 3, 4})
		assert.True(t, near(A.SumRows().AtVec(0), 3))
		assert.True(t, near(A.SumCols().AtVec(1), 6))
		assert.True(t, near(A.Min(), 1))
		assert.True(t, near(A.Max(), 4))
	}
}

func TestMatrixInverse(t *testing.T) {
	A := NewMatrix(2, 2, []float64{4, 7, 2, 6})
	Ainv, err := A.Inverse()
	assert.NoError(t, err)
	I := A.Mul(Ainv)
	assert.True(t, near(I.At(0, 0), 1, 1.e-12))
	assert.True(t, near(I.At(0, 1), 0, 1.e-12))
	assert.True(t, near(I.At(1, 0), 0, 1.e-12))
	assert.True(t, near(I.At(1, 1), 1, 1.e-12))

	S := NewMatrix(2, 2, []float64{1, 2, 2, 4})
	_, err = S.Inverse()
	assert.Error(t, err)
}

func TestElementalIndexing(t *testing.T) {
	// Elemental index ind = i + nr*j addresses node i of element (column) j
	A := NewMatrix(2, 3, []float64{
		0, 2, 4,
		1, 3, 5,
	})
	V := A.SubsetVector(Index{0, 1, 2, 3, 4, 5})
	assert.True(t, nearVec(V.RawVector().Data, []float64{0, 1, 2, 3, 4, 5}, 1.e-15))

	// Subset preserves the elemental layout in the target shape
	R := A.Subset(Index{0, 1, 4, 5}, 2, 2)
	assert.True(t, near(R.At(0, 0), 0))
	assert.True(t, near(R.At(1, 0), 1))
	assert.True(t, near(R.At(0, 1), 4))
	assert.True(t, near(R.At(1, 1), 5))

	// Scatter back through AssignVector and AssignScalar
	A.AssignVector(Index{0, 5}, NewVector(2, []float64{-1, -2}))
	assert.True(t, near(A.At(0, 0), -1))
	assert.True(t, near(A.At(1, 2), -2))
	A.AssignScalar(Index{2}, 9)
	assert.True(t, near(A.At(0, 1), 9))
}

func TestVector(t *testing.T) {
	v := NewVector(3, []float64{1, 2, 3})
	w := NewVector(2, []float64{10, 20})
	R := v.Outer(w)
	assert.True(t, near(R.At(2, 1), 60))
	assert.True(t, near(v.Dot(v.Copy()), 14))
	assert.True(t, near(v.Sum(), 6))

	I := v.Find(Greater, 1.5, false)
	assert.Equal(t, Index{1, 2}, I)

	c := v.Concat(w)
	assert.Equal(t, 5, c.Len())
	assert.True(t, near(c.AtVec(4), 20))
}

func nearVec(a, b []float64, tol float64) (l bool) {
	for i, val := range a {
		if !near(b[i], val, tol) {
			return false
		}
	}
	return true
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
