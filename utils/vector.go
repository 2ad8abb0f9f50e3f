package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector wraps a gonum dense vector with chainable methods in the same
// style as Matrix.
type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (V Vector) {
	var data []float64
	if len(dataO) != 0 {
		data = dataO[0]
		if len(data) != n {
			panic(fmt.Errorf("NewVector: n = %d but len(data) = %d", n, len(data)))
		}
	} else {
		data = make([]float64, n)
	}
	V = Vector{mat.NewVecDense(n, data)}
	return
}

func NewVectorConstant(n int, val float64) (V Vector) {
	return NewVector(n, ConstArray(n, val))
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) Len() int                 { return v.V.Len() }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }

func (v Vector) Copy() (R Vector) { // Does not change receiver
	R = NewVector(v.Len())
	copy(R.RawVector().Data, v.RawVector().Data)
	return
}

func (v Vector) Set(val float64) Vector {
	var (
		data = v.RawVector().Data
	)
	for i := range data {
		data[i] = val
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.RawVector().Data
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) AddScalar(a float64) Vector {
	var (
		data = v.RawVector().Data
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Add(a Vector) Vector {
	var (
		data  = v.RawVector().Data
		dataA = a.RawVector().Data
	)
	for i, val := range dataA {
		data[i] += val
	}
	return v
}

func (v Vector) Subtract(a Vector) Vector {
	var (
		data  = v.RawVector().Data
		dataA = a.RawVector().Data
	)
	for i, val := range dataA {
		data[i] -= val
	}
	return v
}

func (v Vector) Mul(a Vector) Vector {
	var (
		data  = v.RawVector().Data
		dataA = a.RawVector().Data
	)
	for i, val := range dataA {
		data[i] *= val
	}
	return v
}

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) POW(p int) Vector {
	var (
		data = v.RawVector().Data
	)
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return v
}

func (v Vector) Min() (min float64) {
	var (
		data = v.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (v Vector) Sum() (sum float64) {
	for _, val := range v.RawVector().Data {
		sum += val
	}
	return
}

// Dot returns the inner product with a.
func (v Vector) Dot(a Vector) (dot float64) {
	var (
		data  = v.RawVector().Data
		dataA = a.RawVector().Data
	)
	for i, val := range data {
		dot += val * dataA[i]
	}
	return
}

// Outer forms the nr x nc rank-one matrix v a^T. Does not change receiver.
func (v Vector) Outer(a Vector) (R Matrix) {
	var (
		nr, nc = v.Len(), a.Len()
		data   = v.RawVector().Data
		dataA  = a.RawVector().Data
	)
	R = NewMatrix(nr, nc)
	dataR := R.RawMatrix().Data
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			dataR[i*nc+j] = data[i] * dataA[j]
		}
	}
	return
}

func (v Vector) SubsetIndex(I Index) (R Vector) { // Does not change receiver
	var (
		data = v.RawVector().Data
	)
	R = NewVector(len(I))
	dataR := R.RawVector().Data
	for i, ind := range I {
		dataR[i] = data[ind]
	}
	return
}

func (v Vector) Concat(a Vector) (R Vector) { // Does not change receiver
	var (
		data  = v.RawVector().Data
		dataA = a.RawVector().Data
	)
	R = NewVector(len(data) + len(dataA))
	dataR := R.RawVector().Data
	copy(dataR, data)
	copy(dataR[len(data):], dataA)
	return
}

func (v Vector) ToIndex() (I Index) {
	var (
		data = v.RawVector().Data
	)
	I = make(Index, len(data))
	for i, val := range data {
		I[i] = int(val)
	}
	return
}

func (v Vector) Find(op EvalOp, target float64, abs bool) (I Index) {
	var (
		data = v.RawVector().Data
	)
	for i, val := range data {
		if abs && val < 0 {
			val = -val
		}
		var hit bool
		switch op {
		case Equal:
			hit = val == target
		case Less:
			hit = val < target
		case LessOrEqual:
			hit = val <= target
		case Greater:
			hit = val > target
		case GreaterOrEqual:
			hit = val >= target
		}
		if hit {
			I = append(I, i)
		}
	}
	return
}
