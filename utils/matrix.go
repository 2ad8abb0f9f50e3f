package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/lapack/lapack64"
	"gonum.org/v1/gonum/mat"
)

// Matrix wraps a gonum dense matrix with chainable methods. Methods that
// return a new Matrix say so; all others modify the receiver's storage.
type Matrix struct {
	M *mat.Dense
}

func NewMatrix(nr, nc int, dataO ...[]float64) (R Matrix) {
	var data []float64
	if len(dataO) != 0 {
		data = dataO[0]
		if len(data) != nr*nc {
			panic(fmt.Errorf("NewMatrix: nr,nc = %d,%d but len(data) = %d", nr, nc, len(data)))
		}
	} else {
		data = make([]float64, nr*nc)
	}
	R = Matrix{mat.NewDense(nr, nc, data)}
	return
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (m Matrix) Dims() (r, c int)          { return m.M.Dims() }
func (m Matrix) At(i, j int) float64       { return m.M.At(i, j) }
func (m Matrix) T() mat.Matrix             { return m.M.T() }
func (m Matrix) RawMatrix() blas64.General { return m.M.RawMatrix() }

func (m Matrix) Copy() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(nr, nc)
	copy(R.RawMatrix().Data, m.RawMatrix().Data)
	return
}

func (m Matrix) Transpose() (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
	)
	R = NewMatrix(nc, nr)
	dataR := R.RawMatrix().Data
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			dataR[j*nr+i] = data[i*nc+j]
		}
	}
	return
}

func (m Matrix) Mul(A Matrix) (R Matrix) { // Does not change receiver
	var (
		nrM, _ = m.Dims()
		_, ncA = A.Dims()
	)
	R = NewMatrix(nrM, ncA)
	R.M.Mul(m.M, A.M)
	return
}

func (m Matrix) Set(i, j int, val float64) Matrix {
	m.M.Set(i, j, val)
	return m
}

func (m Matrix) SetCol(j int, data []float64) Matrix {
	m.M.SetCol(j, data)
	return m
}

func (m Matrix) Add(A Matrix) Matrix {
	var (
		data  = m.RawMatrix().Data
		dataA = A.RawMatrix().Data
	)
	for i, val := range dataA {
		data[i] += val
	}
	return m
}

func (m Matrix) Subtract(A Matrix) Matrix {
	var (
		data  = m.RawMatrix().Data
		dataA = A.RawMatrix().Data
	)
	for i, val := range dataA {
		data[i] -= val
	}
	return m
}

func (m Matrix) Scale(a float64) Matrix {
	var (
		data = m.RawMatrix().Data
	)
	for i := range data {
		data[i] *= a
	}
	return m
}

func (m Matrix) AddScalar(a float64) Matrix {
	var (
		data = m.RawMatrix().Data
	)
	for i := range data {
		data[i] += a
	}
	return m
}

func (m Matrix) ElMul(A Matrix) Matrix {
	var (
		data  = m.RawMatrix().Data
		dataA = A.RawMatrix().Data
	)
	for i, val := range dataA {
		data[i] *= val
	}
	return m
}

func (m Matrix) ElDiv(A Matrix) Matrix {
	var (
		data  = m.RawMatrix().Data
		dataA = A.RawMatrix().Data
	)
	for i, val := range dataA {
		data[i] /= val
	}
	return m
}

func (m Matrix) Apply(f func(float64) float64) Matrix {
	var (
		data = m.RawMatrix().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return m
}

func (m Matrix) Apply2(f func(float64, float64) float64, A Matrix) Matrix {
	var (
		data  = m.RawMatrix().Data
		dataA = A.RawMatrix().Data
	)
	for i, val := range data {
		data[i] = f(val, dataA[i])
	}
	return m
}

func (m Matrix) POW(p int) Matrix {
	var (
		data = m.RawMatrix().Data
	)
	for i, val := range data {
		data[i] = POW(val, p)
	}
	return m
}

// Subset gathers the nodal values addressed by I into a new nrNew x ncNew
// matrix. Indices follow the elemental convention ind = i + nr*j, node i of
// element (column) j, as do the output positions.
func (m Matrix) Subset(I Index, nrNew, ncNew int) (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
	)
	R = NewMatrix(nrNew, ncNew)
	dataR := R.RawMatrix().Data
	for pos, ind := range I {
		dataR[elementalToOffset(nrNew, ncNew, pos)] = data[elementalToOffset(nr, nc, ind)]
	}
	return
}

func (m Matrix) SubsetVector(I Index) (V Vector) { // Does not change receiver
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
	)
	V = NewVector(len(I))
	dataV := V.RawVector().Data
	for i, ind := range I {
		dataV[i] = data[elementalToOffset(nr, nc, ind)]
	}
	return
}

// AssignVector scatters the values of V into the nodal locations addressed
// by I (elemental convention).
func (m Matrix) AssignVector(I Index, V Vector) Matrix {
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
		dataV  = V.RawVector().Data
	)
	for i, ind := range I {
		data[elementalToOffset(nr, nc, ind)] = dataV[i]
	}
	return m
}

func (m Matrix) AssignScalar(I Index, val float64) Matrix {
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
	)
	for _, ind := range I {
		data[elementalToOffset(nr, nc, ind)] = val
	}
	return m
}

func (m Matrix) SliceRows(I Index) (R Matrix) { // Does not change receiver
	var (
		nr, nc = m.Dims()
	)
	R = NewMatrix(len(I), nc)
	for iNew, i := range I {
		if i < 0 || i > nr-1 {
			panic(fmt.Errorf("SliceRows: row index %d out of bounds [0,%d]", i, nr-1))
		}
		R.M.SetRow(iNew, m.M.RawRowView(i))
	}
	return
}

func (m Matrix) Row(i int) (V Vector) {
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
	)
	if i < 0 {
		i += nr
	}
	V = NewVector(nc)
	copy(V.RawVector().Data, data[i*nc:(i+1)*nc])
	return
}

func (m Matrix) Col(j int) (V Vector) {
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
	)
	if j < 0 {
		j += nc
	}
	V = NewVector(nr)
	dataV := V.RawVector().Data
	for i := 0; i < nr; i++ {
		dataV[i] = data[i*nc+j]
	}
	return
}

func (m Matrix) SumRows() (V Vector) {
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
	)
	V = NewVector(nr)
	dataV := V.RawVector().Data
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			dataV[i] += data[i*nc+j]
		}
	}
	return
}

func (m Matrix) SumCols() (V Vector) {
	var (
		nr, nc = m.Dims()
		data   = m.RawMatrix().Data
	)
	V = NewVector(nc)
	dataV := V.RawVector().Data
	for i := 0; i < nr; i++ {
		for j := 0; j < nc; j++ {
			dataV[j] += data[i*nc+j]
		}
	}
	return
}

func (m Matrix) Min() (min float64) {
	var (
		data = m.RawMatrix().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (m Matrix) Max() (max float64) {
	var (
		data = m.RawMatrix().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}

func (m Matrix) Inverse() (R Matrix, err error) {
	var (
		nr, nc = m.Dims()
	)
	R = m.Copy()
	iPiv := make([]int, nr)
	if ok := lapack64.Getrf(R.RawMatrix(), iPiv); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
		return
	}
	work := make([]float64, nr*nc)
	if ok := lapack64.Getri(R.RawMatrix(), iPiv, work, nr*nc); !ok {
		err = fmt.Errorf("unable to invert, matrix is singular")
	}
	return
}

// elementalToOffset converts an elemental index ind = i + nr*j into the
// row-major storage offset i*nc + j.
func elementalToOffset(nr, nc, ind int) int {
	j := ind / nr
	i := ind - nr*j
	return i*nc + j
}
