package dg1d

import (
	"math"

	"github.com/james-bowman/sparse"

	"github.com/dgwave/dgwave/types"
	"github.com/dgwave/dgwave/utils"
)

// ReferenceElement holds the nodal operators on the reference interval
// [-1,1] for a fixed polynomial degree. It is built once per run and is
// immutable thereafter.
type ReferenceElement struct {
	N, Np   int          // Polynomial degree, nodes per element (N+1)
	R, W    utils.Vector // Gauss-Lobatto nodes and quadrature weights
	V, Vinv utils.Matrix // Vandermonde matrix and its inverse
	Dr      utils.Matrix // Nodal differentiation matrix
	M       utils.Matrix // Reference mass matrix (V V^T)^-1
	LIFT    utils.Matrix // Inverse-mass surface lift operator
}

// NewReferenceElement builds the quadrature nodes, weights and the
// differentiation, mass and lift operators for polynomial degree N. The
// Gauss-Lobatto rule is exact for polynomials of degree <= 2N-1 and
// includes both endpoints, which the interface flux coupling requires.
func NewReferenceElement(N int) (ref *ReferenceElement, err error) {
	if N < 1 {
		return nil, types.ConfigErrorf("polynomial degree must be at least 1, got %d", N)
	}
	ref = &ReferenceElement{
		N:  N,
		Np: N + 1,
	}
	ref.R = JacobiGL(0, 0, N)
	ref.V = Vandermonde1D(N, ref.R)
	if ref.Vinv, err = ref.V.Inverse(); err != nil {
		return nil, types.ConfigErrorf("unable to invert Vandermonde matrix: %v", err)
	}
	ref.Dr = GradVandermonde1D(ref.R, N).Mul(ref.Vinv)
	if ref.M, err = ref.V.Mul(ref.V.Transpose()).Inverse(); err != nil {
		return nil, types.ConfigErrorf("unable to invert mass matrix: %v", err)
	}
	// Row sums of M are the integrals of the Lagrange basis functions,
	// which are the Gauss-Lobatto quadrature weights.
	ref.W = ref.M.SumRows()
	ref.LIFT = lift1D(ref.V, ref.Np)
	return
}

// lift1D builds LIFT = V V^T E, the surface integral operator premultiplied
// by the inverse mass matrix. E selects the two endpoint nodes.
func lift1D(V utils.Matrix, Np int) (LIFT utils.Matrix) {
	Emat := utils.NewMatrix(Np, 2)
	Emat.Set(0, 0, 1)
	Emat.Set(Np-1, 1, 1)
	LIFT = V.Mul(V.Transpose()).Mul(Emat)
	return
}

// SimpleMesh1D builds a uniform mesh of K elements on [xmin, xmax]:
// vertex coordinates plus the element-to-vertex table.
func SimpleMesh1D(xmin, xmax float64, K int) (VX utils.Vector, EToV utils.Matrix) {
	VX = utils.NewVector(K + 1)
	h := (xmax - xmin) / float64(K)
	dataVX := VX.RawVector().Data
	for i := range dataVX {
		dataVX[i] = xmin + h*float64(i)
	}
	EToV = utils.NewMatrix(K, 2)
	for k := 0; k < K; k++ {
		EToV.Set(k, 0, float64(k))
		EToV.Set(k, 1, float64(k+1))
	}
	return
}

// Elements1D is the assembled mesh of polynomial elements: physical node
// coordinates, metric terms, connectivity and the face trace maps the
// solver gathers interface states through.
type Elements1D struct {
	K, Np, Nfp, NFaces int
	Ref                *ReferenceElement
	VX                 utils.Vector
	FMask              utils.Index
	EToV, EToE, EToF   utils.Matrix
	X                  utils.Matrix // Physical node coordinates, Np x K
	Dr, LIFT           utils.Matrix
	Rx, FScale, NX     utils.Matrix
	VmapM, VmapP       utils.Index // Interior/exterior trace maps per face
	MapB, VmapB        utils.Index
	MapI, MapO         utils.Index // Face indices of the domain inflow/outflow boundary
	VmapI, VmapO       utils.Index
}

// NewElements1D builds the element set for polynomial degree N on the mesh
// (VX, EToV). Fails with a ConfigurationError on an invalid degree or an
// empty mesh.
func NewElements1D(N int, VX utils.Vector, EToV utils.Matrix) (el *Elements1D, err error) {
	var ref *ReferenceElement
	if ref, err = NewReferenceElement(N); err != nil {
		return
	}
	K, _ := EToV.Dims()
	if K < 1 {
		return nil, types.ConfigErrorf("mesh must contain at least one element, got %d", K)
	}
	el = &Elements1D{
		K:      K,
		Np:     ref.Np,
		Nfp:    1,
		NFaces: 2,
		Ref:    ref,
		VX:     VX,
		EToV:   EToV,
		Dr:     ref.Dr,
		LIFT:   ref.LIFT,
	}
	el.startup()
	return
}

func (el *Elements1D) startup() {
	va := el.EToV.Col(0).ToIndex()
	vb := el.EToV.Col(1).ToIndex()
	xa := el.VX.SubsetIndex(va)
	sT := el.VX.SubsetIndex(vb).Subtract(xa) // Element widths

	// x = VX(va) + 0.5*(r+1)*(VX(vb)-VX(va))
	ones := utils.NewVectorConstant(el.Np, 1)
	el.X = el.Ref.R.Copy().AddScalar(1).Scale(0.5).Outer(sT).Add(ones.Outer(xa))

	J := el.Dr.Mul(el.X)
	el.Rx = J.Copy().POW(-1)

	el.FMask = utils.Index{0, el.Np - 1}
	el.FScale = J.SliceRows(el.FMask).POW(-1)
	el.NX = normals1D(el.NFaces, el.K)

	el.connect()
	el.buildMaps()
}

// normals1D builds the outward normal at each face node: -1 on the left
// face, +1 on the right.
func normals1D(NFaces, K int) (NX utils.Matrix) {
	NX = utils.NewMatrix(NFaces, K)
	for k := 0; k < K; k++ {
		NX.Set(0, k, -1)
		NX.Set(1, k, 1)
	}
	return
}

// connect derives element-to-element and element-to-face connectivity from
// the face-to-vertex incidence: two distinct faces sharing a vertex are the
// two sides of one interface. Boundary faces stay self-connected.
func (el *Elements1D) connect() {
	var (
		K          = el.K
		NFaces     = el.NFaces
		Nv         = K + 1
		totalFaces = NFaces * K
	)
	FToV := sparse.NewDOK(totalFaces, Nv)
	var sk int
	for k := 0; k < K; k++ {
		for f := 0; f < NFaces; f++ {
			FToV.Set(sk, int(el.EToV.At(k, f)), 1)
			sk++
		}
	}
	csr := FToV.ToCSR()
	FToF := sparse.NewCSR(totalFaces, totalFaces, nil, nil, nil)
	FToF.Mul(csr, csr.T())

	el.EToE = utils.NewMatrix(K, NFaces)
	el.EToF = utils.NewMatrix(K, NFaces)
	for k := 0; k < K; k++ {
		for f := 0; f < NFaces; f++ {
			el.EToE.Set(k, f, float64(k))
			el.EToF.Set(k, f, float64(f))
		}
	}
	for i := 0; i < totalFaces; i++ {
		for j := 0; j < totalFaces; j++ {
			if i != j && FToF.At(i, j) == 1 {
				k1, f1 := i/NFaces, i%NFaces
				k2, f2 := j/NFaces, j%NFaces
				el.EToE.Set(k1, f1, float64(k2))
				el.EToF.Set(k1, f1, float64(f2))
			}
		}
	}
}

// buildMaps numbers the face trace nodes: VmapM addresses each face's
// interior trace in the Np x K nodal layout, VmapP the neighboring
// element's matching trace. On boundary faces the two coincide.
func (el *Elements1D) buildMaps() {
	NF := el.Nfp * el.NFaces
	el.VmapM = utils.NewIndex(NF * el.K)
	el.VmapP = utils.NewIndex(NF * el.K)
	for k := 0; k < el.K; k++ {
		for f := 0; f < el.NFaces; f++ {
			fi := f + NF*k
			el.VmapM[fi] = el.FMask[f] + el.Np*k
			k2 := int(el.EToE.At(k, f))
			f2 := int(el.EToF.At(k, f))
			el.VmapP[fi] = el.FMask[f2] + el.Np*k2
		}
	}

	for fi := range el.VmapM {
		if el.VmapP[fi] == el.VmapM[fi] {
			el.MapB = append(el.MapB, fi)
			el.VmapB = append(el.VmapB, el.VmapM[fi])
		}
	}
	el.MapI = utils.Index{0}
	el.MapO = utils.Index{NF*el.K - 1}
	el.VmapI = utils.Index{0}
	el.VmapO = utils.Index{el.Np*el.K - 1}
}

// MinSpacing is the smallest distance between adjacent nodes, the mesh
// scale entering the CFL time-step estimate.
func (el *Elements1D) MinSpacing() float64 {
	return el.X.Row(1).Subtract(el.X.Row(0)).Apply(math.Abs).Min()
}
