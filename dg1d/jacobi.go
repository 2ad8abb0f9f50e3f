package dg1d

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/dgwave/dgwave/utils"
)

// JacobiGQ computes the N+1 Gauss quadrature nodes and weights for the
// Jacobi polynomial family (alpha, beta) via the Golub-Welsch symmetric
// tridiagonal eigenvalue problem.
func JacobiGQ(alpha, beta float64, N int) (X, W utils.Vector) {
	if N == 0 {
		x := []float64{-(alpha - beta) / (alpha + beta + 2.)}
		w := []float64{2.}
		return utils.NewVector(1, x), utils.NewVector(1, w)
	}

	h1 := make([]float64, N+1)
	for i := range h1 {
		h1[i] = 2*float64(i) + alpha + beta
	}

	JJ := mat.NewSymDense(N+1, nil)
	fac := -.5 * (alpha*alpha - beta*beta)
	for i := 0; i < N+1; i++ {
		d := fac / (h1[i] * (h1[i] + 2.))
		if i == 0 && alpha+beta < 10*eps {
			d = 0.
		}
		JJ.SetSym(i, i, d)
	}
	for i := 0; i < N; i++ {
		ip1 := float64(i + 1)
		d := 2. / (h1[i] + 2.)
		d *= math.Sqrt(ip1 * (ip1 + alpha + beta) * (ip1 + alpha) * (ip1 + beta) / ((h1[i] + 1.) * (h1[i] + 3.)))
		JJ.SetSym(i, i+1, d)
	}

	var eig mat.EigenSym
	if ok := eig.Factorize(JJ, true); !ok {
		panic("eigenvalue decomposition failed")
	}
	x := eig.Values(nil)
	X = utils.NewVector(N+1, x)

	VVr := mat.NewDense(N+1, N+1, nil)
	eig.VectorsTo(VVr)
	w := make([]float64, N+1)
	for j := range w {
		v0 := VVr.At(0, j)
		w[j] = v0 * v0 * gamma0(alpha, beta)
	}
	W = utils.NewVector(N+1, w)
	return
}

// JacobiGL computes the N+1 Gauss-Lobatto nodes for the (alpha, beta)
// Jacobi family: both endpoints plus the interior Gauss nodes of the
// (alpha+1, beta+1) family. Endpoint nodes are required so element
// boundary traces coincide with nodal values.
func JacobiGL(alpha, beta float64, N int) (X utils.Vector) {
	x := make([]float64, N+1)
	x[0], x[N] = -1, 1
	if N == 1 {
		return utils.NewVector(2, x)
	}
	xint, _ := JacobiGQ(alpha+1, beta+1, N-2)
	copy(x[1:N], xint.RawVector().Data)
	return utils.NewVector(N+1, x)
}

// JacobiP evaluates the orthonormal Jacobi polynomial of order N at the
// points r, using the standard three-term recurrence.
func JacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	var (
		nc = r.Len()
		ab = alpha + beta
	)
	rg := 1. / math.Sqrt(gamma0(alpha, beta))
	p = utils.ConstArray(nc, rg)
	if N == 0 {
		return
	}

	rg1 := 1. / math.Sqrt(gamma1(alpha, beta))
	p1 := make([]float64, nc)
	for i := 0; i < nc; i++ {
		p1[i] = rg1 * ((ab+2.)*r.AtVec(i)/2. + (alpha-beta)/2.)
	}
	if N == 1 {
		return p1
	}

	aold := 2. / (ab + 2.) * math.Sqrt((alpha+1.)*(beta+1.)/(ab+3.))
	pm2, pm1 := p, p1
	for i := 1; i <= N-1; i++ {
		fi := float64(i)
		h1 := 2.*fi + ab
		anew := 2. / (h1 + 2.) * math.Sqrt((fi+1.)*(fi+1.+ab)*(fi+1.+alpha)*(fi+1.+beta)/((h1+1.)*(h1+3.)))
		bnew := -(alpha*alpha - beta*beta) / (h1 * (h1 + 2.))
		pn := make([]float64, nc)
		for j := 0; j < nc; j++ {
			pn[j] = ((r.AtVec(j)-bnew)*pm1[j] - aold*pm2[j]) / anew
		}
		aold = anew
		pm2, pm1 = pm1, pn
	}
	return pm1
}

// GradJacobiP evaluates the derivative of the orthonormal Jacobi
// polynomial of order N at the points r.
func GradJacobiP(r utils.Vector, alpha, beta float64, N int) (p []float64) {
	if N == 0 {
		return make([]float64, r.Len())
	}
	p = JacobiP(r, alpha+1, beta+1, N-1)
	fN := float64(N)
	fac := math.Sqrt(fN * (fN + alpha + beta + 1))
	for i, val := range p {
		p[i] = val * fac
	}
	return
}

// Vandermonde1D builds the generalized Vandermonde matrix V[i,j] =
// P_j(r_i) in the orthonormal Legendre basis.
func Vandermonde1D(N int, R utils.Vector) (V utils.Matrix) {
	V = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		V.SetCol(j, JacobiP(R, 0, 0, j))
	}
	return
}

// GradVandermonde1D builds the derivative Vandermonde matrix Vr[i,j] =
// P'_j(r_i).
func GradVandermonde1D(R utils.Vector, N int) (Vr utils.Matrix) {
	Vr = utils.NewMatrix(R.Len(), N+1)
	for j := 0; j < N+1; j++ {
		Vr.SetCol(j, GradJacobiP(R, 0, 0, j))
	}
	return
}

const eps = 1.e-16

func gamma0(alpha, beta float64) float64 {
	ab1 := alpha + beta + 1.
	a1 := alpha + 1.
	b1 := beta + 1.
	return math.Gamma(a1) * math.Gamma(b1) * math.Pow(2, ab1) / ab1 / math.Gamma(ab1)
}

func gamma1(alpha, beta float64) float64 {
	ab := alpha + beta
	a1 := alpha + 1.
	b1 := beta + 1.
	return a1 * b1 * gamma0(alpha, beta) / (ab + 3.)
}
