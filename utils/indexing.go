package utils

// Index is a list of node or face locations, used to gather and scatter
// trace values between elemental matrices.
type Index []int

func NewIndex(n int) (I Index) {
	return make(Index, n)
}

// NewRange returns the inclusive integer range [rmin, rmax].
func NewRange(rmin, rmax int) (I Index) {
	I = make(Index, rmax-rmin+1)
	for i := range I {
		I[i] = i + rmin
	}
	return
}

func (I Index) Add(val int) (R Index) { // Does not change receiver
	R = make(Index, len(I))
	for i, ival := range I {
		R[i] = ival + val
	}
	return
}

func (I Index) Subset(J Index) (R Index) {
	R = make(Index, len(J))
	for j, val := range J {
		R[j] = I[val]
	}
	return
}

func (I Index) Apply(f func(val int) int) (R Index) {
	R = make(Index, len(I))
	for i, val := range I {
		R[i] = f(val)
	}
	return
}
