package solver

import (
	"github.com/dgwave/dgwave/utils"
)

// Trajectory is the recorded solution: the global state at every requested
// output time plus the mesh geometry needed to render or persist it. It is
// immutable once returned and owned by the caller.
type Trajectory struct {
	Times      []float64
	States     [][]utils.Matrix // States[frame][field] is Np x K
	X          utils.Matrix     // Physical node coordinates, Np x K
	FieldNames []string
}

// NumFrames is the number of recorded output times.
func (tr *Trajectory) NumFrames() int { return len(tr.Times) }

// Frame returns the recorded state at output index i.
func (tr *Trajectory) Frame(i int) (t float64, U []utils.Matrix) {
	return tr.Times[i], tr.States[i]
}

// Rows flattens the trajectory into (time, element, node, x, fields...)
// records, the tabular form external persistence consumes.
func (tr *Trajectory) Rows() (rows [][]float64) {
	if len(tr.States) == 0 {
		return
	}
	nr, nc := tr.X.Dims()
	nFlds := len(tr.States[0])
	for frame, t := range tr.Times {
		for k := 0; k < nc; k++ {
			for i := 0; i < nr; i++ {
				row := make([]float64, 0, 4+nFlds)
				row = append(row, t, float64(k), float64(i), tr.X.At(i, k))
				for m := 0; m < nFlds; m++ {
					row = append(row, tr.States[frame][m].At(i, k))
				}
				rows = append(rows, row)
			}
		}
	}
	return
}
