package models

import (
	"time"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/dgwave/dgwave/solver"
)

// playTrajectory renders each recorded frame of a trajectory as one series
// per field, pausing graphDelay between frames when supplied.
func playTrajectory(traj *solver.Trajectory, graphDelay ...time.Duration) {
	var (
		xmin, xmax = traj.X.Min(), traj.X.Max()
		ymin, ymax = trajectoryBounds(traj)
		chart      = chart2d.NewChart2D(1024, 768, float32(xmin), float32(xmax), float32(ymin), float32(ymax))
		colorMap   = utils2.NewColorMap(-1, 1, 1)
	)
	go chart.Plot()
	xData := traj.X.Transpose().RawMatrix().Data
	for frame := 0; frame < traj.NumFrames(); frame++ {
		_, U := traj.Frame(frame)
		for m, name := range traj.FieldNames {
			color := 2*float32(m)/float32(len(traj.FieldNames)) - 1
			if err := chart.AddSeries(name, xData, U[m].Transpose().RawMatrix().Data,
				chart2d.CrossGlyph, chart2d.Dashed, colorMap.GetRGB(color)); err != nil {
				panic("unable to add graph series")
			}
		}
		if len(graphDelay) != 0 {
			time.Sleep(graphDelay[0])
		}
	}
}

func trajectoryBounds(traj *solver.Trajectory) (ymin, ymax float64) {
	first := true
	for frame := range traj.States {
		for _, Q := range traj.States[frame] {
			if first {
				ymin, ymax = Q.Min(), Q.Max()
				first = false
				continue
			}
			if v := Q.Min(); v < ymin {
				ymin = v
			}
			if v := Q.Max(); v > ymax {
				ymax = v
			}
		}
	}
	if ymin == ymax {
		ymin, ymax = ymin-1, ymax+1
	}
	return
}
