/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgwave/dgwave/models"
	"github.com/dgwave/dgwave/params"
	"github.com/dgwave/dgwave/swe"
)

// sweCmd represents the swe command
var sweCmd = &cobra.Command{
	Use:   "swe",
	Short: "One dimensional shallow water channel solutions",
	Long: `
Runs the shallow water equations in a channel with an optional inflow
hydrograph at the left boundary and transmissive outflow at the right,

dgwave swe `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("swe called")
		rp := params.Defaults()
		if pf, _ := cmd.Flags().GetString("paramFile"); len(pf) != 0 {
			if err := rp.ParseFile(pf); err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
		}
		applyFlags(cmd, rp)
		if err := rp.Validate(); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		rp.Print()

		defer startProfile(cmd)()
		graph, _ := cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		csvFile, _ := cmd.Flags().GetString("csv")
		peak, _ := cmd.Flags().GetFloat64("peakDischarge")
		if err := runSWE(rp, peak, graph, time.Duration(dr)*time.Millisecond, csvFile); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sweCmd)
	sweCmd.Flags().IntP("k", "k", 0, "Number of elements in model")
	sweCmd.Flags().IntP("n", "n", 0, "polynomial degree")
	sweCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	sweCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	sweCmd.Flags().Float64("CFL", 0, "CFL - increase for speedup, decrease for stability")
	sweCmd.Flags().Float64("finalTime", 0, "FinalTime - the target end time for the sim")
	sweCmd.Flags().Float64("peakDischarge", 0, "peak of the triangular inflow hydrograph, 0 disables inflow")
	sweCmd.Flags().StringP("paramFile", "I", "", "YAML file for input parameters like:\n\t- CFL\n\t- PolynomialOrder")
	sweCmd.Flags().StringP("csv", "o", "", "write the solution trajectory to a CSV file")
}

func applyFlags(cmd *cobra.Command, rp *params.RunParameters) {
	if k, _ := cmd.Flags().GetInt("k"); k != 0 {
		rp.CellCount = k
	}
	if n, _ := cmd.Flags().GetInt("n"); n != 0 {
		rp.PolynomialOrder = n
	}
	if cfl, _ := cmd.Flags().GetFloat64("CFL"); cfl != 0 {
		rp.CFL = cfl
	}
	if ft, _ := cmd.Flags().GetFloat64("finalTime"); ft != 0 {
		rp.FinalTime = ft
	}
}

func runSWE(rp *params.RunParameters, peak float64, graph bool, delay time.Duration, csvFile string) error {
	p := swe.Params{Gravity: rp.Gravity, Manning: rp.Manning}
	if rp.BumpHeight != 0 {
		p.Bathymetry = swe.Bump(rp.BumpHeight, rp.BumpCenter, rp.BumpWidth)
	}
	ic := func(x float64) []float64 {
		h := rp.InitialDepth
		if p.Bathymetry != nil {
			b, _ := p.Bathymetry(x)
			h -= b
		}
		return []float64{h, rp.InitialDischarge}
	}
	// Triangular hydrograph rising from the initial discharge to the peak
	// at FinalTime/4 and receding by FinalTime/2.
	var inflow func(t float64) float64
	if peak != 0 {
		q0, tp := rp.InitialDischarge, rp.FinalTime/4
		inflow = func(t float64) float64 {
			switch {
			case t < tp:
				return q0 + (peak-q0)*t/tp
			case t < 2*tp:
				return peak + (q0-peak)*(t-tp)/tp
			default:
				return q0
			}
		}
	}
	mdl, err := models.NewShallowWater1D(p, rp.XMin, rp.XMax,
		rp.PolynomialOrder, rp.CellCount, rp.CFL, rp.FinalTime, ic, inflow)
	if err != nil {
		return err
	}
	mdl.Method = rp.TimeStepper
	if len(csvFile) != 0 {
		traj, err := mdl.Solve()
		if err != nil {
			return err
		}
		return models.WriteCSVFile(csvFile, traj)
	}
	return mdl.Run(graph, delay)
}
