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
	"math"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dgwave/dgwave/models"
)

// advectCmd represents the advect command
var advectCmd = &cobra.Command{
	Use:   "advect",
	Short: "One dimensional linear advection of a sine wave",
	Long: `
Advects a sine wave through [0, 2pi] with the exact solution prescribed at
the inflow boundary, the standard smoke test for the solver,

dgwave advect `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("advect called")
		a, _ := cmd.Flags().GetFloat64("speed")
		cfl, _ := cmd.Flags().GetFloat64("CFL")
		ft, _ := cmd.Flags().GetFloat64("finalTime")
		n, _ := cmd.Flags().GetInt("n")
		k, _ := cmd.Flags().GetInt("k")
		graph, _ := cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		csvFile, _ := cmd.Flags().GetString("csv")

		defer startProfile(cmd)()
		mdl, err := models.NewAdvection1D(a, cfl, ft, n, k)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		mdl.Method, _ = cmd.Flags().GetString("stepper")
		if len(csvFile) != 0 {
			traj, err := mdl.Solve()
			if err == nil {
				err = models.WriteCSVFile(csvFile, traj)
			}
			if err != nil {
				fmt.Printf("error: %s\n", err.Error())
				os.Exit(1)
			}
			return
		}
		if err = mdl.Run(graph, time.Duration(dr)*time.Millisecond); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(advectCmd)
	advectCmd.Flags().IntP("k", "k", 10, "Number of elements in model")
	advectCmd.Flags().IntP("n", "n", 3, "polynomial degree")
	advectCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	advectCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	advectCmd.Flags().Float64("speed", 2*math.Pi, "advection speed")
	advectCmd.Flags().Float64("CFL", 1, "CFL - increase for speedup, decrease for stability")
	advectCmd.Flags().Float64("finalTime", 10, "FinalTime - the target end time for the sim")
	advectCmd.Flags().String("stepper", "SSPRK33", "time integration scheme: SSPRK33 or LSRK4")
	advectCmd.Flags().StringP("csv", "o", "", "write the solution trajectory to a CSV file")
}
