package params

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"

	"github.com/dgwave/dgwave/types"
)

// Parameters obtained from the YAML input file
type RunParameters struct {
	Title           string  `yaml:"Title"`
	CFL             float64 `yaml:"CFL"`
	PolynomialOrder int     `yaml:"PolynomialOrder"`
	CellCount       int     `yaml:"CellCount"`
	FinalTime       float64 `yaml:"FinalTime"`
	XMin            float64 `yaml:"XMin"`
	XMax            float64 `yaml:"XMax"`
	TimeStepper     string  `yaml:"TimeStepper"`
	Gravity         float64 `yaml:"Gravity"`
	Manning         float64 `yaml:"Manning"`
	// InitialDepth and InitialDischarge set a uniform channel state.
	InitialDepth     float64 `yaml:"InitialDepth"`
	InitialDischarge float64 `yaml:"InitialDischarge"`
	// BumpHeight/BumpCenter/BumpWidth describe an optional Gaussian bed
	// hump; zero height means a flat bed.
	BumpHeight float64 `yaml:"BumpHeight"`
	BumpCenter float64 `yaml:"BumpCenter"`
	BumpWidth  float64 `yaml:"BumpWidth"`
}

// Defaults are the baseline channel run, overridden field by field when a
// parameter file is parsed over them.
func Defaults() *RunParameters {
	return &RunParameters{
		Title:            "Channel",
		CFL:              0.5,
		PolynomialOrder:  3,
		CellCount:        40,
		FinalTime:        2,
		XMin:             0,
		XMax:             10,
		TimeStepper:      "SSPRK33",
		Gravity:          9.81,
		InitialDepth:     1,
		InitialDischarge: 0,
		BumpCenter:       5,
		BumpWidth:        1,
	}
}

func (rp *RunParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, rp)
}

// ParseFile reads and parses a YAML parameter file over the receiver.
func (rp *RunParameters) ParseFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ConfigErrorf("unable to read parameter file %s: %v", path, err)
	}
	return rp.Parse(data)
}

// Validate checks the cross-field constraints a YAML file can violate.
func (rp *RunParameters) Validate() error {
	switch {
	case rp.XMax <= rp.XMin:
		return types.ConfigErrorf("domain is empty: XMin = %g, XMax = %g", rp.XMin, rp.XMax)
	case rp.PolynomialOrder < 1:
		return types.ConfigErrorf("polynomial order must be at least 1, got %d", rp.PolynomialOrder)
	case rp.CellCount < 1:
		return types.ConfigErrorf("cell count must be at least 1, got %d", rp.CellCount)
	case rp.CFL <= 0:
		return types.ConfigErrorf("CFL must be positive, got %g", rp.CFL)
	case rp.FinalTime <= 0:
		return types.ConfigErrorf("final time must be positive, got %g", rp.FinalTime)
	}
	return nil
}

func (rp *RunParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", rp.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", rp.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", rp.FinalTime)
	fmt.Printf("[%d]\t\t\t\t= Polynomial Order\n", rp.PolynomialOrder)
	fmt.Printf("[%d]\t\t\t\t= Cell Count\n", rp.CellCount)
	fmt.Printf("[%s]\t\t= Time Stepper\n", rp.TimeStepper)
	fmt.Printf("[%8.5f, %8.5f]\t= Domain\n", rp.XMin, rp.XMax)
}
