package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zwilder/tsp/pkg/matrixio"
	"github.com/zwilder/tsp/pkg/tsp"
)

// defaultRows is the classic six-city instance shown when no input is given.
var defaultRows = [][]int{
	{0, 10, 15, 30, 40, 50},
	{10, 0, 35, 25, 20, 60},
	{15, 35, 0, 10, 50, 70},
	{30, 25, 10, 0, 30, 80},
	{40, 20, 50, 30, 0, 15},
	{50, 60, 70, 80, 15, 0},
}

// instanceFlags holds the shared input selection flags for commands that
// operate on a matrix instance.
type instanceFlags struct {
	file    string
	random  int
	seed    int64
	maxCost int
}

// register adds the instance input flags to cmd.
func (f *instanceFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.file, "file", "f", "", "load instance from a TOML file")
	cmd.Flags().IntVar(&f.random, "random", 0, "generate a random instance with N nodes")
	cmd.Flags().Int64Var(&f.seed, "seed", 1, "seed for random instance generation")
	cmd.Flags().IntVar(&f.maxCost, "max-cost", defaultRandomMaxCost, "edge cost ceiling for random instances")
}

// load resolves the flags into a matrix and a display name.
// Precedence: --file, then --random, then the built-in default instance.
func (f *instanceFlags) load() (*tsp.Matrix, string, error) {
	if f.file != "" && f.random > 0 {
		return nil, "", fmt.Errorf("--file and --random are mutually exclusive")
	}
	if f.file != "" {
		inst, err := matrixio.Load(f.file)
		if err != nil {
			return nil, "", err
		}
		name := inst.Name
		if name == "" {
			name = f.file
		}
		return inst.Matrix, name, nil
	}
	if f.random > 0 {
		m, err := tsp.RandomMatrix(f.random, f.maxCost, f.seed)
		if err != nil {
			return nil, "", err
		}
		return m, fmt.Sprintf("random-%d (seed %d)", f.random, f.seed), nil
	}
	m, err := tsp.NewMatrix(defaultRows)
	if err != nil {
		return nil, "", err
	}
	return m, "six-cities", nil
}
