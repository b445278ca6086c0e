package cli

import (
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/zwilder/tsp/pkg/tsp"
)

// demoCommand creates the demo command.
func (c *CLI) demoCommand() *cobra.Command {
	var (
		inst  instanceFlags
		start int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Step through a solved tour in the terminal",
		Long: `Demo solves an instance and opens an interactive view of the
cost matrix. Each keypress advances one leg of the optimal tour,
highlighting the matrix cells the solver chose.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, name, err := inst.load()
			if err != nil {
				return err
			}

			exact, err := tsp.SolveHeldKarp(m, start)
			if err != nil {
				return err
			}
			greedy, err := tsp.SolveNearestNeighbor(m, start)
			if err != nil {
				return err
			}

			model := newDemoModel(name, m, exact, greedy)
			p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	inst.register(cmd)
	cmd.Flags().IntVarP(&start, "start", "s", 0, "start node")

	return cmd
}
