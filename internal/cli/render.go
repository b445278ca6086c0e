package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zwilder/tsp/pkg/render"
)

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		inst     instanceFlags
		algoFlag string
		start    int
		out      string
		formats  string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a solved tour as DOT, SVG, or PNG",
		Long: `Render solves an instance and draws the resulting tour as a
Graphviz graph. Use --format with a comma-separated list to emit several
formats in one run.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := parseAlgorithm(algoFlag)
			if err != nil {
				return err
			}

			m, name, err := inst.load()
			if err != nil {
				return err
			}

			store, err := newCache(cmd, noCache, "")
			if err != nil {
				return err
			}
			defer store.Close()

			tour, cached, err := solveWithCache(cmd.Context(), store, m, start, algo, 0)
			if err != nil {
				return err
			}

			dot := render.ToDOT(m, tour)

			base := out
			if base == "" {
				base = "tour"
			}
			base = strings.TrimSuffix(base, filepath.Ext(base))

			printSuccess("Rendered %s with %s", name, algo)
			printTourStats(m.Size(), tour.Cost, cached)
			printNewline()

			for _, format := range strings.Split(formats, ",") {
				format = strings.TrimSpace(format)
				path := base + "." + format

				var data []byte
				switch format {
				case "dot":
					data = []byte(dot)
				case "svg":
					data, err = render.RenderSVG(dot)
				case "png":
					data, err = render.RenderPNG(dot)
				default:
					return fmt.Errorf("unknown format %q (want dot, svg, or png)", format)
				}
				if err != nil {
					return fmt.Errorf("render %s: %w", format, err)
				}

				if err := os.WriteFile(path, data, 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
				printFile(path)
			}
			return nil
		},
	}

	inst.register(cmd)
	cmd.Flags().StringVarP(&algoFlag, "algorithm", "a", algoHeldKarp, "solver to use (held-karp, nearest-neighbor)")
	cmd.Flags().IntVarP(&start, "start", "s", 0, "start node")
	cmd.Flags().StringVarP(&out, "out", "o", "tour", "output path (extension is replaced per format)")
	cmd.Flags().StringVar(&formats, "format", "svg", "comma-separated output formats (dot, svg, png)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the solved-tour cache")

	return cmd
}
