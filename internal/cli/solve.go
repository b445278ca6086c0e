package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zwilder/tsp/pkg/cache"
	"github.com/zwilder/tsp/pkg/render"
	"github.com/zwilder/tsp/pkg/tsp"
)

// Algorithm names accepted by --algorithm.
const (
	algoHeldKarp        = "held-karp"
	algoNearestNeighbor = "nearest-neighbor"
)

// parseAlgorithm validates an algorithm name, accepting short aliases.
func parseAlgorithm(s string) (string, error) {
	switch s {
	case "", algoHeldKarp, "hk", "exact":
		return algoHeldKarp, nil
	case algoNearestNeighbor, "nn", "greedy":
		return algoNearestNeighbor, nil
	}
	return "", fmt.Errorf("unknown algorithm %q (want %s or %s)", s, algoHeldKarp, algoNearestNeighbor)
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	var (
		inst     instanceFlags
		algoFlag string
		start    int
		maxNodes int
		noCache  bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Compute a tour for a matrix instance",
		Long: `Solve computes a closed tour over a cost matrix instance.

By default the Held-Karp dynamic program finds the optimal tour; pass
--algorithm nearest-neighbor for the fast greedy approximation. Exact
results are cached by matrix content so repeated solves are instant.`,
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

			tour, cached, err := solveWithCache(cmd.Context(), store, m, start, algo, maxNodes)
			if err != nil {
				return err
			}

			if asJSON {
				return printTourJSON(os.Stdout, name, algo, start, tour, cached)
			}

			printSuccess("Solved %s with %s", name, algo)
			printTourStats(m.Size(), tour.Cost, cached)
			printNewline()
			printKeyValue("Tour", render.PathString(tour.Path))
			printKeyValue("Cost", fmt.Sprintf("%d", tour.Cost))

			printNewline()
			switch algo {
			case algoNearestNeighbor:
				printDetail("nearest-neighbor is a heuristic; the tour may not be optimal")
			case algoHeldKarp:
				// Show how far off the cheap heuristic would have been.
				if greedy, err := tsp.SolveNearestNeighbor(m, start); err == nil && tour.Cost > 0 {
					overhead := float64(greedy.Cost-tour.Cost) / float64(tour.Cost) * 100
					printDetail("nearest-neighbor would cost %d (+%.1f%%)", greedy.Cost, overhead)
				}
			}
			return nil
		},
	}

	inst.register(cmd)
	cmd.Flags().StringVarP(&algoFlag, "algorithm", "a", algoHeldKarp, "solver to use (held-karp, nearest-neighbor)")
	cmd.Flags().IntVarP(&start, "start", "s", 0, "start node")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "node ceiling for the exact solver (0 = default)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the solved-tour cache")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")

	return cmd
}

// solveWithCache runs the selected solver, consulting the cache for exact
// solves. The greedy heuristic is cheaper than the cache round trip and is
// always computed fresh.
func solveWithCache(ctx context.Context, store cache.Cache, m *tsp.Matrix, start int, algo string, maxNodes int) (tsp.Tour, bool, error) {
	logger := loggerFromContext(ctx)

	if algo == algoNearestNeighbor {
		tour, err := tsp.SolveNearestNeighbor(m, start)
		return tour, false, err
	}

	key := cache.TourKey(cache.Hash(m.Bytes()), start, algo)
	if data, hit, err := store.Get(ctx, key); err == nil && hit {
		var ct struct {
			Path []int `json:"path"`
			Cost int   `json:"cost"`
		}
		if err := json.Unmarshal(data, &ct); err == nil {
			logger.Debug("cache hit", "key", key)
			return tsp.Tour{Path: ct.Path, Cost: ct.Cost}, true, nil
		}
	}

	prog := newProgress(logger)
	spin := newSpinner(ctx, fmt.Sprintf("Solving %d nodes...", m.Size()))
	spin.Start()

	var opts []tsp.Option
	if maxNodes > 0 {
		opts = append(opts, tsp.WithMaxNodes(maxNodes))
	}
	tour, err := tsp.SolveHeldKarp(m, start, opts...)
	spin.Stop()
	if err != nil {
		return tsp.Tour{}, false, err
	}
	prog.done(fmt.Sprintf("Solved %d nodes", m.Size()))

	if data, err := json.Marshal(struct {
		Path []int `json:"path"`
		Cost int   `json:"cost"`
	}{tour.Path, tour.Cost}); err == nil {
		if err := store.Set(ctx, key, data, 0); err != nil {
			logger.Warn("failed to cache tour", "error", err)
		}
	}

	return tour, false, nil
}

// printTourJSON writes the solve result as a single JSON object.
func printTourJSON(w *os.File, name, algo string, start int, tour tsp.Tour, cached bool) error {
	labels := make([]string, len(tour.Path))
	for i, k := range tour.Path {
		labels[i] = render.NodeLabel(k)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Instance  string   `json:"instance"`
		Algorithm string   `json:"algorithm"`
		Start     int      `json:"start"`
		Path      []int    `json:"path"`
		Labels    []string `json:"labels"`
		Cost      int      `json:"cost"`
		Cached    bool     `json:"cached"`
	}{name, algo, start, tour.Path, labels, tour.Cost, cached})
}
