package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/zwilder/tsp/internal/server"
)

// serveCommand creates the serve command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redis    string
		maxNodes int
		cacheTTL time.Duration
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP solve API",
		Long: `Serve exposes the solver over HTTP.

POST /api/v1/solve accepts a JSON cost matrix and returns the computed
tour; GET /healthz reports liveness. Solved tours are cached in Redis
when --redis (or TSP_REDIS_ADDR) is set, otherwise in the local file
cache.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if redis == "" {
				redis = os.Getenv("TSP_REDIS_ADDR")
			}

			store, err := newCache(cmd, noCache, redis)
			if err != nil {
				return err
			}
			defer store.Close()

			srv := server.New(c.Logger, store, server.Config{
				MaxNodes: maxNodes,
				CacheTTL: cacheTTL,
			})

			httpSrv := &http.Server{
				Addr:              addr,
				Handler:           srv.Router(),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				c.Logger.Info("listening", "addr", addr)
				errCh <- httpSrv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				return err
			case <-cmd.Context().Done():
			}

			c.Logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				return err
			}
			if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().StringVar(&redis, "redis", "", "redis address for the shared tour cache (falls back to TSP_REDIS_ADDR)")
	cmd.Flags().IntVar(&maxNodes, "max-nodes", 0, "node ceiling for the exact solver (0 = default)")
	cmd.Flags().DurationVar(&cacheTTL, "cache-ttl", 0, "lifetime of cached tours (0 = keep forever)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the solved-tour cache")

	return cmd
}
