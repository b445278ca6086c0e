// Package cache stores solved tours keyed by the instance that produced
// them. Held-Karp runs are deterministic and expensive, so a repeated
// solve of the same matrix/start/algorithm triple can be answered from
// the cache instead of refilling the exponential tables.
//
// Three backends are provided: FileCache for the CLI (XDG cache dir),
// RedisCache for shared server deployments, and NullCache to disable
// caching entirely.
package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache is the storage interface shared by all backends.
// Get reports a miss with ok=false rather than an error; errors are
// reserved for backend failures.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// TourKey builds the cache key for a solved tour. matrixHash should be
// Hash of the matrix's canonical byte encoding; algo names the solver
// ("held-karp" or "nearest-neighbor").
func TourKey(matrixHash string, start int, algo string) string {
	return fmt.Sprintf("tour:%s:%s:%d", algo, matrixHash, start)
}
