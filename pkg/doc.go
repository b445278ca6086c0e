// Package pkg provides the core libraries for the tsp solver.
//
// # Overview
//
// The pkg directory is organized by concern:
//
//  1. [tsp] - Solvers and the cost matrix type (Held-Karp, nearest-neighbor)
//  2. [matrixio] - TOML instance files
//  3. [cache] - Solved-tour caching (file, Redis, null backends)
//  4. [render] - Graphviz visualizations of tours
//  5. [errors] - Structured error codes shared by the CLI and API
//
// The typical data flow:
//
//	TOML instance or random matrix
//	         ↓
//	tsp.SolveHeldKarp / tsp.SolveNearestNeighbor
//	         ↓
//	cache (keyed by matrix content hash)
//	         ↓
//	CLI output, HTTP API response, or Graphviz rendering
package pkg
