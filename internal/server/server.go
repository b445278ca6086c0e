// Package server implements the tsp HTTP API.
//
// The API exposes a single solve endpoint that accepts a cost matrix and
// returns the computed tour. Exact results are cached by matrix content
// hash so repeated requests for the same instance are served without
// re-running the solver.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/zwilder/tsp/pkg/cache"
	apperrors "github.com/zwilder/tsp/pkg/errors"
	"github.com/zwilder/tsp/pkg/render"
	"github.com/zwilder/tsp/pkg/tsp"
)

// Algorithm names accepted by the solve endpoint.
const (
	AlgorithmHeldKarp        = "held-karp"
	AlgorithmNearestNeighbor = "nearest-neighbor"
)

// Config holds server tuning knobs.
type Config struct {
	// MaxNodes caps the instance size accepted for exact solves.
	// Zero means the solver default.
	MaxNodes int

	// CacheTTL is how long solved tours stay cached. Zero means forever.
	CacheTTL time.Duration
}

// Server wires the solve handlers to a cache and logger.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	cfg    Config
}

// New creates a Server. A nil cache disables result caching.
func New(logger *log.Logger, c cache.Cache, cfg Config) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	return &Server{logger: logger, cache: c, cfg: cfg}
}

// Router builds the chi router with all API routes registered.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/solve", s.handleSolve)
	})

	return r
}

// =============================================================================
// Request / Response Types
// =============================================================================

type solveRequest struct {
	Matrix    [][]int `json:"matrix"`
	Start     int     `json:"start"`
	Algorithm string  `json:"algorithm,omitempty"`
}

type solveResponse struct {
	ID        string   `json:"id"`
	Algorithm string   `json:"algorithm"`
	Start     int      `json:"start"`
	Path      []int    `json:"path"`
	Labels    []string `json:"labels"`
	Cost      int      `json:"cost"`
	Cached    bool     `json:"cached"`
}

type errorResponse struct {
	Code    apperrors.Code `json:"code"`
	Message string         `json:"message"`
}

// cachedTour is the payload stored in the cache for a solved instance.
type cachedTour struct {
	Path []int `json:"path"`
	Cost int   `json:"cost"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "invalid request body"))
		return
	}

	algo := req.Algorithm
	if algo == "" {
		algo = AlgorithmHeldKarp
	}
	if algo != AlgorithmHeldKarp && algo != AlgorithmNearestNeighbor {
		s.writeError(w, apperrors.New(apperrors.ErrCodeInvalidAlgorithm, "unknown algorithm %q", algo))
		return
	}

	m, err := tsp.NewMatrix(req.Matrix)
	if err != nil {
		s.writeError(w, classifySolveErr(err))
		return
	}

	// Exact solves are worth caching; the greedy heuristic is cheaper
	// than the cache round trip.
	var key string
	if algo == AlgorithmHeldKarp {
		key = cache.TourKey(cache.Hash(m.Bytes()), req.Start, algo)
		if data, hit, err := s.cache.Get(r.Context(), key); err == nil && hit {
			var ct cachedTour
			if err := json.Unmarshal(data, &ct); err == nil {
				s.respond(w, r, algo, req.Start, tsp.Tour{Path: ct.Path, Cost: ct.Cost}, true)
				return
			}
		}
	}

	tour, err := s.solve(m, req.Start, algo)
	if err != nil {
		s.writeError(w, classifySolveErr(err))
		return
	}

	if key != "" {
		data, err := json.Marshal(cachedTour{Path: tour.Path, Cost: tour.Cost})
		if err == nil {
			if err := s.cache.Set(r.Context(), key, data, s.cfg.CacheTTL); err != nil {
				s.logger.Warn("failed to cache tour", "error", err)
			}
		}
	}

	s.respond(w, r, algo, req.Start, tour, false)
}

func (s *Server) solve(m *tsp.Matrix, start int, algo string) (tsp.Tour, error) {
	if algo == AlgorithmNearestNeighbor {
		return tsp.SolveNearestNeighbor(m, start)
	}
	var opts []tsp.Option
	if s.cfg.MaxNodes > 0 {
		opts = append(opts, tsp.WithMaxNodes(s.cfg.MaxNodes))
	}
	return tsp.SolveHeldKarp(m, start, opts...)
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, algo string, start int, tour tsp.Tour, cached bool) {
	labels := make([]string, len(tour.Path))
	for i, k := range tour.Path {
		labels[i] = render.NodeLabel(k)
	}

	resp := solveResponse{
		ID:        uuid.NewString(),
		Algorithm: algo,
		Start:     start,
		Path:      tour.Path,
		Labels:    labels,
		Cost:      tour.Cost,
		Cached:    cached,
	}

	s.logger.Info("solved instance",
		"id", resp.ID,
		"algorithm", algo,
		"nodes", len(tour.Path),
		"cost", tour.Cost,
		"cached", cached,
		"request_id", middleware.GetReqID(r.Context()),
	)
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// Error Mapping
// =============================================================================

// classifySolveErr maps solver sentinel errors onto structured API errors.
func classifySolveErr(err error) *apperrors.Error {
	switch {
	case isAny(err, tsp.ErrNilMatrix, tsp.ErrNonSquare, tsp.ErrNegativeCost, tsp.ErrCostTooLarge, tsp.ErrNonZeroDiagonal):
		return apperrors.Wrap(apperrors.ErrCodeInvalidMatrix, err, "invalid cost matrix")
	case isAny(err, tsp.ErrStartOutOfRange):
		return apperrors.Wrap(apperrors.ErrCodeInvalidStart, err, "start node out of range")
	case isAny(err, tsp.ErrTooManyNodes, tsp.ErrTableTooLarge):
		return apperrors.Wrap(apperrors.ErrCodeTooLarge, err, "instance too large for exact solve")
	default:
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "solve failed")
	}
}

func isAny(err error, targets ...error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

func (s *Server) writeError(w http.ResponseWriter, err *apperrors.Error) {
	status := http.StatusInternalServerError
	switch err.Code {
	case apperrors.ErrCodeInvalidInput, apperrors.ErrCodeInvalidMatrix,
		apperrors.ErrCodeInvalidStart, apperrors.ErrCodeInvalidAlgorithm,
		apperrors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case apperrors.ErrCodeTooLarge:
		status = http.StatusUnprocessableEntity
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}

	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "code", err.Code, "error", err)
	}
	writeJSON(w, status, errorResponse{Code: err.Code, Message: apperrors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
