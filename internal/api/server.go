// Package api implements the HTTP layer for WellScore. Handlers are methods
// on *Server. Each handler file is responsible for one resource group and only
// imports the dependencies it actually uses.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/nyashahama/wellscore-backend/internal/db"
	"github.com/nyashahama/wellscore-backend/internal/store"
	"github.com/nyashahama/wellscore-backend/internal/worker"
)

// Config holds values read from environment variables at startup.
type Config struct {
	// BaseURL is the public frontend URL, used to construct result links.
	// e.g. "https://app.wellscore.app"
	BaseURL string

	// AdminToken guards the recompute and configuration endpoints.
	AdminToken string

	// Env is "production", "staging", or "development".
	Env string
}

// Server holds all shared dependencies. Each handler file attaches methods to
// this type and uses only the fields it needs.
type Server struct {
	// q handles all single-query reads. Injected directly — no repo wrapper.
	q db.Querier

	// store handles multi-step atomic writes.
	store *store.Store

	// worker enqueues scoring jobs after a response completes.
	worker worker.Enqueuer

	cfg    Config
	logger *slog.Logger
}

// NewServer constructs the Server and wires the chi router. The returned
// http.Handler is ready to pass to http.ListenAndServe.
func NewServer(
	q db.Querier,
	st *store.Store,
	enqueuer worker.Enqueuer,
	cfg Config,
	logger *slog.Logger,
) http.Handler {
	s := &Server{
		q:      q,
		store:  st,
		worker: enqueuer,
		cfg:    cfg,
		logger: logger,
	}

	return s.routes()
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()

	// ── Global middleware ─────────────────────────────────────────────────────
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.loggerMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(s.corsMiddleware)
	r.Use(middleware.Timeout(30 * time.Second))

	// ── Health ────────────────────────────────────────────────────────────────
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// ── API v1 ────────────────────────────────────────────────────────────────
	r.Route("/api", func(r chi.Router) {

		// Respondent-facing routes — no auth (response IDs are unguessable
		// UUIDs handed out at creation time).
		r.Route("/responses/{responseID}", func(r chi.Router) {
			r.Put("/answers", s.handleUpsertAnswers)
			r.Post("/complete", s.handleCompleteResponse)
			r.Get("/result", s.handleGetResult)
		})

		// Admin routes — require the X-Admin-Token header.
		r.Group(func(r chi.Router) {
			r.Use(s.requireAdminToken)
			r.Post("/responses/{responseID}/recompute", s.handleRecomputeResponse)
			r.Post("/questionnaires/{questionnaireID}/recompute", s.handleRecomputeQuestionnaire)
			r.Post("/configurations/{configurationID}/default", s.handleSetDefaultConfiguration)
		})
	})

	return r
}
