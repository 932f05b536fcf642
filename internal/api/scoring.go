package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nyashahama/wellscore-backend/internal/store"
)

// Admin endpoints for the scoring lifecycle: recomputing results after a
// configuration change and switching a questionnaire's default configuration.
// All routes in this file sit behind requireAdminToken.

// ─── POST /api/responses/:responseID/recompute ───────────────────────────────

type recomputeResponseResponse struct {
	ResponseID  string `json:"response_id"`
	ScoreStatus string `json:"score_status"`
}

// handleRecomputeResponse re-queues one completed response for scoring. The
// result upsert replaces the previous score_results row, so recomputing never
// duplicates results.
func (s *Server) handleRecomputeResponse(w http.ResponseWriter, r *http.Request) {
	responseID, err := parseUUID(chi.URLParam(r, "responseID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid response_id")
		return
	}

	// MarkResponsePendingScore only matches completed responses, so a no-row
	// result is ambiguous: distinguish missing from not-yet-completed.
	response, err := s.q.MarkResponsePendingScore(r.Context(), responseID)
	if errors.Is(err, sql.ErrNoRows) {
		if _, getErr := s.q.GetResponse(r.Context(), responseID); errors.Is(getErr, sql.ErrNoRows) {
			respondErr(w, http.StatusNotFound, "response not found")
		} else {
			respondErr(w, http.StatusConflict, "response has not been completed")
		}
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("mark response pending: %w", err))
		return
	}

	s.worker.Enqueue(response.ID)

	s.logger.Info("recompute queued",
		"response_id", response.ID,
		logField(r),
	)

	respond(w, http.StatusAccepted, recomputeResponseResponse{
		ResponseID:  response.ID.String(),
		ScoreStatus: string(response.ScoreStatus),
	})
}

// ─── POST /api/questionnaires/:questionnaireID/recompute ─────────────────────

type recomputeQuestionnaireResponse struct {
	QuestionnaireID string `json:"questionnaire_id"`
	Marked          int64  `json:"marked"`
}

// handleRecomputeQuestionnaire marks every completed response of a
// questionnaire pending. The batch is picked up by the worker's poller rather
// than enqueued here — a large questionnaire would overflow the in-memory
// queue anyway, and the poller drains pending responses on its own schedule.
func (s *Server) handleRecomputeQuestionnaire(w http.ResponseWriter, r *http.Request) {
	questionnaireID, err := parseUUID(chi.URLParam(r, "questionnaireID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid questionnaire_id")
		return
	}

	if _, err := s.q.GetQuestionnaire(r.Context(), questionnaireID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			respondErr(w, http.StatusNotFound, "questionnaire not found")
			return
		}
		s.respondInternalErr(w, r, fmt.Errorf("get questionnaire: %w", err))
		return
	}

	marked, err := s.q.MarkQuestionnaireResponsesPendingScore(r.Context(), questionnaireID)
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("mark questionnaire responses pending: %w", err))
		return
	}

	s.logger.Info("questionnaire recompute queued",
		"questionnaire_id", questionnaireID,
		"marked", marked,
		logField(r),
	)

	respond(w, http.StatusAccepted, recomputeQuestionnaireResponse{
		QuestionnaireID: questionnaireID.String(),
		Marked:          marked,
	})
}

// ─── POST /api/configurations/:configurationID/default ───────────────────────

type setDefaultConfigurationResponse struct {
	ConfigurationID string `json:"configuration_id"`
	QuestionnaireID string `json:"questionnaire_id"`
	Name            string `json:"name"`
	Version         int32  `json:"version"`
	IsDefault       bool   `json:"is_default"`
}

// handleSetDefaultConfiguration promotes a configuration to its
// questionnaire's default. The store unsets the previous default in the same
// transaction, so at most one default is ever observable.
//
// Existing score results are left untouched: switching the default changes
// which configuration future evaluations use, and the admin decides separately
// whether to recompute.
func (s *Server) handleSetDefaultConfiguration(w http.ResponseWriter, r *http.Request) {
	configurationID, err := parseUUID(chi.URLParam(r, "configurationID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid configuration_id")
		return
	}

	cfg, err := s.store.SetDefaultConfiguration(r.Context(), configurationID)
	if errors.Is(err, store.ErrConfigurationNotFound) {
		respondErr(w, http.StatusNotFound, "configuration not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("set default configuration: %w", err))
		return
	}

	s.logger.Info("default configuration changed",
		"configuration_id", cfg.ID,
		"questionnaire_id", cfg.QuestionnaireID,
		logField(r),
	)

	respond(w, http.StatusOK, setDefaultConfigurationResponse{
		ConfigurationID: cfg.ID.String(),
		QuestionnaireID: cfg.QuestionnaireID.String(),
		Name:            cfg.Name,
		Version:         cfg.Version,
		IsDefault:       cfg.IsDefault,
	})
}
