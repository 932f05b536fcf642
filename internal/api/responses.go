package api

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nyashahama/wellscore-backend/internal/db"
)

// ─── POST /api/responses/:responseID/complete ────────────────────────────────

type completeResponseResponse struct {
	ResponseID  string `json:"response_id"`
	Status      string `json:"status"`
	ScoreStatus string `json:"score_status"`
}

// handleCompleteResponse marks a response completed and queues it for scoring.
// Completing is idempotent: replaying the request keeps the original
// completed_at and at worst re-scores to the same result.
func (s *Server) handleCompleteResponse(w http.ResponseWriter, r *http.Request) {
	responseID, err := parseUUID(chi.URLParam(r, "responseID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid response_id")
		return
	}

	response, err := s.q.MarkResponseCompleted(r.Context(), responseID)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "response not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("mark response completed: %w", err))
		return
	}

	// Best-effort push; the worker's poller covers a full queue.
	s.worker.Enqueue(response.ID)

	s.logger.Info("response completed",
		"response_id", response.ID,
		logField(r),
	)

	respond(w, http.StatusAccepted, completeResponseResponse{
		ResponseID:  response.ID.String(),
		Status:      string(response.Status),
		ScoreStatus: string(response.ScoreStatus),
	})
}

// ─── GET /api/responses/:responseID/result ───────────────────────────────────

// resultResponse flattens db.ScoreResult into a clean JSON structure.
type resultResponse struct {
	ResponseID          string   `json:"response_id"`
	ScoreStatus         string   `json:"score_status"`
	RawScore            float64  `json:"raw_score"`
	RiskTier            string   `json:"risk_tier,omitempty"`
	RangeName           string   `json:"range_name,omitempty"`
	RangeInterpretation string   `json:"range_interpretation,omitempty"`
	RangeColor          string   `json:"range_color,omitempty"`
	StandardScore       *float64 `json:"standard_score,omitempty"`
	Percentile          *float64 `json:"percentile,omitempty"`
	ScoredAnswers       int32    `json:"scored_answers"`
	SkippedAnswers      int32    `json:"skipped_answers"`
	Placeholder         bool     `json:"placeholder,omitempty"`
	Notes               string   `json:"notes,omitempty"`
	CalculatedAt        string   `json:"calculated_at"`
}

// handleGetResult serves the persisted score result for a response.
//
// Returns 404 for an unknown response. Returns 202 Accepted while scoring is
// still in flight so the frontend can poll, and 409 when the response was
// never completed or its scoring failed permanently.
func (s *Server) handleGetResult(w http.ResponseWriter, r *http.Request) {
	responseID, err := parseUUID(chi.URLParam(r, "responseID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid response_id")
		return
	}

	response, err := s.q.GetResponse(r.Context(), responseID)
	if errors.Is(err, sql.ErrNoRows) {
		respondErr(w, http.StatusNotFound, "response not found")
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get response: %w", err))
		return
	}

	switch response.ScoreStatus {
	case db.ScoreStatusPending:
		// Still in the worker's queue — tell the client to poll.
		respond(w, http.StatusAccepted, map[string]string{
			"score_status": string(response.ScoreStatus),
			"message":      "result is being calculated, please check back shortly",
		})
		return
	case db.ScoreStatusNone:
		respondErr(w, http.StatusConflict, "response has not been completed")
		return
	case db.ScoreStatusFailed:
		respondErr(w, http.StatusConflict, "scoring failed; contact support or request a recompute")
		return
	}

	result, err := s.q.GetScoreResultByResponse(r.Context(), responseID)
	if errors.Is(err, sql.ErrNoRows) {
		// scored status without a result row means a partial write escaped the
		// save transaction; surface it as a server fault.
		s.respondInternalErr(w, r, fmt.Errorf("response %s is scored but has no score result", responseID))
		return
	}
	if err != nil {
		s.respondInternalErr(w, r, fmt.Errorf("get score result: %w", err))
		return
	}

	body := resultResponse{
		ResponseID:          response.ID.String(),
		ScoreStatus:         string(response.ScoreStatus),
		RawScore:            result.RawScore,
		RangeName:           result.RangeName.String,
		RangeInterpretation: result.RangeInterpretation.String,
		RangeColor:          result.RangeColor.String,
		ScoredAnswers:       result.ScoredAnswers,
		SkippedAnswers:      result.SkippedAnswers,
		Placeholder:         result.Placeholder,
		Notes:               result.Notes.String,
		CalculatedAt:        result.CalculatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
	if response.RiskTier.Valid {
		body.RiskTier = string(response.RiskTier.RiskTier)
	}
	if result.StandardScore.Valid {
		v := result.StandardScore.Float64
		body.StandardScore = &v
	}
	if result.Percentile.Valid {
		v := result.Percentile.Float64
		body.Percentile = &v
	}

	respond(w, http.StatusOK, body)
}
