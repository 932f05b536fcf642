package api

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/nyashahama/wellscore-backend/internal/db"
)

// ─── PUT /api/responses/:responseID/answers ──────────────────────────────────
//
// Accepts a batch of answers and upserts them keyed by (response, question).
// The client sends the full current answer set on every navigation (or a
// partial batch on debounce). Using upsert means it is safe to replay the same
// payload multiple times.

type answerInput struct {
	QuestionID string `json:"question_id"`

	// At most one of the value fields should be set, matching the question's
	// kind. The handler stores whatever the client sends; the evaluator decides
	// what is scorable.
	TextValue    *string  `json:"text_value,omitempty"`
	ChoiceID     *string  `json:"choice_id,omitempty"`
	ChoiceIDs    []string `json:"choice_ids,omitempty"`
	NumericValue *float64 `json:"numeric_value,omitempty"`
	DateValue    *string  `json:"date_value,omitempty"` // "2006-01-02"
	TimeValue    *string  `json:"time_value,omitempty"` // "15:04"

	// Score is the producer-attached per-answer score, used only by the
	// fallback path when the questionnaire has no scoring configuration.
	Score *float64 `json:"score,omitempty"`
}

type upsertAnswersRequest struct {
	Answers []answerInput `json:"answers"`
}

type upsertAnswersResponse struct {
	Upserted int `json:"upserted"`
}

// handleUpsertAnswers batch-upserts answers for a response.
// Each answer is upserted independently — there is no all-or-nothing guarantee
// across the batch at the HTTP level. If one upsert fails, the handler returns
// 500 and the client can retry; successful upserts from the same batch are
// idempotent so retrying the full batch is safe.
func (s *Server) handleUpsertAnswers(w http.ResponseWriter, r *http.Request) {
	responseID, err := parseUUID(chi.URLParam(r, "responseID"))
	if err != nil {
		respondErr(w, http.StatusBadRequest, "invalid response_id")
		return
	}

	var req upsertAnswersRequest
	if !decode(w, r, &req) {
		return
	}

	if len(req.Answers) == 0 {
		respondErr(w, http.StatusBadRequest, "answers must not be empty")
		return
	}

	if len(req.Answers) > 100 {
		respondErr(w, http.StatusBadRequest, "too many answers in a single request (max 100)")
		return
	}

	upserted := 0
	for _, a := range req.Answers {
		params, err := buildUpsertParams(responseID, a)
		if err != nil {
			respondErr(w, http.StatusBadRequest, err.Error())
			return
		}

		if _, err := s.q.UpsertAnswer(r.Context(), params); err != nil {
			s.respondInternalErr(w, r, fmt.Errorf("upsert answer %q: %w", a.QuestionID, err))
			return
		}
		upserted++
	}

	respond(w, http.StatusOK, upsertAnswersResponse{Upserted: upserted})
}

func buildUpsertParams(responseID uuidType, a answerInput) (db.UpsertAnswerParams, error) {
	if a.QuestionID == "" {
		return db.UpsertAnswerParams{}, fmt.Errorf("each answer must have a non-empty question_id")
	}
	questionID, err := parseUUID(a.QuestionID)
	if err != nil {
		return db.UpsertAnswerParams{}, fmt.Errorf("invalid question_id %q", a.QuestionID)
	}

	params := db.UpsertAnswerParams{
		ResponseID: responseID,
		QuestionID: questionID,
		// choice_ids is NOT NULL in the schema; a nil slice would be encoded
		// as SQL NULL by pq.Array, so it must start as an empty array.
		ChoiceIds: []uuidType{},
	}

	if a.TextValue != nil {
		params.TextValue = sql.NullString{String: *a.TextValue, Valid: true}
	}
	if a.ChoiceID != nil {
		id, err := parseUUID(*a.ChoiceID)
		if err != nil {
			return db.UpsertAnswerParams{}, fmt.Errorf("invalid choice_id %q", *a.ChoiceID)
		}
		params.ChoiceID.UUID = id
		params.ChoiceID.Valid = true
	}
	for _, raw := range a.ChoiceIDs {
		id, err := parseUUID(raw)
		if err != nil {
			return db.UpsertAnswerParams{}, fmt.Errorf("invalid choice id %q in choice_ids", raw)
		}
		params.ChoiceIds = append(params.ChoiceIds, id)
	}
	if a.NumericValue != nil {
		params.NumericValue = sql.NullFloat64{Float64: *a.NumericValue, Valid: true}
	}
	if a.DateValue != nil {
		t, err := time.Parse("2006-01-02", *a.DateValue)
		if err != nil {
			return db.UpsertAnswerParams{}, fmt.Errorf("invalid date_value %q (want YYYY-MM-DD)", *a.DateValue)
		}
		params.DateValue = sql.NullTime{Time: t, Valid: true}
	}
	if a.TimeValue != nil {
		if _, err := time.Parse("15:04", *a.TimeValue); err != nil {
			return db.UpsertAnswerParams{}, fmt.Errorf("invalid time_value %q (want HH:MM)", *a.TimeValue)
		}
		params.TimeValue = sql.NullString{String: *a.TimeValue, Valid: true}
	}
	if a.Score != nil {
		params.Score = sql.NullFloat64{Float64: *a.Score, Valid: true}
	}

	return params, nil
}
