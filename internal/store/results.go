package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nyashahama/wellscore-backend/internal/db"
	"github.com/nyashahama/wellscore-backend/internal/scoring"
	"github.com/sqlc-dev/pqtype"
)

// ─── INPUT TYPES ─────────────────────────────────────────────────────────────

// SaveEvaluationParams is everything the worker hands to the store once the
// evaluator and risk classifier have run for one response.
type SaveEvaluationParams struct {
	ResponseID uuid.UUID

	// ConfigurationID is invalid for responses scored by the per-answer
	// fallback path (questionnaire has no configuration).
	ConfigurationID uuid.NullUUID

	// Outcome is the evaluator's output, persisted whole.
	Outcome scoring.Outcome

	// Tier is the risk classifier's output for the outcome's raw score.
	Tier scoring.RiskTier

	// Narrative is the optional AI-generated interpretation. Empty means the
	// result keeps the outcome's own note (placeholder reason, fallback
	// provenance) as its notes text.
	Narrative string
}

// SavedEvaluation is the pair of rows the transaction produced.
type SavedEvaluation struct {
	Result   db.ScoreResult
	Response db.Response
}

// ─── METHODS ─────────────────────────────────────────────────────────────────

// SaveEvaluation is called by the worker after evaluate → classify. It
// atomically:
//
//  1. Upserts the score_results row keyed by (response, configuration) —
//     re-running the evaluator replaces the previous result, never duplicates.
//  2. Updates the response's cached score, risk tier, and score_status.
//
// Both writes commit or roll back together, so a reader never observes a
// fresh score with a stale risk tier (or vice versa). On failure the response
// stays score_status=pending and the worker's retry loop picks it up again.
//
// A placeholder outcome (unimplemented custom strategy) is persisted with its
// placeholder flag set and leaves the response's cached score NULL — it must
// never read as an authoritative score downstream.
func (s *Store) SaveEvaluation(ctx context.Context, p SaveEvaluationParams) (SavedEvaluation, error) {
	var saved SavedEvaluation

	statsJSON, err := json.Marshal(p.Outcome)
	if err != nil {
		return SavedEvaluation{}, fmt.Errorf("SaveEvaluation: marshal outcome: %w", err)
	}

	notes := p.Outcome.Note
	if p.Narrative != "" {
		notes = p.Narrative
	}

	err = s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		result, err := q.UpsertScoreResult(ctx, db.UpsertScoreResultParams{
			ResponseID:      p.ResponseID,
			ConfigurationID: p.ConfigurationID,
			RawScore:        p.Outcome.RawScore,
			RangeName: sql.NullString{
				String: p.Outcome.RangeName,
				Valid:  p.Outcome.RangeName != "",
			},
			RangeColor: sql.NullString{
				String: p.Outcome.RangeColor,
				Valid:  p.Outcome.RangeColor != "",
			},
			RangeInterpretation: sql.NullString{
				String: p.Outcome.RangeInterpretation,
				Valid:  p.Outcome.RangeMatched,
			},
			StandardScore:  nullFloat(p.Outcome.StandardScore),
			Percentile:     nullFloat(p.Outcome.Percentile),
			SkippedAnswers: int32(p.Outcome.SkippedAnswers),
			ScoredAnswers:  int32(p.Outcome.ScoredAnswers),
			Placeholder:    p.Outcome.Placeholder,
			Notes: sql.NullString{
				String: notes,
				Valid:  notes != "",
			},
			Stats: pqtype.NullRawMessage{
				RawMessage: statsJSON,
				Valid:      true,
			},
		})
		if err != nil {
			return fmt.Errorf("SaveEvaluation: upsert score result: %w", err)
		}

		response, err := q.UpdateResponseScore(ctx, db.UpdateResponseScoreParams{
			ID: p.ResponseID,
			Score: sql.NullFloat64{
				Float64: p.Outcome.RawScore,
				Valid:   !p.Outcome.Placeholder,
			},
			RiskTier: db.NullRiskTier{
				RiskTier: db.RiskTier(p.Tier), // scoring.RiskTier and db.RiskTier share string values
				Valid:    p.Tier != "",
			},
		})
		if err != nil {
			return fmt.Errorf("SaveEvaluation: update response score: %w", err)
		}

		saved = SavedEvaluation{Result: result, Response: response}
		return nil
	})
	if err != nil {
		return SavedEvaluation{}, err
	}

	return saved, nil
}

// MarkScoringFailed sets the response's score_status to failed. Called by the
// worker when evaluation fails permanently (i.e. after exhausting retries) so
// the poller stops re-enqueuing it. Single-query write — no transaction — but
// it lives here because it is logically part of the result lifecycle.
func (s *Store) MarkScoringFailed(ctx context.Context, responseID uuid.UUID) (db.Response, error) {
	response, err := s.q.SetResponseScoreFailed(ctx, responseID)
	if err != nil {
		return db.Response{}, fmt.Errorf("MarkScoringFailed: %w", err)
	}
	return response, nil
}

// nullFloat converts an optional statistic to sql.NullFloat64.
func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
