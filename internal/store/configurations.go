package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nyashahama/wellscore-backend/internal/db"
)

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrConfigurationNotFound is returned by SetDefaultConfiguration when the
// configuration ID does not exist. Handlers should map it to 404.
var ErrConfigurationNotFound = errors.New("store: scoring configuration not found")

// ─── METHODS ─────────────────────────────────────────────────────────────────

// SetDefaultConfiguration makes one configuration the questionnaire's default,
// atomically unsetting the previous default first. Last writer wins — there is
// no merge, and at most one default per questionnaire can ever be observed.
//
// Race scenario without this guard:
//  1. Two admins mark different configurations default simultaneously.
//  2. Both read is_default=false on their target and write true.
//  3. The questionnaire ends up with two defaults and the worker's
//     GetDefaultConfiguration read becomes nondeterministic.
//
// Under serializable isolation the second transaction sees the first commit's
// unset/set pair and re-runs cleanly, so exactly one default survives.
func (s *Store) SetDefaultConfiguration(ctx context.Context, configurationID uuid.UUID) (db.ScoringConfiguration, error) {
	var cfg db.ScoringConfiguration

	err := s.withTx(ctx, func(ctx context.Context, q db.Querier) error {
		existing, err := q.GetConfiguration(ctx, configurationID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrConfigurationNotFound
			}
			return fmt.Errorf("SetDefaultConfiguration: get configuration: %w", err)
		}

		if err := q.UnsetDefaultConfigurations(ctx, existing.QuestionnaireID); err != nil {
			return fmt.Errorf("SetDefaultConfiguration: unset previous default: %w", err)
		}

		updated, err := q.SetDefaultConfiguration(ctx, configurationID)
		if err != nil {
			return fmt.Errorf("SetDefaultConfiguration: set new default: %w", err)
		}

		cfg = updated
		return nil
	})

	// Unwrap the sentinel so callers can check with errors.Is without needing
	// to look inside a wrapped error chain.
	if errors.Is(err, ErrConfigurationNotFound) {
		return db.ScoringConfiguration{}, ErrConfigurationNotFound
	}
	if err != nil {
		return db.ScoringConfiguration{}, err
	}

	return cfg, nil
}
