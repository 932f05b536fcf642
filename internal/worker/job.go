package worker

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/nyashahama/wellscore-backend/internal/ai"
	"github.com/nyashahama/wellscore-backend/internal/db"
	"github.com/nyashahama/wellscore-backend/internal/email"
	"github.com/nyashahama/wellscore-backend/internal/scoring"
	"github.com/nyashahama/wellscore-backend/internal/store"
)

// Job holds the dependencies for the evaluate-and-classify pipeline. Each step
// is a separate method so they can be tested independently and so the Run
// method reads like a checklist.
type Job struct {
	q           db.Querier
	store       *store.Store
	interpreter ai.Interpreter // nil when no AI provider is configured
	mailer      email.Sender
	logger      *slog.Logger
}

// NewJob constructs a Job with all required dependencies. interpreter may be
// nil; the pipeline then skips narrative generation.
func NewJob(
	q db.Querier,
	st *store.Store,
	interpreter ai.Interpreter,
	mailer email.Sender,
	logger *slog.Logger,
) *Job {
	return &Job{
		q:           q,
		store:       st,
		interpreter: interpreter,
		mailer:      mailer,
		logger:      logger,
	}
}

// Run executes the full pipeline for a single response:
//
//  1. Load the response, its questionnaire, and its answers.
//  2. Resolve the questionnaire's default scoring configuration — or fall
//     back to the per-answer path when none exists.
//  3. Evaluate → raw score (plus range and statistics per strategy).
//  4. Classify the risk tier from the score and the questionnaire category.
//  5. Generate the AI narrative (non-fatal).
//  6. Persist score result + cached response score + tier atomically.
//  7. Send the notification email (non-fatal).
//
// Any error is returned to the Runner, which retries up to MaxRetries times
// before calling store.MarkScoringFailed.
func (j *Job) Run(ctx context.Context, responseID uuid.UUID) error {
	log := j.logger.With("response_id", responseID)
	log.Info("job: starting")

	// ── 1. Load the response and its surroundings ────────────────────────────
	response, err := j.q.GetResponse(ctx, responseID)
	if err != nil {
		return fmt.Errorf("job: get response: %w", err)
	}
	if response.Status != db.ResponseStatusCompleted {
		return fmt.Errorf("job: response %s is not completed (status %s)", responseID, response.Status)
	}

	questionnaire, err := j.q.GetQuestionnaire(ctx, response.QuestionnaireID)
	if err != nil {
		return fmt.Errorf("job: get questionnaire: %w", err)
	}

	answers, err := j.q.ListAnswersByResponse(ctx, responseID)
	if err != nil {
		return fmt.Errorf("job: list answers: %w", err)
	}
	log.Debug("job: loaded answers", "count", len(answers))

	// ── 2–3. Resolve configuration and evaluate ──────────────────────────────
	var (
		outcome         scoring.Outcome
		configurationID uuid.NullUUID
	)

	cfgRow, err := j.q.GetDefaultConfiguration(ctx, questionnaire.ID)
	switch {
	case err == nil:
		cfg, err := j.loadConfiguration(ctx, cfgRow)
		if err != nil {
			return err
		}

		outcome, err = scoring.Evaluate(toScoringResponse(response, answers), cfg)
		if err != nil {
			return fmt.Errorf("job: evaluate: %w", err)
		}
		configurationID = uuid.NullUUID{UUID: cfgRow.ID, Valid: true}

	case errors.Is(err, sql.ErrNoRows):
		// No configuration authored for this questionnaire: the single
		// documented fallback path sums producer-attached answer scores.
		resp, err := j.fallbackResponse(ctx, response, answers)
		if err != nil {
			return err
		}
		outcome = scoring.EvaluateFallback(resp)
		log.Debug("job: no scoring configuration, used per-answer fallback")

	default:
		return fmt.Errorf("job: get default configuration: %w", err)
	}

	// ── 4. Classify risk ─────────────────────────────────────────────────────
	// Evaluation always runs before classification; unknown is reserved for
	// the case where nothing could produce a number at all.
	var tier scoring.RiskTier
	switch {
	case outcome.Placeholder:
		log.Warn("job: placeholder outcome, score is not authoritative", "note", outcome.Note)
		tier = scoring.TierUnknown
	case !configurationID.Valid && outcome.ScoredAnswers == 0:
		tier = scoring.TierUnknown
	default:
		tier = scoring.ClassifyRisk(outcome.RawScore, questionnaire.Category)
	}

	log.Debug("job: evaluated",
		"raw_score", outcome.RawScore,
		"tier", tier,
		"scored", outcome.ScoredAnswers,
		"skipped", outcome.SkippedAnswers,
	)

	// ── 5. AI narrative ──────────────────────────────────────────────────────
	// Failure is non-fatal: the result is still valuable without a narrative.
	var narrative string
	if j.interpreter != nil && !outcome.Placeholder {
		n, err := j.interpreter.Interpret(ctx, ai.InterpretParams{
			QuestionnaireTitle: questionnaire.Title,
			Category:           questionnaire.Category,
			RawScore:           outcome.RawScore,
			RangeName:          outcome.RangeName,
			Interpretation:     outcome.RangeInterpretation,
			Tier:               string(tier),
		})
		if err != nil {
			log.Warn("job: narrative generation failed, persisting without it", "error", err)
		} else {
			narrative = n.Summary
		}
	}

	// ── 6. Persist atomically ────────────────────────────────────────────────
	saved, err := j.store.SaveEvaluation(ctx, store.SaveEvaluationParams{
		ResponseID:      responseID,
		ConfigurationID: configurationID,
		Outcome:         outcome,
		Tier:            tier,
		Narrative:       narrative,
	})
	if err != nil {
		return fmt.Errorf("job: save evaluation: %w", err)
	}

	log.Info("job: evaluation persisted",
		"raw_score", saved.Result.RawScore,
		"range", saved.Result.RangeName.String,
		"risk_tier", saved.Response.RiskTier.RiskTier,
	)

	// ── 7. Notification email ────────────────────────────────────────────────
	// Email failure should not fail the job — the result is persisted and
	// readable through the API. Log and return nil.
	if !response.RespondentEmail.Valid || response.RespondentEmail.String == "" {
		return nil
	}
	if err := j.mailer.SendResultReady(ctx, email.ResultReadyParams{
		To:                 response.RespondentEmail.String,
		QuestionnaireTitle: questionnaire.Title,
		ResponseID:         responseID.String(),
	}); err != nil {
		log.Error("job: failed to send result email",
			"to", response.RespondentEmail.String,
			"error", err,
		)
	}

	return nil
}

// loadConfiguration assembles the evaluator's Config from the configuration
// row and its rules, option scores, and ranges. Ranges keep their stored
// position order — the evaluator's first-match policy depends on it.
func (j *Job) loadConfiguration(ctx context.Context, row db.ScoringConfiguration) (scoring.Config, error) {
	rules, err := j.q.ListScoreRulesByConfiguration(ctx, row.ID)
	if err != nil {
		return scoring.Config{}, fmt.Errorf("job: list score rules: %w", err)
	}
	optionScores, err := j.q.ListOptionScoresByConfiguration(ctx, row.ID)
	if err != nil {
		return scoring.Config{}, fmt.Errorf("job: list option scores: %w", err)
	}
	ranges, err := j.q.ListScoreRangesByConfiguration(ctx, row.ID)
	if err != nil {
		return scoring.Config{}, fmt.Errorf("job: list score ranges: %w", err)
	}

	cfg := scoring.Config{
		ID:              row.ID.String(),
		QuestionnaireID: row.QuestionnaireID.String(),
		Strategy:        scoring.Strategy(row.Strategy), // db.ScoringStrategy and scoring.Strategy share string values
		Rules:           make(map[string]scoring.Rule, len(rules)),
		Ranges:          make([]scoring.Range, 0, len(ranges)),
	}

	for _, r := range rules {
		cfg.Rules[r.QuestionID.String()] = scoring.Rule{
			QuestionID:       r.QuestionID.String(),
			Weight:           r.Weight,
			TextScoreEnabled: r.TextScoreEnabled,
			TextScore:        r.TextScore,
			OptionScores:     make(map[string]float64),
		}
	}
	for _, os := range optionScores {
		if rule, ok := cfg.Rules[os.QuestionID.String()]; ok {
			rule.OptionScores[os.ChoiceID.String()] = os.Score
		}
	}
	for _, rg := range ranges {
		cfg.Ranges = append(cfg.Ranges, scoring.Range{
			Name:           rg.Name,
			Min:            rg.MinScore,
			Max:            rg.MaxScore,
			Interpretation: rg.Interpretation,
			Color:          rg.Color,
		})
	}

	if row.NormMean.Valid && row.NormStddev.Valid {
		cfg.Norm = &scoring.Norm{
			Mean:   row.NormMean.Float64,
			StdDev: row.NormStddev.Float64,
		}
	}

	return cfg, nil
}

// toScoringResponse maps db answer rows to the evaluator's input type,
// keeping scoring/ dependency-free from db.
func toScoringResponse(response db.Response, answers []db.Answer) scoring.Response {
	resp := scoring.Response{
		ID:              response.ID.String(),
		QuestionnaireID: response.QuestionnaireID.String(),
		Answers:         make([]scoring.Answer, 0, len(answers)),
	}
	for _, a := range answers {
		resp.Answers = append(resp.Answers, toScoringAnswer(a))
	}
	return resp
}

func toScoringAnswer(a db.Answer) scoring.Answer {
	ans := scoring.Answer{
		QuestionID: a.QuestionID.String(),
	}
	if a.TextValue.Valid {
		ans.Text = a.TextValue.String
	}
	if a.ChoiceID.Valid {
		ans.ChoiceID = a.ChoiceID.UUID.String()
	}
	for _, id := range a.ChoiceIds {
		ans.ChoiceIDs = append(ans.ChoiceIDs, id.String())
	}
	if a.NumericValue.Valid {
		v := a.NumericValue.Float64
		ans.Number = &v
	}
	if a.Score.Valid {
		v := a.Score.Float64
		ans.Score = &v
	}
	return ans
}

// fallbackResponse additionally attaches the intrinsic scores of selected
// choices, which EvaluateFallback averages for multi-select answers.
func (j *Job) fallbackResponse(ctx context.Context, response db.Response, answers []db.Answer) (scoring.Response, error) {
	choices, err := j.q.ListChoicesByQuestionnaire(ctx, response.QuestionnaireID)
	if err != nil {
		return scoring.Response{}, fmt.Errorf("job: list choices: %w", err)
	}

	choiceScore := make(map[uuid.UUID]float64, len(choices))
	for _, c := range choices {
		choiceScore[c.ID] = c.Score
	}

	resp := scoring.Response{
		ID:              response.ID.String(),
		QuestionnaireID: response.QuestionnaireID.String(),
		Answers:         make([]scoring.Answer, 0, len(answers)),
	}
	for _, a := range answers {
		ans := toScoringAnswer(a)
		if a.ChoiceID.Valid {
			if s, ok := choiceScore[a.ChoiceID.UUID]; ok {
				ans.ChoiceScores = append(ans.ChoiceScores, s)
			}
		}
		for _, id := range a.ChoiceIds {
			if s, ok := choiceScore[id]; ok {
				ans.ChoiceScores = append(ans.ChoiceScores, s)
			}
		}
		resp.Answers = append(resp.Answers, ans)
	}
	return resp, nil
}
