package worker

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/nyashahama/wellscore-backend/internal/db"
	"github.com/nyashahama/wellscore-backend/internal/scoring"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

// configQuerier stubs the three configuration-detail queries loadConfiguration
// issues. Everything else panics via the embedded interface.
type configQuerier struct {
	db.Querier

	rules        []db.ScoreRule
	optionScores []db.ListOptionScoresByConfigurationRow
	ranges       []db.ScoreRange
	choices      []db.Choice
}

func (q *configQuerier) ListScoreRulesByConfiguration(_ context.Context, _ uuid.UUID) ([]db.ScoreRule, error) {
	return q.rules, nil
}

func (q *configQuerier) ListOptionScoresByConfiguration(_ context.Context, _ uuid.UUID) ([]db.ListOptionScoresByConfigurationRow, error) {
	return q.optionScores, nil
}

func (q *configQuerier) ListScoreRangesByConfiguration(_ context.Context, _ uuid.UUID) ([]db.ScoreRange, error) {
	return q.ranges, nil
}

func (q *configQuerier) ListChoicesByQuestionnaire(_ context.Context, _ uuid.UUID) ([]db.Choice, error) {
	return q.choices, nil
}

// ─── loadConfiguration ───────────────────────────────────────────────────────

func TestLoadConfiguration_AssemblesRulesAndOptionScores(t *testing.T) {
	configurationID := uuid.New()
	questionnaireID := uuid.New()
	q1 := uuid.New()
	q2 := uuid.New()
	c1 := uuid.New()
	c2 := uuid.New()

	stub := &configQuerier{
		rules: []db.ScoreRule{
			{ID: uuid.New(), ConfigurationID: configurationID, QuestionID: q1, Weight: 2.0},
			{ID: uuid.New(), ConfigurationID: configurationID, QuestionID: q2, Weight: 1.0, TextScoreEnabled: true, TextScore: 1.5},
		},
		optionScores: []db.ListOptionScoresByConfigurationRow{
			{ID: uuid.New(), ChoiceID: c1, Score: 3, QuestionID: q1},
			{ID: uuid.New(), ChoiceID: c2, Score: 4, QuestionID: q1},
		},
		ranges: []db.ScoreRange{
			{Name: "Low", Position: 0, MinScore: 0, MaxScore: 9, Interpretation: "minimal"},
			{Name: "High", Position: 1, MinScore: 10, MaxScore: 21, Interpretation: "elevated"},
		},
	}

	j := &Job{q: stub}
	cfg, err := j.loadConfiguration(context.Background(), db.ScoringConfiguration{
		ID:              configurationID,
		QuestionnaireID: questionnaireID,
		Strategy:        db.ScoringStrategyWeightedSum,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Strategy != scoring.StrategyWeightedSum {
		t.Errorf("strategy: got %q", cfg.Strategy)
	}
	if cfg.QuestionnaireID != questionnaireID.String() {
		t.Errorf("questionnaire id: got %q", cfg.QuestionnaireID)
	}

	rule, ok := cfg.Rule(q1.String())
	if !ok {
		t.Fatal("expected rule for q1")
	}
	if rule.Weight != 2.0 {
		t.Errorf("weight: got %v", rule.Weight)
	}
	if score, ok := rule.OptionScore(c1.String()); !ok || score != 3 {
		t.Errorf("option score c1: got %v (ok=%v)", score, ok)
	}
	if score, ok := rule.OptionScore(c2.String()); !ok || score != 4 {
		t.Errorf("option score c2: got %v (ok=%v)", score, ok)
	}

	textRule, ok := cfg.Rule(q2.String())
	if !ok {
		t.Fatal("expected rule for q2")
	}
	if !textRule.TextScoreEnabled || textRule.TextScore != 1.5 {
		t.Errorf("text rule: %+v", textRule)
	}

	if len(cfg.Ranges) != 2 || cfg.Ranges[0].Name != "Low" || cfg.Ranges[1].Name != "High" {
		t.Errorf("ranges must keep position order: %+v", cfg.Ranges)
	}
	if cfg.Norm != nil {
		t.Error("norm must be nil without norm columns")
	}
}

func TestLoadConfiguration_NormRequiresBothParameters(t *testing.T) {
	stub := &configQuerier{}
	j := &Job{q: stub}

	tests := []struct {
		name     string
		mean     sql.NullFloat64
		stddev   sql.NullFloat64
		wantNorm bool
	}{
		{"both set", sql.NullFloat64{Float64: 10, Valid: true}, sql.NullFloat64{Float64: 4, Valid: true}, true},
		{"mean only", sql.NullFloat64{Float64: 10, Valid: true}, sql.NullFloat64{}, false},
		{"stddev only", sql.NullFloat64{}, sql.NullFloat64{Float64: 4, Valid: true}, false},
		{"neither", sql.NullFloat64{}, sql.NullFloat64{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := j.loadConfiguration(context.Background(), db.ScoringConfiguration{
				ID:         uuid.New(),
				Strategy:   db.ScoringStrategyRangeClassified,
				NormMean:   tt.mean,
				NormStddev: tt.stddev,
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if (cfg.Norm != nil) != tt.wantNorm {
				t.Errorf("norm set: got %v, want %v", cfg.Norm != nil, tt.wantNorm)
			}
		})
	}
}

// ─── answer mapping ──────────────────────────────────────────────────────────

func TestToScoringAnswer_MapsAllValueKinds(t *testing.T) {
	questionID := uuid.New()
	choiceID := uuid.New()
	multi1 := uuid.New()
	multi2 := uuid.New()

	ans := toScoringAnswer(db.Answer{
		QuestionID:   questionID,
		TextValue:    sql.NullString{String: "free text", Valid: true},
		ChoiceID:     uuid.NullUUID{UUID: choiceID, Valid: true},
		ChoiceIds:    []uuid.UUID{multi1, multi2},
		NumericValue: sql.NullFloat64{Float64: 42, Valid: true},
		Score:        sql.NullFloat64{Float64: 2.5, Valid: true},
	})

	if ans.QuestionID != questionID.String() {
		t.Errorf("question id: got %q", ans.QuestionID)
	}
	if ans.Text != "free text" {
		t.Errorf("text: got %q", ans.Text)
	}
	if ans.ChoiceID != choiceID.String() {
		t.Errorf("choice id: got %q", ans.ChoiceID)
	}
	if len(ans.ChoiceIDs) != 2 || ans.ChoiceIDs[0] != multi1.String() {
		t.Errorf("choice ids: got %v", ans.ChoiceIDs)
	}
	if ans.Number == nil || *ans.Number != 42 {
		t.Errorf("number: got %v", ans.Number)
	}
	if ans.Score == nil || *ans.Score != 2.5 {
		t.Errorf("score: got %v", ans.Score)
	}
}

func TestToScoringAnswer_NullColumnsStayUnset(t *testing.T) {
	ans := toScoringAnswer(db.Answer{QuestionID: uuid.New()})

	if ans.Text != "" || ans.ChoiceID != "" || len(ans.ChoiceIDs) != 0 {
		t.Errorf("expected empty values: %+v", ans)
	}
	if ans.Number != nil || ans.Score != nil {
		t.Error("null columns must map to nil pointers")
	}
}

// ─── fallbackResponse ────────────────────────────────────────────────────────

func TestFallbackResponse_AttachesIntrinsicChoiceScores(t *testing.T) {
	questionnaireID := uuid.New()
	single := uuid.New()
	multi1 := uuid.New()
	multi2 := uuid.New()
	unknown := uuid.New()

	stub := &configQuerier{
		choices: []db.Choice{
			{ID: single, Score: 2},
			{ID: multi1, Score: 3},
			{ID: multi2, Score: 5},
		},
	}
	j := &Job{q: stub}

	resp, err := j.fallbackResponse(context.Background(),
		db.Response{ID: uuid.New(), QuestionnaireID: questionnaireID},
		[]db.Answer{
			{QuestionID: uuid.New(), ChoiceID: uuid.NullUUID{UUID: single, Valid: true}},
			{QuestionID: uuid.New(), ChoiceIds: []uuid.UUID{multi1, multi2, unknown}},
		})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp.Answers) != 2 {
		t.Fatalf("expected 2 answers, got %d", len(resp.Answers))
	}
	if len(resp.Answers[0].ChoiceScores) != 1 || resp.Answers[0].ChoiceScores[0] != 2 {
		t.Errorf("single choice scores: %v", resp.Answers[0].ChoiceScores)
	}
	// Unknown choice is dropped, not zero-filled.
	if len(resp.Answers[1].ChoiceScores) != 2 {
		t.Errorf("multi choice scores: %v", resp.Answers[1].ChoiceScores)
	}

	// End to end through the fallback evaluator: 2 + avg(3,5) = 6.
	out := scoring.EvaluateFallback(resp)
	if out.RawScore != 6 {
		t.Errorf("fallback score: got %v, want 6", out.RawScore)
	}
}
