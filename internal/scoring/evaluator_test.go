package scoring_test

import (
	"errors"
	"math"
	"testing"

	"github.com/nyashahama/wellscore-backend/internal/scoring"
)

// ─── TEST FIXTURES ───────────────────────────────────────────────────────────

const questionnaireID = "5d0a3f5e-0000-0000-0000-000000000001"

func baseConfig(strategy scoring.Strategy) scoring.Config {
	return scoring.Config{
		ID:              "cfg-1",
		QuestionnaireID: questionnaireID,
		Strategy:        strategy,
		Rules:           map[string]scoring.Rule{},
	}
}

func singleChoiceRule(questionID string, weight float64, optionScores map[string]float64) scoring.Rule {
	return scoring.Rule{
		QuestionID:   questionID,
		Weight:       weight,
		OptionScores: optionScores,
	}
}

func choiceAnswer(questionID, choiceID string) scoring.Answer {
	return scoring.Answer{QuestionID: questionID, ChoiceID: choiceID}
}

func response(answers ...scoring.Answer) scoring.Response {
	return scoring.Response{
		ID:              "resp-1",
		QuestionnaireID: questionnaireID,
		Answers:         answers,
	}
}

// ─── Evaluate — simple sum ───────────────────────────────────────────────────

func TestEvaluate_SimpleSum_AddsOptionScores(t *testing.T) {
	cfg := baseConfig(scoring.StrategySimpleSum)
	cfg.Rules["q1"] = singleChoiceRule("q1", 1, map[string]float64{"c1": 3})
	cfg.Rules["q2"] = singleChoiceRule("q2", 1, map[string]float64{"c2": 4})

	out, err := scoring.Evaluate(response(
		choiceAnswer("q1", "c1"),
		choiceAnswer("q2", "c2"),
	), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RawScore != 7 {
		t.Errorf("expected raw score 7, got %v", out.RawScore)
	}
	if out.ScoredAnswers != 2 || out.SkippedAnswers != 0 {
		t.Errorf("expected 2 scored / 0 skipped, got %d / %d", out.ScoredAnswers, out.SkippedAnswers)
	}
}

func TestEvaluate_SimpleSum_IgnoresWeights(t *testing.T) {
	cfg := baseConfig(scoring.StrategySimpleSum)
	cfg.Rules["q1"] = singleChoiceRule("q1", 10, map[string]float64{"c1": 3})

	out, err := scoring.Evaluate(response(choiceAnswer("q1", "c1")), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RawScore != 3 {
		t.Errorf("simple sum must ignore weight: expected 3, got %v", out.RawScore)
	}
}

func TestEvaluate_NoRules_ScoresZero(t *testing.T) {
	cfg := baseConfig(scoring.StrategySimpleSum)

	out, err := scoring.Evaluate(response(
		choiceAnswer("q1", "c1"),
		choiceAnswer("q2", "c2"),
	), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RawScore != 0 {
		t.Errorf("expected 0, got %v", out.RawScore)
	}
	if out.SkippedAnswers != 2 {
		t.Errorf("expected 2 skipped, got %d", out.SkippedAnswers)
	}
}

func TestEvaluate_UnconfiguredChoice_Skipped(t *testing.T) {
	cfg := baseConfig(scoring.StrategySimpleSum)
	cfg.Rules["q1"] = singleChoiceRule("q1", 1, map[string]float64{"c1": 3})

	out, err := scoring.Evaluate(response(choiceAnswer("q1", "c_other")), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RawScore != 0 || out.SkippedAnswers != 1 {
		t.Errorf("unconfigured choice must skip: score=%v skipped=%d", out.RawScore, out.SkippedAnswers)
	}
}

// ─── Evaluate — weighted sum ─────────────────────────────────────────────────

func TestEvaluate_WeightedSum_AppliesWeights(t *testing.T) {
	// First question weighted 2.0: 2*3 + 1*4 = 10.
	cfg := baseConfig(scoring.StrategyWeightedSum)
	cfg.Rules["q1"] = singleChoiceRule("q1", 2.0, map[string]float64{"c1": 3})
	cfg.Rules["q2"] = singleChoiceRule("q2", 1.0, map[string]float64{"c2": 4})

	out, err := scoring.Evaluate(response(
		choiceAnswer("q1", "c1"),
		choiceAnswer("q2", "c2"),
	), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RawScore != 10 {
		t.Errorf("expected 10, got %v", out.RawScore)
	}
}

func TestEvaluate_WeightedSum_ZeroWeightDefaultsToOne(t *testing.T) {
	cfg := baseConfig(scoring.StrategyWeightedSum)
	cfg.Rules["q1"] = singleChoiceRule("q1", 0, map[string]float64{"c1": 5})
	cfg.Rules["q2"] = singleChoiceRule("q2", -3, map[string]float64{"c2": 2})

	out, err := scoring.Evaluate(response(
		choiceAnswer("q1", "c1"),
		choiceAnswer("q2", "c2"),
	), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RawScore != 7 {
		t.Errorf("weight <= 0 must behave as 1.0: expected 7, got %v", out.RawScore)
	}
}

func TestEvaluate_WeightedSum_ScalesLinearly(t *testing.T) {
	// Doubling every weight must exactly double the score.
	base := baseConfig(scoring.StrategyWeightedSum)
	base.Rules["q1"] = singleChoiceRule("q1", 1.5, map[string]float64{"c1": 3})
	base.Rules["q2"] = singleChoiceRule("q2", 2.0, map[string]float64{"c2": 4})

	doubled := baseConfig(scoring.StrategyWeightedSum)
	doubled.Rules["q1"] = singleChoiceRule("q1", 3.0, map[string]float64{"c1": 3})
	doubled.Rules["q2"] = singleChoiceRule("q2", 4.0, map[string]float64{"c2": 4})

	resp := response(choiceAnswer("q1", "c1"), choiceAnswer("q2", "c2"))

	outBase, err := scoring.Evaluate(resp, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	outDoubled, err := scoring.Evaluate(resp, doubled)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if outDoubled.RawScore != 2*outBase.RawScore {
		t.Errorf("expected %v, got %v", 2*outBase.RawScore, outDoubled.RawScore)
	}
}

// ─── Evaluate — multi-select ─────────────────────────────────────────────────

func TestEvaluate_MultiSelect_SumsConfiguredOptions(t *testing.T) {
	cfg := baseConfig(scoring.StrategySimpleSum)
	cfg.Rules["q1"] = singleChoiceRule("q1", 1, map[string]float64{"c1": 2, "c2": 3})

	out, err := scoring.Evaluate(response(scoring.Answer{
		QuestionID: "q1",
		ChoiceIDs:  []string{"c1", "c2", "c_unconfigured"},
	}), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RawScore != 5 {
		t.Errorf("expected 5 (2+3, unconfigured ignored), got %v", out.RawScore)
	}
	if out.ScoredAnswers != 1 {
		t.Errorf("multi-select counts as one scored answer, got %d", out.ScoredAnswers)
	}
}

func TestEvaluate_MultiSelect_AllUnconfigured_Skipped(t *testing.T) {
	cfg := baseConfig(scoring.StrategySimpleSum)
	cfg.Rules["q1"] = singleChoiceRule("q1", 1, map[string]float64{"c1": 2})

	out, err := scoring.Evaluate(response(scoring.Answer{
		QuestionID: "q1",
		ChoiceIDs:  []string{"x", "y"},
	}), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.SkippedAnswers != 1 || out.ScoredAnswers != 0 {
		t.Errorf("expected 1 skipped / 0 scored, got %d / %d", out.SkippedAnswers, out.ScoredAnswers)
	}
}

// ─── Evaluate — text and value kinds ─────────────────────────────────────────

func TestEvaluate_TextScoring(t *testing.T) {
	tests := []struct {
		name        string
		enabled     bool
		wantScore   float64
		wantScored  int
		wantSkipped int
	}{
		{"enabled adds flat score", true, 2.5, 1, 0},
		{"disabled skips", false, 0, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := baseConfig(scoring.StrategySimpleSum)
			cfg.Rules["q1"] = scoring.Rule{
				QuestionID:       "q1",
				TextScoreEnabled: tt.enabled,
				TextScore:        2.5,
			}

			out, err := scoring.Evaluate(response(scoring.Answer{
				QuestionID: "q1",
				Text:       "some free text",
			}), cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.RawScore != tt.wantScore {
				t.Errorf("score: got %v, want %v", out.RawScore, tt.wantScore)
			}
			if out.ScoredAnswers != tt.wantScored || out.SkippedAnswers != tt.wantSkipped {
				t.Errorf("got %d scored / %d skipped, want %d / %d",
					out.ScoredAnswers, out.SkippedAnswers, tt.wantScored, tt.wantSkipped)
			}
		})
	}
}

func TestEvaluate_NumericAnswer_SkippedByRuleStrategies(t *testing.T) {
	cfg := baseConfig(scoring.StrategySimpleSum)
	cfg.Rules["q1"] = singleChoiceRule("q1", 1, map[string]float64{"c1": 3})

	n := 42.0
	out, err := scoring.Evaluate(response(scoring.Answer{
		QuestionID: "q1",
		Number:     &n,
	}), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RawScore != 0 || out.SkippedAnswers != 1 {
		t.Errorf("numeric answers are not rule-scorable: score=%v skipped=%d", out.RawScore, out.SkippedAnswers)
	}
}

// ─── Evaluate — range classification ─────────────────────────────────────────

func rangeConfig(ranges ...scoring.Range) scoring.Config {
	cfg := baseConfig(scoring.StrategyRangeClassified)
	cfg.Rules["q1"] = singleChoiceRule("q1", 1, map[string]float64{
		"c30": 30, "c31": 31, "c0": 0, "c100": 100, "c200": 200,
	})
	cfg.Ranges = ranges
	return cfg
}

func TestEvaluate_RangeClassified_InclusiveBounds(t *testing.T) {
	cfg := rangeConfig(
		scoring.Range{Name: "Low", Min: 0, Max: 30, Interpretation: "minimal"},
		scoring.Range{Name: "High", Min: 31, Max: 100, Interpretation: "elevated"},
	)

	tests := []struct {
		choice    string
		wantRange string
	}{
		{"c0", "Low"},    // at Low.Min
		{"c30", "Low"},   // at Low.Max — inclusive
		{"c31", "High"},  // at High.Min
		{"c100", "High"}, // at High.Max — inclusive
	}
	for _, tt := range tests {
		t.Run(tt.choice, func(t *testing.T) {
			out, err := scoring.Evaluate(response(choiceAnswer("q1", tt.choice)), cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.RangeName != tt.wantRange {
				t.Errorf("got range %q, want %q", out.RangeName, tt.wantRange)
			}
			if !out.RangeMatched {
				t.Error("expected RangeMatched = true")
			}
		})
	}
}

func TestEvaluate_RangeClassified_NoMatchReportsUnknown(t *testing.T) {
	cfg := rangeConfig(
		scoring.Range{Name: "Low", Min: 0, Max: 30},
	)

	out, err := scoring.Evaluate(response(choiceAnswer("q1", "c200")), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.RangeName != scoring.UnknownRangeName {
		t.Errorf("expected %q, got %q", scoring.UnknownRangeName, out.RangeName)
	}
	if out.RangeMatched {
		t.Error("expected RangeMatched = false")
	}
	if out.RangeInterpretation != "" {
		t.Errorf("no-match must leave interpretation empty, got %q", out.RangeInterpretation)
	}
}

func TestEvaluate_RangeClassified_OverlappingRanges_FirstMatchWins(t *testing.T) {
	cfg := rangeConfig(
		scoring.Range{Name: "First", Min: 0, Max: 50},
		scoring.Range{Name: "Second", Min: 20, Max: 100},
	)

	// Deterministic across repeated evaluations.
	for i := 0; i < 10; i++ {
		out, err := scoring.Evaluate(response(choiceAnswer("q1", "c30")), cfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.RangeName != "First" {
			t.Fatalf("run %d: first configured range must win, got %q", i, out.RangeName)
		}
	}
}

func TestEvaluate_RangeClassified_AttachesStatistics(t *testing.T) {
	cfg := rangeConfig(scoring.Range{Name: "All", Min: 0, Max: 1000})
	cfg.Norm = &scoring.Norm{Mean: 20, StdDev: 10}

	out, err := scoring.Evaluate(response(choiceAnswer("q1", "c30")), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.StandardScore == nil || out.Percentile == nil {
		t.Fatal("expected statistics to be populated")
	}
	if *out.StandardScore != 1.0 {
		t.Errorf("z-score: got %v, want 1.0", *out.StandardScore)
	}
	// One standard deviation above the mean sits at roughly the 84th percentile.
	if math.Abs(*out.Percentile-84.13) > 0.1 {
		t.Errorf("percentile: got %v, want ~84.13", *out.Percentile)
	}
}

func TestEvaluate_RangeClassified_NoNorm_NoStatistics(t *testing.T) {
	cfg := rangeConfig(scoring.Range{Name: "All", Min: 0, Max: 1000})

	out, err := scoring.Evaluate(response(choiceAnswer("q1", "c30")), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.StandardScore != nil || out.Percentile != nil {
		t.Error("statistics must stay nil without norm parameters")
	}
}

func TestEvaluate_RangeClassified_ZeroStdDev_NoStatistics(t *testing.T) {
	cfg := rangeConfig(scoring.Range{Name: "All", Min: 0, Max: 1000})
	cfg.Norm = &scoring.Norm{Mean: 20, StdDev: 0}

	out, err := scoring.Evaluate(response(choiceAnswer("q1", "c30")), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.StandardScore != nil {
		t.Error("zero stddev must not divide")
	}
}

// ─── Evaluate — custom strategy and errors ───────────────────────────────────

func TestEvaluate_Custom_ReturnsPlaceholder(t *testing.T) {
	cfg := baseConfig(scoring.StrategyCustom)

	out, err := scoring.Evaluate(response(choiceAnswer("q1", "c1")), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !out.Placeholder {
		t.Error("custom strategy must yield a placeholder outcome")
	}
	if out.Note == "" {
		t.Error("placeholder outcome must carry a note")
	}
}

func TestEvaluate_QuestionnaireMismatch(t *testing.T) {
	cfg := baseConfig(scoring.StrategySimpleSum)
	cfg.QuestionnaireID = "different-questionnaire"

	_, err := scoring.Evaluate(response(choiceAnswer("q1", "c1")), cfg)
	if !errors.Is(err, scoring.ErrConfigurationMismatch) {
		t.Errorf("expected ErrConfigurationMismatch, got %v", err)
	}
}

func TestEvaluate_UnknownStrategy(t *testing.T) {
	cfg := baseConfig(scoring.Strategy("made_up"))

	_, err := scoring.Evaluate(response(choiceAnswer("q1", "c1")), cfg)
	if !errors.Is(err, scoring.ErrUnknownStrategy) {
		t.Errorf("expected ErrUnknownStrategy, got %v", err)
	}
}

// ─── EvaluateFallback ────────────────────────────────────────────────────────

func floatPtr(v float64) *float64 { return &v }

func TestEvaluateFallback_SumsAttachedScores(t *testing.T) {
	out := scoring.EvaluateFallback(response(
		scoring.Answer{QuestionID: "q1", Score: floatPtr(3)},
		scoring.Answer{QuestionID: "q2", Score: floatPtr(4.5)},
	))
	if out.RawScore != 7.5 {
		t.Errorf("expected 7.5, got %v", out.RawScore)
	}
	if out.ScoredAnswers != 2 {
		t.Errorf("expected 2 scored, got %d", out.ScoredAnswers)
	}
	if out.Note == "" {
		t.Error("fallback outcome must carry a provenance note")
	}
}

func TestEvaluateFallback_AveragesChoiceScores(t *testing.T) {
	out := scoring.EvaluateFallback(response(
		scoring.Answer{QuestionID: "q1", ChoiceScores: []float64{2, 4}},
	))
	if out.RawScore != 3 {
		t.Errorf("expected average 3, got %v", out.RawScore)
	}
}

func TestEvaluateFallback_AttachedScoreWinsOverChoiceScores(t *testing.T) {
	out := scoring.EvaluateFallback(response(
		scoring.Answer{QuestionID: "q1", Score: floatPtr(10), ChoiceScores: []float64{1, 1}},
	))
	if out.RawScore != 10 {
		t.Errorf("attached score must take precedence: expected 10, got %v", out.RawScore)
	}
}

func TestEvaluateFallback_NothingScorable(t *testing.T) {
	out := scoring.EvaluateFallback(response(
		scoring.Answer{QuestionID: "q1", Text: "just words"},
		scoring.Answer{QuestionID: "q2"},
	))
	if out.RawScore != 0 || out.ScoredAnswers != 0 || out.SkippedAnswers != 2 {
		t.Errorf("got score=%v scored=%d skipped=%d", out.RawScore, out.ScoredAnswers, out.SkippedAnswers)
	}
}
