package scoring

import (
	"errors"
	"fmt"
	"math"
)

// ─── ERRORS ──────────────────────────────────────────────────────────────────

// ErrConfigurationMismatch is returned when a response is evaluated against a
// configuration belonging to a different questionnaire. This is a caller bug
// and fails fast — silently returning a score computed from the wrong rule
// set would be meaningless.
var ErrConfigurationMismatch = errors.New("scoring: response and configuration belong to different questionnaires")

// ErrUnknownStrategy is returned when a configuration carries a strategy tag
// outside the closed Strategy set (e.g. a hand-edited database row).
var ErrUnknownStrategy = errors.New("scoring: unknown strategy")

// ─── INPUT TYPES ─────────────────────────────────────────────────────────────

// Answer is the minimal slice of a db answer row the evaluator needs. Using a
// local type keeps scoring/ import-free from the db package while remaining
// easy to construct in tests. At most one of the value fields is populated,
// matching the owning question's kind (enforced by the producer, not here).
type Answer struct {
	QuestionID string

	// Text is the free-text value, "" when absent.
	Text string

	// ChoiceID is the single selected choice, "" when absent.
	ChoiceID string

	// ChoiceIDs are the selected choices of a multiple-choice answer.
	ChoiceIDs []string

	// Number is the numeric/scale value. Not scored by the rule-based
	// strategies; carried for completeness.
	Number *float64

	// Score is the producer-attached per-answer score, consumed only by
	// EvaluateFallback when no configuration exists.
	Score *float64

	// ChoiceScores are the intrinsic scores of the selected choices, consumed
	// only by EvaluateFallback.
	ChoiceScores []float64
}

// Response is the evaluator's view of one respondent's submission.
type Response struct {
	ID              string
	QuestionnaireID string
	Answers         []Answer
}

// ─── OUTCOME ─────────────────────────────────────────────────────────────────

// UnknownRangeName is reported by range-classified evaluation when no range's
// inclusive bounds contain the raw score.
const UnknownRangeName = "Unknown"

// Outcome is the fully computed result of one evaluator run. Persistence is
// the caller's job; Evaluate itself has no side effects.
type Outcome struct {
	// RawScore is the numeric score under the configuration's strategy.
	RawScore float64

	// Range fields are populated only by the range-classified strategy.
	// RangeMatched is false when the score fell outside every range, in which
	// case RangeName is UnknownRangeName and the interpretation is empty.
	RangeName           string
	RangeInterpretation string
	RangeColor          string
	RangeMatched        bool

	// StandardScore and Percentile are derived statistics, populated only
	// when the configuration carries norm parameters.
	StandardScore *float64
	Percentile    *float64

	// ScoredAnswers and SkippedAnswers count how many answers contributed vs.
	// hit an unconfigured question/option. Skips are normal, but a high count
	// is a configuration-quality signal worth surfacing.
	ScoredAnswers  int
	SkippedAnswers int

	// Placeholder marks an outcome that is not a real score — currently only
	// the unimplemented custom strategy. Callers must check it before
	// treating RawScore as authoritative.
	Placeholder bool

	// Note carries a human-readable qualifier (placeholder reason, fallback
	// provenance). Empty for ordinary outcomes.
	Note string
}

// ─── EVALUATOR ───────────────────────────────────────────────────────────────

// Evaluate walks the response's answers against the configuration's rules and
// produces the strategy's outcome.
//
// Missing configuration is never an error here: an answer whose question has
// no rule, a selected choice with no option score, or a raw score outside
// every range all resolve to skip/"Unknown" outcomes. The only failure modes
// are a questionnaire mismatch and an unrecognised strategy tag.
func Evaluate(resp Response, cfg Config) (Outcome, error) {
	if resp.QuestionnaireID != cfg.QuestionnaireID {
		return Outcome{}, fmt.Errorf("%w: response %s is for questionnaire %s, configuration %s is for %s",
			ErrConfigurationMismatch, resp.ID, resp.QuestionnaireID, cfg.ID, cfg.QuestionnaireID)
	}

	switch cfg.Strategy {
	case StrategySimpleSum:
		return sumAnswers(resp, cfg, false), nil

	case StrategyWeightedSum:
		return sumAnswers(resp, cfg, true), nil

	case StrategyRangeClassified:
		out := sumAnswers(resp, cfg, true)
		matchRange(&out, cfg.Ranges)
		attachStatistics(&out, cfg.Norm)
		return out, nil

	case StrategyCustom:
		// Extension seam only. Persisting this as a real score without
		// surfacing the placeholder flag is a caller error.
		return Outcome{
			Placeholder: true,
			Note:        "custom strategy: no formula was evaluated",
		}, nil

	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, cfg.Strategy)
	}
}

// sumAnswers is the shared walk for the sum strategies. When weighted is true
// every contribution is multiplied by the rule's effective weight.
func sumAnswers(resp Response, cfg Config, weighted bool) Outcome {
	var out Outcome

	for _, a := range resp.Answers {
		rule, ok := cfg.Rule(a.QuestionID)
		if !ok {
			out.SkippedAnswers++
			continue
		}

		contribution, scored := answerContribution(a, rule)
		if !scored {
			out.SkippedAnswers++
			continue
		}

		if weighted {
			contribution *= rule.effectiveWeight()
		}
		out.RawScore += contribution
		out.ScoredAnswers++
	}

	return out
}

// answerContribution resolves a single answer against its rule. The second
// return is false when nothing in the rule applies: an unconfigured choice,
// free text with text scoring disabled, or a value kind (numeric, date, time)
// the rule-based strategies do not score.
//
// Multi-select contributes the sum of the configured option scores of the
// selected choices; unconfigured selections within the set are ignored. Sum
// (rather than average) keeps multi-select consistent with how every other
// contribution accumulates and preserves weight linearity.
func answerContribution(a Answer, rule Rule) (float64, bool) {
	switch {
	case a.ChoiceID != "":
		return rule.OptionScore(a.ChoiceID)

	case len(a.ChoiceIDs) > 0:
		var total float64
		found := false
		for _, choiceID := range a.ChoiceIDs {
			if score, ok := rule.OptionScore(choiceID); ok {
				total += score
				found = true
			}
		}
		return total, found

	case a.Text != "":
		if rule.TextScoreEnabled {
			return rule.TextScore, true
		}
		return 0, false

	default:
		return 0, false
	}
}

// matchRange selects the first range in configuration order whose inclusive
// bounds contain the raw score. The fixed iteration order makes overlapping
// ranges resolve deterministically across runs. No match is not an error: the
// outcome reports UnknownRangeName with an empty interpretation.
func matchRange(out *Outcome, ranges []Range) {
	for _, rg := range ranges {
		if rg.Contains(out.RawScore) {
			out.RangeName = rg.Name
			out.RangeInterpretation = rg.Interpretation
			out.RangeColor = rg.Color
			out.RangeMatched = true
			return
		}
	}
	out.RangeName = UnknownRangeName
}

// attachStatistics derives the standardized score and normal-CDF percentile
// when norm parameters are configured. A zero or negative standard deviation
// leaves the statistics unset.
func attachStatistics(out *Outcome, norm *Norm) {
	if norm == nil || norm.StdDev <= 0 {
		return
	}
	z := (out.RawScore - norm.Mean) / norm.StdDev
	percentile := 100 * 0.5 * (1 + math.Erf(z/math.Sqrt2))

	out.StandardScore = &z
	out.Percentile = &percentile
}

// ─── FALLBACK ────────────────────────────────────────────────────────────────

// EvaluateFallback is the single no-configuration scoring path: when a
// questionnaire has no scoring configuration at all, the orchestration sums
// whatever per-answer scores the producer attached. Multi-select answers
// without an attached score average their selected choices' intrinsic scores,
// preserving the legacy fallback behavior.
//
// This is a deliberate collapse of two historical code paths into one
// documented fallback; the rule-based Evaluate never falls through to it.
func EvaluateFallback(resp Response) Outcome {
	var out Outcome

	for _, a := range resp.Answers {
		switch {
		case a.Score != nil:
			out.RawScore += *a.Score
			out.ScoredAnswers++

		case len(a.ChoiceScores) > 0:
			var sum float64
			for _, s := range a.ChoiceScores {
				sum += s
			}
			out.RawScore += sum / float64(len(a.ChoiceScores))
			out.ScoredAnswers++

		default:
			out.SkippedAnswers++
		}
	}

	out.Note = "scored by per-answer fallback: questionnaire has no scoring configuration"
	return out
}
