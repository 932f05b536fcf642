// Package scoring implements the score evaluator and risk classifier that
// turn a response's answers into a numeric score, an optional interpretive
// range, and a risk tier. It is intentionally dependency-free: it imports
// nothing from internal/ and can be tested without a database.
package scoring

// ─── STRATEGY ────────────────────────────────────────────────────────────────

// Strategy selects the evaluation algorithm for a scoring configuration.
// String values deliberately match the Postgres enum so they can be cast to
// db.ScoringStrategy without conversion.
type Strategy string

const (
	// StrategySimpleSum adds up option scores and flat text scores, ignoring
	// rule weights.
	StrategySimpleSum Strategy = "simple_sum"

	// StrategyWeightedSum multiplies every contribution by its rule's weight
	// before summing.
	StrategyWeightedSum Strategy = "weighted_sum"

	// StrategyRangeClassified computes the weighted sum and then buckets the
	// raw score into the first matching score range.
	StrategyRangeClassified Strategy = "range_classified"

	// StrategyCustom is a reserved extension seam. The base engine has no
	// formula for it; evaluating it yields a placeholder outcome.
	StrategyCustom Strategy = "custom"
)

// Valid reports whether s is one of the four known strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategySimpleSum, StrategyWeightedSum, StrategyRangeClassified, StrategyCustom:
		return true
	}
	return false
}

// ─── CONFIGURATION MODEL ─────────────────────────────────────────────────────

// Rule is the per-question entry in a configuration: how much the question's
// contribution is weighted, whether free-text answers score at all, and the
// score each selectable choice carries.
type Rule struct {
	QuestionID string

	// Weight multiplies the question's contribution under the weighted
	// strategies. Values <= 0 are treated as the 1.0 default.
	Weight float64

	// TextScoreEnabled turns on scoring of free-text answers; TextScore is
	// the flat value added when it is on.
	TextScoreEnabled bool
	TextScore        float64

	// OptionScores maps choice ID → configured score. A choice absent from
	// the map is unconfigured and contributes nothing.
	OptionScores map[string]float64
}

// OptionScore returns the configured score for a choice, reporting false when
// the (rule, choice) pair is unconfigured. Unconfigured is a normal state, not
// an error.
func (r Rule) OptionScore(choiceID string) (float64, bool) {
	score, ok := r.OptionScores[choiceID]
	return score, ok
}

// effectiveWeight resolves the 1.0 default for unset or nonsensical weights.
func (r Rule) effectiveWeight() float64 {
	if r.Weight <= 0 {
		return 1.0
	}
	return r.Weight
}

// Range is a named interpretive bucket with inclusive bounds. Ranges are
// evaluated in configuration order; overlapping or non-contiguous ranges are
// permitted by the data model and resolved by first-match.
type Range struct {
	Name           string
	Min            float64
	Max            float64
	Interpretation string
	Color          string
}

// Contains reports whether score falls inside the inclusive [Min, Max] bounds.
func (rg Range) Contains(score float64) bool {
	return score >= rg.Min && score <= rg.Max
}

// Norm holds the population parameters a range-classified configuration may
// carry to derive standardized statistics from the raw score.
type Norm struct {
	Mean   float64
	StdDev float64
}

// Config is one questionnaire's scoring configuration: a strategy, per-question
// rules, and (for range-classified configurations) ordered score ranges.
//
// Its field types are intentionally plain Go types so the worker can build it
// from db rows without this package importing db — the same reason answers
// arrive as the local Answer type.
type Config struct {
	ID              string
	QuestionnaireID string
	Strategy        Strategy

	// Rules is keyed by question ID. At most one rule per question.
	Rules map[string]Rule

	// Ranges preserves configuration order; first match wins.
	Ranges []Range

	// Norm enables standardized score and percentile derivation when non-nil.
	Norm *Norm
}

// Rule returns the rule for a question, reporting false when the
// (configuration, question) pair is unconfigured. No error is raised — a
// questionnaire designer may intentionally leave questions out of scoring.
func (c Config) Rule(questionID string) (Rule, bool) {
	rule, ok := c.Rules[questionID]
	return rule, ok
}
