package scoring

import "strings"

// ─── RISK TIERS ──────────────────────────────────────────────────────────────

// RiskTier is the coarse classification derived from a response's score and
// its questionnaire's subject category. String values deliberately match the
// Postgres enum so they can be cast to db.RiskTier without conversion.
type RiskTier string

const (
	TierLow      RiskTier = "low"
	TierMedium   RiskTier = "medium"
	TierHigh     RiskTier = "high"
	TierCritical RiskTier = "critical"

	// TierUnknown is produced only when no score could be computed at all —
	// no configuration and no fallback answer scores. An uncomputed score
	// must trigger evaluation first, never classify as unknown by default.
	TierUnknown RiskTier = "unknown"
)

// ─── CATEGORY THRESHOLDS ─────────────────────────────────────────────────────

// Category groups with distinct threshold tables. All upper bounds are
// exclusive except the top tier, which is unbounded.
//
//	mental    (anxiety, depression, stress, mental-health):   5 / 10 / 15
//	physical  (physical-health, clinical-assessment):          3 /  7 / 12
//	default   (everything else, 3 tiers, no critical):         5 / 10
var (
	mentalHealthCategories = map[string]struct{}{
		"anxiety":       {},
		"depression":    {},
		"stress":        {},
		"mental-health": {},
	}
	physicalHealthCategories = map[string]struct{}{
		"physical-health":     {},
		"clinical-assessment": {},
	}
)

// ClassifyRisk maps a numeric score and a questionnaire category to a risk
// tier. It is a pure function of its inputs, independent of the scoring
// strategy — it always consumes a single number, never the answer set.
func ClassifyRisk(score float64, category string) RiskTier {
	category = strings.ToLower(strings.TrimSpace(category))

	switch {
	case inGroup(mentalHealthCategories, category):
		return tierFor(score, 5, 10, 15)

	case inGroup(physicalHealthCategories, category):
		return tierFor(score, 3, 7, 12)

	default:
		// Three-tier group: everything at or above the second threshold maps
		// to high; critical is never produced.
		if score < 5 {
			return TierLow
		}
		if score < 10 {
			return TierMedium
		}
		return TierHigh
	}
}

func inGroup(group map[string]struct{}, category string) bool {
	_, ok := group[category]
	return ok
}

// tierFor applies a four-tier threshold triple. Boundary values land in the
// tier above: a score equal to lowMax is medium, not low.
func tierFor(score, lowMax, mediumMax, highMax float64) RiskTier {
	switch {
	case score < lowMax:
		return TierLow
	case score < mediumMax:
		return TierMedium
	case score < highMax:
		return TierHigh
	default:
		return TierCritical
	}
}
