// Package ai defines the interface for AI-generated result narratives and
// provides an OpenAI-compatible implementation.
package ai

import "context"

// InterpretParams is the scored outcome handed to the narrative model. Only
// aggregate values cross this boundary — never the respondent's raw answers.
type InterpretParams struct {
	QuestionnaireTitle string
	Category           string
	RawScore           float64
	RangeName          string // "" when the configuration has no ranges
	Interpretation     string // the matched range's authored interpretation
	Tier               string // risk tier string (low/medium/high/critical)
}

// Narrative is the structured output from a successful Interpret call.
type Narrative struct {
	// Summary is a 2–3 sentence plain-language interpretation of the result,
	// suitable for the result view and the notification email.
	Summary string
}

// Interpreter is the interface the worker uses to generate narratives.
// Tests inject a stub that returns canned responses.
type Interpreter interface {
	// Interpret writes a short narrative for one scored response.
	//
	// Implementations must be safe to call concurrently. A non-nil error
	// means the call failed; the worker treats that as non-fatal and
	// persists the result without a narrative.
	Interpret(ctx context.Context, p InterpretParams) (Narrative, error)
}
