package ai_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/nyashahama/wellscore-backend/internal/ai"
)

// ─── STUBS ────────────────────────────────────────────────────────────────────

type stubInterpreter struct {
	narrative ai.Narrative
	err       error
	calls     int
}

func (s *stubInterpreter) Interpret(_ context.Context, _ ai.InterpretParams) (ai.Narrative, error) {
	s.calls++
	return s.narrative, s.err
}

// discardLogger returns a *slog.Logger that silently drops all log output.
// Use this instead of nil — fallback.go calls f.logger.Warn() which panics on nil.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func params() ai.InterpretParams {
	return ai.InterpretParams{
		QuestionnaireTitle: "GAD-7",
		Category:           "anxiety",
		RawScore:           12,
		RangeName:          "Moderate",
		Interpretation:     "Moderate anxiety",
		Tier:               "high",
	}
}

// ─── FallbackInterpreter ──────────────────────────────────────────────────────

func TestFallbackInterpreter_PrimarySucceeds_SecondaryNotCalled(t *testing.T) {
	primary := &stubInterpreter{narrative: ai.Narrative{Summary: "Primary summary"}}
	secondary := &stubInterpreter{narrative: ai.Narrative{Summary: "Secondary summary"}}

	interp := ai.NewFallbackInterpreter(primary, secondary, discardLogger())

	narrative, err := interp.Interpret(context.Background(), params())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if narrative.Summary != "Primary summary" {
		t.Errorf("expected primary result, got: %q", narrative.Summary)
	}
	if secondary.calls != 0 {
		t.Errorf("secondary should not be called, got %d calls", secondary.calls)
	}
	if primary.calls != 1 {
		t.Errorf("primary should be called once, got %d calls", primary.calls)
	}
}

func TestFallbackInterpreter_PrimaryFails_SecondaryUsed(t *testing.T) {
	primary := &stubInterpreter{err: errors.New("deepseek timeout")}
	secondary := &stubInterpreter{narrative: ai.Narrative{Summary: "Secondary summary"}}

	interp := ai.NewFallbackInterpreter(primary, secondary, discardLogger())

	narrative, err := interp.Interpret(context.Background(), params())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if narrative.Summary != "Secondary summary" {
		t.Errorf("expected secondary result, got: %q", narrative.Summary)
	}
	if primary.calls != 1 {
		t.Errorf("primary should be called once, got %d calls", primary.calls)
	}
	if secondary.calls != 1 {
		t.Errorf("secondary should be called once, got %d calls", secondary.calls)
	}
}

func TestFallbackInterpreter_BothFail_ReturnsError(t *testing.T) {
	primary := &stubInterpreter{err: errors.New("primary error")}
	secondary := &stubInterpreter{err: errors.New("secondary error")}

	interp := ai.NewFallbackInterpreter(primary, secondary, discardLogger())

	_, err := interp.Interpret(context.Background(), params())
	if err == nil {
		t.Fatal("expected error when both interpreters fail")
	}
}

func TestFallbackInterpreter_NilPrimary_UsesSecondaryDirectly(t *testing.T) {
	secondary := &stubInterpreter{narrative: ai.Narrative{Summary: "Only secondary"}}

	interp := ai.NewFallbackInterpreter(nil, secondary, discardLogger())

	narrative, err := interp.Interpret(context.Background(), params())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if narrative.Summary != "Only secondary" {
		t.Errorf("expected secondary result, got: %q", narrative.Summary)
	}
	if secondary.calls != 1 {
		t.Errorf("expected 1 secondary call, got %d", secondary.calls)
	}
}

func TestFallbackInterpreter_NilSecondary_PrimaryErrorBubbles(t *testing.T) {
	primaryErr := errors.New("primary blew up")
	primary := &stubInterpreter{err: primaryErr}

	interp := ai.NewFallbackInterpreter(primary, nil, discardLogger())

	_, err := interp.Interpret(context.Background(), params())
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, primaryErr) {
		t.Errorf("expected to find primaryErr in chain, got: %v", err)
	}
}
