package ai

import (
	"context"
	"fmt"
	"log/slog"
)

// fallbackInterpreter wraps two Interpreter implementations. It calls the
// primary first; if that returns an error it logs the failure and tries the
// secondary. This gives you one provider as the default with a second as the
// safety net — the choice of which is which is made in main.go.
type fallbackInterpreter struct {
	primary   Interpreter
	secondary Interpreter
	logger    *slog.Logger
}

// NewFallbackInterpreter returns an Interpreter that calls primary and, on
// failure, falls back to secondary. Either argument may be nil — if primary is
// nil it goes straight to secondary; if secondary is nil and primary fails,
// the primary error is returned directly.
func NewFallbackInterpreter(primary, secondary Interpreter, logger *slog.Logger) Interpreter {
	return &fallbackInterpreter{
		primary:   primary,
		secondary: secondary,
		logger:    logger,
	}
}

// Interpret tries the primary Interpreter. If it fails and a secondary is
// configured, it logs the primary error and tries the secondary.
func (f *fallbackInterpreter) Interpret(ctx context.Context, p InterpretParams) (Narrative, error) {
	if f.primary != nil {
		narrative, err := f.primary.Interpret(ctx, p)
		if err == nil {
			return narrative, nil
		}
		f.logger.Warn("ai: primary interpreter failed, trying secondary",
			"error", err,
			"questionnaire", p.QuestionnaireTitle,
		)
		if f.secondary == nil {
			return Narrative{}, fmt.Errorf("ai: primary failed and no secondary configured: %w", err)
		}
	}

	return f.secondary.Interpret(ctx, p)
}
