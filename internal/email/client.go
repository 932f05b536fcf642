// Package email defines the interface for transactional email delivery and
// provides a Resend-backed implementation.
package email

import "context"

// ResultReadyParams holds the data needed to send the "your results are
// ready" notification after a response has been scored.
type ResultReadyParams struct {
	To                 string // recipient email address
	QuestionnaireTitle string // used in the subject line; may be empty
	ResponseID         string // inserted into the result URL
}

// Sender is the interface the worker uses to send email.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	// SendResultReady notifies the respondent that their result is available.
	// Called by the worker after SaveEvaluation succeeds. The email carries a
	// link only — never the score or risk tier themselves.
	SendResultReady(ctx context.Context, p ResultReadyParams) error
}
