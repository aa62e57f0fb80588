package service

import "context"

// Mail is a single outbound email.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// Mailer defines the interface for sending transactional email. Sending is
// best effort: the worker logs failures but never retries into the primary
// workflow.
type Mailer interface {
	// Send delivers a single email through the configured gateway.
	Send(ctx context.Context, mail *Mail) error
}
