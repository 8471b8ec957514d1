// Package email provides the delivery-provider boundary for outreach sends.
package email

import (
	"context"
	"errors"
)

// ErrNotConfigured indicates the delivery provider credentials are missing.
// Surfaced as a configuration error at construction, never as a crash.
var ErrNotConfigured = errors.New("email service not configured")

// Message is one outbound email.
type Message struct {
	From    string // display form, e.g. "Jane <noreply@resend.dev>"
	To      string
	Subject string
	HTML    string
	Text    string
	ReplyTo string
}

// Sender delivers a single message and returns the provider's email id.
// Implementations are safe for concurrent use; the dispatcher fans out one
// Send per recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}
