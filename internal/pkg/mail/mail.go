// Package mail abstracts email delivery so callers never depend on a
// concrete provider. The one-time code sender works against the Mail
// interface; SMTP is the shipped implementation.
package mail

import (
	"context"
	"io"
)

// Message is a provider-agnostic email payload.
type Message struct {
	// From overrides the configured default sender when set.
	From string
	// To lists the primary recipients. At least one recipient across
	// To/Cc/Bcc is required.
	To []string
	// Cc lists carbon copy recipients.
	Cc []string
	// Bcc lists blind carbon copy recipients.
	Bcc []string
	// Subject is the subject line.
	Subject string
	// TextBody is the plain-text body.
	TextBody string
	// HTMLBody, when set, is sent alongside TextBody as an alternative part.
	HTMLBody string
}

// Mail delivers email messages.
type Mail interface {
	io.Closer
	// Send dispatches the given message using the underlying provider.
	Send(ctx context.Context, msg Message) error
}
