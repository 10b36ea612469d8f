package otpcode

import (
	"context"
	"log/slog"
	"time"

	"github.com/cookingforum/auth/internal/pkg/mail"
	"github.com/sethvargo/go-retry"
)

// LogSender writes codes to the log instead of delivering them. It is meant
// for local development only.
type LogSender struct{}

// Send logs the code.
func (LogSender) Send(ctx context.Context, recipient, code string) error {
	slog.InfoContext(ctx, "one-time code issued", "recipient", recipient, "otp", code)
	return nil
}

// MailSender delivers codes by email.
type MailSender struct {
	mailer  mail.Mail
	subject string
	retries uint64
}

// NewMailSender constructs a MailSender. retries bounds how many times a
// failed SMTP send is reattempted before giving up.
func NewMailSender(mailer mail.Mail, subject string, retries uint64) *MailSender {
	if subject == "" {
		subject = "Your one-time code"
	}

	return &MailSender{mailer: mailer, subject: subject, retries: retries}
}

// Send emails the code to the recipient, retrying transient failures with a
// capped fibonacci backoff.
func (s *MailSender) Send(ctx context.Context, recipient, code string) error {
	backoff := retry.NewFibonacci(200 * time.Millisecond)
	backoff = retry.WithCappedDuration(2*time.Second, backoff)
	backoff = retry.WithMaxRetries(s.retries, backoff)

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := s.mailer.Send(ctx, mail.Message{
			To:       []string{recipient},
			Subject:  s.subject,
			TextBody: "Your one-time code is " + code + ". It expires shortly, do not share it.",
		})
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
