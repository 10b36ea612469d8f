package otpcode

import (
	"context"
	"errors"
	"testing"

	"github.com/cookingforum/auth/internal/pkg/hash"
)

type captureSender struct {
	recipient string
	code      string
	err       error
}

func (s *captureSender) Send(_ context.Context, recipient, code string) error {
	if s.err != nil {
		return s.err
	}

	s.recipient = recipient
	s.code = code

	return nil
}

func TestManagerIssue(t *testing.T) {
	t.Run("DeliversSixDigitCode", func(t *testing.T) {
		// Arrange
		sender := &captureSender{}
		m := NewManager(hash.NewBcrypt(4, ""), sender)

		// Act
		hashed, err := m.Issue(context.Background(), "user@example.com")
		if err != nil {
			t.Fatalf("issue failed: %v", err)
		}

		// Assert
		if sender.recipient != "user@example.com" {
			t.Fatalf("recipient = %q", sender.recipient)
		}
		if len(sender.code) != 6 {
			t.Fatalf("code %q is not six digits", sender.code)
		}
		for _, c := range sender.code {
			if c < '0' || c > '9' {
				t.Fatalf("code %q contains a non-digit", sender.code)
			}
		}
		if !m.Verify(sender.code, hashed) {
			t.Fatalf("expected delivered code to verify against stored hash")
		}
	})

	t.Run("SendFailurePropagates", func(t *testing.T) {
		// Arrange
		sender := &captureSender{err: errors.New("smtp down")}
		m := NewManager(hash.NewBcrypt(4, ""), sender)

		// Act
		_, err := m.Issue(context.Background(), "user@example.com")

		// Assert
		if err == nil {
			t.Fatalf("expected delivery failure to propagate")
		}
	})
}

func TestManagerVerify(t *testing.T) {
	t.Run("WrongCodeFails", func(t *testing.T) {
		// Arrange
		sender := &captureSender{}
		m := NewManager(hash.NewBcrypt(4, ""), sender)

		hashed, err := m.Issue(context.Background(), "user@example.com")
		if err != nil {
			t.Fatalf("issue failed: %v", err)
		}

		wrong := "000000"
		if sender.code == wrong {
			wrong = "000001"
		}

		// Act & Assert
		if m.Verify(wrong, hashed) {
			t.Fatalf("expected wrong code to fail")
		}
	})
}
