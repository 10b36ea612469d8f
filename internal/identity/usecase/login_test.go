package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/cookingforum/auth/internal/pkg/goerror"
)

func TestLogin(t *testing.T) {
	t.Run("WithoutTwoFactor", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", false)

		// Act
		out, err := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Str0ng!pass"})

		// Assert
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if out.Token != "session-token" {
			t.Fatalf("token = %q, want a full session token", out.Token)
		}
		if out.RequiresTwoFactor {
			t.Fatalf("two-factor must not be required")
		}
		if f.repo.createdChallenge != nil {
			t.Fatalf("no challenge must be issued without two-factor")
		}
	})

	t.Run("WithTwoFactor", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", true)

		// Act
		out, err := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Str0ng!pass"})

		// Assert
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if out.Token != "pending-token" {
			t.Fatalf("token = %q, want a pending token", out.Token)
		}
		if !out.RequiresTwoFactor {
			t.Fatalf("two-factor must be required")
		}
		if f.repo.createdChallenge == nil {
			t.Fatalf("expected a stored challenge")
		}
		if f.repo.createdChallenge.UserID != 100 {
			t.Fatalf("challenge user id = %d, want 100", f.repo.createdChallenge.UserID)
		}
		if f.otp.Verify("123456", f.repo.createdChallenge.CodeHash) != true {
			t.Fatalf("stored challenge hash does not match the issued code")
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		// Arrange
		f := newFixture(t)

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "Str0ng!pass"})

		// Assert
		assertAuthError(t, err, "Invalid username or password")
	})

	t.Run("WrongPassword", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", false)

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Wr0ng!pass"})

		// Assert
		assertAuthError(t, err, "Invalid username or password")
	})

	t.Run("MissingCredentials", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", false)

		// Act
		_, errNoEmail := f.uc.Login(context.Background(), LoginInput{Password: "Str0ng!pass"})
		_, errNoPassword := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com"})

		// Assert
		assertAuthError(t, errNoEmail, "Invalid username or password")
		assertAuthError(t, errNoPassword, "Invalid username or password")
	})

	t.Run("EmailIsCaseInsensitive", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", false)

		// Act
		out, err := f.uc.Login(context.Background(), LoginInput{Email: "Ada@Example.COM", Password: "Str0ng!pass"})

		// Assert
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if out.Token == "" {
			t.Fatalf("expected a token")
		}
	})

	t.Run("TooManyAttempts", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", false)
		lim := &fakeLimiter{blocked: true}
		f.uc.limiter = lim

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Str0ng!pass"})

		// Assert
		var gerr *goerror.Error
		if !errors.As(err, &gerr) {
			t.Fatalf("expected *goerror.Error, got %T (%v)", err, err)
		}
		if gerr.Code() != goerror.CodeTooManyRequest {
			t.Fatalf("code = %v, want too many requests", gerr.Code())
		}
		if gerr.Msg() != "Too many login attempts, try again later" {
			t.Fatalf("message = %q", gerr.Msg())
		}
		if lim.hits != 0 {
			t.Fatalf("a blocked attempt must not be counted as a failure")
		}
	})

	t.Run("FailedAttemptsAreCounted", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", false)
		lim := &fakeLimiter{}
		f.uc.limiter = lim

		// Act
		_, errWrongPassword := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Wr0ng!pass"})
		_, errUnknownEmail := f.uc.Login(context.Background(), LoginInput{Email: "ghost@example.com", Password: "Str0ng!pass"})

		// Assert
		assertAuthError(t, errWrongPassword, "Invalid username or password")
		assertAuthError(t, errUnknownEmail, "Invalid username or password")
		if lim.hits != 2 {
			t.Fatalf("hits = %d, want 2", lim.hits)
		}
		if lim.resets != 0 {
			t.Fatalf("resets = %d, want 0", lim.resets)
		}
	})

	t.Run("SuccessResetsAttempts", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", false)
		lim := &fakeLimiter{}
		f.uc.limiter = lim

		// Act
		out, err := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Str0ng!pass"})

		// Assert
		if err != nil {
			t.Fatalf("login failed: %v", err)
		}
		if out.Token != "session-token" {
			t.Fatalf("token = %q, want a full session token", out.Token)
		}
		if lim.resets != 1 {
			t.Fatalf("resets = %d, want 1", lim.resets)
		}
		if lim.hits != 0 {
			t.Fatalf("hits = %d, want 0", lim.hits)
		}
	})

	t.Run("LimiterOutageFailsOpen", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", false)
		lim := &fakeLimiter{allowErr: errors.New("redis unreachable"), hitErr: errors.New("redis unreachable")}
		f.uc.limiter = lim

		// Act
		outGood, errGood := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Str0ng!pass"})
		_, errBad := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Wr0ng!pass"})

		// Assert
		if errGood != nil {
			t.Fatalf("login must succeed when the limiter is unavailable: %v", errGood)
		}
		if outGood.Token != "session-token" {
			t.Fatalf("token = %q, want a full session token", outGood.Token)
		}
		assertAuthError(t, errBad, "Invalid username or password")
	})

	t.Run("DeliveryFailure", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", true)
		f.otp.issueErr = errors.New("smtp down")

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Str0ng!pass"})

		// Assert
		assertAuthError(t, err, "Unable to generate the OTP")
		if f.repo.createdChallenge != nil {
			t.Fatalf("no challenge must be stored when delivery fails")
		}
	})

	t.Run("ChallengePersistFailure", func(t *testing.T) {
		// Arrange
		f := newFixture(t)
		f.seedUser(t, "ada@example.com", "Str0ng!pass", true)
		f.repo.createChallengeErr = errors.New("connection reset")

		// Act
		_, err := f.uc.Login(context.Background(), LoginInput{Email: "ada@example.com", Password: "Str0ng!pass"})

		// Assert
		assertAuthError(t, err, "Unable to generate the OTP")
	})
}
