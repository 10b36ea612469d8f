package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cookingforum/auth/internal/identity/entity"
	"github.com/cookingforum/auth/internal/pkg/goerror"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	Token             string
	RequiresTwoFactor bool
}

// Login verifies the password factor. Accounts without two-factor enabled
// receive a full session token. Accounts with it enabled receive a pending
// token bound to a freshly issued OTP challenge, and the session only
// completes once LoginOTP exchanges that token.
//
// Every first-factor failure collapses into the same response so the caller
// cannot tell an unknown address from a wrong password.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, goerror.NewAuthentication("Invalid username or password")
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// A broken limiter must not lock everyone out.
			slog.WarnContext(ctx, "login limiter unavailable", "error", err)
		} else if !allowed {
			return nil, goerror.NewBusiness("Too many login attempts, try again later", goerror.CodeTooManyRequest)
		}
	}

	user, err := s.repoDB.GetUserAuthInfo(ctx, email)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			s.hitLimiter(ctx, email)

			return nil, goerror.NewAuthentication("Invalid username or password")
		}

		slog.ErrorContext(ctx, "failed to get user auth info", "error", err)

		return nil, goerror.NewServer(err)
	}

	if !s.bcrypt.Verify(user.Password, in.Password) {
		s.hitLimiter(ctx, email)

		return nil, goerror.NewAuthentication("Invalid username or password")
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			slog.WarnContext(ctx, "failed to reset login limiter", "error", err)
		}
	}

	if !user.TwoFactorEnabled {
		token, err := s.jwt.Generate(user.ID)
		if err != nil {
			slog.ErrorContext(ctx, "failed to generate session token", "error", err)

			return nil, goerror.NewServer(err)
		}

		return &LoginOutput{Token: token}, nil
	}

	// The code is delivered before anything is persisted. A delivery failure
	// leaves no orphaned challenge behind.
	codeHash, err := s.otp.Issue(ctx, user.Email)
	if err != nil {
		slog.ErrorContext(ctx, "failed to issue one-time code", "error", err)

		return nil, goerror.NewAuthentication("Unable to generate the OTP")
	}

	challenge := entity.OtpChallenge{
		ID:       s.uid.Generate(),
		UserID:   user.ID,
		CodeHash: codeHash,
	}

	if err := s.repoDB.CreateOtpChallenge(ctx, challenge); err != nil {
		slog.ErrorContext(ctx, "failed to store otp challenge", "error", err)

		return nil, goerror.NewAuthentication("Unable to generate the OTP")
	}

	token, err := s.jwt.GeneratePending(user.ID, challenge.ID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate pending token", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &LoginOutput{Token: token, RequiresTwoFactor: true}, nil
}

// hitLimiter records a failed attempt, off the request path when a goroutine
// manager is available.
func (s *Usecase) hitLimiter(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}

	record := func(ctx context.Context) error {
		if err := s.limiter.Hit(ctx, email); err != nil {
			slog.WarnContext(ctx, "failed to record login attempt", "error", err)
		}

		return nil
	}

	if s.goroutine != nil {
		s.goroutine.Go(context.WithoutCancel(ctx), record)
		return
	}

	_ = record(ctx)
}
