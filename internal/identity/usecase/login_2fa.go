package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cookingforum/auth/internal/pkg/goerror"
)

type LoginOTPInput struct {
	UserID         int64
	OtpChallengeID *int64
	Otp            string `validate:"required"`
}

type LoginOTPOutput struct {
	Token string
}

// LoginOTP exchanges a pending token plus a one-time code for a full session
// token. The challenge is consumed atomically, so a code can only ever be
// redeemed once even under concurrent attempts.
//
// Every verification failure collapses into the same response. The caller
// learns nothing about whether the challenge was missing, expired, already
// consumed, or the code simply wrong.
func (s *Usecase) LoginOTP(ctx context.Context, in LoginOTPInput) (*LoginOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "LoginOTP")
	defer span.End()

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	if in.UserID == 0 || in.OtpChallengeID == nil {
		return nil, goerror.NewAuthentication("Wrong OTP")
	}

	challenge, err := s.repoDB.GetOtpChallenge(ctx, *in.OtpChallengeID, in.UserID)
	if err != nil {
		if errors.Is(err, goerror.ErrNotFound) {
			return nil, goerror.NewAuthentication("Wrong OTP")
		}

		slog.ErrorContext(ctx, "failed to get otp challenge", "error", err)

		return nil, goerror.NewServer(err)
	}

	expiresAt := asUTCWallClock(challenge.CreatedAt).Add(s.cfg.GetSecond("modules.identity.otp_ttl_seconds"))
	if s.clock.Now().After(expiresAt) {
		return nil, goerror.NewAuthentication("Wrong OTP")
	}

	if !s.otp.Verify(in.Otp, challenge.CodeHash) {
		return nil, goerror.NewAuthentication("Wrong OTP")
	}

	consumed, err := s.repoDB.DeleteOtpChallenge(ctx, challenge.ID, in.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to consume otp challenge", "error", err)

		return nil, goerror.NewServer(err)
	}

	if !consumed {
		// A concurrent verification won the delete.
		return nil, goerror.NewAuthentication("Wrong OTP")
	}

	token, err := s.jwt.Generate(in.UserID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate session token", "error", err)

		return nil, goerror.NewServer(err)
	}

	return &LoginOTPOutput{Token: token}, nil
}
