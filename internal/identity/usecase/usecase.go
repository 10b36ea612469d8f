// Package usecase holds the authentication workflows: registration, the
// password factor, and the OTP second factor.
package usecase

import (
	"context"
	"time"

	"github.com/cookingforum/auth/internal/identity/entity"
	"github.com/cookingforum/auth/internal/pkg/clock"
	"github.com/cookingforum/auth/internal/pkg/config"
	"github.com/cookingforum/auth/internal/pkg/goroutine"
	"github.com/cookingforum/auth/internal/pkg/hash"
	"github.com/cookingforum/auth/internal/pkg/instrument"
	"github.com/cookingforum/auth/internal/pkg/jwt"
	"github.com/cookingforum/auth/internal/pkg/limiter"
	"github.com/cookingforum/auth/internal/pkg/uid"
	"github.com/cookingforum/auth/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type repoDB interface {
	CreateUser(ctx context.Context, user entity.NewUser, passwordHash string) (bool, error)
	GetUserAuthInfo(ctx context.Context, email string) (*entity.UserAuthInfo, error)

	CreateOtpChallenge(ctx context.Context, ch entity.OtpChallenge) error
	GetOtpChallenge(ctx context.Context, id, userID int64) (*entity.OtpChallenge, error)
	DeleteOtpChallenge(ctx context.Context, id, userID int64) (bool, error)
}

type otpManager interface {
	Issue(ctx context.Context, recipient string) (string, error)
	Verify(code, hashed string) bool
}

type Usecase struct {
	repoDB    repoDB
	validator validator.Validator
	cfg       config.Config
	bcrypt    hash.Hash
	uid       uid.NumberID
	otp       otpManager
	limiter   limiter.Limiter
	goroutine *goroutine.Manager
	clock     clock.Clocker
	jwt       jwt.JWT
	ins       instrument.Instrumentation
}

type Dependency struct {
	RepoDB     repoDB
	Validator  validator.Validator
	Config     config.Config
	Bcrypt     hash.Hash
	UID        uid.NumberID
	Otp        otpManager
	Limiter    limiter.Limiter
	Goroutine  *goroutine.Manager
	Clock      clock.Clocker
	JWT        jwt.JWT
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		repoDB:    dep.RepoDB,
		validator: dep.Validator,
		cfg:       dep.Config,
		bcrypt:    dep.Bcrypt,
		uid:       dep.UID,
		otp:       dep.Otp,
		limiter:   dep.Limiter,
		goroutine: dep.Goroutine,
		clock:     dep.Clock,
		jwt:       dep.JWT,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}

// asUTCWallClock reinterprets the wall-clock fields of t as a UTC instant.
//
// Storage round-trips may attach a local zone offset to created_at. The
// recorded wall-clock digits are the truth, so they are rebuilt in UTC
// instead of being converted.
func asUTCWallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
