// Package identity bundles user registration and two-step login into one
// module wired from the app container.
package identity

import (
	"github.com/cookingforum/auth/internal/identity/inbound"
	"github.com/cookingforum/auth/internal/identity/outbound/db"
	"github.com/cookingforum/auth/internal/identity/usecase"
	"github.com/cookingforum/auth/internal/pkg/clock"
	"github.com/cookingforum/auth/internal/pkg/config"
	"github.com/cookingforum/auth/internal/pkg/goerror"
	"github.com/cookingforum/auth/internal/pkg/goroutine"
	"github.com/cookingforum/auth/internal/pkg/hash"
	"github.com/cookingforum/auth/internal/pkg/instrument"
	"github.com/cookingforum/auth/internal/pkg/jwt"
	"github.com/cookingforum/auth/internal/pkg/limiter"
	"github.com/cookingforum/auth/internal/pkg/otpcode"
	"github.com/cookingforum/auth/internal/pkg/router"
	"github.com/cookingforum/auth/internal/pkg/uid"
	"github.com/cookingforum/auth/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Dependency lists everything the identity module needs from the app.
type Dependency struct {
	Router     *router.Router             `validate:"required"`
	Database   *pgxpool.Pool              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Bcrypt     hash.Hash                  `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Otp        *otpcode.Manager           `validate:"required"`
	Limiter    limiter.Limiter            `validate:"-"`
	Goroutine  *goroutine.Manager         `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	JWT        jwt.JWT                    `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
}

// New validates the dependency set and registers the module's endpoints.
func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return goerror.NewInvalidInput(err)
	}

	uc := usecase.New(usecase.Dependency{
		RepoDB:     db.NewDB(dep.Database, dep.Instrument),
		Validator:  dep.Validator,
		Config:     dep.Config,
		Bcrypt:     dep.Bcrypt,
		UID:        dep.UID,
		Otp:        dep.Otp,
		Limiter:    dep.Limiter,
		Goroutine:  dep.Goroutine,
		Clock:      dep.Clock,
		JWT:        dep.JWT,
		Instrument: dep.Instrument,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
