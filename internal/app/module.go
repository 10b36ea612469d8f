package app

import (
	"log/slog"
	"os"

	"github.com/cookingforum/auth/internal/identity"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.identity.enabled") {
		if err := identity.New(identity.Dependency{
			Router:     a.router,
			Database:   a.dbConn,
			Validator:  a.validator,
			Config:     a.config,
			Bcrypt:     a.bcrypt,
			UID:        a.uid,
			Otp:        a.otp,
			Limiter:    a.limiter,
			Goroutine:  a.goroutine,
			Clock:      a.clock,
			JWT:        a.jwt,
			Instrument: a.ins,
		}); err != nil {
			slog.Error("failed to init module identity", "error", err)
			os.Exit(1)
		}
	}
}
