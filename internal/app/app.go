// Package app wires configuration, resources, and modules into a runnable
// service.
package app

import (
	"context"
	"net/http"

	"github.com/cookingforum/auth/internal/pkg/clock"
	"github.com/cookingforum/auth/internal/pkg/config"
	"github.com/cookingforum/auth/internal/pkg/goroutine"
	"github.com/cookingforum/auth/internal/pkg/hash"
	"github.com/cookingforum/auth/internal/pkg/instrument"
	"github.com/cookingforum/auth/internal/pkg/jwt"
	"github.com/cookingforum/auth/internal/pkg/limiter"
	"github.com/cookingforum/auth/internal/pkg/mail"
	"github.com/cookingforum/auth/internal/pkg/otpcode"
	"github.com/cookingforum/auth/internal/pkg/router"
	"github.com/cookingforum/auth/internal/pkg/uid"
	"github.com/cookingforum/auth/internal/pkg/validator"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	bcrypt    hash.Hash
	uid       uid.NumberID
	uuid      uid.StringID
	otp       *otpcode.Manager
	jwt       jwt.JWT

	// resources
	dbConn    *pgxpool.Pool
	cacheConn *redis.Client
	limiter   limiter.Limiter
	mail      mail.Mail

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initJWT()
	app.initDatabase()
	app.initCache()
	app.initOtp()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
