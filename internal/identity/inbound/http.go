// Package inbound exposes the identity workflows over HTTP.
package inbound

import (
	"context"

	"github.com/cookingforum/auth/internal/identity/usecase"
	"github.com/cookingforum/auth/internal/pkg/router"
)

type uc interface {
	Register(ctx context.Context, in usecase.RegisterInput) error
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)
	LoginOTP(ctx context.Context, in usecase.LoginOTPInput) (*usecase.LoginOTPOutput, error)
}

type endpoint struct {
	uc uc
}

// RegisterHTTPEndpoint wires the identity endpoints into the router.
func RegisterHTTPEndpoint(ro *router.Router, uc uc) {
	ep := &endpoint{uc: uc}

	ro.POST("/users", ep.Register)
	ro.GET("/jwt", ep.Login)
	ro.GET("/2fa/jwt", ep.LoginOTP)
}
