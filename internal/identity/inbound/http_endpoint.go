package inbound

import (
	"github.com/cookingforum/auth/internal/identity/usecase"
	"github.com/cookingforum/auth/internal/pkg/goerror"
	"github.com/cookingforum/auth/internal/pkg/jwt"
	"github.com/cookingforum/auth/internal/pkg/router"
)

// Register handles POST /users.
func (e *endpoint) Register(r *router.Request) (any, error) {
	var req UserCreationRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err := e.uc.Register(r.Context(), usecase.RegisterInput{
		Name:             req.Name,
		Surname:          req.Surname,
		Email:            req.Email,
		Password:         req.Password,
		TwoFactorEnabled: req.TwoFactorEnabled,
	})
	if err != nil {
		return nil, err
	}

	return UserCreationResponse{Error: false, Created: true}, nil
}

// Login handles GET /jwt. Credentials arrive via HTTP basic auth.
func (e *endpoint) Login(r *router.Request) (any, error) {
	email, password, ok := r.BasicAuth()
	if !ok {
		return nil, goerror.NewAuthentication("Missing credentials")
	}

	out, err := e.uc.Login(r.Context(), usecase.LoginInput{Email: email, Password: password})
	if err != nil {
		return nil, err
	}

	return LoginResponse{
		Error:                           false,
		Jwt:                             out.Token,
		RequiresTwoFactorAuthentication: out.RequiresTwoFactor,
	}, nil
}

// LoginOTP handles GET /2fa/jwt. The authentication middleware has already
// verified the pending token and stored its claims in the context.
func (e *endpoint) LoginOTP(r *router.Request) (any, error) {
	claims := jwt.GetAuth(r.Context())
	if claims == nil {
		return nil, goerror.NewAuthentication("Wrong OTP")
	}

	var req OtpRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	out, err := e.uc.LoginOTP(r.Context(), usecase.LoginOTPInput{
		UserID:         claims.UserID,
		OtpChallengeID: claims.OtpChallengeID,
		Otp:            req.Otp,
	})
	if err != nil {
		return nil, err
	}

	return LoginResponse{Error: false, Jwt: out.Token}, nil
}
