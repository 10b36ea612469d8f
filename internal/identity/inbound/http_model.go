package inbound

import "net/http"

type UserCreationRequest struct {
	Name             string `json:"name"`
	Surname          string `json:"surname"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

type UserCreationResponse struct {
	Error   bool `json:"error" example:"false"`
	Created bool `json:"created" example:"true"`
}

type OtpRequest struct {
	Otp string `json:"otp"`
}

type LoginResponse struct {
	Error                           bool   `json:"error" example:"false"`
	Jwt                             string `json:"jwt"`
	RequiresTwoFactorAuthentication bool   `json:"requiresTwoFactorAuthentication"`
}

// StatusCode signals the pending second factor with a 302 instead of a 200.
func (r LoginResponse) StatusCode() int {
	if r.RequiresTwoFactorAuthentication {
		return http.StatusFound
	}

	return http.StatusOK
}
