package entity

import "time"

// User is the registered account as seen by the rest of the application. The
// password hash never leaves the storage layer inside this type.
type User struct {
	ID               int64
	Name             string
	Surname          string
	Email            string
	TwoFactorEnabled bool
}

// UserAuthInfo is the storage projection used for credential verification.
type UserAuthInfo struct {
	ID               int64
	Name             string
	Surname          string
	Email            string
	Password         string // hashed
	TwoFactorEnabled bool
}

// User strips the password hash.
func (u UserAuthInfo) User() User {
	return User{
		ID:               u.ID,
		Name:             u.Name,
		Surname:          u.Surname,
		Email:            u.Email,
		TwoFactorEnabled: u.TwoFactorEnabled,
	}
}

// NewUser carries the fields needed to register an account. The password hash
// travels separately.
type NewUser struct {
	ID               int64
	Name             string
	Surname          string
	Email            string
	TwoFactorEnabled bool
}

// OtpChallenge pairs a hashed one-time code with its creation instant. It is
// bound to the user that triggered it and consumed at most once.
type OtpChallenge struct {
	ID        int64
	UserID    int64
	CodeHash  string
	CreatedAt time.Time
}
