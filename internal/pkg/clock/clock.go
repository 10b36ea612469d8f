// Package clock abstracts the current time behind a small interface so OTP
// expiry and token lifetimes can be tested against a fixed instant.
package clock

import "time"

// Clocker supplies the current time.
type Clocker interface {
	Now() time.Time
}

// TimeClocker reads the system clock.
type TimeClocker struct{}

var _ Clocker = (*TimeClocker)(nil)

// New returns the production clock.
func New() *TimeClocker {
	return &TimeClocker{}
}

// Now reports the current system time.
func (*TimeClocker) Now() time.Time {
	return time.Now()
}
