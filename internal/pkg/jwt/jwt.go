// Package jwt generates and verifies JSON Web Tokens. It carries a typed
// Claims wrapper on top of the registered claims, an HS256 signer, and
// context helpers for passing authenticated claims through a request.
package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningMethod is returned when the JWT signing method is not supported.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyTooShort is returned when the HS256 signing key is less than 32 bytes.
	ErrSigningKeyTooShort = errors.New("HS256 signing key must be at least 32 bytes (256 bits)")

	// ErrTokenExpired is returned when the JWT token has expired.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken is returned when the token is malformed or fails validation.
	ErrInvalidToken = errors.New("invalid token")
)

// JWT defines the operations needed by the app: generate session tokens and
// verify them.
type JWT interface {
	// Generate creates a fully authenticated session token for the user.
	Generate(uid int64) (string, error)
	// GeneratePending creates a token that references an unresolved OTP
	// challenge. It is only exchangeable for a full session token.
	GeneratePending(uid, challengeID int64) (string, error)
	// Verify parses and validates the token and returns claims.
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config defines the inputs for building a JWT implementation.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is the token issuer value.
	Issuer string
	// TTL is the session token time-to-live.
	TTL time.Duration
	// PendingTTL is the time-to-live of tokens awaiting an OTP exchange.
	// Zero means PendingTTL falls back to TTL.
	PendingTTL time.Duration
	// Clock provides the current time source.
	Clock clocker
	// UUID generates token IDs.
	UUID generator
}

// Claims is a helper for wrapping registered claims with a payload.
type Claims struct {
	// RegisteredClaims holds the standard JWT claims.
	jwt.RegisteredClaims
	// UserID is the authenticated user identifier.
	UserID int64 `json:"userId"`
	// OtpChallengeID references a pending OTP challenge. When set, the token
	// is not a full session and may only be exchanged via OTP verification.
	OtpChallengeID *int64 `json:"otpChallengeId,omitempty"`
}

// Pending reports whether the claims still reference an OTP challenge.
func (c Claims) Pending() bool {
	return c.OtpChallengeID != nil
}

// GetAuth returns the JWT claims stored in the context, if any.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores JWT claims in the context.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
