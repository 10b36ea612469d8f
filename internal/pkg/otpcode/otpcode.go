// Package otpcode generates, delivers, and verifies numeric one-time passwords.
package otpcode

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/cookingforum/auth/internal/pkg/hash"
)

// codeSpace is the number of possible codes (000000 through 999999).
var codeSpace = big.NewInt(1_000_000)

// Sender delivers a plaintext one-time code to a recipient out-of-band.
type Sender interface {
	Send(ctx context.Context, recipient, code string) error
}

// Manager issues and verifies one-time codes.
//
// Issue delivers the plaintext before hashing it; if delivery fails, no hash
// is returned and nothing should be persisted. The plaintext is never stored.
type Manager struct {
	hasher hash.Hash
	sender Sender
}

// NewManager constructs a Manager from a slow hash primitive and a delivery
// channel.
func NewManager(hasher hash.Hash, sender Sender) *Manager {
	return &Manager{hasher: hasher, sender: sender}
}

// Issue draws a uniformly random 6-digit code, sends it to recipient, and
// returns the hash of the code for storage.
func (m *Manager) Issue(ctx context.Context, recipient string) (string, error) {
	n, err := rand.Int(rand.Reader, codeSpace)
	if err != nil {
		return "", err
	}

	// Leading zeros are part of the code. "7" must render as "000007".
	code := fmt.Sprintf("%06d", n.Int64())

	if err := m.sender.Send(ctx, recipient, code); err != nil {
		return "", err
	}

	hashed, err := m.hasher.Hash(code)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// Verify reports whether code matches the stored hash. A mismatch is not an
// error.
func (m *Manager) Verify(code, hashed string) bool {
	return m.hasher.Verify(hashed, code)
}
