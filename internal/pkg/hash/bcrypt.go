package hash

import "golang.org/x/crypto/bcrypt"

// Bcrypt hashes secrets with bcrypt, appending a configured pepper to the
// plaintext first. The pepper lives in configuration, never next to the
// hashes it protects.
type Bcrypt struct {
	cost   int
	pepper string
}

var _ Hash = (*Bcrypt)(nil)

// NewBcrypt builds a hasher with the given work factor. An out-of-range cost
// falls back to bcrypt.DefaultCost.
func NewBcrypt(cost int, pepper string) *Bcrypt {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Bcrypt{cost: cost, pepper: pepper}
}

// Hash derives a bcrypt hash of the peppered plaintext.
func (h *Bcrypt) Hash(plaintext string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(plaintext+h.pepper), h.cost)
}

// Verify reports whether plaintext, after peppering, matches hashed.
func (h *Bcrypt) Verify(hashed, plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plaintext+h.pepper)) == nil
}
