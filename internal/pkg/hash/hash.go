// Package hash provides the slow one-way hashing primitive shared by
// password storage and one-time code storage. Only hashes are ever
// persisted; verification compares a claimed plaintext against the stored
// hash.
package hash

// Hash is a one-way hashing primitive for secrets such as passwords and
// one-time codes.
type Hash interface {
	// Hash produces a hash of plaintext suitable for storage.
	Hash(plaintext string) ([]byte, error)
	// Verify reports whether plaintext matches the stored hash.
	Verify(hashed, plaintext string) bool
}
