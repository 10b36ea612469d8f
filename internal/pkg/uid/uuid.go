package uid

import "github.com/google/uuid"

// UUID issues time-ordered UUIDv7 strings, falling back to random v4 when
// the v7 source fails.
type UUID struct{}

var _ StringID = (*UUID)(nil)

// NewUUID returns a UUID generator.
func NewUUID() *UUID {
	return &UUID{}
}

// Generate returns a new UUID string.
func (*UUID) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}

	return uuid.NewString()
}
