package utils

import "github.com/google/uuid"

// UUIDGenerator produces time-ordered identifiers. Queue item ids double as
// idempotency keys, so monotonic ordering keeps server-side logs readable.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7 string, falling back to a random UUIDv4 if the
// system clock source is unavailable.
func (g *UUIDGenerator) Generate() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
