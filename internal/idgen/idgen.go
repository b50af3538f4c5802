package idgen

import "github.com/google/uuid"

// Generator produces unique identifiers for orders and line items.
// Injected so tests can use deterministic IDs.
type Generator interface {
	NewID() string
}

// UUIDGenerator implements Generator with random UUIDs.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUID-backed generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// NewID returns a new random UUID string.
func (g *UUIDGenerator) NewID() string {
	return uuid.New().String()
}
