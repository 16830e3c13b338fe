package utils

import "github.com/google/uuid"

// UUIDGenerator produces record identifiers. Version 7 UUIDs are used so
// that identifiers sort by creation time.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new UUIDv7 in canonical text form, falling back to a
// random (v4) UUID if the v7 generator fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
