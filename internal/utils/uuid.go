package utils

import "github.com/google/uuid"

// UUIDGenerator issues identifiers for new records. Ids are UUIDv7, so they
// sort by creation time.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

// Generate falls back to a random v4 id when the v7 source fails.
func (g *UUIDGenerator) Generate() string {
	id, err := g.newV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
