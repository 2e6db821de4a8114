package utils

import "github.com/google/uuid"

// UUIDGenerator hands out entry and group ids. Version 7 is preferred so ids
// sort by creation time; a random v4 is returned if the v7 source fails.
type UUIDGenerator struct {
	newV7 func() (uuid.UUID, error)
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{newV7: uuid.NewV7}
}

func (g *UUIDGenerator) Generate() string {
	if id, err := g.newV7(); err == nil {
		return id.String()
	}
	return uuid.New().String()
}
