// Package uuid generates run and player identifiers behind an interface so
// tests can pin them.
package uuid

//go:generate mockgen -destination=mock/mock_generator.go -package=mockuuid -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator creates unique identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random v4 UUIDs
type GoogleUUIDGenerator struct {
	prefix string
}

// New generates a new identifier
func (g *GoogleUUIDGenerator) New() string {
	if g.prefix == "" {
		return uuid.New().String()
	}
	return g.prefix + "_" + uuid.New().String()
}

// NewGoogleUUIDGenerator creates a generator producing bare UUIDs
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

// NewPrefixedGenerator creates a generator producing "<prefix>_<uuid>" identifiers
func NewPrefixedGenerator(prefix string) *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{prefix: prefix}
}
