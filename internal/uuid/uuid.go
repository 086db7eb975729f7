// Package uuid hands out match identifiers behind an interface so tests can pin them.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	New() string
}

type randomGenerator struct{}

// NewGenerator returns a Generator backed by random (v4) UUIDs
func NewGenerator() Generator {
	return &randomGenerator{}
}

// New generates a new UUID string
func (g *randomGenerator) New() string {
	return uuid.NewString()
}
