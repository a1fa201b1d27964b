package id

import (
	"fmt"

	"github.com/google/uuid"
)

// Generator creates opaque IDs suitable for object keys.
type Generator interface {
	NewID() (string, error)
}

// UUIDGenerator yields random version 4 UUIDs.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

func (g *UUIDGenerator) NewID() (string, error) {
	v, err := uuid.NewRandom()
	if err != nil {
		return "", fmt.Errorf("generate uuid: %w", err)
	}

	return v.String(), nil
}

// StaticGenerator returns the same ID every time. Useful in tests.
type StaticGenerator string

func (g StaticGenerator) NewID() (string, error) {
	if g == "" {
		return "", fmt.Errorf("static id is empty")
	}
	return string(g), nil
}
