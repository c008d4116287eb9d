package domain

import "github.com/google/uuid"

// IDGenerator produces opaque, collision-resistant record identifiers.
type IDGenerator interface {
	Generate() string
}

// UUIDGenerator issues random (version 4) UUIDs rendered as text.
// The store's primary key is the backstop if two ever collide.
type UUIDGenerator struct{}

// Generate returns a fresh random identifier.
func (UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// GeneratorFunc adapts a plain function to IDGenerator.
type GeneratorFunc func() string

// Generate calls f.
func (f GeneratorFunc) Generate() string { return f() }
