package prototype

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry operations.
var (
	// ErrUnknownType indicates the requested tag has no registered prototype.
	ErrUnknownType = errors.New("prototype: unknown type")

	// ErrEmptyTag indicates Register received an empty tag.
	ErrEmptyTag = errors.New("prototype: tag is empty")

	// ErrNilPrototype indicates Register received the zero Entity.
	ErrNilPrototype = errors.New("prototype: prototype is empty")

	// ErrInvalidCount indicates Spawn was asked for fewer than one clone.
	ErrInvalidCount = errors.New("prototype: count must be at least 1")
)

// Method tokens used as error context prefixes.
const (
	MethodRegister = "Register"
	MethodCreate   = "Create"
	MethodSpawn    = "Spawn"
)

func registryErrorf(method, tag string, err error) error {
	return fmt.Errorf("%s(%q): %w", method, tag, err)
}
