package singleton

import (
	"errors"
	"fmt"
)

// Sentinel errors for guarded construction.
var (
	// ErrAlreadyInitialized indicates Construct ran after a successful Construct.
	ErrAlreadyInitialized = errors.New("singleton: already initialized")

	// ErrNotInitialized indicates the instance was requested before any
	// successful Construct.
	ErrNotInitialized = errors.New("singleton: not initialized")

	// ErrEmptyDSN indicates Connect received an empty data source name.
	ErrEmptyDSN = errors.New("singleton: dsn is empty")
)

// Method tokens used as error context prefixes.
const (
	MethodConstruct = "Construct"
	MethodInstance  = "Instance"
	MethodEnsure    = "Ensure"
)

func guardErrorf(method, name string, err error) error {
	return fmt.Errorf("%s: guard %q: %w", method, name, err)
}
