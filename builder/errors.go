// SPDX-License-Identifier: MIT
// Package: forge/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Call sites attach method context with builderErrorf; the sentinel stays
//     reachable through %w.
//   • Builder methods MUST NOT panic; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrMissingField indicates that a mandatory value (name, category, trait key)
// is empty.
// Usage: if errors.Is(err, ErrMissingField) { /* report invalid input */ }.
var ErrMissingField = errors.New("builder: mandatory field is empty")

// ErrInvalidBuilderState indicates a setter (or Apply) was called after the
// builder reached the Built state. The accumulator is left untouched.
var ErrInvalidBuilderState = errors.New("builder: operation not permitted after build")

// ErrAlreadyBuilt indicates Build was invoked on a builder that has already
// produced its entity.
var ErrAlreadyBuilt = errors.New("builder: already built")

// builderErrorf wraps err with method context.
// It returns an error of the form "<Method>: <detail>: <err>", or
// "<Method>: <err>" when detail is empty.
//
// Complexity: O(len(detail)), negligible for our use.
func builderErrorf(method, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
