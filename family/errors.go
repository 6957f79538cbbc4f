// SPDX-License-Identifier: MIT
// Package: forge/family
//
// errors.go - sentinel errors for the family package.
//
// Error policy:
//   - Only sentinel variables are exposed; branch with errors.Is.
//   - Call sites attach method context with familyErrorf (see below).

package family

import (
	"errors"
	"fmt"
)

// ErrUnimplementedCapability indicates an operation was invoked on a base-only
// factory that provides no concrete variant.
var ErrUnimplementedCapability = errors.New("family: capability not implemented")

// ErrUnknownVariant indicates the requested tag is not registered.
var ErrUnknownVariant = errors.New("family: unknown variant")

// ErrEmptyName indicates a create call received an empty entity name.
var ErrEmptyName = errors.New("family: name is empty")

// ErrEmptyFamily indicates a factory was constructed with an empty family tag.
var ErrEmptyFamily = errors.New("family: family tag is empty")

// ErrEmptyCategory indicates a factory was constructed with an empty category.
var ErrEmptyCategory = errors.New("family: category is empty")

// ErrEmptyTag indicates Selector.Register received an empty tag.
var ErrEmptyTag = errors.New("family: tag is empty")

// ErrNilProduct indicates Selector.Register received a nil product function.
var ErrNilProduct = errors.New("family: product function is nil")

// familyErrorf prefixes a sentinel with method context: "<method>: <detail>: <err>".
func familyErrorf(method, detail string, err error) error {
	if detail == "" {
		return fmt.Errorf("%s: %w", method, err)
	}

	return fmt.Errorf("%s: %s: %w", method, detail, err)
}
