// Package builder provides validation helpers enforcing the mandatory-field
// contract of New and SetTrait.
//
// Each function returns a wrapped ErrMissingField via builderErrorf when its
// precondition is violated.
package builder

// validateMandatory ensures name and category are non-empty.
// The name is checked first so the reported field is deterministic.
// Complexity: O(1).
func validateMandatory(method, name, category string) error {
	if name == "" {
		return builderErrorf(method, FieldName, ErrMissingField)
	}
	if category == "" {
		return builderErrorf(method, FieldCategory, ErrMissingField)
	}

	return nil
}

// validateTraitKey ensures a trait key is non-empty.
func validateTraitKey(method, key string) error {
	if key == "" {
		return builderErrorf(method, FieldTraitKey, ErrMissingField)
	}

	return nil
}
