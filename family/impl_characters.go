// File: impl_characters.go
// Role: two-category character families (Good / Evil and custom ones).
//
// Invariant:
//   - family, primary and secondary are fixed at construction; no setter exists.

package family

import "github.com/katalvlaran/forge/entity"

// CharacterFamily produces characters of two categories, all tagged with the
// same family. The zero value is not usable; construct with NewCharacterFamily,
// NewGood or NewEvil.
type CharacterFamily struct {
	family    string
	primary   string
	secondary string
}

// NewCharacterFamily binds tag to a factory producing primary/secondary
// categories. Fails with ErrEmptyFamily or ErrEmptyCategory on blank input.
func NewCharacterFamily(tag, primary, secondary string) (*CharacterFamily, error) {
	if tag == "" {
		return nil, familyErrorf(MethodNewFamily, "", ErrEmptyFamily)
	}
	if primary == "" || secondary == "" {
		return nil, familyErrorf(MethodNewFamily, "family "+tag, ErrEmptyCategory)
	}

	return &CharacterFamily{family: tag, primary: primary, secondary: secondary}, nil
}

// NewGood returns the "Good" family producing Warriors and Mages.
func NewGood() *CharacterFamily {
	return &CharacterFamily{family: FamilyGood, primary: CategoryWarrior, secondary: CategoryMage}
}

// NewEvil returns the "Evil" family producing Warriors and Mages.
func NewEvil() *CharacterFamily {
	return &CharacterFamily{family: FamilyEvil, primary: CategoryWarrior, secondary: CategoryMage}
}

// Family returns the bound family tag.
func (f *CharacterFamily) Family() string { return f.family }

// Categories returns (primary, secondary).
func (f *CharacterFamily) Categories() (string, string) { return f.primary, f.secondary }

// CreatePrimary creates a primary-category character named name.
func (f *CharacterFamily) CreatePrimary(name string) (entity.Entity, error) {
	return f.create(MethodCreatePrimary, name, f.primary)
}

// CreateSecondary creates a secondary-category character named name.
func (f *CharacterFamily) CreateSecondary(name string) (entity.Entity, error) {
	return f.create(MethodCreateSecondary, name, f.secondary)
}

func (f *CharacterFamily) create(method, name, category string) (entity.Entity, error) {
	if name == "" {
		return entity.Entity{}, familyErrorf(method, "family "+f.family, ErrEmptyName)
	}

	return entity.New(name, category, f.family), nil
}
