// SPDX-License-Identifier: MIT
// Package: forge/family
//
// api.go - capability interfaces and the base-only variants.

package family

import "github.com/katalvlaran/forge/entity"

// Factory is the capability set of a two-category family.
// Implementations MUST stamp Family() onto every entity they return.
type Factory interface {
	// Family returns the tag bound at construction time.
	Family() string
	// Categories returns the categories produced by CreatePrimary and CreateSecondary.
	Categories() (primary, secondary string)
	// CreatePrimary creates an entity of the primary category (e.g. Warrior).
	CreatePrimary(name string) (entity.Entity, error)
	// CreateSecondary creates an entity of the secondary category (e.g. Mage).
	CreateSecondary(name string) (entity.Entity, error)
}

// CarFactory is the capability set of a single-category family.
type CarFactory interface {
	// Brand returns the family tag stamped onto every car.
	Brand() string
	// OrderCar produces one car of the factory's model.
	OrderCar() (entity.Entity, error)
}

// UnimplementedFactory is a base-only Factory. Every operation fails with
// ErrUnimplementedCapability. Embed it to keep a partial variant compiling
// while its methods are being written.
type UnimplementedFactory struct{}

func (UnimplementedFactory) Family() string { return "" }

func (UnimplementedFactory) Categories() (string, string) { return "", "" }

func (UnimplementedFactory) CreatePrimary(string) (entity.Entity, error) {
	return entity.Entity{}, familyErrorf(MethodCreatePrimary, "", ErrUnimplementedCapability)
}

func (UnimplementedFactory) CreateSecondary(string) (entity.Entity, error) {
	return entity.Entity{}, familyErrorf(MethodCreateSecondary, "", ErrUnimplementedCapability)
}

// UnimplementedCarFactory is a base-only CarFactory.
type UnimplementedCarFactory struct{}

func (UnimplementedCarFactory) Brand() string { return "" }

func (UnimplementedCarFactory) OrderCar() (entity.Entity, error) {
	return entity.Entity{}, familyErrorf(MethodOrderCar, "", ErrUnimplementedCapability)
}

// Compile-time capability checks.
var (
	_ Factory    = UnimplementedFactory{}
	_ Factory    = (*CharacterFamily)(nil)
	_ CarFactory = UnimplementedCarFactory{}
	_ CarFactory = (*BrandFactory)(nil)
)
