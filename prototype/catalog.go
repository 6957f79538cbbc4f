package prototype

import "github.com/katalvlaran/forge/entity"

// Seed catalog tags.
const (
	TagWarrior = "Warrior"
	TagMage    = "Mage"
	TagOrc     = "Orc"
)

// Characters returns the built-in character prototypes keyed by tag.
// The map is freshly allocated on each call.
func Characters() map[string]entity.Entity {
	return map[string]entity.Entity{
		TagWarrior: entity.New("Arthur", "Warrior", "Good",
			entity.WithAccessoryA("Sword"), entity.WithAccessoryB("Plate mail")),
		TagMage: entity.New("Gandalf", "Mage", "Good",
			entity.WithAccessoryA("Staff"), entity.WithAccessoryB("Robe")),
		TagOrc: entity.New("Azog", "Orc", "Evil",
			entity.WithAccessoryA("Axe"), entity.WithAccessoryB("Chain mail")),
	}
}

// NewCharacterRegistry returns a registry seeded with Characters().
func NewCharacterRegistry(opts ...RegistryOption) *Registry {
	return NewRegistry(append([]RegistryOption{WithPrototypes(Characters())}, opts...)...)
}
