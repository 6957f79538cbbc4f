// SPDX-License-Identifier: MIT
// Package: forge/builder
//
// config.go - the accumulator (builderState) and the lifecycle enum.
//
// Design:
//   • builderState is the single source of truth for every field collected
//     before Build.
//   • Defaults are deterministic: every optional field starts empty.
//   • snapshot() copies the accumulator into an immutable entity.Entity; the
//     trait map is copied into a persistent map, severing further mutation.

package builder

import "github.com/katalvlaran/forge/entity"

// State is the lifecycle position of a Builder.
type State int

const (
	// Building accepts setters and Apply.
	Building State = iota
	// Built is terminal: the entity has been produced.
	Built
)

// String returns "Building" or "Built".
func (s State) String() string {
	switch s {
	case Building:
		return "Building"
	case Built:
		return "Built"
	default:
		return "State(?)"
	}
}

// builderState aggregates all fields collected before Build.
type builderState struct {
	// Mandatory identity.
	name     string
	category string

	// Optional fields; empty means "unset".
	family     string
	accessoryA string
	accessoryB string

	// traits is allocated lazily by the first trait write.
	traits map[string]string
}

// newBuilderState returns an accumulator holding the mandatory fields with
// every optional field at its empty default.
func newBuilderState(name, category string) builderState {
	return builderState{name: name, category: category}
}

// setTrait records key=value; later values for the same key win.
func (s *builderState) setTrait(key, value string) {
	if s.traits == nil {
		s.traits = make(map[string]string)
	}
	s.traits[key] = value
}

// snapshot materializes the accumulator into an immutable Entity.
// Complexity: O(T·log T) for T traits.
func (s *builderState) snapshot() entity.Entity {
	opts := []entity.Option{
		entity.WithAccessoryA(s.accessoryA),
		entity.WithAccessoryB(s.accessoryB),
	}
	if len(s.traits) > 0 {
		opts = append(opts, entity.WithTraits(s.traits))
	}

	return entity.New(s.name, s.category, s.family, opts...)
}
