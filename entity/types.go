// SPDX-License-Identifier: MIT
// Package: forge/entity
//
// types.go - Entity, Trait and the functional options used by New.

package entity

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

// Entity is an immutable description of a constructed object.
//
// The zero Entity is valid and reports IsZero() == true; creation strategies
// treat it as "no entity" (for example prototype.Registry rejects it).
type Entity struct {
	name     string
	category string
	family   string

	// Optional accessories; empty means "not set".
	accessoryA string
	accessoryB string

	// traits is nil until the first trait is attached.
	traits *immutable.SortedMap[string, string]
}

// Trait is a single key/value attribute attached to an Entity.
type Trait struct {
	Key   string
	Value string
}

// Option configures optional Entity fields at construction time.
type Option func(*Entity)

// traitComparer orders trait keys lexicographically.
type traitComparer struct{}

func (traitComparer) Compare(a, b string) int { return strings.Compare(a, b) }

// New returns an Entity with the mandatory identity fields and any optional
// fields set by opts. New performs no validation: callers (factories, the
// builder, registries) enforce their own input rules.
// Complexity: O(len(opts) + T·log T) where T is the number of traits.
func New(name, category, family string, opts ...Option) Entity {
	e := Entity{name: name, category: category, family: family}
	for _, opt := range opts {
		opt(&e)
	}

	return e
}

// WithAccessoryA sets the first accessory (a character's weapon).
func WithAccessoryA(accessory string) Option {
	return func(e *Entity) { e.accessoryA = accessory }
}

// WithAccessoryB sets the second accessory (a character's armor).
func WithAccessoryB(accessory string) Option {
	return func(e *Entity) { e.accessoryB = accessory }
}

// WithTrait attaches a key/value trait. Later values for the same key win.
// Panics on an empty key: option constructors validate and fail fast.
func WithTrait(key, value string) Option {
	if key == "" {
		panic("entity: WithTrait(empty key)")
	}
	return func(e *Entity) { e.traits = setTrait(e.traits, key, value) }
}

// WithTraits attaches every pair of kv. Panics if any key is empty.
func WithTraits(kv map[string]string) Option {
	for k := range kv {
		if k == "" {
			panic("entity: WithTraits(empty key)")
		}
	}
	return func(e *Entity) {
		for k, v := range kv {
			e.traits = setTrait(e.traits, k, v)
		}
	}
}

// setTrait returns a new persistent map containing key=value.
// The input map (possibly nil) is never modified.
func setTrait(m *immutable.SortedMap[string, string], key, value string) *immutable.SortedMap[string, string] {
	if m == nil {
		m = immutable.NewSortedMap[string, string](traitComparer{})
	}

	return m.Set(key, value)
}
