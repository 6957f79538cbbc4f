// SPDX-License-Identifier: MIT
// Package: forge/builder
//
// options.go - functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type Option func(*builderState)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Builder methods themselves MUST NOT panic.
//   • Options apply in order; the last write per field wins.

package builder

// Option customizes the accumulator of a Builder.
// Complexity: applying N options costs O(N) time.
type Option func(*builderState)

// WithFamily sets the family tag.
func WithFamily(family string) Option {
	return func(s *builderState) { s.family = family }
}

// WithAccessoryA sets the first accessory (a character's weapon).
func WithAccessoryA(accessory string) Option {
	return func(s *builderState) { s.accessoryA = accessory }
}

// WithAccessoryB sets the second accessory (a character's armor).
func WithAccessoryB(accessory string) Option {
	return func(s *builderState) { s.accessoryB = accessory }
}

// WithTrait sets a key/value trait. Panics on an empty key.
func WithTrait(key, value string) Option {
	if key == "" {
		panic("builder: WithTrait(empty key)")
	}
	return func(s *builderState) { s.setTrait(key, value) }
}
