// Package builder provides the incremental, chainable entity builder.
//
// A Builder is a handle to one mutable accumulator. It is created with the two
// mandatory fields (name, category), collects optional fields through chained
// setters or functional options, and is finalized exactly once by Build into an
// immutable entity.Entity.
//
// Lifecycle:
//
//	Building ──Build()──▶ Built (terminal)
//
//   - Setters (SetFamily, SetAccessoryA, SetAccessoryB, SetTrait) and Apply are
//     permitted only while Building. Afterwards they leave the builder untouched
//     and record ErrInvalidBuilderState.
//   - A second Build fails with ErrAlreadyBuilt.
//
// Sticky errors:
//
//	Setters return the same *Builder so calls can be chained. The first error
//	is kept and exposed immediately through Err(); later errors never replace
//	it. Build returns the sticky error (and no Entity) if one is set.
//
// Functional options:
//
//	– Option:          mutates the accumulator before or during building.
//	– WithFamily, WithAccessoryA, WithAccessoryB, WithTrait.
//	– Build(name, category, opts...) is the one-shot orchestrator.
//
// Option constructors panic on meaningless input (empty trait key). Builder
// methods never panic; they report errors.
//
// Errors:
//
//	ErrMissingField        – empty name, category or trait key.
//	ErrInvalidBuilderState – setter or Apply after Build.
//	ErrAlreadyBuilt        – Build called twice.
//
// A Builder is not safe for concurrent use; it is meant to live on one call stack.
package builder
