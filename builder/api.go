// SPDX-License-Identifier: MIT
// Package: forge/builder
//
// api.go - the Builder handle, its chainable setters and the one-shot Build.
//
// Design contract (strict):
//   - One accumulator per Builder; setters return the same handle.
//   - Build snapshots the accumulator into an immutable entity.Entity and
//     moves the builder to Built; nothing can mutate it afterwards.
//   - Never panic; the first error is sticky and surfaces via Err and Build.

package builder

import "github.com/katalvlaran/forge/entity"

// Builder accumulates entity fields and finalizes them exactly once.
type Builder struct {
	acc   builderState
	state State
	err   error
}

// New starts a Builder in the Building state with the mandatory name and
// category. Every optional field defaults to empty. opts are applied in order.
//
// An empty name or category does not panic: it records ErrMissingField, which
// Err reports immediately and Build returns.
// Complexity: O(len(opts)).
func New(name, category string, opts ...Option) *Builder {
	b := &Builder{acc: newBuilderState(name, category)}
	if err := validateMandatory(MethodNew, name, category); err != nil {
		b.fail(err)
	}

	return b.apply(MethodNew, opts)
}

// Build is the one-shot orchestrator: New(name, category, opts...).Build().
func Build(name, category string, opts ...Option) (entity.Entity, error) {
	return New(name, category, opts...).Build()
}

// SetFamily sets the family tag.
//
// After Build the call changes nothing and returns the same handle; the
// failure is recorded as ErrInvalidBuilderState and surfaces only via Err.
func (b *Builder) SetFamily(family string) *Builder {
	return b.apply(MethodSetFamily, []Option{WithFamily(family)})
}

// SetAccessoryA sets the first accessory.
//
// After Build the call changes nothing and returns the same handle; the
// failure is recorded as ErrInvalidBuilderState and surfaces only via Err.
func (b *Builder) SetAccessoryA(accessory string) *Builder {
	return b.apply(MethodSetAccessoryA, []Option{WithAccessoryA(accessory)})
}

// SetAccessoryB sets the second accessory.
//
// After Build the call changes nothing and returns the same handle; the
// failure is recorded as ErrInvalidBuilderState and surfaces only via Err.
func (b *Builder) SetAccessoryB(accessory string) *Builder {
	return b.apply(MethodSetAccessoryB, []Option{WithAccessoryB(accessory)})
}

// SetTrait sets a key/value trait. An empty key records ErrMissingField.
// After Build it records ErrInvalidBuilderState instead; check Err.
func (b *Builder) SetTrait(key, value string) *Builder {
	if b.state == Built {
		return b.apply(MethodSetTrait, nil)
	}
	if err := validateTraitKey(MethodSetTrait, key); err != nil {
		b.fail(err)
		return b
	}

	return b.apply(MethodSetTrait, []Option{WithTrait(key, value)})
}

// Apply applies functional options with the same lifecycle rules as setters.
func (b *Builder) Apply(opts ...Option) *Builder {
	return b.apply(MethodApply, opts)
}

// Build finalizes the builder.
//
// Behavior:
//   - Built already → ErrAlreadyBuilt; no entity.
//   - Sticky error set → that error; no entity, state unchanged.
//   - Otherwise → snapshot of the accumulator; state becomes Built.
func (b *Builder) Build() (entity.Entity, error) {
	if b.state == Built {
		return entity.Entity{}, builderErrorf(MethodBuild, "", ErrAlreadyBuilt)
	}
	if b.err != nil {
		return entity.Entity{}, b.err
	}
	e := b.acc.snapshot()
	b.state = Built
	b.acc = builderState{}

	return e, nil
}

// State returns the current lifecycle state.
func (b *Builder) State() State { return b.state }

// Err returns the first error recorded by New, a setter or Apply, or nil.
func (b *Builder) Err() error { return b.err }

// apply runs opts against the accumulator if the builder is still Building,
// otherwise records ErrInvalidBuilderState and leaves the accumulator alone.
func (b *Builder) apply(method string, opts []Option) *Builder {
	if b.state == Built {
		b.fail(builderErrorf(method, "state "+b.state.String(), ErrInvalidBuilderState))
		return b
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&b.acc)
		}
	}

	return b
}

// fail records err unless an earlier error is already sticky.
func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}
