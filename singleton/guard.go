// SPDX-License-Identifier: MIT
// Package: forge/singleton
//
// guard.go - Guard, the explicit construct-once policy.
//
// Contract:
//   - At most one successful construction per Guard for its whole lifetime.
//   - The constructor runs under the guard's mutex; it must not call back
//     into the same Guard.
//   - A failed constructor changes nothing.

package singleton

import (
	"log/slog"
	"sync"
)

// Guard holds at most one instance of T built from a configuration C.
type Guard[C, T any] struct {
	mu          sync.Mutex
	ctor        func(C) (T, error)
	instance    T
	initialized bool

	name   string
	logger *slog.Logger
}

// Option configures a Guard or a Lazy.
type Option func(*options)

type options struct {
	name   string
	logger *slog.Logger
}

// WithName labels the guard in errors and log records. Default "instance".
func WithName(name string) Option {
	if name == "" {
		panic("singleton: WithName(\"\")")
	}
	return func(o *options) { o.name = name }
}

// WithLogger routes construction diagnostics to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("singleton: WithLogger(nil)")
	}
	return func(o *options) { o.logger = logger }
}

func resolve(opts []Option) options {
	o := options{name: "instance", logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// NewGuard returns an uninitialized Guard that builds its instance with ctor.
// Panics if ctor is nil.
func NewGuard[C, T any](ctor func(C) (T, error), opts ...Option) *Guard[C, T] {
	if ctor == nil {
		panic("singleton: NewGuard(nil)")
	}
	o := resolve(opts)

	return &Guard[C, T]{ctor: ctor, name: o.name, logger: o.logger}
}

// Construct builds and stores the instance from cfg.
//
// Errors:
//   - ErrAlreadyInitialized: a previous Construct succeeded; cfg is ignored
//     and the stored instance is untouched.
//   - the constructor's own error, wrapped; the guard stays uninitialized.
func (g *Guard[C, T]) Construct(cfg C) (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized {
		g.logger.Debug("construction rejected", slog.String("guard", g.name))
		var zero T
		return zero, guardErrorf(MethodConstruct, g.name, ErrAlreadyInitialized)
	}

	return g.constructLocked(MethodConstruct, cfg)
}

// Ensure returns the stored instance, constructing it from cfg first if the
// guard is still uninitialized. Unlike Construct it never reports
// ErrAlreadyInitialized.
func (g *Guard[C, T]) Ensure(cfg C) (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.initialized {
		return g.instance, nil
	}

	return g.constructLocked(MethodEnsure, cfg)
}

// Instance returns the stored instance, or ErrNotInitialized before the first
// successful Construct.
func (g *Guard[C, T]) Instance() (T, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.initialized {
		var zero T
		return zero, guardErrorf(MethodInstance, g.name, ErrNotInitialized)
	}

	return g.instance, nil
}

// Initialized reports whether an instance has been stored.
func (g *Guard[C, T]) Initialized() bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.initialized
}

// Name returns the label given by WithName.
func (g *Guard[C, T]) Name() string { return g.name }

func (g *Guard[C, T]) constructLocked(method string, cfg C) (T, error) {
	inst, err := g.ctor(cfg)
	if err != nil {
		var zero T
		return zero, guardErrorf(method, g.name, err)
	}
	g.instance = inst
	g.initialized = true
	g.logger.Debug("instance constructed", slog.String("guard", g.name))

	return inst, nil
}
