// SPDX-License-Identifier: MIT
// Package: forge/prototype
//
// types.go - Registry, RegistryOption and the NewRegistry constructor.

package prototype

import (
	"log/slog"
	"sync"

	"github.com/katalvlaran/forge/entity"
)

// Registry maps type tags to prototype entities.
// The zero value is an empty registry that discards diagnostics.
type Registry struct {
	mu         sync.RWMutex
	prototypes map[string]entity.Entity

	logger *slog.Logger
}

// RegistryOption configures a Registry before first use.
type RegistryOption func(r *Registry)

// WithLogger routes registry diagnostics (overwrites, spawns) to logger.
// Panics on nil.
func WithLogger(logger *slog.Logger) RegistryOption {
	if logger == nil {
		panic("prototype: WithLogger(nil)")
	}
	return func(r *Registry) { r.logger = logger }
}

// WithPrototypes seeds the registry with every tag → prototype pair.
// Empty tags and zero entities are skipped. Seeding is not logged.
func WithPrototypes(seed map[string]entity.Entity) RegistryOption {
	return func(r *Registry) {
		for tag, proto := range seed {
			if tag == "" || proto.IsZero() {
				continue
			}
			r.prototypes[tag] = proto
		}
	}
}

// NewRegistry returns an empty Registry with the given options applied.
// By default diagnostics are discarded.
// Complexity: O(len(opts) + seeded entries).
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		prototypes: make(map[string]entity.Entity),
		logger:     discard,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

var discard = slog.New(slog.DiscardHandler)

func (r *Registry) log() *slog.Logger {
	if r.logger == nil {
		return discard
	}

	return r.logger
}
