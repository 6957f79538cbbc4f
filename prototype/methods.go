// File: methods.go
// Role: registration, clone-on-create and table queries.
//
// Determinism:
//   - Tags() returns tags sorted ascending.
//   - Spawn names clones base-0, base-1, ... through the supplied NameFn.
//
// Concurrency:
//   - Register takes the write lock; every other method the read lock.

package prototype

import (
	"fmt"
	"log/slog"
	"maps"
	"sort"

	"github.com/katalvlaran/forge/entity"
)

// Register inserts proto under tag, overwriting any previous entry.
//
// Errors:
//   - ErrEmptyTag: tag == "".
//   - ErrNilPrototype: proto.IsZero().
//
// Complexity: O(1) amortized.
func (r *Registry) Register(tag string, proto entity.Entity) error {
	if tag == "" {
		return registryErrorf(MethodRegister, tag, ErrEmptyTag)
	}
	if proto.IsZero() {
		return registryErrorf(MethodRegister, tag, ErrNilPrototype)
	}
	r.mu.Lock()
	if r.prototypes == nil {
		r.prototypes = make(map[string]entity.Entity)
	}
	_, existed := r.prototypes[tag]
	r.prototypes[tag] = proto.Clone()
	r.mu.Unlock()

	if existed {
		r.log().Debug("prototype overwritten", slog.String("tag", tag), slog.String("name", proto.Name()))
	}

	return nil
}

// Create returns an independent clone of the prototype registered under tag.
// Fails with ErrUnknownType when tag is absent; the returned Entity is then zero.
// Complexity: O(1).
func (r *Registry) Create(tag string) (entity.Entity, error) {
	r.mu.RLock()
	proto, ok := r.prototypes[tag]
	r.mu.RUnlock()
	if !ok {
		return entity.Entity{}, registryErrorf(MethodCreate, tag, ErrUnknownType)
	}

	return proto.Clone(), nil
}

// Spawn returns n clones of the prototype under tag, renamed
// "<prototype name>-<naming(i)>" for i in [0,n). A nil naming uses
// entity.DecimalNameFn.
//
// Errors:
//   - ErrInvalidCount: n < 1.
//   - ErrUnknownType: tag absent.
//
// Complexity: O(n).
func (r *Registry) Spawn(tag string, n int, naming entity.NameFn) ([]entity.Entity, error) {
	if n < 1 {
		return nil, registryErrorf(MethodSpawn, tag, ErrInvalidCount)
	}
	proto, err := r.Create(tag)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", MethodSpawn, err)
	}
	out := make([]entity.Entity, n)
	for i := range out {
		out[i] = proto.Clone().WithName(entity.SuffixedName(proto.Name(), i, naming))
	}
	r.log().Debug("prototypes spawned", slog.String("tag", tag), slog.Int("count", n))

	return out, nil
}

// Has reports whether tag is registered.
func (r *Registry) Has(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.prototypes[tag]

	return ok
}

// Len returns the number of registered tags.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.prototypes)
}

// Tags returns every registered tag sorted ascending.
// Complexity: O(P·log P).
func (r *Registry) Tags() []string {
	r.mu.RLock()
	tags := make([]string, 0, len(r.prototypes))
	for tag := range r.prototypes {
		tags = append(tags, tag)
	}
	r.mu.RUnlock()
	sort.Strings(tags)

	return tags
}

// Clone returns a new Registry holding the same entries and logger.
// Later registrations on either registry are invisible to the other.
// Complexity: O(P).
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clone := NewRegistry(WithLogger(r.log()))
	maps.Copy(clone.prototypes, r.prototypes)

	return clone
}
