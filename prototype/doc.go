// Package prototype provides a thread-safe registry of prototype entities.
// Requests are satisfied by cloning a stored exemplar instead of constructing
// from scratch.
//
// Core methods:
//
//	Register(tag, proto) error          // insert or overwrite; O(1)
//	Create(tag) (entity.Entity, error)  // independent clone; O(1)
//	Spawn(tag, n, naming) ([]Entity, error) // n clones with suffixed names; O(n)
//	Has(tag) bool, Len() int, Tags() []string (sorted)
//	Clone() *Registry                   // snapshot of the whole table; O(P)
//
// Clone independence:
//
//	entity.Entity is an immutable value whose trait set is a persistent map, so
//	every clone handed out is independent: deriving a modified copy from one
//	(WithName, WithTrait, ...) is never visible in the stored prototype or any
//	other clone.
//
// Lifecycle of entries: added by explicit registration, overwritten when the
// same tag is registered again, never expired.
//
// Errors:
//
//	ErrUnknownType   – Create/Spawn with an unregistered tag.
//	ErrEmptyTag      – Register with tag == "".
//	ErrNilPrototype  – Register with the zero Entity.
//	ErrInvalidCount  – Spawn with n < 1.
//
// Concurrency: the table is guarded by a sync.RWMutex; reads share the lock,
// writes are exclusive.
package prototype
