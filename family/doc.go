// Package family implements family-based factories: every factory instance is
// bound to one immutable family tag ("Good", "Evil", "Audi", "BMW") and stamps
// that tag onto every entity.Entity it creates.
//
// Capability sets:
//
//	Factory     – two-category families (characters):
//	                Family() string
//	                Categories() (primary, secondary string)
//	                CreatePrimary(name)   (entity.Entity, error)
//	                CreateSecondary(name) (entity.Entity, error)
//
//	CarFactory  – single-category families (vehicles):
//	                Brand() string
//	                OrderCar() (entity.Entity, error)
//
// Completeness is enforced at compile time: a variant that misses a method does
// not satisfy the interface. UnimplementedFactory and UnimplementedCarFactory
// are the only way to obtain a "base-only" value; every operation on them fails
// with ErrUnimplementedCapability.
//
// Selector dispatches create(tag) across registered product constructors and
// fails with ErrUnknownVariant for an unregistered tag. ForFamily resolves a
// character family tag to its Factory.
//
// Errors:
//
//	ErrUnimplementedCapability – operation invoked on a base-only factory.
//	ErrUnknownVariant          – tag not registered in a Selector / ForFamily.
//	ErrEmptyName               – CreatePrimary/CreateSecondary with name == "".
//	ErrEmptyFamily             – family or brand tag is empty.
//	ErrEmptyCategory           – category or model is empty.
//	ErrEmptyTag                – Selector.Register with tag == "".
//	ErrNilProduct              – Selector.Register with a nil product function.
//
// Factories hold no mutable state and are safe for concurrent use. Selector
// guards its table with a sync.RWMutex.
package family
