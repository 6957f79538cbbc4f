// File: methods.go
// Role: accessors, copy-on-write modifiers, equality and formatting.
//
// Immutability:
//   - Every With* method works on a copy of the receiver (value receiver) and
//     swaps in a new persistent trait map when traits change.

package entity

import (
	"fmt"
	"strings"
)

// Name returns the display name.
func (e Entity) Name() string { return e.name }

// Category returns what the entity is ("Warrior", "Car").
func (e Entity) Category() string { return e.category }

// Family returns the identity tag of the producer.
func (e Entity) Family() string { return e.family }

// AccessoryA returns the first accessory or "" when unset.
func (e Entity) AccessoryA() string { return e.accessoryA }

// AccessoryB returns the second accessory or "" when unset.
func (e Entity) AccessoryB() string { return e.accessoryB }

// Trait returns the value stored under key and whether it was present.
func (e Entity) Trait(key string) (string, bool) {
	if e.traits == nil {
		return "", false
	}

	return e.traits.Get(key)
}

// TraitCount returns the number of attached traits.
func (e Entity) TraitCount() int {
	if e.traits == nil {
		return 0
	}

	return e.traits.Len()
}

// Traits returns all traits sorted by key. The slice is freshly allocated.
// Complexity: O(T).
func (e Entity) Traits() []Trait {
	if e.traits == nil {
		return nil
	}
	out := make([]Trait, 0, e.traits.Len())
	itr := e.traits.Iterator()
	for !itr.Done() {
		k, v, _ := itr.Next()
		out = append(out, Trait{Key: k, Value: v})
	}

	return out
}

// WithName returns a copy with the name replaced.
func (e Entity) WithName(name string) Entity {
	e.name = name
	return e
}

// WithFamily returns a copy with the family tag replaced.
func (e Entity) WithFamily(family string) Entity {
	e.family = family
	return e
}

// WithAccessoryA returns a copy with the first accessory replaced.
func (e Entity) WithAccessoryA(accessory string) Entity {
	e.accessoryA = accessory
	return e
}

// WithAccessoryB returns a copy with the second accessory replaced.
func (e Entity) WithAccessoryB(accessory string) Entity {
	e.accessoryB = accessory
	return e
}

// WithTrait returns a copy carrying key=value. An empty key is ignored and
// the receiver is returned unchanged.
func (e Entity) WithTrait(key, value string) Entity {
	if key == "" {
		return e
	}
	e.traits = setTrait(e.traits, key, value)

	return e
}

// Clone returns an independent copy of e.
//
// Strings are immutable and the trait map is persistent, so a value copy is
// already deep: no later With* call on either side is visible to the other.
// Complexity: O(1).
func (e Entity) Clone() Entity {
	return e
}

// IsZero reports whether e carries no data at all.
func (e Entity) IsZero() bool {
	return e.name == "" && e.category == "" && e.family == "" &&
		e.accessoryA == "" && e.accessoryB == "" && e.TraitCount() == 0
}

// Equal reports field-wise equality, traits included.
// Complexity: O(T) where T is the number of traits.
func (e Entity) Equal(other Entity) bool {
	if e.name != other.name || e.category != other.category || e.family != other.family ||
		e.accessoryA != other.accessoryA || e.accessoryB != other.accessoryB {
		return false
	}
	if e.TraitCount() != other.TraitCount() {
		return false
	}
	if e.traits == other.traits {
		return true
	}
	a, b := e.Traits(), other.Traits()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// String renders a stable one-line dump, e.g.
//
//	Entity{name:"Arthur" category:"Warrior" family:"Good" accessoryA:"Sword"}
//
// Unset accessories and an empty trait set are omitted.
func (e Entity) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entity{name:%q category:%q family:%q", e.name, e.category, e.family)
	if e.accessoryA != "" {
		fmt.Fprintf(&b, " accessoryA:%q", e.accessoryA)
	}
	if e.accessoryB != "" {
		fmt.Fprintf(&b, " accessoryB:%q", e.accessoryB)
	}
	if traits := e.Traits(); len(traits) > 0 {
		b.WriteString(" traits:[")
		for i, t := range traits {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(t.Key + "=" + t.Value)
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')

	return b.String()
}
