// Package builder contains unit tests for the accumulator primitives
// (builderState and Option) to ensure correct application and override behavior.
package builder

import "testing"

// TestBuilderStateDefaults verifies that only the mandatory fields are set and
// every optional field starts empty.
func TestBuilderStateDefaults(t *testing.T) {
	t.Parallel()

	s := newBuilderState("Arthur", "Warrior")
	if s.name != "Arthur" || s.category != "Warrior" {
		t.Errorf("mandatory fields: got %q/%q", s.name, s.category)
	}
	if s.family != "" || s.accessoryA != "" || s.accessoryB != "" {
		t.Errorf("optional fields must default to empty, got %+v", s)
	}
	if s.traits != nil {
		t.Errorf("traits must be allocated lazily, got %v", s.traits)
	}
}

// TestOptionsOverride verifies that options are applied in order and the last
// write per field wins.
func TestOptionsOverride(t *testing.T) {
	t.Parallel()

	s := newBuilderState("Saruman", "Mage")
	for _, opt := range []Option{
		WithFamily("Good"),
		WithAccessoryA("Staff"),
		WithFamily("Evil"),
		WithTrait("hp", "1"),
		WithTrait("hp", "2"),
	} {
		opt(&s)
	}

	if s.family != "Evil" {
		t.Errorf("family: expected last write \"Evil\", got %q", s.family)
	}
	if s.accessoryA != "Staff" {
		t.Errorf("accessoryA: expected \"Staff\", got %q", s.accessoryA)
	}
	if got := s.traits["hp"]; got != "2" {
		t.Errorf("trait hp: expected \"2\", got %q", got)
	}
}

// TestSnapshotSevered verifies that mutating the accumulator after a snapshot
// is invisible to the produced entity.
func TestSnapshotSevered(t *testing.T) {
	t.Parallel()

	s := newBuilderState("Azog", "Orc")
	s.setTrait("hp", "90")
	e := s.snapshot()

	s.setTrait("hp", "0")
	s.family = "Evil"

	if hp, _ := e.Trait("hp"); hp != "90" {
		t.Errorf("snapshot trait changed: got %q", hp)
	}
	if e.Family() != "" {
		t.Errorf("snapshot family changed: got %q", e.Family())
	}
}

func TestStateString(t *testing.T) {
	t.Parallel()

	if Building.String() != "Building" || Built.String() != "Built" {
		t.Errorf("unexpected names: %s/%s", Building, Built)
	}
	if State(42).String() != "State(?)" {
		t.Errorf("unknown state: got %s", State(42))
	}
}
