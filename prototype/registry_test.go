// SPDX-License-Identifier: MIT
// Package prototype_test verifies registration, clone independence and
// unknown-tag failures of prototype.Registry.

package prototype_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forge/entity"
	"github.com/katalvlaran/forge/prototype"
)

func warriorProto() entity.Entity {
	return entity.New("Arthur", "Warrior", "Good",
		entity.WithAccessoryA("Sword"), entity.WithAccessoryB("Plate mail"),
		entity.WithTrait("hp", "50"))
}

func TestRegistry_RegisterCreate(t *testing.T) {
	r := prototype.NewRegistry()
	proto := warriorProto()
	require.NoError(t, r.Register("Warrior", proto))

	got, err := r.Create("Warrior")
	require.NoError(t, err)
	assert.True(t, proto.Equal(got), "got %s", got)
}

// TestRegistry_CloneIndependence: two clones are equal by value, and deriving
// a modified entity from one affects neither the other nor the prototype.
func TestRegistry_CloneIndependence(t *testing.T) {
	r := prototype.NewRegistry()
	require.NoError(t, r.Register("Warrior", warriorProto()))

	a, err := r.Create("Warrior")
	require.NoError(t, err)
	b, err := r.Create("Warrior")
	require.NoError(t, err)
	require.True(t, a.Equal(b))

	a = a.WithName("Lancelot").WithTrait("hp", "0").WithAccessoryA("Lance")

	assert.True(t, b.Equal(warriorProto()))
	again, err := r.Create("Warrior")
	require.NoError(t, err)
	assert.True(t, again.Equal(warriorProto()), "stored prototype must not change")
	assert.False(t, a.Equal(b))
}

func TestRegistry_CallerCopyIsIndependent(t *testing.T) {
	r := prototype.NewRegistry()
	proto := warriorProto()
	require.NoError(t, r.Register("Warrior", proto))

	proto = proto.WithFamily("Evil")

	got, err := r.Create("Warrior")
	require.NoError(t, err)
	assert.Equal(t, "Good", got.Family())
}

func TestRegistry_UnknownType(t *testing.T) {
	r := prototype.NewCharacterRegistry()

	e, err := r.Create("Dragon")
	require.ErrorIs(t, err, prototype.ErrUnknownType)
	assert.True(t, e.IsZero())
	assert.Contains(t, err.Error(), `"Dragon"`)
}

func TestRegistry_RegisterValidation(t *testing.T) {
	r := prototype.NewRegistry()
	assert.ErrorIs(t, r.Register("", warriorProto()), prototype.ErrEmptyTag)
	assert.ErrorIs(t, r.Register("Ghost", entity.Entity{}), prototype.ErrNilPrototype)
	assert.Zero(t, r.Len())
}

func TestRegistry_Overwrite(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	r := prototype.NewRegistry(prototype.WithLogger(logger))

	require.NoError(t, r.Register("Warrior", warriorProto()))
	assert.Empty(t, logs.String(), "first registration is silent")

	require.NoError(t, r.Register("Warrior", entity.New("Boromir", "Warrior", "Good")))
	got, err := r.Create("Warrior")
	require.NoError(t, err)
	assert.Equal(t, "Boromir", got.Name())
	assert.Equal(t, 1, r.Len())
	assert.Contains(t, logs.String(), "prototype overwritten")
	assert.Contains(t, logs.String(), "tag=Warrior")
}

func TestRegistry_Queries(t *testing.T) {
	r := prototype.NewCharacterRegistry()

	assert.Equal(t, []string{prototype.TagMage, prototype.TagOrc, prototype.TagWarrior}, r.Tags())
	assert.Equal(t, 3, r.Len())
	assert.True(t, r.Has(prototype.TagOrc))
	assert.False(t, r.Has("Dragon"))
}

func TestCharacters_Catalog(t *testing.T) {
	r := prototype.NewCharacterRegistry()
	tests := []struct {
		tag                                          string
		name, category, family, accessoryA, accessoryB string
	}{
		{prototype.TagWarrior, "Arthur", "Warrior", "Good", "Sword", "Plate mail"},
		{prototype.TagMage, "Gandalf", "Mage", "Good", "Staff", "Robe"},
		{prototype.TagOrc, "Azog", "Orc", "Evil", "Axe", "Chain mail"},
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			e, err := r.Create(tc.tag)
			require.NoError(t, err)
			assert.Equal(t, tc.name, e.Name())
			assert.Equal(t, tc.category, e.Category())
			assert.Equal(t, tc.family, e.Family())
			assert.Equal(t, tc.accessoryA, e.AccessoryA())
			assert.Equal(t, tc.accessoryB, e.AccessoryB())
		})
	}
}

func TestWithPrototypes_SkipsInvalid(t *testing.T) {
	r := prototype.NewRegistry(prototype.WithPrototypes(map[string]entity.Entity{
		"":        warriorProto(),
		"Ghost":   {},
		"Warrior": warriorProto(),
	}))
	assert.Equal(t, []string{"Warrior"}, r.Tags())
}

func TestWithLogger_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() { prototype.WithLogger(nil) })
}

func TestRegistry_Clone(t *testing.T) {
	r := prototype.NewCharacterRegistry()
	snap := r.Clone()

	require.NoError(t, r.Register("Dragon", entity.New("Smaug", "Dragon", "Evil")))
	require.NoError(t, snap.Register(prototype.TagOrc, entity.New("Bolg", "Orc", "Evil")))

	assert.False(t, snap.Has("Dragon"))
	orc, err := r.Create(prototype.TagOrc)
	require.NoError(t, err)
	assert.Equal(t, "Azog", orc.Name())
}

func TestRegistry_Spawn(t *testing.T) {
	r := prototype.NewCharacterRegistry()

	orcs, err := r.Spawn(prototype.TagOrc, 3, entity.ExcelColumnNameFn)
	require.NoError(t, err)
	require.Len(t, orcs, 3)
	for i, want := range []string{"Azog-A", "Azog-B", "Azog-C"} {
		assert.Equal(t, want, orcs[i].Name())
		assert.Equal(t, "Evil", orcs[i].Family())
		assert.Equal(t, "Axe", orcs[i].AccessoryA())
	}

	decimal, err := r.Spawn(prototype.TagMage, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "Gandalf-1", decimal[1].Name())

	_, err = r.Spawn(prototype.TagOrc, 0, nil)
	assert.ErrorIs(t, err, prototype.ErrInvalidCount)
	_, err = r.Spawn("Dragon", 2, nil)
	require.ErrorIs(t, err, prototype.ErrUnknownType)
	assert.Equal(t, `Spawn: Create("Dragon"): prototype: unknown type`, err.Error())
}

func TestRegistry_ZeroValue(t *testing.T) {
	var r prototype.Registry
	_, err := r.Create(prototype.TagOrc)
	require.ErrorIs(t, err, prototype.ErrUnknownType)
	assert.Zero(t, r.Len())

	require.NoError(t, r.Register("Warrior", warriorProto()))
	require.NoError(t, r.Register("Warrior", warriorProto()))
	squad, err := r.Spawn("Warrior", 2, nil)
	require.NoError(t, err)
	assert.Equal(t, "Arthur-1", squad[1].Name())
	assert.Equal(t, []string{"Warrior"}, r.Clone().Tags())
}
