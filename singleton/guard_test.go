// SPDX-License-Identifier: MIT
// Package singleton_test verifies construct-once exclusivity, the
// not-initialized policy and recovery after constructor failure.

package singleton_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/forge/singleton"
)

type settings struct {
	label string
}

func newSettings(label string) (*settings, error) {
	return &settings{label: label}, nil
}

func TestGuard_FirstConstructWins(t *testing.T) {
	g := singleton.NewGuard(newSettings, singleton.WithName("settings"))
	require.False(t, g.Initialized())

	first, err := g.Construct("a")
	require.NoError(t, err)
	assert.Equal(t, "a", first.label)
	assert.True(t, g.Initialized())

	second, err := g.Construct("b")
	require.ErrorIs(t, err, singleton.ErrAlreadyInitialized)
	assert.Nil(t, second)
	assert.Contains(t, err.Error(), `"settings"`)

	// same argument again is still rejected
	_, err = g.Construct("a")
	require.ErrorIs(t, err, singleton.ErrAlreadyInitialized)

	got, err := g.Instance()
	require.NoError(t, err)
	assert.Same(t, first, got)
}

func TestGuard_InstanceBeforeConstruct(t *testing.T) {
	g := singleton.NewGuard(newSettings)

	inst, err := g.Instance()
	require.ErrorIs(t, err, singleton.ErrNotInitialized)
	assert.Nil(t, inst)
	assert.Equal(t, "instance", g.Name())
}

func TestGuard_ConstructorFailureLeavesUninitialized(t *testing.T) {
	boom := errors.New("disk full")
	calls := 0
	g := singleton.NewGuard(func(fail bool) (int, error) {
		calls++
		if fail {
			return 0, boom
		}
		return 42, nil
	})

	_, err := g.Construct(true)
	require.ErrorIs(t, err, boom)
	assert.False(t, g.Initialized())
	_, err = g.Instance()
	assert.ErrorIs(t, err, singleton.ErrNotInitialized)

	v, err := g.Construct(false)
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, 2, calls)
}

func TestGuard_Ensure(t *testing.T) {
	g := singleton.NewGuard(newSettings)

	a, err := g.Ensure("a")
	require.NoError(t, err)
	b, err := g.Ensure("b")
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, "a", b.label)

	_, err = g.Construct("c")
	assert.ErrorIs(t, err, singleton.ErrAlreadyInitialized)
}

func TestGuard_Logging(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	g := singleton.NewGuard(newSettings, singleton.WithName("settings"), singleton.WithLogger(logger))

	_, err := g.Construct("a")
	require.NoError(t, err)
	_, err = g.Construct("b")
	require.Error(t, err)

	out := logs.String()
	assert.Contains(t, out, "instance constructed")
	assert.Contains(t, out, "construction rejected")
	assert.Contains(t, out, "guard=settings")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { singleton.WithName("") })
	assert.Panics(t, func() { singleton.WithLogger(nil) })
	assert.Panics(t, func() { singleton.NewGuard[string, int](nil) })
	assert.Panics(t, func() { singleton.NewLazy[int](nil) })
}

func TestLazy_ConstructsOnce(t *testing.T) {
	calls := 0
	l := singleton.NewLazy(func() (*settings, error) {
		calls++
		return &settings{label: "default"}, nil
	}, singleton.WithName("defaults"))

	a, err := l.Get()
	require.NoError(t, err)
	b, err := l.Get()
	require.NoError(t, err)
	assert.Same(t, a, b)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "defaults", l.Name())
}

func TestLazy_CachesError(t *testing.T) {
	boom := errors.New("no route")
	calls := 0
	l := singleton.NewLazy(func() (int, error) {
		calls++
		return 0, boom
	})

	_, err := l.Get()
	require.ErrorIs(t, err, boom)
	_, err = l.Get()
	require.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

// TestConnection is the only test touching the process-wide connection.
func TestConnection(t *testing.T) {
	_, err := singleton.CurrentConnection()
	require.ErrorIs(t, err, singleton.ErrNotInitialized)

	_, err = singleton.Connect("")
	require.ErrorIs(t, err, singleton.ErrEmptyDSN)

	conn, err := singleton.Connect("conn1")
	require.NoError(t, err)
	assert.Equal(t, "conn1", conn.DSN)

	_, err = singleton.Connect("conn2")
	require.ErrorIs(t, err, singleton.ErrAlreadyInitialized)

	current, err := singleton.CurrentConnection()
	require.NoError(t, err)
	assert.Equal(t, "conn1", current.DSN)
	assert.Same(t, conn, current)

	def, err := singleton.DefaultConnection()
	require.NoError(t, err)
	assert.Same(t, conn, def)
}

func TestNewConnectionGuard(t *testing.T) {
	g := singleton.NewConnectionGuard(singleton.WithName("replica"))
	assert.Equal(t, "replica", g.Name())

	_, err := g.Construct("")
	require.ErrorIs(t, err, singleton.ErrEmptyDSN)
	assert.False(t, g.Initialized())

	conn, err := g.Construct("db-2")
	require.NoError(t, err)
	assert.Equal(t, "db-2", conn.DSN)

	_, err = singleton.NewConnectionGuard().Instance()
	assert.ErrorIs(t, err, singleton.ErrNotInitialized)
}
