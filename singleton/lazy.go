package singleton

import (
	"log/slog"
	"sync"
)

// Lazy builds its instance on the first Get and returns the same result,
// error included, on every call after that.
type Lazy[T any] struct {
	get  func() (T, error)
	name string
}

// NewLazy wraps ctor so that it runs at most once. Panics if ctor is nil.
func NewLazy[T any](ctor func() (T, error), opts ...Option) *Lazy[T] {
	if ctor == nil {
		panic("singleton: NewLazy(nil)")
	}
	o := resolve(opts)
	logger := o.logger

	return &Lazy[T]{
		name: o.name,
		get: sync.OnceValues(func() (T, error) {
			inst, err := ctor()
			if err != nil {
				logger.Warn("lazy construction failed", slog.String("guard", o.name), slog.Any("error", err))
			} else {
				logger.Debug("instance constructed", slog.String("guard", o.name))
			}
			return inst, err
		}),
	}
}

// Get returns the instance, constructing it on first use.
func (l *Lazy[T]) Get() (T, error) { return l.get() }

// Name returns the label given by WithName.
func (l *Lazy[T]) Name() string { return l.name }
