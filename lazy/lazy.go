// Package lazy provides values that are computed on first use, at most once.
package lazy

import (
	"sync"

	"go.uber.org/atomic"
)

// Of is a lazy value that is initialized at most once. It is safe for
// concurrent use; concurrent first calls block until one of them has
// produced the value.
//
// A panicking create function does not memoize anything: the panic
// propagates and the next Get tries again.
type Of[T any] struct {
	mutex  sync.Mutex
	done   atomic.Bool
	create func() T
	value  T
}

// New creates a new lazy value. The callback will be called later, when the
// value is first accessed.
func New[T any](f func() T) *Of[T] {
	return &Of[T]{create: f}
}

// Ready creates a lazy value that is already initialized with value.
func Ready[T any](value T) *Of[T] {
	l := &Of[T]{value: value}
	l.done.Store(true)

	return l
}

// Get returns the value (and initializes it if necessary).
func (l *Of[T]) Get() T { //nolint:ireturn
	if l.done.Load() {
		return l.value
	}

	l.mutex.Lock()
	defer l.mutex.Unlock()

	if !l.done.Load() {
		if l.create != nil {
			l.value = l.create()
		}

		l.create = nil
		l.done.Store(true)
	}

	return l.value
}

// Initialized returns true if the value has been initialized.
// This is useful for testing and debugging, but should never
// be part of the normal code flow.
func (l *Of[T]) Initialized() bool {
	return l.done.Load()
}
