// Package state holds the client's shared observable state: a set of
// independently replaceable containers plus the transient notification
// queue. Containers are last-writer-wins snapshots with no cross-field
// consistency; consumers subscribe only to the fields they care about.
package state

import (
	"sync"

	"github.com/zenv-lang/zenvhub/internal/core"
)

// Container is an observable cell holding a single value. Writes replace
// the value wholesale and deliver it synchronously to every subscriber in
// subscription order. The mutex serializes concurrent writers; subscriber
// callbacks run on the writing goroutine, so writes land in the order
// their underlying operations complete.
type Container[T any] struct {
	mu    sync.Mutex
	value T
	subs  map[int]func(T)
	order []int
	next  int
}

// NewContainer creates a container holding the given initial value.
func NewContainer[T any](initial T) *Container[T] {
	return &Container[T]{
		value: initial,
		subs:  make(map[int]func(T)),
	}
}

// Get returns the current value.
func (c *Container[T]) Get() T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value and notifies subscribers in subscription order.
func (c *Container[T]) Set(v T) {
	c.mu.Lock()
	c.value = v
	fns := make([]func(T), 0, len(c.order))
	for _, id := range c.order {
		if fn, ok := c.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	c.mu.Unlock()

	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers fn to run on every write. It returns a cancel
// function; cancelling is idempotent.
func (c *Container[T]) Subscribe(fn func(T)) (cancel func()) {
	c.mu.Lock()
	id := c.next
	c.next++
	c.subs[id] = fn
	c.order = append(c.order, id)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Store aggregates the client's observable containers. Each field is
// independently replaceable; there is no transactional boundary across
// fields (loading and packages may be observed in a transiently
// inconsistent combination).
type Store struct {
	User          *Container[core.Session]
	Packages      *Container[[]core.Package]
	Badges        *Container[[]core.Badge]
	Status        *Container[core.ServerStatus]
	Loading       *Container[bool]
	Notifications *Container[[]core.Notification]
}

// NewStore creates a store with empty containers. The store is built
// once at process start and passed explicitly to consumers; there is no
// package-level instance.
func NewStore() *Store {
	return &Store{
		User:          NewContainer(core.Session{}),
		Packages:      NewContainer[[]core.Package](nil),
		Badges:        NewContainer[[]core.Badge](nil),
		Status:        NewContainer(core.ServerStatus{Status: core.StatusChecking}),
		Loading:       NewContainer(false),
		Notifications: NewContainer[[]core.Notification](nil),
	}
}
