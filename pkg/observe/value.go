package observe

import (
	"sync"

	"github.com/google/uuid"
)

// Value is an observable container for a single value of type T.
// The zero Value is not usable; create instances with NewValue.
type Value[T any] struct {
	mu    sync.RWMutex
	value T
	subs  []subscription[T]
}

type subscription[T any] struct {
	fn func(T)
	id uuid.UUID
}

// NewValue creates an observable holding the given initial value.
// The initial value is delivered to subscribers the same way any written
// value is: each new subscriber receives it on Subscribe.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{value: initial}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.value
}

// Set stores a new value and notifies all subscribers synchronously in
// subscription order. Notification happens on the caller's stack; Set does
// not return until every subscriber has run.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.value = value
	// Snapshot under lock so callbacks can touch this Value reentrantly.
	subs := make([]subscription[T], len(v.subs))
	copy(subs, v.subs)
	v.mu.Unlock()

	for _, sub := range subs {
		sub.fn(value)
	}
}

// Subscribe registers fn and immediately invokes it with the current value,
// then again for every subsequent Set. The returned function removes the
// subscription; calling it more than once is harmless.
func (v *Value[T]) Subscribe(fn func(T)) (unsubscribe func()) {
	id := uuid.New()

	v.mu.Lock()
	v.subs = append(v.subs, subscription[T]{fn: fn, id: id})
	current := v.value
	v.mu.Unlock()

	fn(current)

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		for i, sub := range v.subs {
			if sub.id == id {
				v.subs = append(v.subs[:i], v.subs[i+1:]...)
				return
			}
		}
	}
}
