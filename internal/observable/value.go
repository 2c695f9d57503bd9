// Package observable provides typed state containers with explicit,
// synchronous subscriptions.
//
// A [Value] replaces a global mutable store: it is owned by whatever view
// creates it and every subscriber is notified on the caller's goroutine
// before Set returns.
package observable

import "sync"

// Value holds a single T and notifies subscribers when it changes.
type Value[T any] struct {
	mu     sync.Mutex
	val    T
	equal  func(a, b T) bool
	subs   map[int]func(T)
	order  []int
	nextID int
}

// New returns a Value that notifies on every Set.
func New[T any](initial T) *Value[T] {
	return &Value[T]{val: initial, subs: make(map[int]func(T))}
}

// NewComparable returns a Value that skips notification when the new
// value equals the current one.
func NewComparable[T comparable](initial T) *Value[T] {
	return NewWithEqual(initial, func(a, b T) bool { return a == b })
}

// NewWithEqual returns a Value that uses equal to suppress no-op updates.
func NewWithEqual[T any](initial T, equal func(a, b T) bool) *Value[T] {
	v := New(initial)
	v.equal = equal
	return v
}

func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.val
}

// Set stores val and reports whether subscribers were notified.
func (v *Value[T]) Set(val T) bool {
	v.mu.Lock()
	if v.equal != nil && v.equal(v.val, val) {
		v.mu.Unlock()
		return false
	}
	v.val = val
	subs := v.snapshot()
	v.mu.Unlock()

	for _, fn := range subs {
		fn(val)
	}
	return true
}

// Update applies fn to the current value and stores the result.
func (v *Value[T]) Update(fn func(T) T) bool {
	return v.Set(fn(v.Get()))
}

// Subscribe registers fn and immediately calls it with the current value.
// The returned function removes the subscription.
func (v *Value[T]) Subscribe(fn func(T)) func() {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.subs[id] = fn
	v.order = append(v.order, id)
	cur := v.val
	v.mu.Unlock()

	fn(cur)

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.subs, id)
			for i, o := range v.order {
				if o == id {
					v.order = append(v.order[:i], v.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Subscribers returns the number of live subscriptions.
func (v *Value[T]) Subscribers() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.subs)
}

func (v *Value[T]) snapshot() []func(T) {
	out := make([]func(T), 0, len(v.order))
	for _, id := range v.order {
		out = append(out, v.subs[id])
	}
	return out
}
