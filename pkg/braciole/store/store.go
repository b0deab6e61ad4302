// Package store provides a single-value reactive container with
// subscribe-with-replay semantics.
//
// A Store holds one value, replays it synchronously to every new subscriber,
// and notifies all subscribers in registration order whenever the value is
// replaced. Dispatch is a plain function call chain: there is no scheduler,
// no channel, and no goroutine behind it.
//
// Stores are not safe for concurrent use. They are meant to live on the UI
// loop, where every mutation and every callback runs on the same
// control-flow thread.
package store

// Unsubscribe removes a previously registered subscriber.
// Calling it more than once is a no-op.
type Unsubscribe func()

// Readable exposes the read side of a Store.
type Readable[T any] interface {
	// Get returns the current value.
	Get() T
	// Subscribe registers fn, invokes it once synchronously with the
	// current value before returning, and then on every subsequent change.
	Subscribe(fn func(T)) Unsubscribe
}

// Writable exposes the full read/write Store contract.
type Writable[T any] interface {
	Readable[T]
	Set(value T)
	Update(fn func(T) T)
}

type subscriber[T any] struct {
	fn func(T)
}

// Store holds a single value of type T and an ordered subscriber list.
type Store[T any] struct {
	value T
	subs  []*subscriber[T]
}

var _ Writable[int] = (*Store[int])(nil)

// New creates a Store holding initial.
func New[T any](initial T) *Store[T] {
	return &Store[T]{value: initial}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	return s.value
}

// Subscribe registers fn and immediately invokes it with the current value.
// Subsequent calls to Set or Update invoke fn again, after every subscriber
// registered before it.
func (s *Store[T]) Subscribe(fn func(T)) Unsubscribe {
	sub := &subscriber[T]{fn: fn}
	s.subs = append(s.subs, sub)

	fn(s.value)

	return func() {
		for i, candidate := range s.subs {
			if candidate == sub {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

// Set replaces the stored value and notifies all subscribers in
// registration order.
//
// Notification is synchronous: a subscriber that mutates the store from its
// callback triggers a nested dispatch that completes before the outer Set
// returns. No recursion guard is applied.
func (s *Store[T]) Set(value T) {
	s.value = value

	// Snapshot so an unsubscribe during dispatch takes effect on the next
	// mutation rather than corrupting this one.
	active := make([]*subscriber[T], len(s.subs))
	copy(active, s.subs)

	for _, sub := range active {
		sub.fn(value)
	}
}

// Update replaces the stored value with fn(current) and notifies as Set does.
func (s *Store[T]) Update(fn func(T) T) {
	s.Set(fn(s.value))
}

// SubscriberCount returns the number of registered subscribers.
// Useful for callers tracking subscription leaks.
func (s *Store[T]) SubscriberCount() int {
	return len(s.subs)
}
