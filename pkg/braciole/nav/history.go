package nav

import "github.com/carmine-ui/braciole/pkg/braciole/store"

// History is a never-empty LIFO sequence of states whose top is exposed
// reactively. The bottom entry is fixed at construction and acts as the
// root: Pop never removes it, so Current is always defined.
//
// History owns its sequence exclusively and, like the store backing it, is
// confined to the UI loop.
type History[T any] struct {
	entries []T
	current *store.Store[T]
}

// NewHistory creates a History seeded with root.
func NewHistory[T any](root T) *History[T] {
	return &History[T]{
		entries: []T{root},
		current: store.New(root),
	}
}

// Current returns a read-only view onto the top of the stack. Subscribers
// receive the current top immediately and again after every Push or
// effective Pop.
func (h *History[T]) Current() store.Readable[T] {
	return h.current
}

// Push appends item as the new top and notifies subscribers.
//
// There is no depth bound: pushes without matching pops grow the sequence
// monotonically. Bounding is the caller's responsibility; Depth exposes the
// length for that purpose.
func (h *History[T]) Push(item T) {
	h.entries = append(h.entries, item)
	h.current.Set(item)
}

// Pop removes the top entry and notifies subscribers with the restored
// previous entry. When only the root remains, Pop is a no-op and reports
// false without notifying.
func (h *History[T]) Pop() bool {
	if len(h.entries) <= 1 {
		return false
	}

	h.entries = h.entries[:len(h.entries)-1]
	h.current.Set(h.entries[len(h.entries)-1])
	return true
}

// Depth returns the number of entries on the stack, always >= 1.
func (h *History[T]) Depth() int {
	return len(h.entries)
}
