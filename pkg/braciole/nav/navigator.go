package nav

import (
	"errors"
	"fmt"

	"github.com/carmine-ui/braciole/pkg/braciole/store"
)

// ErrUnknownKey indicates a Set call with a key outside the component map.
// The component map is required to be total over the application's key set,
// so hitting this error means the caller's key domain and map disagree.
var ErrUnknownKey = errors.New("unknown navigation key")

// ErrBackAtRoot indicates a Back call with only the root on the stack.
// This is normal flow control (the user kept pressing back), not a
// failure: the stack is left untouched and subscribers are not notified.
var ErrBackAtRoot = errors.New("cannot navigate back from root")

// Navigator is a History of View entries specialized to a closed set of
// screen keys. It owns its history stack and component map exclusively.
type Navigator[K comparable] struct {
	components ComponentMap[K]
	history    *History[View[K]]
}

// New creates a Navigator rooted at initial, with no initial props.
// It returns an error if components has no entry for initial; the map is
// otherwise trusted to be total (Set rejects stragglers at call time).
func New[K comparable](components ComponentMap[K], initial K) (*Navigator[K], error) {
	component, ok := components[initial]
	if !ok {
		return nil, fmt.Errorf("nav: initial key %v: %w", initial, ErrUnknownKey)
	}

	root := View[K]{Component: component, Key: initial}
	return &Navigator[K]{
		components: components,
		history:    NewHistory(root),
	}, nil
}

// Current returns the reactive current view. Subscribers receive the top of
// the stack immediately and after every Set or effective Back.
func (n *Navigator[K]) Current() store.Readable[View[K]] {
	return n.history.Current()
}

// Set navigates forward: it resolves key through the component map, pushes
// a new View carrying props, and notifies subscribers. props may be nil.
func (n *Navigator[K]) Set(key K, props Props) error {
	component, ok := n.components[key]
	if !ok {
		return fmt.Errorf("nav: set %v: %w", key, ErrUnknownKey)
	}

	n.history.Push(View[K]{Component: component, Key: key, Props: props})
	return nil
}

// Back navigates to the previous view and notifies subscribers with it.
// At the root there is no previous view; Back is then a no-op and returns
// ErrBackAtRoot so callers can decide what backing out of the root means.
func (n *Navigator[K]) Back() error {
	if !n.history.Pop() {
		return ErrBackAtRoot
	}
	return nil
}

// Depth returns the navigation depth, always >= 1.
func (n *Navigator[K]) Depth() int {
	return n.history.Depth()
}
