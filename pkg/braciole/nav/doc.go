// Package nav provides reactive screen navigation built on an observable
// history stack.
//
// A Navigator specializes a History of View entries to a closed set of
// screen keys. Each key is resolved, through an immutable ComponentMap, to
// an opaque renderable handle that the rendering layer knows how to draw.
// The navigator never inspects or invokes the handle.
//
// # Basic Usage
//
//	// Keys are a closed set known at construction time.
//	const (
//	    ScreenStatus  = "status"
//	    ScreenCommits = "commits"
//	)
//
//	components := nav.ComponentMap[string]{
//	    ScreenStatus:  NewStatusScreen,
//	    ScreenCommits: NewCommitLogScreen,
//	}
//
//	navigator, err := nav.New(components, ScreenStatus)
//	if err != nil {
//	    return err
//	}
//
//	// The rendering layer subscribes once; the callback fires immediately
//	// with the current view and again after every Set or Back.
//	unsubscribe := navigator.Current().Subscribe(func(v nav.View[string]) {
//	    render(v)
//	})
//	defer unsubscribe()
//
//	// A user action handler navigates forward ...
//	_ = navigator.Set(ScreenCommits, nav.Props{"project": nav.String("acme")})
//
//	// ... and back. Back at the root is a no-op and returns ErrBackAtRoot.
//	_ = navigator.Back()
//
// # Property bags
//
// Props values are restricted to strings and the distinguished zero
// sentinel; see PropValue. The navigator stores them opaquely and never
// validates their contents.
package nav
