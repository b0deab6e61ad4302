package nav

// Renderable is an opaque handle to a unit the rendering layer can draw.
// The navigation engine only resolves and stores these handles; it never
// inspects or invokes them, so any rendering framework can sit on top.
//
// In an application built on braciole this is typically a screen
// constructor, but nothing in this package depends on that.
type Renderable any

// PropValue is one value in a property bag. The domain is closed: a set
// value is either an arbitrary string or the distinguished zero sentinel,
// and the only ways to construct one are String and Zero. The zero-valued
// struct (what indexing an absent Props key yields) is unset: neither a
// string nor the sentinel, so an absent prop stays distinguishable from
// String("").
type PropValue struct {
	str  string
	kind propKind
}

type propKind uint8

const (
	propUnset propKind = iota
	propString
	propZero
)

// Zero is the distinguished zero sentinel.
var Zero = PropValue{kind: propZero}

// String returns a PropValue holding s.
func String(s string) PropValue {
	return PropValue{str: s, kind: propString}
}

// IsZero reports whether v is the zero sentinel.
func (v PropValue) IsZero() bool {
	return v.kind == propZero
}

// Str returns the string held by v and true, or "" and false if v is the
// zero sentinel or unset.
func (v PropValue) Str() (string, bool) {
	if v.kind != propString {
		return "", false
	}
	return v.str, true
}

// Props is an opaque string-keyed payload attached to a navigated-to view.
// The engine stores it as-is and never validates its contents.
type Props map[string]PropValue

// ComponentMap maps every screen key to its renderable handle. It must be
// total over the application's key set: New rejects a map missing the
// initial key and Set rejects keys outside the map, so a View on the stack
// always carries the handle the map held for its key at push time.
//
// The map is supplied once at construction and must not be mutated
// afterwards; it is the single source of truth for key resolution.
type ComponentMap[K comparable] map[K]Renderable

// View is a single navigation entry: a screen key, the renderable handle
// resolved for it at push time, and optional properties. Views are
// immutable once pushed.
type View[K comparable] struct {
	Component Renderable
	Key       K
	Props     Props
}
