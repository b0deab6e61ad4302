package braciole

import (
	"errors"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/carmine-ui/braciole/pkg/braciole/constants"
	"github.com/carmine-ui/braciole/pkg/braciole/internal"
	"github.com/carmine-ui/braciole/pkg/braciole/nav"
)

// Frame gives a screen everything it needs to draw itself once.
type Frame struct {
	Renderer *sdl.Renderer
	Width    int32
	Height   int32
}

// Screen is one renderable unit managed by the run loop. Implementations
// run entirely on the UI loop and must not retain the Frame between draws.
type Screen interface {
	// HandleButton reacts to one abstract button press. The run loop
	// intercepts ButtonBack before screens see it.
	HandleButton(button constants.Button)
	// Draw renders the screen.
	Draw(frame Frame)
}

// ScreenFunc constructs a Screen for a navigation entry. Values of this
// type are what applications put into a nav.ComponentMap; the navigator
// stores them opaquely and the run loop invokes them when the entry
// becomes current.
type ScreenFunc func(props nav.Props) Screen

// Run drives the rendering loop: it subscribes to the navigator's current
// view, constructs the top view's screen on every transition, renders each
// frame, and maps input to navigation. Escape and the hardware back button
// pop the stack; everything else is forwarded to the current screen.
//
// Backing out of the root screen ends the loop with ErrCancelled. Closing
// the window returns nil. Run must be called between Init and Close, on the
// same goroutine as every other navigator mutation.
func Run[K comparable](navigator *nav.Navigator[K]) error {
	window := internal.GetWindow()
	if window == nil {
		return NewFrameworkError("run", ErrNotInitialized)
	}

	var current Screen

	unsubscribe := navigator.Current().Subscribe(func(view nav.View[K]) {
		construct, ok := view.Component.(ScreenFunc)
		if !ok {
			internal.FrameworkLogger().Error("View component is not a ScreenFunc", "key", view.Key)
			current = nil
			return
		}
		internal.FrameworkLogger().Debug("Navigated", "key", view.Key, "depth", navigator.Depth())
		current = construct(view.Props)
	})
	defer unsubscribe()

	debounce := newInputDebouncer(constants.DefaultInputDelay)

	for {
		if event := sdl.WaitEventTimeout(constants.DefaultEventWaitMS); event != nil {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil

			case *sdl.KeyboardEvent:
				if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
					break
				}
				if !debounce.allow(time.Now()) {
					break
				}
				button := mapKeycode(e.Keysym.Sym)
				if button == constants.ButtonBack {
					if errors.Is(navigator.Back(), nav.ErrBackAtRoot) {
						return ErrCancelled
					}
				} else if button != constants.ButtonNone && current != nil {
					current.HandleButton(button)
				}

			case *sdl.UserEvent:
				if t := internal.BackButtonEventType(); t != 0 && e.Type == t {
					if errors.Is(navigator.Back(), nav.ErrBackAtRoot) {
						return ErrCancelled
					}
				}
			}
		}

		window.Clear()
		if current != nil {
			current.Draw(Frame{
				Renderer: window.Renderer,
				Width:    window.GetWidth(),
				Height:   window.GetHeight(),
			})
		}
		window.Present()
	}
}

// inputDebouncer swallows key presses that arrive faster than the configured
// delay, so held or bouncing keys do not flood the navigation stack.
type inputDebouncer struct {
	delay time.Duration
	last  time.Time
}

func newInputDebouncer(delay time.Duration) *inputDebouncer {
	return &inputDebouncer{delay: delay}
}

// allow reports whether an input at now should be handled, recording it as
// the latest accepted input when so.
func (d *inputDebouncer) allow(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) < d.delay {
		return false
	}
	d.last = now
	return true
}

func mapKeycode(sym sdl.Keycode) constants.Button {
	switch sym {
	case sdl.K_UP, sdl.K_k:
		return constants.ButtonUp
	case sdl.K_DOWN, sdl.K_j:
		return constants.ButtonDown
	case sdl.K_LEFT, sdl.K_h:
		return constants.ButtonLeft
	case sdl.K_RIGHT, sdl.K_l:
		return constants.ButtonRight
	case sdl.K_RETURN, sdl.K_SPACE:
		return constants.ButtonConfirm
	case sdl.K_ESCAPE, sdl.K_BACKSPACE:
		return constants.ButtonBack
	case sdl.K_TAB:
		return constants.ButtonMenu
	default:
		return constants.ButtonNone
	}
}
