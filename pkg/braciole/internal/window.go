package internal

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/carmine-ui/braciole/pkg/braciole/constants"
)

// WindowOptions selects SDL window flags.
type WindowOptions struct {
	Borderless  bool // Remove window decorations (SDL_WINDOW_BORDERLESS)
	Resizable   bool // Allow window resizing (SDL_WINDOW_RESIZABLE)
	Fullscreen  bool // Fullscreen at desktop resolution (SDL_WINDOW_FULLSCREEN_DESKTOP)
	AlwaysOnTop bool // Window stays above others (SDL_WINDOW_ALWAYS_ON_TOP)
	Hidden      bool // Start hidden (omits SDL_WINDOW_SHOWN)
}

// IsZero reports whether no option is set.
func (wo WindowOptions) IsZero() bool {
	return wo == WindowOptions{}
}

func (wo WindowOptions) toSDLFlags() uint32 {
	var flags uint32

	if !wo.Hidden {
		flags |= sdl.WINDOW_SHOWN
	}
	if wo.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	if wo.Borderless {
		flags |= sdl.WINDOW_BORDERLESS
	}
	if wo.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	if wo.AlwaysOnTop {
		flags |= sdl.WINDOW_ALWAYS_ON_TOP
	}

	return flags
}

// Window wraps the SDL window and renderer together with frame timing state.
type Window struct {
	Window   *sdl.Window
	Renderer *sdl.Renderer
	Title    string

	hasVSync        bool
	lastPresentTime uint64
}

var window *Window

// GetWindow returns the framework window. Nil before Init.
func GetWindow() *Window {
	return window
}

func newWindow(title string, opts WindowOptions) (*Window, error) {
	width, height := int32(1024), int32(768)
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil && opts.Fullscreen {
		width, height = mode.W, mode.H
	} else if err != nil {
		FrameworkLogger().Warn("Failed to get display mode, using defaults", "error", err)
	}

	if constants.IsDevMode() {
		opts.Borderless = false
		width = envDimension(constants.WindowWidthEnvVar, width)
		height = envDimension(constants.WindowHeightEnvVar, height)
	}

	FrameworkLogger().Debug("Creating SDL window", "width", width, "height", height)

	sdlWindow, err := sdl.CreateWindow(title, x, y, width, height, opts.toSDLFlags())
	if err != nil {
		return nil, err
	}

	renderer, err := sdl.CreateRenderer(sdlWindow, -1,
		sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC|sdl.RENDERER_TARGETTEXTURE)
	if err != nil {
		sdlWindow.Destroy()
		return nil, err
	}

	renderer.SetLogicalSize(width, height)

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   sdlWindow,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envDimension(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		FrameworkLogger().Warn("Invalid window dimension; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// GetWidth returns the current window width.
func (w *Window) GetWidth() int32 {
	width, _ := w.Window.GetSize()
	return width
}

// GetHeight returns the current window height.
func (w *Window) GetHeight() int32 {
	_, height := w.Window.GetSize()
	return height
}

// Clear paints the theme background over the whole frame.
func (w *Window) Clear() {
	bg := GetTheme().BackgroundColor
	w.Renderer.SetDrawColor(bg.R, bg.G, bg.B, bg.A)
	w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing when
// VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

func (w *Window) close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
}
