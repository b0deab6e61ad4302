// Package braciole is a screen-navigation UI framework for SDL2 desktop
// clients. It provides a reactive navigation engine (see the nav and store
// packages), a rendering loop that subscribes to it, and a small set of
// ready-made screens: menus, connection status, and commit history.
//
// The package handles SDL initialization, fonts, theming, logging, and
// input mapping; applications register their screens in a nav.ComponentMap
// and hand the navigator to Run.
package braciole

import (
	"log/slog"

	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"

	"github.com/carmine-ui/braciole/pkg/braciole/internal"
)

// Options configures framework initialization.
type Options struct {
	WindowTitle      string                 // Window title
	WindowOptions    internal.WindowOptions // SDL window flags (borderless, fullscreen, etc.)
	FontPath         string                 // Path to the UI font (TTF)
	AccentColorHex   uint32                 // Custom accent color, 0 keeps the default theme
	LogPath          string                 // Full path for the log file (creates parent directories)
	LogLevel         string                 // Minimum application log level ("debug", "info", "warn", "error")
	BackButtonDevice string                 // evdev device path for a hardware back button, empty disables
	BackButtonCode   uint16                 // evdev key code the back button reports
}

var (
	initialized = atomic.NewBool(false)
	backWatcher *internal.BackButtonWatcher
)

// Init initializes SDL, the window, fonts, theming, logging and optional
// hardware input. Must be called before Run or any screen constructor.
func Init(options Options) error {
	if !initialized.CompareAndSwap(false, true) {
		return NewFrameworkError("init", ErrAlreadyInitialized)
	}

	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	internal.SetLogLevel(internal.ParseLogLevel(options.LogLevel))
	internal.SetFrameworkLogLevel(slog.LevelError)

	theme := internal.DefaultTheme(options.FontPath)
	if options.AccentColorHex != 0 {
		theme.AccentColor = internal.HexToColor(options.AccentColorHex)
	}
	internal.SetTheme(theme)

	if err := internal.Setup(options.WindowTitle, options.WindowOptions); err != nil {
		initialized.Store(false)
		return NewFrameworkError("init", err)
	}

	if options.BackButtonDevice != "" {
		watcher, err := internal.StartBackButtonWatcher(
			options.BackButtonDevice, evdev.EvCode(options.BackButtonCode))
		if err != nil {
			// A desktop without the device still has Escape; log and move on.
			internal.FrameworkLogger().Warn("Back button device unavailable",
				"path", options.BackButtonDevice, "error", err)
		} else {
			backWatcher = watcher
		}
	}

	return nil
}

// Close releases all SDL resources. Must be called before program exit.
func Close() {
	if !initialized.CompareAndSwap(true, false) {
		return
	}
	if backWatcher != nil {
		backWatcher.Stop()
		backWatcher = nil
	}
	internal.Cleanup()
}

// Logger returns the application logger for structured logging.
func Logger() *slog.Logger {
	return internal.Logger()
}

// SetLogLevel sets the minimum level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}
