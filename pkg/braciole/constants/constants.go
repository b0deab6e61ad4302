// Package constants defines shared constants and types used throughout the
// braciole UI framework.
package constants

import (
	"os"
	"time"
)

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variable names honored in development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Button is an abstract input button, mapped from keyboard or hardware
// input so screens never deal with raw scancodes.
type Button int

const (
	ButtonNone Button = iota
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
	ButtonConfirm // Enter / A
	ButtonBack    // Escape / B / hardware back
	ButtonMenu    // Tab / menu key
)

func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "Up"
	case ButtonDown:
		return "Down"
	case ButtonLeft:
		return "Left"
	case ButtonRight:
		return "Right"
	case ButtonConfirm:
		return "Confirm"
	case ButtonBack:
		return "Back"
	case ButtonMenu:
		return "Menu"
	default:
		return "None"
	}
}

// Default timing constants.
const (
	DefaultInputDelay    = 20 * time.Millisecond // Debounce delay between input events
	DefaultEventWaitMS   = 16                    // Per-frame event wait, ~60fps
	DefaultIconSize      = 24                    // Menu icon edge length in pixels
	DefaultLinePadding   = 8                     // Vertical padding between text rows
	DefaultScreenPadding = 24                    // Outer padding around screen content
)
