package internal

import "github.com/veandco/go-sdl2/sdl"

// Theme defines the visual appearance of braciole screens.
type Theme struct {
	BackgroundColor      sdl.Color // Screen background
	TextColor            sdl.Color // Default text
	MutedTextColor       sdl.Color // Secondary text: hints, timestamps, commit hashes
	AccentColor          sdl.Color // Accent elements: status pill, focused icons
	HighlightColor       sdl.Color // Focused menu item background
	HighlightedTextColor sdl.Color // Text on highlighted items
	FontPath             string    // Path to the UI font
}

var currentTheme = DefaultTheme("")

// DefaultTheme returns the built-in dark theme with the given font path.
func DefaultTheme(fontPath string) Theme {
	return Theme{
		BackgroundColor:      HexToColor(0x16161D),
		TextColor:            HexToColor(0xE6E6E6),
		MutedTextColor:       HexToColor(0x8A8A96),
		AccentColor:          HexToColor(0x53B1A4),
		HighlightColor:       HexToColor(0xE6E6E6),
		HighlightedTextColor: HexToColor(0x16161D),
		FontPath:             fontPath,
	}
}

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// HexToColor converts a 0xRRGGBB value to an opaque sdl.Color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16),
		G: uint8(hex >> 8),
		B: uint8(hex),
		A: 255,
	}
}
