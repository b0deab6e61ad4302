package internal

import (
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Setup initializes the SDL subsystems, the window and the fonts.
func Setup(title string, opts WindowOptions) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return err
	}

	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return err
	}

	img.Init(img.INIT_PNG)

	if opts.IsZero() {
		opts = WindowOptions{Resizable: true}
	}

	w, err := newWindow(title, opts)
	if err != nil {
		ttf.Quit()
		sdl.Quit()
		return err
	}
	window = w

	if err := openFonts(GetTheme().FontPath); err != nil {
		window.close()
		ttf.Quit()
		sdl.Quit()
		return err
	}

	return nil
}

// Cleanup releases the window, fonts, SDL subsystems and the log file.
func Cleanup() {
	// Cached textures belong to the renderer; release them before it goes.
	destroyLabelCache()
	if window != nil {
		window.close()
		window = nil
	}
	closeFonts()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
	CloseLogger()
}
