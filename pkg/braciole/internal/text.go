package internal

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Font sizes in points.
const (
	titleFontSize = 28
	bodyFontSize  = 20
	smallFontSize = 14
)

// Fonts holds the three font sizes braciole renders with.
type Fonts struct {
	Title *ttf.Font
	Body  *ttf.Font
	Small *ttf.Font
}

var fonts Fonts

// labelCache holds rasterized label textures across frames. Screens redraw
// the same strings every frame; without the cache each DrawText call pays a
// full rasterize and texture upload.
var labelCache = NewTextureCache()

func labelCacheKey(font *ttf.Font, text string, color sdl.Color) string {
	return fmt.Sprintf("%p/%02x%02x%02x%02x/%s", font, color.R, color.G, color.B, color.A, text)
}

func destroyLabelCache() {
	labelCache.Destroy()
}

// GetFonts returns the loaded fonts. Zero before Setup.
func GetFonts() Fonts {
	return fonts
}

func openFonts(path string) error {
	title, err := ttf.OpenFont(path, titleFontSize)
	if err != nil {
		return err
	}

	body, err := ttf.OpenFont(path, bodyFontSize)
	if err != nil {
		title.Close()
		return err
	}

	small, err := ttf.OpenFont(path, smallFontSize)
	if err != nil {
		title.Close()
		body.Close()
		return err
	}

	fonts = Fonts{Title: title, Body: body, Small: small}
	return nil
}

func closeFonts() {
	if fonts.Title != nil {
		fonts.Title.Close()
	}
	if fonts.Body != nil {
		fonts.Body.Close()
	}
	if fonts.Small != nil {
		fonts.Small.Close()
	}
	fonts = Fonts{}
}

// RenderText rasterizes text into a texture. Returns nil on empty text or
// render failure; callers own the returned texture.
func RenderText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color) *sdl.Texture {
	if text == "" {
		return nil
	}

	surface, err := font.RenderUTF8Blended(text, color)
	if err != nil {
		return nil
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil
	}

	return texture
}

// DrawText renders text at (x, y), reusing a cached texture when the same
// label was drawn recently. Returns the drawn width.
func DrawText(renderer *sdl.Renderer, font *ttf.Font, text string, color sdl.Color, x, y int32) int32 {
	key := labelCacheKey(font, text, color)
	texture := labelCache.Get(key)
	if texture == nil {
		texture = RenderText(renderer, font, text, color)
		if texture == nil {
			return 0
		}
		labelCache.Put(key, texture)
	}

	_, _, w, h, err := texture.Query()
	if err != nil {
		return 0
	}

	renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: w, H: h})
	return w
}

// TextSize measures text without rendering it.
func TextSize(font *ttf.Font, text string) (int32, int32) {
	w, h, err := font.SizeUTF8(text)
	if err != nil {
		return 0, 0
	}
	return int32(w), int32(h)
}
