package internal

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/sdl"
)

// RasterizeSVG renders the SVG file at path into a w x h RGBA image. The
// icon is scaled to fill the target rectangle.
func RasterizeSVG(path string, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIcon(path, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("read svg %s: %w", path, err)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	return rgba, nil
}

// LoadSVGTexture rasterizes an SVG icon and uploads it as a texture.
// Callers own the returned texture.
func LoadSVGTexture(renderer *sdl.Renderer, path string, w, h int) (*sdl.Texture, error) {
	rgba, err := RasterizeSVG(path, w, h)
	if err != nil {
		return nil, err
	}

	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(w), int32(h), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, fmt.Errorf("surface for %s: %w", path, err)
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, fmt.Errorf("texture for %s: %w", path, err)
	}

	return texture, nil
}
