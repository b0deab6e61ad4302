package braciole

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/carmine-ui/braciole/pkg/braciole/constants"
	"github.com/carmine-ui/braciole/pkg/braciole/internal"
	"github.com/carmine-ui/braciole/pkg/braciole/nav"
)

// MenuItem pairs a navigation key with its display metadata. It is pure
// data: selecting an item in a Menu screen calls Set with its Key, and
// nothing else in the framework interprets it.
type MenuItem[K comparable] struct {
	Icon  nav.Renderable // Icon handle, typically a *sdl.Texture from LoadMenuIcon
	Key   K              // Navigation key, drawn from the same domain as the Navigator's
	Title string         // Display title, already localized
}

// LoadMenuIcon rasterizes an SVG file into an icon-sized texture suitable
// for MenuItem.Icon. Must be called after Init.
func LoadMenuIcon(path string) (nav.Renderable, error) {
	window := internal.GetWindow()
	if window == nil {
		return nil, NewFrameworkError("load icon", ErrNotInitialized)
	}

	texture, err := internal.LoadSVGTexture(window.Renderer, path,
		constants.DefaultIconSize, constants.DefaultIconSize)
	if err != nil {
		return nil, NewFrameworkError("load icon", err)
	}
	return texture, nil
}

// NewMenu returns the ScreenFunc for a navigation menu over items.
// Selecting an item navigates forward to its key; focus starts at the first
// item on every visit.
func NewMenu[K comparable](navigator *nav.Navigator[K], localizer *Localizer, items []MenuItem[K]) ScreenFunc {
	return func(nav.Props) Screen {
		return &menuScreen[K]{
			navigator: navigator,
			title:     localizer.T("MenuTitle"),
			items:     items,
		}
	}
}

type menuScreen[K comparable] struct {
	navigator *nav.Navigator[K]
	title     string
	items     []MenuItem[K]
	focused   int
}

func (m *menuScreen[K]) HandleButton(button constants.Button) {
	switch button {
	case constants.ButtonUp:
		if m.focused > 0 {
			m.focused--
		}
	case constants.ButtonDown:
		if m.focused < len(m.items)-1 {
			m.focused++
		}
	case constants.ButtonConfirm:
		if len(m.items) == 0 {
			return
		}
		item := m.items[m.focused]
		if err := m.navigator.Set(item.Key, nil); err != nil {
			internal.FrameworkLogger().Error("Menu navigation failed", "key", item.Key, "error", err)
		}
	}
}

func (m *menuScreen[K]) Draw(frame Frame) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	x := int32(constants.DefaultScreenPadding)
	y := int32(constants.DefaultScreenPadding)

	internal.DrawText(frame.Renderer, fonts.Title, m.title, theme.TextColor, x, y)
	_, titleHeight := internal.TextSize(fonts.Title, m.title)
	y += titleHeight + 2*constants.DefaultLinePadding

	_, rowTextHeight := internal.TextSize(fonts.Body, "M")
	rowHeight := rowTextHeight + 2*constants.DefaultLinePadding

	for i, item := range m.items {
		textColor := theme.TextColor

		if i == m.focused {
			hl := theme.HighlightColor
			frame.Renderer.SetDrawColor(hl.R, hl.G, hl.B, hl.A)
			frame.Renderer.FillRect(&sdl.Rect{
				X: x - constants.DefaultLinePadding,
				Y: y,
				W: frame.Width - 2*x + 2*constants.DefaultLinePadding,
				H: rowHeight,
			})
			textColor = theme.HighlightedTextColor
		}

		textX := x
		if icon, ok := item.Icon.(*sdl.Texture); ok && icon != nil {
			frame.Renderer.Copy(icon, nil, &sdl.Rect{
				X: x,
				Y: y + (rowHeight-constants.DefaultIconSize)/2,
				W: constants.DefaultIconSize,
				H: constants.DefaultIconSize,
			})
			textX += constants.DefaultIconSize + constants.DefaultLinePadding
		}

		internal.DrawText(frame.Renderer, fonts.Body, item.Title, textColor,
			textX, y+constants.DefaultLinePadding)

		y += rowHeight
	}
}
