package braciole

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/carmine-ui/braciole/pkg/braciole/constants"
	"github.com/carmine-ui/braciole/pkg/braciole/internal"
	"github.com/carmine-ui/braciole/pkg/braciole/nav"
)

// PeerStatus is the connectivity state reported by the peer layer.
type PeerStatus int

const (
	PeerOffline PeerStatus = iota
	PeerConnecting
	PeerConnected
	PeerSyncing
)

// messageID returns the translation key for the status label.
func (s PeerStatus) messageID() string {
	switch s {
	case PeerConnecting:
		return "StatusConnecting"
	case PeerConnected:
		return "StatusConnected"
	case PeerSyncing:
		return "StatusSyncing"
	default:
		return "StatusOffline"
	}
}

// PeerStatusProvider supplies connectivity data to the status screen. The
// screen reads it once per frame; implementations decide how fresh that is.
type PeerStatusProvider interface {
	PeerStatus() PeerStatus
	PeerCount() int
}

// NewStatusScreen returns the ScreenFunc for the connection status screen.
func NewStatusScreen(provider PeerStatusProvider, localizer *Localizer) ScreenFunc {
	return func(nav.Props) Screen {
		return &statusScreen{provider: provider, localizer: localizer}
	}
}

type statusScreen struct {
	provider  PeerStatusProvider
	localizer *Localizer
}

func (s *statusScreen) HandleButton(constants.Button) {}

func (s *statusScreen) Draw(frame Frame) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	status := s.provider.PeerStatus()
	peers := s.provider.PeerCount()

	x := int32(constants.DefaultScreenPadding)
	y := int32(constants.DefaultScreenPadding)

	title := s.localizer.T("StatusTitle")
	internal.DrawText(frame.Renderer, fonts.Title, title, theme.TextColor, x, y)
	_, titleHeight := internal.TextSize(fonts.Title, title)
	y += titleHeight + 2*constants.DefaultLinePadding

	// Status pill: accent background when reachable, muted otherwise.
	label := s.localizer.T(status.messageID())
	labelWidth, labelHeight := internal.TextSize(fonts.Body, label)

	pillColor := theme.MutedTextColor
	if status == PeerConnected || status == PeerSyncing {
		pillColor = theme.AccentColor
	}

	pill := sdl.Rect{
		X: x,
		Y: y,
		W: labelWidth + 2*constants.DefaultLinePadding,
		H: labelHeight + constants.DefaultLinePadding,
	}
	frame.Renderer.SetDrawColor(pillColor.R, pillColor.G, pillColor.B, pillColor.A)
	frame.Renderer.FillRect(&pill)
	internal.DrawText(frame.Renderer, fonts.Body, label, theme.HighlightedTextColor,
		x+constants.DefaultLinePadding, y+constants.DefaultLinePadding/2)
	y += pill.H + 2*constants.DefaultLinePadding

	internal.DrawText(frame.Renderer, fonts.Small,
		s.localizer.TCount("StatusPeers", peers), theme.MutedTextColor, x, y)
}
