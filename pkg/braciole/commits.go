package braciole

import (
	"time"

	"github.com/carmine-ui/braciole/pkg/braciole/constants"
	"github.com/carmine-ui/braciole/pkg/braciole/internal"
	"github.com/carmine-ui/braciole/pkg/braciole/nav"
)

// Commit is one entry in a project's history.
type Commit struct {
	Hash    string
	Summary string
	Author  string
	Time    time.Time
}

// CommitProvider supplies commit history to the commit log screen. An empty
// project name means the provider's default project.
type CommitProvider interface {
	Commits(project string) []Commit
}

// NewCommitLog returns the ScreenFunc for the commit history screen. The
// project to show travels in the view's props under "project"; absent or
// zero-sentinel values fall back to the provider's default.
func NewCommitLog(provider CommitProvider, localizer *Localizer) ScreenFunc {
	return func(props nav.Props) Screen {
		project, _ := props["project"].Str()
		return &commitLogScreen{
			localizer: localizer,
			project:   project,
			commits:   provider.Commits(project),
		}
	}
}

type commitLogScreen struct {
	localizer *Localizer
	project   string
	commits   []Commit
	offset    int // index of the first visible commit
}

func (c *commitLogScreen) HandleButton(button constants.Button) {
	switch button {
	case constants.ButtonUp:
		if c.offset > 0 {
			c.offset--
		}
	case constants.ButtonDown:
		if c.offset < len(c.commits)-1 {
			c.offset++
		}
	}
}

func (c *commitLogScreen) Draw(frame Frame) {
	theme := internal.GetTheme()
	fonts := internal.GetFonts()

	x := int32(constants.DefaultScreenPadding)
	y := int32(constants.DefaultScreenPadding)

	title := c.localizer.T("CommitsTitle")
	if c.project != "" {
		title += " · " + c.project
	}
	internal.DrawText(frame.Renderer, fonts.Title, title, theme.TextColor, x, y)
	_, titleHeight := internal.TextSize(fonts.Title, title)
	y += titleHeight + 2*constants.DefaultLinePadding

	if len(c.commits) == 0 {
		internal.DrawText(frame.Renderer, fonts.Body,
			c.localizer.T("CommitsEmpty"), theme.MutedTextColor, x, y)
		return
	}

	_, bodyHeight := internal.TextSize(fonts.Body, "M")
	_, smallHeight := internal.TextSize(fonts.Small, "M")
	rowHeight := bodyHeight + smallHeight + 2*constants.DefaultLinePadding

	for _, commit := range c.commits[c.offset:] {
		if y+rowHeight > frame.Height-constants.DefaultScreenPadding {
			break
		}

		internal.DrawText(frame.Renderer, fonts.Body, commit.Summary, theme.TextColor, x, y)

		meta := shortHash(commit.Hash)
		if commit.Author != "" {
			meta += " · " + commit.Author
		}
		if !commit.Time.IsZero() {
			meta += " · " + commit.Time.Format("2006-01-02 15:04")
		}
		internal.DrawText(frame.Renderer, fonts.Small, meta, theme.MutedTextColor,
			x, y+bodyHeight+constants.DefaultLinePadding/2)

		y += rowHeight
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
