package braciole

import (
	"testing"
	"time"

	"github.com/carmine-ui/braciole/pkg/braciole/constants"
	"github.com/carmine-ui/braciole/pkg/braciole/nav"
)

type stubCommitProvider struct {
	byProject map[string][]Commit
}

func (p *stubCommitProvider) Commits(project string) []Commit {
	return p.byProject[project]
}

func testNavigator(t *testing.T, menu ScreenFunc) *nav.Navigator[string] {
	t.Helper()
	navigator, err := nav.New(nav.ComponentMap[string]{
		"menu":    menu,
		"status":  ScreenFunc(func(nav.Props) Screen { return nil }),
		"commits": ScreenFunc(func(nav.Props) Screen { return nil }),
	}, "menu")
	if err != nil {
		t.Fatal(err)
	}
	return navigator
}

func TestMenuFocusMovesAndClamps(t *testing.T) {
	localizer := NewLocalizer()

	var navigator *nav.Navigator[string]
	items := []MenuItem[string]{
		{Key: "status", Title: "Connection"},
		{Key: "commits", Title: "History"},
	}
	construct := NewMenu(navigator, localizer, items)

	menu := construct(nil).(*menuScreen[string])

	menu.HandleButton(constants.ButtonUp) // already at top
	if menu.focused != 0 {
		t.Fatalf("focused = %d after Up at top, want 0", menu.focused)
	}

	menu.HandleButton(constants.ButtonDown)
	if menu.focused != 1 {
		t.Fatalf("focused = %d after Down, want 1", menu.focused)
	}

	menu.HandleButton(constants.ButtonDown) // already at bottom
	if menu.focused != 1 {
		t.Fatalf("focused = %d after Down at bottom, want 1", menu.focused)
	}
}

func TestMenuConfirmNavigatesToFocusedKey(t *testing.T) {
	localizer := NewLocalizer()
	items := []MenuItem[string]{
		{Key: "status", Title: "Connection"},
		{Key: "commits", Title: "History"},
	}

	var construct ScreenFunc
	navigator := testNavigator(t, ScreenFunc(func(p nav.Props) Screen { return construct(p) }))
	construct = NewMenu(navigator, localizer, items)

	menu := construct(nil).(*menuScreen[string])
	menu.HandleButton(constants.ButtonDown)
	menu.HandleButton(constants.ButtonConfirm)

	if got := navigator.Current().Get().Key; got != "commits" {
		t.Fatalf("current key = %q after menu confirm, want %q", got, "commits")
	}
	if navigator.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", navigator.Depth())
	}
}

func TestCommitLogReadsProjectFromProps(t *testing.T) {
	provider := &stubCommitProvider{byProject: map[string][]Commit{
		"braciole": {{Hash: "deadbeefcafe", Summary: "initial import", Time: time.Now()}},
	}}
	construct := NewCommitLog(provider, NewLocalizer())

	screen := construct(nav.Props{"project": nav.String("braciole")}).(*commitLogScreen)
	if screen.project != "braciole" {
		t.Fatalf("project = %q, want %q", screen.project, "braciole")
	}
	if len(screen.commits) != 1 {
		t.Fatalf("commits = %d, want 1", len(screen.commits))
	}

	// No props means the provider's default project.
	screen = construct(nil).(*commitLogScreen)
	if screen.project != "" {
		t.Fatalf("project = %q for nil props, want empty", screen.project)
	}
	if len(screen.commits) != 0 {
		t.Fatalf("commits = %d for default project, want 0", len(screen.commits))
	}
}

func TestCommitLogScrollClamps(t *testing.T) {
	provider := &stubCommitProvider{byProject: map[string][]Commit{
		"": {
			{Hash: "a1", Summary: "one"},
			{Hash: "b2", Summary: "two"},
			{Hash: "c3", Summary: "three"},
		},
	}}
	screen := NewCommitLog(provider, NewLocalizer())(nil).(*commitLogScreen)

	screen.HandleButton(constants.ButtonUp)
	if screen.offset != 0 {
		t.Fatalf("offset = %d after Up at top, want 0", screen.offset)
	}

	for range 5 {
		screen.HandleButton(constants.ButtonDown)
	}
	if screen.offset != 2 {
		t.Fatalf("offset = %d after scrolling past end, want 2", screen.offset)
	}
}

func TestShortHash(t *testing.T) {
	if got := shortHash("deadbeefcafe"); got != "deadbee" {
		t.Errorf("shortHash long = %q, want %q", got, "deadbee")
	}
	if got := shortHash("ab12"); got != "ab12" {
		t.Errorf("shortHash short = %q, want %q", got, "ab12")
	}
}

func TestPeerStatusMessageIDs(t *testing.T) {
	cases := map[PeerStatus]string{
		PeerOffline:    "StatusOffline",
		PeerConnecting: "StatusConnecting",
		PeerConnected:  "StatusConnected",
		PeerSyncing:    "StatusSyncing",
		PeerStatus(99): "StatusOffline",
	}

	for status, want := range cases {
		if got := status.messageID(); got != want {
			t.Errorf("(%d).messageID() = %q, want %q", status, got, want)
		}
	}
}

func TestInputDebouncerSwallowsRapidPresses(t *testing.T) {
	debounce := newInputDebouncer(constants.DefaultInputDelay)
	start := time.Now()

	if !debounce.allow(start) {
		t.Fatal("first input was swallowed")
	}
	if debounce.allow(start.Add(constants.DefaultInputDelay / 2)) {
		t.Fatal("input inside the delay window was handled")
	}
	if !debounce.allow(start.Add(constants.DefaultInputDelay)) {
		t.Fatal("input after the delay window was swallowed")
	}

	// Swallowed inputs must not extend the window.
	next := start.Add(constants.DefaultInputDelay)
	debounce.allow(next.Add(constants.DefaultInputDelay / 2))
	if !debounce.allow(next.Add(constants.DefaultInputDelay)) {
		t.Fatal("a swallowed input reset the window")
	}
}
