package braciole

import "testing"

func TestLocalizerResolvesEmbeddedMessages(t *testing.T) {
	l := NewLocalizer()

	if got := l.T("StatusConnected"); got != "Connected" {
		t.Errorf(`T("StatusConnected") = %q, want "Connected"`, got)
	}
	if got := l.T("MenuTitle"); got != "Menu" {
		t.Errorf(`T("MenuTitle") = %q, want "Menu"`, got)
	}
}

func TestLocalizerFallsBackToID(t *testing.T) {
	l := NewLocalizer()

	if got := l.T("NoSuchMessage"); got != "NoSuchMessage" {
		t.Errorf(`T("NoSuchMessage") = %q, want the ID back`, got)
	}
}

func TestLocalizerPluralizesPeerCount(t *testing.T) {
	l := NewLocalizer()

	if got := l.TCount("StatusPeers", 1); got != "1 peer" {
		t.Errorf(`TCount("StatusPeers", 1) = %q, want "1 peer"`, got)
	}
	if got := l.TCount("StatusPeers", 4); got != "4 peers" {
		t.Errorf(`TCount("StatusPeers", 4) = %q, want "4 peers"`, got)
	}
}

func TestLocalizerPrefersRequestedLocale(t *testing.T) {
	// Only English is embedded, so asking for Italian must still resolve.
	l := NewLocalizer("it-IT")

	if got := l.T("StatusOffline"); got != "Offline" {
		t.Errorf(`T("StatusOffline") = %q, want English fallback "Offline"`, got)
	}
}
