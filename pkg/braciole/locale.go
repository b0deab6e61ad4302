package braciole

import (
	_ "embed"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/carmine-ui/braciole/pkg/braciole/internal"
)

//go:embed locales/active.en.toml
var englishMessages []byte

var bundle *i18n.Bundle

func messageBundle() *i18n.Bundle {
	if bundle == nil {
		bundle = i18n.NewBundle(language.English)
		bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
		bundle.MustParseMessageFileBytes(englishMessages, "active.en.toml")
	}
	return bundle
}

// LoadMessageFile adds a translation file (e.g. "active.it.toml") to the
// framework bundle. Call before NewLocalizer.
func LoadMessageFile(path string) error {
	if _, err := messageBundle().LoadMessageFile(path); err != nil {
		return fmt.Errorf("load messages %s: %w", path, err)
	}
	return nil
}

// Localizer resolves display strings for the built-in screens and for
// application menu titles.
type Localizer struct {
	localizer *i18n.Localizer
}

// NewLocalizer creates a Localizer preferring the given BCP 47 tags, in
// order, falling back to English.
func NewLocalizer(locales ...string) *Localizer {
	return &Localizer{localizer: i18n.NewLocalizer(messageBundle(), locales...)}
}

// T resolves a message by ID. Unknown IDs fall back to the ID itself so a
// missing translation shows up on screen instead of crashing.
func (l *Localizer) T(id string) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{MessageID: id})
	if err != nil {
		internal.Logger().Warn("Missing translation", "id", id, "error", err)
		return id
	}
	return msg
}

// TCount resolves a pluralized message carrying a Count template value.
func (l *Localizer) TCount(id string, count int) string {
	msg, err := l.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: map[string]any{"Count": count},
		PluralCount:  count,
	})
	if err != nil {
		internal.Logger().Warn("Missing translation", "id", id, "error", err)
		return fmt.Sprintf("%s(%d)", id, count)
	}
	return msg
}
