package waypoint

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

// Titles localizes tab titles before they are turned into URL selectors.
// Selectors are rendered in one fixed language so URLs stay stable no matter
// which locale the user runs in.
type Titles struct {
	localizer *i18n.Localizer
}

// NewTitles creates a title localizer for bundle. Without langs the bundle's
// default language is used.
func NewTitles(bundle *i18n.Bundle, langs ...string) *Titles {
	return &Titles{localizer: i18n.NewLocalizer(bundle, langs...)}
}

// LoadTitles builds a bundle with the given default language from TOML message files.
func LoadTitles(defaultLanguage language.Tag, files ...string) (*Titles, error) {
	bundle := i18n.NewBundle(defaultLanguage)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range files {
		if _, err := bundle.LoadMessageFile(file); err != nil {
			return nil, fmt.Errorf("waypoint: load titles: %w", err)
		}
	}
	return NewTitles(bundle), nil
}

// Title returns the localized text for a title message id, or the title
// itself when it is not a known message.
func (t *Titles) Title(title string) string {
	if t == nil || t.localizer == nil || title == "" {
		return title
	}
	text, err := t.localizer.Localize(&i18n.LocalizeConfig{MessageID: title})
	if err != nil || text == "" {
		return title
	}
	return text
}
