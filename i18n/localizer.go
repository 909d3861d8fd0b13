// Package i18n renders the user-visible labels created by the breakout engine.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// roomLabelKey labels one breakout room. It is not a plural: the result reads
// "Room 1", "Room 2", ...
const roomLabelKey = "Room %d"

var supported = []language.Tag{language.English, language.French, language.German, language.Spanish}

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	_ = b.SetString(language.English, roomLabelKey, "Room %d")
	_ = b.SetString(language.French, roomLabelKey, "Salle %d")
	_ = b.SetString(language.German, roomLabelKey, "Raum %d")
	_ = b.SetString(language.Spanish, roomLabelKey, "Sala %d")
	return b
}

// Localizer implements contract.ILocalizer for a single locale.
type Localizer struct {
	printer *message.Printer
}

// NewLocalizer picks the closest supported language for locale,
// falling back to English for anything unknown or malformed.
func NewLocalizer(locale string) Localizer {
	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		matched, _, _ := language.NewMatcher(supported).Match(parsed)
		base, _ := matched.Base()
		tag = language.Make(base.String())
	}
	return Localizer{printer: message.NewPrinter(tag, message.Catalog(newCatalog()))}
}

func (l Localizer) RoomLabel(number int) string {
	return l.printer.Sprintf(roomLabelKey, number)
}
