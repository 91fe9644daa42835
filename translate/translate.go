// Package translate routes every human readable message of the x8 tools
// through a golang.org/x/text message printer matched to the user's locale.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"
	"golang.org/x/text/message"
)

var printer atomic.Pointer[message.Printer]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("x8: locale: %v", err)
	}

	SetLanguage(locales...)
}

// SetLanguage selects the printer for the best match among the preferred
// locales. With no locales, en-US is used.
func SetLanguage(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer.Store(message.NewPrinter(message.MatchLanguage(locales...)))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
