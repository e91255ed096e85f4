// Package translate formats user visible messages for the current locale.
package translate

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// fallback is used when the host reports no locale at all.
const fallback = "en-US"

func load() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("dcpu16: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{fallback}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	printerOnce.Do(load)
	return printer.Sprintf(key, args...)
}
