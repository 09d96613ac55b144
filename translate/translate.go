// Package translate formats user visible text for the current locale.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("bandfuck: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// To writes the translation of an en-US Sprintf() format to w.
func To(w io.Writer, key message.Reference, args ...any) (err error) {
	if w == nil {
		return
	}

	_, err = printer.Fprintf(w, key, args...)
	return
}
