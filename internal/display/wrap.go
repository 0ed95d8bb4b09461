package display

import (
	"github.com/muesli/reflow/wordwrap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultWidth = 80

var titleCaser = cases.Title(language.English)

// Wrap word-wraps text to DefaultWidth.
func Wrap(text string) string {
	return wordwrap.String(text, DefaultWidth)
}

// Title uppercases the first letter of each word for display labels.
func Title(s string) string {
	return titleCaser.String(s)
}
