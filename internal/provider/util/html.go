package util

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTML flattens an HTML fragment to plain text. Reed and some alert
// emails ship descriptions as markup; the canonical record carries text.
func StripHTML(fragment string) string {
	if !strings.ContainsAny(fragment, "<>") {
		return CleanText(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return CleanText(fragment)
	}
	return CleanText(doc.Text())
}
