// Package goquery extracts metadata from fetched HTML documents.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	smarty "github.com/bayne/smarty-mcfly"
)

// Ensure Titler implements smarty.TitleExtractor at compile time.
var _ smarty.TitleExtractor = (*Titler)(nil)

// Titler derives a human-readable title from HTML content for use as the
// manifest link text. Non-HTML content has no title; callers fall back to
// the subtopic name.
type Titler struct{}

// NewTitler creates a new Titler.
func NewTitler() *Titler {
	return &Titler{}
}

// Title returns the document's <title>, falling back to the first <h1>.
// Returns "" when the content is not HTML or no title can be found.
func (t *Titler) Title(raw *smarty.RawDocument) string {
	if raw == nil || raw.Kind != smarty.KindHTML {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(raw.Content))
	if err != nil {
		return ""
	}

	if title := normalizeTitle(doc.Find("title").First().Text()); title != "" {
		return title
	}
	return normalizeTitle(doc.Find("h1").First().Text())
}

// normalizeTitle collapses internal whitespace so multi-line titles render
// as a single manifest link text.
func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
