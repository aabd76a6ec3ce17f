// Package convert selects the right markup converter for a raw document's
// content kind.
package convert

import (
	smarty "github.com/bayne/smarty-mcfly"
)

// Ensure Converter implements smarty.Converter at compile time.
var _ smarty.Converter = (*Converter)(nil)

// Converter dispatches on content kind: HTML and man content go through
// their respective markup converters, plain text passes through unchanged
// as a safety net for ambiguous content.
type Converter struct {
	HTML smarty.MarkupConverter
	Man  smarty.MarkupConverter
}

// Convert transforms a raw document into markdown.
func (c *Converter) Convert(raw *smarty.RawDocument) (string, error) {
	switch raw.Kind {
	case smarty.KindHTML:
		if c.HTML == nil {
			return "", smarty.Errorf(smarty.EINTERNAL, "no HTML converter configured")
		}
		return c.HTML.Convert(raw.Content)
	case smarty.KindMan:
		if c.Man == nil {
			return "", smarty.Errorf(smarty.EINTERNAL, "no man converter configured")
		}
		return c.Man.Convert(raw.Content)
	case smarty.KindText:
		return string(raw.Content), nil
	default:
		return "", smarty.Errorf(smarty.EINTERNAL, "unknown content kind %d", raw.Kind)
	}
}
