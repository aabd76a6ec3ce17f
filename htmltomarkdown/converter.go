// Package htmltomarkdown converts fetched HTML pages to GitHub Flavored
// Markdown using the html-to-markdown library. Conversion runs in-process:
// no external binary is involved, so ETOOLMISSING cannot occur here.
package htmltomarkdown

import (
	"bytes"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/strikethrough"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	smarty "github.com/bayne/smarty-mcfly"
)

// Ensure Converter implements smarty.MarkupConverter at compile time.
var _ smarty.MarkupConverter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. The table
// and strikethrough plugins cover the GFM extensions documentation sites
// commonly rely on.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
			strikethrough.NewStrikethroughPlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(content []byte) (string, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return "", smarty.Errorf(smarty.ETOOLFAILED, "empty HTML input")
	}

	result, err := c.conv.ConvertString(string(content))
	if err != nil {
		return "", smarty.Errorf(smarty.ETOOLFAILED, "converting HTML: %v", err)
	}

	return result, nil
}
