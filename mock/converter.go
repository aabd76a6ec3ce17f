package mock

import (
	smarty "github.com/bayne/smarty-mcfly"
)

var _ smarty.Converter = (*Converter)(nil)

// Converter is a mock implementation of smarty.Converter.
type Converter struct {
	ConvertFn func(raw *smarty.RawDocument) (string, error)
}

func (c *Converter) Convert(raw *smarty.RawDocument) (string, error) {
	return c.ConvertFn(raw)
}

var _ smarty.MarkupConverter = (*MarkupConverter)(nil)

// MarkupConverter is a mock implementation of smarty.MarkupConverter.
type MarkupConverter struct {
	ConvertFn func(content []byte) (string, error)
}

func (c *MarkupConverter) Convert(content []byte) (string, error) {
	return c.ConvertFn(content)
}

var _ smarty.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of smarty.TitleExtractor.
type TitleExtractor struct {
	TitleFn func(raw *smarty.RawDocument) string
}

func (t *TitleExtractor) Title(raw *smarty.RawDocument) string {
	return t.TitleFn(raw)
}
