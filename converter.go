package smarty

// Converter transforms raw fetched content into GitHub Flavored Markdown,
// dispatching on the content kind. Conversion failures are deterministic for
// a given input and are never retried.
type Converter interface {
	Convert(raw *RawDocument) (string, error)
}

// MarkupConverter converts a single markup dialect (HTML, man) to markdown.
// Implementations wrap an external converter so tests can substitute fakes.
type MarkupConverter interface {
	Convert(content []byte) (string, error)
}

// TitleExtractor derives a human-readable title from raw content. An empty
// result means no title could be found; callers fall back to the subtopic
// name.
type TitleExtractor interface {
	Title(raw *RawDocument) string
}
