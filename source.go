package smarty

// SourceKind identifies a documentation source family. The set is closed:
// the resolver matches it exhaustively, so adding a kind means adding a
// constant and a resolution rule.
type SourceKind int

// Supported source kinds.
const (
	SourceWeb SourceKind = iota
	SourceMan
	SourceJavadoc
	SourceSphinx
	SourceGodoc
	SourceRustdoc
)

// String returns the kind's CLI-facing name.
func (k SourceKind) String() string {
	switch k {
	case SourceWeb:
		return "web"
	case SourceMan:
		return "man"
	case SourceJavadoc:
		return "javadoc"
	case SourceSphinx:
		return "sphinx"
	case SourceGodoc:
		return "godoc"
	case SourceRustdoc:
		return "rustdoc"
	default:
		return "unknown"
	}
}

// Source describes where and how to fetch a piece of documentation.
// The interpretation of Value depends on Kind: a URL for web, a page name
// for man, a Maven coordinate or URL for javadoc, and so on.
type Source struct {
	Kind  SourceKind
	Value string
}

// Validate returns an error if the source descriptor is unusable.
func (s Source) Validate() error {
	if s.Value == "" {
		return Errorf(EINVALID, "source value required for %s", s.Kind)
	}
	return nil
}
