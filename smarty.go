// Package smarty turns reference documentation from heterogeneous sources
// (web pages, man pages, javadoc/sphinx/godoc/rustdoc sites) into GitHub
// Flavored Markdown filed under a per-project .smarts/ directory, indexed
// by a single MANIFEST.md document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, exec/, pandoc/, fs/).
package smarty
