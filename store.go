package smarty

import "context"

// TopicStore persists converted markdown under a project's smarts directory
// and maintains the manifest index.
//
// Implementations must write the subtopic file before touching the manifest
// and must make both writes atomic (temp file + rename). A crash may leave
// an orphan file with no manifest entry, which a later learn of the same
// pair repairs; the reverse, a manifest entry pointing at a missing file,
// must never occur.
type TopicStore interface {
	// Store writes the document and upserts its manifest entry, returning
	// the absolute path of the written file.
	Store(ctx context.Context, projectRoot string, doc *Document) (string, error)
}
