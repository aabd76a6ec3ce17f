package smarty

import (
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// ContentKind identifies the markup dialect of fetched content.
type ContentKind int

// Content kinds produced by the fetcher.
const (
	KindHTML ContentKind = iota
	KindMan
	KindText
)

// RawDocument is fetched content before conversion. It is ephemeral and
// never persisted in raw form.
type RawDocument struct {
	Content []byte
	Kind    ContentKind
}

// Document represents one learned subtopic: converted markdown ready to be
// filed under <root>/.smarts/<topic>/<subtopic>.md.
type Document struct {
	Topic       string    `json:"topic"`
	Subtopic    string    `json:"subtopic"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ContentHash string    `json:"contentHash"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if err := ValidateName(d.Topic); err != nil {
		return Errorf(EINVALID, "document topic: %s", ErrorMessage(err))
	}
	if err := ValidateName(d.Subtopic); err != nil {
		return Errorf(EINVALID, "document subtopic: %s", ErrorMessage(err))
	}
	return nil
}

// ValidateName checks that a topic or subtopic name is safe to use as a
// filesystem path component: non-empty, no path separators, no leading dot.
func ValidateName(name string) error {
	if name == "" {
		return Errorf(EINVALID, "name required")
	}
	if strings.ContainsAny(name, `/\`) {
		return Errorf(EINVALID, "name %q must not contain path separators", name)
	}
	if strings.HasPrefix(name, ".") {
		return Errorf(EINVALID, "name %q must not start with a dot", name)
	}
	return nil
}

// HashContent returns a stable content hash for change detection and logging.
func HashContent(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
