// Package fs provides the file-based topic store: one markdown file per
// learned subtopic under <root>/.smarts/<topic>/, indexed by MANIFEST.md.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	smarty "github.com/bayne/smarty-mcfly"
	"github.com/google/uuid"
)

// SmartsDirName is the per-project directory holding learned documentation.
const SmartsDirName = ".smarts"

// Ensure TopicStore implements smarty.TopicStore at compile time.
var _ smarty.TopicStore = (*TopicStore)(nil)

// TopicStore persists documents with write-temp-then-rename semantics.
//
// The subtopic file is written before the manifest. A crash in between
// leaves an orphan file with no manifest entry, which the next learn of the
// same pair repairs; the reverse (a manifest entry pointing at a missing
// file) cannot occur because the manifest rename is the last step.
//
// Concurrent stores to the same project are not coordinated: the manifest
// read-modify-write has no cross-process lock, so simultaneous writers can
// lose each other's entry (last rename wins). A future advisory lock on the
// manifest path would scope here, around loadManifest/writeFileAtomic.
type TopicStore struct{}

// NewTopicStore creates a new TopicStore.
func NewTopicStore() *TopicStore {
	return &TopicStore{}
}

// Store writes the document under the project's smarts directory and
// upserts its manifest entry. Returns the absolute path of the written file.
func (s *TopicStore) Store(ctx context.Context, projectRoot string, doc *smarty.Document) (string, error) {
	if err := doc.Validate(); err != nil {
		return "", err
	}

	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", smarty.Errorf(smarty.EIO, "resolving project root %q: %v", projectRoot, err)
	}

	smartsDir := filepath.Join(root, SmartsDirName)
	topicDir := filepath.Join(smartsDir, doc.Topic)
	if err := os.MkdirAll(topicDir, 0o755); err != nil {
		return "", smarty.Errorf(smarty.EIO, "creating topic directory: %v", err)
	}

	docPath := filepath.Join(topicDir, doc.Subtopic+".md")
	if err := writeFileAtomic(docPath, []byte(doc.Content)); err != nil {
		return "", err
	}

	manifestPath := filepath.Join(smartsDir, smarty.ManifestFilename)
	manifest, err := loadManifest(manifestPath)
	if err != nil {
		return "", err
	}

	relPath := doc.Topic + "/" + doc.Subtopic + ".md"
	manifest.Upsert(doc.Topic, doc.Subtopic, relPath, doc.Title)

	if err := writeFileAtomic(manifestPath, manifest.Render()); err != nil {
		return "", err
	}

	return docPath, nil
}

// loadManifest reads and parses the manifest, returning an empty skeleton if
// the file does not exist yet.
func loadManifest(path string) (*smarty.Manifest, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return smarty.NewManifest(), nil
	} else if err != nil {
		return nil, smarty.Errorf(smarty.EIO, "reading manifest: %v", err)
	}
	return smarty.ParseManifest(data), nil
}

// writeFileAtomic writes data to a uniquely named temp file in the target's
// directory, then renames it into place. Readers never observe a partial
// write; an interrupted run leaves at worst a hidden temp file that is safe
// to delete.
func writeFileAtomic(path string, data []byte) error {
	dir, base := filepath.Split(path)
	tmp := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", base, uuid.NewString()))

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return smarty.Errorf(smarty.EIO, "writing %s: %v", base, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return smarty.Errorf(smarty.EIO, "renaming %s into place: %v", base, err)
	}
	return nil
}
