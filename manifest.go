package smarty

import (
	"regexp"
	"strings"
)

// ManifestFilename is the name of the index document inside the smarts
// directory.
const ManifestFilename = "MANIFEST.md"

// DefaultPreamble is the text written above the first topic section when a
// manifest is created from scratch. It instructs agents reading the manifest
// to consult the linked files.
const DefaultPreamble = "# Smarty McFly Documentation Manifest\n\n" +
	"**MANDATORY:** For any matching topic below, you MUST read every linked " +
	"markdown file before responding. Do not rely on training knowledge when " +
	"local docs exist.\n"

// Manifest is the parsed form of MANIFEST.md, the single persistent index of
// learned documentation. This type owns the serialization format exclusively:
// no other component constructs manifest text.
type Manifest struct {
	// Preamble is everything above the first topic heading, kept verbatim.
	Preamble string

	Topics []ManifestTopic
}

// ManifestTopic is one "## <topic>" section and its entries, in file order.
type ManifestTopic struct {
	Name    string
	Entries []ManifestEntry
}

// ManifestEntry is one subtopic link. Path is relative to the manifest's own
// location. Title is the link text shown in the manifest; when empty the
// subtopic name is used.
type ManifestEntry struct {
	Name  string
	Title string
	Path  string
}

// NewManifest returns an empty manifest with the default preamble.
func NewManifest() *Manifest {
	return &Manifest{Preamble: DefaultPreamble}
}

var manifestEntryRE = regexp.MustCompile(`^- \[(.*)\]\((.*)\)$`)

// ParseManifest parses manifest text. The parser is tolerant: unrecognized
// lines inside topic sections are dropped, so a re-render normalizes the
// document. Round-tripping a manifest this package wrote is byte-stable.
func ParseManifest(data []byte) *Manifest {
	m := &Manifest{}

	var preamble []string
	var topic *ManifestTopic
	for _, line := range strings.Split(string(data), "\n") {
		if name, ok := strings.CutPrefix(line, "## "); ok {
			if topic != nil {
				m.Topics = append(m.Topics, *topic)
			}
			topic = &ManifestTopic{Name: strings.TrimSpace(name)}
			continue
		}

		if topic == nil {
			preamble = append(preamble, line)
			continue
		}

		if match := manifestEntryRE.FindStringSubmatch(line); match != nil {
			topic.Entries = append(topic.Entries, ManifestEntry{
				Name:  entryName(match[2]),
				Title: match[1],
				Path:  match[2],
			})
		}
	}
	if topic != nil {
		m.Topics = append(m.Topics, *topic)
	}

	// Blank lines separating the preamble from the first section are
	// formatting, not content. Normalizing here keeps parse→render stable.
	m.Preamble = strings.TrimRight(strings.Join(preamble, "\n"), "\n") + "\n"

	return m
}

// Render serializes the manifest to its canonical markdown form.
func (m *Manifest) Render() []byte {
	var b strings.Builder

	preamble := m.Preamble
	if preamble == "" {
		preamble = DefaultPreamble
	}
	b.WriteString(strings.TrimRight(preamble, "\n"))
	b.WriteString("\n")

	for _, topic := range m.Topics {
		b.WriteString("\n## ")
		b.WriteString(topic.Name)
		b.WriteString("\n\n")
		for _, e := range topic.Entries {
			text := e.Title
			if text == "" {
				text = e.Name
			}
			b.WriteString("- [")
			b.WriteString(text)
			b.WriteString("](")
			b.WriteString(e.Path)
			b.WriteString(")\n")
		}
	}

	return []byte(b.String())
}

// Upsert records a subtopic under a topic. An existing (topic, subtopic)
// entry is replaced in place, preserving its position; otherwise the entry
// is appended to the topic's section, creating the section if needed.
func (m *Manifest) Upsert(topic, subtopic, path, title string) {
	entry := ManifestEntry{Name: subtopic, Title: title, Path: path}

	for ti := range m.Topics {
		if m.Topics[ti].Name != topic {
			continue
		}
		for ei := range m.Topics[ti].Entries {
			if m.Topics[ti].Entries[ei].Name == subtopic {
				m.Topics[ti].Entries[ei] = entry
				return
			}
		}
		m.Topics[ti].Entries = append(m.Topics[ti].Entries, entry)
		return
	}

	m.Topics = append(m.Topics, ManifestTopic{
		Name:    topic,
		Entries: []ManifestEntry{entry},
	})
}

// Lookup returns the entry for (topic, subtopic), or nil if absent.
func (m *Manifest) Lookup(topic, subtopic string) *ManifestEntry {
	for ti := range m.Topics {
		if m.Topics[ti].Name != topic {
			continue
		}
		for ei := range m.Topics[ti].Entries {
			if m.Topics[ti].Entries[ei].Name == subtopic {
				return &m.Topics[ti].Entries[ei]
			}
		}
	}
	return nil
}

// entryName derives the subtopic name from an entry's relative path.
func entryName(path string) string {
	base := path
	if i := strings.LastIndexByte(base, '/'); i >= 0 {
		base = base[i+1:]
	}
	return strings.TrimSuffix(base, ".md")
}
