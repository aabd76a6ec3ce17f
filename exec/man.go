package exec

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"strings"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
)

// Ensure ManPages implements smarty.ManSource at compile time.
var _ smarty.ManSource = (*ManPages)(nil)

// ManPages reads man page sources via the system man implementation.
// `man -w <page>` locates the source file, which is then read directly
// (decompressing if the distribution ships gzipped pages). Converting the
// roff source, rather than man's rendered output, preserves structure for
// the markdown conversion step.
type ManPages struct {
	// Bin is the man binary name. Defaults to "man" when empty.
	Bin string

	// Timeout bounds one man invocation. Defaults to DefaultTimeout when zero.
	Timeout time.Duration
}

// Source returns the roff source of the named man page.
func (m *ManPages) Source(ctx context.Context, page string) ([]byte, error) {
	bin := m.Bin
	if bin == "" {
		bin = "man"
	}

	ctx, cancel := boundedContext(ctx, m.Timeout)
	defer cancel()

	out, err := run(ctx, bin, "-w", page)
	if err != nil {
		return nil, err
	}

	// man -w may list several paths; the first is the preferred section.
	path := strings.TrimSpace(string(out))
	if i := strings.IndexByte(path, '\n'); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return nil, smarty.Errorf(smarty.ENOTFOUND, "man page %q not found", page)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, smarty.Errorf(smarty.ETOOLFAILED, "reading man source %s: %v", path, err)
	}

	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, smarty.Errorf(smarty.ETOOLFAILED, "decompressing man source %s: %v", path, err)
		}
		defer gz.Close()
		if data, err = io.ReadAll(gz); err != nil {
			return nil, smarty.Errorf(smarty.ETOOLFAILED, "decompressing man source %s: %v", path, err)
		}
	}

	return data, nil
}
