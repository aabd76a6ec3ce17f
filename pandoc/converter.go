// Package pandoc converts man page sources to GitHub Flavored Markdown by
// piping them through the pandoc binary.
package pandoc

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
)

// DefaultTimeout bounds a single pandoc run. Conversion is CPU-bound and
// local; a run this long means pandoc is stuck, not slow.
const DefaultTimeout = 60 * time.Second

// Ensure Converter implements smarty.MarkupConverter at compile time.
var _ smarty.MarkupConverter = (*Converter)(nil)

// Converter runs `pandoc -f <format> -t gfm --wrap=none` with the content on
// stdin. Conversion failures are deterministic for a given input and are not
// retried.
type Converter struct {
	// Bin is the pandoc binary name. Defaults to "pandoc" when empty.
	Bin string

	// From is the pandoc input format, e.g. "man". Required.
	From string

	// Timeout bounds one pandoc run. Defaults to DefaultTimeout when zero.
	Timeout time.Duration
}

// NewManConverter returns a Converter configured for man page input.
func NewManConverter() *Converter {
	return &Converter{From: "man"}
}

// Convert transforms content of the configured format into Markdown.
func (c *Converter) Convert(content []byte) (string, error) {
	bin := c.Bin
	if bin == "" {
		bin = "pandoc"
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, bin, "-f", c.From, "-t", "gfm", "--wrap=none")
	cmd.Stdin = bytes.NewReader(content)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", smarty.Errorf(smarty.ETOOLMISSING, "pandoc is not installed")
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", smarty.Errorf(smarty.ETOOLFAILED, "pandoc -f %s: %s", c.From, msg)
	}

	return stdout.String(), nil
}
