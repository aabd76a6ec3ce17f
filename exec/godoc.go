package exec

import (
	"context"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
)

// Ensure GoDocTool implements smarty.DocTool at compile time.
var _ smarty.DocTool = (*GoDocTool)(nil)

// GoDocTool produces plain-text package documentation via `go doc -all`.
// It requires a Go toolchain; when one is absent the fetcher falls back to
// pkg.go.dev per the plan's fallback action.
type GoDocTool struct {
	// Bin is the go binary name. Defaults to "go" when empty.
	Bin string

	// Timeout bounds one go doc invocation, which may fetch modules over the
	// network. Defaults to DefaultTimeout when zero.
	Timeout time.Duration
}

// Doc returns the full documentation text for the given package path.
func (g *GoDocTool) Doc(ctx context.Context, pkg string) ([]byte, error) {
	bin := g.Bin
	if bin == "" {
		bin = "go"
	}

	ctx, cancel := boundedContext(ctx, g.Timeout)
	defer cancel()

	return run(ctx, bin, "doc", "-all", pkg)
}
