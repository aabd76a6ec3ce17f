// Package exec implements smarty's local-tool capabilities (man page lookup,
// go doc) by running external binaries. The binary names are configurable so
// tests can point at fakes or at nothing at all.
package exec

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
)

// DefaultTimeout bounds a single tool invocation. `go doc` may fetch modules
// over the network, so this is more generous than a local-only command needs.
const DefaultTimeout = 60 * time.Second

// boundedContext derives a deadline for one tool run so a hung binary cannot
// block the operation indefinitely.
func boundedContext(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d == 0 {
		d = DefaultTimeout
	}
	return context.WithTimeout(ctx, d)
}

// run executes the command and returns stdout, classifying failures:
// ETOOLMISSING when the binary is not installed, ETIMEOUT on context
// expiry, ENOTFOUND on a non-zero exit (the tool ran but had nothing).
func run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, classifyRunErr(ctx, name, args, err)
	}
	return out, nil
}

func classifyRunErr(ctx context.Context, name string, args []string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return smarty.Errorf(smarty.ETOOLMISSING, "%s is not installed", name)
	}
	if ctx.Err() != nil {
		return smarty.Errorf(smarty.ETIMEOUT, "%s %s: %v", name, strings.Join(args, " "), ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		msg := strings.TrimSpace(string(exitErr.Stderr))
		if msg == "" {
			msg = exitErr.String()
		}
		return smarty.Errorf(smarty.ENOTFOUND, "%s %s: %s", name, strings.Join(args, " "), msg)
	}
	return smarty.Errorf(smarty.ETOOLFAILED, "%s %s: %v", name, strings.Join(args, " "), err)
}
