package mock

import (
	"context"

	smarty "github.com/bayne/smarty-mcfly"
)

var _ smarty.Bootstrapper = (*Bootstrapper)(nil)

// Bootstrapper is a mock implementation of smarty.Bootstrapper.
type Bootstrapper struct {
	EnsureFn func(ctx context.Context, projectRoot string) (string, bool, error)
}

func (b *Bootstrapper) Ensure(ctx context.Context, projectRoot string) (string, bool, error) {
	return b.EnsureFn(ctx, projectRoot)
}
