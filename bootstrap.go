package smarty

import "context"

// Bootstrapper seeds a project's smarts directory from the shared
// documentation repository.
type Bootstrapper interface {
	// Ensure creates <projectRoot>/.smarts from the seed repository if it
	// does not exist yet. Returns the directory path and whether it was
	// created by this call.
	Ensure(ctx context.Context, projectRoot string) (path string, created bool, err error)
}
