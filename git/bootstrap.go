// Package git seeds a project's .smarts directory by shallow-cloning the
// shared documentation repository.
package git

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	smarty "github.com/bayne/smarty-mcfly"
	"github.com/bayne/smarty-mcfly/fs"
)

// DefaultRepoURL is the repository holding the seed smarts directory.
const DefaultRepoURL = "git@github.com:bayne/smarty-mcfly.git"

// seedDirName is the directory inside the repository that gets copied to
// the project's .smarts.
const seedDirName = "smarts"

// Ensure Bootstrap implements smarty.Bootstrapper at compile time.
var _ smarty.Bootstrapper = (*Bootstrap)(nil)

// Bootstrap clones the seed documentation into a project. Safe to run
// repeatedly: an existing .smarts directory is left untouched.
type Bootstrap struct {
	// RepoURL overrides the repository to clone. Defaults to DefaultRepoURL.
	RepoURL string

	// Bin is the git binary name. Defaults to "git" when empty.
	Bin string
}

// Ensure creates <projectRoot>/.smarts from the seed repository if absent.
func (b *Bootstrap) Ensure(ctx context.Context, projectRoot string) (string, bool, error) {
	root, err := filepath.Abs(projectRoot)
	if err != nil {
		return "", false, smarty.Errorf(smarty.EIO, "resolving project root %q: %v", projectRoot, err)
	}

	target := filepath.Join(root, fs.SmartsDirName)
	if _, err := os.Stat(target); err == nil {
		return target, false, nil
	}

	tmpDir, err := os.MkdirTemp("", "smarty-clone-*")
	if err != nil {
		return "", false, smarty.Errorf(smarty.EIO, "creating temp directory: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := b.clone(ctx, tmpDir); err != nil {
		return "", false, err
	}

	seed := filepath.Join(tmpDir, seedDirName)
	if _, err := os.Stat(seed); err != nil {
		return "", false, smarty.Errorf(smarty.ENOTFOUND, "repository does not contain a %q directory", seedDirName)
	}

	if err := os.CopyFS(target, os.DirFS(seed)); err != nil {
		return "", false, smarty.Errorf(smarty.EIO, "copying seed documentation: %v", err)
	}

	return target, true, nil
}

func (b *Bootstrap) clone(ctx context.Context, dir string) error {
	bin := b.Bin
	if bin == "" {
		bin = "git"
	}
	repo := b.RepoURL
	if repo == "" {
		repo = DefaultRepoURL
	}

	cmd := exec.CommandContext(ctx, bin, "clone", "--depth=1", repo, dir)
	var stderr strings.Builder
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return smarty.Errorf(smarty.ETOOLMISSING, "git is not installed")
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return smarty.Errorf(smarty.ETOOLFAILED, "cloning %s: %s", repo, msg)
	}
	return nil
}
