//go:build unix

package exec_test

import (
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	smarty "github.com/bayne/smarty-mcfly"
	smartyexec "github.com/bayne/smarty-mcfly/exec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeScript creates an executable shell script standing in for an
// external binary.
func writeScript(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fake-tool")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0o755))
	return path
}

func TestManPages_Source(t *testing.T) {
	t.Parallel()

	t.Run("reads plain roff source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "tar.1")
		require.NoError(t, os.WriteFile(src, []byte(".TH TAR 1\ntar rolls archives\n"), 0o644))

		man := &smartyexec.ManPages{Bin: writeScript(t, "echo "+src)}

		content, err := man.Source(context.Background(), "tar")
		require.NoError(t, err)
		assert.Contains(t, string(content), "tar rolls archives")
	})

	t.Run("decompresses gzipped source", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		src := filepath.Join(dir, "tar.1.gz")
		f, err := os.Create(src)
		require.NoError(t, err)
		gz := gzip.NewWriter(f)
		_, err = gz.Write([]byte(".TH TAR 1\ncompressed man source\n"))
		require.NoError(t, err)
		require.NoError(t, gz.Close())
		require.NoError(t, f.Close())

		man := &smartyexec.ManPages{Bin: writeScript(t, "echo "+src)}

		content, err := man.Source(context.Background(), "tar")
		require.NoError(t, err)
		assert.Contains(t, string(content), "compressed man source")
	})

	t.Run("uses first path when man -w lists several", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		first := filepath.Join(dir, "tar.1")
		require.NoError(t, os.WriteFile(first, []byte("first section\n"), 0o644))

		man := &smartyexec.ManPages{Bin: writeScript(t, "printf '%s\\n%s\\n' "+first+" /nonexistent/tar.5")}

		content, err := man.Source(context.Background(), "tar")
		require.NoError(t, err)
		assert.Contains(t, string(content), "first section")
	})

	t.Run("classifies unknown page as not found", func(t *testing.T) {
		t.Parallel()

		man := &smartyexec.ManPages{Bin: writeScript(t, "echo 'No manual entry' >&2; exit 1")}

		_, err := man.Source(context.Background(), "no-such-page")
		require.Error(t, err)
		assert.Equal(t, smarty.ENOTFOUND, smarty.ErrorCode(err))
	})

	t.Run("classifies a hung tool as timeout", func(t *testing.T) {
		t.Parallel()

		man := &smartyexec.ManPages{
			Bin:     writeScript(t, "exec sleep 10"),
			Timeout: 50 * time.Millisecond,
		}

		_, err := man.Source(context.Background(), "tar")
		require.Error(t, err)
		assert.Equal(t, smarty.ETIMEOUT, smarty.ErrorCode(err))
	})
}

func TestGoDocTool_Doc(t *testing.T) {
	t.Parallel()

	t.Run("returns tool output", func(t *testing.T) {
		t.Parallel()

		tool := &smartyexec.GoDocTool{Bin: writeScript(t, "echo 'package http // import \"net/http\"'")}

		out, err := tool.Doc(context.Background(), "net/http")
		require.NoError(t, err)
		assert.Contains(t, string(out), "package http")
	})

	t.Run("classifies unknown package as not found", func(t *testing.T) {
		t.Parallel()

		tool := &smartyexec.GoDocTool{Bin: writeScript(t, "echo 'no required module' >&2; exit 1")}

		_, err := tool.Doc(context.Background(), "example.com/nope")
		require.Error(t, err)
		assert.Equal(t, smarty.ENOTFOUND, smarty.ErrorCode(err))
		assert.Contains(t, smarty.ErrorMessage(err), "no required module")
	})

	t.Run("classifies a hung tool as timeout", func(t *testing.T) {
		t.Parallel()

		tool := &smartyexec.GoDocTool{
			Bin:     writeScript(t, "exec sleep 10"),
			Timeout: 50 * time.Millisecond,
		}

		_, err := tool.Doc(context.Background(), "net/http")
		require.Error(t, err)
		assert.Equal(t, smarty.ETIMEOUT, smarty.ErrorCode(err))
	})
}
