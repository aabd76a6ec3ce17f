package smarty_test

import (
	"fmt"
	"testing"

	smarty "github.com/bayne/smarty-mcfly"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := smarty.Errorf(smarty.ENOTFOUND, "man page %q not found", "tar")

	assert.Equal(t, smarty.ENOTFOUND, smarty.ErrorCode(err))
	assert.Equal(t, "man page \"tar\" not found", smarty.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, smarty.ErrorCode(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetch: %w", smarty.Errorf(smarty.ETIMEOUT, "timed out"))

	assert.Equal(t, smarty.ETIMEOUT, smarty.ErrorCode(err))
	assert.Equal(t, "timed out", smarty.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, smarty.ErrorMessage(nil))
}
