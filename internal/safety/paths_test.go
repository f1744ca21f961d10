package safety_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/petasbytes/sous-chef/internal/safety"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRelPath_BasicRejections(t *testing.T) {
	root := t.TempDir()

	abs, err := filepath.Abs(".")
	if err != nil {
		t.Skipf("cannot compute absolute path: %v", err)
	}
	_, err = safety.ValidateRelPath(root, abs)
	assert.Error(t, err, "absolute path")

	_, err = safety.ValidateRelPath(root, "../../x")
	assert.Error(t, err, "parent traversal")
}

func TestValidateRelPath_AllowsNestedNewFile(t *testing.T) {
	root, err := safety.ResolveRoot(t.TempDir())
	require.NoError(t, err)

	got, err := safety.ValidateRelPath(root, "a/b.ics")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "a", "b.ics"), got)
}

func TestValidateRelPath_SymlinkEscape(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlink test skipped on Windows")
	}
	root := t.TempDir()
	outside := t.TempDir()

	if err := os.Symlink(outside, filepath.Join(root, "out")); err != nil {
		t.Skipf("symlink not allowed on this FS: %v", err)
	}

	_, err := safety.ValidateRelPath(root, "out/escape.ics")
	assert.Error(t, err, "symlink escape must be rejected")
}

func TestValidateFileName_RejectsSeparators(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"", ".", "..", "../x.ics", "a/b.ics", `a\b.ics`} {
		_, err := safety.ValidateFileName(root, name)
		require.Error(t, err, name)

		var pe safety.PathError
		require.ErrorAs(t, err, &pe, name)
		assert.Equal(t, "ERR_INVALID_FILE_NAME", pe.Code, name)
	}
}

func TestValidateFileName_AllowsPlainName(t *testing.T) {
	root, err := safety.ResolveRoot(t.TempDir())
	require.NoError(t, err)

	got, err := safety.ValidateFileName(root, "cli_user_meal_plan.ics")
	require.NoError(t, err)
	assert.Equal(t, root, filepath.Dir(got))
}

func TestResolveRoot_EmptyRejected(t *testing.T) {
	_, err := safety.ResolveRoot("")
	assert.Error(t, err)
}
