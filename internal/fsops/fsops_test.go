package fsops_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/petasbytes/sous-chef/internal/fsops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFile_HappyPath(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a.json")
	want := `{"a":1}`
	require.NoError(t, os.WriteFile(p, []byte(want), 0o644))

	got, err := fsops.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, want, string(got))
}

func TestReadFile_MissingIsNotExist(t *testing.T) {
	_, err := fsops.ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadFile_DirectoryIsNotAFile(t *testing.T) {
	_, err := fsops.ReadFile(t.TempDir())
	assert.Error(t, err)
}

func TestWriteFileAtomic_CreatesNestedAndReplaces(t *testing.T) {
	p := filepath.Join(t.TempDir(), "x", "y", "out.ics")

	require.NoError(t, fsops.WriteFileAtomic(p, []byte("first"), 0o644))
	require.NoError(t, fsops.WriteFileAtomic(p, []byte("second"), 0o644))

	b, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "second", string(b))

	// no temp files left behind
	entries, err := os.ReadDir(filepath.Dir(p))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFileAtomic_ParentIsFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := fsops.WriteFileAtomic(filepath.Join(blocker, "out.json"), []byte("{}"), 0o644)
	assert.Error(t, err, "expected error when parent is a regular file")
}
