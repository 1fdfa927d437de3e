package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chiselbuild/chiselc/internal/adapters/fs"
	"github.com/chiselbuild/chiselc/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "alpha")
	writeFile(t, filepath.Join(src, "sub", "b.txt"), "beta")

	c := fs.NewCopier()
	require.NoError(t, c.CopyTree(src, dst))

	a, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "alpha", string(a))

	b, err := os.ReadFile(filepath.Join(dst, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", string(b))
}

func TestCopyTree_MergesIntoExistingDirs(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "sub", "new.txt"), "new")
	writeFile(t, filepath.Join(dst, "sub", "old.txt"), "old")

	c := fs.NewCopier()
	require.NoError(t, c.CopyTree(src, dst))

	for _, name := range []string{"new.txt", "old.txt"} {
		_, err := os.Stat(filepath.Join(dst, "sub", name))
		assert.NoError(t, err)
	}
}

func TestCopyTree_OverwritesExistingFile(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "a.txt"), "fresh")
	writeFile(t, filepath.Join(dst, "a.txt"), "stale")

	c := fs.NewCopier()
	require.NoError(t, c.CopyTree(src, dst))

	a, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(a))
}

func TestCopyTree_DirectoryOverFileCollision(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "conf", "a.txt"), "x")
	writeFile(t, filepath.Join(dst, "conf"), "I am a file")

	c := fs.NewCopier()
	err := c.CopyTree(src, dst)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPathCollision)
}

func TestCopyTree_FileOverDirectoryCollision(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "conf"), "I am a file")
	require.NoError(t, os.MkdirAll(filepath.Join(dst, "conf"), 0o750))

	c := fs.NewCopier()
	err := c.CopyTree(src, dst)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPathCollision)
}
