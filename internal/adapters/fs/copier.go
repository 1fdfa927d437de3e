package fs

import (
	"io"
	"os"
	"path/filepath"

	"github.com/chiselbuild/chiselc/internal/core/domain"
	"go.trai.ch/zerr"
)

// Copier implements ports.TreeCopier.
type Copier struct{}

// NewCopier creates a new Copier.
func NewCopier() *Copier {
	return &Copier{}
}

// CopyTree copies the contents of src into the existing directory dst,
// preserving relative structure. Directories are merged; a file landing on a
// directory (or the reverse) is an error.
func (c *Copier) CopyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read resource directory"), "dir", src)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := c.copyDir(srcPath, dstPath); err != nil {
				return err
			}
		} else {
			if err := c.copyFile(srcPath, dstPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func (c *Copier) copyDir(src, dst string) error {
	if info, err := os.Stat(dst); err == nil && !info.IsDir() {
		err := zerr.With(domain.ErrPathCollision, "path", dst)
		return zerr.With(err, "kind", "directory over file")
	}
	if err := os.MkdirAll(dst, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create directory"), "path", dst)
	}
	return c.CopyTree(src, dst)
}

func (c *Copier) copyFile(src, dst string) error {
	if info, err := os.Stat(dst); err == nil && info.IsDir() {
		err := zerr.With(domain.ErrPathCollision, "path", dst)
		return zerr.With(err, "kind", "file over directory")
	}

	in, err := os.Open(src) //nolint:gosec // paths come from configured resource dirs
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open resource file"), "path", src)
	}
	defer in.Close() //nolint:errcheck // read-only close

	info, err := in.Stat()
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat resource file"), "path", src)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm()) //nolint:gosec // destination is inside the build dir
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create staged file"), "path", dst)
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return zerr.With(zerr.Wrap(err, "failed to copy resource file"), "path", dst)
	}
	if err := out.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to finalize staged file"), "path", dst)
	}
	return nil
}
