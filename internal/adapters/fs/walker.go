// Package fs provides file system adapters for walking, copying and
// fingerprinting files.
package fs

import (
	iofs "io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// Walker implements ports.SourceWalker on filepath.WalkDir, which visits
// entries in lexical order.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// FindSources collects every file under roots whose name ends in ext. Roots
// are scanned in argument order; files within a root in lexical walk order.
func (w *Walker) FindSources(roots []string, ext string) ([]string, error) {
	var sources []string
	for _, root := range roots {
		err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if strings.HasSuffix(d.Name(), ext) {
				sources = append(sources, path)
			}
			return nil
		})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to scan source directory"), "source_dir", root)
		}
	}
	return sources, nil
}

// ListFiles collects every file under root as a root-relative path, in
// lexical walk order.
func (w *Walker) ListFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list directory"), "dir", root)
	}
	return files, nil
}
