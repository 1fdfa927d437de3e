// Package portage implements the package store over a Portage
// installed-package database, usually /var/db/pkg.
package portage

import (
	"bufio"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/chiselbuild/chiselc/internal/core/domain"
	"github.com/chiselbuild/chiselc/internal/core/ports"
	"go.trai.ch/zerr"
)

// ebuildVarPattern matches simple VAR="value" assignments. Only this form is
// read; anything else in the ebuild is ignored.
var ebuildVarPattern = regexp.MustCompile(`^\s*([A-Za-z_][A-Za-z0-9_]*)\s*=\s*"([^"]*)"\s*$`)

// Ebuild variables with meaning to the resolver.
const (
	varDependencies = "CHISEL_LIBRARY_DEPENDENCIES"
	varScalacOpts   = "SCALACOPTS"
)

// Store implements ports.PackageStore. Each Lookup reads the package's
// metadata from disk exactly once and returns an immutable record.
type Store struct {
	dbDir  string
	jarDir string
}

// NewStore creates a store over the given installed-package database root and
// package jar directory.
func NewStore(dbDir, jarDir string) *Store {
	return &Store{dbDir: dbDir, jarDir: jarDir}
}

// Lookup resolves an identifier against the database. A package directory or
// ebuild file that cannot be found is a fatal configuration error carrying
// the identifier and the expected location.
func (s *Store) Lookup(id domain.PackageID) (*domain.PackageRecord, error) {
	pkgDir := filepath.Join(s.dbDir, id.String())
	info, err := os.Stat(pkgDir)
	if err != nil || !info.IsDir() {
		nerr := zerr.With(domain.ErrPackageNotInstalled, "package", id.String())
		return nil, zerr.With(nerr, "expected_path", pkgDir)
	}

	vars, err := s.readEbuild(id, pkgDir)
	if err != nil {
		return nil, err
	}

	deps, err := s.dependencies(id, pkgDir, vars)
	if err != nil {
		return nil, err
	}

	fields := map[string][]string{
		domain.FieldClasspath:  {filepath.Join(s.jarDir, id.Noncategory()+".jar")},
		domain.FieldScalacOpts: vars[varScalacOpts],
	}

	return domain.NewPackageRecord(id, deps, fields), nil
}

// readEbuild parses VAR="value" assignments from the package's ebuild file.
// Values are split on whitespace. Defining a variable twice is an error.
func (s *Store) readEbuild(id domain.PackageID, pkgDir string) (map[string][]string, error) {
	path := filepath.Join(pkgDir, id.Noncategory()+".ebuild")

	file, err := os.Open(path) //nolint:gosec // path is derived from the configured database root
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			merr := zerr.With(domain.ErrMissingEbuild, "package", id.String())
			return nil, zerr.With(merr, "expected_path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read ebuild"), "path", path)
	}
	defer file.Close() //nolint:errcheck // read-only close

	vars := make(map[string][]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		match := ebuildVarPattern.FindStringSubmatch(scanner.Text())
		if match == nil {
			continue
		}
		name := match[1]
		if _, exists := vars[name]; exists {
			derr := zerr.With(domain.ErrDuplicateVariable, "package", id.String())
			return nil, zerr.With(derr, "variable", name)
		}
		vars[name] = strings.Fields(match[2])
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read ebuild"), "path", path)
	}

	return vars, nil
}

// dependencies reads the package's direct dependencies: the ebuild's
// CHISEL_LIBRARY_DEPENDENCIES variable when present, else the DEPEND file.
// Both use the exact-version DEPEND syntax.
func (s *Store) dependencies(id domain.PackageID, pkgDir string, vars map[string][]string) ([]domain.PackageID, error) {
	if words, ok := vars[varDependencies]; ok {
		deps, err := domain.ParseDepends(strings.Join(words, " "))
		if err != nil {
			return nil, zerr.With(err, "package", id.String())
		}
		return deps, nil
	}

	path := filepath.Join(pkgDir, "DEPEND")
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the configured database root
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read DEPEND file"), "path", path)
	}

	deps, err := domain.ParseDepends(string(data))
	if err != nil {
		return nil, zerr.With(err, "package", id.String())
	}
	return deps, nil
}

// Factory implements ports.PackageStoreFactory.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Open returns a store over the given directories.
func (f *Factory) Open(dbDir, jarDir string) ports.PackageStore {
	return NewStore(dbDir, jarDir)
}
