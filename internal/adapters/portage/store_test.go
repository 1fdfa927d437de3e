package portage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chiselbuild/chiselc/internal/adapters/portage"
	"github.com/chiselbuild/chiselc/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// installPackage lays out a package directory the way Portage does:
// <dbDir>/<category>/<name-version>/<name-version>.ebuild.
func installPackage(t *testing.T, dbDir string, id domain.PackageID, ebuild string) string {
	t.Helper()
	pkgDir := filepath.Join(dbDir, id.String())
	require.NoError(t, os.MkdirAll(pkgDir, 0o750))
	if ebuild != "" {
		path := filepath.Join(pkgDir, id.Noncategory()+".ebuild")
		require.NoError(t, os.WriteFile(path, []byte(ebuild), 0o644))
	}
	return pkgDir
}

func TestLookup(t *testing.T) {
	dbDir := t.TempDir()
	jarDir := t.TempDir()
	installPackage(t, dbDir, "dev-chisel/rocket-1.2", `EAPI=8
DESCRIPTION="A library"
SCALACOPTS="deprecation feature"
CHISEL_LIBRARY_DEPENDENCIES="=dev-chisel/firrtl-1.0 =dev-chisel/treadle-2.0"
`)

	store := portage.NewStore(dbDir, jarDir)
	record, err := store.Lookup("dev-chisel/rocket-1.2")
	require.NoError(t, err)

	assert.Equal(t, domain.PackageID("dev-chisel/rocket-1.2"), record.ID())
	assert.Equal(t,
		[]domain.PackageID{"dev-chisel/firrtl-1.0", "dev-chisel/treadle-2.0"},
		record.Dependencies())

	cp, err := record.Field(domain.FieldClasspath)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(jarDir, "rocket-1.2.jar")}, cp)

	opts, err := record.Field(domain.FieldScalacOpts)
	require.NoError(t, err)
	assert.Equal(t, []string{"deprecation", "feature"}, opts)
}

func TestLookup_DependFileFallback(t *testing.T) {
	dbDir := t.TempDir()
	pkgDir := installPackage(t, dbDir, "dev-chisel/rocket-1.2", `SCALACOPTS="deprecation"
`)
	require.NoError(t, os.WriteFile(filepath.Join(pkgDir, "DEPEND"), []byte("=dev-chisel/firrtl-1.0\n"), 0o644))

	store := portage.NewStore(dbDir, t.TempDir())
	record, err := store.Lookup("dev-chisel/rocket-1.2")
	require.NoError(t, err)
	assert.Equal(t, []domain.PackageID{"dev-chisel/firrtl-1.0"}, record.Dependencies())
}

func TestLookup_NoDependencies(t *testing.T) {
	dbDir := t.TempDir()
	installPackage(t, dbDir, "dev-chisel/leaf-1.0", `DESCRIPTION="no deps"
`)

	store := portage.NewStore(dbDir, t.TempDir())
	record, err := store.Lookup("dev-chisel/leaf-1.0")
	require.NoError(t, err)
	assert.Empty(t, record.Dependencies())

	opts, err := record.Field(domain.FieldScalacOpts)
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestLookup_PackageNotInstalled(t *testing.T) {
	store := portage.NewStore(t.TempDir(), t.TempDir())
	_, err := store.Lookup("dev-chisel/ghost-1.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPackageNotInstalled)
}

func TestLookup_MissingEbuild(t *testing.T) {
	dbDir := t.TempDir()
	installPackage(t, dbDir, "dev-chisel/broken-1.0", "")

	store := portage.NewStore(dbDir, t.TempDir())
	_, err := store.Lookup("dev-chisel/broken-1.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMissingEbuild)
}

func TestLookup_DuplicateVariable(t *testing.T) {
	dbDir := t.TempDir()
	installPackage(t, dbDir, "dev-chisel/dup-1.0", `SCALACOPTS="deprecation"
SCALACOPTS="feature"
`)

	store := portage.NewStore(dbDir, t.TempDir())
	_, err := store.Lookup("dev-chisel/dup-1.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateVariable)
}

func TestLookup_UnversionedDependency(t *testing.T) {
	dbDir := t.TempDir()
	installPackage(t, dbDir, "dev-chisel/loose-1.0", `CHISEL_LIBRARY_DEPENDENCIES="dev-chisel/firrtl"
`)

	store := portage.NewStore(dbDir, t.TempDir())
	_, err := store.Lookup("dev-chisel/loose-1.0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnversionedDependency)
}

func TestLookup_IgnoresNonAssignmentLines(t *testing.T) {
	dbDir := t.TempDir()
	installPackage(t, dbDir, "dev-chisel/messy-1.0", `# comment
inherit scala-lib
SCALACOPTS="unchecked"
src_compile() {
	echo "not a variable"
}
`)

	store := portage.NewStore(dbDir, t.TempDir())
	record, err := store.Lookup("dev-chisel/messy-1.0")
	require.NoError(t, err)

	opts, err := record.Field(domain.FieldScalacOpts)
	require.NoError(t, err)
	assert.Equal(t, []string{"unchecked"}, opts)
}

func TestFactory_Open(t *testing.T) {
	dbDir := t.TempDir()
	installPackage(t, dbDir, "dev-chisel/leaf-1.0", `DESCRIPTION="x"
`)

	store := portage.NewFactory().Open(dbDir, t.TempDir())
	_, err := store.Lookup("dev-chisel/leaf-1.0")
	assert.NoError(t, err)
}
