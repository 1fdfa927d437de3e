package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/chiselbuild/chiselc/internal/adapters/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chiselc.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: "1"
sources:
  - src/main/scala
buildDir: build
resources:
  - src/main/resources
depends: "=dev-chisel/firrtl-1.0"
pkgDbDir: /var/db/pkg
pkgJarDir: /usr/share/java
classpath:
  - lib/extra.jar
scalacOpts:
  - deprecation
outputJar: out/app.jar
linkJars: false
entryPoint: Main
`), 0o644))

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"src/main/scala"}, cfg.SourceDirs)
	assert.Equal(t, "build", cfg.BuildDir)
	assert.Equal(t, []string{"src/main/resources"}, cfg.ResourceDirs)
	assert.Equal(t, "=dev-chisel/firrtl-1.0", cfg.Depends)
	assert.Equal(t, "/var/db/pkg", cfg.PkgDBDir)
	assert.Equal(t, "/usr/share/java", cfg.PkgJarDir)
	assert.Equal(t, []string{"lib/extra.jar"}, cfg.Classpath)
	assert.Equal(t, []string{"deprecation"}, cfg.ScalacOpts)
	assert.Equal(t, "out/app.jar", cfg.OutputJar)
	assert.False(t, cfg.LinkJars)
	assert.Equal(t, "Main", cfg.EntryPoint)
}

func TestLoad_MissingFile(t *testing.T) {
	cfg, err := config.NewLoader().Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_LinkJarsDefaultsOn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chiselc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("buildDir: build\n"), 0o644))

	cfg, err := config.NewLoader().Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.True(t, cfg.LinkJars)
}

func TestLoad_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chiselc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sources: {not: [a, list"), 0o644))

	_, err := config.NewLoader().Load(path)
	assert.Error(t, err)
}
