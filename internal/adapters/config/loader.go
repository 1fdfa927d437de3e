// Package config provides the chiselc.yaml build-file loader.
package config

import (
	"errors"
	iofs "io/fs"
	"os"

	"github.com/chiselbuild/chiselc/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct{}

// NewLoader creates a new FileConfigLoader.
func NewLoader() *FileConfigLoader {
	return &FileConfigLoader{}
}

// buildfile is the on-disk schema of chiselc.yaml.
type buildfile struct {
	Version    string   `yaml:"version"`
	Sources    []string `yaml:"sources"`
	BuildDir   string   `yaml:"buildDir"`
	Resources  []string `yaml:"resources"`
	Depends    string   `yaml:"depends"`
	PkgDBDir   string   `yaml:"pkgDbDir"`
	PkgJarDir  string   `yaml:"pkgJarDir"`
	Classpath  []string `yaml:"classpath"`
	ScalacOpts []string `yaml:"scalacOpts"`
	OutputJar  string   `yaml:"outputJar"`
	LinkJars   *bool    `yaml:"linkJars"`
	EntryPoint string   `yaml:"entryPoint"`
}

// Load reads the build file at path. A missing file returns (nil, nil) so the
// tool also works flag-only.
func (l *FileConfigLoader) Load(path string) (*domain.BuildConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read build file"), "path", path)
	}

	var bf buildfile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse build file"), "path", path)
	}

	cfg := domain.DefaultBuildConfig()
	cfg.SourceDirs = bf.Sources
	cfg.BuildDir = bf.BuildDir
	cfg.ResourceDirs = bf.Resources
	cfg.Depends = bf.Depends
	cfg.PkgDBDir = bf.PkgDBDir
	cfg.PkgJarDir = bf.PkgJarDir
	cfg.Classpath = bf.Classpath
	cfg.ScalacOpts = bf.ScalacOpts
	cfg.OutputJar = bf.OutputJar
	if bf.LinkJars != nil {
		cfg.LinkJars = *bf.LinkJars
	}
	cfg.EntryPoint = bf.EntryPoint

	return &cfg, nil
}
