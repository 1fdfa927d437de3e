// Package app implements the application layer: it turns a build
// configuration into a resolved, merged build plan and drives the pipeline.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/chiselbuild/chiselc/internal/core/domain"
	"github.com/chiselbuild/chiselc/internal/core/ports"
	"github.com/chiselbuild/chiselc/internal/engine/classpath"
	"github.com/chiselbuild/chiselc/internal/engine/pipeline"
	"github.com/chiselbuild/chiselc/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// stateFilename is the per-build-directory state file recording the last
// successful input fingerprint.
const stateFilename = ".chiselc-state.json"

// App represents the main application logic.
type App struct {
	loader        ports.ConfigLoader
	stores        ports.PackageStoreFactory
	resolver      *resolver.Resolver
	merger        *classpath.Merger
	pipeline      *pipeline.Pipeline
	walker        ports.SourceWalker
	fingerprinter ports.Fingerprinter
	state         ports.BuildStateStore
	logger        ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	stores ports.PackageStoreFactory,
	res *resolver.Resolver,
	merger *classpath.Merger,
	pipe *pipeline.Pipeline,
	walker ports.SourceWalker,
	fingerprinter ports.Fingerprinter,
	state ports.BuildStateStore,
	logger ports.Logger,
) *App {
	return &App{
		loader:        loader,
		stores:        stores,
		resolver:      res,
		merger:        merger,
		pipeline:      pipe,
		walker:        walker,
		fingerprinter: fingerprinter,
		state:         state,
		logger:        logger,
	}
}

// LoadConfig returns the build file at path merged over the defaults. A
// missing file yields plain defaults so flag-only invocations work.
func (a *App) LoadConfig(path string) (domain.BuildConfig, error) {
	cfg := domain.DefaultBuildConfig()
	loaded, err := a.loader.Load(path)
	if err != nil {
		return cfg, zerr.Wrap(err, "failed to load build file")
	}
	if loaded != nil {
		cfg = *loaded
	}
	return cfg, nil
}

// Build validates the configuration, aggregates dependency metadata, merges
// classpath overrides and runs the pipeline. When the recorded fingerprint
// for this target is current and Force is off, the pipeline is skipped.
func (a *App) Build(ctx context.Context, cfg domain.BuildConfig) error {
	if len(cfg.SourceDirs) == 0 {
		return domain.ErrNoSourceDirs
	}
	if cfg.BuildDir == "" {
		return domain.ErrNoBuildDir
	}

	seeds, err := domain.ParseDepends(cfg.Depends)
	if err != nil {
		return err
	}

	var pkgClasspath, pkgOpts []string
	if len(seeds) > 0 {
		if cfg.PkgDBDir == "" || cfg.PkgJarDir == "" {
			return domain.ErrMissingPackageDirs
		}
		a.logger.Debug(fmt.Sprintf("resolving %d immediate dependencies", len(seeds)))

		store := a.stores.Open(cfg.PkgDBDir, cfg.PkgJarDir)
		pkgClasspath, err = a.resolver.ResolveField(seeds, domain.FieldClasspath, store)
		if err != nil {
			return err
		}
		pkgOpts, err = a.resolver.ResolveField(seeds, domain.FieldScalacOpts, store)
		if err != nil {
			return err
		}
	}

	merged, err := a.merger.Merge(pkgClasspath, cfg.Classpath)
	if err != nil {
		return err
	}

	opts := make([]string, 0, len(pkgOpts)+len(cfg.ScalacOpts))
	opts = append(opts, pkgOpts...)
	opts = append(opts, cfg.ScalacOpts...)

	plan := domain.BuildPlan{
		SourceDirs:   cfg.SourceDirs,
		BuildDir:     cfg.BuildDir,
		ResourceDirs: cfg.ResourceDirs,
		Classpath:    merged,
		ScalacOpts:   domain.PrefixFlags(opts),
		OutputJar:    cfg.OutputJar,
		LinkJars:     cfg.LinkJars,
		EntryPoint:   cfg.EntryPoint,
	}

	fingerprint, err := a.fingerprint(plan)
	if err != nil {
		return err
	}

	statePath := filepath.Join(cfg.BuildDir, stateFilename)
	target := plan.OutputJar
	if target == "" {
		target = "compile"
	}

	if !cfg.Force {
		prev, ok, err := a.state.Get(statePath, target)
		if err != nil {
			return err
		}
		if ok && prev == fingerprint {
			a.logger.Info("build is up to date, skipping")
			return nil
		}
	}

	if err := a.pipeline.Run(ctx, plan); err != nil {
		return err
	}

	if err := a.state.Put(statePath, target, fingerprint); err != nil {
		return err
	}
	a.logger.Info("build finished")
	return nil
}

// fingerprint condenses the plan's inputs: source and resource file contents
// plus every literal that changes the compiler or archiver invocation.
func (a *App) fingerprint(plan domain.BuildPlan) (string, error) {
	files, err := a.walker.FindSources(plan.SourceDirs, domain.SourceExt)
	if err != nil {
		return "", err
	}
	for _, dir := range plan.ResourceDirs {
		rels, err := a.walker.ListFiles(dir)
		if err != nil {
			return "", err
		}
		for _, rel := range rels {
			files = append(files, filepath.Join(dir, rel))
		}
	}

	words := make([]string, 0, len(plan.ScalacOpts)+len(plan.Classpath)+3)
	words = append(words, plan.ScalacOpts...)
	words = append(words, plan.Classpath...)
	words = append(words, plan.OutputJar, plan.EntryPoint, strconv.FormatBool(plan.LinkJars))

	return a.fingerprinter.Fingerprint(files, words)
}
