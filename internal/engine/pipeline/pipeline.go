// Package pipeline drives the sequential build stages: working-directory
// setup, dependency extraction, resource staging, compilation and archive
// packaging.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chiselbuild/chiselc/internal/core/domain"
	"github.com/chiselbuild/chiselc/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	compilerCmd = "scalac"
	archiverCmd = "jar"

	// Classpath entries are colon-joined for the compiler.
	classpathSeparator = ":"
)

// Pipeline executes a BuildPlan stage by stage. Every stage blocks until its
// external process exits; the first failure aborts the run with no rollback
// of side effects already applied to the build directory.
type Pipeline struct {
	runner ports.ProcessRunner
	walker ports.SourceWalker
	copier ports.TreeCopier
	logger ports.Logger
}

// New creates a new Pipeline.
func New(runner ports.ProcessRunner, walker ports.SourceWalker, copier ports.TreeCopier, logger ports.Logger) *Pipeline {
	return &Pipeline{
		runner: runner,
		walker: walker,
		copier: copier,
		logger: logger,
	}
}

// Run executes the plan. Stages run in strict order: the build directory is
// created, dependency jars are extracted into it when archive linking is on,
// resources are staged, sources are enumerated and compiled, and the output
// archive is packaged when requested.
func (p *Pipeline) Run(ctx context.Context, plan domain.BuildPlan) error {
	if err := os.MkdirAll(plan.BuildDir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create build directory"), "build_dir", plan.BuildDir)
	}

	if plan.LinkJars && plan.OutputJar != "" {
		if err := p.extractDependencies(ctx, plan); err != nil {
			return err
		}
	}

	if err := p.stageResources(plan); err != nil {
		return err
	}

	if err := p.compile(ctx, plan); err != nil {
		return err
	}

	if plan.OutputJar != "" {
		if err := p.packageArchive(ctx, plan); err != nil {
			return err
		}
	}

	return nil
}

// extractDependencies unpacks every classpath jar into the build directory so
// its contents end up inside the output archive.
func (p *Pipeline) extractDependencies(ctx context.Context, plan domain.BuildPlan) error {
	for _, jar := range plan.Classpath {
		p.logger.Info(fmt.Sprintf("extracting dependency %s", jar))
		if err := p.runner.Run(ctx, plan.BuildDir, archiverCmd, "xf", jar); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to extract dependency archive"), "archive", jar)
		}
	}
	return nil
}

func (p *Pipeline) stageResources(plan domain.BuildPlan) error {
	for _, dir := range plan.ResourceDirs {
		p.logger.Info(fmt.Sprintf("copying resources from %s", dir))
		if err := p.copier.CopyTree(dir, plan.BuildDir); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to stage resources"), "resource_dir", dir)
		}
	}
	return nil
}

func (p *Pipeline) compile(ctx context.Context, plan domain.BuildPlan) error {
	sources, err := p.walker.FindSources(plan.SourceDirs, domain.SourceExt)
	if err != nil {
		return zerr.Wrap(err, "failed to enumerate sources")
	}
	p.logger.Info(fmt.Sprintf("found %d source files", len(sources)))

	absBuildDir, err := filepath.Abs(plan.BuildDir)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve build directory")
	}

	args := make([]string, 0, len(sources)+len(plan.ScalacOpts)+4)
	args = append(args, sources...)
	args = append(args, "-d", absBuildDir)
	args = append(args, plan.ScalacOpts...)

	if len(plan.Classpath) > 0 {
		// Missing entries are reported but the compiler is still attempted;
		// its own exit code is the abort trigger.
		for _, entry := range plan.Classpath {
			if _, err := os.Stat(entry); err != nil {
				p.logger.Error(zerr.With(zerr.New("required classpath entry does not exist"), "path", entry))
			}
		}
		args = append(args, "-classpath", strings.Join(plan.Classpath, classpathSeparator))
	}

	p.logger.Info("running scalac")
	if err := p.runner.Run(ctx, "", compilerCmd, args...); err != nil {
		return zerr.Wrap(err, "compilation failed")
	}
	p.logger.Debug("scalac done")
	return nil
}

// packageArchive jars every file under the build directory, resources and
// extracted dependencies included, into the requested output archive.
func (p *Pipeline) packageArchive(ctx context.Context, plan domain.BuildPlan) error {
	files, err := p.walker.ListFiles(plan.BuildDir)
	if err != nil {
		return zerr.Wrap(err, "failed to enumerate build output")
	}
	p.logger.Info(fmt.Sprintf("packaging %d files into %s", len(files), plan.OutputJar))

	absJar, err := filepath.Abs(plan.OutputJar)
	if err != nil {
		return zerr.Wrap(err, "failed to resolve output archive path")
	}

	args := make([]string, 0, len(files)+3)
	if plan.EntryPoint != "" {
		args = append(args, "cfe", absJar, plan.EntryPoint)
	} else {
		args = append(args, "cf", absJar)
	}
	args = append(args, files...)

	p.logger.Info("running jar")
	if err := p.runner.Run(ctx, plan.BuildDir, archiverCmd, args...); err != nil {
		return zerr.With(zerr.Wrap(err, "archive packaging failed"), "output_jar", plan.OutputJar)
	}
	p.logger.Debug("jar done")
	return nil
}
