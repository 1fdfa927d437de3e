package domain

// BuildConfig collects every input of one build invocation, whether it came
// from command-line flags or from a chiselc.yaml build file.
type BuildConfig struct {
	// SourceDirs are scanned recursively for SourceExt files.
	SourceDirs []string

	// BuildDir is the working directory for build output. Created if missing.
	BuildDir string

	// ResourceDirs are copied recursively into BuildDir before compiling.
	ResourceDirs []string

	// Depends is a Portage DEPEND-style list of exact-version dependencies.
	Depends string

	// PkgDBDir is the root of the Portage installed-package database.
	PkgDBDir string

	// PkgJarDir is the directory holding installed package jars.
	PkgJarDir string

	// Classpath lists caller-supplied jars. An entry sharing a base filename
	// with a package-derived jar replaces it.
	Classpath []string

	// ScalacOpts are extra compiler options, appended after the options
	// aggregated from dependencies. The flag marker is added later.
	ScalacOpts []string

	// OutputJar is the path of the output archive. Empty means compile only.
	OutputJar string

	// LinkJars extracts dependency jar contents into BuildDir so they end up
	// inside the output archive. Only effective when OutputJar is set.
	LinkJars bool

	// EntryPoint is the Main-Class recorded in the output archive.
	EntryPoint string

	// Force runs the pipeline even when the recorded fingerprint is current.
	Force bool
}

// DefaultBuildConfig returns a config with the documented defaults applied.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{LinkJars: true}
}

// BuildPlan is the fully assembled input to the build pipeline: all metadata
// aggregation and classpath merging has already happened.
type BuildPlan struct {
	SourceDirs   []string
	BuildDir     string
	ResourceDirs []string

	// Classpath entries in final precedence order.
	Classpath []string

	// ScalacOpts already carry the compiler's flag marker.
	ScalacOpts []string

	OutputJar  string
	LinkJars   bool
	EntryPoint string
}
