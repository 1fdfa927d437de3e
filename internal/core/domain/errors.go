package domain

import "go.trai.ch/zerr"

var (
	// ErrUnversionedDependency is returned when a dependency reference lacks
	// the '=' exact-version marker.
	ErrUnversionedDependency = zerr.New("dependency must be pinned to an exact version")

	// ErrUnknownField is returned when an unrecognized metadata field is requested.
	ErrUnknownField = zerr.New("unknown package field")

	// ErrPackageNotInstalled is returned when a package identifier has no
	// record in the installed-package database.
	ErrPackageNotInstalled = zerr.New("package is not installed")

	// ErrMissingEbuild is returned when an installed package lacks its ebuild file.
	ErrMissingEbuild = zerr.New("package is missing its ebuild file")

	// ErrDuplicateVariable is returned when an ebuild defines the same variable twice.
	ErrDuplicateVariable = zerr.New("ebuild variable defined twice")

	// ErrNoSourceDirs is returned when a build is requested without source directories.
	ErrNoSourceDirs = zerr.New("no source directories specified")

	// ErrNoBuildDir is returned when a build is requested without a build directory.
	ErrNoBuildDir = zerr.New("no build directory specified")

	// ErrMissingPackageDirs is returned when dependencies are declared but the
	// package database or jar directory is not configured.
	ErrMissingPackageDirs = zerr.New("package dependencies require both the package database and jar directories")

	// ErrPathCollision is returned when staging a resource would copy a file
	// over a directory or a directory over a file.
	ErrPathCollision = zerr.New("resource path collides with an existing path of a different kind")
)
