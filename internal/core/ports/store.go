// Package ports defines the core interfaces for the application.
package ports

import "github.com/chiselbuild/chiselc/internal/core/domain"

// PackageStore resolves package identifiers against an installed-package
// metadata source.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type PackageStore interface {
	// Lookup resolves an identifier to its package record, reading all of the
	// record's metadata exactly once. A package that cannot be found is a
	// fatal configuration error, never a recoverable miss.
	Lookup(id domain.PackageID) (*domain.PackageRecord, error)
}

// PackageStoreFactory opens a PackageStore over an on-disk package database.
type PackageStoreFactory interface {
	// Open returns a store backed by the given installed-package database
	// root and package jar directory.
	Open(dbDir, jarDir string) PackageStore
}
