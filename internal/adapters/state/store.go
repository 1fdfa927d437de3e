// Package state persists per-target build fingerprints in a flat JSON file
// inside the build directory.
package state

import (
	"encoding/json"
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Store implements ports.BuildStateStore. Every call re-reads the state file;
// nothing is cached in memory across calls, so a cleared build directory
// naturally resets the state.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get returns the recorded fingerprint for target, if any.
func (s *Store) Get(path, target string) (string, bool, error) {
	entries, err := s.read(path)
	if err != nil {
		return "", false, err
	}
	fp, ok := entries[target]
	return fp, ok, nil
}

// Put records the fingerprint for target.
func (s *Store) Put(path, target, fingerprint string) error {
	entries, err := s.read(path)
	if err != nil {
		return err
	}
	entries[target] = fingerprint

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal build state")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.Wrap(err, "failed to create build state directory")
	}

	//nolint:gosec // path lives inside the build directory
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write build state")
	}
	return nil
}

func (s *Store) read(path string) (map[string]string, error) {
	entries := make(map[string]string)

	//nolint:gosec // path lives inside the build directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return entries, nil
		}
		return nil, zerr.Wrap(err, "failed to read build state")
	}
	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.Wrap(err, "failed to unmarshal build state")
	}
	return entries, nil
}
