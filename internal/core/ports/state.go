package ports

// BuildStateStore persists the fingerprint of the last successful build per
// target. It is the only state carried across invocations; package metadata
// is always re-read fresh.
type BuildStateStore interface {
	// Get returns the recorded fingerprint for target from the state file at
	// path. ok is false when the file or the target entry does not exist.
	Get(path, target string) (fingerprint string, ok bool, err error)

	// Put records the fingerprint for target in the state file at path.
	Put(path, target, fingerprint string) error
}
