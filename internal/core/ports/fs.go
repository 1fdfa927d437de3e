package ports

// SourceWalker enumerates files on disk for the pipeline.
type SourceWalker interface {
	// FindSources recursively collects every file under the given roots whose
	// name ends in ext. Order is deterministic: roots in argument order, files
	// in lexical walk order within each root.
	FindSources(roots []string, ext string) ([]string, error)

	// ListFiles recursively collects every file under root as a path relative
	// to root, in lexical walk order.
	ListFiles(root string) ([]string, error)
}

// TreeCopier stages a directory's contents into another directory.
type TreeCopier interface {
	// CopyTree copies the contents of src into the existing directory dst,
	// preserving relative structure. Copying a file over a directory, or a
	// directory over a file, is an error.
	CopyTree(src, dst string) error
}

// Fingerprinter condenses a build's inputs into a fingerprint string used for
// the up-to-date check.
type Fingerprinter interface {
	// Fingerprint hashes the content of each file plus each literal word.
	Fingerprint(files []string, words []string) (string, error)
}
