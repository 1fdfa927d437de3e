package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Fingerprinter implements ports.Fingerprinter using XXHash.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Fingerprint hashes each file's path and content plus each literal word into
// a single digest. Input order is significant, so callers must pass inputs in
// a deterministic order.
func (f *Fingerprinter) Fingerprint(files []string, words []string) (string, error) {
	digest := xxhash.New()

	for _, path := range files {
		_, _ = digest.WriteString(path)
		_, _ = digest.Write([]byte{0})

		sum, err := f.hashFile(path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(digest, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	_, _ = digest.Write([]byte{0}) // section separator
	for _, word := range words {
		_, _ = digest.WriteString(word)
		_, _ = digest.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", digest.Sum64()), nil
}

func (f *Fingerprinter) hashFile(path string) (uint64, error) {
	file, err := os.Open(path) //nolint:gosec // paths come from the source walker
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open input file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // read-only close

	h := xxhash.New()
	if _, err := io.Copy(h, file); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash input file"), "path", path)
	}
	return h.Sum64(), nil
}
