// Package classpath implements the classpath override merge.
package classpath

import (
	"fmt"
	"path/filepath"

	"github.com/chiselbuild/chiselc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Merger merges package-derived classpath entries with caller-supplied ones.
// Two entries occupy the same slot when their base filenames match; the
// caller-supplied entry wins.
type Merger struct {
	logger ports.Logger
}

// NewMerger creates a new Merger.
func NewMerger(logger ports.Logger) *Merger {
	return &Merger{logger: logger}
}

// Merge drops every packageDerived entry whose base filename also appears in
// callerSupplied, logging one diagnostic per dropped entry, then appends the
// callerSupplied entries made absolute. Relative order is preserved on both
// sides. Caller entries that share a base filename among themselves pass
// through unchanged.
func (m *Merger) Merge(packageDerived, callerSupplied []string) ([]string, error) {
	overridden := make(map[string]bool, len(callerSupplied))
	for _, entry := range callerSupplied {
		overridden[filepath.Base(entry)] = true
	}

	merged := make([]string, 0, len(packageDerived)+len(callerSupplied))
	for _, entry := range packageDerived {
		if overridden[filepath.Base(entry)] {
			m.logger.Info(fmt.Sprintf("dropping package classpath %s (overridden by caller classpath)", entry))
			continue
		}
		merged = append(merged, entry)
	}

	for _, entry := range callerSupplied {
		abs, err := filepath.Abs(entry)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to absolutize classpath entry"), "entry", entry)
		}
		merged = append(merged, abs)
	}

	return merged, nil
}
