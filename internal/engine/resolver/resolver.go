// Package resolver implements breadth-first metadata aggregation over a
// package dependency closure.
package resolver

import (
	"fmt"
	"strings"

	"github.com/chiselbuild/chiselc/internal/core/domain"
	"github.com/chiselbuild/chiselc/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver aggregates a named metadata field across the transitive dependency
// closure of a seed set. One traversal serves every field.
type Resolver struct {
	logger ports.Logger
}

// New creates a new Resolver.
func New(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// ResolveField walks the dependency graph breadth-first from seeds and
// collects the named field's values, one contribution per distinct package.
//
// Seeds are inserted into the seen set before the traversal starts, so a seed
// that is also reachable as a transitive dependency still contributes exactly
// once. The dependency relation may contain cycles and repeated edges; only
// distinct identifiers are visited. Values themselves are not deduplicated:
// the same flag contributed by two packages appears twice, in breadth-first
// discovery order.
//
// Any lookup failure aborts the whole aggregation. A partial option or
// classpath list could silently miscompile, so no partial result is returned.
func (r *Resolver) ResolveField(seeds []domain.PackageID, field string, store ports.PackageStore) ([]string, error) {
	seen := make(map[domain.PackageID]bool, len(seeds))
	queue := make([]domain.PackageID, 0, len(seeds))
	for _, id := range seeds {
		if seen[id] {
			continue
		}
		seen[id] = true
		queue = append(queue, id)
	}

	var values []string
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		record, err := store.Lookup(id)
		if err != nil {
			return nil, zerr.Wrap(err, "dependency resolution failed")
		}

		own, err := record.Field(field)
		if err != nil {
			return nil, err
		}
		if len(own) > 0 {
			r.logger.Debug(fmt.Sprintf("package '%s' contributes %s: %s", id, field, strings.Join(own, " ")))
		}
		values = append(values, own...)

		for _, dep := range record.Dependencies() {
			if !seen[dep] {
				seen[dep] = true
				queue = append(queue, dep)
			}
		}
	}

	return values, nil
}
