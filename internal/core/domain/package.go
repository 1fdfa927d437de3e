// Package domain contains the core domain models for package resolution and
// the build pipeline.
package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Metadata field names known to package records.
const (
	FieldClasspath  = "classpath"
	FieldScalacOpts = "scalacopts"
)

// SourceExt is the file extension of compilable sources.
const SourceExt = ".scala"

// PackageID uniquely names one installed package. It always carries an exact
// version as part of the name (e.g. "dev-chisel/foo-1.0"); equality is
// byte-equality.
type PackageID string

// String returns the identifier as a plain string.
func (id PackageID) String() string {
	return string(id)
}

// Noncategory returns the identifier with its category prefix stripped,
// i.e. the portion after the last '/'. An identifier without a category is
// returned unchanged.
func (id PackageID) Noncategory() string {
	s := string(id)
	if sep := strings.LastIndex(s, "/"); sep >= 0 {
		return s[sep+1:]
	}
	return s
}

// ParseDepends parses a Portage DEPEND-style whitespace-separated dependency
// string. Every entry must be pinned to an exact version with a leading '=';
// anything else is a configuration error. The '=' marker is stripped from the
// returned identifiers.
func ParseDepends(depends string) ([]PackageID, error) {
	tokens := strings.Fields(depends)
	if len(tokens) == 0 {
		return nil, nil
	}

	out := make([]PackageID, 0, len(tokens))
	for _, tok := range tokens {
		if !strings.HasPrefix(tok, "=") {
			return nil, zerr.With(ErrUnversionedDependency, "dependency", tok)
		}
		out = append(out, PackageID(tok[1:]))
	}
	return out, nil
}

// PackageRecord is one resolved package's identity and metadata. Records are
// built once by a store, with all external reads done up front, and treated
// as immutable values for the rest of the invocation.
type PackageRecord struct {
	id     PackageID
	deps   []PackageID
	fields map[string][]string
}

// NewPackageRecord constructs a record. The fields map defines the set of
// known field names for this record; Field rejects anything else.
func NewPackageRecord(id PackageID, deps []PackageID, fields map[string][]string) *PackageRecord {
	return &PackageRecord{
		id:     id,
		deps:   deps,
		fields: fields,
	}
}

// ID returns the package identifier.
func (r *PackageRecord) ID() PackageID {
	return r.id
}

// Dependencies returns the package's direct dependencies in declaration
// order. The slice was read from the metadata store exactly once, at
// construction.
func (r *PackageRecord) Dependencies() []PackageID {
	return r.deps
}

// Field returns the record's own values for the named metadata field.
func (r *PackageRecord) Field(name string) ([]string, error) {
	values, ok := r.fields[name]
	if !ok {
		err := zerr.With(ErrUnknownField, "field", name)
		return nil, zerr.With(err, "package", r.id.String())
	}
	return values, nil
}
