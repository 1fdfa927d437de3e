package domain_test

import (
	"errors"
	"testing"

	"github.com/chiselbuild/chiselc/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestParseDepends(t *testing.T) {
	deps, err := domain.ParseDepends("=dev-chisel/foo-1.0 =dev-chisel/bar-2.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(deps) != 2 {
		t.Fatalf("expected 2 dependencies, got %d", len(deps))
	}
	if deps[0] != "dev-chisel/foo-1.0" || deps[1] != "dev-chisel/bar-2.1" {
		t.Errorf("unexpected dependencies: %v", deps)
	}
}

func TestParseDepends_Empty(t *testing.T) {
	deps, err := domain.ParseDepends("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if deps != nil {
		t.Errorf("expected nil, got %v", deps)
	}
}

func TestParseDepends_Unversioned(t *testing.T) {
	_, err := domain.ParseDepends("dev-chisel/foo")
	if err == nil {
		t.Fatal("expected error for unversioned dependency, got nil")
	}
	if !errors.Is(err, domain.ErrUnversionedDependency) {
		t.Errorf("expected ErrUnversionedDependency, got %v", err)
	}

	zErr, ok := err.(*zerr.Error)
	if !ok {
		t.Fatalf("expected *zerr.Error, got %T", err)
	}
	meta := zErr.Metadata()
	if dep, ok := meta["dependency"].(string); !ok || dep != "dev-chisel/foo" {
		t.Errorf("expected metadata dependency=dev-chisel/foo, got %v", meta["dependency"])
	}
}

func TestPackageID_Noncategory(t *testing.T) {
	if got := domain.PackageID("dev-chisel/foo-1.0").Noncategory(); got != "foo-1.0" {
		t.Errorf("expected foo-1.0, got %s", got)
	}
	if got := domain.PackageID("foo-1.0").Noncategory(); got != "foo-1.0" {
		t.Errorf("expected foo-1.0, got %s", got)
	}
}

func TestPackageRecord_Field(t *testing.T) {
	record := domain.NewPackageRecord(
		"dev-chisel/foo-1.0",
		nil,
		map[string][]string{
			domain.FieldClasspath:  {"/jars/foo-1.0.jar"},
			domain.FieldScalacOpts: nil,
		},
	)

	cp, err := record.Field(domain.FieldClasspath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cp) != 1 || cp[0] != "/jars/foo-1.0.jar" {
		t.Errorf("unexpected classpath: %v", cp)
	}

	opts, err := record.Field(domain.FieldScalacOpts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(opts) != 0 {
		t.Errorf("expected no options, got %v", opts)
	}

	if _, err := record.Field("homepage"); !errors.Is(err, domain.ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestPrefixFlags(t *testing.T) {
	got := domain.PrefixFlags([]string{"deprecation", "feature"})
	if len(got) != 2 || got[0] != "-deprecation" || got[1] != "-feature" {
		t.Errorf("unexpected flags: %v", got)
	}

	if got := domain.PrefixFlags(nil); got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
