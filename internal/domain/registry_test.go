// internal/domain/registry_test.go
package domain_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"tsdoctor/internal/domain"
)

func registryFrom(t *testing.T, raw string) domain.Registry {
	t.Helper()
	var r domain.Registry
	if err := json.Unmarshal([]byte(raw), &r); err != nil {
		t.Fatalf("unmarshal registry: %v", err)
	}
	return r
}

func TestRegistry_ShortNames(t *testing.T) {
	r := registryFrom(t, `{"installed":{"node/node.d.ts":{},"lodash/lodash.d.ts":{},"node/extras.d.ts":{}}}`)

	if !r.HasInstalled("node") || !r.HasInstalled("lodash") {
		t.Fatal("expected node and lodash to be installed")
	}
	if r.HasInstalled("express") {
		t.Fatal("express should not be installed")
	}

	want := []string{"lodash", "node"}
	if got := r.InstalledNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("InstalledNames() = %v, want %v", got, want)
	}
}

func TestExitCode(t *testing.T) {
	if got := domain.ExitCode(nil); got != 0 {
		t.Fatalf("nil error: got %d, want 0", got)
	}
	if got := domain.ExitCode(errors.New("boom")); got != 1 {
		t.Fatalf("plain error: got %d, want 1", got)
	}
	err := fmt.Errorf("run: %w", domain.Exitf(domain.ExitNoDeclarations, "nothing to fix"))
	if got := domain.ExitCode(err); got != domain.ExitNoDeclarations {
		t.Fatalf("wrapped ExitError: got %d, want %d", got, domain.ExitNoDeclarations)
	}
}
