// internal/services/fix/service_test.go
package fix_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tsdoctor/internal/domain"
	"tsdoctor/internal/report"
	fixsvc "tsdoctor/internal/services/fix"
	"tsdoctor/internal/store"
)

func init() {
	color.NoColor = true
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func run(t *testing.T, dir string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	svc := fixsvc.New(store.NewProjectStore(dir), report.New(&out, io.Discard))
	err := svc.Run()
	return out.String(), err
}

func TestRun_RewritesReferences(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, store.BuildConfigFile, `{"compilerOptions":{"outDir":"lib"}}`)
	path := writeFile(t, dir, filepath.Join("lib", "index.d.ts"),
		"/// <reference path=\"../typings/tsd.d.ts\" />\nexport declare const x: number;\n")

	out, err := run(t, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, `Removed reference "../typings/tsd.d.ts" from `+path) {
		t.Fatalf("expected a removal confirmation:\n%s", out)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want := "// <disabled reference path=\"../typings/tsd.d.ts\" />\nexport declare const x: number;\n"
	if string(b) != want {
		t.Fatalf("rewritten file:\n%q\nwant:\n%q", b, want)
	}
}

func TestRun_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, store.BuildConfigFile, `{"compilerOptions":{"outDir":"lib"}}`)
	path := writeFile(t, dir, filepath.Join("lib", "index.d.ts"),
		"/// <reference path=\"a.d.ts\" />\n")

	if _, err := run(t, dir); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}

	out, err := run(t, dir)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if strings.Contains(out, "Removed reference") {
		t.Fatalf("second run removed something:\n%s", out)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("second run changed the file")
	}
}

func TestRun_NoDeclarations(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, store.BuildConfigFile, `{"compilerOptions":{"outDir":"lib"}}`)

	_, err := run(t, dir)
	if domain.ExitCode(err) != domain.ExitNoDeclarations {
		t.Fatalf("exit code = %d, want %d", domain.ExitCode(err), domain.ExitNoDeclarations)
	}
}

func TestRun_DefaultsToProjectDir(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "index.d.ts", "/// <reference path=\"a.d.ts\" />\n")

	out, err := run(t, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, `Removed reference "a.d.ts" from `+path) {
		t.Fatalf("expected the root declaration to be fixed:\n%s", out)
	}
}

func TestRun_NoDirectives_FileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "clean.d.ts", "export declare const x: number;\n")

	out, err := run(t, dir)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if strings.Contains(out, "Removed reference") {
		t.Fatalf("nothing should be removed:\n%s", out)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(b) != "export declare const x: number;\n" {
		t.Fatalf("no-op rewrite corrupted the file: %q", b)
	}
}
