package store

import (
	"os"
	"path/filepath"
	"strings"

	"tsdoctor/internal/domain"
)

const (
	// ManifestFile is the package manifest consulted on every run.
	ManifestFile = "package.json"
	// BuildConfigFile holds the compiler options, including outDir.
	BuildConfigFile = "tsconfig.json"
	// RegistryFile is the legacy tsd type registry.
	RegistryFile = "tsd.json"
	// ModulesDir is where the package manager installs dependencies.
	ModulesDir = "node_modules"
	// TypingsDir holds vendored external declarations.
	TypingsDir = "typings"
)

// ProjectStore reads manifest and build configuration files from a single
// project directory. Every read hits the filesystem fresh; nothing is cached.
type ProjectStore struct {
	dir string
}

// NewProjectStore returns a store rooted at dir.
func NewProjectStore(dir string) *ProjectStore { return &ProjectStore{dir: dir} }

// Dir returns the project directory.
func (s *ProjectStore) Dir() string { return s.dir }

// Manifest reads and parses package.json.
func (s *ProjectStore) Manifest() (domain.Manifest, error) {
	var m domain.Manifest
	if err := loadJSON(filepath.Join(s.dir, ManifestFile), &m); err != nil {
		return domain.Manifest{}, err
	}
	return m, nil
}

// BuildConfig reads tsconfig.json; the bool is false when the file is absent.
func (s *ProjectStore) BuildConfig() (domain.BuildConfig, bool, error) {
	var c domain.BuildConfig
	ok, err := loadOptionalJSON(filepath.Join(s.dir, BuildConfigFile), &c)
	if err != nil {
		return domain.BuildConfig{}, false, err
	}
	return c, ok, nil
}

// Registry reads the legacy tsd.json registry; the bool is false when the
// file is absent.
func (s *ProjectStore) Registry() (domain.Registry, bool, error) {
	var r domain.Registry
	ok, err := loadOptionalJSON(filepath.Join(s.dir, RegistryFile), &r)
	if err != nil {
		return domain.Registry{}, false, err
	}
	return r, ok, nil
}

// DependencyManifest reads the manifest a dependency ships under the
// installed-packages directory.
func (s *ProjectStore) DependencyManifest(name string) (domain.Manifest, error) {
	var m domain.Manifest
	if err := loadJSON(filepath.Join(s.dir, ModulesDir, name, ManifestFile), &m); err != nil {
		return domain.Manifest{}, err
	}
	return m, nil
}

// ResolveOutDir resolves a configured output directory against the project
// directory, stripping at most one trailing separator first.
func (s *ProjectStore) ResolveOutDir(out string) string {
	out = trimOutDir(out)
	if filepath.IsAbs(out) {
		return out
	}
	return filepath.Join(s.dir, out)
}

// OutDir resolves the declaration output directory from the build config.
// A missing file, missing compilerOptions, or missing outDir all fall back
// to the project directory itself.
func (s *ProjectStore) OutDir() (string, error) {
	cfg, ok, err := s.BuildConfig()
	if err != nil {
		return "", err
	}
	if !ok || cfg.CompilerOptions == nil || cfg.CompilerOptions.OutDir == "" {
		return s.dir, nil
	}
	return s.ResolveOutDir(cfg.CompilerOptions.OutDir), nil
}

// trimOutDir strips at most one trailing path separator.
func trimOutDir(out string) string {
	if strings.HasSuffix(out, "/") {
		return strings.TrimSuffix(out, "/")
	}
	return strings.TrimSuffix(out, string(os.PathSeparator))
}

// Compile-time assertion that ProjectStore implements domain.ProjectFiles.
var _ domain.ProjectFiles = (*ProjectStore)(nil)
