package domain

// ProjectFiles is the read surface of a project directory shared by the
// analyzer and the fixer.
type ProjectFiles interface {
	// Dir returns the project directory all relative lookups resolve against.
	Dir() string

	// Manifest reads the package manifest; the caller decides whether a
	// missing file is fatal.
	Manifest() (Manifest, error)

	// BuildConfig reads the build configuration; the bool is false when the
	// file is absent.
	BuildConfig() (BuildConfig, bool, error)

	// Registry reads the legacy type registry; the bool is false when the
	// file is absent.
	Registry() (Registry, bool, error)

	// DependencyManifest reads the manifest a dependency ships under the
	// installed-packages directory.
	DependencyManifest(name string) (Manifest, error)

	// ResolveOutDir resolves a configured output directory against Dir,
	// stripping at most one trailing separator.
	ResolveOutDir(out string) string

	// OutDir resolves the declaration output directory from the build
	// config, defaulting to Dir.
	OutDir() (string, error)
}
