package analyze

import (
	"errors"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"

	"tsdoctor/internal/declarations"
	"tsdoctor/internal/domain"
	"tsdoctor/internal/report"
	"tsdoctor/internal/store"
)

const (
	// compilerPackage is the build-tool package expected in devDependencies.
	compilerPackage = "typescript"

	// runtimeTypingsName is the platform-runtime record appended to every
	// dependency scan; the Node runtime never ships its own declarations.
	runtimeTypingsName = "node"
)

// Service runs the advisory checklist over a project directory.
//
// Checks run in a fixed order and are independent of each other: every
// finding except a missing manifest is a hint, printed and moved past. No
// check mutates the project.
type Service struct {
	project domain.ProjectFiles
	rep     *report.Reporter
}

// New returns an analyzer over the given project files.
func New(project domain.ProjectFiles, rep *report.Reporter) *Service {
	return &Service{project: project, rep: rep}
}

// Run executes the checklist. A missing manifest aborts with
// domain.ExitNoManifest; everything else is advisory.
func (s *Service) Run() error {
	man, err := s.project.Manifest()
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Exitf(domain.ExitNoManifest,
				"No %s found. tsdoctor needs one to analyze the package.", store.ManifestFile)
		}
		return err
	}

	s.checkEntryPoints(man)
	s.checkCompilerDependency(man)

	outDir, err := s.checkBuildConfig()
	if err != nil {
		return err
	}
	if err := s.checkDependencyTypings(man); err != nil {
		return err
	}
	return s.checkDeclarations(outDir)
}

// checkEntryPoints verifies the manifest names a runtime entry point and a
// typings entry.
func (s *Service) checkEntryPoints(man domain.Manifest) {
	if man.Main == "" {
		s.rep.Hint(`%s has no "main" entry. Consumers cannot resolve your module without one.`,
			store.ManifestFile)
	}
	if !man.HasTypings() {
		s.rep.Hint(`%s has no "typings" entry. Point it at your generated .d.ts file so the compiler picks your declarations up automatically.`,
			store.ManifestFile)
	}
}

// checkCompilerDependency verifies the compiler is pinned in devDependencies
// and, when it is, that the declared range parses as a semver constraint.
func (s *Service) checkCompilerDependency(man domain.Manifest) {
	rng, ok := man.DevDependencies[compilerPackage]
	if !ok {
		s.rep.Hint(`%q is not listed in devDependencies. Pin the compiler version your declarations are built with.`,
			compilerPackage)
		return
	}
	if _, err := semver.NewConstraint(rng); err != nil {
		s.rep.Hint(`The %q devDependency range %q is not a valid semver constraint.`,
			compilerPackage, rng)
	}
}

// checkBuildConfig inspects tsconfig.json and returns the output directory
// later checks should scan. Without a usable outDir the project directory
// itself is scanned.
func (s *Service) checkBuildConfig() (string, error) {
	outDir := s.project.Dir()

	cfg, ok, err := s.project.BuildConfig()
	if err != nil {
		return "", err
	}
	if !ok {
		s.rep.Hint("No %s found. Declarations will be looked for in the project directory itself.",
			store.BuildConfigFile)
		return outDir, nil
	}

	opts := cfg.CompilerOptions
	if opts == nil {
		s.rep.Hint(`%s has no "compilerOptions" section.`, store.BuildConfigFile)
		return outDir, nil
	}
	if !opts.Declaration {
		s.rep.Hint(`Set "declaration": true in %s so the compiler emits .d.ts files.`,
			store.BuildConfigFile)
	}
	if opts.Module == "" {
		s.rep.Hint(`Set the "module" compiler option in %s (e.g. "commonjs").`,
			store.BuildConfigFile)
	}
	if opts.OutDir == "" {
		s.rep.Hint(`Set the "outDir" compiler option in %s (e.g. "lib") to keep generated files out of your sources.`,
			store.BuildConfigFile)
	} else {
		outDir = s.project.ResolveOutDir(opts.OutDir)
	}
	return outDir, nil
}

// checkDependencyTypings walks the declared runtime dependencies, records
// which ship their own typings, and cross-checks the result against the
// legacy type registry when one exists. The step only runs when the
// manifest declares a dependencies field, empty or not.
func (s *Service) checkDependencyTypings(man domain.Manifest) error {
	if !man.Dependencies.Declared {
		return nil
	}

	var records []domain.DependencyTyping
	for _, dep := range man.Dependencies.Items {
		depMan, err := s.project.DependencyManifest(dep.Name)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				s.rep.Hint("Could not read the %s of %q. Run your package manager's install step first.",
					store.ManifestFile, dep.Name)
				continue
			}
			return err
		}
		records = append(records, domain.DependencyTyping{
			Name:      dep.Name,
			SelfTyped: depMan.HasTypings(),
		})
	}
	// The runtime API needs external declarations no matter what is installed.
	records = append(records, domain.DependencyTyping{Name: runtimeTypingsName})

	reg, ok, err := s.project.Registry()
	if err != nil {
		return err
	}
	if !ok {
		var untyped []string
		for _, r := range records {
			if !r.SelfTyped {
				untyped = append(untyped, r.Name)
			}
		}
		if len(untyped) > 0 {
			s.rep.Hint("These dependencies ship no typings of their own: %s. Install external declarations for them.",
				strings.Join(untyped, ", "))
		}
		return nil
	}

	for _, r := range records {
		switch {
		case r.SelfTyped && reg.HasInstalled(r.Name):
			s.rep.Hint("%q ships its own typings, but external ones are installed as well. Remove the external copy to avoid conflicts.",
				r.Name)
		case !r.SelfTyped && !reg.HasInstalled(r.Name):
			s.rep.Hint("%q ships no typings. Install external ones, e.g. tsd install %s --save.",
				r.Name, r.Name)
		}
	}
	s.rep.Hint("Typings currently installed via the registry: %s. Worth mentioning in your README.",
		strings.Join(reg.InstalledNames(), ", "))
	return nil
}

// checkDeclarations scans the generated declaration files for cross-file
// reference directives.
func (s *Service) checkDeclarations(outDir string) error {
	files, err := declarations.Locate(outDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		s.rep.Hint(`No declaration files found under %s. Compile with "declaration": true first.`, outDir)
		return nil
	}

	var tagged []declarations.TaggedLine
	for _, f := range files {
		lines, err := declarations.ScanReferences(f)
		if err != nil {
			return err
		}
		tagged = append(tagged, lines...)
	}
	if len(tagged) == 0 {
		return nil
	}

	s.rep.Hint("Found reference directives in your declaration files. They can collide with a consumer's file layout:")
	for _, tl := range tagged {
		s.rep.Print("%s: %s", tl.File, tl.Line)
	}
	s.rep.Blank()
	s.rep.Hint("Run tsdoctor --fix-typings to disable them.")
	return nil
}
