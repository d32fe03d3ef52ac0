package fix

import (
	"os"

	"tsdoctor/internal/declarations"
	"tsdoctor/internal/domain"
	"tsdoctor/internal/report"
	"tsdoctor/internal/store"
)

// Service strips reference directives from generated declaration files.
type Service struct {
	project domain.ProjectFiles
	rep     *report.Reporter
}

// New returns a fixer over the given project files.
func New(project domain.ProjectFiles, rep *report.Reporter) *Service {
	return &Service{project: project, rep: rep}
}

// Run rewrites every declaration file under the configured output directory,
// reporting each removed reference. Files without directives are rewritten
// unchanged. Finding no declaration files at all aborts with
// domain.ExitNoDeclarations. Rewrites are per-file atomic but the run as a
// whole is not transactional; re-running is safe because an already-fixed
// file has nothing left to match.
func (s *Service) Run() error {
	outDir, err := s.project.OutDir()
	if err != nil {
		return err
	}
	files, err := declarations.Locate(outDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return domain.Exitf(domain.ExitNoDeclarations,
			"No declaration files found under %s. Nothing to fix.", outDir)
	}

	for _, f := range files {
		b, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		fixed, paths := declarations.StripReferences(string(b))
		for _, p := range paths {
			s.rep.Print("Removed reference %q from %s", p, f)
		}
		if err := store.RewriteFile(f, []byte(fixed)); err != nil {
			return err
		}
	}
	return nil
}
