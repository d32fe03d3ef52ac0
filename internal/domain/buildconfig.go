package domain

// BuildConfig mirrors the tsconfig.json fields the doctor consults.
type BuildConfig struct {
	CompilerOptions *CompilerOptions `json:"compilerOptions"`
}

// CompilerOptions is the compilerOptions sub-object. Absent members stay at
// their zero value; a nil CompilerOptions means the section itself is missing.
type CompilerOptions struct {
	Declaration bool   `json:"declaration"`
	Module      string `json:"module"`
	OutDir      string `json:"outDir"`
}
