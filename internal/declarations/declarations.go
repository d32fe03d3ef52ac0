package declarations

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"tsdoctor/internal/store"
)

// Marker is the textual marker the analyzer scans declaration lines for.
const Marker = `/// <reference path=`

// refLine matches a whole reference directive at the start of a line.
var refLine = regexp.MustCompile(`(?m)^/// <reference path="(.*)" />`)

// Locate returns every .d.ts file under root, skipping the vendored typings
// and installed-packages subtrees. Only regular files are returned; the
// order is whatever the traversal yields.
func Locate(root string) ([]string, error) {
	matches, err := doublestar.FilepathGlob(
		filepath.Join(root, "**", "*.d.ts"),
		doublestar.WithFilesOnly(),
	)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, m := range matches {
		rel, err := filepath.Rel(root, m)
		if err != nil {
			return nil, err
		}
		rel = filepath.ToSlash(rel)
		if strings.HasPrefix(rel, store.TypingsDir+"/") ||
			strings.HasPrefix(rel, store.ModulesDir+"/") {
			continue
		}
		files = append(files, m)
	}
	return files, nil
}

// TaggedLine is a reference line found in a declaration file.
type TaggedLine struct {
	File string
	Line string
}

// ScanReferences returns every line of path containing the reference marker,
// tagged with the file it came from.
func ScanReferences(path string) ([]TaggedLine, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out []TaggedLine
	for _, line := range strings.Split(string(b), "\n") {
		if strings.Contains(line, Marker) {
			out = append(out, TaggedLine{File: path, Line: strings.TrimRight(line, "\r")})
		}
	}
	return out, nil
}

// StripReferences disables every reference directive in text and returns the
// rewritten text plus the captured paths, in file order. The replacement is
// a plain comment, so a second pass finds nothing to strip.
func StripReferences(text string) (string, []string) {
	var paths []string
	out := refLine.ReplaceAllStringFunc(text, func(match string) string {
		p := refLine.FindStringSubmatch(match)[1]
		paths = append(paths, p)
		return `// <disabled reference path="` + p + `" />`
	})
	return out, paths
}
