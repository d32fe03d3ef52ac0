package domain

import (
	"encoding/json"
	"sort"
	"strings"
)

// Registry mirrors the legacy tsd.json type registry. Entry keys look like
// "node/node.d.ts"; the package short-name is the part before the first slash.
type Registry struct {
	Installed map[string]json.RawMessage `json:"installed"`
}

// HasInstalled reports whether external typings for the named package are
// registered.
func (r Registry) HasInstalled(name string) bool {
	for key := range r.Installed {
		if shortName(key) == name {
			return true
		}
	}
	return false
}

// InstalledNames returns the sorted, deduplicated package short-names.
func (r Registry) InstalledNames() []string {
	seen := make(map[string]bool, len(r.Installed))
	var names []string
	for key := range r.Installed {
		n := shortName(key)
		if !seen[n] {
			seen[n] = true
			names = append(names, n)
		}
	}
	sort.Strings(names)
	return names
}

func shortName(key string) string {
	if i := strings.Index(key, "/"); i >= 0 {
		return key[:i]
	}
	return key
}
