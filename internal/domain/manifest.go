package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Manifest mirrors the package.json fields the doctor consults. Everything
// else in the file is ignored.
type Manifest struct {
	Main            string            `json:"main"`
	Typings         string            `json:"typings"`
	Dependencies    DependencyList    `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// HasTypings reports whether the manifest declares its own type declarations.
func (m Manifest) HasTypings() bool { return m.Typings != "" }

// Dependency is a single runtime dependency declaration.
type Dependency struct {
	Name  string
	Range string
}

// DependencyList keeps the dependencies object in declaration order and
// remembers whether the field was present at all: an absent field and an
// empty object mean different things to the dependency checks.
type DependencyList struct {
	Declared bool
	Items    []Dependency
}

// UnmarshalJSON walks the object token by token; decoding into a map would
// randomize the key order.
func (l *DependencyList) UnmarshalJSON(data []byte) error {
	l.Declared = true
	l.Items = nil
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("dependencies: expected object, got %v", tok)
	}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return err
		}
		var rng string
		if err := dec.Decode(&rng); err != nil {
			return err
		}
		l.Items = append(l.Items, Dependency{Name: key.(string), Range: rng})
	}
	_, err = dec.Token()
	return err
}
