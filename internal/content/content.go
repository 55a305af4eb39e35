// Package content reads the YAML definition files that make up the game
// content: one definition per file, in a flat directory.
package content

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// File is one definition file read from a content directory.
type File struct {
	Path string
	Data []byte
}

// IsYAML reports whether name has a YAML extension (.yaml or .yml).
func IsYAML(name string) bool {
	switch filepath.Ext(name) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Files reads every regular YAML file in dir, ordered by file name.
//
// Precondition: dir must be a readable directory.
// Postcondition: Returns the files (possibly none) or the first read error.
func Files(dir string) ([]File, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot read directory %q: %w", dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !IsYAML(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)

	files := make([]File, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("cannot read file %q: %w", path, err)
		}
		files = append(files, File{Path: path, Data: data})
	}
	return files, nil
}

// Validator is a definition that checks its own invariants.
type Validator[T any] interface {
	*T
	Validate() error
}

// Decode parses every YAML file in dir as a T and validates it. kind names
// the definition in error messages.
//
// Postcondition: Returns one validated definition per file, in file name
// order, or the first error.
func Decode[T any, P Validator[T]](dir, kind string) ([]P, error) {
	files, err := Files(dir)
	if err != nil {
		return nil, err
	}
	defs := make([]P, 0, len(files))
	for _, f := range files {
		def := P(new(T))
		if err := yaml.Unmarshal(f.Data, def); err != nil {
			return nil, fmt.Errorf("cannot parse %s file %q: %w", kind, f.Path, err)
		}
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("invalid %s in %q: %w", kind, f.Path, err)
		}
		defs = append(defs, def)
	}
	return defs, nil
}
