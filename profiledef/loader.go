// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package profiledef

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/bureau-foundation/palisade/capability"
)

// Loader layers profile documents and resolves named profiles into
// operation lists. Later-loaded documents override earlier ones
// profile-by-profile; inheritance is resolved against the merged
// view.
type Loader struct {
	docs     []*Document
	resolved map[string][]capability.Operation
	logger   *slog.Logger
}

// NewLoader creates an empty loader.
func NewLoader() *Loader {
	return &Loader{resolved: make(map[string][]capability.Operation)}
}

// SetLogger enables verbose logging during loading and resolution.
func (l *Loader) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

func (l *Loader) log(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}

// add appends a document and invalidates the resolution cache.
func (l *Loader) add(doc *Document) {
	l.docs = append(l.docs, doc)
	l.resolved = make(map[string][]capability.Operation)
}

// LoadDefaults loads the built-in default profiles.
func (l *Loader) LoadDefaults() error {
	doc, err := Parse([]byte(defaultProfilesYAML))
	if err != nil {
		return fmt.Errorf("parsing default profiles: %w", err)
	}
	l.add(doc)
	l.log("loaded default profiles", "count", len(doc.Profiles))
	return nil
}

// LoadFile loads a profile document from a YAML or JSONC file.
func (l *Loader) LoadFile(path string) error {
	doc, err := LoadFile(path)
	if err != nil {
		return err
	}
	l.add(doc)
	l.log("loaded profiles from file", "path", path, "count", len(doc.Profiles))
	return nil
}

// LoadDirectory loads every profile document in dir, in name order.
// A missing directory is not an error.
func (l *Loader) LoadDirectory(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yaml", ".yml", ".json", ".jsonc":
		default:
			continue
		}
		if err := l.LoadFile(filepath.Join(dir, entry.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Resolve resolves the named profile into its operation list,
// applying inheritance: the parent's operations come first, then the
// profile's own, in document order. The result is cached.
func (l *Loader) Resolve(name string) ([]capability.Operation, error) {
	return l.resolve(name, make(map[string]bool))
}

func (l *Loader) resolve(name string, visiting map[string]bool) ([]capability.Operation, error) {
	if ops, ok := l.resolved[name]; ok {
		return append([]capability.Operation(nil), ops...), nil
	}
	if visiting[name] {
		return nil, fmt.Errorf("profile inheritance cycle through %q", name)
	}
	visiting[name] = true
	defer delete(visiting, name)

	def := l.lookup(name)
	if def == nil {
		return nil, fmt.Errorf("profile not found: %s", name)
	}

	var ops []capability.Operation
	if def.Inherit != "" {
		l.log("resolving parent profile", "child", name, "parent", def.Inherit)
		parentOps, err := l.resolve(def.Inherit, visiting)
		if err != nil {
			return nil, fmt.Errorf("resolving parent of %q: %w", name, err)
		}
		ops = parentOps
	}

	for i, opDef := range def.Operations {
		op, err := opDef.Compile()
		if err != nil {
			// Documents are checked at parse time; reaching this
			// means a definition was mutated after loading.
			return nil, fmt.Errorf("profile %q operation %d: %w", name, i, err)
		}
		ops = append(ops, op)
	}

	l.resolved[name] = ops
	l.log("profile resolved", "name", name, "operations", len(ops))
	return append([]capability.Operation(nil), ops...), nil
}

// lookup finds the named profile definition, last-loaded wins.
func (l *Loader) lookup(name string) *ProfileDef {
	var found *ProfileDef
	for _, doc := range l.docs {
		if def, ok := doc.Profiles[name]; ok {
			found = def
		}
	}
	return found
}

// Describe returns the named profile's definition from the merged
// view, or nil when it does not exist.
func (l *Loader) Describe(name string) *ProfileDef {
	return l.lookup(name)
}

// List returns all available profile names, sorted.
func (l *Loader) List() []string {
	names := make(map[string]bool)
	for _, doc := range l.docs {
		for name := range doc.Profiles {
			names[name] = true
		}
	}
	result := make([]string, 0, len(names))
	for name := range names {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

// ConfigSearchPaths returns the document paths probed by
// LoadFromSearchPaths, in load order (later overrides earlier).
func ConfigSearchPaths() []string {
	paths := []string{"/etc/palisade/profiles.yaml"}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, "palisade", "profiles.yaml"))
	}
	return paths
}

// LoadFromSearchPaths creates a loader with the built-in defaults
// plus any documents found at the standard locations.
func LoadFromSearchPaths(logger *slog.Logger) (*Loader, error) {
	loader := NewLoader()
	loader.SetLogger(logger)
	if err := loader.LoadDefaults(); err != nil {
		return nil, err
	}
	for _, path := range ConfigSearchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := loader.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return loader, nil
}
