package entities

import (
	"fmt"
	"sort"
	"strings"
)

const (
	packageField = "package"
	targetKey    = "target"
)

// EntryKind tells apart the two shapes a dependency entry may take.
type EntryKind int

const (
	// EntrySimple is a bare version requirement, e.g. `serde = "1.0"`.
	EntrySimple EntryKind = iota
	// EntryDetailed is a table, e.g. `serde = { version = "1.0", package = "serde2" }`.
	EntryDetailed
)

// DependencyEntry is a single value of a dependency table.
type DependencyEntry struct {
	Kind    EntryKind
	Version string // set for EntrySimple only
	Package string // set for EntryDetailed when a package override exists
}

// Dependency is an alias together with its decoded entry.
type Dependency struct {
	Alias string
	Entry DependencyEntry
}

// DependencyTable is a decoded dependency table sorted by alias.
type DependencyTable struct {
	Name         string
	Dependencies []Dependency
}

// RenamePair is an alias that points at a differently named package.
type RenamePair struct {
	Alias    string
	RealName string
}

// ModuleAlias returns the alias as it appears in Rust paths.
func (p RenamePair) ModuleAlias() string {
	return ToModuleName(p.Alias)
}

// ModuleRealName returns the real package name as it appears in Rust paths.
func (p RenamePair) ModuleRealName() string {
	return ToModuleName(p.RealName)
}

// ToModuleName converts a crate name to the identifier used in `use` paths.
func ToModuleName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// TableRef points at a raw dependency table inside the manifest.
type TableRef struct {
	Name  string
	Value any
}

// SelectTables returns the dependency tables to scan, in scan order. Top-level
// tables come first in the configured order, then target-specific tables
// when enabled, ordered by target expression.
func SelectTables(manifest *Manifest, settings *Settings) []TableRef {
	var refs []TableRef
	for _, name := range settings.Tables {
		if value, ok := manifest.Table(name); ok {
			refs = append(refs, TableRef{Name: name, Value: value})
		}
	}

	if !settings.IncludeTargets {
		return refs
	}

	rawTargets, ok := manifest.Table(targetKey)
	if !ok {
		return refs
	}
	targets, ok := rawTargets.(map[string]any)
	if !ok {
		return append(refs, TableRef{Name: targetKey, Value: rawTargets})
	}

	for _, cfg := range sortedKeys(targets) {
		section, isTable := targets[cfg].(map[string]any)
		if !isTable {
			refs = append(refs, TableRef{Name: targetKey + "." + cfg, Value: targets[cfg]})
			continue
		}
		for _, name := range settings.Tables {
			if value, found := section[name]; found {
				refs = append(refs, TableRef{
					Name:  fmt.Sprintf("%s.%s.%s", targetKey, cfg, name),
					Value: value,
				})
			}
		}
	}
	return refs
}

// DecodeDependencyTable converts a raw manifest value into a DependencyTable.
// Each entry is first tried as a plain version string and then as a table.
func DecodeDependencyTable(name string, value any) (*DependencyTable, error) {
	raw, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q is a %s, expected a table", ErrDependencySchema, name, describe(value))
	}

	table := &DependencyTable{
		Name:         name,
		Dependencies: make([]Dependency, 0, len(raw)),
	}
	for _, alias := range sortedKeys(raw) {
		entry, err := decodeEntry(raw[alias])
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrDependencySchema, name, alias, err)
		}
		table.Dependencies = append(table.Dependencies, Dependency{Alias: alias, Entry: entry})
	}
	return table, nil
}

func decodeEntry(value any) (DependencyEntry, error) {
	if version, ok := value.(string); ok {
		return DependencyEntry{Kind: EntrySimple, Version: version}, nil
	}

	fields, ok := value.(map[string]any)
	if !ok {
		return DependencyEntry{}, fmt.Errorf("got a %s, expected a version string or a table", describe(value))
	}

	entry := DependencyEntry{Kind: EntryDetailed}
	if rawPackage, found := fields[packageField]; found {
		pkg, isString := rawPackage.(string)
		if !isString {
			return DependencyEntry{}, fmt.Errorf("%q is a %s, expected a string", packageField, describe(rawPackage))
		}
		entry.Package = pkg
	}
	return entry, nil
}

// Renames returns the rename pairs of the table in alias order. Entries whose
// package override is empty or equal to the alias are not renames.
func (t *DependencyTable) Renames() []RenamePair {
	var pairs []RenamePair
	for _, dep := range t.Dependencies {
		if dep.Entry.Kind != EntryDetailed || dep.Entry.Package == "" {
			continue
		}
		if dep.Entry.Package == dep.Alias {
			continue
		}
		pairs = append(pairs, RenamePair{Alias: dep.Alias, RealName: dep.Entry.Package})
	}
	return pairs
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func describe(value any) string {
	switch value.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, int, float64:
		return "number"
	case map[string]any:
		return "table"
	case []any, []map[string]any:
		return "array"
	default:
		return fmt.Sprintf("%T", value)
	}
}
