// Package types holds the core data model shared across portenv packages.
// Everything here is a plain value type; nothing is mutated after
// configuration ingestion.
package types

import (
	"sort"

	"github.com/arthur-debert/portenv/pkg/errors"
)

// MutationKind determines how a raw value is combined with a variable's
// prior value
type MutationKind string

const (
	// PrependPath puts the value in front of the variable's current value
	PrependPath MutationKind = "PREPEND_PATH"

	// AppendPath puts the value after the variable's current value
	AppendPath MutationKind = "APPEND_PATH"

	// Set replaces the variable's value verbatim
	Set MutationKind = "SET"

	// ResolvePath replaces the variable's value, treating it strictly as
	// a filesystem path to adapt for the target shell
	ResolvePath MutationKind = "PATH"
)

// ParseMutationKind maps a configuration mode token to a MutationKind
func ParseMutationKind(s string) (MutationKind, error) {
	switch kind := MutationKind(s); kind {
	case PrependPath, AppendPath, Set, ResolvePath:
		return kind, nil
	default:
		return "", errors.Newf(errors.ErrUnknownMutationKind, "unknown mutation mode %q", s)
	}
}

// ProfileEntry is one step of a profile: either a MutationRecord or an
// IncludeRecord. The interface is sealed; no other implementations exist.
type ProfileEntry interface {
	profileEntry()
}

// MutationRecord is one variable-affecting operation
type MutationRecord struct {
	Name  string
	Value string
	Kind  MutationKind
}

func (MutationRecord) profileEntry() {}

// IncludeRecord makes the referenced profile's environment active before
// the containing profile continues
type IncludeRecord struct {
	Profile string
}

func (IncludeRecord) profileEntry() {}

// Profile is an ordered sequence of entries; order is semantically
// significant and preserved exactly through compilation
type Profile []ProfileEntry

// Config maps profile names to their entries
type Config map[string]Profile

// Names returns the profile names in sorted order so iteration over a
// Config is deterministic
func (c Config) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
