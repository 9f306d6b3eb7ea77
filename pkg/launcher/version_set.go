package launcher

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// VersionSet is an unordered set of version identifiers. The zero value is an
// empty set ready for reads; use NewVersionSet or Add to populate it.
type VersionSet map[string]struct{}

// NewVersionSet builds a set from the given identifiers. Empty identifiers are
// ignored.
func NewVersionSet(versions ...string) VersionSet {
	s := make(VersionSet, len(versions))
	for _, v := range versions {
		s.Add(v)
	}
	return s
}

// Add inserts v into the set.
func (s VersionSet) Add(v string) {
	if v == "" {
		return
	}
	s[v] = struct{}{}
}

// Has reports whether v is a member.
func (s VersionSet) Has(v string) bool {
	if v == "" {
		return false
	}
	_, ok := s[v]
	return ok
}

func (s VersionSet) Len() int { return len(s) }

// Equal reports set equality. A nil set equals an empty set.
func (s VersionSet) Equal(other VersionSet) bool {
	if len(s) != len(other) {
		return false
	}
	for v := range s {
		if _, ok := other[v]; !ok {
			return false
		}
	}
	return true
}

// Sorted returns the members in lexicographic order.
func (s VersionSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// Only returns the single member of a one-element set.
func (s VersionSet) Only() (string, bool) {
	if len(s) != 1 {
		return "", false
	}
	for v := range s {
		return v, true
	}
	return "", false
}

// Clone returns an independent copy of the set.
func (s VersionSet) Clone() VersionSet {
	out := make(VersionSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}
	return out
}

// MarshalYAML writes the set as a sorted sequence so the persisted record
// diffs cleanly between runs.
func (s VersionSet) MarshalYAML() (any, error) {
	return s.Sorted(), nil
}

// UnmarshalYAML reads a sequence of identifiers. A null node yields an empty
// set.
func (s *VersionSet) UnmarshalYAML(node *yaml.Node) error {
	set := VersionSet{}
	switch node.Kind {
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		for _, v := range items {
			set.Add(v)
		}
	case yaml.ScalarNode:
		if node.Tag != "!!null" {
			return fmt.Errorf("line %d: versions must be a list, got scalar %q", node.Line, node.Value)
		}
	default:
		return fmt.Errorf("line %d: versions must be a list", node.Line)
	}
	*s = set
	return nil
}
