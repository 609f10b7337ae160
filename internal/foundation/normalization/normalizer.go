// Package normalization maps loosely written configuration values
// ("  Git ", "FRONTMATTER") onto their canonical enum values.
package normalization

import (
	"fmt"
	"sort"
	"strings"
)

// Normalizer provides type-safe string-to-enum normalization.
type Normalizer[T comparable] struct {
	name   string
	values map[string]T
	keys   []string // sorted, for error messages
}

// New creates a normalizer for the enum called name. The keys of values are
// normalized the same way input is.
func New[T comparable](name string, values map[string]T) *Normalizer[T] {
	n := &Normalizer[T]{name: name, values: make(map[string]T, len(values))}
	for k, v := range values {
		key := Clean(k)
		n.values[key] = v
		n.keys = append(n.keys, key)
	}
	sort.Strings(n.keys)
	return n
}

// Parse converts raw to its enum value.
func (n *Normalizer[T]) Parse(raw string) (T, error) {
	if v, ok := n.values[Clean(raw)]; ok {
		return v, nil
	}
	var zero T
	return zero, fmt.Errorf("invalid %s %q, valid options: %v", n.name, raw, n.keys)
}

// Canonical returns the normalized key for raw and whether it is known.
// Unknown input is returned unchanged so validation can report it verbatim.
func (n *Normalizer[T]) Canonical(raw string) (string, bool) {
	key := Clean(raw)
	if _, ok := n.values[key]; ok {
		return key, true
	}
	return raw, false
}

// Keys returns all valid normalized keys.
func (n *Normalizer[T]) Keys() []string {
	out := make([]string, len(n.keys))
	copy(out, n.keys)
	return out
}

// Clean lower-cases and trims s.
func Clean(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
