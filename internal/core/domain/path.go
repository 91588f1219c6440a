// Package domain contains the core types and graph algorithms of the
// build engine: paths, tool kinds, build steps, and the dependency
// graph they form. Nothing in this package performs I/O.
package domain

import "unique"

// Path identifies a filesystem location. It wraps unique.Handle[string]
// so that repeated occurrences of the same path across steps, edges,
// and caches share storage and compare in O(1).
type Path struct {
	h unique.Handle[string]
}

// NewPath interns s and returns the resulting Path.
func NewPath(s string) Path {
	return Path{h: unique.Make(s)}
}

// String returns the underlying path string.
func (p Path) String() string {
	var zero unique.Handle[string]
	if p.h == zero {
		return ""
	}
	return p.h.Value()
}

// IsZero reports whether p is the zero Path.
func (p Path) IsZero() bool {
	var zero unique.Handle[string]
	return p.h == zero
}
