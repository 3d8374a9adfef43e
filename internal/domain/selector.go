package domain

import (
	"fmt"
	"strings"
)

// SelectorKind identifies which of the three selector shapes a Selector holds
type SelectorKind int

const (
	// PathWithLineNumber is a file reference plus a 1-based line number
	PathWithLineNumber SelectorKind = iota
	// PathOnly is a file reference without a line
	PathOnly
	// NameOnly is a free-text test name or name pattern
	NameOnly
)

// String returns the kind name
func (k SelectorKind) String() string {
	switch k {
	case PathWithLineNumber:
		return "path_with_line_number"
	case PathOnly:
		return "path_only"
	case NameOnly:
		return "name_only"
	default:
		return fmt.Sprintf("SelectorKind(%d)", int(k))
	}
}

// Selector is a user supplied reference to what should be tested.
// It is an immutable value; build it with one of the New* constructors.
type Selector struct {
	kind SelectorKind
	path string
	line int
	name string
}

// NewPathWithLineNumber creates a selector pointing at a line inside a file
func NewPathWithLineNumber(path string, line int) Selector {
	return Selector{kind: PathWithLineNumber, path: path, line: line}
}

// NewPathOnly creates a selector pointing at a whole file
func NewPathOnly(path string) Selector {
	return Selector{kind: PathOnly, path: path}
}

// NewNameOnly creates a selector that names a test
func NewNameOnly(name string) Selector {
	return Selector{kind: NameOnly, name: name}
}

// Kind returns the selector shape
func (s Selector) Kind() SelectorKind { return s.kind }

// Path returns the file reference, empty for NameOnly
func (s Selector) Path() string { return s.path }

// Line returns the line number, zero unless PathWithLineNumber
func (s Selector) Line() int { return s.line }

// Name returns the test name, empty unless NameOnly
func (s Selector) Name() string { return s.name }

// HasPath reports whether the selector refers to a file
func (s Selector) HasPath() bool {
	return s.kind == PathWithLineNumber || s.kind == PathOnly
}

// PathMatches reports whether the path contains pattern as a plain substring
func (s Selector) PathMatches(pattern string) bool {
	return s.HasPath() && strings.Contains(s.path, pattern)
}

// PathMatchesAny reports whether the path contains any of the patterns
func (s Selector) PathMatchesAny(patterns []string) bool {
	for _, pattern := range patterns {
		if s.PathMatches(pattern) {
			return true
		}
	}
	return false
}

// String renders the selector back in its command line form
func (s Selector) String() string {
	switch s.kind {
	case PathWithLineNumber:
		return fmt.Sprintf("%s:%d", s.path, s.line)
	case PathOnly:
		return s.path
	default:
		return s.name
	}
}
