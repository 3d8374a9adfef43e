package discovery

import (
	"path/filepath"
	"strings"
)

// Filter narrows file lists by a name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the paths whose base name matches pattern.
// Supports shell wildcards ("*_spec.rb"), loose wildcards where every
// non-empty segment must appear ("*user*"), and plain substrings.
func (f *Filter) FilterByName(paths []string, pattern string) []string {
	if pattern == "" {
		return paths
	}

	var filtered []string
	for _, path := range paths {
		if matchName(filepath.Base(path), pattern) {
			filtered = append(filtered, path)
		}
	}
	return filtered
}

func matchName(name, pattern string) bool {
	if matched, err := filepath.Match(pattern, name); err == nil && matched {
		return true
	}

	if strings.Contains(pattern, "*") {
		found := false
		for _, part := range strings.Split(pattern, "*") {
			if part == "" {
				continue
			}
			if !strings.Contains(name, part) {
				return false
			}
			found = true
		}
		return found
	}

	return !strings.Contains(pattern, "?") && strings.Contains(name, pattern)
}
