package discovery

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Probe answers questions about files in the project
type Probe interface {
	// FileExists reports whether path exists, relative paths resolve against the project root
	FileExists(path string) bool
	// FileContains reports whether any line of path contains substring
	FileContains(path, substring string) bool
	// Resolve returns the on-disk location of a project relative path
	Resolve(path string) string
}

// FSProbe is a Probe backed by the local filesystem
type FSProbe struct {
	root string
}

// NewFSProbe creates a Probe rooted at the project directory
func NewFSProbe(root string) *FSProbe {
	if root == "" {
		root = "."
	}
	return &FSProbe{root: root}
}

// Root returns the project directory
func (p *FSProbe) Root() string {
	return p.root
}

// Resolve returns path joined to the project root unless it is absolute
func (p *FSProbe) Resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(p.root, path)
}

// FileExists reports whether path exists. The empty path names nothing.
func (p *FSProbe) FileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(p.Resolve(path))
	return err == nil
}

// FileContains reports whether path exists and one of its lines contains substring.
// Unreadable files count as not containing it.
func (p *FSProbe) FileContains(path, substring string) bool {
	file, err := os.Open(p.Resolve(path))
	if err != nil {
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if strings.Contains(scanner.Text(), substring) {
			return true
		}
	}
	return false
}
