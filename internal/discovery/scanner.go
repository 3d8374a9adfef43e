package discovery

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Scanner walks a project directory for candidate test files
type Scanner struct {
	base     string
	skipDirs map[string]bool
}

// NewScanner creates a Scanner rooted at base, skipping the given directory names
func NewScanner(base string, skipDirs []string) *Scanner {
	skipMap := make(map[string]bool)
	for _, dir := range skipDirs {
		skipMap[dir] = true
	}
	return &Scanner{base: base, skipDirs: skipMap}
}

// Scan returns every regular file under dir, as paths relative to the scanner base
func (s *Scanner) Scan(dir string) ([]string, error) {
	var files []string

	root := filepath.Clean(dir)
	if !filepath.IsAbs(root) {
		root = filepath.Join(s.base, root)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("test path does not exist: %s", dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("test path is not a directory: %s", dir)
	}

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			name := d.Name()
			if path != root && (strings.HasPrefix(name, ".") || s.skipDirs[name]) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(s.base, path)
		if err != nil {
			rel = path
		}
		files = append(files, rel)
		return nil
	})

	return files, err
}
