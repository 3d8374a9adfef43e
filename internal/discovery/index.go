package discovery

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"unicode/utf8"
)

// IndexEntry is a line of a test file that contains a test marker
type IndexEntry struct {
	line    int
	content string
}

// NewIndexEntry creates an entry for a 1-based line number
func NewIndexEntry(line int, content string) IndexEntry {
	return IndexEntry{line: line, content: content}
}

// Line returns the 1-based line number
func (e IndexEntry) Line() int { return e.line }

// Content returns the raw line text without its line terminator
func (e IndexEntry) Content() string { return e.content }

// TestIndex holds, in file order, every line of a file containing one of a set of markers
type TestIndex struct {
	entries []IndexEntry
}

// BuildIndex reads path once and records each line containing any of the
// literal patterns. Lines that are not valid UTF-8 are skipped.
func BuildIndex(path string, patterns []string) (*TestIndex, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	markers := make([][]byte, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern != "" {
			markers = append(markers, []byte(pattern))
		}
	}

	index := &TestIndex{}
	reader := bufio.NewReader(file)
	lineNumber := 0

	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			lineNumber++
			index.add(lineNumber, line, markers)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}

	return index, nil
}

func (i *TestIndex) add(lineNumber int, line []byte, markers [][]byte) {
	line = bytes.TrimRight(line, "\r\n")
	for _, marker := range markers {
		if bytes.Contains(line, marker) {
			if utf8.Valid(line) {
				i.entries = append(i.entries, NewIndexEntry(lineNumber, string(line)))
			}
			return
		}
	}
}

// Entries returns a copy of the recorded entries in file order
func (i *TestIndex) Entries() []IndexEntry {
	return slices.Clone(i.entries)
}

// Len returns the number of recorded entries
func (i *TestIndex) Len() int {
	return len(i.entries)
}

// ClosestTo returns the entry with the smallest distance to line.
// On a tie the earlier entry wins. ok is false for an empty index.
func (i *TestIndex) ClosestTo(line int) (entry IndexEntry, ok bool) {
	best := -1
	for idx, candidate := range i.entries {
		if best == -1 || distance(candidate.line, line) < distance(i.entries[best].line, line) {
			best = idx
		}
	}
	if best == -1 {
		return IndexEntry{}, false
	}
	return i.entries[best], true
}

func distance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
