package discovery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"ttest/internal/domain"
)

var (
	// ErrFileNotFound is returned for a path:line selector whose path does not exist
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidLineNumber is returned when the text after ':' is not a positive integer
	ErrInvalidLineNumber = errors.New("invalid line number")
)

// ParseError describes why a raw selector could not be parsed
type ParseError struct {
	Input string
	Err   error // ErrFileNotFound or ErrInvalidLineNumber
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("selector %q: %v: %v", e.Input, e.Err, e.Cause)
	}
	return fmt.Sprintf("selector %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SelectorParser turns raw command line arguments into selectors.
// File existence is checked once, here, and never again.
type SelectorParser struct {
	probe Probe
}

// NewSelectorParser creates a parser that checks paths through probe
func NewSelectorParser(probe Probe) *SelectorParser {
	return &SelectorParser{probe: probe}
}

// Parse interprets raw as path:line, path or test name, in that order.
// Only a string with exactly one ':' is treated as path:line, so "Foo::Bar" stays a name.
func (p *SelectorParser) Parse(raw string) (domain.Selector, error) {
	if strings.Count(raw, ":") == 1 {
		path, lineText, _ := strings.Cut(raw, ":")
		if !p.probe.FileExists(path) {
			return domain.Selector{}, &ParseError{Input: raw, Err: ErrFileNotFound}
		}

		line, err := strconv.ParseUint(lineText, 10, 32)
		if err != nil {
			return domain.Selector{}, &ParseError{Input: raw, Err: ErrInvalidLineNumber, Cause: err}
		}
		if line == 0 {
			return domain.Selector{}, &ParseError{Input: raw, Err: ErrInvalidLineNumber}
		}

		return domain.NewPathWithLineNumber(path, int(line)), nil
	}

	if raw != "" && p.probe.FileExists(raw) {
		return domain.NewPathOnly(raw), nil
	}

	return domain.NewNameOnly(raw), nil
}

// ParseAll parses every argument, stopping at the first error
func (p *SelectorParser) ParseAll(raws []string) ([]domain.Selector, error) {
	selectors := make([]domain.Selector, 0, len(raws))
	for _, raw := range raws {
		selector, err := p.Parse(raw)
		if err != nil {
			return nil, err
		}
		selectors = append(selectors, selector)
	}
	return selectors, nil
}
