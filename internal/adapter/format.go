package adapter

import (
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"ttest/internal/discovery"
	"ttest/internal/domain"
)

// command joins a trusted runner prefix with shell-quoted arguments
func command(runner string, args ...string) string {
	if len(args) == 0 {
		return runner
	}
	return runner + " " + shellquote.Join(args...)
}

// noneIfEmpty maps an empty command list to nil
func noneIfEmpty(commands []string) []string {
	if len(commands) == 0 {
		return nil
	}
	return commands
}

// indexTestCases lists every line of path containing one of patterns
func indexTestCases(env *Env, key, path string, patterns []string) ([]domain.TestCase, error) {
	index, err := discovery.BuildIndex(env.Probe.Resolve(path), patterns)
	if err != nil {
		return nil, err
	}

	var cases []domain.TestCase
	for _, entry := range index.Entries() {
		cases = append(cases, domain.TestCase{
			Adapter:  key,
			FilePath: path,
			Line:     entry.Line(),
			Text:     strings.TrimSpace(entry.Content()),
		})
	}
	return cases, nil
}
