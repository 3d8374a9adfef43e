package adapter

import (
	"sync"

	"ttest/internal/config"
	"ttest/internal/domain"
)

// KeyRubyRspec is the registry key of the RSpec adapter
const KeyRubyRspec = "ruby_rspec"

// RubyRspec runs spec files with RSpec. Paths are passed straight through as
// path[:line] arguments of a single invocation.
type RubyRspec struct {
	env    *Env
	cfg    config.AdapterConfig
	runner func() string
}

// NewRubyRspec creates the RSpec adapter
func NewRubyRspec(env *Env, cfg config.AdapterConfig) Adapter {
	a := &RubyRspec{env: env, cfg: cfg}
	a.runner = sync.OnceValue(a.detectRunner)
	return a
}

// Key returns "ruby_rspec"
func (a *RubyRspec) Key() string { return KeyRubyRspec }

// SelectorMatches claims spec files exclusively and names when the manifest mentions rspec
func (a *RubyRspec) SelectorMatches(selector domain.Selector) domain.Match {
	switch selector.Kind() {
	case domain.PathWithLineNumber, domain.PathOnly:
		return domain.ExclusiveOrNone(selector.PathMatchesAny(a.cfg.FilePatterns))
	case domain.NameOnly:
		return domain.SharedOrNone(a.env.ManifestMentions("rspec"))
	default:
		return domain.MatchNone
	}
}

// CollectCommands emits one --example run per name and one batched run for all paths
func (a *RubyRspec) CollectCommands(selectors []domain.Selector) []string {
	var args, commands []string

	for _, selector := range selectors {
		switch selector.Kind() {
		case domain.PathWithLineNumber, domain.PathOnly:
			args = append(args, selector.String())
		case domain.NameOnly:
			commands = append(commands, command(a.runner(), "--example", selector.Name()))
		}
	}

	if len(args) > 0 {
		commands = append(commands, command(a.runner(), args...))
	}

	return noneIfEmpty(commands)
}

// TestCases lists the example and group lines of a spec file
func (a *RubyRspec) TestCases(path string) ([]domain.TestCase, error) {
	return indexTestCases(a.env, KeyRubyRspec, path, a.cfg.TestPatterns)
}

// Runner returns the invocation prefix, detected once per adapter
func (a *RubyRspec) Runner() string { return a.runner() }

func (a *RubyRspec) detectRunner() string {
	switch {
	case a.cfg.Runner != "":
		return a.cfg.Runner
	case a.env.Probe.FileExists("bin/rspec"):
		return "bin/rspec"
	case a.env.ManifestMentions("rspec"):
		return "bundle exec rspec"
	default:
		return "rspec"
	}
}
