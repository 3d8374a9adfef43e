package adapter

import (
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"

	"ttest/internal/config"
	"ttest/internal/discovery"
	"ttest/internal/domain"
)

// KeyRubyMinitest is the registry key of the Minitest adapter
const KeyRubyMinitest = "ruby_minitest"

// RubyMinitest runs Ruby files with Minitest. Minitest cannot select by line,
// so a path:line selector is resolved to the nearest test definition and
// passed as a --name filter.
type RubyMinitest struct {
	env    *Env
	cfg    config.AdapterConfig
	runner func() string
}

// NewRubyMinitest creates the Minitest adapter
func NewRubyMinitest(env *Env, cfg config.AdapterConfig) Adapter {
	a := &RubyMinitest{env: env, cfg: cfg}
	a.runner = sync.OnceValue(a.detectRunner)
	return a
}

// Key returns "ruby_minitest"
func (a *RubyMinitest) Key() string { return KeyRubyMinitest }

// SelectorMatches claims Ruby files exclusively and names shared, both only
// when the manifest mentions minitest
func (a *RubyMinitest) SelectorMatches(selector domain.Selector) domain.Match {
	if !a.env.ManifestMentions("minitest") {
		return domain.MatchNone
	}

	switch selector.Kind() {
	case domain.PathWithLineNumber, domain.PathOnly:
		return domain.ExclusiveOrNone(selector.PathMatchesAny(a.cfg.FilePatterns))
	case domain.NameOnly:
		return domain.MatchShared
	default:
		return domain.MatchNone
	}
}

// CollectCommands emits one invocation per selector. Line selectors whose
// file cannot be indexed, or holds no test definition, are dropped.
func (a *RubyMinitest) CollectCommands(selectors []domain.Selector) []string {
	var commands []string

	for _, selector := range selectors {
		switch selector.Kind() {
		case domain.PathWithLineNumber:
			pattern, ok := a.findTestPattern(selector.Path(), selector.Line())
			if !ok {
				continue
			}
			commands = append(commands, command(a.runner(), selector.Path(), "--name="+pattern))
		case domain.PathOnly:
			commands = append(commands, command(a.runner(), selector.Path()))
		case domain.NameOnly:
			commands = append(commands, command(a.runner(), "--name=/"+selector.Name()+"/"))
		}
	}

	return noneIfEmpty(commands)
}

// TestCases lists the test definitions of a file
func (a *RubyMinitest) TestCases(path string) ([]domain.TestCase, error) {
	return indexTestCases(a.env, KeyRubyMinitest, path, a.cfg.TestPatterns)
}

// Runner returns the invocation prefix, detected once per adapter
func (a *RubyMinitest) Runner() string { return a.runner() }

func (a *RubyMinitest) detectRunner() string {
	switch {
	case a.cfg.Runner != "":
		return a.cfg.Runner
	case a.env.ManifestMentions("minitest"):
		return "bundle exec ruby -rminitest/autorun -Ilib:test"
	default:
		return "ruby -rminitest/autorun -Ilib:test"
	}
}

func (a *RubyMinitest) findTestPattern(path string, line int) (string, bool) {
	index, err := discovery.BuildIndex(a.env.Probe.Resolve(path), a.cfg.TestPatterns)
	if err != nil {
		a.env.Logger.Warn("cannot index test file, skipping selector",
			zap.String("path", path), zap.Int("line", line), zap.Error(err))
		return "", false
	}

	entry, ok := index.ClosestTo(line)
	if !ok {
		a.env.Logger.Warn("no test definition found, skipping selector",
			zap.String("path", path), zap.Int("line", line))
		return "", false
	}

	a.env.Logger.Debug("resolved line to test definition",
		zap.String("path", path), zap.Int("line", line), zap.Int("definition", entry.Line()))
	return formatLineMatch(entry.Content(), a.cfg.TestPatterns), true
}

var declarativeSpace = regexp.MustCompile(`\s+`)

// formatLineMatch derives a --name filter from a test definition line:
//
//	def test_foo          -> test_foo
//	test "does foo" do    -> test_does_foo
//	it "does foo" do      -> /_does foo$/
func formatLineMatch(line string, patterns []string) string {
	line = strings.TrimSpace(line)

	if strings.HasPrefix(line, "def test_") {
		name := strings.TrimPrefix(line, "def ")
		if i := strings.IndexAny(name, " (;"); i >= 0 {
			name = name[:i]
		}
		return name
	}

	if desc, ok := cutDescription(line, "test "); ok {
		return "test_" + declarativeSpace.ReplaceAllString(desc, "_")
	}

	for _, pattern := range patterns {
		if desc, ok := cutDescription(line, strings.TrimSpace(pattern)); ok {
			return "/_" + regexp.QuoteMeta(desc) + "$/"
		}
	}
	return "/_" + regexp.QuoteMeta(line) + "$/"
}

// cutDescription strips prefix and the surrounding quotes and block opener
// from a definition line, returning the quoted description.
func cutDescription(line, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(line, prefix)
	if !ok || prefix == "" {
		return "", false
	}

	rest = strings.TrimLeft(rest, `"'`)
	rest = strings.TrimSuffix(rest, "{")
	rest = strings.TrimSuffix(strings.TrimSpace(rest), " do")
	rest = strings.TrimSpace(rest)
	rest = strings.TrimRight(rest, `"'`)
	return rest, true
}
