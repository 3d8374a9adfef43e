package adapter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ttest/internal/config"
	"ttest/internal/domain"
)

const defSyntax = `
              class MyTest < Minitest::Test
                def test_something
                  assert true
                end

                def test_something_else
                  assert true
                end
              end
            `

const specSyntax = `
              describe "MyTest" do
                it "does something" do
                  assert true
                end

                it "does something else" do
                  assert true
                end
              end
            `

func TestRubyMinitest_CollectCommands_PathWithLineNumber(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		line     int
		expected string
	}{
		{
			name:     "def syntax, line inside first test",
			content:  defSyntax,
			line:     4,
			expected: "ruby -rminitest/autorun -Ilib:test my_test.rb --name=test_something",
		},
		{
			name:     "def syntax, line closer to the later test",
			content:  defSyntax,
			line:     6,
			expected: "ruby -rminitest/autorun -Ilib:test my_test.rb --name=test_something_else",
		},
		{
			name:     "spec syntax, line inside first test",
			content:  specSyntax,
			line:     4,
			expected: "ruby -rminitest/autorun -Ilib:test my_test.rb '--name=/_does something$/'",
		},
		{
			name:     "spec syntax, on the later definition",
			content:  specSyntax,
			line:     7,
			expected: "ruby -rminitest/autorun -Ilib:test my_test.rb '--name=/_does something else$/'",
		},
		{
			name:     "declarative syntax",
			content:  "class MyTest < ActiveSupport::TestCase\n  test \"does something\" do\n  end\nend\n",
			line:     3,
			expected: "ruby -rminitest/autorun -Ilib:test my_test.rb --name=test_does_something",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newProject(t)
			p.writeFile("my_test.rb", tt.content)

			commands := p.minitest().CollectCommands([]domain.Selector{domain.NewPathWithLineNumber("my_test.rb", tt.line)})
			assert.Equal(t, []string{tt.expected}, commands)
		})
	}
}

func TestRubyMinitest_CollectCommands(t *testing.T) {
	t.Run("path only and name only", func(t *testing.T) {
		p := newProject(t)
		p.writeFile("Gemfile", "gem 'minitest'")
		commands := p.minitest().CollectCommands([]domain.Selector{
			domain.NewPathOnly("test/a_test.rb"),
			domain.NewNameOnly("foo"),
			domain.NewPathOnly("test/b_test.rb"),
		})
		assert.Equal(t, []string{
			"bundle exec ruby -rminitest/autorun -Ilib:test test/a_test.rb",
			"bundle exec ruby -rminitest/autorun -Ilib:test --name=/foo/",
			"bundle exec ruby -rminitest/autorun -Ilib:test test/b_test.rb",
		}, commands)
	})

	t.Run("unreadable file is skipped", func(t *testing.T) {
		p := newProject(t)
		commands := p.minitest().CollectCommands([]domain.Selector{
			domain.NewPathWithLineNumber("gone_test.rb", 3),
			domain.NewPathOnly("test/a_test.rb"),
		})
		assert.Equal(t, []string{"ruby -rminitest/autorun -Ilib:test test/a_test.rb"}, commands)
	})

	t.Run("file without definitions yields nothing", func(t *testing.T) {
		p := newProject(t)
		p.writeFile("empty_test.rb", "# nothing here\n")
		commands := p.minitest().CollectCommands([]domain.Selector{domain.NewPathWithLineNumber("empty_test.rb", 1)})
		assert.Nil(t, commands)
	})

	t.Run("configured runner", func(t *testing.T) {
		p := newProject(t)
		cfg := config.DefaultAdapterConfigs()[KeyRubyMinitest]
		cfg.Runner = "bin/rails test"
		commands := NewRubyMinitest(p.env, cfg).CollectCommands([]domain.Selector{domain.NewPathOnly("test/a_test.rb")})
		assert.Equal(t, []string{"bin/rails test test/a_test.rb"}, commands)
	})
}

func TestRubyMinitest_SelectorMatches(t *testing.T) {
	t.Run("without minitest in gemfile", func(t *testing.T) {
		p := newProject(t)
		p.writeFile("Gemfile", "gem 'rspec'")
		a := p.minitest()
		assert.Equal(t, domain.MatchNone, a.SelectorMatches(domain.NewPathOnly("test/a_test.rb")))
		assert.Equal(t, domain.MatchNone, a.SelectorMatches(domain.NewNameOnly("foo")))
	})

	t.Run("with minitest in gemfile", func(t *testing.T) {
		p := newProject(t)
		p.writeFile("Gemfile", "gem 'minitest'")
		a := p.minitest()
		assert.Equal(t, domain.MatchExclusive, a.SelectorMatches(domain.NewPathOnly("test/a_test.rb")))
		assert.Equal(t, domain.MatchExclusive, a.SelectorMatches(domain.NewPathWithLineNumber("test/a_test.rb", 2)))
		assert.Equal(t, domain.MatchNone, a.SelectorMatches(domain.NewPathOnly("test/fixtures/a.yml")))
		assert.Equal(t, domain.MatchShared, a.SelectorMatches(domain.NewNameOnly("foo")))
	})
}

func TestRubyMinitest_Runner(t *testing.T) {
	p := newProject(t)
	assert.Equal(t, "ruby -rminitest/autorun -Ilib:test", p.minitest().Runner())

	p.writeFile("Gemfile", "gem 'minitest'")
	assert.Equal(t, "bundle exec ruby -rminitest/autorun -Ilib:test", p.minitest().Runner())
}

func TestFormatLineMatch(t *testing.T) {
	patterns := config.DefaultAdapterConfigs()[KeyRubyMinitest].TestPatterns

	tests := []struct {
		line     string
		expected string
	}{
		{line: "  def test_foo", expected: "test_foo"},
		{line: "  def test_foo; assert true; end", expected: "test_foo"},
		{line: `  it "adds numbers" do`, expected: "/_adds numbers$/"},
		{line: "  it 'adds numbers' do", expected: "/_adds numbers$/"},
		{line: `  it "handles a.b (twice)?" do`, expected: `/_handles a\.b \(twice\)\?$/`},
		{line: `  test "adds  numbers" do`, expected: "test_adds_numbers"},
		{line: "  test 'adds numbers' do", expected: "test_adds_numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatLineMatch(tt.line, patterns))
		})
	}
}
