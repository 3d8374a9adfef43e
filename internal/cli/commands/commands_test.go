package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"ttest/internal/cli"
	"ttest/internal/config"
	"ttest/internal/discovery"
	"ttest/internal/execution"
	"ttest/internal/storage"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// rspecProject lays out a project whose rspec runner is replaced by runner
func rspecProject(t *testing.T, runner string) string {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "Gemfile", "gem 'rspec'\n")
	writeFile(t, dir, "spec/foo_spec.rb", "describe Foo do\n  it \"works\" do\n  end\nend\n")
	writeFile(t, dir, "lib/foo.rb", "class Foo; end\n")
	if runner != "" {
		writeFile(t, dir, "ttest.toml", "[adapter.ruby_rspec]\nrunner = \""+runner+"\"\n")
	}
	return dir
}

func execute(t *testing.T, args ...string) (string, *config.Config, error) {
	t.Helper()
	color.NoColor = true

	cfg := config.New()
	var flags cli.Flags
	cmds := NewCommands(cfg)

	out := &bytes.Buffer{}
	cmds.Deps.SetOutput(out, out)

	root := &cobra.Command{Use: "ttest", SilenceUsage: true, SilenceErrors: true}
	cmds.Register(root, &flags, cfg, func(bool) (*zap.Logger, error) {
		return zaptest.NewLogger(t), nil
	})
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), cfg, err
}

func TestRunDryRun(t *testing.T) {
	dir := rspecProject(t, "")

	out, _, err := execute(t, "-C", dir, "run", "--dry-run", "spec/foo_spec.rb:2")
	require.NoError(t, err)
	assert.Contains(t, out, "1 command(s) would run:")
	assert.Contains(t, out, "[ruby_rspec] bundle exec rspec spec/foo_spec.rb:2")
}

func TestRootRunsSelectors(t *testing.T) {
	dir := rspecProject(t, "")

	out, _, err := execute(t, "-C", dir, "-n", "spec/foo_spec.rb")
	require.NoError(t, err)
	assert.Contains(t, out, "bundle exec rspec spec/foo_spec.rb")
}

func TestRunParseError(t *testing.T) {
	dir := rspecProject(t, "")

	_, _, err := execute(t, "-C", dir, "run", "spec/missing_spec.rb:3")
	require.Error(t, err)
	assert.ErrorIs(t, err, discovery.ErrFileNotFound)
}

func TestRunRecordsLastRun(t *testing.T) {
	dir := rspecProject(t, "true")

	_, cfg, err := execute(t, "-C", dir, "run", "spec/foo_spec.rb:2")
	require.NoError(t, err)

	record, err := storage.NewJSONStorage(cfg).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"spec/foo_spec.rb:2"}, record.Selectors)
	require.Len(t, record.Commands, 1)
	assert.Equal(t, "true spec/foo_spec.rb:2", record.Commands[0].Command)
	assert.True(t, record.Commands[0].Success)
	assert.False(t, record.Failed())

	out, _, err := execute(t, "-C", dir, "last", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "[ruby_rspec] true spec/foo_spec.rb:2")
}

func TestRunPropagatesExitCode(t *testing.T) {
	dir := rspecProject(t, "false")

	_, _, err := execute(t, "-C", dir, "run", "spec/foo_spec.rb")
	require.Error(t, err)

	var cmdErr *execution.CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 1, cmdErr.ExitCode)
	assert.Equal(t, "false spec/foo_spec.rb", cmdErr.Command)
}

func TestLastWithoutPreviousRun(t *testing.T) {
	dir := rspecProject(t, "")

	_, _, err := execute(t, "-C", dir, "last")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no previous run")
}

func TestListDirectory(t *testing.T) {
	dir := rspecProject(t, "")

	out, _, err := execute(t, "-C", dir, "list", "spec")
	require.NoError(t, err)
	assert.Contains(t, out, "spec/foo_spec.rb")
	assert.Contains(t, out, "[ruby_rspec]")
	assert.NotContains(t, out, "lib/foo.rb")
}

func TestListTestCases(t *testing.T) {
	dir := rspecProject(t, "")

	out, _, err := execute(t, "-C", dir, "list", "--test-cases", "spec/foo_spec.rb")
	require.NoError(t, err)
	assert.Contains(t, out, "spec/foo_spec.rb")
	assert.Contains(t, out, "describe Foo do")
	assert.Contains(t, out, `it "works" do`)
}

func TestListTestCasesSkipsNames(t *testing.T) {
	dir := rspecProject(t, "")

	out, _, err := execute(t, "-C", dir, "list", "--test-cases", "works")
	require.NoError(t, err)
	assert.Equal(t, "works is not a file, skipping\n", out)
}

func TestAdaptersCommand(t *testing.T) {
	dir := rspecProject(t, "")

	out, _, err := execute(t, "-C", dir, "adapters")
	require.NoError(t, err)
	assert.Contains(t, out, "ruby_rspec")
	assert.Contains(t, out, "ruby_minitest")
}

func TestUnknownAdapterFlag(t *testing.T) {
	dir := rspecProject(t, "")

	_, _, err := execute(t, "-C", dir, "--adapter", "python_pytest", "adapters")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown adapter")
}
