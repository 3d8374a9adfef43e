package execution

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ttest/internal/config"
	"ttest/internal/domain"
)

func newTestRunner(t *testing.T, cfg *config.Config) (*Runner, *bytes.Buffer) {
	t.Helper()
	runner, err := NewRunner(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)

	var out bytes.Buffer
	runner.SetOutput(&out, &out)
	runner.stdin = nil
	return runner, &out
}

func projectConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.ProjectPath = t.TempDir()
	return cfg
}

func TestRunner_Run(t *testing.T) {
	cfg := projectConfig(t)
	runner, out := newTestRunner(t, cfg)
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		result := runner.Run(ctx, domain.Command{Adapter: "a", Line: "true"})
		assert.True(t, result.Success)
		assert.Equal(t, 0, result.ExitCode)
		assert.NoError(t, result.Error)
	})

	t.Run("exit status is reported", func(t *testing.T) {
		result := runner.Run(ctx, domain.Command{Line: "sh -c 'exit 3'"})
		assert.False(t, result.Success)
		assert.Equal(t, 3, result.ExitCode)
		assert.Error(t, result.Error)
	})

	t.Run("arguments are shell split", func(t *testing.T) {
		out.Reset()
		result := runner.Run(ctx, domain.Command{Line: "printf '%s|' 'two words' three"})
		require.True(t, result.Success)
		assert.Equal(t, "two words|three|", out.String())
	})

	t.Run("runs in project directory", func(t *testing.T) {
		out.Reset()
		require.True(t, runner.Run(ctx, domain.Command{Line: "pwd"}).Success)
		expected, err := filepath.EvalSymlinks(cfg.ProjectPath)
		require.NoError(t, err)
		actual, err := filepath.EvalSymlinks(string(bytes.TrimSpace(out.Bytes())))
		require.NoError(t, err)
		assert.Equal(t, expected, actual)
	})

	t.Run("missing executable", func(t *testing.T) {
		result := runner.Run(ctx, domain.Command{Line: "ttest-no-such-binary --flag"})
		assert.False(t, result.Success)
		assert.Equal(t, -1, result.ExitCode)
		assert.Error(t, result.Error)
	})

	t.Run("unbalanced quotes", func(t *testing.T) {
		result := runner.Run(ctx, domain.Command{Line: "echo 'oops"})
		assert.False(t, result.Success)
		assert.Error(t, result.Error)
	})

	t.Run("empty command", func(t *testing.T) {
		result := runner.Run(ctx, domain.Command{Line: "   "})
		assert.False(t, result.Success)
		assert.Error(t, result.Error)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("default env file is optional", func(t *testing.T) {
		cfg := projectConfig(t)
		env, err := LoadEnv(cfg, zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.Equal(t, len(os.Environ()), len(env))
	})

	t.Run("default env file is loaded when present", func(t *testing.T) {
		cfg := projectConfig(t)
		require.NoError(t, os.WriteFile(filepath.Join(cfg.ProjectPath, ".env.test"), []byte("RAILS_ENV=test\nTTEST_B=2\n"), 0644))

		env, err := LoadEnv(cfg, zaptest.NewLogger(t))
		require.NoError(t, err)
		assert.Subset(t, env, []string{"RAILS_ENV=test", "TTEST_B=2"})
	})

	t.Run("explicit env file must exist", func(t *testing.T) {
		cfg := projectConfig(t)
		cfg.EnvFiles = []string{".env.ci"}
		cfg.RequiredEnvFiles = true

		_, err := LoadEnv(cfg, zaptest.NewLogger(t))
		assert.Error(t, err)
	})

	t.Run("env reaches the child process", func(t *testing.T) {
		cfg := projectConfig(t)
		require.NoError(t, os.WriteFile(filepath.Join(cfg.ProjectPath, ".env.test"), []byte("TTEST_GREETING=hello\n"), 0644))
		runner, out := newTestRunner(t, cfg)

		result := runner.Run(context.Background(), domain.Command{Line: `sh -c 'printf "$TTEST_GREETING"'`})
		require.True(t, result.Success)
		assert.Equal(t, "hello", out.String())
	})
}
