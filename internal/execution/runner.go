package execution

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"sort"
	"time"

	"github.com/joho/godotenv"
	shellquote "github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"ttest/internal/config"
	"ttest/internal/domain"
)

// Runner executes a single command as a child process attached to the terminal
type Runner struct {
	dir    string
	env    []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
	logger *zap.Logger
}

// NewRunner creates a Runner working in the project directory with the
// configured env files merged over the current environment
func NewRunner(cfg *config.Config, logger *zap.Logger) (*Runner, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	env, err := LoadEnv(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Runner{
		dir:    cfg.ProjectPath,
		env:    env,
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
		logger: logger,
	}, nil
}

// SetOutput redirects the child process output, used by tests
func (r *Runner) SetOutput(stdout, stderr io.Writer) {
	r.stdout = stdout
	r.stderr = stderr
}

// Run splits the command into shell words and waits for the process to exit
func (r *Runner) Run(ctx context.Context, command domain.Command) domain.CommandResult {
	start := time.Now()
	result := domain.CommandResult{Command: command, ExitCode: -1}

	words, err := shellquote.Split(command.Line)
	if err != nil {
		result.Error = fmt.Errorf("split command: %w", err)
		return result
	}
	if len(words) == 0 {
		result.Error = errors.New("empty command")
		return result
	}

	cmd := exec.CommandContext(ctx, words[0], words[1:]...)
	cmd.Dir = r.dir
	cmd.Env = r.env
	cmd.Stdin = r.stdin
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	r.logger.Debug("starting process", zap.Strings("argv", words), zap.String("dir", r.dir))
	err = cmd.Run()
	result.Duration = time.Since(start)

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.ExitCode = 0
		result.Success = true
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		result.Error = err
	default:
		result.Error = err
	}
	return result
}

// LoadEnv returns the current environment with the configured env files
// applied on top. Missing files are skipped unless they were named explicitly.
func LoadEnv(cfg *config.Config, logger *zap.Logger) ([]string, error) {
	env := os.Environ()

	for _, name := range cfg.EnvFiles {
		path := cfg.ResolvePath(name)
		vars, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) && !cfg.RequiredEnvFiles {
				continue
			}
			return nil, fmt.Errorf("load env file %s: %w", name, err)
		}

		keys := make([]string, 0, len(vars))
		for key := range vars {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			env = append(env, key+"="+vars[key])
		}
		logger.Debug("loaded env file", zap.String("path", path), zap.Int("vars", len(vars)))
	}

	return env, nil
}
