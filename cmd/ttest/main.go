package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"ttest/internal/cli"
	"ttest/internal/cli/commands"
	"ttest/internal/config"
	"ttest/internal/execution"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:           "ttest [selectors...]",
		Short:         "Run tests by file, line or name",
		Long:          `Point at a test file, a line inside one, or a test name, and ttest works out which test framework owns it and runs the matching command.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	// Create commands with dependencies
	cmds := commands.NewCommands(cfg)

	// Register all commands
	cmds.Register(rootCmd, &flags, cfg, newLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Execute root command
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		var cmdErr *execution.CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode > 0 {
			os.Exit(cmdErr.ExitCode)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	zcfg.DisableStacktrace = true
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zcfg.Build()
}
