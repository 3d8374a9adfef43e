package commands

import (
	"github.com/spf13/cobra"

	"ttest/internal/config"
)

// RunCommand resolves selectors into commands and executes them
type RunCommand struct {
	config *config.Config
	deps   *Deps
}

// NewRunCommand creates a new RunCommand
func NewRunCommand(cfg *config.Config, deps *Deps) *RunCommand {
	return &RunCommand{config: cfg, deps: deps}
}

// Execute runs the command
func (rc *RunCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return cmd.Help()
	}

	// Parse errors abort before anything runs
	selectors, err := rc.deps.Parser.ParseAll(args)
	if err != nil {
		return err
	}

	plan := rc.deps.Dispatcher.Plan(selectors)

	if rc.config.Flags.DryRun {
		rc.deps.Formatter.PrintPlan(plan)
		return nil
	}

	return rc.deps.execute(cmd.Context(), args, plan)
}
