package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"ttest/internal/config"
	"ttest/internal/domain"
	"ttest/internal/ui"
)

// LastCommand re-runs the commands of the previous run
type LastCommand struct {
	config *config.Config
	deps   *Deps
}

// NewLastCommand creates a new LastCommand
func NewLastCommand(cfg *config.Config, deps *Deps) *LastCommand {
	return &LastCommand{config: cfg, deps: deps}
}

// Execute runs the command
func (lc *LastCommand) Execute(cmd *cobra.Command, args []string) error {
	record, err := lc.deps.Storage.Load()
	if err != nil {
		return fmt.Errorf("no previous run: %w", err)
	}

	plan := make([]domain.Command, len(record.Commands))
	for i, c := range record.Commands {
		plan[i] = domain.Command{Adapter: c.Adapter, Line: c.Command}
	}

	if lc.config.Flags.DryRun {
		lc.deps.Formatter.PrintPlan(plan)
		return nil
	}

	return lc.deps.execute(cmd.Context(), record.Selectors, plan)
}

// ShowCommand opens the interactive viewer on the previous run
type ShowCommand struct {
	config *config.Config
	deps   *Deps
	viewer ui.Viewer
}

// NewShowCommand creates a new ShowCommand
func NewShowCommand(cfg *config.Config, deps *Deps, viewer ui.Viewer) *ShowCommand {
	return &ShowCommand{config: cfg, deps: deps, viewer: viewer}
}

// Execute runs the command
func (sc *ShowCommand) Execute(cmd *cobra.Command, args []string) error {
	record, err := sc.deps.Storage.Load()
	if err != nil {
		return fmt.Errorf("no previous run: %w", err)
	}
	return sc.viewer.View(record)
}
