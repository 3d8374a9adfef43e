package commands

import (
	"github.com/spf13/cobra"

	"ttest/internal/config"
)

// AdaptersCommand prints the adapters in dispatch order
type AdaptersCommand struct {
	config *config.Config
	deps   *Deps
}

// NewAdaptersCommand creates a new AdaptersCommand
func NewAdaptersCommand(cfg *config.Config, deps *Deps) *AdaptersCommand {
	return &AdaptersCommand{config: cfg, deps: deps}
}

// Execute runs the command
func (ac *AdaptersCommand) Execute(cmd *cobra.Command, args []string) error {
	ac.deps.Formatter.PrintAdapters(ac.deps.Dispatcher.Adapters())
	return nil
}
