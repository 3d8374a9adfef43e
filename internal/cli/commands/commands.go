package commands

import (
	"ttest/internal/cli"
	"ttest/internal/config"
	"ttest/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// LoggerFactory builds the process logger once flags are known
type LoggerFactory func(verbose bool) (*zap.Logger, error)

// Commands holds all CLI commands
type Commands struct {
	Deps     *Deps
	Run      *RunCommand
	List     *ListCommand
	Adapters *AdaptersCommand
	Last     *LastCommand
	Show     *ShowCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	deps := NewDeps(cfg)

	return &Commands{
		Deps:     deps,
		Run:      NewRunCommand(cfg, deps),
		List:     NewListCommand(cfg, deps),
		Adapters: NewAdaptersCommand(cfg, deps),
		Last:     NewLastCommand(cfg, deps),
		Show:     NewShowCommand(cfg, deps, ui.NewRunViewer()),
	}
}

// Register registers all commands with cobra. Selectors given to the root
// command are run directly, so `ttest spec/foo_spec.rb:12` works without
// naming a subcommand.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config, newLogger LoggerFactory) {
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		if err := cfg.Apply(flags.ToConfigFlags()); err != nil {
			return err
		}
		logger, err := newLogger(flags.Verbose)
		if err != nil {
			return err
		}
		return c.Deps.Init(logger)
	}

	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.RunE = c.Run.Execute

	rootCmd.PersistentFlags().StringVarP(&flags.ProjectPath, "project", "C", config.DefaultProjectPath, "Project root the selectors are relative to")
	rootCmd.PersistentFlags().StringVar(&flags.ConfigFile, "config", "", "Path to a ttest.toml config file")
	rootCmd.PersistentFlags().StringArrayVar(&flags.EnvFiles, "env-file", nil, "Env file to load before running commands (repeatable)")
	rootCmd.PersistentFlags().StringSliceVarP(&flags.Adapters, "adapter", "a", nil, "Adapters to dispatch to, in order (default: all)")
	rootCmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Print the commands instead of running them")

	// Run command
	runCmd := &cobra.Command{
		Use:   "run [selectors...]",
		Short: "Run the tests named by the selectors",
		Long:  "Resolve file, file:line and test-name selectors into test runner commands and execute them in order, stopping at the first failure",
		RunE:  c.Run.Execute,
	}
	runCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Print the commands instead of running them")
	rootCmd.AddCommand(runCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list [selectors or directories...]",
		Short: "List test files or planned commands",
		Long:  "Show the test files under a directory and the adapters that claim them, or the commands a set of selectors resolves to",
		RunE:  c.List.Execute,
	}
	listCmd.Flags().StringVarP(&flags.NameFilter, "filter", "f", "", "Filter test files by name pattern (supports wildcards, e.g., '*_spec.rb' or '*user*')")
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List test cases of the given files instead of commands")
	rootCmd.AddCommand(listCmd)

	// Adapters command
	adaptersCmd := &cobra.Command{
		Use:   "adapters",
		Short: "List the adapters in dispatch order",
		Args:  cobra.NoArgs,
		RunE:  c.Adapters.Execute,
	}
	rootCmd.AddCommand(adaptersCmd)

	// Last command
	lastCmd := &cobra.Command{
		Use:   "last",
		Short: "Re-run the commands of the previous run",
		Args:  cobra.NoArgs,
		RunE:  c.Last.Execute,
	}
	lastCmd.Flags().BoolVarP(&flags.DryRun, "dry-run", "n", false, "Print the commands instead of running them")
	rootCmd.AddCommand(lastCmd)

	// Show command
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Browse the previous run interactively",
		Args:  cobra.NoArgs,
		RunE:  c.Show.Execute,
	}
	rootCmd.AddCommand(showCmd)
}
