package commands

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"ttest/internal/config"
	"ttest/internal/domain"
	"ttest/internal/ui"
)

// ListCommand shows what a run would do without executing anything
type ListCommand struct {
	config *config.Config
	deps   *Deps
}

// NewListCommand creates a new ListCommand
func NewListCommand(cfg *config.Config, deps *Deps) *ListCommand {
	return &ListCommand{config: cfg, deps: deps}
}

// Execute runs the command. Directories (or no arguments) list the test
// files found and the adapters claiming them; anything else prints the
// commands its selectors resolve to.
func (lc *ListCommand) Execute(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"."}
	}

	if lc.allDirectories(args) {
		return lc.listFiles(args)
	}

	selectors, err := lc.deps.Parser.ParseAll(args)
	if err != nil {
		return err
	}

	if lc.config.Flags.TestCases {
		return lc.listTestCases(selectors)
	}

	lc.deps.Formatter.PrintPlan(lc.deps.Dispatcher.Plan(selectors))
	return nil
}

func (lc *ListCommand) allDirectories(args []string) bool {
	for _, arg := range args {
		info, err := os.Stat(lc.deps.Probe.Resolve(arg))
		if err != nil || !info.IsDir() {
			return false
		}
	}
	return true
}

func (lc *ListCommand) listFiles(dirs []string) error {
	var claims []ui.FileClaim

	for _, dir := range dirs {
		files, err := lc.deps.Scanner.Scan(dir)
		if err != nil {
			return err
		}
		files = lc.deps.Filter.FilterByName(files, lc.config.Flags.NameFilter)

		for _, file := range files {
			if adapters := lc.claimants(domain.NewPathOnly(file)); len(adapters) > 0 {
				claims = append(claims, ui.FileClaim{Path: file, Adapters: adapters})
			}
		}
	}

	lc.deps.Formatter.PrintFileClaims(claims)
	return nil
}

func (lc *ListCommand) listTestCases(selectors []domain.Selector) error {
	for _, selector := range selectors {
		if !selector.HasPath() {
			color.New(color.FgYellow).Fprintf(lc.deps.out, "%s is not a file, skipping\n", selector)
			continue
		}

		var cases []domain.TestCase
		for _, a := range lc.deps.Dispatcher.Adapters() {
			if a.SelectorMatches(selector) == domain.MatchNone {
				continue
			}
			found, err := a.TestCases(selector.Path())
			if err != nil {
				return err
			}
			cases = append(cases, found...)
		}
		lc.deps.Formatter.PrintTestCases(selector.Path(), cases)
	}
	return nil
}

// claimants returns the keys of the adapters that would receive selector,
// following the same exclusivity rules as a run
func (lc *ListCommand) claimants(selector domain.Selector) []string {
	var keys []string
	for _, a := range lc.deps.Dispatcher.Adapters() {
		match := a.SelectorMatches(selector)
		if match == domain.MatchNone {
			continue
		}
		keys = append(keys, a.Key())
		if match == domain.MatchExclusive {
			break
		}
	}
	return keys
}
