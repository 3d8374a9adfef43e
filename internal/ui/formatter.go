package ui

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"ttest/internal/adapter"
	"ttest/internal/config"
	"ttest/internal/domain"
)

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
}

// NewFormatter creates a new Formatter writing to out
func NewFormatter(cfg *config.Config, out io.Writer) *Formatter {
	return &Formatter{config: cfg, out: out}
}

// FileClaim pairs a scanned file with the adapters that would claim it
type FileClaim struct {
	Path     string
	Adapters []string
}

var (
	cyan   = color.New(color.FgCyan)
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed)
	gray   = color.New(color.FgHiBlack)
)

// PrintPlan prints the commands a run would execute, in execution order
func (f *Formatter) PrintPlan(plan []domain.Command) {
	if len(plan) == 0 {
		yellow.Fprintln(f.out, "No commands to run")
		return
	}

	green.Fprintf(f.out, "%d command(s) would run:\n", len(plan))
	for i, command := range plan {
		cyan.Fprintf(f.out, "%s[%s] ", branch(i, len(plan)), command.Adapter)
		fmt.Fprintln(f.out, command.Line)
	}
}

// PrintAdapters prints the adapters in dispatch order with their settings
func (f *Formatter) PrintAdapters(adapters []adapter.Adapter) {
	w := tabwriter.NewWriter(f.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tADAPTER\tRUNNER\tFILE PATTERNS")

	for i, a := range adapters {
		runner := "-"
		if r, ok := a.(interface{ Runner() string }); ok {
			runner = r.Runner()
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%v\n", i+1, a.Key(), runner, f.config.Adapter(a.Key()).FilePatterns)
	}
	w.Flush()

	if f.config.ConfigFile != "" {
		gray.Fprintf(f.out, "\nconfig: %s\n", f.config.ConfigFile)
	}
}

// PrintFileClaims prints scanned files and the adapters claiming each of them
func (f *Formatter) PrintFileClaims(claims []FileClaim) {
	if len(claims) == 0 {
		yellow.Fprintln(f.out, "No test files found")
		return
	}

	green.Fprintf(f.out, "Found %d test file(s):\n", len(claims))
	for i, claim := range claims {
		cyan.Fprintf(f.out, "%s%s", branch(i, len(claims)), claim.Path)
		gray.Fprintf(f.out, " %v\n", claim.Adapters)
	}
}

// PrintTestCases prints the test definitions found in a file
func (f *Formatter) PrintTestCases(path string, cases []domain.TestCase) {
	cyan.Fprintln(f.out, path)
	if len(cases) == 0 {
		red.Fprintln(f.out, "└── (no test cases found)")
		return
	}
	for i, tc := range cases {
		fmt.Fprint(f.out, branch(i, len(cases)))
		yellow.Fprintf(f.out, "%4d", tc.Line)
		fmt.Fprintf(f.out, "  %s", tc.Text)
		gray.Fprintf(f.out, "  (%s)\n", tc.Adapter)
	}
}

// PrintSummary prints the outcome of a run
func (f *Formatter) PrintSummary(planned int, results []domain.CommandResult, duration time.Duration) {
	passed, failed := 0, 0
	for _, r := range results {
		if r.Success {
			passed++
		} else {
			failed++
		}
	}
	skipped := planned - len(results)

	fmt.Fprintln(f.out)
	fmt.Fprintf(f.out, "Commands: %d  ", planned)
	green.Fprintf(f.out, "passed: %d  ", passed)
	red.Fprintf(f.out, "failed: %d  ", failed)
	yellow.Fprintf(f.out, "skipped: %d  ", skipped)
	fmt.Fprintf(f.out, "(%s)\n", duration.Round(time.Millisecond))

	if failed == 0 {
		green.Fprintln(f.out, "✓ All commands passed!")
		return
	}
	for _, r := range results {
		if !r.Success {
			red.Fprintf(f.out, "✗ [%s] %s (exit %d)\n", r.Command.Adapter, r.Command.Line, r.ExitCode)
		}
	}
}

func branch(i, n int) string {
	if i == n-1 {
		return "└── "
	}
	return "├── "
}
