package ui

import (
	"io"

	"github.com/fatih/color"

	"ttest/internal/domain"
)

// Reporter announces each command before it runs and tracks progress.
// It implements execution.Observer.
type Reporter struct {
	out      io.Writer
	progress *ProgressBar
	passed   int
	failed   int
}

// NewReporter creates a Reporter writing to out. A progress bar is shown
// between commands when more than one command is planned.
func NewReporter(out io.Writer, total int) *Reporter {
	r := &Reporter{out: out}
	if total > 1 {
		r.progress = NewProgressBar(total, out)
	}
	return r
}

// Started prints the command about to run
func (r *Reporter) Started(index, total int, command domain.Command) {
	color.New(color.FgCyan).Fprint(r.out, "Running command: ")
	color.New(color.Bold).Fprintln(r.out, command.Line)
}

// Finished records the result and redraws the progress bar. The bar is
// completed after the last command; a failure earlier leaves it partial.
func (r *Reporter) Finished(index, total int, result domain.CommandResult) {
	if result.Success {
		r.passed++
	} else {
		r.failed++
	}
	if r.progress == nil {
		return
	}
	r.progress.Update(r.passed, r.failed)
	if index == total-1 {
		r.progress.Finish()
	}
}
