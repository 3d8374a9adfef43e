package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

// ProgressBar shows how many of the planned commands have finished
type ProgressBar struct {
	bar *progressbar.ProgressBar
	out io.Writer
}

// NewProgressBar creates a progress bar over count commands
func NewProgressBar(count int, out io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(describe(0, 0)),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(out),
	)

	return &ProgressBar{bar: bar, out: out}
}

// Update redraws the bar. It ends the line so the next command's output starts clean.
func (p *ProgressBar) Update(passed, failed int) {
	p.bar.Describe(describe(passed, failed))
	_ = p.bar.Set(passed + failed)
	fmt.Fprintln(p.out)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	_ = p.bar.Finish()
}

func describe(passed, failed int) string {
	return color.CyanString("Commands: ") +
		color.GreenString("[passed: %d", passed) +
		" | " +
		color.RedString("failed: %d]", failed)
}
