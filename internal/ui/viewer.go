package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"ttest/internal/domain"
)

// Viewer displays a run record interactively
type Viewer interface {
	View(record *domain.RunRecord) error
}

// RunViewer shows the last run in a two pane TUI: commands on the left, details on the right
type RunViewer struct{}

// NewRunViewer creates a new RunViewer
func NewRunViewer() *RunViewer {
	return &RunViewer{}
}

// View opens the viewer and blocks until the user quits
func (v *RunViewer) View(record *domain.RunRecord) error {
	if len(record.Commands) == 0 {
		color.Yellow("The last run had no commands")
		return nil
	}

	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	for i, c := range record.Commands {
		list.AddItem(listItemText(i, c), "", 0, nil)
	}
	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true).
		SetText(headerText(record))

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(record.Commands) {
			detailsView.SetText(formatCommandDetails(record.Commands[index], index+1))
		}
	}

	list.SetChangedFunc(func(int, string, string, rune) { updateDetails() })
	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyRune:
			if event.Rune() == 'q' {
				app.Stop()
				return nil
			}
		}
		return event
	})
	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		}
		return event
	})
	updateDetails()

	panes := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsView, 0, 2, false)

	layout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 2, 0, false).
		AddItem(panes, 0, 1, true)

	if err := app.SetRoot(layout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func headerText(record *domain.RunRecord) string {
	return fmt.Sprintf(" Last run %s (%s) | %s\n ↑↓ navigate, → details, ← back, q or Ctrl+C to exit ",
		record.Timestamp, record.Duration, tview.Escape(strings.Join(record.Selectors, " ")))
}

func listItemText(index int, c domain.CommandRecord) string {
	marker := "[green]✓"
	switch {
	case c.Skipped:
		marker = "[gray]–"
	case !c.Success:
		marker = "[red]✗"
	}
	return fmt.Sprintf("%s [yellow]%d.[white] %s", marker, index+1, tview.Escape(c.Command))
}

// formatCommandDetails formats a command record using tview color tags
func formatCommandDetails(c domain.CommandRecord, number int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[cyan]Command %d:[white] %s\n\n", number, tview.Escape(c.Command))
	fmt.Fprintf(&b, "[yellow]Adapter:[white] %s\n", c.Adapter)

	switch {
	case c.Skipped:
		b.WriteString("[gray]Not run, an earlier command failed[white]\n")
	case c.Success:
		fmt.Fprintf(&b, "[green]Passed[white] in %.2fs\n", c.DurationSeconds)
	default:
		fmt.Fprintf(&b, "[red]Failed[white] with exit code %d after %.2fs\n", c.ExitCode, c.DurationSeconds)
	}

	if c.Error != "" {
		fmt.Fprintf(&b, "\n[yellow]Error:[white]\n%s\n", tview.Escape(c.Error))
	}
	return b.String()
}
