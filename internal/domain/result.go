package domain

import "time"

// Command is a single shell command produced by an adapter
type Command struct {
	Adapter string // Key of the adapter that produced it
	Line    string // Shell ready command string
}

// CommandResult is the outcome of executing one Command
type CommandResult struct {
	Command  Command
	ExitCode int
	Success  bool
	Error    error
	Duration time.Duration
}

// RunRecord is the persisted summary of a run, used by `last` and `show`
type RunRecord struct {
	Selectors []string        `json:"selectors"`
	Commands  []CommandRecord `json:"commands"`
	Duration  string          `json:"duration"`
	Timestamp string          `json:"timestamp"`
}

// CommandRecord is one executed (or skipped) command inside a RunRecord
type CommandRecord struct {
	Adapter         string  `json:"adapter"`
	Command         string  `json:"command"`
	ExitCode        int     `json:"exit_code"`
	Success         bool    `json:"success"`
	Skipped         bool    `json:"skipped,omitempty"` // Not started because an earlier command failed
	Error           string  `json:"error,omitempty"`
	DurationSeconds float64 `json:"duration_seconds"`
}

// Failed reports whether any command in the record failed
func (r *RunRecord) Failed() bool {
	for _, c := range r.Commands {
		if !c.Success && !c.Skipped {
			return true
		}
	}
	return false
}
