// Package dispatch partitions selectors among adapters and collects the
// resulting commands.
//
// Adapters are tried in registration order. A selector claimed exclusively
// is removed from the pool, so no later adapter ever sees it; a shared claim
// leaves it in place for the adapters that follow.
package dispatch

import (
	"go.uber.org/zap"

	"ttest/internal/adapter"
	"ttest/internal/domain"
)

// Dispatcher resolves selectors to commands across an ordered adapter list
type Dispatcher struct {
	adapters []adapter.Adapter
	logger   *zap.Logger
}

// NewDispatcher creates a Dispatcher, adapters are tried in the given order
func NewDispatcher(adapters []adapter.Adapter, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{adapters: adapters, logger: logger}
}

// Adapters returns the adapters in dispatch order
func (d *Dispatcher) Adapters() []adapter.Adapter {
	return d.adapters
}

// Plan returns, in adapter order, the commands each adapter produced
func (d *Dispatcher) Plan(selectors []domain.Selector) []domain.Command {
	remaining := append([]domain.Selector(nil), selectors...)
	var planned []domain.Command

	for _, a := range d.adapters {
		var claimed []domain.Selector
		claimed, remaining = d.take(a, remaining)

		if len(claimed) == 0 {
			continue
		}

		commands := a.CollectCommands(claimed)
		d.logger.Debug("adapter collected commands",
			zap.String("adapter", a.Key()),
			zap.Int("selectors", len(claimed)),
			zap.Int("commands", len(commands)))

		for _, line := range commands {
			planned = append(planned, domain.Command{Adapter: a.Key(), Line: line})
		}
	}

	return planned
}

// Dispatch returns the ordered command strings for selectors
func (d *Dispatcher) Dispatch(selectors []domain.Selector) []string {
	planned := d.Plan(selectors)
	lines := make([]string, len(planned))
	for i, c := range planned {
		lines[i] = c.Line
	}
	return lines
}

// take splits selectors into the ones a claims, in original order, and the
// ones that stay available to later adapters.
func (d *Dispatcher) take(a adapter.Adapter, selectors []domain.Selector) (claimed, remaining []domain.Selector) {
	remaining = selectors[:0:0]
	for _, selector := range selectors {
		match := a.SelectorMatches(selector)
		d.logger.Debug("selector verdict",
			zap.String("adapter", a.Key()),
			zap.Stringer("selector", selector),
			zap.Stringer("match", match))

		switch match {
		case domain.MatchExclusive:
			claimed = append(claimed, selector)
		case domain.MatchShared:
			claimed = append(claimed, selector)
			remaining = append(remaining, selector)
		default:
			remaining = append(remaining, selector)
		}
	}
	return claimed, remaining
}
