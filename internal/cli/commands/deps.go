package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"ttest/internal/adapter"
	"ttest/internal/config"
	"ttest/internal/discovery"
	"ttest/internal/dispatch"
	"ttest/internal/domain"
	"ttest/internal/execution"
	"ttest/internal/storage"
	"ttest/internal/ui"
)

// Deps holds the components shared by every command. They depend on the
// final config, so they are wired in Init once flags are parsed.
type Deps struct {
	config *config.Config
	logger *zap.Logger
	out    io.Writer
	errOut io.Writer

	Probe      *discovery.FSProbe
	Parser     *discovery.SelectorParser
	Scanner    *discovery.Scanner
	Filter     *discovery.Filter
	Dispatcher *dispatch.Dispatcher
	Storage    storage.Storage
	Formatter  *ui.Formatter
}

// NewDeps creates unwired dependencies for cfg
func NewDeps(cfg *config.Config) *Deps {
	return &Deps{config: cfg, logger: zap.NewNop(), out: os.Stdout, errOut: os.Stderr}
}

// SetOutput redirects command output, used by tests
func (d *Deps) SetOutput(out, errOut io.Writer) {
	d.out = out
	d.errOut = errOut
}

// Init wires the components from the config. The runner prefixes the
// adapters detect are fixed from here on for the rest of the process.
func (d *Deps) Init(logger *zap.Logger) error {
	if logger != nil {
		d.logger = logger
	}

	d.Probe = discovery.NewFSProbe(d.config.ProjectPath)
	env := adapter.NewEnv(d.Probe, d.config.Manifest, d.logger)

	adapters, err := adapter.Build(env, d.config)
	if err != nil {
		return fmt.Errorf("configure adapters: %w", err)
	}

	d.logger.Debug("adapters configured",
		zap.String("root", d.Probe.Root()),
		zap.Strings("order", d.config.Adapters),
		zap.String("config", d.config.ConfigFile))

	d.Parser = discovery.NewSelectorParser(d.Probe)
	d.Scanner = discovery.NewScanner(d.config.ProjectPath, d.config.PathsToIgnore)
	d.Filter = discovery.NewFilter()
	d.Dispatcher = dispatch.NewDispatcher(adapters, d.logger)
	d.Storage = storage.NewJSONStorage(d.config)
	d.Formatter = ui.NewFormatter(d.config, d.out)
	return nil
}

// execute runs the planned commands fail-fast, records the run and prints a summary
func (d *Deps) execute(ctx context.Context, selectors []string, plan []domain.Command) error {
	if len(plan) == 0 {
		d.Formatter.PrintPlan(plan)
		return nil
	}

	runner, err := execution.NewRunner(d.config, d.logger)
	if err != nil {
		return err
	}
	executor := execution.NewSequentialExecutor(runner, d.logger)
	executor.SetObserver(ui.NewReporter(d.errOut, len(plan)))

	results, duration, runErr := executor.Execute(ctx, plan)

	if err := d.Storage.Save(selectors, plan, results, duration); err != nil {
		d.logger.Warn("failed to record run", zap.Error(err))
	}

	d.Formatter.PrintSummary(len(plan), results, duration)
	return runErr
}
