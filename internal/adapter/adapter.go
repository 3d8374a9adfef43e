// Package adapter binds the generic selector model to concrete test
// frameworks. Each adapter decides whether it claims a selector and turns
// the selectors it claimed into shell commands.
package adapter

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"ttest/internal/config"
	"ttest/internal/discovery"
	"ttest/internal/domain"
)

// Adapter is implemented once per supported test framework
type Adapter interface {
	// Key returns the stable registry key, e.g. "ruby_rspec"
	Key() string
	// SelectorMatches decides whether and how exclusively the adapter claims selector
	SelectorMatches(selector domain.Selector) domain.Match
	// CollectCommands turns claimed selectors into shell commands, nil when there is nothing to run
	CollectCommands(selectors []domain.Selector) []string
	// TestCases lists the test definitions the adapter's markers find in a file
	TestCases(path string) ([]domain.TestCase, error)
}

// Env is the run context handed to every adapter
type Env struct {
	Probe    discovery.Probe
	Manifest string
	Logger   *zap.Logger
}

// NewEnv creates the run context, a nil logger is replaced by a no-op one
func NewEnv(probe discovery.Probe, manifest string, logger *zap.Logger) *Env {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Env{Probe: probe, Manifest: manifest, Logger: logger}
}

// ManifestMentions reports whether the dependency manifest contains name
func (e *Env) ManifestMentions(name string) bool {
	return e.Probe.FileContains(e.Manifest, name)
}

// Factory builds an adapter for one run
type Factory func(env *Env, cfg config.AdapterConfig) Adapter

type entry struct {
	key     string
	factory Factory
}

// registry is the ordered table of known adapters
var registry = []entry{
	{key: KeyRubyRspec, factory: NewRubyRspec},
	{key: KeyRubyMinitest, factory: NewRubyMinitest},
}

// Keys returns every registered adapter key in registration order
func Keys() []string {
	keys := make([]string, len(registry))
	for i, e := range registry {
		keys[i] = e.key
	}
	return keys
}

// Lookup builds the adapter registered under key
func Lookup(key string, env *Env, cfg config.AdapterConfig) (Adapter, error) {
	for _, e := range registry {
		if e.key == key {
			return e.factory(env, cfg), nil
		}
	}
	return nil, fmt.Errorf("unknown adapter %q (known: %s)", key, strings.Join(Keys(), ", "))
}

// Build returns the adapters named in cfg.Adapters, in that order
func Build(env *Env, cfg *config.Config) ([]Adapter, error) {
	adapters := make([]Adapter, 0, len(cfg.Adapters))
	seen := make(map[string]bool)
	for _, key := range cfg.Adapters {
		if seen[key] {
			return nil, fmt.Errorf("adapter %q listed more than once", key)
		}
		seen[key] = true

		a, err := Lookup(key, env, cfg.Adapter(key))
		if err != nil {
			return nil, err
		}
		adapters = append(adapters, a)
	}
	return adapters, nil
}
