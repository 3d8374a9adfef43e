package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	ConfigFile  string // Project config file that was loaded, empty if none
	Manifest    string

	// Adapter settings, Adapters is the dispatch order
	Adapters       []string
	AdapterConfigs map[string]AdapterConfig

	// Environment files merged into every test process
	EnvFiles         []string
	RequiredEnvFiles bool // Set when the files were named explicitly

	// Output settings
	OutputJSONFile string
	OutputJSONDir  string

	// Paths to ignore when scanning
	PathsToIgnore []string

	// Command flags
	Flags Flags
}

// AdapterConfig holds the per adapter overrides
type AdapterConfig struct {
	FilePatterns []string `toml:"file-patterns"`
	TestPatterns []string `toml:"test-patterns"`
	Runner       string   `toml:"runner"`
}

// Flags holds command-line flags
type Flags struct {
	ProjectPath string
	ConfigFile  string
	EnvFiles    []string
	Adapters    []string
	DryRun      bool
	Verbose     bool
	NameFilter  string
	TestCases   bool
}

// fileConfig is the on-disk shape of ttest.toml
type fileConfig struct {
	Manifest string                   `toml:"manifest"`
	Order    []string                 `toml:"order"`
	EnvFiles []string                 `toml:"env-files"`
	Ignore   []string                 `toml:"ignore"`
	Adapter  map[string]AdapterConfig `toml:"adapter"`
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		Manifest:       DefaultManifest,
		AdapterConfigs: DefaultAdapterConfigs(),
		OutputJSONFile: DefaultOutputJSONFile,
		OutputJSONDir:  DefaultOutputJSONDir,
	}
	cfg.Adapters = slices.Clone(DefaultAdapterOrder)
	cfg.EnvFiles = slices.Clone(DefaultEnvFiles)
	cfg.PathsToIgnore = slices.Clone(DefaultPathsToIgnore)
	return cfg
}

// Apply stores the flags, loads the project config file and lets the flags override it
func (c *Config) Apply(flags Flags) error {
	c.Flags = flags
	if flags.ProjectPath != "" {
		c.ProjectPath = flags.ProjectPath
	}

	path := flags.ConfigFile
	if path == "" {
		path = FindProjectFile(c.ProjectPath, DefaultConfigFiles)
	}
	if path != "" {
		if err := c.LoadFile(path); err != nil {
			return err
		}
	}

	if len(flags.EnvFiles) > 0 {
		c.EnvFiles = slices.Clone(flags.EnvFiles)
		c.RequiredEnvFiles = true
	}
	if len(flags.Adapters) > 0 {
		c.Adapters = slices.Clone(flags.Adapters)
	}
	return nil
}

// LoadFile merges a TOML project file into the config
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := c.LoadTOML(string(data)); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	c.ConfigFile = path
	return nil
}

// LoadTOML merges TOML content into the config. Unset keys keep their current value.
func (c *Config) LoadTOML(data string) error {
	var fc fileConfig
	meta, err := toml.Decode(data, &fc)
	if err != nil {
		return fmt.Errorf("parse toml: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}

	var unknown []string
	for key := range fc.Adapter {
		if _, ok := c.AdapterConfigs[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return fmt.Errorf("unknown adapter tables: %s", strings.Join(unknown, ", "))
	}

	if fc.Manifest != "" {
		c.Manifest = fc.Manifest
	}
	if fc.Order != nil {
		c.Adapters = fc.Order
	}
	if fc.EnvFiles != nil {
		c.EnvFiles = fc.EnvFiles
		c.RequiredEnvFiles = true
	}
	if fc.Ignore != nil {
		c.PathsToIgnore = fc.Ignore
	}

	for key, override := range fc.Adapter {
		current := c.AdapterConfigs[key]
		if override.FilePatterns != nil {
			current.FilePatterns = override.FilePatterns
		}
		if override.TestPatterns != nil {
			current.TestPatterns = override.TestPatterns
		}
		if override.Runner != "" {
			current.Runner = override.Runner
		}
		c.AdapterConfigs[key] = current
	}
	return nil
}

// Adapter returns the settings for the adapter key
func (c *Config) Adapter(key string) AdapterConfig {
	return c.AdapterConfigs[key]
}

// ResolvePath returns path relative to the project, absolute paths are kept
func (c *Config) ResolvePath(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectPath, path)
}

// GetOutputPath returns the full path to the last run record.
// Resolves to an absolute path so run, last and show always use the same file regardless of cwd.
func (c *Config) GetOutputPath() string {
	p := filepath.Join(c.ProjectPath, c.OutputJSONDir, c.OutputJSONFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// FindProjectFile returns the first of names that exists in dir, or "" when none does
func FindProjectFile(dir string, names []string) string {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
