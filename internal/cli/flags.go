package cli

import "ttest/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		ProjectPath: f.ProjectPath,
		ConfigFile:  f.ConfigFile,
		EnvFiles:    f.EnvFiles,
		Adapters:    f.Adapters,
		DryRun:      f.DryRun,
		Verbose:     f.Verbose,
		NameFilter:  f.NameFilter,
		TestCases:   f.TestCases,
	}
}
