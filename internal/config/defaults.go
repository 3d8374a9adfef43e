package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultManifest is the dependency manifest probed by the adapters
	DefaultManifest = "Gemfile"
	// DefaultOutputJSONFile is the file the last run is recorded in
	DefaultOutputJSONFile = "last-run.json"
	// DefaultOutputJSONDir is the directory holding the last run record
	DefaultOutputJSONDir = ".ttest"
)

// DefaultConfigFiles are the project config file names, in lookup order
var DefaultConfigFiles = []string{"ttest.toml", "_ttest.toml", ".ttest.toml"}

// DefaultEnvFiles are loaded into the test environment when present
var DefaultEnvFiles = []string{".env.test"}

// DefaultAdapterOrder is the registration order adapters are tried in
var DefaultAdapterOrder = []string{"ruby_rspec", "ruby_minitest"}

// DefaultPathsToIgnore are the directories skipped when scanning for test files
var DefaultPathsToIgnore = []string{
	"vendor",
	"node_modules",
	"tmp",
	"log",
	"coverage",
}

// DefaultAdapterConfigs returns a fresh copy of the built-in adapter settings
func DefaultAdapterConfigs() map[string]AdapterConfig {
	return map[string]AdapterConfig{
		"ruby_rspec": {
			FilePatterns: []string{"_spec.rb"},
			TestPatterns: []string{`it "`, "it '", "describe ", "context "},
		},
		"ruby_minitest": {
			FilePatterns: []string{".rb"},
			TestPatterns: []string{"  def test_", `  it "`, "  it '", `  test "`, "  test '"},
		},
	}
}
