package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"ttest/internal/config"
	"ttest/internal/discovery"
)

// project is a temporary project directory with an adapter Env rooted in it
type project struct {
	t   *testing.T
	dir string
	env *Env
}

func newProject(t *testing.T) *project {
	t.Helper()
	dir := t.TempDir()
	return &project{
		t:   t,
		dir: dir,
		env: NewEnv(discovery.NewFSProbe(dir), config.DefaultManifest, zaptest.NewLogger(t)),
	}
}

func (p *project) writeFile(name, content string) {
	p.t.Helper()
	path := filepath.Join(p.dir, name)
	require.NoError(p.t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(p.t, os.WriteFile(path, []byte(content), 0644))
}

func (p *project) rspec() *RubyRspec {
	return NewRubyRspec(p.env, config.DefaultAdapterConfigs()[KeyRubyRspec]).(*RubyRspec)
}

func (p *project) minitest() *RubyMinitest {
	return NewRubyMinitest(p.env, config.DefaultAdapterConfigs()[KeyRubyMinitest]).(*RubyMinitest)
}
