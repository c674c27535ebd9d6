package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// Environment is an isolated set of directories for a test. The XDG
// variables point inside Root and the log file is disabled.
type Environment struct {
	Root      string
	WorkDir   string
	ConfigDir string
	StateDir  string
}

// NewEnvironment creates the directories, points the process at them and
// changes into WorkDir. Everything is restored when the test ends, so tests
// using it must not run in parallel.
func NewEnvironment(t *testing.T) *Environment {
	t.Helper()

	root := t.TempDir()
	env := &Environment{
		Root:      root,
		WorkDir:   filepath.Join(root, "work"),
		ConfigDir: filepath.Join(root, "config"),
		StateDir:  filepath.Join(root, "state"),
	}
	for _, dir := range []string{env.WorkDir, env.ConfigDir, env.StateDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create %s: %v", dir, err)
		}
	}

	t.Setenv("XDG_CONFIG_HOME", env.ConfigDir)
	t.Setenv("XDG_STATE_HOME", env.StateDir)
	t.Setenv("RELINES_NO_LOG_FILE", "1")

	prev, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	if err := os.Chdir(env.WorkDir); err != nil {
		t.Fatalf("Failed to change to %s: %v", env.WorkDir, err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(prev)
	})

	return env
}

// WriteFile creates a file relative to WorkDir
func (e *Environment) WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	return CreateFile(t, e.WorkDir, name, content)
}

// WriteUserConfig writes $XDG_CONFIG_HOME/relines/config.toml
func (e *Environment) WriteUserConfig(t *testing.T, content string) string {
	t.Helper()
	return CreateFile(t, filepath.Join(e.ConfigDir, "relines"), "config.toml", content)
}
