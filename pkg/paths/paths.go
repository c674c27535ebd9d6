// Package paths resolves the relines directories and expands user
// supplied paths.
//
// Directories follow the XDG base directory layout. The XDG_* environment
// variables are read on every call, so tests can point them at temporary
// directories; otherwise the platform defaults from adrg/xdg apply.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/relines/pkg/errors"
)

const (
	// AppDirName is the directory name used under every XDG base directory
	AppDirName = "relines"

	// EnvHome is the fallback for the home directory
	EnvHome = "HOME"
)

// ConfigDir returns $XDG_CONFIG_HOME/relines
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(ExpandHome(dir), AppDirName)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// StateDir returns $XDG_STATE_HOME/relines, where the log file lives
func StateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(ExpandHome(dir), AppDirName)
	}
	return filepath.Join(xdg.StateHome, AppDirName)
}

// GetHomeDirectory returns the user's home directory with proper error handling
func GetHomeDirectory() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Try the HOME environment variable as a fallback
		if home := os.Getenv(EnvHome); home != "" {
			return home, nil
		}
		return "", errors.Wrap(err, errors.ErrInternal, "failed to get home directory")
	}
	return homeDir, nil
}

// ExpandHome expands a leading ~ to the home directory. ~user forms are
// returned unchanged.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := GetHomeDirectory()
	if err != nil {
		// Can't expand, return as-is
		return path
	}

	if len(path) == 1 {
		return homeDir
	}
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}
	return path
}

// ExpandPath expands ~ and environment variables in a path
func ExpandPath(path string) string {
	return os.ExpandEnv(ExpandHome(path))
}

// ExpandAll expands every path, preserving order
func ExpandAll(paths []string) []string {
	if paths == nil {
		return nil
	}
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = ExpandPath(p)
	}
	return out
}
