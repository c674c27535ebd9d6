package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TempDir returns a directory removed when the test ends
func TempDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// CreateFile writes a text input or rule file under dir, creating parent
// directories, and returns its path
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	return CreateBinaryFile(t, dir, name, []byte(content))
}

// CreateBinaryFile is CreateFile for encoded input such as UTF-16
func CreateBinaryFile(t *testing.T, dir, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, content, 0644))
	return path
}

// FileExists reports whether path is a regular file
func FileExists(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// ReadFile returns the raw content of path
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// AssertFileContent compares the bytes relines left in path. Content is
// quoted in failures so line endings and encodings stay visible.
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()
	require.True(t, FileExists(t, path), "file %s does not exist", path)
	assert.Equal(t, []byte(expected), []byte(ReadFile(t, path)), "content of %s", path)
}

// AssertNoFile checks that a dry run or failed command wrote nothing
func AssertNoFile(t *testing.T, path string) {
	t.Helper()
	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "file %s exists but should not", path)
}
