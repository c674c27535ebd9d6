// Package testutil provides helpers for relines tests.
//
// Key components:
//   - File helpers (CreateFile, ReadFile, AssertFileContent) for tests that
//     touch the real filesystem inside t.TempDir()
//   - Environment: isolated XDG directories and working directory
//   - Rule fixtures shared by the engine and CLI tests
//
// All test data should be defined inline, not in external files.
package testutil
