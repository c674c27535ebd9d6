// Test Type: Unit Test
// Description: Tests for the summary format names accepted by --format and
// output.format, and for auto detection

package ui_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	accepted := map[string]ui.Format{
		"":         ui.FormatAuto,
		"auto":     ui.FormatAuto,
		"term":     ui.FormatTerminal,
		"Terminal": ui.FormatTerminal,
		"text":     ui.FormatText,
		"plain":    ui.FormatText,
		"JSON":     ui.FormatJSON,
	}
	for in, want := range accepted {
		got, err := ui.ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ui.ParseFormat("yaml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "unknown format: yaml")
}

func TestFormat_StringParsesBack(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatAuto, ui.FormatTerminal, ui.FormatText, ui.FormatJSON} {
		got, err := ui.ParseFormat(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}
	assert.Equal(t, "unknown", ui.Format(42).String())
}

func TestDetectFormat(t *testing.T) {
	t.Run("no_color_forces_text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("summary_redirected_to_file_is_text", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "summary")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
		assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(f))
	})
}

func TestFormatResolve(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, ui.FormatText, ui.FormatAuto.Resolve(&buf))
	assert.Equal(t, ui.FormatJSON, ui.FormatJSON.Resolve(&buf))
	assert.Equal(t, ui.FormatTerminal, ui.FormatTerminal.Resolve(&buf))
}
