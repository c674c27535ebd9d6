// Test Type: Integration Test
// Description: Tests for reading inputs and writing outputs on the real filesystem

package textio_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/textio"
	"github.com/arthur-debert/relines/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInput(t *testing.T) {
	dir := testutil.TempDir(t)
	path := testutil.CreateFile(t, dir, "in.txt", "from file")

	data, err := textio.ReadInput(path, strings.NewReader("unused"))
	require.NoError(t, err)
	assert.Equal(t, "from file", string(data))

	data, err = textio.ReadInput("-", strings.NewReader("from stdin"))
	require.NoError(t, err)
	assert.Equal(t, "from stdin", string(data))

	_, err = textio.ReadInput(filepath.Join(dir, "missing.txt"), nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}

func TestReadText(t *testing.T) {
	dir := testutil.TempDir(t)
	path := testutil.CreateBinaryFile(t, dir, "bom.txt", []byte("\xEF\xBB\xBFhi"))

	text, used, err := textio.ReadText(path, nil, textio.EncodingAuto)
	require.NoError(t, err)
	assert.Equal(t, "hi", text)
	assert.Equal(t, textio.EncodingUTF8, used)
}

func TestWriter_CreatesFile(t *testing.T) {
	dir := testutil.TempDir(t)
	target := filepath.Join(dir, "out.txt")

	w := textio.NewWriter(textio.WriterOptions{})
	require.NoError(t, w.WriteFile(context.Background(), target, []byte("result\n")))

	testutil.AssertFileContent(t, target, "result\n")
}

func TestWriter_Overwrite(t *testing.T) {
	dir := testutil.TempDir(t)
	target := testutil.CreateFile(t, dir, "data.txt", "old")

	w := textio.NewWriter(textio.WriterOptions{Overwrite: true})
	err := w.WriteFiles(context.Background(), []textio.OutputFile{
		{Path: target, Content: []byte("new")},
		{Path: filepath.Join(dir, "sub", "other.txt"), Content: []byte("other")},
	})
	require.NoError(t, err)

	testutil.AssertFileContent(t, target, "new")
	testutil.AssertFileContent(t, filepath.Join(dir, "sub", "other.txt"), "other")
}

func TestWriter_DryRun(t *testing.T) {
	dir := testutil.TempDir(t)
	target := filepath.Join(dir, "never.txt")

	w := textio.NewWriter(textio.WriterOptions{DryRun: true, Overwrite: true})
	require.NoError(t, w.WriteFile(context.Background(), target, []byte("x")))

	testutil.AssertNoFile(t, target)
}

func TestWriter_NoFiles(t *testing.T) {
	assert.NoError(t, textio.NewWriter(textio.WriterOptions{}).WriteFiles(context.Background(), nil))
}
