// Test Type: Unit Test
// Description: Tests for input decoding and output encoding

package textio_test

import (
	"testing"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/textio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEncoding(t *testing.T) {
	tests := []struct {
		in   string
		want textio.Encoding
	}{
		{"", textio.EncodingAuto},
		{"UTF8", textio.EncodingUTF8},
		{"utf_16le", textio.EncodingUTF16LE},
		{"UTF-16BE", textio.EncodingUTF16BE},
		{"cp1252", textio.EncodingWindows1252},
		{"ISO-8859-1", textio.EncodingLatin1},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := textio.ParseEncoding(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := textio.ParseEncoding("ebcdic")
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		enc      textio.Encoding
		want     string
		wantUsed textio.Encoding
	}{
		{
			name:     "plain_utf8",
			data:     []byte("héllo\n"),
			enc:      textio.EncodingAuto,
			want:     "héllo\n",
			wantUsed: textio.EncodingUTF8,
		},
		{
			name:     "utf8_bom_is_dropped",
			data:     []byte("\xEF\xBB\xBFa b"),
			enc:      textio.EncodingAuto,
			want:     "a b",
			wantUsed: textio.EncodingUTF8,
		},
		{
			name:     "utf16le_bom",
			data:     []byte{0xFF, 0xFE, 'h', 0, 'i', 0, '\n', 0},
			enc:      textio.EncodingAuto,
			want:     "hi\n",
			wantUsed: textio.EncodingUTF16LE,
		},
		{
			name:     "utf16be_bom",
			data:     []byte{0xFE, 0xFF, 0, 'o', 0, 'k'},
			enc:      textio.EncodingAuto,
			want:     "ok",
			wantUsed: textio.EncodingUTF16BE,
		},
		{
			name:     "invalid_utf8_falls_back_to_windows_1252",
			data:     []byte("caf\xe9 \n"),
			enc:      textio.EncodingAuto,
			want:     "café \n",
			wantUsed: textio.EncodingWindows1252,
		},
		{
			name:     "explicit_utf16le_without_bom",
			data:     []byte{'a', 0, 'b', 0},
			enc:      textio.EncodingUTF16LE,
			want:     "ab",
			wantUsed: textio.EncodingUTF16LE,
		},
		{
			name:     "windows_1252",
			data:     []byte{'c', 'a', 'f', 0xE9, ' ', 0x80},
			enc:      textio.EncodingWindows1252,
			want:     "café €",
			wantUsed: textio.EncodingWindows1252,
		},
		{
			name:     "latin1",
			data:     []byte{0xE0, ' ', 'l', 'a'},
			enc:      textio.EncodingLatin1,
			want:     "à la",
			wantUsed: textio.EncodingLatin1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, used, err := textio.Decode(tt.data, tt.enc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantUsed, used)
		})
	}
}

func TestDecodeEncode_AutoKeepsNonUTF8Bytes(t *testing.T) {
	data := []byte{'c', 'a', 'f', 0xE9, ' ', 0x80, 0x81, '\n'}

	text, used, err := textio.Decode(data, textio.EncodingAuto)
	require.NoError(t, err)
	assert.Equal(t, textio.EncodingWindows1252, used)

	out, err := textio.Encode(text, used)
	require.NoError(t, err)
	assert.Equal(t, data, out)
}

func TestEncode(t *testing.T) {
	out, err := textio.Encode("a\n", textio.EncodingUTF8)
	require.NoError(t, err)
	assert.Equal(t, []byte("a\n"), out)

	out, err = textio.Encode("é", textio.EncodingLatin1)
	require.NoError(t, err)
	assert.Equal(t, []byte{0xE9}, out)

	_, err = textio.Encode("日本", textio.EncodingWindows1252)
	assert.True(t, errors.IsErrorCode(err, errors.ErrEncoding))
}

func TestEncodeDecode_UTF16RoundTrip(t *testing.T) {
	for _, enc := range []textio.Encoding{textio.EncodingUTF16LE, textio.EncodingUTF16BE} {
		t.Run(string(enc), func(t *testing.T) {
			data, err := textio.Encode("line one\r\nline two", enc)
			require.NoError(t, err)
			assert.Equal(t, enc, textio.Detect(data))

			text, used, err := textio.Decode(data, textio.EncodingAuto)
			require.NoError(t, err)
			assert.Equal(t, enc, used)
			assert.Equal(t, "line one\r\nline two", text)
		})
	}
}
