// Package textio reads input text in a handful of encodings and writes
// results back to disk.
package textio

import (
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/relines/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names a supported text encoding
type Encoding string

const (
	// EncodingAuto honours a UTF-8 or UTF-16 byte order mark, then picks
	// UTF-8 for valid UTF-8 and Windows-1252 for anything else
	EncodingAuto        Encoding = "auto"
	EncodingUTF8        Encoding = "utf-8"
	EncodingUTF16LE     Encoding = "utf-16le"
	EncodingUTF16BE     Encoding = "utf-16be"
	EncodingWindows1252 Encoding = "windows-1252"
	EncodingLatin1      Encoding = "latin-1"
)

// Encodings lists the supported encodings in display order
var Encodings = []Encoding{
	EncodingAuto,
	EncodingUTF8,
	EncodingUTF16LE,
	EncodingUTF16BE,
	EncodingWindows1252,
	EncodingLatin1,
}

// ParseEncoding parses an encoding name. Common spellings such as "utf8",
// "cp1252" and "iso-8859-1" are accepted.
func ParseEncoding(s string) (Encoding, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "_", "-")
	switch name {
	case "", "auto":
		return EncodingAuto, nil
	case "utf-8", "utf8":
		return EncodingUTF8, nil
	case "utf-16le", "utf16le", "utf-16":
		return EncodingUTF16LE, nil
	case "utf-16be", "utf16be":
		return EncodingUTF16BE, nil
	case "windows-1252", "cp1252", "win1252":
		return EncodingWindows1252, nil
	case "latin-1", "latin1", "iso-8859-1", "iso8859-1":
		return EncodingLatin1, nil
	default:
		return "", errors.Newf(errors.ErrEncoding, "unsupported encoding %q", s).
			WithDetail("supported", Encodings)
	}
}

var (
	utf8BOM    = []byte{0xEF, 0xBB, 0xBF}
	utf16LEBOM = []byte{0xFF, 0xFE}
	utf16BEBOM = []byte{0xFE, 0xFF}
)

// Detect reports the encoding announced by a byte order mark. Without one,
// data that is not valid UTF-8 is taken as Windows-1252, which maps every
// byte and so survives a decode and encode unchanged.
func Detect(data []byte) Encoding {
	switch {
	case hasPrefix(data, utf8BOM):
		return EncodingUTF8
	case hasPrefix(data, utf16LEBOM):
		return EncodingUTF16LE
	case hasPrefix(data, utf16BEBOM):
		return EncodingUTF16BE
	case !utf8.Valid(data):
		return EncodingWindows1252
	default:
		return EncodingUTF8
	}
}

func hasPrefix(data, prefix []byte) bool {
	return len(data) >= len(prefix) && string(data[:len(prefix)]) == string(prefix)
}

func lookup(enc Encoding) (encoding.Encoding, error) {
	switch enc {
	case EncodingUTF8:
		return unicode.UTF8BOM, nil
	case EncodingUTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), nil
	case EncodingUTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM), nil
	case EncodingWindows1252:
		return charmap.Windows1252, nil
	case EncodingLatin1:
		return charmap.ISO8859_1, nil
	default:
		return nil, errors.Newf(errors.ErrEncoding, "unsupported encoding %q", enc)
	}
}

// Decode converts data to a Go string. A leading byte order mark is
// dropped. The returned encoding is the one actually used, which for
// EncodingAuto is the detected one.
func Decode(data []byte, enc Encoding) (string, Encoding, error) {
	if enc == "" || enc == EncodingAuto {
		enc = Detect(data)
	}

	e, err := lookup(enc)
	if err != nil {
		return "", enc, err
	}

	out, _, err := transform.Bytes(e.NewDecoder(), data)
	if err != nil {
		return "", enc, errors.Wrapf(err, errors.ErrEncoding, "failed to decode %s input", enc)
	}
	return string(out), enc, nil
}

// Encode converts text to the given encoding. UTF-16 output starts with a
// byte order mark; UTF-8 output never does.
func Encode(text string, enc Encoding) ([]byte, error) {
	if enc == "" || enc == EncodingAuto || enc == EncodingUTF8 {
		return []byte(text), nil
	}

	e, err := lookup(enc)
	if err != nil {
		return nil, err
	}

	out, _, err := transform.Bytes(e.NewEncoder(), []byte(text))
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "cannot encode output as %s", enc)
	}
	return out, nil
}
