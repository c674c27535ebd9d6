package pipeline

import (
	"fmt"
	"strings"
)

// LineEnding specifies the line ending style of the output.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the name of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingCRLF:
		return "crlf"
	case LineEndingCR:
		return "cr"
	default:
		return "lf"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// ParseLineEnding parses "lf", "crlf" or "cr" (case-insensitive).
func ParseLineEnding(s string) (LineEnding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lf", "unix", "\n":
		return LineEndingLF, nil
	case "crlf", "windows", "dos", "\r\n":
		return LineEndingCRLF, nil
	case "cr", "mac", "\r":
		return LineEndingCR, nil
	default:
		return LineEndingLF, fmt.Errorf("unknown line ending: %q", s)
	}
}

// NormalizeLineEndings converts CRLF and lone CR line breaks to LF.
func NormalizeLineEndings(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Encode converts canonical LF text to the line ending style.
func (le LineEnding) Encode(s string) string {
	if le == LineEndingLF {
		return s
	}
	return strings.ReplaceAll(s, "\n", le.Sequence())
}

// DetectLineEnding returns the dominant line ending style of s. Text
// without line breaks, and ties, report LF.
func DetectLineEnding(s string) LineEnding {
	crlf := strings.Count(s, "\r\n")
	cr := strings.Count(s, "\r") - crlf
	lf := strings.Count(s, "\n") - crlf

	switch {
	case crlf > lf && crlf >= cr:
		return LineEndingCRLF
	case cr > lf && cr > crlf:
		return LineEndingCR
	default:
		return LineEndingLF
	}
}
