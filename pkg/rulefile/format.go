package rulefile

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/relines/pkg/errors"
)

// Format is a rule file encoding
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatXML  Format = "xml"
)

// Formats lists the supported formats in display order
var Formats = []Format{FormatTOML, FormatYAML, FormatXML}

// Ext returns the canonical file extension, including the dot
func (f Format) Ext() string {
	return "." + string(f)
}

// ParseFormat parses a format name ("yml" is accepted for yaml)
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xml":
		return FormatXML, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported rule file format %q", s).
			WithDetail("supported", Formats)
	}
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", errors.Newf(errors.ErrInvalidInput, "cannot tell the rule file format of %s", path).
			WithDetail("path", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", errors.Newf(errors.ErrInvalidInput, "unsupported rule file extension %q", ext).
			WithDetail("path", path)
	}
	return f, nil
}
