// Package assembler joins the non-blank lines of a text into one value,
// wrapping each item and the whole result with configurable affixes.
//
// With DefaultConfig the lines
//
//	apple
//	  banana
//
// become ["apple","banana"].
package assembler

import (
	"strings"

	"github.com/arthur-debert/relines/pkg/pipeline"
)

// DefaultIndent is used in pretty mode when Config.Indent is empty
const DefaultIndent = "  "

// Config describes how items are wrapped and joined
type Config struct {
	Prefix     string
	ItemPrefix string
	Separator  string
	ItemSuffix string
	Suffix     string

	// Pretty puts prefix and suffix on their own lines and indents items
	Pretty bool
	Indent string
}

// DefaultConfig assembles a JSON array of strings
func DefaultConfig() Config {
	return Config{
		Prefix:     "[",
		ItemPrefix: `"`,
		Separator:  ",",
		ItemSuffix: `"`,
		Suffix:     "]",
	}
}

// EmptyConfig emits one trimmed item per line
func EmptyConfig() Config {
	return Config{Separator: "\n"}
}

// Preset returns a named configuration. Known names are "json" and "none".
func Preset(name string) (Config, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "json":
		return DefaultConfig(), true
	case "none", "lines":
		return EmptyConfig(), true
	default:
		return Config{}, false
	}
}

// Items returns the trimmed non-blank lines of text
func Items(text string) []string {
	text = pipeline.NormalizeLineEndings(text)

	var items []string
	for _, line := range strings.Split(text, "\n") {
		if item := strings.TrimSpace(line); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Assemble builds the assembled value. Empty or all-blank input yields "".
func Assemble(text string, cfg Config) string {
	items := Items(text)
	if len(items) == 0 {
		return ""
	}

	for i, item := range items {
		items[i] = cfg.ItemPrefix + item + cfg.ItemSuffix
	}

	if !cfg.Pretty {
		return cfg.Prefix + strings.Join(items, cfg.Separator) + cfg.Suffix
	}

	indent := cfg.Indent
	if indent == "" {
		indent = DefaultIndent
	}
	for i, item := range items {
		items[i] = indent + item
	}
	return cfg.Prefix + "\n" + strings.Join(items, cfg.Separator+"\n") + "\n" + cfg.Suffix
}
