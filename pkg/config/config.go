package config

import (
	"strings"

	"github.com/arthur-debert/relines/pkg/assembler"
	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/pipeline"
	"github.com/arthur-debert/relines/pkg/textio"
)

// EOLKeep keeps the dominant line ending of each input
const EOLKeep = "keep"

// Output formats for summaries
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the resolved relines configuration
type Config struct {
	Input    Input    `koanf:"input"`
	Output   Output   `koanf:"output"`
	Rules    Rules    `koanf:"rules"`
	Assemble Assemble `koanf:"assemble"`
}

// Input configures how inputs are decoded
type Input struct {
	Encoding string `koanf:"encoding"`
}

// Output configures results and summaries
type Output struct {
	EOL    string `koanf:"eol"`
	Format string `koanf:"format"`
}

// Rules lists rule files applied before command line rules
type Rules struct {
	Files []string `koanf:"files"`
}

// Assemble configures the line assembler. Nil fields fall back to the
// preset.
type Assemble struct {
	Preset     string  `koanf:"preset"`
	Pretty     bool    `koanf:"pretty"`
	Indent     string  `koanf:"indent"`
	Prefix     *string `koanf:"prefix"`
	ItemPrefix *string `koanf:"item_prefix"`
	Separator  *string `koanf:"separator"`
	ItemSuffix *string `koanf:"item_suffix"`
	Suffix     *string `koanf:"suffix"`
}

// Encoding returns the parsed input encoding
func (c *Config) Encoding() (textio.Encoding, error) {
	return textio.ParseEncoding(c.Input.Encoding)
}

// LineEnding returns the configured output line ending. keep reports
// true and leaves the choice to the caller.
func (c *Config) LineEnding() (pipeline.LineEnding, bool, error) {
	if strings.EqualFold(strings.TrimSpace(c.Output.EOL), EOLKeep) {
		return pipeline.LineEndingLF, true, nil
	}
	le, err := pipeline.ParseLineEnding(c.Output.EOL)
	if err != nil {
		return le, false, errors.Wrap(err, errors.ErrConfigParse, "invalid output.eol").
			WithDetail("value", c.Output.EOL)
	}
	return le, false, nil
}

// AssemblerConfig builds the assembler settings
func (c *Config) AssemblerConfig() (assembler.Config, error) {
	a := c.Assemble
	cfg, ok := assembler.Preset(a.Preset)
	if !ok {
		return assembler.Config{}, errors.Newf(errors.ErrConfigParse, "unknown assemble preset %q", a.Preset).
			WithDetail("supported", []string{"json", "none"})
	}
	for _, o := range []struct {
		value *string
		dest  *string
	}{
		{a.Prefix, &cfg.Prefix},
		{a.ItemPrefix, &cfg.ItemPrefix},
		{a.Separator, &cfg.Separator},
		{a.ItemSuffix, &cfg.ItemSuffix},
		{a.Suffix, &cfg.Suffix},
	} {
		if o.value != nil {
			*o.dest = *o.value
		}
	}
	cfg.Pretty = a.Pretty
	cfg.Indent = a.Indent
	return cfg, nil
}

// Validate checks every enumerated setting
func (c *Config) Validate() error {
	if _, err := c.Encoding(); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "invalid input.encoding")
	}
	if _, _, err := c.LineEnding(); err != nil {
		return err
	}
	switch strings.ToLower(c.Output.Format) {
	case FormatAuto, FormatTerm, FormatText, FormatJSON:
	default:
		return errors.Newf(errors.ErrConfigParse, "invalid output.format %q", c.Output.Format).
			WithDetail("supported", []string{FormatAuto, FormatTerm, FormatText, FormatJSON})
	}
	if _, err := c.AssemblerConfig(); err != nil {
		return err
	}
	return nil
}
