package rulefile

import (
	"os"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/logging"
	"github.com/arthur-debert/relines/pkg/rules"
)

// Parse decodes rules from data. Rules without an ID get a fresh one.
func Parse(data []byte, format Format) ([]rules.Rule, error) {
	var (
		frs []fileRule
		err error
	)
	switch format {
	case FormatTOML, FormatYAML:
		frs, err = decodeKoanf(data, format)
	case FormatXML:
		frs, err = decodeXML(data)
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unsupported rule file format %q", format)
	}
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleFileParse, "failed to parse %s rules", format).
			WithDetail("format", string(format))
	}
	return resolve(frs)
}

// Load reads and parses one rule file
func Load(path string) ([]rules.Rule, error) {
	logger := logging.GetLogger("rulefile")

	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRuleFileRead, "failed to read rule file %s", path).
			WithDetail("path", path)
	}

	rs, err := Parse(data, format)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.WithDetail("path", path)
		}
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("rules", len(rs)).
		Msg("Loaded rule file")
	return rs, nil
}

// LoadAll loads every file in order and concatenates their rules
func LoadAll(paths []string) ([]rules.Rule, error) {
	var all []rules.Rule
	for _, path := range paths {
		rs, err := Load(path)
		if err != nil {
			return nil, err
		}
		all = append(all, rs...)
	}
	return all, nil
}

// Example returns a small starter rule list, used by "rules init"
func Example() []rules.Rule {
	return []rules.Rule{
		{Mode: rules.ModeRemove, Scope: rules.ScopeStart, Target: rules.TargetWhitespace},
		{Mode: rules.ModeRemove, Scope: rules.ScopeEnd, Target: rules.TargetWhitespace},
		{Mode: rules.ModeReplace, Scope: rules.ScopeCenter, Target: rules.TargetWhitespace, Occurrence: rules.OccurrenceAll, Replacement: " "},
		{Mode: rules.ModeRemove, Scope: rules.ScopeEnd, Target: rules.TargetLiteral, Token: ","},
	}
}
