// Package display holds the view models shared by every renderer
package display

import (
	"github.com/arthur-debert/relines/pkg/crossline"
	"github.com/arthur-debert/relines/pkg/pipeline"
	"github.com/arthur-debert/relines/pkg/rules"
)

// RuleRow is one line of a rule listing
type RuleRow struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	Inline    string `json:"rule"`
	Mode      string `json:"mode"`
	Scope     string `json:"scope"`
	Target    string `json:"target"`
	CrossLine bool   `json:"crossLine"`
	// Newlines counts the line breaks inside the token
	Newlines int  `json:"newlines,omitempty"`
	Noop     bool `json:"noop,omitempty"`
}

// RuleList is the result of "rules show" and "rules check"
type RuleList struct {
	Sources []string  `json:"sources,omitempty"`
	Rules   []RuleRow `json:"rules"`
}

// FileReport describes one processed input
type FileReport struct {
	Input    string              `json:"input"`
	Output   string              `json:"output"`
	Encoding string              `json:"encoding,omitempty"`
	EOL      string              `json:"eol"`
	LinesIn  int                 `json:"linesIn"`
	LinesOut int                 `json:"linesOut"`
	Changed  bool                `json:"changed"`
	Rules    []pipeline.RuleStat `json:"rules"`
}

// Summary is the result of an apply run
type Summary struct {
	DryRun bool         `json:"dryRun"`
	Files  []FileReport `json:"files"`
}

// NewRuleList builds the listing for rs, numbering rules from 1
func NewRuleList(rs []rules.Rule, sources []string) *RuleList {
	list := &RuleList{Sources: sources, Rules: make([]RuleRow, len(rs))}
	for i, r := range rs {
		list.Rules[i] = RuleRow{
			Index:     i + 1,
			ID:        r.ID,
			Inline:    r.Inline(),
			Mode:      r.Mode.String(),
			Scope:     r.Scope.String(),
			Target:    r.Target.String(),
			CrossLine: crossline.IsCrossLine(r),
			Newlines:  rules.CountNewlines(r.Token),
			Noop:      r.IsNoop(),
		}
	}
	return list
}

// NewFileReport summarizes a pipeline result
func NewFileReport(input, output string, res *pipeline.Result, eol pipeline.LineEnding) FileReport {
	return FileReport{
		Input:    input,
		Output:   output,
		EOL:      eol.String(),
		LinesIn:  res.LinesIn,
		LinesOut: res.LinesOut,
		Changed:  res.Changed(),
		Rules:    res.Stats,
	}
}

// TotalMatches sums the substitutions of every rule
func (f FileReport) TotalMatches() int {
	total := 0
	for _, s := range f.Rules {
		total += s.Matches
	}
	return total
}
