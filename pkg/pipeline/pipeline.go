// Package pipeline runs an ordered rule list over a block of text.
//
// A run normalizes line breaks, applies the cross-line rules to the whole
// document (in list order), splits the result into lines, folds the
// remaining rules over every line (in list order) and joins the lines
// back together.
//
// Cross-line rules always settle before any per-line rule, even when a
// per-line rule appears earlier in the list: they can merge or split
// lines, so per-line rules only ever see stable line boundaries.
//
// Run is a pure function and safe for concurrent use.
package pipeline

import (
	"strings"

	"github.com/arthur-debert/relines/pkg/crossline"
	"github.com/arthur-debert/relines/pkg/linescope"
	"github.com/arthur-debert/relines/pkg/logging"
	"github.com/arthur-debert/relines/pkg/rules"
)

// Options tunes Apply. The zero value produces LF output.
type Options struct {
	// LineEnding is used to join output lines
	LineEnding LineEnding
}

// RuleStat reports what one rule did during a run
type RuleStat struct {
	Index     int    `json:"index"`
	ID        string `json:"id,omitempty"`
	Rule      string `json:"rule"`
	CrossLine bool   `json:"crossLine"`
	Skipped   bool   `json:"skipped"`
	Matches   int    `json:"matches"`
}

// Result is the outcome of Apply
type Result struct {
	Text     string     `json:"text"`
	LinesIn  int        `json:"linesIn"`
	LinesOut int        `json:"linesOut"`
	Stats    []RuleStat `json:"rules"`
}

// Changed reports whether any rule substituted at least one match
func (r *Result) Changed() bool {
	for _, s := range r.Stats {
		if s.Matches > 0 {
			return true
		}
	}
	return false
}

// Run transforms text with rules and returns LF-terminated output
func Run(text string, rs []rules.Rule) string {
	out, _, _ := run(text, rs, nil)
	return out
}

// Apply is Run plus a per-rule report and output line ending conversion
func Apply(text string, rs []rules.Rule, opts Options) *Result {
	logger := logging.GetLogger("pipeline")

	stats := make([]RuleStat, len(rs))
	for i, r := range rs {
		stats[i] = RuleStat{
			Index:     i,
			ID:        r.ID,
			Rule:      r.Inline(),
			CrossLine: crossline.IsCrossLine(r),
			Skipped:   r.IsNoop(),
		}
	}

	out, linesIn, linesOut := run(text, rs, stats)
	result := &Result{
		Text:     opts.LineEnding.Encode(out),
		LinesIn:  linesIn,
		LinesOut: linesOut,
		Stats:    stats,
	}

	logger.Debug().
		Int("rules", len(rs)).
		Int("linesIn", linesIn).
		Int("linesOut", linesOut).
		Str("eol", opts.LineEnding.String()).
		Bool("changed", result.Changed()).
		Msg("Pipeline run complete")

	return result
}

type indexedRule struct {
	index    int
	compiled *linescope.Compiled
}

// run does the work for Run and Apply. stats is either nil or has one
// entry per rule.
func run(text string, rs []rules.Rule, stats []RuleStat) (string, int, int) {
	text = NormalizeLineEndings(text)
	linesIn := countLines(text)

	var perLine []indexedRule
	for i, r := range rs {
		if crossline.IsCrossLine(r) {
			var n int
			text, n = crossline.ApplyDocumentCount(text, r)
			if stats != nil {
				stats[i].Matches += n
			}
			continue
		}
		if c := linescope.Compile(r); c != nil {
			perLine = append(perLine, indexedRule{index: i, compiled: c})
		}
	}

	lines := strings.Split(text, "\n")
	if len(perLine) > 0 {
		for li, line := range lines {
			for _, ir := range perLine {
				var n int
				line, n = ir.compiled.Apply(line)
				if stats != nil {
					stats[ir.index].Matches += n
				}
			}
			lines[li] = line
		}
	}

	out := strings.Join(lines, "\n")
	return out, linesIn, countLines(out)
}

func countLines(s string) int {
	if s == "" {
		return 0
	}
	return strings.Count(s, "\n") + 1
}
