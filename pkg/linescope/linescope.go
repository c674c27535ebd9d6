// Package linescope applies rules to a single line of text.
//
// Start rules act on the match anchored at offset 0, end rules on the match
// that ends at the end of the line, and center rules on the spans selected
// by the rule's occurrence policy. A line with no qualifying match passes
// through unchanged.
package linescope

import (
	"github.com/arthur-debert/relines/pkg/occurrence"
	"github.com/arthur-debert/relines/pkg/pattern"
	"github.com/arthur-debert/relines/pkg/rules"
)

// Compiled is a rule with its pattern built once, ready to be applied to
// many lines.
type Compiled struct {
	Rule    rules.Rule
	pattern pattern.Pattern
}

// Compile prepares a rule for repeated application. Rules that can never
// match (an empty literal token) return nil.
func Compile(r rules.Rule) *Compiled {
	if r.IsNoop() {
		return nil
	}
	c := &Compiled{Rule: r}
	if r.Target == rules.TargetWhitespace {
		c.pattern = pattern.Whitespace()
	} else {
		c.pattern = pattern.Compile(r.Token)
	}
	return c
}

// CompileAll compiles rules in order, dropping no-ops
func CompileAll(rs []rules.Rule) []*Compiled {
	out := make([]*Compiled, 0, len(rs))
	for _, r := range rs {
		if c := Compile(r); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// Apply runs the rule on one line and returns the result together with the
// number of substituted matches.
func (c *Compiled) Apply(line string) (string, int) {
	if c == nil {
		return line, 0
	}
	rep := c.Rule.EffectiveReplacement()

	switch c.Rule.Scope {
	case rules.ScopeStart:
		end, ok := c.pattern.MatchPrefix(line)
		if !ok {
			return line, 0
		}
		return rep + line[end:], 1
	case rules.ScopeEnd:
		start, ok := c.pattern.MatchSuffix(line)
		if !ok {
			return line, 0
		}
		return line[:start] + rep, 1
	default:
		return occurrence.Replace(line, c.pattern, c.Rule.Occurrence, rep)
	}
}

// ApplyLine applies a single rule to a line
func ApplyLine(line string, r rules.Rule) string {
	out, _ := Compile(r).Apply(line)
	return out
}

// ApplyLineCount applies a single rule to a line and reports how many
// matches were substituted.
func ApplyLineCount(line string, r rules.Rule) (string, int) {
	return Compile(r).Apply(line)
}

// ApplyLines folds rules over a line left to right
func ApplyLines(line string, rs []rules.Rule) string {
	for _, c := range CompileAll(rs) {
		line, _ = c.Apply(line)
	}
	return line
}
