// Package crossline applies rules whose literal token spans a line break.
//
// Such a rule can never match inside a single line, so it runs against the
// whole document instead. Start and end anchoring has no meaning once a
// match crosses lines: those rules replace every occurrence of the token.
// Center rules keep their own occurrence policy.
package crossline

import (
	"strings"

	"github.com/arthur-debert/relines/pkg/occurrence"
	"github.com/arthur-debert/relines/pkg/pattern"
	"github.com/arthur-debert/relines/pkg/rules"
)

// IsCrossLine reports whether the rule must be applied to the whole
// document: a literal target whose token contains a line break.
func IsCrossLine(r rules.Rule) bool {
	return r.Target == rules.TargetLiteral && strings.Contains(r.Token, "\n")
}

// Partition splits rules into the cross-line group and the per-line group,
// keeping the relative order inside each group.
func Partition(rs []rules.Rule) (crossLine, perLine []rules.Rule) {
	for _, r := range rs {
		if IsCrossLine(r) {
			crossLine = append(crossLine, r)
		} else {
			perLine = append(perLine, r)
		}
	}
	return crossLine, perLine
}

// Occurrence returns the policy used when the rule runs on the document
func Occurrence(r rules.Rule) rules.Occurrence {
	if r.Scope == rules.ScopeCenter {
		return r.Occurrence
	}
	return rules.OccurrenceAll
}

func compile(token string) pattern.Pattern {
	if token == "\n" {
		return pattern.Newline()
	}
	return pattern.Compile(token)
}

// ApplyDocument applies one cross-line rule to the whole text. Rules that
// are not cross-line, or have an empty token, leave the text unchanged.
func ApplyDocument(text string, r rules.Rule) string {
	out, _ := ApplyDocumentCount(text, r)
	return out
}

// ApplyDocumentCount is ApplyDocument that also reports the number of
// substituted matches.
func ApplyDocumentCount(text string, r rules.Rule) (string, int) {
	if !IsCrossLine(r) {
		return text, 0
	}
	return occurrence.Replace(text, compile(r.Token), Occurrence(r), r.EffectiveReplacement())
}
