// Package occurrence selects which matches of a pattern a rule acts on and
// splices replacements into the matched spans.
//
// The last occurrence is always derived from the complete left-to-right
// sequence of non-overlapping matches. Searching backwards from the end
// of the text would pick different spans whenever candidates overlap:
// for the token "aa" in "aaa" the forward scan matches [0,2), so the last
// occurrence is [0,2), not [1,3).
package occurrence

import (
	"strings"

	"github.com/arthur-debert/relines/pkg/rules"
)

// Span is a half-open byte range [Start, End)
type Span struct {
	Start int
	End   int
}

// Len returns the span length in bytes
func (s Span) Len() int { return s.End - s.Start }

// Finder is the part of a compiled pattern the resolver needs
type Finder interface {
	Find(s string) []int
	FindAll(s string) [][]int
}

// FindSpans returns the spans selected by occ, left to right. It returns
// nil when nothing matches.
func FindSpans(haystack string, p Finder, occ rules.Occurrence) []Span {
	switch occ {
	case rules.OccurrenceFirst:
		loc := p.Find(haystack)
		if loc == nil {
			return nil
		}
		return []Span{{Start: loc[0], End: loc[1]}}
	case rules.OccurrenceLast:
		all := allSpans(haystack, p)
		if len(all) == 0 {
			return nil
		}
		return all[len(all)-1:]
	default:
		return allSpans(haystack, p)
	}
}

func allSpans(haystack string, p Finder) []Span {
	locs := p.FindAll(haystack)
	if len(locs) == 0 {
		return nil
	}
	spans := make([]Span, len(locs))
	for i, loc := range locs {
		spans[i] = Span{Start: loc[0], End: loc[1]}
	}
	return spans
}

// Splice substitutes every span with replacement. Spans must be sorted
// and non-overlapping, which is what FindSpans returns.
func Splice(haystack string, spans []Span, replacement string) string {
	if len(spans) == 0 {
		return haystack
	}

	var b strings.Builder
	b.Grow(len(haystack) + len(spans)*len(replacement))

	prev := 0
	for _, s := range spans {
		b.WriteString(haystack[prev:s.Start])
		b.WriteString(replacement)
		prev = s.End
	}
	b.WriteString(haystack[prev:])
	return b.String()
}

// Replace resolves spans and splices the replacement in one step. It also
// returns how many spans were substituted.
func Replace(haystack string, p Finder, occ rules.Occurrence, replacement string) (string, int) {
	spans := FindSpans(haystack, p, occ)
	return Splice(haystack, spans, replacement), len(spans)
}
