// Package pattern turns rule targets into matchable patterns.
//
// Literal tokens are always matched verbatim: every character with a
// special meaning in regular expression syntax is escaped before the
// pattern is compiled, so a token such as "a.b" only ever matches the
// three characters a, '.', b. Tokens may contain line breaks; those are
// matched literally like any other character.
package pattern

import (
	"regexp"
)

// whitespaceClass matches what the rule editor treats as whitespace: the
// ASCII space characters, vertical tab, every Unicode space separator,
// the line and paragraph separators and the zero-width no-break space.
const whitespaceClass = `[\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}]+`

// Kind tells how a Pattern was built.
type Kind int

const (
	// KindNone is the empty pattern. It never matches.
	KindNone Kind = iota
	// KindLiteral is an escaped literal token.
	KindLiteral
	// KindWhitespace is a run of one or more whitespace characters.
	KindWhitespace
	// KindNewline is a single literal line break.
	KindNewline
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindWhitespace:
		return "whitespace"
	case KindNewline:
		return "newline"
	default:
		return "none"
	}
}

// Pattern is a compiled, immutable matcher. The zero value matches nothing.
type Pattern struct {
	kind    Kind
	literal string
	re      *regexp.Regexp
	prefix  *regexp.Regexp
	suffix  *regexp.Regexp
}

// Escape returns token with every regular expression metacharacter
// prefixed by a backslash.
func Escape(token string) string {
	return regexp.QuoteMeta(token)
}

// Compile builds a pattern matching token byte for byte. An empty token
// yields a pattern that matches nothing; callers are expected to skip
// empty tokens before getting here.
func Compile(token string) Pattern {
	if token == "" {
		return Pattern{}
	}
	return build(KindLiteral, token, Escape(token))
}

// Whitespace returns the pattern for one or more consecutive whitespace
// characters.
func Whitespace() Pattern {
	return whitespace
}

// Newline returns the pattern for a single line break. It behaves exactly
// like Compile("\n") and exists so that "collapse every line break" rules
// have a named, precompiled matcher.
func Newline() Pattern {
	return newline
}

var (
	whitespace = build(KindWhitespace, "", whitespaceClass)
	newline    = build(KindNewline, "\n", `\n`)
)

func build(kind Kind, literal, src string) Pattern {
	return Pattern{
		kind:    kind,
		literal: literal,
		re:      regexp.MustCompile(src),
		prefix:  regexp.MustCompile(`^(?:` + src + `)`),
		suffix:  regexp.MustCompile(`(?:` + src + `)$`),
	}
}

// Kind reports how the pattern was built.
func (p Pattern) Kind() Kind { return p.kind }

// IsEmpty reports whether the pattern can never match.
func (p Pattern) IsEmpty() bool { return p.re == nil }

// Literal returns the verbatim token for literal and newline patterns.
func (p Pattern) Literal() (string, bool) {
	if p.kind == KindLiteral || p.kind == KindNewline {
		return p.literal, true
	}
	return "", false
}

// String returns the compiled expression source, or "" for the empty pattern.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// Find returns the leftmost match as a two element index slice, or nil.
func (p Pattern) Find(s string) []int {
	if p.re == nil {
		return nil
	}
	return p.re.FindStringIndex(s)
}

// FindAll returns every non-overlapping match, scanned left to right.
func (p Pattern) FindAll(s string) [][]int {
	if p.re == nil {
		return nil
	}
	return p.re.FindAllStringIndex(s, -1)
}

// MatchPrefix returns the end offset of the match anchored at offset 0.
func (p Pattern) MatchPrefix(s string) (int, bool) {
	if p.prefix == nil {
		return 0, false
	}
	loc := p.prefix.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	return loc[1], true
}

// MatchSuffix returns the start offset of the leftmost match that ends at
// len(s). For whitespace this is the maximal trailing run.
func (p Pattern) MatchSuffix(s string) (int, bool) {
	if p.suffix == nil {
		return 0, false
	}
	loc := p.suffix.FindStringIndex(s)
	if loc == nil {
		return 0, false
	}
	return loc[0], true
}
