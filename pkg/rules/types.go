package rules

import (
	"fmt"
	"strings"
)

// Mode selects what happens to a match
type Mode int

const (
	// ModeRemove deletes the match
	ModeRemove Mode = iota
	// ModeReplace substitutes the match with the rule's replacement
	ModeReplace
)

// Scope anchors a rule within a line (or the document, for cross-line rules)
type Scope int

const (
	// ScopeStart matches only at the start of the line
	ScopeStart Scope = iota
	// ScopeCenter matches anywhere, subject to the occurrence policy
	ScopeCenter
	// ScopeEnd matches only at the end of the line
	ScopeEnd
)

// Target selects what a rule matches
type Target int

const (
	// TargetWhitespace matches one or more consecutive whitespace characters
	TargetWhitespace Target = iota
	// TargetLiteral matches the rule's token verbatim
	TargetLiteral
)

// Occurrence selects which matches a center rule acts on. The zero value
// is OccurrenceAll.
type Occurrence int

const (
	OccurrenceAll Occurrence = iota
	OccurrenceFirst
	OccurrenceLast
)

// Rule is one remove/replace instruction
type Rule struct {
	// ID identifies the rule in an editable list. It has no effect on matching.
	ID string

	Mode   Mode
	Scope  Scope
	Target Target

	// Token is the literal matched by TargetLiteral rules
	Token string

	// Occurrence is only consulted for ScopeCenter
	Occurrence Occurrence

	// Replacement is only used by ModeReplace; empty means remove
	Replacement string
}

var (
	modeNames       = map[Mode]string{ModeRemove: "remove", ModeReplace: "replace"}
	scopeNames      = map[Scope]string{ScopeStart: "start", ScopeCenter: "center", ScopeEnd: "end"}
	targetNames     = map[Target]string{TargetWhitespace: "whitespace", TargetLiteral: "literal"}
	occurrenceNames = map[Occurrence]string{OccurrenceAll: "all", OccurrenceFirst: "first", OccurrenceLast: "last"}
)

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

func (s Scope) String() string {
	if name, ok := scopeNames[s]; ok {
		return name
	}
	return fmt.Sprintf("scope(%d)", int(s))
}

func (t Target) String() string {
	if name, ok := targetNames[t]; ok {
		return name
	}
	return fmt.Sprintf("target(%d)", int(t))
}

func (o Occurrence) String() string {
	if name, ok := occurrenceNames[o]; ok {
		return name
	}
	return fmt.Sprintf("occurrence(%d)", int(o))
}

// ParseMode parses a mode name
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "remove", "delete", "rm":
		return ModeRemove, nil
	case "replace", "sub":
		return ModeReplace, nil
	default:
		return ModeRemove, fmt.Errorf("unknown mode: %q", s)
	}
}

// ParseScope parses a scope name
func ParseScope(s string) (Scope, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start", "begin", "prefix":
		return ScopeStart, nil
	case "center", "centre", "middle", "anywhere":
		return ScopeCenter, nil
	case "end", "suffix":
		return ScopeEnd, nil
	default:
		return ScopeStart, fmt.Errorf("unknown scope: %q", s)
	}
}

// ParseTarget parses a target name. "space" and "custom" are accepted for
// rule lists exported by the original web editor.
func ParseTarget(s string) (Target, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "whitespace", "ws", "space", "spaces":
		return TargetWhitespace, nil
	case "literal", "custom", "token", "text":
		return TargetLiteral, nil
	default:
		return TargetWhitespace, fmt.Errorf("unknown target: %q", s)
	}
}

// ParseOccurrence parses an occurrence name. The empty string is All.
func ParseOccurrence(s string) (Occurrence, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", "every":
		return OccurrenceAll, nil
	case "first":
		return OccurrenceFirst, nil
	case "last":
		return OccurrenceLast, nil
	default:
		return OccurrenceAll, fmt.Errorf("unknown occurrence: %q", s)
	}
}
