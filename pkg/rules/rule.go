package rules

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewID returns a fresh opaque rule identifier
func NewID() string {
	return uuid.New().String()
}

// IsNoop reports whether the rule can never change its input: a literal
// rule with an empty token.
func (r Rule) IsNoop() bool {
	return r.Target == TargetLiteral && r.Token == ""
}

// EffectiveReplacement is what a match is substituted with: the
// replacement for ModeReplace and the empty string for ModeRemove.
func (r Rule) EffectiveReplacement() string {
	if r.Mode == ModeReplace {
		return r.Replacement
	}
	return ""
}

// Normalize returns a copy with boundary defaults applied: out of range
// occurrences fall back to all, remove rules drop their replacement,
// whitespace rules drop their token and a missing ID is generated.
func (r Rule) Normalize() Rule {
	if _, ok := occurrenceNames[r.Occurrence]; !ok {
		r.Occurrence = OccurrenceAll
	}
	if r.Mode == ModeRemove {
		r.Replacement = ""
	}
	if r.Target == TargetWhitespace {
		r.Token = ""
	}
	if r.ID == "" {
		r.ID = NewID()
	}
	return r
}

// Validate reports rule fields that hold values outside their enum. The
// pipeline never calls it; it exists for hosts that want to warn early.
func (r Rule) Validate() error {
	if _, ok := modeNames[r.Mode]; !ok {
		return fmt.Errorf("invalid mode %d", int(r.Mode))
	}
	if _, ok := scopeNames[r.Scope]; !ok {
		return fmt.Errorf("invalid scope %d", int(r.Scope))
	}
	if _, ok := targetNames[r.Target]; !ok {
		return fmt.Errorf("invalid target %d", int(r.Target))
	}
	if _, ok := occurrenceNames[r.Occurrence]; !ok {
		return fmt.Errorf("invalid occurrence %d", int(r.Occurrence))
	}
	return nil
}

// NormalizeAll normalizes every rule, preserving order
func NormalizeAll(rs []Rule) []Rule {
	out := make([]Rule, len(rs))
	for i, r := range rs {
		out[i] = r.Normalize()
	}
	return out
}

// CountNewlines returns the number of line breaks in s
func CountNewlines(s string) int {
	return strings.Count(s, "\n")
}
