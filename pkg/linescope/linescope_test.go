// Test Type: Unit Test
// Description: Tests for per-line rule application and anchoring

package linescope_test

import (
	"testing"

	"github.com/arthur-debert/relines/pkg/linescope"
	"github.com/arthur-debert/relines/pkg/rules"
	"github.com/stretchr/testify/assert"
)

func ws(mode rules.Mode, scope rules.Scope) rules.Rule {
	return rules.Rule{Mode: mode, Scope: scope, Target: rules.TargetWhitespace}
}

func lit(mode rules.Mode, scope rules.Scope, token string) rules.Rule {
	return rules.Rule{Mode: mode, Scope: scope, Target: rules.TargetLiteral, Token: token}
}

func TestApplyLine_StartAndEnd(t *testing.T) {
	t.Run("trim_both_sides", func(t *testing.T) {
		out := linescope.ApplyLines("  hello  ", []rules.Rule{
			ws(rules.ModeRemove, rules.ScopeStart),
			ws(rules.ModeRemove, rules.ScopeEnd),
		})
		assert.Equal(t, "hello", out)
	})

	t.Run("end_only", func(t *testing.T) {
		assert.Equal(t, "  hello", linescope.ApplyLine("  hello  ", ws(rules.ModeRemove, rules.ScopeEnd)))
	})

	t.Run("start_literal_must_be_at_offset_zero", func(t *testing.T) {
		r := lit(rules.ModeRemove, rules.ScopeStart, "//")
		assert.Equal(t, " comment", linescope.ApplyLine("// comment", r))
		assert.Equal(t, "x // comment", linescope.ApplyLine("x // comment", r))
	})

	t.Run("start_removes_only_one_match", func(t *testing.T) {
		r := lit(rules.ModeRemove, rules.ScopeStart, "-")
		assert.Equal(t, "--x", linescope.ApplyLine("---x", r))
	})

	t.Run("end_literal_replace", func(t *testing.T) {
		r := lit(rules.ModeReplace, rules.ScopeEnd, ",")
		r.Replacement = ";"
		assert.Equal(t, "a,b;", linescope.ApplyLine("a,b,", r))
		assert.Equal(t, "a,b", linescope.ApplyLine("a,b", r))
	})

	t.Run("start_whitespace_replace", func(t *testing.T) {
		r := ws(rules.ModeReplace, rules.ScopeStart)
		r.Replacement = "> "
		assert.Equal(t, "> quoted", linescope.ApplyLine(" \t quoted", r))
	})

	t.Run("occurrence_ignored_for_anchored_scopes", func(t *testing.T) {
		r := lit(rules.ModeRemove, rules.ScopeEnd, "x")
		r.Occurrence = rules.OccurrenceAll
		assert.Equal(t, "xax", linescope.ApplyLine("xaxx", r))
	})
}

func TestApplyLine_Center(t *testing.T) {
	tests := []struct {
		name string
		rule rules.Rule
		in   string
		want string
	}{
		{
			name: "remove_last_literal",
			rule: rules.Rule{Mode: rules.ModeRemove, Scope: rules.ScopeCenter, Target: rules.TargetLiteral, Token: "a", Occurrence: rules.OccurrenceLast},
			in:   "a-b-a-b-a",
			want: "a-b-a-b-",
		},
		{
			name: "remove_first_literal",
			rule: rules.Rule{Mode: rules.ModeRemove, Scope: rules.ScopeCenter, Target: rules.TargetLiteral, Token: "a", Occurrence: rules.OccurrenceFirst},
			in:   "a-b-a-b-a",
			want: "-b-a-b-a",
		},
		{
			name: "remove_all_whitespace",
			rule: ws(rules.ModeRemove, rules.ScopeCenter),
			in:   " a b\tc ",
			want: "abc",
		},
		{
			name: "replace_last_whitespace_run",
			rule: rules.Rule{Mode: rules.ModeReplace, Scope: rules.ScopeCenter, Target: rules.TargetWhitespace, Occurrence: rules.OccurrenceLast, Replacement: "|"},
			in:   "a  b   c",
			want: "a  b|c",
		},
		{
			name: "escaped_literal",
			rule: rules.Rule{Mode: rules.ModeReplace, Scope: rules.ScopeCenter, Target: rules.TargetLiteral, Token: "a.b", Replacement: "X"},
			in:   "a.b axb a.b",
			want: "X axb X",
		},
		{
			name: "replace_without_replacement_removes",
			rule: rules.Rule{Mode: rules.ModeReplace, Scope: rules.ScopeCenter, Target: rules.TargetLiteral, Token: "$"},
			in:   "$1.00",
			want: "1.00",
		},
		{
			name: "no_match_passes_through",
			rule: rules.Rule{Mode: rules.ModeRemove, Scope: rules.ScopeCenter, Target: rules.TargetLiteral, Token: "zz"},
			in:   "abc",
			want: "abc",
		},
		{
			name: "empty_token_is_noop",
			rule: rules.Rule{Mode: rules.ModeReplace, Scope: rules.ScopeCenter, Target: rules.TargetLiteral, Replacement: "boom"},
			in:   "abc",
			want: "abc",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, linescope.ApplyLine(tt.in, tt.rule))
		})
	}
}

func TestApplyLine_RemoveAllIsIdempotent(t *testing.T) {
	r := ws(rules.ModeRemove, rules.ScopeCenter)
	for _, in := range []string{"", "   ", " a  b ", "a \tb"} {
		once := linescope.ApplyLine(in, r)
		assert.Equal(t, once, linescope.ApplyLine(once, r), in)
	}
}

func TestApplyLines_OrderMatters(t *testing.T) {
	removeSpaces := ws(rules.ModeRemove, rules.ScopeCenter)
	replaceDouble := rules.Rule{Mode: rules.ModeReplace, Scope: rules.ScopeCenter, Target: rules.TargetLiteral, Token: "  ", Replacement: "_"}

	ab := linescope.ApplyLines("a  b", []rules.Rule{removeSpaces, replaceDouble})
	ba := linescope.ApplyLines("a  b", []rules.Rule{replaceDouble, removeSpaces})

	assert.Equal(t, "ab", ab)
	assert.Equal(t, "a_b", ba)
	assert.NotEqual(t, ab, ba)
}

func TestApplyLineCount(t *testing.T) {
	out, n := linescope.ApplyLineCount("a,b,c", rules.Rule{Mode: rules.ModeRemove, Scope: rules.ScopeCenter, Target: rules.TargetLiteral, Token: ","})
	assert.Equal(t, "abc", out)
	assert.Equal(t, 2, n)

	_, n = linescope.ApplyLineCount("abc", rules.Rule{Mode: rules.ModeRemove, Scope: rules.ScopeStart, Target: rules.TargetWhitespace})
	assert.Equal(t, 0, n)
}

func TestCompileAll_DropsNoops(t *testing.T) {
	compiled := linescope.CompileAll([]rules.Rule{
		{Target: rules.TargetLiteral},
		{Target: rules.TargetWhitespace},
		{Target: rules.TargetLiteral, Token: "x"},
	})
	assert.Len(t, compiled, 2)
	assert.Nil(t, linescope.Compile(rules.Rule{Target: rules.TargetLiteral}))
}
