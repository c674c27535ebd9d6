package testutil

import "github.com/arthur-debert/relines/pkg/rules"

// TrimRules strips leading and trailing whitespace from every line
func TrimRules() []rules.Rule {
	return []rules.Rule{
		{ID: "trim-start", Mode: rules.ModeRemove, Scope: rules.ScopeStart, Target: rules.TargetWhitespace},
		{ID: "trim-end", Mode: rules.ModeRemove, Scope: rules.ScopeEnd, Target: rules.TargetWhitespace},
	}
}

// JoinLinesRule replaces every line break with sep
func JoinLinesRule(sep string) rules.Rule {
	return rules.Rule{
		ID:          "join-lines",
		Mode:        rules.ModeReplace,
		Scope:       rules.ScopeCenter,
		Target:      rules.TargetLiteral,
		Token:       "\n",
		Occurrence:  rules.OccurrenceAll,
		Replacement: sep,
	}
}

// TrimRulesTOML is TrimRules as a TOML rule file
const TrimRulesTOML = `[[rules]]
id = "trim-start"
mode = "remove"
scope = "start"
target = "whitespace"

[[rules]]
id = "trim-end"
mode = "remove"
scope = "end"
target = "whitespace"
`
