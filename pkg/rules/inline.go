package rules

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type word struct {
	text   string
	quoted bool
}

// ParseInline parses the one-line rule syntax:
//
//	<mode> <scope> [<occurrence>] (ws | <token>) [with <replacement>]
//
// The returned rule has an empty ID.
func ParseInline(s string) (Rule, error) {
	words, err := splitWords(s)
	if err != nil {
		return Rule{}, err
	}
	if len(words) < 3 {
		return Rule{}, fmt.Errorf("rule %q: expected at least mode, scope and target", s)
	}

	var r Rule
	if r.Mode, err = ParseMode(words[0].text); err != nil || words[0].quoted {
		return Rule{}, fmt.Errorf("rule %q: unknown mode %q", s, words[0].text)
	}
	if r.Scope, err = ParseScope(words[1].text); err != nil || words[1].quoted {
		return Rule{}, fmt.Errorf("rule %q: unknown scope %q", s, words[1].text)
	}

	rest := words[2:]
	if !rest[0].quoted && isOccurrenceWord(rest[0].text) {
		r.Occurrence, _ = ParseOccurrence(rest[0].text)
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return Rule{}, fmt.Errorf("rule %q: missing target", s)
	}

	target := rest[0]
	rest = rest[1:]
	if !target.quoted && isWhitespaceWord(target.text) {
		r.Target = TargetWhitespace
	} else {
		r.Target = TargetLiteral
		r.Token = target.text
	}

	if len(rest) > 0 {
		if rest[0].quoted || !strings.EqualFold(rest[0].text, "with") {
			return Rule{}, fmt.Errorf("rule %q: unexpected %q", s, rest[0].text)
		}
		if len(rest) != 2 {
			return Rule{}, fmt.Errorf("rule %q: 'with' takes exactly one replacement", s)
		}
		r.Replacement = rest[1].text
	}

	return r, nil
}

// Inline renders the rule in the syntax accepted by ParseInline
func (r Rule) Inline() string {
	parts := []string{r.Mode.String(), r.Scope.String()}
	if r.Scope == ScopeCenter {
		parts = append(parts, r.Occurrence.String())
	}
	if r.Target == TargetWhitespace {
		parts = append(parts, "ws")
	} else {
		parts = append(parts, strconv.Quote(r.Token))
	}
	if r.Mode == ModeReplace {
		parts = append(parts, "with", strconv.Quote(r.Replacement))
	}
	return strings.Join(parts, " ")
}

func isOccurrenceWord(s string) bool {
	switch strings.ToLower(s) {
	case "all", "every", "first", "last":
		return true
	}
	return false
}

func isWhitespaceWord(s string) bool {
	switch strings.ToLower(s) {
	case "ws", "whitespace", "space", "spaces":
		return true
	}
	return false
}

func splitWords(s string) ([]word, error) {
	var words []word
	for {
		s = strings.TrimLeftFunc(s, unicode.IsSpace)
		if s == "" {
			return words, nil
		}

		r, _ := utf8.DecodeRuneInString(s)
		if r == '"' || r == '`' {
			quoted, err := strconv.QuotedPrefix(s)
			if err != nil {
				return nil, fmt.Errorf("unterminated or invalid quoted string at %q", s)
			}
			text, err := strconv.Unquote(quoted)
			if err != nil {
				return nil, fmt.Errorf("invalid quoted string %s: %w", quoted, err)
			}
			words = append(words, word{text: text, quoted: true})
			s = s[len(quoted):]
			continue
		}

		end := strings.IndexFunc(s, unicode.IsSpace)
		if end < 0 {
			end = len(s)
		}
		words = append(words, word{text: s[:end]})
		s = s[end:]
	}
}
