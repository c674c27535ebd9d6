// Package rules defines the edit rule model shared by every stage of the
// rewriting pipeline.
//
// A Rule removes or replaces either a run of whitespace or a literal token.
// The scope anchors the match at the start of a line, at its end, or
// anywhere within it ("center"). Center rules also carry an occurrence
// policy selecting the first, the last, or every match.
//
// # Rule Order
//
// Rules are applied strictly in list order: each rule sees the output of
// the previous one. The only exception is the cross-line group (literal
// tokens containing a line break), which runs against the whole document
// before any per-line rule.
//
// # Inline Syntax
//
// Rules can be written on one line, which is what the CLI --rule flag
// accepts:
//
//	remove start ws
//	replace center all "\n" with ","
//	remove center last "a"
//	replace end "," with ";"
//
// Tokens and replacements are bare words or Go quoted strings.
//
// # Defaults
//
// Rules are permissive. A missing occurrence means all, a missing
// replacement means the empty string and an empty literal token makes the
// rule a no-op. Normalize applies these defaults at the loading boundary.
package rules
