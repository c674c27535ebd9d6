// Package rulefile loads and writes rule lists.
//
// Three formats are supported, picked by file extension:
//
//	.toml         [[rules]] tables
//	.yaml, .yml   a top-level "rules" list
//	.xml          <rules><rule .../></rules>
//
// TOML and YAML rules use the keys id, mode, scope, target, token,
// occurrence and replacement (or its short form "with"). Lists exported by
// the original web editor carry from_start and from_end instead of token;
// end rules read from_end, start and center rules read from_start. An
// explicit token always wins.
//
// Omitted fields are inferred where that is unambiguous: mode is replace
// when a replacement is given and remove otherwise, target is literal when
// a token is given and whitespace otherwise. Scope is always required.
package rulefile
