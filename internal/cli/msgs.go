package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Rewrite text line by line with ordered rules"
	MsgApplyShort      = "Apply rules to files or standard input"
	MsgAssembleShort   = "Join lines into a single value such as a JSON array"
	MsgRulesShort      = "Inspect, validate and convert rule files"
	MsgRulesShowShort  = "Show the resolved rule list"
	MsgRulesCheckShort = "Validate rule files"
	MsgRulesConvShort  = "Convert rule files to another format"
	MsgRulesInitShort  = "Write an example rule file"
	MsgConfigShort     = "Manage the relines configuration"
	MsgConfigGenShort  = "Generate the default configuration file"
	MsgConfigPathShort = "Show where configuration files are read from"
	MsgVersionShort    = "Print version information"
	MsgVersionLong     = "Print detailed version information including commit hash and build date"
	MsgTopicsShort     = "Display available documentation topics"
	MsgTopicsLong      = "Display a list of all available help topics that provide additional documentation beyond command help."
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgNoRules         = "No rules given, output equals input"
	MsgRuleFileOK      = "✓ %s: %d rule(s)\n"
	MsgRuleNoop        = "  ! rule %d has an empty token and does nothing\n"
	MsgFileCreated     = "Created %s\n"
	MsgFileWouldCreate = "Would create %s\n"
	MsgConfigPathUser  = "user:    %s\n"
	MsgConfigPathProj  = "project: %s\n"
	MsgConfigPathEnv   = "env:     %s*\n"

	// Version output
	MsgVersionFormat = "relines version %s\n"
	MsgCommitFormat  = "Commit: %s\n"
	MsgBuiltFormat   = "Built:  %s\n"

	// Error messages
	MsgErrNoCommand      = "no command specified"
	MsgErrInPlaceStdin   = "--in-place needs input files"
	MsgErrInPlaceOutput  = "--in-place and --output cannot be used together"
	MsgErrOutputMany     = "--output takes a single input, got %d"
	MsgErrInlineRule     = "invalid --rule"
	MsgErrNoRuleFiles    = "no rule files to check"
	MsgErrFileExists     = "%s already exists, use --force to overwrite"

	// Flag descriptions
	MsgFlagVerbose    = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun     = "Preview changes without writing any file"
	MsgFlagConfig     = "Configuration file (TOML or YAML)"
	MsgFlagRules      = "Rule file to load (repeatable, TOML, YAML or XML)"
	MsgFlagRule       = "Inline rule, applied after rule files (repeatable)"
	MsgFlagOutput     = "Write the result to this file instead of standard output"
	MsgFlagInPlace    = "Rewrite input files in place"
	MsgFlagEOL        = "Output line ending: lf, crlf, cr or keep"
	MsgFlagEncoding   = "Input encoding: auto, utf-8, utf-16le, utf-16be, windows-1252, latin-1"
	MsgFlagFormat     = "Report format: auto, term, text or json"
	MsgFlagStats      = "Print per-rule substitution counts to standard error"
	MsgFlagPrefix     = "Text before the first item"
	MsgFlagItemPrefix = "Text before every item"
	MsgFlagSeparator  = "Text between items"
	MsgFlagItemSuffix = "Text after every item"
	MsgFlagSuffix     = "Text after the last item"
	MsgFlagPretty     = "Put prefix and suffix on their own lines and indent items"
	MsgFlagIndent     = "Indentation used by --pretty"
	MsgFlagPreset     = "Starting point for the other settings: json, none or lines"
	MsgFlagTo         = "Target format: toml, yaml or xml"
	MsgFlagRuleFormat = "Rule file format: toml, yaml or xml"
	MsgFlagForce      = "Overwrite an existing file"
	MsgFlagWrite      = "Write the file instead of printing it"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/apply-long.txt
	msgApplyLongRaw string
	MsgApplyLong    = strings.TrimSpace(msgApplyLongRaw)

	//go:embed msgs/apply-example.txt
	msgApplyExampleRaw string
	MsgApplyExample    = strings.TrimRight(msgApplyExampleRaw, "\n")

	//go:embed msgs/assemble-long.txt
	msgAssembleLongRaw string
	MsgAssembleLong    = strings.TrimSpace(msgAssembleLongRaw)

	//go:embed msgs/assemble-example.txt
	msgAssembleExampleRaw string
	MsgAssembleExample    = strings.TrimRight(msgAssembleExampleRaw, "\n")

	//go:embed msgs/rules-long.txt
	msgRulesLongRaw string
	MsgRulesLong    = strings.TrimSpace(msgRulesLongRaw)

	//go:embed msgs/rules-example.txt
	msgRulesExampleRaw string
	MsgRulesExample    = strings.TrimRight(msgRulesExampleRaw, "\n")

	//go:embed msgs/config-gen-long.txt
	msgConfigGenLongRaw string
	MsgConfigGenLong    = strings.TrimSpace(msgConfigGenLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
