// Test Type: Integration Test
// Description: Tests for the relines commands, run end to end through cobra

package cli

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func execute(t *testing.T, stdin string, args ...string) result {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	// A nil slice makes cobra fall back to os.Args
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func TestApply_Stdin(t *testing.T) {
	testutil.NewEnvironment(t)

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "trim",
			stdin: "  a  \n\tb\t\n",
			args:  []string{"--rule", "remove start ws", "--rule", "remove end ws"},
			want:  "a\nb\n",
		},
		{
			name:  "join_lines",
			stdin: "a\nb\nc",
			args:  []string{"--rule", `replace center "\n" with ","`},
			want:  "a,b,c",
		},
		{
			name:  "last_occurrence",
			stdin: "a;b;c;",
			args:  []string{"--rule", `replace center last ";" with "."`},
			want:  "a;b;c.",
		},
		{
			name:  "no_rules_is_identity",
			stdin: "  keep me  \n",
			args:  nil,
			want:  "  keep me  \n",
		},
		{
			name:  "crlf_output",
			stdin: "a\nb",
			args:  []string{"--eol", "crlf"},
			want:  "a\r\nb",
		},
		{
			name:  "keep_line_endings",
			stdin: "a \r\nb \r\n",
			args:  []string{"--eol", "keep", "--rule", "remove end ws"},
			want:  "a\r\nb\r\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.stdin, append([]string{"apply"}, tt.args...)...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}
}

func TestApply_RuleFile(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "trim.toml", testutil.TrimRulesTOML)
	env.WriteFile(t, "in.txt", "  x  \n  y\n")

	res := execute(t, "", "apply", "-r", "trim.toml", "in.txt")
	require.NoError(t, res.err)
	assert.Equal(t, "x\ny\n", res.stdout)
}

func TestApply_RuleFilesThenInlineRules(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "trim.toml", testutil.TrimRulesTOML)

	res := execute(t, " a \n b \n", "apply", "-r", "trim.toml", "--rule", `replace end "" with "!"`, "--rule", `replace center "\n" with "|"`)
	require.NoError(t, res.err)
	// The cross-line rule runs first, so the trims see a single line
	assert.Equal(t, "a | b |", res.stdout)
}

func TestApply_InPlace(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteFile(t, "in.txt", "  x  \n  y\n")

	res := execute(t, "", "apply", "--rule", "remove start ws", "--rule", "remove end ws", "-i", "in.txt")
	require.NoError(t, res.err)

	testutil.AssertFileContent(t, path, "x\ny\n")
	assert.Contains(t, res.stdout, "in.txt -> in.txt: changed")
}

func TestApply_InPlaceKeepsLegacyBytes(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteFile(t, "latin.txt", "caf\xe9  \nna\xefve\n")

	res := execute(t, "", "apply", "--rule", "remove end ws", "-i", "latin.txt")
	require.NoError(t, res.err)

	testutil.AssertFileContent(t, path, "caf\xe9\nna\xefve\n")
}

func TestApply_DryRun(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := env.WriteFile(t, "in.txt", "  x  \n")

	res := execute(t, "", "--dry-run", "apply", "--rule", "remove start ws", "-i", "in.txt")
	require.NoError(t, res.err)

	testutil.AssertFileContent(t, path, "  x  \n")
	assert.Contains(t, res.stdout, "Dry run")
}

func TestApply_OutputFile(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "in.txt", "a\nb\n")

	res := execute(t, "", "apply", "--rule", `replace start "" with "x"`, "--rule", `replace start "a" with "A"`, "-o", "out.txt", "in.txt")
	require.NoError(t, res.err)

	testutil.AssertFileContent(t, filepath.Join(env.WorkDir, "out.txt"), "A\nb\n")
	assert.Contains(t, res.stdout, "in.txt -> out.txt: changed")
}

func TestApply_StatsJSON(t *testing.T) {
	testutil.NewEnvironment(t)

	res := execute(t, "a \nb \n", "apply", "--rule", "remove end ws", "--stats", "--format", "json")
	require.NoError(t, res.err)
	assert.Equal(t, "a\nb\n", res.stdout)

	var summary struct {
		DryRun bool `json:"dryRun"`
		Files  []struct {
			Input   string `json:"input"`
			Output  string `json:"output"`
			Changed bool   `json:"changed"`
			Rules   []struct {
				Rule    string `json:"rule"`
				Matches int    `json:"matches"`
			} `json:"rules"`
		} `json:"files"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stderr), &summary))
	require.Len(t, summary.Files, 1)
	assert.Equal(t, "<stdin>", summary.Files[0].Input)
	assert.Equal(t, "<stdout>", summary.Files[0].Output)
	assert.True(t, summary.Files[0].Changed)
	require.Len(t, summary.Files[0].Rules, 1)
	assert.Equal(t, "remove end ws", summary.Files[0].Rules[0].Rule)
	assert.Equal(t, 2, summary.Files[0].Rules[0].Matches)
}

func TestApply_Errors(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "a.txt", "a")
	env.WriteFile(t, "b.txt", "b")

	tests := []struct {
		name string
		args []string
		code errors.ErrorCode
	}{
		{"in_place_stdin", []string{"apply", "-i"}, errors.ErrInvalidInput},
		{"in_place_and_output", []string{"apply", "-i", "-o", "x.txt", "a.txt"}, errors.ErrInvalidInput},
		{"output_many_inputs", []string{"apply", "-o", "x.txt", "a.txt", "b.txt"}, errors.ErrInvalidInput},
		{"bad_inline_rule", []string{"apply", "--rule", "shred start ws"}, errors.ErrInvalidRule},
		{"missing_input", []string{"apply", "missing.txt"}, errors.ErrNotFound},
		{"missing_rule_file", []string{"apply", "-r", "missing.toml"}, errors.ErrRuleFileRead},
		{"bad_eol", []string{"apply", "--eol", "nel"}, errors.ErrConfigParse},
		{"bad_encoding", []string{"apply", "--encoding", "ebcdic"}, errors.ErrConfigParse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, "", tt.args...)
			require.Error(t, res.err)
			assert.True(t, errors.IsErrorCode(res.err, tt.code), "got %v", res.err)
		})
	}
}

func TestApply_ProjectConfig(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "trim.toml", testutil.TrimRulesTOML)
	env.WriteFile(t, ".relines.toml", `
[output]
eol = "crlf"

[rules]
files = ["trim.toml"]
`)

	res := execute(t, " a \n b ", "apply")
	require.NoError(t, res.err)
	assert.Equal(t, "a\r\nb", res.stdout)

	// Flags win over the project file
	res = execute(t, " a \n b ", "apply", "--eol", "lf", "--rule", "remove center ws")
	require.NoError(t, res.err)
	assert.Equal(t, "a\nb", res.stdout)
}

func TestApply_ExplicitConfig(t *testing.T) {
	env := testutil.NewEnvironment(t)
	cfgPath := env.WriteFile(t, "custom.yaml", "output:\n  eol: cr\n")

	res := execute(t, "a\nb", "--config", cfgPath, "apply")
	require.NoError(t, res.err)
	assert.Equal(t, "a\rb", res.stdout)

	res = execute(t, "a", "--config", "missing.toml", "apply")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigLoad))
}

func TestAssemble(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "list.txt", "a\n\n b \nc\n")

	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{
			name:  "json_default",
			stdin: "a\n\n b \nc\n",
			want:  `["a","b","c"]` + "\n",
		},
		{
			name: "from_file",
			args: []string{"list.txt"},
			want: `["a","b","c"]` + "\n",
		},
		{
			name:  "preset_none_with_separator",
			stdin: "a\nb\n",
			args:  []string{"--preset", "none", "--separator", "; "},
			want:  "a; b\n",
		},
		{
			name:  "sql_list",
			stdin: "1\n2\n",
			args:  []string{"--prefix", "(", "--suffix", ")", "--item-prefix", "'", "--item-suffix", "'"},
			want:  "('1','2')\n",
		},
		{
			name:  "pretty",
			stdin: "a\nb\n",
			args:  []string{"--pretty"},
			want:  "[\n  \"a\",\n  \"b\"\n]\n",
		},
		{
			name:  "rules_run_first",
			stdin: "a-1\nb-2\n",
			args:  []string{"--rule", `remove end "-1"`, "--rule", `remove end "-2"`},
			want:  `["a","b"]` + "\n",
		},
		{
			name:  "blank_input",
			stdin: "\n  \n",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := execute(t, tt.stdin, append([]string{"assemble"}, tt.args...)...)
			require.NoError(t, res.err)
			assert.Equal(t, tt.want, res.stdout)
		})
	}

	t.Run("unknown_preset", func(t *testing.T) {
		res := execute(t, "a", "assemble", "--preset", "csv")
		require.Error(t, res.err)
		assert.True(t, errors.IsErrorCode(res.err, errors.ErrConfigParse))
	})
}

func TestRulesShow(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "trim.toml", testutil.TrimRulesTOML)

	res := execute(t, "", "rules", "show", "-r", "trim.toml", "--rule", `replace center "\n" with ","`, "--format", "text")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Rules from trim.toml, --rule")
	assert.Contains(t, res.stdout, "remove start ws")
	assert.Contains(t, res.stdout, "remove end ws")
	assert.Contains(t, res.stdout, "cross-line, 1 line break(s)")

	res = execute(t, "", "rules", "show", "-r", "trim.toml", "--format", "json")
	require.NoError(t, res.err)

	var list struct {
		Sources []string `json:"sources"`
		Rules   []struct {
			Index int    `json:"index"`
			ID    string `json:"id"`
		} `json:"rules"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &list))
	assert.Equal(t, []string{"trim.toml"}, list.Sources)
	require.Len(t, list.Rules, 2)
	assert.Equal(t, 1, list.Rules[0].Index)
	assert.Equal(t, "trim-start", list.Rules[0].ID)
}

// noopRulesTOML has an empty literal token between two trim rules
const noopRulesTOML = `[[rules]]
mode = "remove"
scope = "start"

[[rules]]
mode = "replace"
scope = "center"
token = ""
replacement = "x"

[[rules]]
mode = "remove"
scope = "end"
`

func TestRulesCheck(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "trim.toml", testutil.TrimRulesTOML)
	env.WriteFile(t, "bad.toml", "[[rules]]\nmode = \"shred\"\nscope = \"start\"\n")

	res := execute(t, "", "rules", "check", "trim.toml")
	require.NoError(t, res.err)
	assert.Equal(t, "✓ trim.toml: 2 rule(s)\n", res.stdout)

	res = execute(t, "", "rules", "check", "trim.toml", "bad.toml")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidRule))
	assert.Equal(t, 1, errors.GetErrorDetails(res.err)["index"])
	assert.Equal(t, "bad.toml", errors.GetErrorDetails(res.err)["path"])

	env.WriteFile(t, "noop.toml", noopRulesTOML)
	res = execute(t, "", "rules", "check", "noop.toml")
	require.NoError(t, res.err)
	assert.Equal(t, "✓ noop.toml: 3 rule(s)\n  ! rule 2 has an empty token and does nothing\n", res.stdout)

	res = execute(t, "", "rules", "check")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
}

func TestRulesConvert(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "trim.toml", testutil.TrimRulesTOML)

	res := execute(t, "", "rules", "convert", "--to", "yaml", "trim.toml")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "mode: remove")
	assert.Contains(t, res.stdout, "id: trim-start")

	res = execute(t, "", "rules", "convert", "--to", "xml", "-o", "trim.xml", "trim.toml")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Created trim.xml")

	// The converted file is usable as a rule file
	res = execute(t, "  z  ", "apply", "-r", "trim.xml")
	require.NoError(t, res.err)
	assert.Equal(t, "z", res.stdout)

	res = execute(t, "", "rules", "convert", "--to", "ini", "trim.toml")
	require.Error(t, res.err)
}

func TestRulesConvert_LineBreakToken(t *testing.T) {
	env := testutil.NewEnvironment(t)
	env.WriteFile(t, "join.toml", "[[rules]]\nmode = \"replace\"\nscope = \"center\"\ntoken = \"\\n\"\nreplacement = \",\"\n")

	res := execute(t, "", "rules", "convert", "--to", "yaml", "-o", "join.yaml", "join.toml")
	require.NoError(t, res.err)

	res = execute(t, "a\nb\nc", "apply", "-r", "join.yaml")
	require.NoError(t, res.err)
	assert.Equal(t, "a,b,c", res.stdout)
}

func TestRulesInit(t *testing.T) {
	env := testutil.NewEnvironment(t)
	path := filepath.Join(env.WorkDir, "rules.yaml")

	res := execute(t, "", "--dry-run", "rules", "init", "--format", "yaml")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "Would create rules.yaml")
	testutil.AssertNoFile(t, path)

	res = execute(t, "", "rules", "init", "--format", "yaml")
	require.NoError(t, res.err)
	assert.True(t, testutil.FileExists(t, path))

	res = execute(t, "", "rules", "init", "--format", "yaml")
	require.Error(t, res.err)

	res = execute(t, "", "rules", "init", "--format", "yaml", "--force")
	require.NoError(t, res.err)

	res = execute(t, "", "rules", "check", "rules.yaml")
	require.NoError(t, res.err)
}

func TestConfigGen(t *testing.T) {
	env := testutil.NewEnvironment(t)

	res := execute(t, "", "config", "gen")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "[output]")
	assert.Contains(t, res.stdout, `# eol = "lf"`)

	res = execute(t, "", "config", "gen", "-w")
	require.NoError(t, res.err)
	assert.True(t, testutil.FileExists(t, filepath.Join(env.WorkDir, ".relines.toml")))

	// A generated file is all comments, so it changes nothing
	res = execute(t, "a\nb", "apply")
	require.NoError(t, res.err)
	assert.Equal(t, "a\nb", res.stdout)

	res = execute(t, "", "config", "gen", "-w")
	require.Error(t, res.err)
}

func TestConfigPath(t *testing.T) {
	env := testutil.NewEnvironment(t)

	res := execute(t, "", "config", "path")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, filepath.Join(env.ConfigDir, "relines", "config.toml"))
	assert.Contains(t, res.stdout, "RELINES_*")
}

func TestMiscCommands(t *testing.T) {
	testutil.NewEnvironment(t)

	res := execute(t, "", "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "relines version dev")

	res = execute(t, "", "topics")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "cross-line")
	assert.Contains(t, res.stdout, "--eol")

	res = execute(t, "", "help", "topics")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "rule-files")

	// Output is not a terminal, so topics print as markdown source
	res = execute(t, "", "help", "cross-line")
	require.NoError(t, res.err)
	assert.True(t, strings.HasPrefix(res.stdout, "# Cross-line rules\n"), res.stdout)

	res = execute(t, "", "help", "eol")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "`keep`")

	res = execute(t, "", "completion", "bash")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "relines")

	res = execute(t, "")
	require.Error(t, res.err)
	assert.True(t, errors.IsErrorCode(res.err, errors.ErrInvalidInput))
}
