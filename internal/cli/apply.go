package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/relines/pkg/config"
	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/logging"
	"github.com/arthur-debert/relines/pkg/paths"
	"github.com/arthur-debert/relines/pkg/pipeline"
	"github.com/arthur-debert/relines/pkg/rulefile"
	"github.com/arthur-debert/relines/pkg/rules"
	"github.com/arthur-debert/relines/pkg/textio"
	"github.com/arthur-debert/relines/pkg/ui"
	"github.com/arthur-debert/relines/pkg/ui/display"
	"github.com/spf13/cobra"
)

const (
	stdinLabel  = "<stdin>"
	stdoutLabel = "<stdout>"
	inlineLabel = "--rule"
)

// ruleFlags are the rule sources shared by apply, assemble and rules show
type ruleFlags struct {
	files  []string
	inline []string
}

func (f *ruleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.files, "rules", "r", nil, MsgFlagRules)
	cmd.Flags().StringArrayVar(&f.inline, "rule", nil, MsgFlagRule)
}

// resolve loads the rule files (falling back to the configured ones when
// useConfig is set and no file was given) followed by the inline rules.
// It returns the rules and a label per source.
func (f *ruleFlags) resolve(cfg *config.Config, useConfig bool) ([]rules.Rule, []string, error) {
	files := f.files
	if len(files) == 0 && useConfig {
		files = paths.ExpandAll(cfg.Rules.Files)
	}

	rs, err := rulefile.LoadAll(files)
	if err != nil {
		return nil, nil, err
	}
	sources := append([]string(nil), files...)

	for _, s := range f.inline {
		r, err := rules.ParseInline(s)
		if err != nil {
			return nil, nil, errors.Wrap(err, errors.ErrInvalidRule, MsgErrInlineRule).
				WithDetails(map[string]interface{}{"flag": inlineLabel, "rule": s})
		}
		rs = append(rs, r.Normalize())
	}
	if len(f.inline) > 0 {
		sources = append(sources, inlineLabel)
	}
	return rs, sources, nil
}

type applyOptions struct {
	rules    ruleFlags
	output   string
	inPlace  bool
	eol      string
	encoding string
	format   string
	stats    bool
}

// overrides maps the flags that were set onto configuration keys
func (o *applyOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	m := map[string]interface{}{}
	if cmd.Flags().Changed("eol") {
		m["output.eol"] = o.eol
	}
	if cmd.Flags().Changed("encoding") {
		m["input.encoding"] = o.encoding
	}
	if cmd.Flags().Changed("format") {
		m["output.format"] = o.format
	}
	return m
}

func newApplyCmd(g *globalOptions) *cobra.Command {
	o := &applyOptions{}

	cmd := &cobra.Command{
		Use:     "apply [files...]",
		Short:   MsgApplyShort,
		Long:    MsgApplyLong,
		Example: MsgApplyExample,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, g, o, args)
		},
	}

	o.rules.register(cmd)
	cmd.Flags().StringVarP(&o.output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().BoolVarP(&o.inPlace, "in-place", "i", false, MsgFlagInPlace)
	cmd.Flags().StringVar(&o.eol, "eol", "", MsgFlagEOL)
	cmd.Flags().StringVar(&o.encoding, "encoding", "", MsgFlagEncoding)
	cmd.Flags().StringVar(&o.format, "format", "", MsgFlagFormat)
	cmd.Flags().BoolVar(&o.stats, "stats", false, MsgFlagStats)

	return cmd
}

func runApply(cmd *cobra.Command, g *globalOptions, o *applyOptions, args []string) error {
	logger := logging.GetLogger("cli.apply")

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{textio.StdinName}
	}
	switch {
	case o.inPlace && o.output != "":
		return errors.New(errors.ErrInvalidInput, MsgErrInPlaceOutput)
	case o.inPlace && hasStdin(inputs):
		return errors.New(errors.ErrInvalidInput, MsgErrInPlaceStdin)
	case o.output != "" && len(inputs) > 1:
		return errors.Newf(errors.ErrInvalidInput, MsgErrOutputMany, len(inputs))
	}

	cfg, err := g.loadConfig(o.overrides(cmd))
	if err != nil {
		return err
	}
	enc, err := cfg.Encoding()
	if err != nil {
		return err
	}
	eol, keepEOL, err := cfg.LineEnding()
	if err != nil {
		return err
	}
	format, err := ui.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}

	rs, _, err := o.rules.resolve(cfg, true)
	if err != nil {
		return err
	}
	if len(rs) == 0 {
		logger.Warn().Msg(MsgNoRules)
	}

	summary := &display.Summary{DryRun: g.dryRun}
	var files []textio.OutputFile

	for _, input := range inputs {
		done := logging.LogOperationStart(logger, "apply "+label(input, stdinLabel))
		text, used, err := textio.ReadText(input, cmd.InOrStdin(), enc)
		if err != nil {
			return err
		}

		le := eol
		if keepEOL {
			le = pipeline.DetectLineEnding(text)
		}
		res := pipeline.Apply(text, rs, pipeline.Options{LineEnding: le})
		done()

		target := ""
		switch {
		case o.inPlace:
			target = input
		case o.output != "":
			target = o.output
		}

		if target == "" {
			if _, err := io.WriteString(cmd.OutOrStdout(), res.Text); err != nil {
				return errors.Wrap(err, errors.ErrFileWrite, "failed to write standard output")
			}
		} else {
			data, err := textio.Encode(res.Text, used)
			if err != nil {
				return err
			}
			files = append(files, textio.OutputFile{Path: target, Content: data})
		}

		report := display.NewFileReport(label(input, stdinLabel), label(target, stdoutLabel), res, le)
		report.Encoding = string(used)
		summary.Files = append(summary.Files, report)

		logger.Info().
			Str("input", input).
			Str("encoding", string(used)).
			Str("eol", le.String()).
			Bool("changed", res.Changed()).
			Msg("Processed input")
	}

	writer := textio.NewWriter(textio.WriterOptions{DryRun: g.dryRun, Overwrite: true})
	if err := writer.WriteFiles(cmd.Context(), files); err != nil {
		return err
	}

	// Reports go to stderr with --stats, or to stdout when stdout is free
	switch {
	case o.stats:
		return renderResult(format, cmd.ErrOrStderr(), summary)
	case len(files) > 0:
		return renderResult(format, cmd.OutOrStdout(), summary)
	}
	return nil
}

func renderResult(format ui.Format, w io.Writer, result interface{}) error {
	renderer, err := ui.NewRenderer(format, w)
	if err != nil {
		return err
	}
	return renderer.RenderResult(result)
}

func hasStdin(inputs []string) bool {
	for _, in := range inputs {
		if textio.IsStdin(in) {
			return true
		}
	}
	return false
}

func label(path, fallback string) string {
	if textio.IsStdin(path) {
		return fallback
	}
	return path
}

// writeOrPrint writes content to path, or prints it when path is empty
func writeOrPrint(cmd *cobra.Command, g *globalOptions, path string, content []byte, overwrite bool) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(content)
		return err
	}
	writer := textio.NewWriter(textio.WriterOptions{DryRun: g.dryRun, Overwrite: overwrite})
	if err := writer.WriteFile(cmd.Context(), path, content); err != nil {
		return err
	}
	if g.dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), MsgFileWouldCreate, path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), MsgFileCreated, path)
	}
	return nil
}
