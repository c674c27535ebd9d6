package cli

import (
	"fmt"
	"os"

	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/paths"
	"github.com/arthur-debert/relines/pkg/rulefile"
	"github.com/arthur-debert/relines/pkg/ui"
	"github.com/arthur-debert/relines/pkg/ui/display"
	"github.com/spf13/cobra"
)

func newRulesCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Long:    MsgRulesLong,
		Example: MsgRulesExample,
		GroupID: "core",
	}

	cmd.AddCommand(newRulesShowCmd(g))
	cmd.AddCommand(newRulesCheckCmd(g))
	cmd.AddCommand(newRulesConvertCmd(g))
	cmd.AddCommand(newRulesInitCmd(g))

	return cmd
}

func newRulesShowCmd(g *globalOptions) *cobra.Command {
	var (
		rf     ruleFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: MsgRulesShowShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides := map[string]interface{}{}
			if cmd.Flags().Changed("format") {
				overrides["output.format"] = format
			}
			cfg, err := g.loadConfig(overrides)
			if err != nil {
				return err
			}
			f, err := ui.ParseFormat(cfg.Output.Format)
			if err != nil {
				return err
			}

			rs, sources, err := rf.resolve(cfg, true)
			if err != nil {
				return err
			}
			return renderResult(f, cmd.OutOrStdout(), display.NewRuleList(rs, sources))
		},
	}

	rf.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", MsgFlagFormat)
	return cmd
}

func newRulesCheckCmd(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: MsgRulesCheckShort,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				cfg, err := g.loadConfig(nil)
				if err != nil {
					return err
				}
				files = paths.ExpandAll(cfg.Rules.Files)
			}
			if len(files) == 0 {
				return errors.New(errors.ErrInvalidInput, MsgErrNoRuleFiles)
			}

			for _, path := range files {
				rs, err := rulefile.Load(path)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), MsgRuleFileOK, path, len(rs))
				for i, r := range rs {
					if r.IsNoop() {
						fmt.Fprintf(cmd.OutOrStdout(), MsgRuleNoop, i+1)
					}
				}
			}
			return nil
		},
	}
}

func newRulesConvertCmd(g *globalOptions) *cobra.Command {
	var (
		to     string
		output string
	)

	cmd := &cobra.Command{
		Use:   "convert --to <format> files...",
		Short: MsgRulesConvShort,
		Long:  "Convert loads every file in order and writes all their rules as one file in the target format.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := rulefile.ParseFormat(to)
			if err != nil {
				return err
			}
			rs, err := rulefile.LoadAll(args)
			if err != nil {
				return err
			}
			data, err := rulefile.Encode(rs, format)
			if err != nil {
				return err
			}
			return writeOrPrint(cmd, g, output, data, true)
		},
	}

	cmd.Flags().StringVar(&to, "to", "", MsgFlagTo)
	cmd.Flags().StringVarP(&output, "output", "o", "", MsgFlagOutput)
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newRulesInitCmd(g *globalOptions) *cobra.Command {
	var (
		format string
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: MsgRulesInitShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := rulefile.ParseFormat(format)
			if err != nil {
				return err
			}
			path := "rules" + f.Ext()
			if len(args) == 1 {
				path = args[0]
			}
			if err := checkNotExists(path, force); err != nil {
				return err
			}

			data, err := rulefile.Encode(rulefile.Example(), f)
			if err != nil {
				return err
			}
			return writeOrPrint(cmd, g, path, data, force)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(rulefile.FormatTOML), MsgFlagRuleFormat)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func checkNotExists(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return errors.Newf(errors.ErrInvalidInput, MsgErrFileExists, path).WithDetail("path", path)
	}
	return nil
}
