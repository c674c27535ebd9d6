package cli

import (
	"github.com/arthur-debert/relines/pkg/assembler"
	"github.com/arthur-debert/relines/pkg/pipeline"
	"github.com/arthur-debert/relines/pkg/textio"
	"github.com/spf13/cobra"
)

type assembleOptions struct {
	rules    ruleFlags
	output   string
	encoding string

	preset     string
	prefix     string
	itemPrefix string
	separator  string
	itemSuffix string
	suffix     string
	pretty     bool
	indent     string
}

// assembleFlags pairs flag names with their configuration keys
var assembleFlags = []struct {
	flag string
	key  string
}{
	{"preset", "assemble.preset"},
	{"prefix", "assemble.prefix"},
	{"item-prefix", "assemble.item_prefix"},
	{"separator", "assemble.separator"},
	{"item-suffix", "assemble.item_suffix"},
	{"suffix", "assemble.suffix"},
	{"pretty", "assemble.pretty"},
	{"indent", "assemble.indent"},
	{"encoding", "input.encoding"},
}

func (o *assembleOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	values := map[string]interface{}{
		"preset":      o.preset,
		"prefix":      o.prefix,
		"item-prefix": o.itemPrefix,
		"separator":   o.separator,
		"item-suffix": o.itemSuffix,
		"suffix":      o.suffix,
		"pretty":      o.pretty,
		"indent":      o.indent,
		"encoding":    o.encoding,
	}
	m := map[string]interface{}{}
	for _, f := range assembleFlags {
		if cmd.Flags().Changed(f.flag) {
			m[f.key] = values[f.flag]
		}
	}
	return m
}

func newAssembleCmd(g *globalOptions) *cobra.Command {
	o := &assembleOptions{}

	cmd := &cobra.Command{
		Use:     "assemble [file]",
		Short:   MsgAssembleShort,
		Long:    MsgAssembleLong,
		Example: MsgAssembleExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := textio.StdinName
			if len(args) == 1 {
				input = args[0]
			}

			cfg, err := g.loadConfig(o.overrides(cmd))
			if err != nil {
				return err
			}
			acfg, err := cfg.AssemblerConfig()
			if err != nil {
				return err
			}
			enc, err := cfg.Encoding()
			if err != nil {
				return err
			}

			// Only explicit rules: configured rule files are for apply
			rs, _, err := o.rules.resolve(cfg, false)
			if err != nil {
				return err
			}

			text, _, err := textio.ReadText(input, cmd.InOrStdin(), enc)
			if err != nil {
				return err
			}
			if len(rs) > 0 {
				text = pipeline.Run(text, rs)
			}

			out := assembler.Assemble(text, acfg)
			if out != "" {
				out += "\n"
			}
			return writeOrPrint(cmd, g, o.output, []byte(out), true)
		},
	}

	o.rules.register(cmd)
	cmd.Flags().StringVarP(&o.output, "output", "o", "", MsgFlagOutput)
	cmd.Flags().StringVar(&o.encoding, "encoding", "", MsgFlagEncoding)
	cmd.Flags().StringVar(&o.preset, "preset", "json", MsgFlagPreset)
	cmd.Flags().StringVar(&o.prefix, "prefix", "", MsgFlagPrefix)
	cmd.Flags().StringVar(&o.itemPrefix, "item-prefix", "", MsgFlagItemPrefix)
	cmd.Flags().StringVar(&o.separator, "separator", "", MsgFlagSeparator)
	cmd.Flags().StringVar(&o.itemSuffix, "item-suffix", "", MsgFlagItemSuffix)
	cmd.Flags().StringVar(&o.suffix, "suffix", "", MsgFlagSuffix)
	cmd.Flags().BoolVar(&o.pretty, "pretty", false, MsgFlagPretty)
	cmd.Flags().StringVar(&o.indent, "indent", assembler.DefaultIndent, MsgFlagIndent)

	return cmd
}
