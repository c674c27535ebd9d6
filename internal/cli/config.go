package cli

import (
	"fmt"
	"path/filepath"

	"github.com/arthur-debert/relines/pkg/config"
	"github.com/spf13/cobra"
)

func newConfigCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		GroupID: "misc",
	}

	cmd.AddCommand(newConfigGenCmd(g))
	cmd.AddCommand(newConfigPathCmd())
	return cmd
}

func newConfigGenCmd(g *globalOptions) *cobra.Command {
	var (
		write bool
		force bool
	)

	cmd := &cobra.Command{
		Use:   "gen",
		Short: MsgConfigGenShort,
		Long:  MsgConfigGenLong,
		Example: `  relines config gen                # Output to stdout
  relines config gen -w             # Write to ./.relines.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := []byte(config.GenerateConfigContent())
			if !write {
				return writeOrPrint(cmd, g, "", content, false)
			}
			if err := checkNotExists(config.ProjectConfigName, force); err != nil {
				return err
			}
			return writeOrPrint(cmd, g, config.ProjectConfigName, content, force)
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	return cmd
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: MsgConfigPathShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			project, err := filepath.Abs(config.ProjectConfigName)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, MsgConfigPathUser, config.UserConfigPath())
			fmt.Fprintf(out, MsgConfigPathProj, project)
			fmt.Fprintf(out, MsgConfigPathEnv, config.EnvPrefix)
			return nil
		},
	}
}
