package cli

import (
	"embed"

	"github.com/arthur-debert/relines/pkg/cobrax/topics"
	"github.com/spf13/cobra"
)

//go:embed topics/*.md
var topicFiles embed.FS

func initTopics(rootCmd *cobra.Command) (*topics.TopicManager, error) {
	return topics.InitializeWithOptions(rootCmd, topicFiles, topics.Options{
		Root:       "topics",
		Extensions: []string{".md"},
		Renderer:   topics.NewMarkdownRenderer(),
	})
}

func newTopicsCmd(tm *topics.TopicManager) *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			tm.WriteList(cmd.OutOrStdout(), cmd.Root().Name())
		},
	}
}
