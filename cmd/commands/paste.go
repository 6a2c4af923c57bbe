package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pluqqy/snipmux/internal/cli"
	"github.com/pluqqy/snipmux/pkg/files"
	"github.com/pluqqy/snipmux/pkg/paste"
)

// sinkFactory builds the sink for a command run; tests replace it
var sinkFactory = paste.NewSink

// NewPasteCommand creates the paste command
func NewPasteCommand(opts *cli.GlobalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "paste <target-pane> <snippet-id>",
		Short: "Send one snippet to a tmux pane without opening the browser",
		Long: `Send the snippet with the given id to a tmux pane, the same way pressing
enter on it in the browser does. Ids are shown by 'snipmux export'.

With dispatch.mode set to clipboard the snippet is copied to the system
clipboard instead and the target is ignored.`,
		Example: `  snipmux paste %3 0b0f3b4e-2c61-4c55-9d0a-5d7c1a1b2c3d`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"send"},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateTarget(args[0]); err != nil {
				return err
			}
			_, err := cli.ParseSnippetID(args[1])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			target := args[0]
			id, _ := cli.ParseSnippetID(args[1])

			ctx, err := cli.NewCommandContext(*opts)
			if err != nil {
				return err
			}
			defer ctx.Close()
			log := ctx.Entry("paste").WithField("snippet", id)

			store, err := ctx.LoadStore()
			if err != nil {
				return err
			}
			snippet := store.FindSnippet(id)
			if snippet == nil {
				return fmt.Errorf("snippet %s not found", id)
			}

			text, err := files.ResolveContent(ctx.Paths, snippet)
			if err != nil {
				log.WithError(err).Error("failed to resolve snippet")
				return err
			}

			sink, err := sinkFactory(ctx.Settings.Dispatch)
			if err != nil {
				return err
			}
			if err := sink.Send(cmd.Context(), text, target); err != nil {
				log.WithError(err).WithField("target", target).Error("failed to dispatch snippet")
				return err
			}

			log.WithField("target", target).Info("snippet dispatched")
			cli.PrintSuccess(cmd.OutOrStdout(), "Sent %q to %s", snippet.Title, target)
			return nil
		},
	}

	return cmd
}
