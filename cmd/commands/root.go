package commands

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/pluqqy/snipmux/internal/cli"
	"github.com/pluqqy/snipmux/pkg/tui"
)

// NewRootCommand creates the snipmux command tree. Running it with a pane
// target opens the browser.
func NewRootCommand(version string) *cobra.Command {
	opts := &cli.GlobalOptions{}

	cmd := &cobra.Command{
		Use:   "snipmux <target-pane>",
		Short: "Browse snippets and type them into a tmux pane",
		Long: `snipmux keeps short command snippets in a folder tree and types the one you
pick into a tmux pane, line by line, pressing Enter after each line.

The tree is stored as XML in the data directory (next to the executable unless
configured otherwise) and is saved whenever snipmux exits.

Keys: enter opens a folder or sends a snippet, F1/a adds a snippet,
F2/e edits, F3/n adds a folder, F4/v views, del/d deletes, esc/q quits.`,
		Example: `  # Send to pane %3
  snipmux %3

  # Send to window 1, pane 0 of session "work"
  snipmux work:1.0`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cli.SetGlobalFlags(opts.Quiet, opts.NoColor, opts.Yes)
		},
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateTarget(args[0])
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd.OutOrStdout(), opts, args[0])
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.ConfigFile, "config", "", "Config file (default $HOME/.config/snipmux/config.yaml)")
	flags.StringVar(&opts.DataDir, "data-dir", "", "Directory holding the snippet store")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Suppress informational output")
	flags.BoolVar(&opts.NoColor, "no-color", false, "Disable symbols in output")
	flags.BoolVarP(&opts.Yes, "yes", "y", false, "Answer yes to confirmation prompts")

	cmd.AddCommand(
		NewInitCommand(opts),
		NewVersionCommand(version),
		NewExportCommand(opts),
		NewPasteCommand(opts),
		NewExamplesCommand(opts),
	)

	return cmd
}

// NewVersionCommand creates the version command
func NewVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of snipmux",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "snipmux version %s\n", version)
		},
	}
}

// programOptions configures the browser's terminal; tests replace it with plain
// readers and writers
var programOptions = func() []tea.ProgramOption {
	return []tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}
}

// runBrowser runs the TUI. The tree is saved on the way out however the
// session ends; a failed save is returned alongside any other error.
func runBrowser(out io.Writer, opts *cli.GlobalOptions, target string) (err error) {
	ctx, err := cli.NewCommandContext(*opts)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, ctx.Close())
	}()

	store, err := ctx.LoadStore()
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, ctx.SaveStore(store))
	}()

	sink, err := sinkFactory(ctx.Settings.Dispatch)
	if err != nil {
		return err
	}

	ctx.Entry("main").WithField("target", target).Debug("starting browser")

	app := tui.NewApp(tui.Config{
		Store:    store,
		Sink:     sink,
		Target:   target,
		Paths:    ctx.Paths,
		Logger:   ctx.Entry("tui"),
		ShowHelp: ctx.Settings.UI.ShowHelp,
		ShowUUID: ctx.Settings.UI.ShowUUID,
	})
	p := tea.NewProgram(app, programOptions()...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if s := app.Dispatched(); s != nil {
		cli.PrintSuccess(out, "Sent %q to %s", s.Title, target)
	}
	return nil
}
