package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/snipmux/internal/cli"
	"github.com/pluqqy/snipmux/pkg/files"
	"github.com/pluqqy/snipmux/pkg/models"
	"github.com/pluqqy/snipmux/pkg/tree"
)

// NewInitCommand creates the init command
func NewInitCommand(opts *cli.GlobalOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config and create the snippet store",
		Long: `Creates the config file (unless it already exists), the data directory and
an empty snippet store.

The config is written to --config when given, otherwise to
$HOME/.config/snipmux/config.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, opts *cli.GlobalOptions, force bool) error {
	out := cmd.OutOrStdout()

	configPath := opts.ConfigFile
	if configPath == "" {
		p, err := files.DefaultConfigPath()
		if err != nil {
			return err
		}
		configPath = p
	}

	_, statErr := os.Stat(configPath)
	switch {
	case statErr == nil && !force:
		cli.PrintInfo(out, "Config already exists at %s (use --force to overwrite)", configPath)
	case statErr == nil || errors.Is(statErr, os.ErrNotExist):
		settings := models.DefaultSettings()
		settings.Storage.DataDir = opts.DataDir
		if err := files.WriteSettings(configPath, settings); err != nil {
			return err
		}
		cli.PrintSuccess(out, "Wrote config to %s", configPath)
	default:
		return fmt.Errorf("failed to check config file: %w", statErr)
	}

	ctx, err := cli.NewCommandContext(cli.GlobalOptions{ConfigFile: configPath, DataDir: opts.DataDir})
	if err != nil {
		return err
	}
	defer ctx.Close()

	storePath := ctx.Paths.StorePath()
	if _, err := os.Stat(storePath); err == nil {
		cli.PrintInfo(out, "Snippet store already exists at %s", storePath)
		return nil
	}
	if err := ctx.SaveStore(tree.NewStore()); err != nil {
		return err
	}
	cli.PrintSuccess(out, "Created snippet store at %s", storePath)
	if !cli.IsQuiet() {
		fmt.Fprintln(out, "\nRun 'snipmux <target-pane>' to start browsing.")
	}
	return nil
}
