package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pluqqy/snipmux/internal/cli"
	"github.com/pluqqy/snipmux/pkg/examples"
)

func NewExamplesCommand(opts *cli.GlobalOptions) *cobra.Command {
	var listOnly bool
	var force bool

	cmd := &cobra.Command{
		Use:   "examples [category]",
		Short: "Add example snippet folders to the store",
		Long: `Add example folders and snippets under the root of the snippet store.

Categories:
  general      - Projects and Work folders and a Hello World snippet (default)
  shell        - Everyday shell one-liners
  git          - Git commands that are easy to forget
  tmux         - Commands for working with tmux itself
  all          - Every category

Folders and root snippets whose name already exists at the root are skipped
unless --force is given, which replaces them.`,
		Example: `  # Add the general examples
  snipmux examples

  # List what is available
  snipmux examples --list

  # Replace previously installed git examples
  snipmux examples git --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := "general"
			if len(args) > 0 {
				category = args[0]
			} else if listOnly {
				category = "all"
			}

			if !examples.ValidCategory(category) {
				return fmt.Errorf("invalid category '%s'. Valid categories: %s",
					category, strings.Join(examples.Categories, ", "))
			}

			if listOnly {
				return listExamples(cmd, category)
			}
			return installExamples(cmd, opts, category, force)
		},
	}

	cmd.Flags().BoolVarP(&listOnly, "list", "l", false, "List available examples without installing")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Replace folders and snippets that already exist")

	return cmd
}

func listExamples(cmd *cobra.Command, category string) error {
	out := cmd.OutOrStdout()

	if category == "all" {
		fmt.Fprintf(out, "Available examples (all categories):\n\n")
	} else {
		fmt.Fprintf(out, "Available examples in category '%s':\n\n", category)
	}

	for _, set := range examples.GetExamples(category) {
		fmt.Fprintf(out, "📦 [%s] %s\n", set.Category, examples.Describe(set))
		fmt.Fprintf(out, "   %s\n", set.Description)
		for _, f := range set.Folders {
			fmt.Fprintf(out, "   • %s/\n", f.Name)
		}
		for _, s := range set.Snippets {
			fmt.Fprintf(out, "   • %s\n", s.Title)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "To install, run: snipmux examples <category>\n")
	return nil
}

func installExamples(cmd *cobra.Command, opts *cli.GlobalOptions, category string, force bool) error {
	out := cmd.OutOrStdout()

	if force {
		ok, err := cli.Confirm("Replace existing example folders with the same names?", false)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Cancelled.")
			return nil
		}
	}

	ctx, err := cli.NewCommandContext(*opts)
	if err != nil {
		return err
	}
	defer ctx.Close()

	store, err := ctx.LoadStore()
	if err != nil {
		return err
	}

	cli.PrintInfo(out, "Installing %s examples...", category)

	result := examples.Install(store, examples.GetExamples(category), force)

	if len(result.Installed) > 0 {
		if err := ctx.SaveStore(store); err != nil {
			return err
		}
	}

	ctx.Entry("examples").WithField("category", category).
		WithField("installed", len(result.Installed)).
		WithField("skipped", len(result.Skipped)).
		Info("examples installed")

	for _, name := range result.Installed {
		cli.PrintSuccess(out, "Installed %s", name)
	}
	for _, name := range result.Skipped {
		cli.PrintWarning(cmd.ErrOrStderr(), "Skipped %s (already exists, use --force to replace)", name)
	}
	if !cli.IsQuiet() {
		fmt.Fprintf(out, "\n✨ Installation complete! %d added, %d skipped.\n", len(result.Installed), len(result.Skipped))
	}
	return nil
}
