package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pluqqy/snipmux/internal/cli"
	"github.com/pluqqy/snipmux/pkg/models"
	"github.com/pluqqy/snipmux/pkg/tree"
)

// NewExportCommand creates the export command
func NewExportCommand(opts *cli.GlobalOptions) *cobra.Command {
	var format string
	var outputFile string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print the snippet tree as a table, JSON or YAML",
		Long: `Print every folder and snippet in the store.

The text format lists one snippet per line with its folder path and id. JSON
and YAML print the whole tree, including snippet content.`,
		Example: `  # Table of all snippets
  snipmux export

  # Full tree as YAML into a file
  snipmux export --format yaml --file snippets.yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext(*opts)
			if err != nil {
				return err
			}
			defer ctx.Close()

			store, err := ctx.LoadStore()
			if err != nil {
				return err
			}

			if outputFile == "" {
				return writeExport(cmd.OutOrStdout(), format, store)
			}

			if err := exportToFile(outputFile, format, store); err != nil {
				return err
			}
			cli.PrintSuccess(cmd.OutOrStdout(), "Exported to %s", outputFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "text", "Output format (text, json, yaml)")
	cmd.Flags().StringVar(&outputFile, "file", "", "Write to a file instead of stdout")

	return cmd
}

// exportToFile writes the export to path. A failed close is an error since
// buffered output may not have reached the file.
func exportToFile(path, format string, store *tree.Store) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to write %s: %w", path, cerr)
		}
	}()

	return writeExport(f, format, store)
}

func writeExport(w io.Writer, format string, store *tree.Store) error {
	if cli.OutputFormat(format) != cli.FormatText {
		return cli.OutputResults(w, format, store.Root())
	}

	entries := listSnippets(store.Root(), tree.RootName)
	if len(entries) == 0 {
		fmt.Fprintln(w, "No snippets found.")
		return nil
	}

	table := cli.NewTableFormatter(w)
	table.Header("PATH", "TITLE", "CONTENT", "ID")
	for _, e := range entries {
		content := cli.FirstLine(e.snippet.Content)
		if e.snippet.FromFile {
			content = "file: " + content
		}
		table.Row(e.path, cli.TruncateString(e.snippet.Title, 30), cli.TruncateString(content, 40), e.snippet.ID.String())
	}
	return table.Flush()
}

type snippetEntry struct {
	path    string
	snippet *models.Snippet
}

// listSnippets walks the tree depth first, a folder's own snippets before its subfolders
func listSnippets(f *models.Folder, path string) []snippetEntry {
	var entries []snippetEntry
	for _, s := range f.Snippets {
		entries = append(entries, snippetEntry{path: path, snippet: s})
	}
	for _, sf := range f.Subfolders {
		entries = append(entries, listSnippets(sf, path+sf.Name+"/")...)
	}
	return entries
}
