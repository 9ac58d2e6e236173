package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/vifmap/internal/domain"
)

const listLongDescription = `List TikZ documents with the number of deletion candidates found in each.

Structural candidates come from drawing statements, coordinate definitions and
scopes. Remaining candidates are the line-level deletions tried afterwards.
Nothing is rendered.

Paths accept a trailing "/..." for recursion:
  - .              documents in the current directory
  - ./...          recursively scan the current directory
  - ./figs/a.tex   a single document`

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List TikZ documents and their candidate counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Estimate(cmd.Context(), domain.EstimateArgs{Paths: parsePaths(args)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
