package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/vifmap/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [ID]",
		Short: "View stored feature maps",
		Long:  "List the stored artifacts, or browse the features and mappings of one of them.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{ID: id})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
