package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/vifmap/internal/domain"
)

var queryTopFlag int
var queryHighlightFlag bool

// queryCmd represents the query command.
var queryCmd = newQueryCmd()

func newQueryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query ID TEXT...",
		Short: "Find the code drawing the features closest to a description",
		Long: `Rank the mappings of a stored artifact against a free-text description.
Each mapping score is weighted by how close its feature label is to the text.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			top := cfg.Query.Top
			if cmd.Flags().Changed("top") {
				top = queryTopFlag
			}

			return workflow.Query(cmd.Context(), domain.QueryArgs{
				ID:        args[0],
				Text:      strings.Join(args[1:], " "),
				Top:       top,
				Highlight: queryHighlightFlag,
				Options: domain.QueryOptions{
					Sharpness: cfg.Query.Sharpness,
					Epsilon:   cfg.Query.Epsilon,
				},
			})
		},
	}
	cmd.Flags().IntVarP(&queryTopFlag, "top", "n", 5, "number of results shown, 0 for all")
	cmd.Flags().BoolVar(&queryHighlightFlag, "highlight", false, "print the code with the result spans highlighted")

	return cmd
}

func init() {
	rootCmd.AddCommand(queryCmd)
}
