package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/vifmap/internal/domain"
	m "github.com/mouse-blink/vifmap/internal/model"
)

var annotateOutputFlag string
var annotateMaxLabelsFlag int
var annotateMarkerFlag string
var annotateNoSuppressFlag bool
var annotateDescriptionFlag bool

// annotateCmd represents the annotate command.
var annotateCmd = newAnnotateCmd()

func newAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate ID",
		Short: "Print the mapped code with a feature comment above each span",
		Long: `Print the code of a stored artifact with a comment line naming the best
features above every mapped span. Spans attached to every feature are skipped
unless --no-suppress is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := domain.AnnotateOptions{
				Marker:             cfg.Annotate.Marker,
				MaxLabels:          cfg.Annotate.MaxLabels,
				SuppressGlobal:     cfg.Annotate.SuppressGlobal,
				IncludeDescription: cfg.Annotate.Description,
			}

			flags := cmd.Flags()
			if flags.Changed("max-labels") {
				opts.MaxLabels = annotateMaxLabelsFlag
			}

			if flags.Changed("marker") {
				opts.Marker = annotateMarkerFlag
			}

			if flags.Changed("no-suppress") {
				opts.SuppressGlobal = !annotateNoSuppressFlag
			}

			if flags.Changed("description") {
				opts.IncludeDescription = annotateDescriptionFlag
			}

			return workflow.Annotate(cmd.Context(), domain.AnnotateArgs{
				ID:      args[0],
				Options: opts,
				Output:  m.Path(annotateOutputFlag),
			})
		},
	}
	cmd.Flags().StringVarP(&annotateOutputFlag, "output", "o", "", "also write the annotated code to this file")
	cmd.Flags().IntVarP(&annotateMaxLabelsFlag, "max-labels", "n", 1, "number of labels named per comment")
	cmd.Flags().StringVar(&annotateMarkerFlag, "marker", "%", "prefix of the inserted comment lines")
	cmd.Flags().BoolVar(&annotateNoSuppressFlag, "no-suppress", false, "keep spans attached to every feature")
	cmd.Flags().BoolVar(&annotateDescriptionFlag, "description", false, "start with the image description")

	return cmd
}

func init() {
	rootCmd.AddCommand(annotateCmd)
}
