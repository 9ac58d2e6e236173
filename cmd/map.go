package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/vifmap/internal/domain"
	m "github.com/mouse-blink/vifmap/internal/model"
)

const mapLongDescription = `Render a TikZ document, detect its visual features and map each feature to
the code spans that draw it. The result is stored under an artifact id printed at
the end of the run.

Features come from the Gemini detector when GEMINI_API_KEY is set. A detections
file replaces the detector:

  [{"label": "red circle", "box_2d": [ymin, xmin, ymax, xmax]}]

with coordinates on a --scale grid (0 for pixels).`

var mapIDFlag string
var mapDetectionsFlag string
var mapScaleFlag float64

// mapCmd represents the map command.
var mapCmd = newMapCmd()

func newMapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "map FILE.tex",
		Short: "Map the features of a TikZ figure to its code",
		Long:  mapLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scale := cfg.Detector.Scale
			if cmd.Flags().Changed("scale") {
				scale = mapScaleFlag
			}

			return workflow.Map(cmd.Context(), domain.MapArgs{
				Path:       m.Path(args[0]),
				ID:         mapIDFlag,
				Detections: m.Path(mapDetectionsFlag),
				Scale:      scale,
			})
		},
	}
	cmd.Flags().StringVar(&mapIDFlag, "id", "", "artifact id (default <name>-<hash prefix>)")
	cmd.Flags().StringVarP(&mapDetectionsFlag, "detections", "d", "", "JSON detections file used instead of the detector")
	cmd.Flags().Float64Var(&mapScaleFlag, "scale", 1000, "grid of the detections file boxes, 0 for pixels")

	return cmd
}

func init() {
	rootCmd.AddCommand(mapCmd)
}
