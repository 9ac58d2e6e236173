package controller

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
	// lastPercent throttles progress lines to one per 10%.
	lastPercent int
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd, lastPercent: -1}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	s.mu.Lock()
	s.lastPercent = -1
	s.mu.Unlock()

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {
}

// Wait returns immediately; nothing is interactive.
func (s *SimpleUI) Wait() {
}

// DisplayEstimation prints the estimation results or error.
func (s *SimpleUI) DisplayEstimation(estimations []m.Estimation, err error) error {
	if err != nil {
		s.printf("estimation error: %v\n", err)
		return err
	}

	table, buf := newTable([]string{"Path", "Structural", "Remaining"})
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	structural, remaining := 0, 0

	for _, e := range estimations {
		table.Append([]string{string(e.Source.Path), fmt.Sprintf("%d", e.Structural), fmt.Sprintf("%d", e.Remaining)})
		structural += e.Structural
		remaining += e.Remaining
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(estimations)),
		fmt.Sprintf("%d", structural),
		fmt.Sprintf("%d", remaining),
	})

	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayMapStarted announces a mapping run.
func (s *SimpleUI) DisplayMapStarted(estimation m.Estimation) {
	s.printf("mapping %s: %d structural and up to %d line candidates\n",
		estimation.Source.Path, estimation.Structural, estimation.Remaining)
}

// DisplayProgress prints a line every 10% of the scheduled renders.
func (s *SimpleUI) DisplayProgress(done, total int) {
	if total <= 0 {
		return
	}

	percent := done * 100 / total / 10 * 10

	s.mu.Lock()
	defer s.mu.Unlock()

	if percent == s.lastPercent {
		return
	}

	s.lastPercent = percent
	s.printf("rendered %d/%d (%d%%)\n", done, total, percent)
}

// DisplayMapCompleted prints the feature map of a finished run.
func (s *SimpleUI) DisplayMapCompleted(summary m.MapSummary) {
	s.printf("\n%s: %d valid mutants, %d rejected\n", summary.ID, summary.Mutants, summary.Rejected)

	if summary.Description != "" {
		s.printf("%s\n", summary.Description)
	}

	s.printf("\n%s", renderFeatures(summary.Features))
}

// DisplayCode prints code as is.
func (s *SimpleUI) DisplayCode(code string) {
	s.printf("%s\n", code)
}

// DisplayQueryResults prints the re-ranked mappings.
func (s *SimpleUI) DisplayQueryResults(query string, results []m.QueryResult) {
	if len(results) == 0 {
		s.printf("no mappings for %q\n", query)
		return
	}

	table, buf := newTable([]string{"#", "Label", "Similarity", "Score", "Adjusted", "Spans"})

	for i, r := range results {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			r.Label,
			fmt.Sprintf("%.3f", r.Similarity),
			fmt.Sprintf("%.2f", r.Score),
			fmt.Sprintf("%.2f", r.Adjusted),
			formatSpans(r.Mapping.Spans),
		})
	}

	table.Render()
	s.printf("\n%s", buf.String())
}

// DisplayArtifacts prints the stored artifact ids.
func (s *SimpleUI) DisplayArtifacts(ids []string) error {
	if len(ids) == 0 {
		s.printf("no stored artifacts\n")
		return nil
	}

	for _, id := range ids {
		s.printf("%s\n", id)
	}

	return nil
}

// DisplayArtifact prints the feature map of a stored artifact.
func (s *SimpleUI) DisplayArtifact(id string, artifact m.Artifact) error {
	bounds := "no image"
	if artifact.Image != nil {
		b := artifact.Image.Bounds()
		bounds = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
	}

	s.printf("%s (%s, %d features)\n", id, bounds, len(artifact.Features))

	if artifact.Description != "" {
		s.printf("%s\n", artifact.Description)
	}

	s.printf("\n%s", renderFeatures(artifact.Features))

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	return table, &buf
}

func renderFeatures(features m.FeatureMap) string {
	table, buf := newTable([]string{"Label", "Mappings", "Best Score", "Best Spans"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT,
	})

	for _, f := range features {
		best, spans := "-", "-"
		if len(f.Mappings) > 0 {
			best = fmt.Sprintf("%.2f", f.Mappings[0].Score)
			spans = formatSpans(f.Mappings[0].Mapping.Spans)
		}

		table.Append([]string{f.Label, fmt.Sprintf("%d", len(f.Mappings)), best, spans})
	}

	table.SetFooter([]string{fmt.Sprintf("Features %d", len(features)), "", "", ""})
	table.Render()

	return buf.String()
}

func formatSpans(spans []m.Span) string {
	parts := make([]string, 0, len(spans))
	for _, s := range spans {
		parts = append(parts, s.String())
	}

	return strings.Join(parts, " ")
}
