package controller

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "github.com/mouse-blink/vifmap/internal/model"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// TUI implements UI using Bubble Tea for interactive display. Start runs a program
// in the background; the Display methods feed it messages.
type TUI struct {
	output  io.Writer
	options []tea.ProgramOption

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	err     error
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer, options ...tea.ProgramOption) *TUI {
	return &TUI{output: output, options: options}
}

// Start launches the program for the requested mode.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	var model tea.Model

	switch cfg.mode {
	case ModeMap:
		model = newMapModel()
	case ModeView:
		model = newViewModel()
	default:
		model = newEstimateModel()
	}

	width, height := t.terminalSize()
	model, _ = model.Update(tea.WindowSizeMsg{Width: width, Height: height})

	return t.startWithModel(model)
}

func (t *TUI) startWithModel(model tea.Model) error {
	programOptions := append([]tea.ProgramOption{tea.WithOutput(t.output), tea.WithAltScreen()}, t.options...)
	program := tea.NewProgram(model, programOptions...)
	done := make(chan struct{})

	t.mu.Lock()
	if t.program != nil {
		t.mu.Unlock()
		return errors.New("ui already started")
	}

	t.program = program
	t.done = done
	t.err = nil
	t.mu.Unlock()

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil {
			t.mu.Lock()
			t.err = err
			t.mu.Unlock()
		}
	}()

	return nil
}

func (t *TUI) terminalSize() (int, int) {
	if f, ok := t.output.(*os.File); ok {
		if width, height, err := term.GetSize(int(f.Fd())); err == nil {
			return width, height
		}
	}

	return defaultWidth, defaultHeight
}

// Close tells the program the workflow is over and waits for the user to quit.
func (t *TUI) Close() {
	t.send(closeMsg{})
	t.Wait()

	t.mu.Lock()
	t.program = nil
	t.mu.Unlock()
}

// Wait blocks until the program exits.
func (t *TUI) Wait() {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done != nil {
		<-done
	}
}

// Err returns the error the last program exited with.
func (t *TUI) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.err
}

func (t *TUI) send(msg tea.Msg) bool {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return false
	}

	program.Send(msg)

	return true
}

// DisplayEstimation hands the estimations to the estimate view.
func (t *TUI) DisplayEstimation(estimations []m.Estimation, err error) error {
	if !t.send(estimationMsg{estimations: estimations, err: err}) && err != nil {
		_, _ = fmt.Fprintf(t.output, "estimation error: %v\n", err)
	}

	return err
}

// DisplayMapStarted shows the document being mapped.
func (t *TUI) DisplayMapStarted(estimation m.Estimation) {
	t.send(mapStartedMsg{estimation: estimation})
}

// DisplayProgress advances the progress bar.
func (t *TUI) DisplayProgress(done, total int) {
	t.send(progressMsg{done: done, total: total})
}

// DisplayMapCompleted switches the map view to the feature browser.
func (t *TUI) DisplayMapCompleted(summary m.MapSummary) {
	t.send(mapCompletedMsg{summary: summary})
}

// DisplayCode prints code with comment lines dimmed.
func (t *TUI) DisplayCode(code string) {
	_, _ = fmt.Fprintln(t.output, styleCode(code))
}

// DisplayQueryResults prints the re-ranked mappings.
func (t *TUI) DisplayQueryResults(query string, results []m.QueryResult) {
	_, _ = fmt.Fprintln(t.output, renderQueryResults(query, results))
}

// DisplayArtifacts lists stored artifact ids.
func (t *TUI) DisplayArtifacts(ids []string) error {
	t.send(artifactsMsg{ids: ids})
	return nil
}

// DisplayArtifact browses one stored artifact.
func (t *TUI) DisplayArtifact(id string, artifact m.Artifact) error {
	t.send(artifactMsg{id: id, artifact: artifact})
	return nil
}

func styleCode(code string) string {
	commentStyle := lipgloss.NewStyle().Foreground(colorMuted)
	markerStyle := lipgloss.NewStyle().Foreground(colorTitle).Bold(true)

	lines := strings.Split(code, "\n")
	for i, line := range lines {
		switch {
		case line == "%<":
			lines[i] = markerStyle.Render(line)
		case strings.HasSuffix(line, "%>"):
			lines[i] = strings.TrimSuffix(line, "%>") + markerStyle.Render("%>")
		case strings.HasPrefix(line, "%"):
			lines[i] = commentStyle.Render(line)
		}
	}

	return strings.Join(lines, "\n")
}

func renderQueryResults(query string, results []m.QueryResult) string {
	title := titleStyle().Render(fmt.Sprintf("Query %q", query))

	if len(results) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, summaryStyle().Render("no mappings"))
	}

	labelStyle := lipgloss.NewStyle().Foreground(colorPath)
	numStyle := lipgloss.NewStyle().Foreground(colorCount).Width(scoreWidth).Align(lipgloss.Right)
	headerStyle := lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	rows := []string{headerStyle.Render(fmt.Sprintf("%4s  %*s  %*s  %*s  %s",
		"#", scoreWidth, "Adjusted", scoreWidth, "Score", scoreWidth, "Sim", "Label / Spans"))}

	for i, r := range results {
		rows = append(rows, fmt.Sprintf("%4d  %s  %s  %s  %s %s",
			i+1,
			numStyle.Render(fmt.Sprintf("%.2f", r.Adjusted)),
			numStyle.Render(fmt.Sprintf("%.2f", r.Score)),
			numStyle.Render(fmt.Sprintf("%.3f", r.Similarity)),
			labelStyle.Render(r.Label),
			formatSpans(r.Mapping.Spans),
		))
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Margin(0, 1).
		Padding(0, 1).
		Render(strings.Join(rows, "\n"))

	return lipgloss.JoinVertical(lipgloss.Left, title, box)
}
