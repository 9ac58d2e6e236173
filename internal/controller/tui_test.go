package controller

import (
	"bytes"
	"errors"
	"image"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	m "github.com/mouse-blink/vifmap/internal/model"
)

type quitModel struct{}

func (m quitModel) Init() tea.Cmd { return tea.Quit }
func (m quitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, tea.Quit
}
func (m quitModel) View() string { return "" }

func newTestTUI(buf *bytes.Buffer) *TUI {
	return NewTUI(buf, tea.WithInput(nil))
}

func waitOrFail(t *testing.T, name string, fn func()) {
	t.Helper()

	done := make(chan struct{})

	go func() {
		fn()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("%s timed out", name)
	}
}

func TestTUI_StartWithModel_WaitAndClose(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.startWithModel(quitModel{}); err != nil {
		t.Fatalf("startWithModel error = %v", err)
	}

	waitOrFail(t, "Wait()", tui.Wait)
	waitOrFail(t, "Close()", tui.Close)

	if err := tui.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
}

func TestTUI_StartTwice(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.Start(WithMapMode()); err != nil {
		t.Fatalf("Start error = %v", err)
	}

	if err := tui.Start(WithMapMode()); err == nil {
		t.Fatalf("second Start expected error")
	}

	waitOrFail(t, "Close()", tui.Close)
}

func TestTUI_CloseQuitsModesWithNothingToShow(t *testing.T) {
	for _, mode := range []StartOption{WithEstimateMode(), WithMapMode(), WithViewMode()} {
		var buf bytes.Buffer
		tui := newTestTUI(&buf)

		if err := tui.Start(mode); err != nil {
			t.Fatalf("Start error = %v", err)
		}

		tui.DisplayProgress(1, 2)
		waitOrFail(t, "Close()", tui.Close)
	}
}

func TestTUI_MultipleClose(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	tui.Close()
	tui.Close()

	tui2 := newTestTUI(&buf)
	tui2.Wait()
}

func TestTUI_DisplayMethods_NoProgram(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	if err := tui.DisplayEstimation(nil, nil); err != nil {
		t.Fatalf("DisplayEstimation unexpected error = %v", err)
	}

	if err := tui.DisplayEstimation(nil, errSentinel); !errors.Is(err, errSentinel) {
		t.Fatalf("DisplayEstimation error = %v, want %v", err, errSentinel)
	}

	if !strings.Contains(buf.String(), "estimation error: boom") {
		t.Fatalf("output missing error\n%s", buf.String())
	}

	tui.DisplayMapStarted(m.Estimation{Source: m.Source{Path: "a.tex"}})
	tui.DisplayProgress(1, 3)
	tui.DisplayMapCompleted(m.MapSummary{ID: "a"})

	if err := tui.DisplayArtifacts([]string{"a"}); err != nil {
		t.Fatalf("DisplayArtifacts error = %v", err)
	}

	if err := tui.DisplayArtifact("a", m.Artifact{}); err != nil {
		t.Fatalf("DisplayArtifact error = %v", err)
	}
}

func TestTUI_DisplayCodeAndQueryResults(t *testing.T) {
	var buf bytes.Buffer
	tui := newTestTUI(&buf)

	tui.DisplayCode("%<\n\\draw (0,0) -- (1,1);%>\n}")
	tui.DisplayQueryResults("diagonal", []m.QueryResult{{
		Label:      "diagonal line",
		Similarity: 1,
		Score:      42,
		Adjusted:   42,
		Mapping:    m.CodeImageMapping{Spans: []m.Span{{Start: 0, End: 21}}},
	}})
	tui.DisplayQueryResults("nothing", nil)

	output := buf.String()
	for _, want := range []string{`\draw (0,0) -- (1,1);`, "diagonal line", "[0,21)", "42.00", "no mappings"} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\n%s", want, output)
		}
	}
}

func TestStyleCode_KeepsText(t *testing.T) {
	code := "% comment\n\\draw (0,0);"

	got := styleCode(code)
	if !strings.Contains(got, "% comment") || !strings.Contains(got, `\draw (0,0);`) {
		t.Fatalf("styleCode() = %q", got)
	}
}

var errSentinel = errors.New("boom")

func testFeatures() m.FeatureMap {
	return m.FeatureMap{
		{
			Label: "diagonal line",
			Mappings: []m.ScoredMapping{{
				Mapping: m.CodeImageMapping{Spans: []m.Span{{Start: 0, End: 21}}, Zone: m.Box2D{Right: 10, Bottom: 10}},
				Score:   16256.25,
			}},
		},
		{Label: "background color"},
	}
}

func testArtifact() m.Artifact {
	return m.Artifact{
		Image:    image.NewRGBA(image.Rect(0, 0, 20, 10)),
		Code:     `\draw (0,0) -- (1,1);`,
		Features: testFeatures(),
	}
}
