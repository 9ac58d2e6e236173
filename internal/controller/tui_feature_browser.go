package controller

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/vifmap/internal/model"
)

const (
	scoreWidth     = 10
	detailMappings = 3
	detailLines    = 4
)

type featureDelegate struct{}

func (d featureDelegate) Height() int  { return 1 }
func (d featureDelegate) Spacing() int { return 0 }
func (d featureDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d featureDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	feature, ok := item.(featureItem)
	if !ok {
		return
	}

	best := "-"
	if len(feature.mappings) > 0 {
		best = fmt.Sprintf("%.2f", feature.mappings[0].Score)
	}

	labelStyle := lipgloss.NewStyle().Foreground(colorPath)
	numStyle := countStyle()

	if index == l.Index() {
		labelStyle = selectedStyle()
		numStyle = selectedStyle()
	}

	width := l.Width() - scoreWidth - countWidth - 4

	_, _ = fmt.Fprintf(w, "%s  %s  %s",
		numStyle.Width(scoreWidth).Align(lipgloss.Right).Render(best),
		numStyle.Width(countWidth).Align(lipgloss.Right).Render(fmt.Sprintf("%d", len(feature.mappings))),
		labelStyle.Render(truncateToWidth(feature.label, width)),
	)
}

// featureBrowser lists the features of one image. Enter toggles the best mappings
// of the selected feature together with the code they cover.
type featureBrowser struct {
	list       list.Model
	code       string
	showDetail bool
}

func newFeatureBrowser() featureBrowser {
	return featureBrowser{list: newFilterList(featureDelegate{}, "Filter by label…")}
}

func (b featureBrowser) setFeatures(features m.FeatureMap, code string) featureBrowser {
	items := make([]list.Item, 0, len(features))
	for _, f := range features {
		items = append(items, featureItem{label: f.Label, mappings: f.Mappings})
	}

	b.list.SetItems(items)
	b.code = code
	b.showDetail = false

	return b
}

func (b featureBrowser) update(msg tea.KeyMsg) (featureBrowser, tea.Cmd) {
	if msg.String() == "enter" && b.list.FilterState() != list.Filtering {
		b.showDetail = !b.showDetail
		return b, nil
	}

	var cmd tea.Cmd

	b.list, cmd = b.list.Update(msg)

	return b, cmd
}

func (b featureBrowser) view(width, height int) string {
	header := fmt.Sprintf("%*s  %*s  %s", scoreWidth, "Best", countWidth, "Maps", "Label")

	if !b.showDetail {
		return renderListBox(&b.list, header, width, height)
	}

	detail := b.detail()
	listBox := renderListBox(&b.list, header, width, height-lipgloss.Height(detail))

	return lipgloss.JoinVertical(lipgloss.Left, listBox, detail)
}

func (b featureBrowser) detail() string {
	feature, ok := b.list.SelectedItem().(featureItem)
	if !ok {
		return ""
	}

	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", lipgloss.NewStyle().Bold(true).Render(feature.label))

	if len(feature.mappings) == 0 {
		sb.WriteString("no mapped code\n")
	}

	for i, sm := range feature.mappings {
		if i == detailMappings {
			fmt.Fprintf(&sb, "… %d more\n", len(feature.mappings)-detailMappings)
			break
		}

		fmt.Fprintf(&sb, "#%d score %.2f zone %s spans %s\n", i+1, sm.Score, sm.Mapping.Zone, formatSpans(sm.Mapping.Spans))

		for _, s := range sm.Mapping.Spans {
			sb.WriteString(codeStyle().Render(excerpt(b.code, s)))
			sb.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorMuted).
		Margin(0, 1).
		Padding(0, 1).
		Render(strings.TrimRight(sb.String(), "\n"))
}

// excerpt returns the first lines of code covered by s.
func excerpt(code string, s m.Span) string {
	if !s.Valid(len(code)) {
		return ""
	}

	lines := strings.Split(code[s.Start:s.End], "\n")
	if len(lines) > detailLines {
		lines = append(lines[:detailLines], "…")
	}

	return strings.Join(lines, "\n")
}

func codeStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorText).PaddingLeft(2)
}
