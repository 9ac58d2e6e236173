package controller

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// estimateDelegate draws one document per row: structural, line-level and total
// candidate counts followed by the path. The selected path scrolls when it does
// not fit.
type estimateDelegate struct {
	frame int
}

func (d estimateDelegate) Height() int  { return 1 }
func (d estimateDelegate) Spacing() int { return 0 }

func (d estimateDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d estimateDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	file, ok := item.(fileItem)
	if !ok {
		return
	}

	pathWidth := l.Width() - 3*(countWidth+2)
	cells := countStyle()
	path := lipgloss.NewStyle().Foreground(colorPath).Render(truncateToWidth(file.path, pathWidth))

	if index == l.Index() {
		cells = selectedStyle().Width(countWidth).Align(lipgloss.Right)
		path = selectedStyle().Render(animateScroll(file.path, pathWidth, d.frame))
	}

	_, _ = fmt.Fprintf(w, "%s  %s  %s  %s",
		cells.Render(fmt.Sprint(file.structural)),
		cells.Render(fmt.Sprint(file.remaining)),
		cells.Render(fmt.Sprint(file.structural+file.remaining)),
		path,
	)
}

// estimateSum accumulates candidate counts over a listing.
type estimateSum struct {
	files      int
	structural int
	remaining  int
}

func (s *estimateSum) add(e m.Estimation) {
	s.files++
	s.structural += e.Structural
	s.remaining += e.Remaining
}

// estimateModel lists candidate counts per document without rendering anything.
type estimateModel struct {
	width, height int

	files    list.Model
	delegate estimateDelegate
	selected int

	sum      estimateSum
	err      error
	received bool
}

func newEstimateModel() estimateModel {
	return estimateModel{
		files:    newFilterList(estimateDelegate{}, "Filter by path…"),
		selected: -1,
	}
}

func (m estimateModel) Init() tea.Cmd {
	return tick(500 * time.Millisecond)
}

// withFrame stores frame in the delegate so the selected row redraws with it.
func (m estimateModel) withFrame(frame int) estimateModel {
	m.delegate.frame = frame
	m.files.SetDelegate(m.delegate)

	return m
}

func (m estimateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.files.SetWidth(msg.Width)
	case estimationMsg:
		return m.receive(msg), nil
	case closeMsg:
		if !m.received {
			return m, tea.Quit
		}
	case tickMsg:
		if !m.received || m.files.FilterState() == list.Filtering {
			return m, nil
		}

		return m.withFrame(m.delegate.frame + 1), tick(150 * time.Millisecond)
	case tea.KeyMsg:
		if k := msg.String(); k == "q" || k == "ctrl+c" {
			return m, tea.Quit
		}

		var cmd tea.Cmd

		m.files, cmd = m.files.Update(msg)
		if idx := m.files.Index(); idx != m.selected {
			m.selected = idx
			m = m.withFrame(0)
		}

		return m, cmd
	}

	return m, nil
}

func (m estimateModel) receive(msg estimationMsg) estimateModel {
	m.received = true
	m.err = msg.err
	m.sum = estimateSum{}

	if msg.err != nil {
		return m
	}

	rows := make([]fileItem, 0, len(msg.estimations))
	for _, e := range msg.estimations {
		m.sum.add(e)
		rows = append(rows, fileItem{path: string(e.Source.Path), structural: e.Structural, remaining: e.Remaining})
	}

	slices.SortFunc(rows, func(a, b fileItem) int { return cmp.Compare(a.path, b.path) })

	items := make([]list.Item, len(rows))
	for i, row := range rows {
		items[i] = row
	}

	m.files.SetItems(items)

	if len(items) > 0 && m.selected < 0 {
		m.selected = 0
	}

	return m
}

func (m estimateModel) View() string {
	switch {
	case !m.received:
		return "Loading candidate list…\n"
	case m.err != nil:
		return errorStyle().Render("estimation error: "+m.err.Error()) + "\n"
	}

	num := lipgloss.NewStyle().Foreground(colorAccent)
	summary := fmt.Sprintf("Files: %s   Structural: %s   Line-level: %s",
		num.Render(fmt.Sprint(m.sum.files)),
		num.Render(fmt.Sprint(m.sum.structural)),
		num.Render(fmt.Sprint(m.sum.remaining)),
	)
	header := fmt.Sprintf("%*s  %*s  %*s  %s", countWidth, "Struct", countWidth, "Lines", countWidth, "Total", "File")

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle().Render("vifmap Candidate Estimate"),
		summaryStyle().Render(summary),
		renderListBox(&m.files, header, m.width, m.height),
		footerStyle(m.width).Render("↑/k up • ↓/j down • / filter • q quit"),
	)
}
