package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type artifactDelegate struct{}

func (d artifactDelegate) Height() int  { return 1 }
func (d artifactDelegate) Spacing() int { return 0 }
func (d artifactDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d artifactDelegate) Render(w io.Writer, l list.Model, index int, item list.Item) {
	id, ok := item.(artifactItem)
	if !ok {
		return
	}

	style := lipgloss.NewStyle().Foreground(colorPath)
	if index == l.Index() {
		style = selectedStyle()
	}

	_, _ = fmt.Fprint(w, style.Render(truncateToWidth(string(id), l.Width())))
}

// viewModel browses either the list of stored artifacts or one artifact.
type viewModel struct {
	width    int
	height   int
	ids      list.Model
	browser  featureBrowser
	id       string
	bounds   string
	single   bool
	rendered bool
}

func newViewModel() viewModel {
	return viewModel{
		ids:     newFilterList(artifactDelegate{}, "Filter by id…"),
		browser: newFeatureBrowser(),
	}
}

func (m viewModel) Init() tea.Cmd {
	return nil
}

func (m viewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

		if m.single {
			m.browser, cmd = m.browser.update(msg)
		} else {
			m.ids, cmd = m.ids.Update(msg)
		}

	case artifactsMsg:
		items := make([]list.Item, 0, len(msg.ids))
		for _, id := range msg.ids {
			items = append(items, artifactItem(id))
		}

		m.ids.SetItems(items)
		m.rendered = true

	case artifactMsg:
		m.id = msg.id
		m.single = true
		m.rendered = true
		m.bounds = "no image"

		if msg.artifact.Image != nil {
			b := msg.artifact.Image.Bounds()
			m.bounds = fmt.Sprintf("%dx%d", b.Dx(), b.Dy())
		}

		m.browser = m.browser.setFeatures(msg.artifact.Features, msg.artifact.Code)

	case closeMsg:
		if !m.rendered {
			return m, tea.Quit
		}
	}

	return m, cmd
}

func (m viewModel) View() string {
	if !m.rendered {
		return "Loading artifacts…\n"
	}

	if !m.single {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle().Render("vifmap Artifacts"),
			summaryStyle().Render(fmt.Sprintf("Stored: %d", len(m.ids.Items()))),
			renderListBox(&m.ids, "ID", m.width, m.height),
			footerStyle(m.width).Render("↑/k up • ↓/j down • / filter • q quit"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle().Render("vifmap Artifact "+m.id),
		summaryStyle().Render(fmt.Sprintf("Image: %s   Features: %d", m.bounds, len(m.browser.list.Items()))),
		m.browser.view(m.width, m.height),
		footerStyle(m.width).Render("↑/k up • ↓/j down • enter details • / filter • q quit"),
	)
}
