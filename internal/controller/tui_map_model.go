package controller

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/vifmap/internal/model"
)

// mapModel shows render progress during a mapping run and the feature map after it.
type mapModel struct {
	width       int
	height      int
	progressBar progress.Model
	estimation  m.Estimation
	started     bool
	done        int
	total       int
	finished    bool
	summary     m.MapSummary
	browser     featureBrowser
}

func newMapModel() mapModel {
	return mapModel{
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
		browser: newFeatureBrowser(),
	}
}

func (m mapModel) Init() tea.Cmd {
	return tick(time.Millisecond * 100)
}

func (m mapModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = max(m.width-8, 20)

	case tickMsg:
		if m.finished {
			return m, nil
		}

		return m, tick(time.Millisecond * 150)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

		if m.finished {
			m.browser, cmd = m.browser.update(msg)
		}

	case mapStartedMsg:
		m.estimation = msg.estimation
		m.started = true

	case progressMsg:
		if msg.done > m.done || msg.total != m.total {
			m.done = max(m.done, msg.done)
			m.total = msg.total
		}

	case mapCompletedMsg:
		m.summary = msg.summary
		m.finished = true
		m.browser = m.browser.setFeatures(msg.summary.Features, msg.summary.Code)

	case closeMsg:
		if !m.finished {
			return m, tea.Quit
		}
	}

	return m, cmd
}

func (m mapModel) percent() float64 {
	if m.total == 0 {
		return 0
	}

	return float64(m.done) / float64(m.total)
}

func (m mapModel) View() string {
	if !m.started {
		return "Preparing mapping…\n"
	}

	accentStyle := lipgloss.NewStyle().Foreground(colorAccent)

	if !m.finished {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle().Render("vifmap Mapping "+string(m.estimation.Source.Path)),
			summaryStyle().Render(fmt.Sprintf("Candidates: %s structural, up to %s line-level",
				accentStyle.Render(fmt.Sprintf("%d", m.estimation.Structural)),
				accentStyle.Render(fmt.Sprintf("%d", m.estimation.Remaining)),
			)),
			lipgloss.NewStyle().Padding(0, 2).Render(m.progressBar.ViewAs(m.percent())),
			summaryStyle().Render(fmt.Sprintf("Rendered %d/%d", m.done, m.total)),
			footerStyle(m.width).Render("q quit"),
		)
	}

	summary := fmt.Sprintf("Mutants: %s   Rejected: %s   Features: %s",
		accentStyle.Render(fmt.Sprintf("%d", m.summary.Mutants)),
		accentStyle.Render(fmt.Sprintf("%d", m.summary.Rejected)),
		accentStyle.Render(fmt.Sprintf("%d", len(m.summary.Features))),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle().Render("vifmap Feature Map "+m.summary.ID),
		summaryStyle().Render(summary),
		m.browser.view(m.width, m.height),
		footerStyle(m.width).Render("↑/k up • ↓/j down • enter details • / filter • q quit"),
	)
}
