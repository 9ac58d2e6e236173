package controller

import (
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type tickMsg time.Time

// countWidth is the column width of numeric cells in list rows.
const countWidth = 6

const (
	marqueeDelay = 5
	marqueeGap   = "   "
	ellipsis     = "…"
)

var (
	colorAccent = lipgloss.Color("6")
	colorMuted  = lipgloss.Color("8")
	colorPath   = lipgloss.Color("14")
	colorCount  = lipgloss.Color("11")
	colorTitle  = lipgloss.Color("205")
	colorText   = lipgloss.Color("252")
	colorError  = lipgloss.Color("9")
)

func selectedStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(colorAccent)
}

func titleStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorTitle).Padding(1, 0, 0, 2)
}

func summaryStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorText).Padding(0, 0, 1, 2)
}

func footerStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colorMuted).Width(width).Align(lipgloss.Center)
}

func errorStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorError)
}

func countStyle() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(colorCount).Width(countWidth).Align(lipgloss.Right)
}

// truncateToWidth cuts text to at most width terminal cells, marking the cut with an ellipsis.
func truncateToWidth(text string, width int) string {
	if width <= 0 {
		return ""
	}

	return ansi.Truncate(text, width, ellipsis)
}

// animateScroll returns frame number frame of a marquee showing text in width cells.
// Text that fits is returned as is; longer text stays truncated for a few frames
// and then rotates left one rune per frame.
func animateScroll(text string, width int, frame int) string {
	switch {
	case width <= 0:
		return ""
	case lipgloss.Width(text) <= width:
		return text
	case frame < marqueeDelay:
		return truncateToWidth(text, width)
	}

	loop := []rune(text + marqueeGap)
	shift := (frame - marqueeDelay) % len(loop)
	rotated := slices.Concat(loop[shift:], loop[:shift])

	return string(rotated[:min(width, len(rotated))])
}

func newFilterList(delegate list.ItemDelegate, placeholder string) list.Model {
	l := list.New(nil, delegate, 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetShowHelp(false)
	l.SetShowFilter(true)
	l.FilterInput.Placeholder = placeholder

	return l
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// renderListBox sizes l to the window and draws it under header inside a rounded
// border. Title, summary, footer and the border take 9 lines.
func renderListBox(l *list.Model, header string, width, height int) string {
	w := max(width-6, 20)

	l.SetSize(w, max(height-9, 5))

	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(colorMuted).
		Width(w).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(colorMuted).
		Render(header)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorAccent).
		Padding(0, 1).
		Margin(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, head, l.View()))
}
