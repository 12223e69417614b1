package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/traceview/internal/core/styles"
)

const (
	minTreeWidth = 24
	maxTreeWidth = 40
	statusHeight = 1
	borderCells  = 2 // one border cell on each side
)

// layout holds the computed outer pane dimensions for the current window.
type layout struct {
	treeWidth       int
	codeWidth       int
	transcriptWidth int
	paneHeight      int
}

func (m *Model) layout() layout {
	treeWidth := m.width / 5
	if treeWidth < minTreeWidth {
		treeWidth = minTreeWidth
	}
	if treeWidth > maxTreeWidth {
		treeWidth = maxTreeWidth
	}

	rest := m.width - treeWidth
	codeWidth := rest * m.cfg.TUI.SplitRatio / 100

	return layout{
		treeWidth:       treeWidth,
		codeWidth:       codeWidth,
		transcriptWidth: rest - codeWidth,
		paneHeight:      m.height - statusHeight,
	}
}

// adjustSplit shifts the code/transcript split by delta percentage points,
// clamped to the same bounds config validation enforces.
func (m *Model) adjustSplit(delta int) {
	ratio := m.cfg.TUI.SplitRatio + delta
	if ratio < 20 {
		ratio = 20
	}
	if ratio > 80 {
		ratio = 80
	}
	m.cfg.TUI.SplitRatio = ratio
	m.resizePanes()
}

// resizePanes pushes the current layout's inner dimensions into each pane.
// Each pane loses its border plus one title line.
func (m *Model) resizePanes() {
	l := m.layout()
	inner := l.paneHeight - borderCells - 1

	m.tree.SetSize(l.treeWidth-borderCells, inner)
	m.transcript.SetSize(l.transcriptWidth-borderCells, inner)
	if m.code != nil {
		m.code.SetSize(l.codeWidth-borderCells, inner)
	}
}

// View implements tea.Model.
func (m Model) View() tea.View {
	if m.quitting {
		return tea.NewView("")
	}

	l := m.layout()

	treePane := m.renderPane("files", m.tree.View(), l.treeWidth, l.paneHeight, m.focus == paneTree)
	codePane := m.renderPane(m.codeTitle(), m.codeContent(l), l.codeWidth, l.paneHeight, m.focus == paneCode)
	transcriptPane := m.renderPane("transcript", m.transcript.View(), l.transcriptWidth, l.paneHeight, m.focus == paneTranscript)

	panes := lipgloss.JoinHorizontal(lipgloss.Top, treePane, codePane, transcriptPane)
	content := lipgloss.JoinVertical(lipgloss.Left, panes, m.renderStatusBar())

	v := tea.NewView(content)
	v.AltScreen = true
	return v
}

func (m Model) codeTitle() string {
	if m.currentPath == "" {
		return "code"
	}
	return m.currentPath
}

func (m Model) codeContent(l layout) string {
	if m.code != nil {
		return m.code.View()
	}

	msg := "no file selected"
	if m.currentPath != "" {
		msg = fmt.Sprintf("file not found: %s", m.currentPath)
	}
	return lipgloss.Place(
		l.codeWidth-borderCells,
		l.paneHeight-borderCells-1,
		lipgloss.Center,
		lipgloss.Center,
		styles.PlaceholderStyle.Render(msg),
	)
}

func (m Model) renderPane(title, content string, width, height int, focused bool) string {
	border := styles.PaneBlurredBorderStyle
	if focused {
		border = styles.PaneFocusedBorderStyle
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		styles.PaneTitleStyle.Render(title),
		content,
	)

	return border.
		Width(width - borderCells).
		Height(height - borderCells).
		Render(body)
}

func (m Model) renderStatusBar() string {
	left := m.session.Title
	if left == "" {
		left = "traceview"
	}

	counts := fmt.Sprintf("%d/%d messages", m.transcript.RenderedCount(), m.transcript.Store().Len())
	help := styles.HelpStyle.Render("tab: focus • enter: select/activate • q: quit")

	bar := fmt.Sprintf(" %s │ %s │ %s", left, counts, help)
	return styles.StatusBarStyle.Width(m.width).Render(bar)
}
