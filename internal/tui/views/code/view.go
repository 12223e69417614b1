package code

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/traceview/internal/core/attr"
	"github.com/hay-kot/traceview/internal/core/session"
	"github.com/hay-kot/traceview/internal/core/styles"
)

// LineActivatedMsg is emitted when the user activates the cursor line.
// RangeIndex is -1 when the line carries no attribution decoration, which
// downstream handling treats as an invalid index (highlight resets).
type LineActivatedMsg struct {
	Line       int
	RangeIndex int
	MessageID  string
}

// View owns one file's read-only rendering: syntax-highlighted content,
// a line-number gutter with attribution markers, the dynamic active-range
// highlight, and the cursor. A file switch discards the whole view; nothing
// survives into the next one.
type View struct {
	doc         *Document
	viewport    viewport.Model
	highlight   attr.HighlightState
	activeLines map[int]bool
	cursorLine  int
	width       int
	height      int
}

// New builds a view for a bundle file. Highlight always starts inactive.
func New(path string, f session.File) *View {
	return &View{
		doc:        NewDocument(path, f),
		viewport:   viewport.New(),
		cursorLine: 1,
		width:      80,
		height:     24,
	}
}

// Document returns the underlying document.
func (v *View) Document() *Document {
	return v.doc
}

// Highlight returns the current active-range state.
func (v *View) Highlight() attr.HighlightState {
	return v.highlight
}

// ActiveLines returns the currently emphasized line set, nil when inactive.
func (v *View) ActiveLines() []int {
	return attr.ActiveLines(v.highlight, v.doc.Ranges, v.doc.LineCount())
}

// SetSize updates the viewport dimensions and re-renders.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport = viewport.New(viewport.WithWidth(width), viewport.WithHeight(height))
	v.refreshContent()
	v.ensureCursorVisible()
}

// Update handles cursor movement and line activation.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		v.moveCursor(-1)
	case "down", "j":
		v.moveCursor(1)
	case "pgup", "ctrl+u":
		v.moveCursor(-v.viewport.VisibleLineCount() / 2)
	case "pgdown", "ctrl+d":
		v.moveCursor(v.viewport.VisibleLineCount() / 2)
	case "home", "g":
		v.cursorLine = 1
		v.refreshContent()
		v.ensureCursorVisible()
	case "end", "G":
		v.cursorLine = v.doc.LineCount()
		v.refreshContent()
		v.ensureCursorVisible()
	case "enter":
		return v, v.activateCursorLine()
	}

	return v, nil
}

// View renders the code pane content.
func (v *View) View() string {
	return v.viewport.View()
}

// CursorLine returns the 1-based cursor position.
func (v *View) CursorLine() int {
	return v.cursorLine
}

// SetActiveRange applies the highlight reducer and re-renders. An invalid
// index clears the highlight rather than failing.
func (v *View) SetActiveRange(index int) {
	v.highlight = attr.Reduce(v.highlight, attr.SetActiveRange{Index: index}, v.doc.Ranges)

	// Always a full replace of the prior active set.
	v.activeLines = nil
	if lines := v.ActiveLines(); len(lines) > 0 {
		v.activeLines = make(map[int]bool, len(lines))
		for _, line := range lines {
			v.activeLines[line] = true
		}
	}
	v.refreshContent()
}

// ScrollToLines centers startLine in the viewport when it is within the
// document. No highlight side effect.
func (v *View) ScrollToLines(startLine, _ int) {
	if startLine < 1 || startLine > v.doc.LineCount() {
		return
	}

	offset := startLine - 1 - v.viewport.VisibleLineCount()/2
	if offset < 0 {
		offset = 0
	}
	v.viewport.SetYOffset(offset)
}

// activateCursorLine resolves the decoration embedded on the cursor line
// and reports it upward. Undecorated lines report range index -1.
func (v *View) activateCursorLine() tea.Cmd {
	line := v.cursorLine
	dec, ok := v.doc.Decoration(line)

	msg := LineActivatedMsg{Line: line, RangeIndex: -1}
	if ok {
		msg.RangeIndex = dec.RangeIndex
		msg.MessageID = dec.MessageID
	}

	return func() tea.Msg {
		return msg
	}
}

func (v *View) moveCursor(delta int) {
	next := v.cursorLine + delta
	if next < 1 {
		next = 1
	}
	if next > v.doc.LineCount() {
		next = v.doc.LineCount()
	}
	v.cursorLine = next
	v.refreshContent()
	v.ensureCursorVisible()
}

// ensureCursorVisible scrolls the viewport to keep the cursor on screen.
func (v *View) ensureCursorVisible() {
	offset := v.viewport.YOffset()
	visible := v.viewport.VisibleLineCount()

	if v.cursorLine < offset+1 {
		v.viewport.SetYOffset(v.cursorLine - 1)
	}
	if v.cursorLine > offset+visible {
		v.viewport.SetYOffset(v.cursorLine - visible)
	}
}

// refreshContent rebuilds the viewport content: gutter, attribution
// markers, syntax highlighted lines, and dynamic highlights.
func (v *View) refreshContent() {
	v.viewport.SetContent(v.renderLines())
}

func (v *View) renderLines() string {
	lineCount := v.doc.LineCount()
	numWidth := len(fmt.Sprintf("%d", lineCount))
	attribution := styles.AttributionStyles()

	var b strings.Builder
	for line := 1; line <= lineCount; line++ {
		num := styles.LineNumberStyle.Render(fmt.Sprintf("%*d", numWidth, line))

		// Attribution marker column: a colored bar on decorated lines.
		marker := " "
		dec, decorated := v.doc.Decoration(line)
		if decorated && len(attribution) > 0 {
			marker = attribution[dec.ColorIndex%len(attribution)].Render(" ")
		}

		content := v.doc.HighlightedLine(line)
		switch {
		case line == v.cursorLine:
			content = styles.CursorLineStyle.Render(content)
		case v.activeLines[line]:
			content = styles.ActiveLineStyle.Render(content)
		}

		sep := styles.GutterSeparatorStyle.Render("│")
		b.WriteString(num + marker + sep + " " + content)
		if line < lineCount {
			b.WriteString("\n")
		}
	}
	return b.String()
}
