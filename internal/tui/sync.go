package tui

import (
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/traceview/internal/core/attr"
	"github.com/hay-kot/traceview/internal/tui/views/code"
)

// loadFile swaps the code pane to path. The previous code view is
// discarded entirely; nothing carries over into the new file, and the new
// view always starts with no active highlight. A path outside the bundle
// leaves the pane showing a not-found placeholder without touching the
// tree or transcript.
func (m *Model) loadFile(path string) {
	m.currentPath = path
	m.tree.Select(path)

	f, ok := m.session.Lookup(path)
	if !ok {
		log.Debug().Str("path", path).Msg("file not in bundle")
		m.code = nil
		return
	}

	m.code = code.New(path, f)
	m.resizePanes()

	// Anchor the transcript to the start of the file's attributed history.
	if id := attr.FirstMessageID(f.Ranges); id != "" {
		m.transcript.ScrollToID(id)
	}
}

// handleLineActivated applies an activated line's embedded range index to
// the code pane's highlight, then scrolls the transcript to the line's
// message. Always in that order, never concurrently.
func (m *Model) handleLineActivated(msg code.LineActivatedMsg) {
	if m.code == nil {
		return
	}

	m.code.SetActiveRange(msg.RangeIndex)
	if msg.MessageID != "" {
		m.transcript.ScrollToID(msg.MessageID)
	}
}

// jumpToHighlightedMessage scrolls the code pane to the first range in the
// current file attributed to the transcript's highlighted message. No
// highlight side effect.
func (m *Model) jumpToHighlightedMessage() {
	if m.code == nil {
		return
	}
	id := m.transcript.HighlightedID()
	if id == "" {
		return
	}

	for _, r := range m.code.Document().Ranges {
		if r.MessageID == id {
			m.code.ScrollToLines(r.Start, r.End)
			return
		}
	}
}
