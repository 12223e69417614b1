package transcript

import (
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/traceview/internal/core/session"
	"github.com/hay-kot/traceview/internal/core/styles"
)

// nearEdgeLines is how close (in content lines) the viewport bottom must be
// to the end of materialized content before the next chunk loads.
const nearEdgeLines = 10

// View is the Bubble Tea sub-model for the transcript pane. It owns the
// pane's output exclusively: materialized message blocks appended in order,
// at most one of them marked highlighted.
type View struct {
	store       *Store
	viewport    viewport.Model
	renderer    blockRenderer
	blocks      []string
	highlighted int // message index of the highlight marker, -1 for none
	width       int
	height      int
}

// New builds the transcript view over msgs and materializes the first
// chunk.
func New(msgs []session.Message, chunkSize int) *View {
	v := &View{
		viewport:    viewport.New(),
		highlighted: -1,
	}
	v.renderer.setWidth(80)
	v.store = NewStore(msgs, chunkSize, v)
	v.store.RenderNextChunk()
	v.refreshContent()
	return v
}

// Append implements Sink: it renders the materialized message and appends
// its block to the pane content.
func (v *View) Append(index int, msg session.Message) {
	block := v.renderer.render(msg)
	v.blocks = append(v.blocks, block)
}

// Store exposes the underlying store for the synchronizer and tests.
func (v *View) Store() *Store {
	return v.store
}

// SetSize updates the pane dimensions and re-renders materialized blocks at
// the new width.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.viewport = viewport.New(viewport.WithWidth(width), viewport.WithHeight(height))
	v.renderer.setWidth(width - 2)

	// Width changed, so every cached block is stale.
	for i := range v.blocks {
		v.blocks[i] = v.renderer.render(v.store.Message(i))
	}
	v.refreshContent()
}

// Update handles scroll input for the transcript pane. Scrolling near the
// end of materialized content pulls the next chunk; this is the only
// trigger that is not click-driven.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		v.viewport.ScrollUp(1)
	case "down", "j":
		v.viewport.ScrollDown(1)
	case "pgup", "ctrl+u":
		v.viewport.HalfPageUp()
	case "pgdown", "ctrl+d":
		v.viewport.HalfPageDown()
	case "home", "g":
		v.viewport.GotoTop()
	case "end", "G":
		// Jumping to the end still renders chunk by chunk; the near-edge
		// check below catches up on the next keypress.
		v.viewport.GotoBottom()
	default:
		return v, nil
	}

	v.maybeRenderMore()
	return v, nil
}

// View renders the transcript pane content.
func (v *View) View() string {
	return v.viewport.View()
}

// RenderedCount reports how many messages are materialized.
func (v *View) RenderedCount() int {
	return v.store.RenderedCount()
}

// HighlightedID returns the id of the highlighted message, or "" when no
// message carries the marker.
func (v *View) HighlightedID() string {
	if v.highlighted < 0 {
		return ""
	}
	return v.store.Message(v.highlighted).ID
}

// ScrollToID reveals the message with the given id, moves the highlight
// marker to it, and centers it in the viewport. Unknown ids and ids whose
// block cannot be located are silent no-ops.
func (v *View) ScrollToID(id string) {
	if id == "" {
		return
	}

	idx, ok := v.store.Reveal(id)
	if !ok {
		log.Debug().Str("msg_id", id).Msg("transcript scroll target not found")
		return
	}
	if idx >= len(v.blocks) {
		// Materialization should have produced the block; treat a miss as
		// a no-op rather than failing the pane.
		log.Debug().Str("msg_id", id).Int("index", idx).Msg("transcript block missing after materialization")
		return
	}

	v.highlighted = idx
	v.refreshContent()
	v.centerOn(idx)
}

// maybeRenderMore pulls the next chunk when the viewport is scrolled close
// to the end of materialized content.
func (v *View) maybeRenderMore() {
	if !v.store.HasMore() {
		return
	}

	bottom := v.viewport.YOffset() + v.viewport.VisibleLineCount()
	if bottom >= v.totalLines()-nearEdgeLines {
		v.store.RenderNext()
		v.refreshContent()
	}
}

// refreshContent reassembles the viewport content from materialized blocks,
// applying the highlight marker to at most one of them.
func (v *View) refreshContent() {
	divider := styles.MsgDividerStyle.Render(strings.Repeat("─", max(v.width-2, 8)))

	parts := make([]string, len(v.blocks))
	for i, block := range v.blocks {
		if i == v.highlighted {
			block = styles.MsgHighlightStyle.Render(block)
		}
		parts[i] = block
	}

	offset := v.viewport.YOffset()
	v.viewport.SetContent(strings.Join(parts, "\n"+divider+"\n"))
	v.viewport.SetYOffset(offset)
}

// blockOffset returns the starting content line of block idx, accounting
// for dividers between blocks.
func (v *View) blockOffset(idx int) int {
	offset := 0
	for i := 0; i < idx && i < len(v.blocks); i++ {
		block := v.blocks[i]
		if i == v.highlighted {
			block = styles.MsgHighlightStyle.Render(block)
		}
		offset += strings.Count(block, "\n") + 1
		offset++ // divider line
	}
	return offset
}

func (v *View) totalLines() int {
	total := 0
	for i, block := range v.blocks {
		if i > 0 {
			total++ // divider line
		}
		total += strings.Count(block, "\n") + 1
	}
	return total
}

// centerOn scrolls so block idx sits vertically centered. Fire-and-forget:
// a later request simply wins.
func (v *View) centerOn(idx int) {
	target := v.blockOffset(idx)
	half := v.viewport.VisibleLineCount() / 2

	offset := target - half
	if offset < 0 {
		offset = 0
	}
	v.viewport.SetYOffset(offset)
}
