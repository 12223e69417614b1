package transcript

import (
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/rs/zerolog/log"

	"github.com/hay-kot/traceview/internal/core/session"
	"github.com/hay-kot/traceview/internal/core/styles"
	"github.com/hay-kot/traceview/internal/tui/jsoncolor"
)

// blockRenderer turns messages into styled text blocks at a fixed width.
// The glamour renderer is rebuilt lazily when the width changes.
type blockRenderer struct {
	width    int
	markdown *glamour.TermRenderer
}

func (r *blockRenderer) setWidth(width int) {
	if width < 20 {
		width = 20
	}
	if width == r.width {
		return
	}
	r.width = width
	r.markdown = nil
}

// render produces the display block for one message: a role/timestamp
// header followed by the rendered body.
func (r *blockRenderer) render(msg session.Message) string {
	var b strings.Builder
	b.WriteString(renderHeader(msg))
	b.WriteString("\n")
	b.WriteString(r.renderBody(msg.Text))
	return b.String()
}

func renderHeader(msg session.Message) string {
	role := msg.Role
	if role == "" {
		role = "unknown"
	}

	var roleStyle = styles.MsgRoleOtherStyle
	switch role {
	case "user":
		roleStyle = styles.MsgRoleUserStyle
	case "assistant":
		roleStyle = styles.MsgRoleAssistantStyle
	}

	header := roleStyle.Render(role)
	if ts := formatTimestamp(msg.Timestamp); ts != "" {
		header += " " + styles.MsgTimeStyle.Render(ts)
	}
	return header
}

// renderBody renders markdown via glamour; JSON-looking payloads get
// pretty-printed instead. Render failures fall back to the raw text.
func (r *blockRenderer) renderBody(text string) string {
	if jsoncolor.Likely(text) {
		return jsoncolor.Colorize([]byte(strings.TrimSpace(text)))
	}

	if r.markdown == nil {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStylePath("dark"),
			glamour.WithWordWrap(r.width),
		)
		if err != nil {
			log.Debug().Err(err).Msg("failed to create markdown renderer, showing raw content")
			return text
		}
		r.markdown = renderer
	}

	rendered, err := r.markdown.Render(text)
	if err != nil {
		log.Debug().Err(err).Msg("failed to render markdown, showing raw content")
		return text
	}
	return strings.TrimRight(rendered, "\n")
}

// formatTimestamp renders a bundle timestamp compactly. Unparseable values
// pass through unchanged; empty stays empty.
func formatTimestamp(ts string) string {
	if ts == "" {
		return ""
	}
	parsed, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return parsed.Local().Format("Jan 2 15:04:05")
}
