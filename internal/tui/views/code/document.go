// Package code renders the read-only source pane with attribution
// decorations and the active-range highlight.
package code

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/hay-kot/traceview/internal/core/attr"
	"github.com/hay-kot/traceview/internal/core/session"
)

// Document is one source file prepared for display: raw lines, chroma
// highlighted lines, and the static attribution decorations computed once
// at construction. Documents are immutable; a file switch builds a new one.
type Document struct {
	Path        string
	Ranges      []attr.Range
	lines       []string
	highlighted []string
	decorations map[int]attr.LineDecoration
}

// NewDocument builds a document from a bundle file. Syntax highlighting is
// selected by file extension; unknown extensions render plain.
func NewDocument(path string, f session.File) *Document {
	lines := strings.Split(f.Content, "\n")

	return &Document{
		Path:        path,
		Ranges:      f.Ranges,
		lines:       lines,
		highlighted: highlightLines(path, f.Content, len(lines)),
		decorations: attr.BuildLineDecorations(f.Ranges, len(lines)),
	}
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the raw text of the 1-based line, or empty when out of
// bounds.
func (d *Document) Line(line int) string {
	if line < 1 || line > len(d.lines) {
		return ""
	}
	return d.lines[line-1]
}

// HighlightedLine returns the syntax-highlighted text of the 1-based line.
func (d *Document) HighlightedLine(line int) string {
	if line < 1 || line > len(d.highlighted) {
		return ""
	}
	return d.highlighted[line-1]
}

// Decoration returns the attribution decoration observed on a line. Each
// decorated line carries its owning range index and message id so click
// handling can recover them without recomputation.
func (d *Document) Decoration(line int) (attr.LineDecoration, bool) {
	dec, ok := d.decorations[line]
	return dec, ok
}

// DecoratedLineCount returns how many lines carry a decoration.
func (d *Document) DecoratedLineCount() int {
	return len(d.decorations)
}

// highlightLines runs the whole file through chroma and splits the result
// back into lines. On any failure the raw lines are used unstyled.
func highlightLines(path, content string, lineCount int) []string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := chromastyles.Get("monokai")
	if style == nil {
		style = chromastyles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, content)
	if err != nil {
		return strings.Split(content, "\n")
	}

	var buf strings.Builder
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return strings.Split(content, "\n")
	}

	out := strings.Split(buf.String(), "\n")
	if len(out) < lineCount {
		// Chroma may drop a trailing empty line; pad so indexes match the
		// raw content.
		for len(out) < lineCount {
			out = append(out, "")
		}
	}
	return out[:lineCount]
}
