package code

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/traceview/internal/core/attr"
	"github.com/hay-kot/traceview/internal/core/session"
)

func tenLineFile() session.File {
	return session.File{
		Content: "l1\nl2\nl3\nl4\nl5\nl6\nl7\nl8\nl9\nl10",
		Ranges: []attr.Range{
			{Start: 1, End: 3, MessageID: "m1"},
			{Start: 4, End: 10, MessageID: "m2"},
		},
	}
}

func TestNewDocument(t *testing.T) {
	doc := NewDocument("pkg/thing.go", tenLineFile())

	assert.Equal(t, 10, doc.LineCount())
	assert.Equal(t, "l1", doc.Line(1))
	assert.Equal(t, "l10", doc.Line(10))
	assert.Equal(t, "", doc.Line(0))
	assert.Equal(t, "", doc.Line(11))
	assert.Equal(t, 10, doc.DecoratedLineCount())
}

func TestDocument_Decoration(t *testing.T) {
	doc := NewDocument("pkg/thing.go", tenLineFile())

	dec, ok := doc.Decoration(7)
	require.True(t, ok)
	assert.Equal(t, 1, dec.RangeIndex)
	assert.Equal(t, "m2", dec.MessageID)

	dec, ok = doc.Decoration(2)
	require.True(t, ok)
	assert.Equal(t, 0, dec.RangeIndex)
	assert.Equal(t, "m1", dec.MessageID)
}

func TestDocument_RangePastEndTruncated(t *testing.T) {
	f := session.File{
		Content: "a\nb\nc\nd\ne\nf\ng\nh\ni\nj",
		Ranges:  []attr.Range{{Start: 8, End: 12, MessageID: "m1"}},
	}
	doc := NewDocument("notes.txt", f)

	for line := 8; line <= 10; line++ {
		_, ok := doc.Decoration(line)
		assert.True(t, ok, "line %d", line)
	}
	_, ok := doc.Decoration(7)
	assert.False(t, ok)
	assert.Equal(t, 3, doc.DecoratedLineCount())
}

func TestDocument_HighlightedLineCountMatchesRaw(t *testing.T) {
	f := session.File{Content: "package main\n\nfunc main() {\n\tprintln(\"hi\")\n}\n"}
	doc := NewDocument("main.go", f)

	for line := 1; line <= doc.LineCount(); line++ {
		// Highlighting never changes line structure, only styling.
		assert.NotPanics(t, func() { doc.HighlightedLine(line) })
	}
	assert.Equal(t, "", doc.HighlightedLine(doc.LineCount()+1))
}

func TestDocument_RebuildIsIdempotent(t *testing.T) {
	// Loading A, then B, then A again yields identical decorations for A.
	a := tenLineFile()
	b := session.File{Content: "x\ny", Ranges: []attr.Range{{Start: 1, End: 2, MessageID: "mb"}}}

	first := NewDocument("a.go", a)
	_ = NewDocument("b.go", b)
	second := NewDocument("a.go", a)

	require.Equal(t, first.LineCount(), second.LineCount())
	for line := 1; line <= first.LineCount(); line++ {
		d1, ok1 := first.Decoration(line)
		d2, ok2 := second.Decoration(line)
		assert.Equal(t, ok1, ok2, "line %d", line)
		assert.Equal(t, d1, d2, "line %d", line)
	}
}
