package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleBundle = `{
	"title": "add retry logic",
	"files": {
		"cmd/main.go": {
			"content": "package main\n\nfunc main() {}\n",
			"blame_ranges": [
				{"start": 1, "end": 3, "msg_id": "m1"},
				{"start": 4, "end": 10, "msg_id": "m2"}
			]
		},
		"README.md": {
			"content": "# readme\n",
			"blame_ranges": []
		}
	},
	"messages": [
		{"id": "m1", "role": "assistant", "timestamp": "2026-01-02T10:00:00.000Z", "text": "first"},
		{"id": "m2", "role": "assistant", "timestamp": "2026-01-02T10:05:00.000Z", "text": "second"},
		{"role": "user", "timestamp": "2026-01-02T10:06:00.000Z", "text": "thanks"}
	]
}`

func TestDecode(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleBundle))
	require.NoError(t, err)

	assert.Equal(t, "add retry logic", s.Title)
	assert.Len(t, s.Files, 2)
	require.Len(t, s.Messages, 3)

	f, ok := s.Lookup("cmd/main.go")
	require.True(t, ok)
	assert.Len(t, f.Ranges, 2)
	assert.Equal(t, "m1", f.Ranges[0].MessageID)

	_, ok = s.Lookup("missing.go")
	assert.False(t, ok)
}

func TestDecode_DerivesMissingIDs(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleBundle))
	require.NoError(t, err)

	// Third message has no explicit id; it gets one from its timestamp.
	assert.Equal(t, "msg-2026-01-02T10-06-00-000Z", s.Messages[2].ID)
	// Explicit ids are preserved.
	assert.Equal(t, "m1", s.Messages[0].ID)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader("{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode session bundle")
}

func TestMessageID(t *testing.T) {
	tests := []struct {
		timestamp string
		want      string
	}{
		{"2026-01-02T10:00:00.000Z", "msg-2026-01-02T10-00-00-000Z"},
		{"10:05:30", "msg-10-05-30"},
		{"plain", "msg-plain"},
	}

	for _, tt := range tests {
		t.Run(tt.timestamp, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageID(tt.timestamp))
		})
	}
}

func TestFileLineCount(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int
	}{
		{name: "empty content", content: "", want: 1},
		{name: "single line no newline", content: "hello", want: 1},
		{name: "trailing newline counts final empty line", content: "a\nb\n", want: 3},
		{name: "three lines", content: "a\nb\nc", want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := File{Content: tt.content}
			assert.Equal(t, tt.want, f.LineCount())
		})
	}
}

func TestPaths_Sorted(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleBundle))
	require.NoError(t, err)

	assert.Equal(t, []string{"README.md", "cmd/main.go"}, s.Paths())
}

func TestAnalyze(t *testing.T) {
	s, err := Decode(strings.NewReader(sampleBundle))
	require.NoError(t, err)

	stats := Analyze(s)

	assert.Equal(t, 2, stats.Files)
	assert.Equal(t, 2, stats.Ranges)
	assert.Equal(t, 3, stats.Messages)
	assert.Equal(t, 1, stats.UnattributedF)
	assert.Equal(t, map[string]int{"assistant": 2, "user": 1}, stats.RoleCounts)

	// cmd/main.go has 4 lines; m1 owns 1-3, m2's 4-10 clamps to line 4.
	assert.Equal(t, 3, stats.LinesByMsgID["m1"])
	assert.Equal(t, 1, stats.LinesByMsgID["m2"])
}

func TestFormatRoleCounts(t *testing.T) {
	assert.Equal(t, "", FormatRoleCounts(nil))
	assert.Equal(t,
		"4 assistant · 2 user · 1 system",
		FormatRoleCounts(map[string]int{"user": 2, "assistant": 4, "system": 1}),
	)
}
