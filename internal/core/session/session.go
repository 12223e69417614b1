// Package session loads and models traceview session bundles.
//
// A bundle is the JSON export of one AI coding session: a table of source
// files annotated with attribution ranges, plus the ordered conversation
// transcript. Bundles are produced by an external conversion step; this
// package only consumes them.
package session

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/hay-kot/traceview/internal/core/attr"
)

// File is one source file with its attribution ranges. Content is read-only
// for the life of the session.
type File struct {
	Content string       `json:"content"`
	Ranges  []attr.Range `json:"blame_ranges"`
}

// LineCount returns the number of lines in the file content. An empty file
// has one (empty) line, matching how the code pane renders it.
func (f File) LineCount() int {
	return strings.Count(f.Content, "\n") + 1
}

// Message is one transcript turn. Text is markdown; rendering happens at
// materialization time in the transcript pane. ID may be empty, in which
// case the message is unreachable by identifier lookup.
type Message struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Timestamp string `json:"timestamp"`
	Text      string `json:"text"`
}

// Session is a fully loaded bundle. The message list is fixed at load time;
// it never grows or reorders during a session.
type Session struct {
	Title    string          `json:"title"`
	Files    map[string]File `json:"files"`
	Messages []Message       `json:"messages"`
}

// Decode reads a session bundle from r. Messages without an explicit id
// derive one from their timestamp so attribution ranges can reference them.
func Decode(r io.Reader) (*Session, error) {
	var s Session
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode session bundle: %w", err)
	}

	s.Normalize()
	return &s, nil
}

// Normalize derives ids for messages that lack one but carry a timestamp,
// so attribution ranges can reference them. Call once after unmarshalling.
func (s *Session) Normalize() {
	for i := range s.Messages {
		if s.Messages[i].ID == "" && s.Messages[i].Timestamp != "" {
			s.Messages[i].ID = MessageID(s.Messages[i].Timestamp)
		}
	}
}

// MessageID derives a stable message identifier from a timestamp.
func MessageID(timestamp string) string {
	r := strings.NewReplacer(":", "-", ".", "-")
	return "msg-" + r.Replace(timestamp)
}

// Paths returns the file paths in the bundle, sorted.
func (s *Session) Paths() []string {
	paths := make([]string, 0, len(s.Files))
	for p := range s.Files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Lookup returns the file for path. The second return reports whether the
// path exists in the bundle.
func (s *Session) Lookup(path string) (File, bool) {
	f, ok := s.Files[path]
	return f, ok
}
