// Package transcript renders the conversation pane: an ordered message list
// materialized in chunks, with direct lookup by message identifier.
package transcript

import (
	"github.com/hay-kot/traceview/internal/core/session"
)

// DefaultChunkSize bounds how many messages materialize per near-edge
// trigger when no explicit size is configured.
const DefaultChunkSize = 50

// Sink receives materialized messages in order. The TUI sink appends
// rendered blocks to the transcript viewport; tests substitute an in-memory
// recorder.
type Sink interface {
	Append(index int, msg session.Message)
}

// Store owns the full ordered message list, a monotonic rendered-up-to
// cursor, and an identifier lookup built once at construction. The list is
// fixed for the life of the store; only how much of it is materialized
// changes.
type Store struct {
	messages  []session.Message
	rendered  int
	idToIndex map[string]int
	chunkSize int
	sink      Sink
}

// NewStore builds a store over msgs. Messages without an id are unreachable
// by identifier lookup. chunkSize <= 0 falls back to DefaultChunkSize.
func NewStore(msgs []session.Message, chunkSize int, sink Sink) *Store {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	idToIndex := make(map[string]int)
	for i, m := range msgs {
		if m.ID != "" {
			idToIndex[m.ID] = i
		}
	}

	return &Store{
		messages:  msgs,
		idToIndex: idToIndex,
		chunkSize: chunkSize,
		sink:      sink,
	}
}

// Len returns the total number of messages.
func (s *Store) Len() int {
	return len(s.messages)
}

// RenderedCount returns the monotonic materialization cursor.
func (s *Store) RenderedCount() int {
	return s.rendered
}

// Message returns the message at index. Callers must pass a valid index.
func (s *Store) Message(index int) session.Message {
	return s.messages[index]
}

// IndexOf returns the sequence index of the message with the given id.
func (s *Store) IndexOf(id string) (int, bool) {
	idx, ok := s.idToIndex[id]
	return idx, ok
}

// RenderUpTo materializes messages through target, in order. target is
// clamped to the end of the list; a target below the cursor is a no-op, so
// no message is ever materialized twice.
func (s *Store) RenderUpTo(target int) {
	if target > len(s.messages)-1 {
		target = len(s.messages) - 1
	}

	for s.rendered <= target && s.rendered < len(s.messages) {
		s.sink.Append(s.rendered, s.messages[s.rendered])
		s.rendered++
	}
}

// RenderNextChunk materializes the next chunk of messages.
func (s *Store) RenderNextChunk() {
	target := s.rendered + s.chunkSize - 1
	if target > len(s.messages)-1 {
		target = len(s.messages) - 1
	}
	s.RenderUpTo(target)
}

// HasMore reports whether unmaterialized messages remain. Together with
// RenderNext it forms the pull interface driven by the near-edge scroll
// check.
func (s *Store) HasMore() bool {
	return s.rendered < len(s.messages)
}

// RenderNext materializes the next chunk. Callers gate on HasMore.
func (s *Store) RenderNext() {
	s.RenderNextChunk()
}

// Reveal materializes enough of the list to include the message with the
// given id and returns its index. Unknown ids return false and materialize
// nothing.
func (s *Store) Reveal(id string) (int, bool) {
	idx, ok := s.idToIndex[id]
	if !ok {
		return 0, false
	}
	if idx >= s.rendered {
		s.RenderUpTo(idx)
	}
	return idx, true
}
