package transcript

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/traceview/internal/core/session"
)

// recordingSink records the order of materialized message indices.
type recordingSink struct {
	indices []int
	ids     []string
}

func (r *recordingSink) Append(index int, msg session.Message) {
	r.indices = append(r.indices, index)
	r.ids = append(r.ids, msg.ID)
}

func makeMessages(n int) []session.Message {
	msgs := make([]session.Message, n)
	for i := range msgs {
		msgs[i] = session.Message{
			ID:   fmt.Sprintf("m%d", i),
			Role: "assistant",
			Text: fmt.Sprintf("message %d", i),
		}
	}
	return msgs
}

func TestStore_RenderUpTo(t *testing.T) {
	sink := &recordingSink{}
	store := NewStore(makeMessages(10), 50, sink)

	store.RenderUpTo(3)
	assert.Equal(t, 4, store.RenderedCount())
	assert.Equal(t, []int{0, 1, 2, 3}, sink.indices)

	// Lower target is a no-op; nothing materializes twice.
	store.RenderUpTo(1)
	assert.Equal(t, 4, store.RenderedCount())
	assert.Equal(t, []int{0, 1, 2, 3}, sink.indices)

	// Target past the end clamps.
	store.RenderUpTo(99)
	assert.Equal(t, 10, store.RenderedCount())
	assert.Len(t, sink.indices, 10)
}

func TestStore_RenderedCountMonotonic(t *testing.T) {
	sink := &recordingSink{}
	store := NewStore(makeMessages(20), 5, sink)

	prev := 0
	calls := []func(){
		func() { store.RenderUpTo(2) },
		func() { store.RenderUpTo(0) },
		func() { store.RenderNextChunk() },
		func() { store.RenderUpTo(1) },
		func() { store.RenderNextChunk() },
		func() { store.RenderNextChunk() },
	}
	for i, call := range calls {
		call()
		assert.GreaterOrEqual(t, store.RenderedCount(), prev, "call %d", i)
		prev = store.RenderedCount()
	}
}

func TestStore_ChunkedMaterialization(t *testing.T) {
	// 120 messages, chunk size 50: 0-49, then 50-99, then 100-119.
	sink := &recordingSink{}
	store := NewStore(makeMessages(120), 50, sink)

	store.RenderNextChunk()
	assert.Equal(t, 50, store.RenderedCount())

	store.RenderNextChunk()
	assert.Equal(t, 100, store.RenderedCount())

	require.True(t, store.HasMore())
	store.RenderNext()
	assert.Equal(t, 120, store.RenderedCount())
	assert.False(t, store.HasMore())

	// Extra triggers past the end are harmless.
	store.RenderNextChunk()
	assert.Equal(t, 120, store.RenderedCount())

	// Everything arrived exactly once, in order.
	require.Len(t, sink.indices, 120)
	for i, idx := range sink.indices {
		assert.Equal(t, i, idx)
	}
}

func TestStore_Reveal(t *testing.T) {
	sink := &recordingSink{}
	store := NewStore(makeMessages(10), 3, sink)

	idx, ok := store.Reveal("m7")
	require.True(t, ok)
	assert.Equal(t, 7, idx)
	assert.GreaterOrEqual(t, store.RenderedCount(), 8)

	// Already-materialized target renders nothing new.
	before := store.RenderedCount()
	idx, ok = store.Reveal("m2")
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.Equal(t, before, store.RenderedCount())
}

func TestStore_RevealUnknownID(t *testing.T) {
	sink := &recordingSink{}
	store := NewStore(makeMessages(10), 3, sink)

	_, ok := store.Reveal("missing")
	assert.False(t, ok)
	assert.Equal(t, 0, store.RenderedCount(), "no materialization on unknown id")
}

func TestStore_MessagesWithoutIDUnreachable(t *testing.T) {
	msgs := makeMessages(3)
	msgs[1].ID = ""
	sink := &recordingSink{}
	store := NewStore(msgs, 50, sink)

	_, ok := store.IndexOf("")
	assert.False(t, ok)

	idx, ok := store.IndexOf("m2")
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}
