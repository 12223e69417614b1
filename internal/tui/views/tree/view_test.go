package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hay-kot/traceview/internal/core/attr"
	"github.com/hay-kot/traceview/internal/core/session"
	"github.com/hay-kot/traceview/pkg/tuitest"
)

func sampleSession() *session.Session {
	return &session.Session{
		Files: map[string]session.File{
			"cmd/main.go": {Content: "package main"},
			"pkg/lib.go": {
				Content: "package lib\n",
				Ranges:  []attr.Range{{Start: 1, End: 1, MessageID: "m1"}},
			},
		},
	}
}

func TestView_SelectsFirstFile(t *testing.T) {
	v := New(sampleSession(), nil, nil)
	v.SetSize(40, 20)

	assert.Equal(t, "cmd/main.go", v.SelectedPath())
	assert.False(t, v.Empty())
}

func TestView_EnterEmitsSelection(t *testing.T) {
	v := New(sampleSession(), nil, nil)
	v.SetSize(40, 20)

	_, cmd := v.Update(tuitest.KeyEnter())
	require.NotNil(t, cmd)

	msg, ok := cmd().(FileSelectedMsg)
	require.True(t, ok)
	assert.Equal(t, "cmd/main.go", msg.Path)
}

func TestView_Select(t *testing.T) {
	v := New(sampleSession(), nil, nil)
	v.SetSize(40, 20)

	v.Select("pkg/lib.go")
	assert.Equal(t, "pkg/lib.go", v.SelectedPath())

	// Unknown paths leave the selection alone.
	v.Select("nope.go")
	assert.Equal(t, "pkg/lib.go", v.SelectedPath())
}

func TestView_ExcludeFilter(t *testing.T) {
	v := New(sampleSession(), nil, []string{"cmd/**"})
	v.SetSize(40, 20)

	assert.Equal(t, "pkg/lib.go", v.SelectedPath())
}

func TestView_EmptyTree(t *testing.T) {
	v := New(sampleSession(), []string{"no-such/**"}, nil)
	v.SetSize(40, 20)

	assert.True(t, v.Empty())
	assert.Equal(t, "", v.SelectedPath())

	_, cmd := v.Update(tuitest.KeyEnter())
	assert.Nil(t, cmd)
}
