package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/hay-kot/traceview/internal/core/config"
	"github.com/hay-kot/traceview/internal/core/session"
	"github.com/hay-kot/traceview/internal/tui/views/code"
	"github.com/hay-kot/traceview/internal/tui/views/transcript"
	"github.com/hay-kot/traceview/internal/tui/views/tree"
)

// pane identifies which pane currently has keyboard focus.
type pane int

const (
	paneTree pane = iota
	paneCode
	paneTranscript
	paneCount
)

// Options configures the viewer TUI.
type Options struct {
	Session *session.Session
	Config  config.Config
}

// Model is the root bubbletea model: a file tree, a code pane, and a
// transcript pane. The model is the only component that talks to both the
// code and transcript panes, and always does so sequentially.
type Model struct {
	session    *session.Session
	cfg        config.Config
	tree       *tree.View
	code       *code.View // nil when the current path has no file
	transcript *transcript.View

	currentPath string
	focus       pane
	width       int
	height      int
	quitting    bool
}

// New creates the viewer model. The initial file is the tree's first
// entry, when the filtered tree has one.
func New(opts Options) Model {
	m := Model{
		session:    opts.Session,
		cfg:        opts.Config,
		tree:       tree.New(opts.Session, opts.Config.Files.Include, opts.Config.Files.Exclude),
		transcript: transcript.New(opts.Session.Messages, opts.Config.Transcript.ChunkSize),
		focus:      paneTree,
		width:      80,
		height:     24,
	}

	if p := m.tree.SelectedPath(); p != "" {
		m.loadFile(p)
	}

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizePanes()
		return m, nil

	case tree.FileSelectedMsg:
		m.loadFile(msg.Path)
		m.focus = paneCode
		return m, nil

	case code.LineActivatedMsg:
		m.handleLineActivated(msg)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "tab":
			m.focus = (m.focus + 1) % paneCount
			return m, nil
		case "shift+tab":
			m.focus = (m.focus + paneCount - 1) % paneCount
			return m, nil
		case "<":
			m.adjustSplit(-5)
			return m, nil
		case ">":
			m.adjustSplit(5)
			return m, nil
		}
		return m.updateFocused(msg)
	}

	return m, nil
}

// updateFocused routes a key message to the focused pane.
func (m Model) updateFocused(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.focus {
	case paneTree:
		m.tree, cmd = m.tree.Update(msg)
	case paneCode:
		if m.code == nil {
			return m, nil
		}
		m.code, cmd = m.code.Update(msg)
	case paneTranscript:
		if msg.String() == "enter" {
			m.jumpToHighlightedMessage()
			return m, nil
		}
		m.transcript, cmd = m.transcript.Update(msg)
	}

	return m, cmd
}

// CurrentPath returns the path of the loaded file, or "" when none is.
func (m Model) CurrentPath() string {
	return m.currentPath
}
