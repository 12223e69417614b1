package tree

import (
	"fmt"
	"io"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/hay-kot/traceview/internal/core/session"
	"github.com/hay-kot/traceview/internal/core/styles"
)

const (
	treeBranch = "├─"
	treeLast   = "└─"
)

// FileSelectedMsg is emitted when the user selects a file in the tree.
type FileSelectedMsg struct {
	Path string
}

// View renders the bundle file tree and reports file selections.
type View struct {
	list   list.Model
	width  int
	height int
}

// New builds the file tree from the session's files, applying the
// configured include/exclude globs.
func New(s *session.Session, include, exclude []string) *View {
	paths := FilterPaths(s.Paths(), include, exclude)

	rangeCounts := make(map[string]int, len(paths))
	for _, p := range paths {
		if f, ok := s.Lookup(p); ok {
			rangeCounts[p] = len(f.Ranges)
		}
	}

	items := BuildTreeItems(paths, rangeCounts)

	l := list.New(items, NewFileTreeDelegate(), 30, 20)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	v := &View{list: l}
	v.selectFirstFile()
	return v
}

// SetSize updates the list dimensions.
func (v *View) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.list.SetSize(width, height)
}

// Update handles navigation and selection.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "enter":
		// Select current item, skipping headers.
		if item := v.list.SelectedItem(); item != nil {
			if ti, ok := item.(TreeItem); ok && !ti.IsHeader {
				p := ti.Path
				return v, func() tea.Msg {
					return FileSelectedMsg{Path: p}
				}
			}
		}
		return v, nil
	case "up", "k", "down", "j", "pgup", "pgdown", "home", "end":
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(msg)
		return v, cmd
	}

	return v, nil
}

// View renders the tree content.
func (v *View) View() string {
	return v.list.View()
}

// SelectedPath returns the currently highlighted file path, or "" when the
// selection sits on a header or the tree is empty.
func (v *View) SelectedPath() string {
	item := v.list.SelectedItem()
	if item == nil {
		return ""
	}
	ti, ok := item.(TreeItem)
	if !ok || ti.IsHeader {
		return ""
	}
	return ti.Path
}

// Select moves the selection to the item for path, if present.
func (v *View) Select(path string) {
	for i, item := range v.list.Items() {
		if ti, ok := item.(TreeItem); ok && !ti.IsHeader && ti.Path == path {
			v.list.Select(i)
			return
		}
	}
}

// Empty reports whether the filtered tree contains no files.
func (v *View) Empty() bool {
	return FirstFile(v.list.Items()) == -1
}

func (v *View) selectFirstFile() {
	if i := FirstFile(v.list.Items()); i >= 0 {
		v.list.Select(i)
	}
}

// FileTreeDelegate handles rendering of file tree items.
type FileTreeDelegate struct {
	styles FileTreeDelegateStyles
}

// FileTreeDelegateStyles defines the styles for file tree rendering.
type FileTreeDelegateStyles struct {
	HeaderNormal   lipgloss.Style
	HeaderSelected lipgloss.Style
	TreeLine       lipgloss.Style
	FileName       lipgloss.Style
	FileMeta       lipgloss.Style
	Selected       lipgloss.Style
	SelectedBorder lipgloss.Style
}

// DefaultFileTreeDelegateStyles returns the default styles.
func DefaultFileTreeDelegateStyles() FileTreeDelegateStyles {
	return FileTreeDelegateStyles{
		HeaderNormal:   styles.TextPrimaryStyle.Bold(true),
		HeaderSelected: styles.TextSecondaryStyle.Bold(true),
		TreeLine:       styles.TextMutedStyle,
		FileName:       styles.TextForegroundStyle,
		FileMeta:       styles.TextMutedStyle,
		Selected:       styles.TextSecondaryStyle.Bold(true),
		SelectedBorder: styles.TextSecondaryStyle,
	}
}

// NewFileTreeDelegate creates a new file tree delegate.
func NewFileTreeDelegate() FileTreeDelegate {
	return FileTreeDelegate{styles: DefaultFileTreeDelegateStyles()}
}

// Height returns the height of each item.
func (d FileTreeDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d FileTreeDelegate) Spacing() int {
	return 0
}

// Update handles item updates.
func (d FileTreeDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single file tree item.
func (d FileTreeDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(TreeItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	var line string
	if ti.IsHeader {
		line = d.renderHeader(ti, isSelected)
	} else {
		line = d.renderFile(ti, isSelected)
	}

	var prefix string
	if isSelected {
		prefix = d.styles.SelectedBorder.Render("┃") + " "
	} else {
		prefix = "  "
	}

	_, _ = fmt.Fprintf(w, "%s%s", prefix, line)
}

func (d FileTreeDelegate) renderHeader(item TreeItem, isSelected bool) string {
	nameStyle := d.styles.HeaderNormal
	if isSelected {
		nameStyle = d.styles.HeaderSelected
	}
	return nameStyle.Render(item.Dir + "/")
}

func (d FileTreeDelegate) renderFile(item TreeItem, isSelected bool) string {
	var prefix string
	if item.IsLastInDir {
		prefix = treeLast
	} else {
		prefix = treeBranch
	}
	prefixStyled := d.styles.TreeLine.Render(prefix)

	nameStyle := d.styles.FileName
	if isSelected {
		nameStyle = d.styles.Selected
	}
	name := nameStyle.Render(baseName(item.Path))

	var meta string
	if item.RangeCount > 0 {
		meta = d.styles.FileMeta.Render(fmt.Sprintf(" (%d)", item.RangeCount))
	}

	return fmt.Sprintf("%s %s%s", prefixStyled, name, meta)
}

func baseName(p string) string {
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] == '/' {
			return p[i+1:]
		}
	}
	return p
}
