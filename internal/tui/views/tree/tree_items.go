package tree

import (
	"path"
	"sort"

	"charm.land/bubbles/v2/list"
	"github.com/bmatcuk/doublestar/v4"
)

// TreeItem represents an entry in the file tree: either a directory header
// or a file row beneath one.
type TreeItem struct {
	IsHeader    bool   // True for a directory header row
	Dir         string // Directory name (when IsHeader)
	Path        string // Full bundle path (when !IsHeader)
	IsLastInDir bool   // True for the last file under its directory
	RangeCount  int    // Number of attribution ranges on this file
}

// FilterValue returns the value used for filtering.
func (i TreeItem) FilterValue() string {
	if i.IsHeader {
		return ""
	}
	return i.Path
}

// FilterPaths applies include/exclude glob patterns to a path list.
// Empty include means "everything"; exclude wins over include. Patterns
// that fail to compile were rejected at config validation, so match errors
// here only drop the single path they were tested against.
func FilterPaths(paths []string, include, exclude []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if !matchAny(include, p, true) {
			continue
		}
		if matchAny(exclude, p, false) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchAny(patterns []string, p string, emptyMatches bool) bool {
	if len(patterns) == 0 {
		return emptyMatches
	}
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, p)
		if err == nil && ok {
			return true
		}
	}
	return false
}

// BuildTreeItems converts bundle paths into tree items grouped by their
// top-level directory. Root-level files group under ".".
func BuildTreeItems(paths []string, rangeCounts map[string]int) []list.Item {
	if len(paths) == 0 {
		return nil
	}

	groups := make(map[string][]string)
	for _, p := range paths {
		groups[topDir(p)] = append(groups[topDir(p)], p)
	}

	dirs := make([]string, 0, len(groups))
	for dir := range groups {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	items := make([]list.Item, 0, len(paths)+len(dirs))
	for _, dir := range dirs {
		files := groups[dir]
		sort.Strings(files)

		items = append(items, TreeItem{IsHeader: true, Dir: dir})
		for idx, p := range files {
			items = append(items, TreeItem{
				Path:        p,
				IsLastInDir: idx == len(files)-1,
				RangeCount:  rangeCounts[p],
			})
		}
	}

	return items
}

func topDir(p string) string {
	dir, _ := path.Split(p)
	if dir == "" {
		return "."
	}
	for i := 0; i < len(dir); i++ {
		if dir[i] == '/' {
			return dir[:i]
		}
	}
	return dir
}

// FirstFile returns the index of the first file item, or -1 when the list
// contains no files.
func FirstFile(items []list.Item) int {
	for i, item := range items {
		ti, ok := item.(TreeItem)
		if ok && !ti.IsHeader {
			return i
		}
	}
	return -1
}
