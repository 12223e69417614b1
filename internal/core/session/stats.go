package session

import (
	"fmt"
	"sort"
	"strings"
)

// Stats summarizes a loaded session bundle.
type Stats struct {
	Files         int
	Ranges        int
	Messages      int
	RoleCounts    map[string]int
	LinesByMsgID  map[string]int // attributed line count per originating message
	UnattributedF int            // files with no ranges at all
}

// Analyze walks the bundle and collects summary statistics.
func Analyze(s *Session) Stats {
	stats := Stats{
		Files:        len(s.Files),
		Messages:     len(s.Messages),
		RoleCounts:   make(map[string]int),
		LinesByMsgID: make(map[string]int),
	}

	for _, m := range s.Messages {
		role := m.Role
		if role == "" {
			role = "unknown"
		}
		stats.RoleCounts[role]++
	}

	for _, f := range s.Files {
		if len(f.Ranges) == 0 {
			stats.UnattributedF++
		}
		lineCount := f.LineCount()
		for _, r := range f.Ranges {
			stats.Ranges++
			if r.MessageID == "" {
				continue
			}
			start := max(r.Start, 1)
			end := min(r.End, lineCount)
			if end >= start {
				stats.LinesByMsgID[r.MessageID] += end - start + 1
			}
		}
	}

	return stats
}

// FormatRoleCounts renders role counts as a compact dot-separated summary,
// most frequent first.
func FormatRoleCounts(counts map[string]int) string {
	if len(counts) == 0 {
		return ""
	}

	type rc struct {
		role  string
		count int
	}
	pairs := make([]rc, 0, len(counts))
	for role, count := range counts {
		pairs = append(pairs, rc{role, count})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].count != pairs[j].count {
			return pairs[i].count > pairs[j].count
		}
		return pairs[i].role < pairs[j].role
	})

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, fmt.Sprintf("%d %s", p.count, strings.ToLower(p.role)))
	}
	return strings.Join(parts, " · ")
}
