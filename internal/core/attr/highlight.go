package attr

// HighlightState is the active-range highlight for one file's range list.
// The zero value is Inactive.
type HighlightState struct {
	Active     bool
	RangeIndex int
}

// Inactive returns the initial highlight state. Every freshly built code
// view starts here; highlight never survives a file switch.
func Inactive() HighlightState {
	return HighlightState{}
}

// SetActiveRange is the single command the highlight reducer understands.
type SetActiveRange struct {
	Index int
}

// Reduce applies cmd against the current range list and returns the next
// state. An index outside [0, len(ranges)) resets to Inactive rather than
// failing.
func Reduce(_ HighlightState, cmd SetActiveRange, ranges []Range) HighlightState {
	if cmd.Index < 0 || cmd.Index >= len(ranges) {
		return HighlightState{}
	}
	return HighlightState{Active: true, RangeIndex: cmd.Index}
}

// ActiveLines returns the full set of lines emphasized by the current state,
// clamped to the document. Always recomputed fresh; callers replace any
// prior set wholesale. Returns nil when inactive or out of sync with the
// range list.
func ActiveLines(state HighlightState, ranges []Range, lineCount int) []int {
	if !state.Active || state.RangeIndex < 0 || state.RangeIndex >= len(ranges) {
		return nil
	}

	r := ranges[state.RangeIndex]
	start := max(r.Start, 1)
	end := min(r.End, lineCount)
	if start > end {
		return nil
	}

	lines := make([]int, 0, end-start+1)
	for line := start; line <= end; line++ {
		lines = append(lines, line)
	}
	return lines
}
