// Package attr computes line-level attribution decorations for source files.
//
// A source file carries an ordered list of attribution ranges, each tying an
// inclusive span of lines to the transcript message that produced it. This
// package turns those ranges into per-line decoration records and tracks
// which range, if any, is currently emphasized.
package attr

// PaletteSize is the number of distinct attribution colors. Range colors
// cycle through the palette by list position.
const PaletteSize = 6

// Range is an inclusive 1-based span of file lines attributed to a
// transcript message. MessageID may be empty when the originating turn is
// unknown.
type Range struct {
	Start     int    `json:"start"`
	End       int    `json:"end"`
	MessageID string `json:"msg_id"`
}

// LineDecoration records the attribution applied to a single line.
type LineDecoration struct {
	Line       int    // 1-based line number
	RangeIndex int    // index of the owning range in the file's range list
	ColorIndex int    // RangeIndex mod PaletteSize
	MessageID  string // originating message id, empty if absent
}

// BuildLineDecorations computes one decoration per covered line for a
// document of lineCount lines. Lines outside [1, lineCount] are dropped
// silently; a range starting past the end of the document contributes
// nothing. When ranges overlap, the record applied last in list order wins,
// so later consumers observe last-range-wins per line.
func BuildLineDecorations(ranges []Range, lineCount int) map[int]LineDecoration {
	decorations := make(map[int]LineDecoration)

	for idx, r := range ranges {
		start := max(r.Start, 1)
		end := min(r.End, lineCount)

		for line := start; line <= end; line++ {
			decorations[line] = LineDecoration{
				Line:       line,
				RangeIndex: idx,
				ColorIndex: idx % PaletteSize,
				MessageID:  r.MessageID,
			}
		}
	}

	return decorations
}

// FirstMessageID returns the message id carried by the first range, or empty
// when the list is empty or the first range has no id. Used to anchor the
// transcript when a file is opened.
func FirstMessageID(ranges []Range) string {
	if len(ranges) == 0 {
		return ""
	}
	return ranges[0].MessageID
}
