// Package jsoncolor pretty-prints JSON payloads with theme-aware coloring
// for the transcript pane.
package jsoncolor

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/hay-kot/traceview/internal/core/styles"
)

// Likely reports whether text looks like a JSON document worth
// pretty-printing: it starts with an object or array opener and parses.
func Likely(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return false
	}
	return json.Valid([]byte(trimmed))
}

// Colorize pretty-prints JSON bytes with theme-aware syntax coloring.
// Falls back to the raw string on invalid JSON.
func Colorize(data []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return string(data)
	}

	var out strings.Builder
	raw := buf.String()

	i := 0
	for i < len(raw) {
		ch := raw[i]
		switch {
		case ch == '"':
			end := findStringEnd(raw, i)
			str := raw[i : end+1]

			// Keys are followed by a colon; values are not.
			rest := strings.TrimLeft(raw[end+1:], " \t")
			if len(rest) > 0 && rest[0] == ':' {
				out.WriteString(styles.TextPrimaryStyle.Render(str))
			} else {
				out.WriteString(styles.TextSuccessStyle.Render(str))
			}
			i = end + 1

		case ch == ':':
			out.WriteString(styles.TextMutedStyle.Render(":"))
			i++

		case ch >= '0' && ch <= '9' || ch == '-':
			end := i + 1
			for end < len(raw) && isNumberChar(raw[end]) {
				end++
			}
			out.WriteString(styles.TextWarningStyle.Render(raw[i:end]))
			i = end

		case hasWordAt(raw, i, "true"):
			out.WriteString(styles.TextSecondaryStyle.Render("true"))
			i += 4

		case hasWordAt(raw, i, "false"):
			out.WriteString(styles.TextSecondaryStyle.Render("false"))
			i += 5

		case hasWordAt(raw, i, "null"):
			out.WriteString(styles.TextErrorStyle.Render("null"))
			i += 4

		case ch == '{' || ch == '}' || ch == '[' || ch == ']':
			out.WriteString(styles.TextForegroundStyle.Render(string(ch)))
			i++

		default:
			out.WriteByte(ch)
			i++
		}
	}

	return out.String()
}

func isNumberChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == 'e' || c == 'E' || c == '+' || c == '-'
}

func hasWordAt(s string, pos int, word string) bool {
	return len(s)-pos >= len(word) && s[pos:pos+len(word)] == word
}

// findStringEnd returns the index of the closing quote for a JSON string
// starting at pos.
func findStringEnd(s string, pos int) int {
	for i := pos + 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++ // skip escaped character
			continue
		}
		if s[i] == '"' {
			return i
		}
	}
	return len(s) - 1
}
