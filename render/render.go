// Package render implements the two-column terminal layout: a colored
// ASCII-art block on the left, an information block on the right, aligned
// to a column offset computed once from the widest art line.
package render

import (
	"fmt"
	"io"
	"strings"
)

// ResetCode restores default terminal attributes after a colored span.
const ResetCode = "\x1b[0m"

// gutter is the minimum gap between the widest art line and the info column.
const gutter = 5

// Color formats an ANSI SGR parameter string (e.g. "36", "1;36", "38;5;205")
// as a terminal escape sequence.
func Color(params string) string {
	return "\x1b[" + params + "m"
}

// Decorate prepends spacing and a color-activation sequence to every raw art
// line and appends the reset sequence.
//
// Parameters:
//   - art: Raw art lines, one string per line; content is preserved exactly
//   - colorCode: Escape sequence activating the art color
//   - resetCode: Escape sequence restoring default attributes (see ResetCode)
//   - spacing: Number of leading spaces before each line
//
// Returns:
//   - One decorated line per input line
//
// Each line carries its own activation/reset pair so a single line copied out
// of the terminal still renders correctly.
func Decorate(art []string, colorCode, resetCode string, spacing int) []string {
	prefix := strings.Repeat(" ", spacing)
	out := make([]string, len(art))
	for i, line := range art {
		out[i] = prefix + colorCode + line + resetCode
	}
	return out
}

// Offset returns the column at which every info line starts: the widest
// decorated art line, plus a five-column gutter, plus the spacing prefix.
// Widths are byte lengths with only the spacing prefix removed, so escape
// sequences count toward the width; changing that would shift every column
// relative to the established output.
func Offset(decorated []string, spacing int) int {
	maxVisible := 0
	for _, line := range decorated {
		visible := len(line) - spacing
		if visible < 0 {
			visible = 0
		}
		if visible > maxVisible {
			maxVisible = visible
		}
	}
	return maxVisible + gutter + spacing
}

// Compose pairs decorated art lines with info lines row by row.
//
// Parameters:
//   - decorated: Art lines as produced by Decorate
//   - info: Plain info lines
//   - spacing: The spacing the art was decorated with
//
// Returns:
//   - max(len(decorated), len(info)) rows; a block that runs out early
//     contributes empty strings
//
// Each row is padded so its info portion starts at the offset; padding never
// goes negative, so an over-long art line overflows the column rather than
// being truncated.
func Compose(decorated, info []string, spacing int) []string {
	offset := Offset(decorated, spacing)

	n := len(decorated)
	if len(info) > n {
		n = len(info)
	}

	rows := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var artLine, infoLine string
		if i < len(decorated) {
			artLine = decorated[i]
		}
		if i < len(info) {
			infoLine = info[i]
		}
		pad := offset - len(artLine)
		if pad < 0 {
			pad = 0
		}
		rows = append(rows, artLine+strings.Repeat(" ", pad)+infoLine)
	}
	return rows
}

// Fprint writes each row to w as one line, in order.
func Fprint(w io.Writer, rows []string) {
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
}
