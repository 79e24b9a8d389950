package runtime

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TextLines splits text into display lines. A trailing newline does not
// produce an empty final line, and "\r\n" endings are accepted.
func TextLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// TextWidth returns the display width of s in cells.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// TextExtent returns the widest line and the line count of text.
func TextExtent(text string) Dimensions {
	lines := TextLines(text)
	width := 0
	for _, line := range lines {
		width = max(width, TextWidth(line))
	}
	return Dimensions{Width: width, Height: len(lines)}
}
