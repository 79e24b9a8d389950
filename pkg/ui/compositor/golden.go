package compositor

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// FrameDiff returns a unified diff between two rendered frames, or "" when
// they match. Trailing spaces are kept: they are part of the frame.
func FrameDiff(want, got string) string {
	if want == got {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(visible(want)),
		B:        difflib.SplitLines(visible(got)),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

// visible marks line ends so trailing blanks show up in a diff.
func visible(s string) string {
	return strings.ReplaceAll(s, "\n", "|\n") + "|\n"
}
