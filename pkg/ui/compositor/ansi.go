package compositor

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/odvcencio/buckle/pkg/ui/style"
)

// ANSI escape sequences.
const (
	ANSIEscape      = "\x1b["
	ANSIClearScreen = "\x1b[2J"
	ANSICursorHome  = "\x1b[H"
	ANSICursorHide  = "\x1b[?25l"
	ANSICursorShow  = "\x1b[?25h"
	ANSIReset       = "\x1b[0m"
)

// CursorTo returns the sequence that moves the cursor to (x, y).
// Coordinates are 0-indexed, ANSI is 1-indexed.
func CursorTo(x, y int) string {
	return fmt.Sprintf("\x1b[%d;%dH", y+1, x+1)
}

// CursorForward moves the cursor right n columns.
func CursorForward(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("\x1b[%dC", n)
}

// ANSITarget is a Target that writes cursor moves and SGR sequences for
// each staged cell to an io.Writer. Colors are downgraded to the writer's
// profile with termenv, so the same frame prints correctly on a 16-color
// terminal, a true-color one, or a plain file.
type ANSITarget struct {
	mu      sync.Mutex
	out     io.Writer
	profile termenv.Profile
	width   int
	height  int

	buf       strings.Builder
	lastStyle style.Style
	styleSet  bool
	lastX     int
	lastY     int
	posSet    bool
}

// NewANSITarget creates a target of the given size writing to out.
func NewANSITarget(out io.Writer, width, height int, profile termenv.Profile) *ANSITarget {
	return &ANSITarget{
		out:     out,
		profile: profile,
		width:   max(0, width),
		height:  max(0, height),
	}
}

// DetectProfile returns the color profile of out when it is a terminal,
// and termenv.Ascii otherwise.
func DetectProfile(out io.Writer) termenv.Profile {
	return termenv.NewOutput(out).EnvColorProfile()
}

// Size returns the configured surface size.
func (t *ANSITarget) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.width, t.height
}

// Resize changes the reported size.
func (t *ANSITarget) Resize(width, height int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.width, t.height = max(0, width), max(0, height)
}

// SetContent stages r at (x, y). Out-of-range cells are dropped.
func (t *ANSITarget) SetContent(x, y int, r rune, s style.Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if x < 0 || x >= t.width || y < 0 || y >= t.height {
		return
	}
	t.moveTo(x, y)
	t.setStyle(s)
	t.buf.WriteRune(r)
	t.lastX += max(1, runewidth.RuneWidth(r))
}

// Show writes the staged output and resets the style.
func (t *ANSITarget) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.buf.Len() == 0 {
		return
	}
	if t.styleSet {
		t.buf.WriteString(ANSIReset)
	}
	_, _ = io.WriteString(t.out, t.buf.String())
	t.buf.Reset()
	t.styleSet = false
	t.posSet = false
}

// Clear erases the screen and homes the cursor immediately.
func (t *ANSITarget) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf.Reset()
	_, _ = io.WriteString(t.out, ANSIReset+ANSIClearScreen+ANSICursorHome)
	t.styleSet = false
	t.posSet = false
}

// moveTo positions the cursor, using a short relative move when the
// target is a few columns ahead on the same row.
func (t *ANSITarget) moveTo(x, y int) {
	if t.posSet && t.lastY == y && t.lastX == x {
		return
	}
	if t.posSet && t.lastY == y {
		if delta := x - t.lastX; delta > 0 && delta < 5 {
			t.buf.WriteString(CursorForward(delta))
			t.lastX = x
			return
		}
	}
	t.buf.WriteString(CursorTo(x, y))
	t.lastX, t.lastY = x, y
	t.posSet = true
}

func (t *ANSITarget) setStyle(s style.Style) {
	if t.styleSet && t.lastStyle == s {
		return
	}
	t.buf.WriteString(t.sgr(s))
	t.lastStyle = s
	t.styleSet = true
}

// sgr returns a full reset-and-set sequence for s.
func (t *ANSITarget) sgr(s style.Style) string {
	parts := []string{"0"}
	for _, a := range []struct {
		mask style.AttrMask
		code int
	}{
		{style.AttrBold, 1},
		{style.AttrDim, 2},
		{style.AttrItalic, 3},
		{style.AttrUnderline, 4},
		{style.AttrBlink, 5},
		{style.AttrReverse, 7},
		{style.AttrStrikeThrough, 9},
	} {
		if s.Has(a.mask) {
			parts = append(parts, strconv.Itoa(a.code))
		}
	}
	if seq := t.color(s.FG, false); seq != "" {
		parts = append(parts, seq)
	}
	if seq := t.color(s.BG, true); seq != "" {
		parts = append(parts, seq)
	}
	return ANSIEscape + strings.Join(parts, ";") + "m"
}

// color converts c to an SGR parameter list downgraded to the profile.
// Unset and default colors produce nothing: the leading reset already
// selects the terminal default.
func (t *ANSITarget) color(c style.Color, bg bool) string {
	var tc termenv.Color
	switch c.Mode {
	case style.ColorMode16:
		tc = termenv.ANSIColor(c.Value)
	case style.ColorMode256:
		tc = termenv.ANSI256Color(c.Value)
	case style.ColorModeRGB:
		r, g, b := c.RGBComponents()
		tc = termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	default:
		return ""
	}
	return t.profile.Convert(tc).Sequence(bg)
}
