package runtime

import "github.com/odvcencio/buckle/pkg/ui/style"

// Box-drawing glyphs.
const (
	GlyphHLine          = '─'
	GlyphVLine          = '│'
	GlyphDownLeft       = '┐'
	GlyphDownRight      = '┌'
	GlyphUpRight        = '└'
	GlyphUpLeft         = '┘'
	GlyphVerticalRight  = '├'
	GlyphVerticalLeft   = '┤'
	GlyphUpHorizontal   = '┴'
	GlyphDownHorizontal = '┬'
	GlyphCross          = '┼'
	GlyphArcDownRight   = '╭'
	GlyphArcDownLeft    = '╮'
	GlyphArcUpLeft      = '╯'
	GlyphArcUpRight     = '╰'
)

// Corners selects the corner glyphs of a box.
type Corners uint8

const (
	CornersSquare Corners = iota
	CornersRounded
)

func (c Corners) glyphs() (topLeft, topRight, bottomLeft, bottomRight rune) {
	if c == CornersRounded {
		return GlyphArcDownRight, GlyphArcDownLeft, GlyphArcUpRight, GlyphArcUpLeft
	}
	return GlyphDownRight, GlyphDownLeft, GlyphUpRight, GlyphUpLeft
}

// LineStyle describes a border.
type LineStyle struct {
	Corners Corners
	Style   style.Style
}

// DefaultLineStyle is an unstyled square border.
func DefaultLineStyle() LineStyle {
	return LineStyle{Corners: CornersSquare}
}

// Rounded is an unstyled rounded border.
func Rounded() LineStyle {
	return LineStyle{Corners: CornersRounded}
}

// WithStyle returns a copy of l drawn with s.
func (l LineStyle) WithStyle(s style.Style) LineStyle {
	l.Style = s
	return l
}

// FillStyle describes a background fill. A zero Glyph fills with spaces.
type FillStyle struct {
	Glyph rune
	Style style.Style
}

// NewFillStyle creates a fill of glyph painted with s.
func NewFillStyle(glyph rune, s style.Style) FillStyle {
	return FillStyle{Glyph: glyph, Style: s}
}

// Junction is a T-junction where an internal divider meets a border.
type Junction uint8

const (
	JunctionTop Junction = iota
	JunctionBottom
	JunctionLeft
	JunctionRight
	JunctionCross
)

// Glyph returns the box-drawing glyph for j.
func (j Junction) Glyph() rune {
	switch j {
	case JunctionTop:
		return GlyphDownHorizontal
	case JunctionBottom:
		return GlyphUpHorizontal
	case JunctionLeft:
		return GlyphVerticalRight
	case JunctionRight:
		return GlyphVerticalLeft
	default:
		return GlyphCross
	}
}
