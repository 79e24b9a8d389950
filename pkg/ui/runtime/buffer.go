package runtime

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/buckle/pkg/ui/style"
)

// Cell represents a single character cell in the buffer.
// A zero Rune marks the trailing half of a double-width glyph.
type Cell struct {
	Rune  rune
	Style style.Style
}

// BlankCell is an unstyled space.
func BlankCell() Cell {
	return Cell{Rune: ' '}
}

// Continuation reports whether c is covered by the wide glyph to its left.
func (c Cell) Continuation() bool {
	return c.Rune == 0
}

// update replaces the glyph and merges the style.
func (c *Cell) update(r rune, s style.Style) {
	c.Rune = r
	c.Style = c.Style.Merge(s)
}

// Buffer is a 2D grid of cells. Views paint into it during render;
// the compositor diffs it against the previously displayed frame.
//
// Point writes outside the grid panic: a view that addresses a cell it
// was not granted is a programming error. Span and region operations
// (rules, fills, boxes, text runs, merges) clip to the grid instead.
type Buffer struct {
	cells  []Cell
	width  int
	height int
}

// NewBuffer creates a blank buffer: spaces, no style.
func NewBuffer(d Dimensions) *Buffer {
	d = Dims(d.Width, d.Height)
	cells := make([]Cell, d.Width*d.Height)
	for i := range cells {
		cells[i] = BlankCell()
	}
	return &Buffer{cells: cells, width: d.Width, height: d.Height}
}

// Dimensions returns the buffer size.
func (b *Buffer) Dimensions() Dimensions {
	return Dimensions{Width: b.width, Height: b.height}
}

// Bounds returns the buffer area as a rect at the origin.
func (b *Buffer) Bounds() Rect {
	return Rect{Width: b.width, Height: b.height}
}

func (b *Buffer) index(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		panic(fmt.Sprintf("runtime: cell (%d,%d) outside %dx%d buffer", x, y, b.width, b.height))
	}
	return y*b.width + x
}

func (b *Buffer) inside(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Cell returns the cell at (x, y). Panics if out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	return b.cells[b.index(x, y)]
}

// At returns the cell at p. Panics if out of bounds.
func (b *Buffer) At(p Point) Cell {
	return b.Cell(p.X, p.Y)
}

// SetCell writes r at p. The glyph is replaced; the style is merged
// into the existing one. Panics if out of bounds.
func (b *Buffer) SetCell(p Point, r rune, s style.Style) {
	b.put(b.index(p.X, p.Y), r, s)
}

// setClipped is SetCell for span operations: out-of-range writes are dropped.
func (b *Buffer) setClipped(x, y int, r rune, s style.Style) {
	if !b.inside(x, y) {
		return
	}
	b.put(y*b.width+x, r, s)
}

// put updates the cell at index i and keeps wide glyphs whole: a glyph
// written over either half of a wide glyph blanks the other half, and a
// continuation with no wide lead to its left becomes a space.
func (b *Buffer) put(i int, r rune, s style.Style) {
	x := i % b.width
	c := &b.cells[i]
	if r == 0 {
		if x == 0 || !wideLead(b.cells[i-1]) {
			r = ' '
		}
	} else if c.Continuation() && x > 0 && wideLead(b.cells[i-1]) {
		b.cells[i-1].Rune = ' '
	}
	if wideLead(*c) && x+1 < b.width && b.cells[i+1].Continuation() {
		b.cells[i+1].Rune = ' '
	}
	c.update(r, s)
}

func wideLead(c Cell) bool {
	return c.Rune != 0 && runewidth.RuneWidth(c.Rune) == 2
}

// DrawText writes a single line of text at within's origin, clipped to
// within's width. Characters past the edge are dropped, not wrapped.
// Returns the number of columns written.
func (b *Buffer) DrawText(within Rect, text string, s style.Style) int {
	clip := within.Intersection(b.Bounds())
	if clip.Empty() || within.Y != clip.Y {
		return 0
	}
	return b.writeRun(within.X, within.Y, clip.X, clip.Right(), text, s)
}

// DrawMultilineText writes text line by line from within's origin.
// Lines past within's height and columns past its width are dropped.
func (b *Buffer) DrawMultilineText(within Rect, text string, s style.Style) {
	clip := within.Intersection(b.Bounds())
	if clip.Empty() {
		return
	}
	for i, line := range TextLines(text) {
		y := within.Y + i
		if y >= clip.Bottom() {
			break
		}
		if y < clip.Y {
			continue
		}
		b.writeRun(within.X, y, clip.X, clip.Right(), line, s)
	}
}

// writeRun writes text starting at column x on row y, skipping columns
// before lo and stopping before hi. Wide glyphs that would straddle hi are
// dropped.
func (b *Buffer) writeRun(x, y, lo, hi int, text string, s style.Style) int {
	written := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > hi {
			break
		}
		if x >= lo {
			b.setClipped(x, y, r, s)
			if w == 2 {
				b.setClipped(x+1, y, 0, s)
			}
			written += w
		}
		x += w
	}
	return written
}

// DrawHRule draws a horizontal line of length cells starting at at.
func (b *Buffer) DrawHRule(at Point, length int, s style.Style) {
	for x := at.X; x < at.X+length; x++ {
		b.setClipped(x, at.Y, GlyphHLine, s)
	}
}

// DrawVRule draws a vertical line of length cells starting at at.
func (b *Buffer) DrawVRule(at Point, length int, s style.Style) {
	for y := at.Y; y < at.Y+length; y++ {
		b.setClipped(at.X, y, GlyphVLine, s)
	}
}

// DrawBox draws a border around r using box-drawing characters.
func (b *Buffer) DrawBox(r Rect, line LineStyle) {
	if r.Width < 2 || r.Height < 2 {
		return
	}
	tl, tr, bl, br := line.Corners.glyphs()
	right := r.Right() - 1
	bottom := r.Bottom() - 1

	b.setClipped(r.X, r.Y, tl, line.Style)
	b.setClipped(right, r.Y, tr, line.Style)
	b.setClipped(r.X, bottom, bl, line.Style)
	b.setClipped(right, bottom, br, line.Style)

	for x := r.X + 1; x < right; x++ {
		b.setClipped(x, r.Y, GlyphHLine, line.Style)
		b.setClipped(x, bottom, GlyphHLine, line.Style)
	}
	for y := r.Y + 1; y < bottom; y++ {
		b.setClipped(r.X, y, GlyphVLine, line.Style)
		b.setClipped(right, y, GlyphVLine, line.Style)
	}
}

// DrawJunction writes a divider junction glyph at p.
func (b *Buffer) DrawJunction(p Point, j Junction, s style.Style) {
	b.setClipped(p.X, p.Y, j.Glyph(), s)
}

// Fill paints every cell of r with the fill glyph and style.
func (b *Buffer) Fill(r Rect, fill FillStyle) {
	glyph := fill.Glyph
	if glyph == 0 {
		glyph = ' '
	}
	clip := r.Intersection(b.Bounds())
	for y := clip.Y; y < clip.Bottom(); y++ {
		for x := clip.X; x < clip.Right(); x++ {
			b.put(y*b.width+x, glyph, fill.Style)
		}
	}
}

// MergeStyle tints every cell of r with s, leaving glyphs untouched.
func (b *Buffer) MergeStyle(r Rect, s style.Style) {
	clip := r.Intersection(b.Bounds())
	for y := clip.Y; y < clip.Bottom(); y++ {
		for x := clip.X; x < clip.Right(); x++ {
			c := &b.cells[y*b.width+x]
			c.Style = c.Style.Merge(s)
		}
	}
}

// Merge composites other into b with its top-left corner at at, using the
// cell update rule. This lets sub-layouts render independently and then
// join a larger frame.
func (b *Buffer) Merge(at Point, other *Buffer) {
	for y := 0; y < other.height; y++ {
		for x := 0; x < other.width; x++ {
			c := other.cells[y*other.width+x]
			b.setClipped(at.X+x, at.Y+y, c.Rune, c.Style)
		}
	}
}

// Crop returns the window of b between from (inclusive) and to (exclusive).
// Corners are clamped to the buffer, so rows or columns outside it are
// dropped rather than padded.
func (b *Buffer) Crop(from, to Point) *Buffer {
	x0 := clamp(from.X, 0, b.width)
	y0 := clamp(from.Y, 0, b.height)
	x1 := clamp(to.X, x0, b.width)
	y1 := clamp(to.Y, y0, b.height)

	out := &Buffer{
		cells:  make([]Cell, (x1-x0)*(y1-y0)),
		width:  x1 - x0,
		height: y1 - y0,
	}
	for y := y0; y < y1; y++ {
		copy(out.cells[(y-y0)*out.width:(y-y0+1)*out.width], b.cells[y*b.width+x0:y*b.width+x1])
	}
	return out
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Buffer{cells: cells, width: b.width, height: b.height}
}

// Row returns the glyphs of row y as a string. Continuation cells are skipped.
func (b *Buffer) Row(y int) string {
	var sb strings.Builder
	for x := 0; x < b.width; x++ {
		c := b.cells[b.index(x, y)]
		if c.Continuation() {
			continue
		}
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}

// String renders the glyphs of every row joined by newlines.
func (b *Buffer) String() string {
	rows := make([]string, b.height)
	for y := range rows {
		rows[y] = b.Row(y)
	}
	return strings.Join(rows, "\n")
}
