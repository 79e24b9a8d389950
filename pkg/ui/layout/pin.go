package layout

import "github.com/odvcencio/buckle/pkg/ui/runtime"

type anchorKind uint8

const (
	anchorTopLeft anchorKind = iota
	anchorTopRight
	anchorBottomLeft
	anchorBottomRight
	anchorCenter
)

// Anchor says where a pinned view sits on a PinBoard. Corner anchors carry
// an offset measured inward from that corner.
type Anchor struct {
	kind   anchorKind
	offset runtime.Point
}

// TopLeft pins a view x cells right and y cells down from the top-left corner.
func TopLeft(x, y int) Anchor {
	return Anchor{kind: anchorTopLeft, offset: runtime.Pt(max(0, x), max(0, y))}
}

// TopRight pins a view x cells left and y cells down from the top-right corner.
func TopRight(x, y int) Anchor {
	return Anchor{kind: anchorTopRight, offset: runtime.Pt(max(0, x), max(0, y))}
}

// BottomLeft pins a view x cells right and y cells up from the bottom-left corner.
func BottomLeft(x, y int) Anchor {
	return Anchor{kind: anchorBottomLeft, offset: runtime.Pt(max(0, x), max(0, y))}
}

// BottomRight pins a view x cells left and y cells up from the bottom-right corner.
func BottomRight(x, y int) Anchor {
	return Anchor{kind: anchorBottomRight, offset: runtime.Pt(max(0, x), max(0, y))}
}

// Center pins a view in the middle of the board.
func Center() Anchor {
	return Anchor{kind: anchorCenter}
}

// Place returns the rect a view with the given sizing occupies in interior.
func (a Anchor) Place(interior runtime.Rect, v runtime.View) runtime.Rect {
	if a.kind == anchorCenter {
		d := v.Sizing(interior.Size()).Resolve(interior.Size())
		return runtime.NewRect(
			interior.X+(interior.Width-d.Width)/2,
			interior.Y+(interior.Height-d.Height)/2,
			d.Width, d.Height,
		)
	}

	avail := runtime.Dims(interior.Width-a.offset.X, interior.Height-a.offset.Y)
	d := v.Sizing(avail).Resolve(avail)

	x, y := a.offset.X, a.offset.Y
	if a.kind == anchorTopRight || a.kind == anchorBottomRight {
		x = interior.Width - d.Width - a.offset.X
	}
	if a.kind == anchorBottomLeft || a.kind == anchorBottomRight {
		y = interior.Height - d.Height - a.offset.Y
	}
	return runtime.NewRect(interior.X+x, interior.Y+y, d.Width, d.Height)
}

type pin struct {
	anchor Anchor
	view   runtime.View
}

// PinBoard places each child at an anchor, independent of its siblings.
// Pins are painted in the order they were added, so later pins cover
// earlier ones where they overlap.
type PinBoard struct {
	width  runtime.Sizing
	height runtime.Sizing
	border *runtime.LineStyle
	fill   *runtime.FillStyle
	pins   []pin
}

// NewPinBoard creates a board that fills the space it is offered.
func NewPinBoard() *PinBoard {
	return &PinBoard{width: runtime.Fill(), height: runtime.Fill()}
}

// WithWidth sets the board width.
func (p *PinBoard) WithWidth(w runtime.Sizing) *PinBoard {
	p.width = w
	return p
}

// WithHeight sets the board height.
func (p *PinBoard) WithHeight(h runtime.Sizing) *PinBoard {
	p.height = h
	return p
}

// WithBorder draws a box around the board; anchors measure from inside it.
func (p *PinBoard) WithBorder(line runtime.LineStyle) *PinBoard {
	p.border = &line
	return p
}

// WithFill paints the board's area before any pin.
func (p *PinBoard) WithFill(fill runtime.FillStyle) *PinBoard {
	p.fill = &fill
	return p
}

// Pin adds v at anchor.
func (p *PinBoard) Pin(anchor Anchor, v runtime.View) *PinBoard {
	p.pins = append(p.pins, pin{anchor: anchor, view: v})
	return p
}

// Sizing returns the board's configured width and height constraints.
func (p *PinBoard) Sizing(bounds runtime.Dimensions) runtime.Constraints {
	return runtime.NewConstraints(p.width.ConstrainBy(bounds.Width), p.height.ConstrainBy(bounds.Height))
}

// Render paints the fill and border, then each pin at its anchor.
func (p *PinBoard) Render(within runtime.Rect, buf *runtime.Buffer) {
	if within.Empty() {
		return
	}
	if p.fill != nil {
		buf.Fill(within, *p.fill)
	}
	interior := within
	if p.border != nil {
		buf.DrawBox(within, *p.border)
		interior = within.Inset(1, 1, 1, 1)
	}
	for _, pn := range p.pins {
		r := pn.anchor.Place(interior, pn.view)
		if r.Empty() {
			continue
		}
		pn.view.Render(r, buf)
	}
}
