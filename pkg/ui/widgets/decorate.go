package widgets

import (
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
)

// Insets are padding amounts per edge.
type Insets struct {
	Top, Right, Bottom, Left int
}

// Padding surrounds a child with empty cells.
type Padding struct {
	insets Insets
	child  runtime.View
}

// Pad wraps child with per-edge padding.
func Pad(insets Insets, child runtime.View) *Padding {
	insets.Top = max(0, insets.Top)
	insets.Right = max(0, insets.Right)
	insets.Bottom = max(0, insets.Bottom)
	insets.Left = max(0, insets.Left)
	return &Padding{insets: insets, child: child}
}

// PadAll pads every edge by n.
func PadAll(n int, child runtime.View) *Padding {
	return Pad(Insets{Top: n, Right: n, Bottom: n, Left: n}, child)
}

// PadHorizontal pads the left and right edges by n.
func PadHorizontal(n int, child runtime.View) *Padding {
	return Pad(Insets{Right: n, Left: n}, child)
}

// PadVertical pads the top and bottom edges by n.
func PadVertical(n int, child runtime.View) *Padding {
	return Pad(Insets{Top: n, Bottom: n}, child)
}

// Sizing measures the child in the padded interior; fixed requests grow by
// the padding, Fill stays Fill.
func (p *Padding) Sizing(bounds runtime.Dimensions) runtime.Constraints {
	dx := p.insets.Left + p.insets.Right
	dy := p.insets.Top + p.insets.Bottom
	inner := p.child.Sizing(runtime.Dims(bounds.Width-dx, bounds.Height-dy))
	return runtime.NewConstraints(grow(inner.Width, dx), grow(inner.Height, dy))
}

func grow(s runtime.Sizing, by int) runtime.Sizing {
	if s.IsFill() {
		return s
	}
	return runtime.Fixed(s.Cells + by)
}

// Render paints the child inside the padded interior.
func (p *Padding) Render(within runtime.Rect, buf *runtime.Buffer) {
	inner := within.Inset(p.insets.Top, p.insets.Right, p.insets.Bottom, p.insets.Left)
	if inner.Empty() {
		return
	}
	p.child.Render(inner, buf)
}

// Styled tints its whole area with a style, then paints its child on top.
// Because cell writes merge styles, a background set here survives the
// child's text.
type Styled struct {
	style style.Style
	child runtime.View
}

// Tint wraps child with an arbitrary style overlay.
func Tint(s style.Style, child runtime.View) *Styled {
	return &Styled{style: s, child: child}
}

// Background paints c behind child.
func Background(c style.Color, child runtime.View) *Styled {
	return Tint(style.New().Background(c), child)
}

// Foreground sets c as the default text color for child.
func Foreground(c style.Color, child runtime.View) *Styled {
	return Tint(style.New().Foreground(c), child)
}

// Sizing defers to the child.
func (s *Styled) Sizing(bounds runtime.Dimensions) runtime.Constraints {
	return s.child.Sizing(bounds)
}

// Render merges the style over within, then paints the child.
func (s *Styled) Render(within runtime.Rect, buf *runtime.Buffer) {
	buf.MergeStyle(within, s.style)
	s.child.Render(within, buf)
}
