// Package layout provides the container views: Auto for sequential box
// layout, PinBoard for anchored placement, and ScrollBox for clipped
// scrolling over a virtual canvas.
package layout

import (
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/solver"
	"github.com/odvcencio/buckle/pkg/ui/style"
	"github.com/odvcencio/buckle/pkg/ui/widgets"
)

type autoChild struct {
	view  runtime.View
	split bool
}

// Auto lays its children out end to end along one axis.
//
// Each frame the children are measured against the interior, handed to the
// solver, and painted at the resulting rects. An optional fill is painted
// first and an optional border on top of it; the border takes one cell from
// each edge of the interior.
type Auto struct {
	orientation runtime.Orientation
	arrangement runtime.Arrangement
	width       runtime.ContainerSizing
	height      runtime.ContainerSizing
	border      *runtime.LineStyle
	fill        *runtime.FillStyle
	children    []autoChild
}

// NewAuto creates an empty container that fills the space it is offered.
func NewAuto(o runtime.Orientation) *Auto {
	return &Auto{
		orientation: o,
		arrangement: runtime.Packed(runtime.AlignStart, runtime.AlignStart),
		width:       runtime.FillSize(),
		height:      runtime.FillSize(),
	}
}

// HBox creates a horizontal container holding children.
func HBox(children ...runtime.View) *Auto {
	return NewAuto(runtime.Horizontal).Add(children...)
}

// VBox creates a vertical container holding children.
func VBox(children ...runtime.View) *Auto {
	return NewAuto(runtime.Vertical).Add(children...)
}

// WithArrangement sets the spacing and alignment policy.
func (a *Auto) WithArrangement(arr runtime.Arrangement) *Auto {
	a.arrangement = arr
	return a
}

// WithWidth sets the container's own width sizing.
func (a *Auto) WithWidth(w runtime.ContainerSizing) *Auto {
	a.width = w
	return a
}

// WithHeight sets the container's own height sizing.
func (a *Auto) WithHeight(h runtime.ContainerSizing) *Auto {
	a.height = h
	return a
}

// WithBorder draws a box around the container.
func (a *Auto) WithBorder(line runtime.LineStyle) *Auto {
	a.border = &line
	return a
}

// WithFill paints the container's area before anything else.
func (a *Auto) WithFill(fill runtime.FillStyle) *Auto {
	a.fill = &fill
	return a
}

// Add appends children in order.
func (a *Auto) Add(children ...runtime.View) *Auto {
	for _, v := range children {
		a.children = append(a.children, autoChild{view: v})
	}
	return a
}

// AddEach appends n children built by fn.
func (a *Auto) AddEach(n int, fn func(i int) runtime.View) *Auto {
	for i := 0; i < n; i++ {
		a.Add(fn(i))
	}
	return a
}

// Spacer appends a child that soaks up free space.
func (a *Auto) Spacer() *Auto {
	return a.Add(widgets.Spacer{})
}

// Rule appends a divider across the main axis.
func (a *Auto) Rule(s style.Style) *Auto {
	a.children = append(a.children, autoChild{view: a.divider(s)})
	return a
}

// Split appends a divider that joins the border with T-junctions.
func (a *Auto) Split(s style.Style) *Auto {
	a.children = append(a.children, autoChild{view: a.divider(s), split: true})
	return a
}

func (a *Auto) divider(s style.Style) runtime.View {
	if a.orientation == runtime.Vertical {
		return widgets.NewHRule(s)
	}
	return widgets.NewVRule(s)
}

// Len returns the number of children, dividers included.
func (a *Auto) Len() int {
	return len(a.children)
}

// Sizing hugs the children laid end to end: fixed main-axis sizes and
// fixed gaps are summed, the cross axis takes the largest fixed size.
// A border adds two cells on each axis.
func (a *Auto) Sizing(bounds runtime.Dimensions) runtime.Constraints {
	inner := bounds
	frame := 0
	if a.border != nil {
		frame = 2
		inner = runtime.Dims(bounds.Width-frame, bounds.Height-frame)
	}

	vertical := a.orientation == runtime.Vertical
	mainSum, crossMax := 0, 0
	for _, ch := range a.children {
		c := ch.view.Sizing(inner)
		if vertical {
			c = c.Rotate()
		}
		if !c.Width.IsFill() {
			mainSum += c.Width.Cells
		}
		if !c.Height.IsFill() {
			crossMax = max(crossMax, c.Height.Cells)
		}
	}
	if a.arrangement.Spacing == runtime.SpacingFixed && len(a.children) > 1 {
		mainSum += a.arrangement.Gap * (len(a.children) - 1)
	}

	w, h := mainSum+frame, crossMax+frame
	if vertical {
		w, h = h, w
	}
	return runtime.NewConstraints(a.width.Simplify(w), a.height.Simplify(h))
}

// Render paints decoration, solves the children against the interior, and
// paints each child at its rect.
func (a *Auto) Render(within runtime.Rect, buf *runtime.Buffer) {
	if within.Empty() {
		return
	}
	if a.fill != nil {
		buf.Fill(within, *a.fill)
	}
	interior := within
	if a.border != nil {
		buf.DrawBox(within, *a.border)
		interior = within.Inset(1, 1, 1, 1)
	}
	if interior.Empty() || len(a.children) == 0 {
		return
	}

	items := make([]runtime.Constraints, len(a.children))
	for i, ch := range a.children {
		items[i] = ch.view.Sizing(interior.Size())
	}
	rects := solver.Solve(items, a.orientation, a.arrangement, interior)

	for i, r := range rects {
		if r.Empty() || r.X >= interior.Right() || r.Y >= interior.Bottom() {
			continue
		}
		ch := a.children[i]
		ch.view.Render(r, buf)
		if ch.split && a.border != nil {
			a.drawJunctions(within, r, buf)
		}
	}
}

// drawJunctions connects a split divider at r to the border around within.
func (a *Auto) drawJunctions(within, r runtime.Rect, buf *runtime.Buffer) {
	s := a.border.Style
	if a.orientation == runtime.Vertical {
		buf.DrawJunction(runtime.Pt(within.X, r.Y), runtime.JunctionLeft, s)
		buf.DrawJunction(runtime.Pt(within.Right()-1, r.Y), runtime.JunctionRight, s)
		return
	}
	buf.DrawJunction(runtime.Pt(r.X, within.Y), runtime.JunctionTop, s)
	buf.DrawJunction(runtime.Pt(r.X, within.Bottom()-1), runtime.JunctionBottom, s)
}
