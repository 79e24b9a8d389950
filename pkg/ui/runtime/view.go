// Package runtime holds the layout vocabulary shared by every view: geometry,
// sizing, the cell buffer, and the View contract itself.
//
// A frame is produced in two passes. Sizing walks the tree bottom-up asking
// each view what it wants within some bounds; Render walks it top-down
// handing each view the rect it was granted. Nothing is cached between
// frames.
package runtime

// View is implemented by every layout node and leaf.
type View interface {
	// Sizing reports the view's desired constraints within bounds. It must
	// be pure: containers may call it more than once per frame.
	Sizing(bounds Dimensions) Constraints

	// Render paints the view into buf. Writes must stay inside within.
	Render(within Rect, buf *Buffer)
}

// RenderRoot lays out root against the whole of buf and paints it from
// the origin.
func RenderRoot(root View, buf *Buffer) Rect {
	dims := buf.Dimensions()
	area := RectAt(Point{}, root.Sizing(dims).Resolve(dims))
	if !area.Empty() {
		root.Render(area, buf)
	}
	return area
}
