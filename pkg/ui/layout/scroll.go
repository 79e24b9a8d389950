package layout

import "github.com/odvcencio/buckle/pkg/ui/runtime"

// DefaultMaxExtent bounds the virtual canvas along the scroll axis.
const DefaultMaxExtent = 1000

// ScrollBox shows a window onto content laid out on a virtual canvas.
//
// The content is rendered in full onto a canvas as wide (or tall) as the
// box and MaxExtent cells long on the scroll axis, then the visible slice
// starting at the scroll position is copied into the frame. Content past
// MaxExtent is cut off.
type ScrollBox struct {
	orientation runtime.Orientation
	position    int
	width       runtime.Sizing
	height      runtime.Sizing
	maxExtent   int
	contents    *Auto
}

// VerticalScroll creates a box scrolled position rows down.
func VerticalScroll(position int) *ScrollBox {
	return &ScrollBox{
		orientation: runtime.Vertical,
		position:    max(0, position),
		width:       runtime.Fill(),
		height:      runtime.Fill(),
		maxExtent:   DefaultMaxExtent,
		contents:    NewAuto(runtime.Vertical).WithWidth(runtime.HugSize()),
	}
}

// HorizontalScroll creates a box scrolled position columns right.
func HorizontalScroll(position int) *ScrollBox {
	return &ScrollBox{
		orientation: runtime.Horizontal,
		position:    max(0, position),
		width:       runtime.Fill(),
		height:      runtime.Fill(),
		maxExtent:   DefaultMaxExtent,
		contents:    NewAuto(runtime.Horizontal).WithHeight(runtime.HugSize()),
	}
}

// Add appends children to the scrolled content.
func (s *ScrollBox) Add(children ...runtime.View) *ScrollBox {
	s.contents.Add(children...)
	return s
}

// WithArrangement sets the arrangement of the scrolled content.
func (s *ScrollBox) WithArrangement(arr runtime.Arrangement) *ScrollBox {
	s.contents.WithArrangement(arr)
	return s
}

// WithWidth sets the box width.
func (s *ScrollBox) WithWidth(w runtime.Sizing) *ScrollBox {
	s.width = w
	return s
}

// WithHeight sets the box height.
func (s *ScrollBox) WithHeight(h runtime.Sizing) *ScrollBox {
	s.height = h
	return s
}

// WithMaxExtent sets the virtual canvas length along the scroll axis.
func (s *ScrollBox) WithMaxExtent(n int) *ScrollBox {
	if n > 0 {
		s.maxExtent = n
	}
	return s
}

// Position returns the scroll offset in cells.
func (s *ScrollBox) Position() int {
	return s.position
}

// ScrollTo sets the scroll offset, clamped to [0, MaxExtent].
func (s *ScrollBox) ScrollTo(position int) {
	s.position = max(0, min(position, s.maxExtent))
}

// ScrollBy moves the scroll offset by delta cells.
func (s *ScrollBox) ScrollBy(delta int) {
	s.ScrollTo(s.position + delta)
}

// Sizing returns the box's configured width and height constraints.
func (s *ScrollBox) Sizing(bounds runtime.Dimensions) runtime.Constraints {
	return runtime.NewConstraints(s.width.ConstrainBy(bounds.Width), s.height.ConstrainBy(bounds.Height))
}

// Render paints the child on a virtual canvas and copies the visible window.
func (s *ScrollBox) Render(within runtime.Rect, buf *runtime.Buffer) {
	if within.Empty() {
		return
	}

	var canvas runtime.Dimensions
	var from, to runtime.Point
	if s.orientation == runtime.Vertical {
		canvas = runtime.Dims(within.Width, s.maxExtent)
		from = runtime.Pt(0, s.position)
		to = runtime.Pt(within.Width, s.position+within.Height)
	} else {
		canvas = runtime.Dims(s.maxExtent, within.Height)
		from = runtime.Pt(s.position, 0)
		to = runtime.Pt(s.position+within.Width, within.Height)
	}

	virtual := runtime.NewBuffer(canvas)
	s.contents.Render(runtime.RectFromSize(canvas), virtual)
	buf.Merge(within.Origin(), virtual.Crop(from, to))
}
