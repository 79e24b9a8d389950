package runtime

// Point is a cell position.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Rotate swaps the axes.
func (p Point) Rotate() Point {
	return Point{X: p.Y, Y: p.X}
}

// Dimensions is a size in cells. Neither field is ever negative.
type Dimensions struct {
	Width, Height int
}

// Dims creates Dimensions, clamping negative values to zero.
func Dims(w, h int) Dimensions {
	return Dimensions{Width: max(0, w), Height: max(0, h)}
}

// Rotate swaps width and height.
func (d Dimensions) Rotate() Dimensions {
	return Dimensions{Width: d.Height, Height: d.Width}
}

// Empty returns true if either dimension is zero.
func (d Dimensions) Empty() bool {
	return d.Width <= 0 || d.Height <= 0
}

// Rect is a positioned rectangle.
type Rect struct {
	X, Y, Width, Height int
}

// ZeroRect is the zero value rect.
var ZeroRect = Rect{}

// NewRect creates a rect from position and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, Width: max(0, w), Height: max(0, h)}
}

// RectAt creates a rect from an origin and dimensions.
func RectAt(origin Point, d Dimensions) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: d.Width, Height: d.Height}
}

// RectFromSize creates a rect at origin with the given size.
func RectFromSize(d Dimensions) Rect {
	return Rect{Width: d.Width, Height: d.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rect's dimensions.
func (r Rect) Size() Dimensions {
	return Dimensions{Width: r.Width, Height: r.Height}
}

// Right returns the first column past the rect.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the rect.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty returns true if the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Rotate transposes the rect: origin and dimensions swap axes.
func (r Rect) Rotate() Rect {
	return Rect{X: r.Y, Y: r.X, Width: r.Height, Height: r.Width}
}

// Contains returns true if the point is inside the rect.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Intersection returns the overlapping area of two rects.
func (r Rect) Intersection(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	x2 := min(r.X+r.Width, other.X+other.Width)
	y2 := min(r.Y+r.Height, other.Y+other.Height)
	if x2 <= x || y2 <= y {
		return ZeroRect
	}
	return Rect{X: x, Y: y, Width: x2 - x, Height: y2 - y}
}

// Inset returns a rect shrunk by the given amounts.
func (r Rect) Inset(top, right, bottom, left int) Rect {
	return Rect{
		X:      r.X + left,
		Y:      r.Y + top,
		Width:  max(0, r.Width-left-right),
		Height: max(0, r.Height-top-bottom),
	}
}
