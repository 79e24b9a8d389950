package runtime

import "fmt"

// SizingMode distinguishes the resolved sizing variants.
type SizingMode uint8

const (
	// SizingFixed requests an exact number of cells.
	SizingFixed SizingMode = iota
	// SizingFill consumes all remaining space on an axis.
	SizingFill
)

// Sizing is a resolved size request on one axis. It is the only
// vocabulary the solver understands.
type Sizing struct {
	Mode  SizingMode
	Cells int
}

// Fill returns a Sizing that consumes all remaining space.
func Fill() Sizing {
	return Sizing{Mode: SizingFill}
}

// Fixed returns a Sizing of exactly n cells. Negative n is treated as 0.
func Fixed(n int) Sizing {
	return Sizing{Mode: SizingFixed, Cells: max(0, n)}
}

// IsFill reports whether s is Fill.
func (s Sizing) IsFill() bool {
	return s.Mode == SizingFill
}

// Resolve returns the concrete extent for s within extent.
// Fill yields extent; Fixed is clamped to [0, extent].
func (s Sizing) Resolve(extent int) int {
	if s.IsFill() {
		return max(0, extent)
	}
	return clamp(s.Cells, 0, max(0, extent))
}

// ConstrainBy clamps a Fixed request to extent. Fill is unchanged.
func (s Sizing) ConstrainBy(extent int) Sizing {
	if s.IsFill() {
		return s
	}
	return Fixed(s.Resolve(extent))
}

func (s Sizing) String() string {
	if s.IsFill() {
		return "Fill"
	}
	return fmt.Sprintf("Fixed(%d)", s.Cells)
}

// ContainerSizingMode distinguishes the author-facing sizing variants.
type ContainerSizingMode uint8

const (
	// ContainerHug shrinks to the intrinsic size of the content.
	ContainerHug ContainerSizingMode = iota
	// ContainerFill consumes all remaining space.
	ContainerFill
	// ContainerFixed requests an exact number of cells.
	ContainerFixed
)

// ContainerSizing is what authors attach to views. Hug never reaches the
// solver: Simplify turns it into Fixed(intrinsic) first.
type ContainerSizing struct {
	Mode  ContainerSizingMode
	Cells int
}

// HugSize sizes a view to its intrinsic content.
func HugSize() ContainerSizing {
	return ContainerSizing{Mode: ContainerHug}
}

// FillSize makes a view consume all remaining space.
func FillSize() ContainerSizing {
	return ContainerSizing{Mode: ContainerFill}
}

// FixedSize gives a view exactly n cells.
func FixedSize(n int) ContainerSizing {
	return ContainerSizing{Mode: ContainerFixed, Cells: max(0, n)}
}

// Simplify resolves c against a measured intrinsic size.
func (c ContainerSizing) Simplify(intrinsic int) Sizing {
	switch c.Mode {
	case ContainerFill:
		return Fill()
	case ContainerFixed:
		return Fixed(c.Cells)
	default:
		return Fixed(intrinsic)
	}
}

func (c ContainerSizing) String() string {
	switch c.Mode {
	case ContainerFill:
		return "Fill"
	case ContainerFixed:
		return fmt.Sprintf("Fixed(%d)", c.Cells)
	default:
		return "Hug"
	}
}

// Constraints is the pair of resolved sizings a view reports.
type Constraints struct {
	Width  Sizing
	Height Sizing
}

// NewConstraints creates Constraints from a width and height sizing.
func NewConstraints(width, height Sizing) Constraints {
	return Constraints{Width: width, Height: height}
}

// Rotate swaps width and height.
func (c Constraints) Rotate() Constraints {
	return Constraints{Width: c.Height, Height: c.Width}
}

// Resolve returns the dimensions c occupies within bounds.
func (c Constraints) Resolve(bounds Dimensions) Dimensions {
	return Dimensions{
		Width:  c.Width.Resolve(bounds.Width),
		Height: c.Height.Resolve(bounds.Height),
	}
}

// Orientation is a container's main axis.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Alignment positions content within leftover space on one axis.
type Alignment uint8

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// Offset returns how far content of size used is shifted within extent.
func (a Alignment) Offset(extent, used int) int {
	slack := extent - used
	if slack <= 0 {
		return 0
	}
	switch a {
	case AlignCenter:
		return slack / 2
	case AlignEnd:
		return slack
	default:
		return 0
	}
}

// Spacing is the gap policy of an Arrangement.
type Spacing uint8

const (
	// SpacingPacked places children with no gaps.
	SpacingPacked Spacing = iota
	// SpacingFixed inserts a fixed gap between adjacent children.
	SpacingFixed
	// SpacingSpread inserts even, space-filling gaps.
	SpacingSpread
)

// Arrangement is a container's layout policy. Alignments are stored per
// screen axis; the one matching the container's orientation acts on the
// main axis, the other on the cross axis.
type Arrangement struct {
	Spacing    Spacing
	Gap        int
	Horizontal Alignment
	Vertical   Alignment
}

// Packed places children end to end.
func Packed(horizontal, vertical Alignment) Arrangement {
	return Arrangement{Spacing: SpacingPacked, Horizontal: horizontal, Vertical: vertical}
}

// Spaced separates children with gap cells.
func Spaced(horizontal, vertical Alignment, gap int) Arrangement {
	return Arrangement{Spacing: SpacingFixed, Gap: max(0, gap), Horizontal: horizontal, Vertical: vertical}
}

// Spread distributes leftover space evenly between children.
func Spread(horizontal, vertical Alignment) Arrangement {
	return Arrangement{Spacing: SpacingSpread, Horizontal: horizontal, Vertical: vertical}
}

// Rotate swaps the per-axis alignments.
func (a Arrangement) Rotate() Arrangement {
	a.Horizontal, a.Vertical = a.Vertical, a.Horizontal
	return a
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
