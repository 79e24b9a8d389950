package widgets

import (
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
)

// HRule is a horizontal line spanning the width it is given.
type HRule struct {
	Style style.Style
}

// NewHRule creates a horizontal rule.
func NewHRule(s style.Style) *HRule {
	return &HRule{Style: s}
}

// Sizing fills the width and asks for one row.
func (r *HRule) Sizing(runtime.Dimensions) runtime.Constraints {
	return runtime.NewConstraints(runtime.Fill(), runtime.Fixed(1))
}

// Render draws the rule along the top row of within.
func (r *HRule) Render(within runtime.Rect, buf *runtime.Buffer) {
	if within.Empty() {
		return
	}
	buf.DrawHRule(within.Origin(), within.Width, r.Style)
}

// VRule is a vertical line spanning the height it is given.
type VRule struct {
	Style style.Style
}

// NewVRule creates a vertical rule.
func NewVRule(s style.Style) *VRule {
	return &VRule{Style: s}
}

// Sizing asks for one column and fills the height.
func (r *VRule) Sizing(runtime.Dimensions) runtime.Constraints {
	return runtime.NewConstraints(runtime.Fixed(1), runtime.Fill())
}

// Render draws the rule down the left column of within.
func (r *VRule) Render(within runtime.Rect, buf *runtime.Buffer) {
	if within.Empty() {
		return
	}
	buf.DrawVRule(within.Origin(), within.Height, r.Style)
}

// Spacer takes all the space it is offered and paints nothing.
type Spacer struct{}

// Sizing fills both axes.
func (Spacer) Sizing(runtime.Dimensions) runtime.Constraints {
	return runtime.NewConstraints(runtime.Fill(), runtime.Fill())
}

// Render does nothing.
func (Spacer) Render(runtime.Rect, *runtime.Buffer) {}
