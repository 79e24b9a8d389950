// Package solver resolves a row of sized children into rectangles.
//
// Solve only ever lays out along the horizontal axis. Vertical layouts are
// rotated into a horizontal problem and the results rotated back, so both
// orientations share one code path.
package solver

import "github.com/odvcencio/buckle/pkg/ui/runtime"

// Solve returns one rect per item, in item order.
//
// Fixed main-axis requests are granted in order and truncated to whatever
// space remains. The leftover is split evenly between Fill items with floor
// division; any remainder stays unused. When the items do not consume the
// whole main axis, the group is shifted according to the main-axis
// alignment. Each item is aligned independently on the cross axis.
func Solve(items []runtime.Constraints, o runtime.Orientation, a runtime.Arrangement, bounds runtime.Rect) []runtime.Rect {
	if len(items) == 0 {
		return []runtime.Rect{}
	}

	work := make([]runtime.Constraints, len(items))
	copy(work, items)

	rotated := o == runtime.Vertical
	if rotated {
		bounds = bounds.Rotate()
		a = a.Rotate()
		for i := range work {
			work[i] = work[i].Rotate()
		}
	}

	work, gaps := introduce(work, a)
	results := gaps.cleanup(solveRow(work, a, bounds))

	if rotated {
		for i := range results {
			results[i] = results[i].Rotate()
		}
	}
	return results
}

// solveRow lays items out left to right within bounds.
func solveRow(items []runtime.Constraints, a runtime.Arrangement, bounds runtime.Rect) []runtime.Rect {
	widths := make([]int, len(items))
	remaining := bounds.Width
	fills := 0

	for i, item := range items {
		if item.Width.IsFill() {
			fills++
			continue
		}
		widths[i] = item.Width.Resolve(remaining)
		remaining -= widths[i]
	}

	fillWidth := 0
	if fills > 0 {
		fillWidth = remaining / fills
	}

	results := make([]runtime.Rect, len(items))
	x := bounds.X
	for i, item := range items {
		if item.Width.IsFill() {
			widths[i] = fillWidth
		}
		height := item.Height.Resolve(bounds.Height)
		results[i] = runtime.Rect{
			X:      x,
			Y:      bounds.Y + a.Vertical.Offset(bounds.Height, height),
			Width:  widths[i],
			Height: height,
		}
		x += widths[i]
	}

	if used := x - bounds.X; used < bounds.Width {
		shift := a.Horizontal.Offset(bounds.Width, used)
		for i := range results {
			results[i].X += shift
		}
	}
	return results
}
