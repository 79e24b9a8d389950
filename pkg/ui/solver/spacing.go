package solver

import (
	"slices"

	"github.com/odvcencio/buckle/pkg/ui/runtime"
)

// spacers records where synthetic gap items were inserted so they can be
// stripped from the results again.
type spacers struct {
	indexes []int
}

// introduce inserts a gap item between every adjacent pair of items when
// the arrangement asks for spacing. Items must already be normalized so the
// main axis is the width.
func introduce(items []runtime.Constraints, a runtime.Arrangement) ([]runtime.Constraints, spacers) {
	var gap runtime.Sizing
	switch a.Spacing {
	case runtime.SpacingFixed:
		gap = runtime.Fixed(a.Gap)
	case runtime.SpacingSpread:
		gap = runtime.Fill()
	default:
		return items, spacers{}
	}
	if len(items) < 2 {
		return items, spacers{}
	}

	spacer := runtime.NewConstraints(gap, runtime.Fill())
	out := make([]runtime.Constraints, 0, 2*len(items)-1)
	indexes := make([]int, 0, len(items)-1)
	for i, item := range items {
		if i > 0 {
			indexes = append(indexes, len(out))
			out = append(out, spacer)
		}
		out = append(out, item)
	}
	return out, spacers{indexes: indexes}
}

// cleanup removes the spacer results, highest index first so earlier
// indexes stay valid.
func (s spacers) cleanup(results []runtime.Rect) []runtime.Rect {
	for i := len(s.indexes) - 1; i >= 0; i-- {
		results = slices.Delete(results, s.indexes[i], s.indexes[i]+1)
	}
	return results
}
