package runtime

// DiffKind classifies the outcome of comparing two buffers.
type DiffKind uint8

const (
	// DiffNoChange means every cell matches.
	DiffNoChange DiffKind = iota
	// DiffInvalid means the buffers have different dimensions. Nothing
	// can be applied incrementally; the caller must repaint.
	DiffInvalid
	// DiffChanged means Changes lists every differing cell.
	DiffChanged
)

func (k DiffKind) String() string {
	switch k {
	case DiffNoChange:
		return "no_change"
	case DiffInvalid:
		return "invalid"
	default:
		return "changed"
	}
}

// CellChange is a cell of the new buffer that differs from the old one.
type CellChange struct {
	Point Point
	Cell  Cell
}

// DiffResult is the outcome of Buffer.Diff.
type DiffResult struct {
	Kind    DiffKind
	Changes []CellChange
}

// Diff compares b (the displayed frame) with next and reports the cells of
// next that differ, in row-major point order.
func (b *Buffer) Diff(next *Buffer) DiffResult {
	if b.width != next.width || b.height != next.height {
		return DiffResult{Kind: DiffInvalid}
	}

	var changes []CellChange
	for i, c := range next.cells {
		if b.cells[i] == c {
			continue
		}
		changes = append(changes, CellChange{
			Point: Point{X: i % b.width, Y: i / b.width},
			Cell:  c,
		})
	}
	if len(changes) == 0 {
		return DiffResult{Kind: DiffNoChange}
	}
	return DiffResult{Kind: DiffChanged, Changes: changes}
}
