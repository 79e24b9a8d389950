package layout

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
	"github.com/odvcencio/buckle/pkg/ui/widgets"
)

func numberedRows(n int) []runtime.View {
	rows := make([]runtime.View, n)
	for i := range rows {
		rows[i] = widgets.NewLabel(fmt.Sprintf("row %02d", i))
	}
	return rows
}

func TestScrollBox_RoundTrip(t *testing.T) {
	const total, visible, width = 20, 5, 10

	full := runtime.NewBuffer(runtime.Dims(width, total))
	VBox(numberedRows(total)...).Render(full.Bounds(), full)

	for _, offset := range []int{0, 1, 7, 15} {
		t.Run(fmt.Sprintf("offset %d", offset), func(t *testing.T) {
			box := VerticalScroll(offset).Add(numberedRows(total)...)
			buf := renderRoot(box, width, visible)

			want := full.Crop(runtime.Pt(0, offset), runtime.Pt(width, offset+visible))
			assert.Equal(t, want.String(), buf.String())
			assert.Equal(t, fmt.Sprintf("row %02d    ", offset), buf.Row(0))
		})
	}
}

func TestScrollBox_PastTheEnd(t *testing.T) {
	box := VerticalScroll(18).Add(numberedRows(20)...)
	buf := renderRoot(box, 6, 4)

	assert.Equal(t, frame("row 18", "row 19", "      ", "      "), buf.String())
}

func TestScrollBox_MaxExtentTruncates(t *testing.T) {
	box := VerticalScroll(8).WithMaxExtent(10).Add(numberedRows(20)...)
	buf := renderRoot(box, 6, 4)

	assert.Equal(t, frame("row 08", "row 09", "      ", "      "), buf.String())
}

func TestScrollBox_Horizontal(t *testing.T) {
	box := HorizontalScroll(2).Add(widgets.NewLabel("abc"), widgets.NewLabel("def"))
	buf := renderRoot(box, 3, 1)

	assert.Equal(t, "cde", buf.String())
}

func TestScrollBox_MergesAtOrigin(t *testing.T) {
	buf := runtime.NewBuffer(runtime.Dims(8, 4))
	buf.Fill(buf.Bounds(), runtime.NewFillStyle('.', style.New().Background(style.ColorBlue)))

	box := VerticalScroll(1).Add(numberedRows(5)...)
	box.Render(runtime.NewRect(1, 1, 6, 2), buf)

	assert.Equal(t, frame(
		"........",
		".row 01.",
		".row 02.",
		"........",
	), buf.String())
	assert.Equal(t, style.ColorBlue, buf.Cell(2, 1).Style.BG)
}

func TestScrollBox_ScrollBy(t *testing.T) {
	box := VerticalScroll(0).WithMaxExtent(50)
	box.ScrollBy(-3)
	assert.Equal(t, 0, box.Position())
	box.ScrollBy(10)
	assert.Equal(t, 10, box.Position())
	box.ScrollTo(500)
	assert.Equal(t, 50, box.Position())
}
