package widgets

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
)

func render(v runtime.View, w, h int) *runtime.Buffer {
	buf := runtime.NewBuffer(runtime.Dims(w, h))
	runtime.RenderRoot(v, buf)
	return buf
}

func TestLabel_Sizing(t *testing.T) {
	bounds := runtime.Dims(20, 5)
	tests := []struct {
		name  string
		label *Label
		want  runtime.Constraints
	}{
		{"hug", NewLabel("hello"), runtime.NewConstraints(runtime.Fixed(5), runtime.Fixed(1))},
		{"hug clamped", NewLabel(strings.Repeat("x", 30)), runtime.NewConstraints(runtime.Fixed(20), runtime.Fixed(1))},
		{"fill width", NewLabel("hi").WithWidth(runtime.FillSize()), runtime.NewConstraints(runtime.Fill(), runtime.Fixed(1))},
		{"fixed height", NewLabel("hi").WithHeight(runtime.FixedSize(3)), runtime.NewConstraints(runtime.Fixed(2), runtime.Fixed(3))},
		{"wide glyphs", NewLabel("日本"), runtime.NewConstraints(runtime.Fixed(4), runtime.Fixed(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.label.Sizing(bounds))
		})
	}
}

func TestLabel_RenderClips(t *testing.T) {
	buf := runtime.NewBuffer(runtime.Dims(8, 2))
	NewLabel("clipped text").Render(runtime.NewRect(1, 1, 4, 1), buf)
	assert.Equal(t, "        \n clip   ", buf.String())
}

func TestLabel_Style(t *testing.T) {
	buf := render(NewLabel("ok").WithStyle(style.New().Foreground(style.ColorGreen)), 4, 1)
	assert.Equal(t, style.ColorGreen, buf.Cell(1, 0).Style.FG)
	assert.False(t, buf.Cell(2, 0).Style.FG.IsSet())
}

func TestMultilineText_SizingUsesWidestLine(t *testing.T) {
	m := NewMultilineText("zz\nlonger\nab")
	assert.Equal(t, runtime.NewConstraints(runtime.Fixed(6), runtime.Fixed(3)), m.Sizing(runtime.Dims(80, 24)))
	assert.Equal(t, runtime.NewConstraints(runtime.Fixed(4), runtime.Fixed(2)), m.Sizing(runtime.Dims(4, 2)))
}

func TestMultilineText_Render(t *testing.T) {
	buf := render(NewMultilineText("one\ntwo\nthree"), 5, 2)
	assert.Equal(t, "one  \ntwo  ", buf.String())
}

func TestRules(t *testing.T) {
	buf := runtime.NewBuffer(runtime.Dims(4, 3))
	NewHRule(style.New()).Render(runtime.NewRect(0, 0, 4, 1), buf)
	NewVRule(style.New()).Render(runtime.NewRect(1, 1, 1, 2), buf)
	assert.Equal(t, "────\n │  \n │  ", buf.String())

	assert.Equal(t, runtime.NewConstraints(runtime.Fill(), runtime.Fixed(1)), NewHRule(style.New()).Sizing(runtime.Dims(9, 9)))
	assert.Equal(t, runtime.NewConstraints(runtime.Fixed(1), runtime.Fill()), NewVRule(style.New()).Sizing(runtime.Dims(9, 9)))
}

func TestSpacer(t *testing.T) {
	assert.Equal(t, runtime.NewConstraints(runtime.Fill(), runtime.Fill()), Spacer{}.Sizing(runtime.Dims(3, 3)))
	buf := render(Spacer{}, 3, 1)
	assert.Equal(t, "   ", buf.String())
}

func TestPadding(t *testing.T) {
	p := PadAll(1, NewLabel("abc"))

	assert.Equal(t, runtime.NewConstraints(runtime.Fixed(5), runtime.Fixed(3)), p.Sizing(runtime.Dims(10, 10)))

	buf := render(p, 6, 3)
	assert.Equal(t, "      \n abc  \n      ", buf.String())
}

func TestPadding_FillPassesThrough(t *testing.T) {
	p := PadHorizontal(2, NewHRule(style.New()))
	assert.Equal(t, runtime.NewConstraints(runtime.Fill(), runtime.Fixed(1)), p.Sizing(runtime.Dims(10, 10)))

	buf := render(p, 6, 1)
	assert.Equal(t, "  ──  ", buf.String())
}

func TestPadding_TooSmallRendersNothing(t *testing.T) {
	buf := runtime.NewBuffer(runtime.Dims(2, 2))
	PadVertical(1, NewLabel("x")).Render(runtime.NewRect(0, 0, 2, 2), buf)
	assert.Equal(t, "  \n  ", buf.String())
}

func TestBackground_SurvivesChildText(t *testing.T) {
	v := Background(style.ColorBlue, NewLabel("hi").WithStyle(style.New().Foreground(style.ColorWhite)).WithWidth(runtime.FillSize()))
	buf := render(v, 4, 1)

	for x := 0; x < 4; x++ {
		assert.Equal(t, style.ColorBlue, buf.Cell(x, 0).Style.BG, "x=%d", x)
	}
	assert.Equal(t, style.ColorWhite, buf.Cell(0, 0).Style.FG)
	assert.False(t, buf.Cell(3, 0).Style.FG.IsSet())
}

func TestForeground_ChildOverrides(t *testing.T) {
	v := Foreground(style.ColorRed, NewMultilineText("ab\ncd"))
	buf := render(v, 2, 2)
	assert.Equal(t, style.ColorRed, buf.Cell(1, 1).Style.FG)

	v = Foreground(style.ColorRed, NewLabel("ab").WithStyle(style.New().Foreground(style.ColorCyan)))
	buf = render(v, 2, 1)
	assert.Equal(t, style.ColorCyan, buf.Cell(0, 0).Style.FG)
}
