package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/buckle/pkg/errors"
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
)

func TestDefaultTheme_EverySlotIsSet(t *testing.T) {
	th := DefaultTheme()
	for name, s := range th.slots() {
		assert.False(t, s.IsZero(), "%s style not set", name)
	}
	assert.Equal(t, runtime.CornersSquare, th.Line().Corners)
	assert.Equal(t, th.Border, th.Line().Style)
	assert.Equal(t, th.Surface, th.Fill().Style)
}

func TestParse_OverridesNamedStyles(t *testing.T) {
	th, err := Parse([]byte(`
name: paper
corners: rounded
styles:
  text: {fg: "#202020"}
  border: {fg: "245", attrs: [dim]}
  selection: {bg: blue, attrs: [reverse, bold]}
`))
	require.NoError(t, err)

	assert.Equal(t, "paper", th.Name)
	assert.Equal(t, runtime.CornersRounded, th.Corners)
	assert.Equal(t, style.New().Foreground(style.RGB(0x20, 0x20, 0x20)), th.Text)
	assert.Equal(t, style.New().Foreground(style.Color256(245)).Dim(), th.Border)
	assert.Equal(t, style.New().Background(style.ColorBlue).Reverse().Bold(), th.Selection)
	assert.Equal(t, DefaultTheme().Accent, th.Accent, "unnamed styles keep defaults")
}

func TestParse_Errors(t *testing.T) {
	tests := map[string]string{
		"unknown style":     "styles:\n  sparkle: {fg: red}\n",
		"bad color":         "styles:\n  text: {fg: \"#12\"}\n",
		"bad attr":          "styles:\n  text: {attrs: [wobbly]}\n",
		"bad corners":       "corners: bevelled\n",
		"unknown top level": "colour: red\n",
		"malformed":         "styles: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.ErrCodeThemeParse), "got %v", err)
		})
	}
}

func TestLoad(t *testing.T) {
	th, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme(), th)

	path := filepath.Join(t.TempDir(), "theme.yaml")
	require.NoError(t, os.WriteFile(path, []byte("styles:\n  accent: {fg: magenta}\n"), 0o644))
	th, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, style.New().Foreground(style.ColorMagenta), th.Accent)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeThemeParse, errors.GetCode(err))
}
