// Package theme provides named styles for buckle's demo views, loadable
// from YAML so palettes can change without a rebuild.
package theme

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/buckle/pkg/errors"
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
)

// Theme is the palette views draw with.
type Theme struct {
	Name string

	// Surfaces
	Background style.Style
	Surface    style.Style

	// Text hierarchy
	Text      style.Style
	TextMuted style.Style
	Heading   style.Style

	// Accents
	Accent  style.Style
	Warning style.Style

	// Chrome
	Border    style.Style
	Rule      style.Style
	Selection style.Style

	// Corners of borders drawn with this theme.
	Corners runtime.Corners
}

// DefaultTheme returns the built-in dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Name:       "dusk",
		Background: style.New().Background(style.RGB(12, 12, 16)),
		Surface:    style.New().Background(style.RGB(22, 22, 28)),
		Text:       style.New().Foreground(style.RGB(240, 238, 232)),
		TextMuted:  style.New().Foreground(style.RGB(100, 98, 92)),
		Heading:    style.New().Foreground(style.RGB(255, 183, 77)).Bold(),
		Accent:     style.New().Foreground(style.RGB(79, 195, 247)),
		Warning:    style.New().Foreground(style.RGB(255, 138, 101)),
		Border:     style.New().Foreground(style.RGB(70, 70, 86)),
		Rule:       style.New().Foreground(style.RGB(50, 50, 60)),
		Selection:  style.New().Background(style.RGB(60, 60, 80)),
		Corners:    runtime.CornersSquare,
	}
}

// Line returns the border line style of the theme.
func (t *Theme) Line() runtime.LineStyle {
	return runtime.LineStyle{Corners: t.Corners, Style: t.Border}
}

// Fill returns a background fill for panels.
func (t *Theme) Fill() runtime.FillStyle {
	return runtime.NewFillStyle(' ', t.Surface)
}

// slots maps YAML keys to the theme's style fields.
func (t *Theme) slots() map[string]*style.Style {
	return map[string]*style.Style{
		"background": &t.Background,
		"surface":    &t.Surface,
		"text":       &t.Text,
		"text_muted": &t.TextMuted,
		"heading":    &t.Heading,
		"accent":     &t.Accent,
		"warning":    &t.Warning,
		"border":     &t.Border,
		"rule":       &t.Rule,
		"selection":  &t.Selection,
	}
}

type fileStyle struct {
	FG    string   `yaml:"fg"`
	BG    string   `yaml:"bg"`
	Attrs []string `yaml:"attrs"`
}

type file struct {
	Name    string               `yaml:"name"`
	Corners string               `yaml:"corners"`
	Styles  map[string]fileStyle `yaml:"styles"`
}

// Parse reads a theme document. Styles it does not name keep their
// defaults; a named style replaces the default entirely.
//
//	name: paper
//	corners: rounded
//	styles:
//	  text: {fg: "#202020"}
//	  border: {fg: "245", attrs: [dim]}
func Parse(data []byte) (*Theme, error) {
	t := DefaultTheme()
	if len(bytes.TrimSpace(data)) == 0 {
		return t, nil
	}

	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, errors.ErrCodeThemeParse, "decoding theme")
	}

	if f.Name != "" {
		t.Name = f.Name
	}
	switch f.Corners {
	case "", "square":
	case "rounded":
		t.Corners = runtime.CornersRounded
	default:
		return nil, errors.New(errors.ErrCodeThemeParse, fmt.Sprintf("unknown corners %q", f.Corners))
	}

	slots := t.slots()
	keys := make([]string, 0, len(f.Styles))
	for k := range f.Styles {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		slot, ok := slots[key]
		if !ok {
			return nil, errors.New(errors.ErrCodeThemeParse, fmt.Sprintf("unknown style %q", key)).
				WithContext("style", key)
		}
		s, err := f.Styles[key].resolve()
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeThemeParse, "invalid style").
				WithContext("style", key)
		}
		*slot = s
	}
	return t, nil
}

func (fs fileStyle) resolve() (style.Style, error) {
	fg, err := style.ParseColor(fs.FG)
	if err != nil {
		return style.Style{}, err
	}
	bg, err := style.ParseColor(fs.BG)
	if err != nil {
		return style.Style{}, err
	}
	attrs, err := style.ParseAttrs(fs.Attrs)
	if err != nil {
		return style.Style{}, err
	}
	return style.Style{FG: fg, BG: bg, Attrs: attrs}, nil
}

// Load reads a theme file. An empty path yields the default theme.
func Load(path string) (*Theme, error) {
	if path == "" {
		return DefaultTheme(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeThemeParse, "reading theme").
			WithContext("path", path)
	}
	t, err := Parse(data)
	if err != nil {
		var coded *errors.Error
		if stderrors.As(err, &coded) {
			return nil, coded.WithContext("path", path)
		}
		return nil, err
	}
	return t, nil
}
