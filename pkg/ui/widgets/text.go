// Package widgets provides the leaf views: text, rules, spacers, and the
// padding and style wrappers that decorate another view.
package widgets

import (
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
)

// Label is a single line of text. Text past the granted width is clipped.
type Label struct {
	text   string
	style  style.Style
	width  runtime.ContainerSizing
	height runtime.ContainerSizing
}

// NewLabel creates a label that hugs its text.
func NewLabel(text string) *Label {
	return &Label{
		text:   text,
		width:  runtime.HugSize(),
		height: runtime.HugSize(),
	}
}

// SetText updates the displayed text.
func (l *Label) SetText(text string) {
	l.text = text
}

// Text returns the current text.
func (l *Label) Text() string {
	return l.text
}

// WithStyle sets the style and returns the label for chaining.
func (l *Label) WithStyle(s style.Style) *Label {
	l.style = s
	return l
}

// WithWidth overrides the label's width sizing.
func (l *Label) WithWidth(w runtime.ContainerSizing) *Label {
	l.width = w
	return l
}

// WithHeight overrides the label's height sizing.
func (l *Label) WithHeight(h runtime.ContainerSizing) *Label {
	l.height = h
	return l
}

// Sizing hugs the text width, limited to the bounds, and one row.
func (l *Label) Sizing(bounds runtime.Dimensions) runtime.Constraints {
	return runtime.NewConstraints(
		l.width.Simplify(min(runtime.TextWidth(l.text), bounds.Width)),
		l.height.Simplify(min(1, bounds.Height)),
	)
}

// Render draws the text at the origin of within.
func (l *Label) Render(within runtime.Rect, buf *runtime.Buffer) {
	buf.DrawText(within, l.text, l.style)
}

// MultilineText renders text split on newlines. Lines are clipped, never
// wrapped.
type MultilineText struct {
	text   string
	style  style.Style
	width  runtime.ContainerSizing
	height runtime.ContainerSizing
}

// NewMultilineText creates a text block that hugs its content.
func NewMultilineText(text string) *MultilineText {
	return &MultilineText{
		text:   text,
		width:  runtime.HugSize(),
		height: runtime.HugSize(),
	}
}

// SetText updates the displayed text.
func (m *MultilineText) SetText(text string) {
	m.text = text
}

// WithStyle sets the style and returns the text for chaining.
func (m *MultilineText) WithStyle(s style.Style) *MultilineText {
	m.style = s
	return m
}

// WithWidth overrides the width sizing.
func (m *MultilineText) WithWidth(w runtime.ContainerSizing) *MultilineText {
	m.width = w
	return m
}

// WithHeight overrides the height sizing.
func (m *MultilineText) WithHeight(h runtime.ContainerSizing) *MultilineText {
	m.height = h
	return m
}

// Sizing hugs the widest line and the line count, limited to the bounds.
func (m *MultilineText) Sizing(bounds runtime.Dimensions) runtime.Constraints {
	extent := runtime.TextExtent(m.text)
	return runtime.NewConstraints(
		m.width.Simplify(min(extent.Width, bounds.Width)),
		m.height.Simplify(min(extent.Height, bounds.Height)),
	)
}

// Render draws each line from the origin of within.
func (m *MultilineText) Render(within runtime.Rect, buf *runtime.Buffer) {
	buf.DrawMultilineText(within, m.text, m.style)
}
