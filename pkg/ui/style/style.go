// Package style defines the colors and text attributes painted into cells.
//
// The zero Style is "unstyled": it carries no colors and no attributes.
// Styles are combined with Merge, which is how later draws tint a cell
// without discarding what an earlier draw painted underneath.
package style

// ColorMode defines how a color is represented.
type ColorMode uint8

const (
	// ColorModeNone means the color is not specified.
	ColorModeNone ColorMode = iota
	// ColorModeDefault explicitly selects the terminal default color.
	ColorModeDefault
	// ColorMode16 uses basic 16 ANSI colors (0-15).
	ColorMode16
	// ColorMode256 uses extended 256 color palette.
	ColorMode256
	// ColorModeRGB uses 24-bit true color.
	ColorModeRGB
)

// Color represents a terminal color.
type Color struct {
	Mode  ColorMode
	Value uint32 // For 16/256: color index, For RGB: 0xRRGGBB
}

// Pre-defined colors for convenience.
var (
	ColorNone    = Color{Mode: ColorModeNone}
	ColorDefault = Color{Mode: ColorModeDefault}

	ColorBlack   = Color{Mode: ColorMode16, Value: 0}
	ColorRed     = Color{Mode: ColorMode16, Value: 1}
	ColorGreen   = Color{Mode: ColorMode16, Value: 2}
	ColorYellow  = Color{Mode: ColorMode16, Value: 3}
	ColorBlue    = Color{Mode: ColorMode16, Value: 4}
	ColorMagenta = Color{Mode: ColorMode16, Value: 5}
	ColorCyan    = Color{Mode: ColorMode16, Value: 6}
	ColorWhite   = Color{Mode: ColorMode16, Value: 7}

	ColorBrightBlack   = Color{Mode: ColorMode16, Value: 8}
	ColorBrightRed     = Color{Mode: ColorMode16, Value: 9}
	ColorBrightGreen   = Color{Mode: ColorMode16, Value: 10}
	ColorBrightYellow  = Color{Mode: ColorMode16, Value: 11}
	ColorBrightBlue    = Color{Mode: ColorMode16, Value: 12}
	ColorBrightMagenta = Color{Mode: ColorMode16, Value: 13}
	ColorBrightCyan    = Color{Mode: ColorMode16, Value: 14}
	ColorBrightWhite   = Color{Mode: ColorMode16, Value: 15}
)

// Color256 creates a 256-palette color (0-255).
func Color256(index uint8) Color {
	return Color{Mode: ColorMode256, Value: uint32(index)}
}

// RGB creates a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, Value: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// Hex creates a color from hex value (0xRRGGBB).
func Hex(hex uint32) Color {
	return Color{Mode: ColorModeRGB, Value: hex & 0xFFFFFF}
}

// IsSet reports whether the color was explicitly specified.
func (c Color) IsSet() bool {
	return c.Mode != ColorModeNone
}

// RGBComponents returns the red, green, blue components of an RGB color.
// Returns 0, 0, 0 for non-RGB colors.
func (c Color) RGBComponents() (r, g, b uint8) {
	if c.Mode != ColorModeRGB {
		return 0, 0, 0
	}
	return uint8((c.Value >> 16) & 0xFF), uint8((c.Value >> 8) & 0xFF), uint8(c.Value & 0xFF)
}

// AttrMask represents text attributes.
type AttrMask uint16

// Attribute flags
const (
	AttrBold AttrMask = 1 << iota
	AttrItalic
	AttrUnderline
	AttrStrikeThrough
	AttrReverse
	AttrDim
	AttrBlink
)

// Style combines foreground, background colors and attributes.
type Style struct {
	FG    Color
	BG    Color
	Attrs AttrMask
}

// New returns an unstyled Style.
func New() Style {
	return Style{}
}

// IsZero reports whether the style specifies nothing.
func (s Style) IsZero() bool {
	return !s.FG.IsSet() && !s.BG.IsSet() && s.Attrs == 0
}

// Merge applies other on top of s and returns the result.
// Colors from other replace those in s only when other specifies them;
// attributes are additive.
func (s Style) Merge(other Style) Style {
	if other.BG.IsSet() {
		s.BG = other.BG
	}
	if other.FG.IsSet() {
		s.FG = other.FG
	}
	s.Attrs |= other.Attrs
	return s
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.FG = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.BG = c
	return s
}

// Bold enables bold.
func (s Style) Bold() Style {
	s.Attrs |= AttrBold
	return s
}

// Italic enables italic.
func (s Style) Italic() Style {
	s.Attrs |= AttrItalic
	return s
}

// Underline enables underline.
func (s Style) Underline() Style {
	s.Attrs |= AttrUnderline
	return s
}

// StrikeThrough enables strikethrough.
func (s Style) StrikeThrough() Style {
	s.Attrs |= AttrStrikeThrough
	return s
}

// Reverse enables reverse video.
func (s Style) Reverse() Style {
	s.Attrs |= AttrReverse
	return s
}

// Dim enables dim.
func (s Style) Dim() Style {
	s.Attrs |= AttrDim
	return s
}

// Has reports whether all attributes in mask are set.
func (s Style) Has(mask AttrMask) bool {
	return s.Attrs&mask == mask
}
