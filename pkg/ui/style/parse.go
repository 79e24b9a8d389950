package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]Color{
	"default":        ColorDefault,
	"black":          ColorBlack,
	"red":            ColorRed,
	"green":          ColorGreen,
	"yellow":         ColorYellow,
	"blue":           ColorBlue,
	"magenta":        ColorMagenta,
	"cyan":           ColorCyan,
	"white":          ColorWhite,
	"bright-black":   ColorBrightBlack,
	"grey":           ColorBrightBlack,
	"gray":           ColorBrightBlack,
	"bright-red":     ColorBrightRed,
	"bright-green":   ColorBrightGreen,
	"bright-yellow":  ColorBrightYellow,
	"bright-blue":    ColorBrightBlue,
	"bright-magenta": ColorBrightMagenta,
	"bright-cyan":    ColorBrightCyan,
	"bright-white":   ColorBrightWhite,
}

// ParseColor parses a color name ("red", "bright-blue", "default"),
// a palette index ("12", "208") or a hex triplet ("#1e1e2e", "#fff").
// An empty string yields ColorNone.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return ColorNone, nil
	}
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return ColorNone, fmt.Errorf("invalid hex color %q: %w", s, err)
		}
		r, g, b := c.RGB255()
		return RGB(r, g, b), nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return ColorNone, fmt.Errorf("unknown color %q", s)
	}
	if n < 0 || n > 255 {
		return ColorNone, fmt.Errorf("palette index %d out of range", n)
	}
	if n < 16 {
		return Color{Mode: ColorMode16, Value: uint32(n)}, nil
	}
	return Color256(uint8(n)), nil
}

// ParseAttrs parses attribute names such as "bold" or "underline".
func ParseAttrs(names []string) (AttrMask, error) {
	var mask AttrMask
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "bold":
			mask |= AttrBold
		case "italic":
			mask |= AttrItalic
		case "underline", "underlined":
			mask |= AttrUnderline
		case "strike", "strikethrough", "crossed-out":
			mask |= AttrStrikeThrough
		case "reverse":
			mask |= AttrReverse
		case "dim":
			mask |= AttrDim
		case "blink":
			mask |= AttrBlink
		default:
			return 0, fmt.Errorf("unknown attribute %q", name)
		}
	}
	return mask, nil
}
