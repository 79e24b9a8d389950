// Package tcell provides a Backend implementation using tcell.
package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/buckle/pkg/ui/backend"
	"github.com/odvcencio/buckle/pkg/ui/style"
	"github.com/odvcencio/buckle/pkg/ui/terminal"
)

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen tcell.Screen
}

// New creates a backend on the process terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen creates a backend with an existing tcell screen (for testing).
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Init initializes the backend.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.EnableMouse()
	b.screen.HideCursor()
	return nil
}

// Fini cleans up the backend.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent sets a cell at position (x, y).
func (b *Backend) SetContent(x, y int, r rune, s style.Style) {
	b.screen.SetContent(x, y, r, nil, Style(s))
}

// Show synchronizes the buffer to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear clears the screen.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// Sync forces a full redraw.
func (b *Backend) Sync() {
	b.screen.Sync()
}

// PollEvent blocks until an event is available. Events with no terminal
// equivalent are skipped.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if out := convertEvent(ev); out != nil {
			return out
		}
	}
}

// PostEvent injects an event into the queue. Only resize and interrupt
// events can be posted.
func (b *Backend) PostEvent(ev terminal.Event) error {
	if tev := reverseConvertEvent(ev); tev != nil {
		return b.screen.PostEvent(tev)
	}
	return nil
}

// Style converts a cell style to tcell. Unset colors map to the terminal
// default.
func Style(s style.Style) tcell.Style {
	ts := tcell.StyleDefault.
		Foreground(Color(s.FG)).
		Background(Color(s.BG))

	if s.Has(style.AttrBold) {
		ts = ts.Bold(true)
	}
	if s.Has(style.AttrItalic) {
		ts = ts.Italic(true)
	}
	if s.Has(style.AttrUnderline) {
		ts = ts.Underline(true)
	}
	if s.Has(style.AttrDim) {
		ts = ts.Dim(true)
	}
	if s.Has(style.AttrBlink) {
		ts = ts.Blink(true)
	}
	if s.Has(style.AttrReverse) {
		ts = ts.Reverse(true)
	}
	if s.Has(style.AttrStrikeThrough) {
		ts = ts.StrikeThrough(true)
	}
	return ts
}

// Color converts a cell color to tcell.
func Color(c style.Color) tcell.Color {
	switch c.Mode {
	case style.ColorMode16, style.ColorMode256:
		return tcell.PaletteColor(int(c.Value))
	case style.ColorModeRGB:
		r, g, b := c.RGBComponents()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}

// FromStyle converts a tcell style back to a cell style. The terminal
// default color comes back as unset.
func FromStyle(ts tcell.Style) style.Style {
	fg, bg, attrs := ts.Decompose()
	s := style.New().
		Foreground(FromColor(fg)).
		Background(FromColor(bg))

	for _, a := range []struct {
		tc tcell.AttrMask
		s  style.AttrMask
	}{
		{tcell.AttrBold, style.AttrBold},
		{tcell.AttrItalic, style.AttrItalic},
		{tcell.AttrUnderline, style.AttrUnderline},
		{tcell.AttrDim, style.AttrDim},
		{tcell.AttrBlink, style.AttrBlink},
		{tcell.AttrReverse, style.AttrReverse},
		{tcell.AttrStrikeThrough, style.AttrStrikeThrough},
	} {
		if attrs&a.tc != 0 {
			s.Attrs |= a.s
		}
	}
	return s
}

// FromColor converts a tcell color back to a cell color.
func FromColor(tc tcell.Color) style.Color {
	switch {
	case tc == tcell.ColorDefault:
		return style.ColorNone
	case tc&tcell.ColorIsRGB != 0:
		r, g, b := tc.RGB()
		return style.RGB(uint8(r), uint8(g), uint8(b))
	}
	idx := uint8(tc & 0xFF)
	if idx < 16 {
		return style.Color{Mode: style.ColorMode16, Value: uint32(idx)}
	}
	return style.Color256(idx)
}

// convertEvent converts a tcell event to terminal.Event.
func convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return terminal.KeyEvent{
			Key:   convertKey(e.Key()),
			Rune:  e.Rune(),
			Alt:   e.Modifiers()&tcell.ModAlt != 0,
			Ctrl:  e.Modifiers()&tcell.ModCtrl != 0,
			Shift: e.Modifiers()&tcell.ModShift != 0,
		}
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		x, y := e.Position()
		mods := e.Modifiers()
		return terminal.MouseEvent{
			X:      x,
			Y:      y,
			Button: convertMouseButton(e.Buttons()),
			Action: convertMouseAction(e.Buttons()),
			Alt:    mods&tcell.ModAlt != 0,
			Ctrl:   mods&tcell.ModCtrl != 0,
			Shift:  mods&tcell.ModShift != 0,
		}
	case *tcell.EventInterrupt:
		reason, _ := e.Data().(string)
		return terminal.InterruptEvent{Reason: reason}
	default:
		return nil
	}
}

// convertKey converts tcell.Key to terminal.Key.
func convertKey(k tcell.Key) terminal.Key {
	switch k {
	case tcell.KeyRune:
		return terminal.KeyRune
	case tcell.KeyUp:
		return terminal.KeyUp
	case tcell.KeyDown:
		return terminal.KeyDown
	case tcell.KeyRight:
		return terminal.KeyRight
	case tcell.KeyLeft:
		return terminal.KeyLeft
	case tcell.KeyPgUp:
		return terminal.KeyPageUp
	case tcell.KeyPgDn:
		return terminal.KeyPageDown
	case tcell.KeyHome:
		return terminal.KeyHome
	case tcell.KeyEnd:
		return terminal.KeyEnd
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return terminal.KeyBackspace
	case tcell.KeyTab:
		return terminal.KeyTab
	case tcell.KeyEnter:
		return terminal.KeyEnter
	case tcell.KeyEscape:
		return terminal.KeyEscape
	case tcell.KeyCtrlC:
		return terminal.KeyCtrlC
	case tcell.KeyCtrlD:
		return terminal.KeyCtrlD
	default:
		return terminal.KeyNone
	}
}

// convertMouseButton converts tcell button mask to terminal.MouseButton.
func convertMouseButton(buttons tcell.ButtonMask) terminal.MouseButton {
	switch {
	case buttons&tcell.WheelUp != 0:
		return terminal.MouseWheelUp
	case buttons&tcell.WheelDown != 0:
		return terminal.MouseWheelDown
	case buttons&tcell.Button1 != 0:
		return terminal.MouseLeft
	case buttons&tcell.Button2 != 0:
		return terminal.MouseMiddle
	case buttons&tcell.Button3 != 0:
		return terminal.MouseRight
	default:
		return terminal.MouseNone
	}
}

// convertMouseAction determines the mouse action from button state.
// Wheel events are reported as presses.
func convertMouseAction(buttons tcell.ButtonMask) terminal.MouseAction {
	if buttons == tcell.ButtonNone {
		return terminal.MouseRelease
	}
	return terminal.MousePress
}

// reverseConvertEvent converts terminal.Event to tcell.Event for PostEvent.
func reverseConvertEvent(ev terminal.Event) tcell.Event {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		return tcell.NewEventResize(e.Width, e.Height)
	case terminal.InterruptEvent:
		return tcell.NewEventInterrupt(e.Reason)
	default:
		return nil
	}
}

// Ensure Backend implements backend.Backend
var _ backend.Backend = (*Backend)(nil)
