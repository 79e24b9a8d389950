// Package backend defines the terminal backend the frame loop drives.
// Implementations handle raw terminal I/O and input decoding; the layout
// core never sees them directly, only through the compositor's Target.
package backend

import (
	"github.com/odvcencio/buckle/pkg/ui/style"
	"github.com/odvcencio/buckle/pkg/ui/terminal"
)

// Backend is the terminal abstraction layer.
type Backend interface {
	// Init enters raw mode and the alternate screen.
	Init() error

	// Fini restores the terminal. PollEvent returns nil afterwards.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent stages a glyph at (x, y). Wide glyphs cover x+1 too.
	SetContent(x, y int, r rune, s style.Style)

	// Show flushes staged cells to the terminal.
	Show()

	// Clear blanks the screen.
	Clear()

	// Sync forces a full redraw on the next Show.
	Sync()

	// PollEvent blocks until an event is available.
	// Returns nil once the backend is shutting down.
	PollEvent() terminal.Event

	// PostEvent injects an event into the queue.
	PostEvent(ev terminal.Event) error
}
