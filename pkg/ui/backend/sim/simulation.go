// Package sim provides a simulation backend for golden-frame tests.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/buckle/pkg/ui/backend"
	"github.com/odvcencio/buckle/pkg/ui/backend/tcell"
	"github.com/odvcencio/buckle/pkg/ui/style"
	"github.com/odvcencio/buckle/pkg/ui/terminal"
)

// Backend is a testable backend using tcell's simulation screen.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	mu     sync.Mutex

	width, height int
	ready         bool
	pending       []simKey
}

type simKey struct {
	key tcellv2.Key
	r   rune
}

// New creates a new simulation backend with the given dimensions. The
// size takes effect at Init, which resets tcell's simulation screen.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)

	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		width:   width,
		height:  height,
	}
}

// Init initializes the simulation screen at the requested size and
// delivers keys injected before it.
func (s *Backend) Init() error {
	if err := s.Backend.Init(); err != nil {
		return err
	}
	s.mu.Lock()
	s.screen.SetSize(s.width, s.height)
	s.ready = true
	pending := s.pending
	s.pending = nil
	s.mu.Unlock()

	if len(pending) > 0 {
		go func() {
			for _, k := range pending {
				s.screen.InjectKey(k.key, k.r, tcellv2.ModNone)
			}
		}()
	}
	return nil
}

// Fini cleans up the simulation screen. Keys injected afterwards queue
// until the next Init.
func (s *Backend) Fini() {
	s.mu.Lock()
	s.ready = false
	s.mu.Unlock()
	s.Backend.Fini()
}

// Resize changes the simulation screen size without posting an event.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.width, s.height = width, height
	s.screen.SetSize(width, height)
}

// InjectResize changes the size and posts the matching resize event.
func (s *Backend) InjectResize(width, height int) {
	s.Resize(width, height)
	_ = s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

var simKeys = map[terminal.Key]tcellv2.Key{
	terminal.KeyEnter:     tcellv2.KeyEnter,
	terminal.KeyBackspace: tcellv2.KeyBackspace2,
	terminal.KeyTab:       tcellv2.KeyTab,
	terminal.KeyEscape:    tcellv2.KeyEscape,
	terminal.KeyUp:        tcellv2.KeyUp,
	terminal.KeyDown:      tcellv2.KeyDown,
	terminal.KeyLeft:      tcellv2.KeyLeft,
	terminal.KeyRight:     tcellv2.KeyRight,
	terminal.KeyHome:      tcellv2.KeyHome,
	terminal.KeyEnd:       tcellv2.KeyEnd,
	terminal.KeyPageUp:    tcellv2.KeyPgUp,
	terminal.KeyPageDown:  tcellv2.KeyPgDn,
	terminal.KeyCtrlC:     tcellv2.KeyCtrlC,
	terminal.KeyCtrlD:     tcellv2.KeyCtrlD,
}

// InjectKey queues a key press. Keys injected before Init are held and
// delivered once the screen is initialized.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	tk, ok := simKeys[key]
	if !ok {
		tk = tcellv2.KeyRune
	}

	s.mu.Lock()
	if !s.ready {
		s.pending = append(s.pending, simKey{tk, r})
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.screen.InjectKey(tk, r, tcellv2.ModNone)
}

// InjectKeyRune injects a regular character keypress.
func (s *Backend) InjectKeyRune(r rune) {
	s.InjectKey(terminal.KeyRune, r)
}

// Capture returns the whole screen as rows joined by newlines. The
// trailing half of a wide glyph is omitted, matching runtime.Buffer.String.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	return s.region(0, 0, w, h)
}

// CaptureRegion captures a rectangular region of the screen.
func (s *Backend) CaptureRegion(x, y, w, h int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.region(x, y, w, h)
}

func (s *Backend) region(x, y, w, h int) string {
	lines := make([]string, 0, h)
	for row := y; row < y+h; row++ {
		var line strings.Builder
		for col := x; col < x+w; col++ {
			mainc, comb, _, width := s.screen.GetContent(col, row)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
			if width == 2 {
				col++
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CaptureCell returns the glyph and style of a single cell.
func (s *Backend) CaptureCell(x, y int) (rune, style.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, ts, _ := s.screen.GetContent(x, y)
	return m, tcell.FromStyle(ts)
}

// FindText searches for text on the screen and returns its position.
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return len([]rune(line[:col])), row
		}
	}
	return -1, -1
}

// ContainsText returns true if the text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, y := s.FindText(text)
	return x >= 0 && y >= 0
}

// Ensure Backend implements backend.Backend
var _ backend.Backend = (*Backend)(nil)
