package main

import (
	"fmt"
	"sync"

	"github.com/odvcencio/buckle/pkg/config"
	"github.com/odvcencio/buckle/pkg/ui/app"
	"github.com/odvcencio/buckle/pkg/ui/layout"
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/terminal"
	"github.com/odvcencio/buckle/pkg/ui/theme"
	"github.com/odvcencio/buckle/pkg/ui/widgets"
)

const pageSize = 10

// demo is the state behind the interactive layout demo. build and update
// run on the frame loop; offer may be called from any goroutine.
type demo struct {
	cfg      *config.Config
	theme    *theme.Theme
	lines    int
	position int
	status   string

	mu      sync.Mutex
	pending *config.Config
}

func newDemo(cfg *config.Config, th *theme.Theme, lines int) *demo {
	return &demo{
		cfg:    cfg,
		theme:  th,
		lines:  max(0, lines),
		status: "ready",
	}
}

// offer queues a reloaded config. It takes effect on the next config
// redraw.
func (d *demo) offer(cfg *config.Config) {
	d.mu.Lock()
	d.pending = cfg
	d.mu.Unlock()
}

func (d *demo) applyPending() {
	d.mu.Lock()
	next := d.pending
	d.pending = nil
	d.mu.Unlock()
	if next == nil {
		return
	}
	th, err := loadTheme(next)
	if err != nil {
		d.status = "reload failed: " + err.Error()
		return
	}
	d.cfg, d.theme = next, th
	d.scrollTo(d.position)
	d.status = "config reloaded"
}

// lastRow is the furthest the list can scroll.
func (d *demo) lastRow() int {
	return max(0, min(d.lines, d.cfg.Render.MaxVirtualExtent)-1)
}

func (d *demo) scrollTo(pos int) {
	d.position = max(0, min(pos, d.lastRow()))
}

func (d *demo) update(ev terminal.Event) app.Action {
	if terminal.IsQuit(ev) {
		return app.ActionQuit
	}
	before := d.position
	switch e := ev.(type) {
	case terminal.InterruptEvent:
		if e.Reason == "config" {
			d.applyPending()
		}
		return app.ActionRedraw
	case terminal.KeyEvent:
		switch e.Key {
		case terminal.KeyUp:
			d.scrollTo(d.position - 1)
		case terminal.KeyDown:
			d.scrollTo(d.position + 1)
		case terminal.KeyPageUp:
			d.scrollTo(d.position - pageSize)
		case terminal.KeyPageDown:
			d.scrollTo(d.position + pageSize)
		case terminal.KeyHome:
			d.scrollTo(0)
		case terminal.KeyEnd:
			d.scrollTo(d.lastRow())
		case terminal.KeyRune:
			switch e.Rune {
			case 'k':
				d.scrollTo(d.position - 1)
			case 'j':
				d.scrollTo(d.position + 1)
			}
		}
	case terminal.MouseEvent:
		switch e.Button {
		case terminal.MouseWheelUp:
			d.scrollTo(d.position - 3)
		case terminal.MouseWheelDown:
			d.scrollTo(d.position + 3)
		}
	}
	if d.position != before {
		return app.ActionRedraw
	}
	return app.ActionNone
}

// build lays out a header, a scrolling list beside a pin board, and a
// footer, all inside one bordered panel.
func (d *demo) build() runtime.View {
	th := d.theme

	header := layout.HBox(
		widgets.NewLabel("buckle").WithStyle(th.Heading),
		widgets.NewLabel(" layout demo").WithStyle(th.TextMuted),
	).Spacer().Add(
		widgets.NewLabel(fmt.Sprintf("row %d/%d", d.position+1, max(1, d.lines))).WithStyle(th.Accent),
	).WithHeight(runtime.HugSize())

	list := layout.VerticalScroll(d.position).
		WithMaxExtent(d.cfg.Render.MaxVirtualExtent)
	for i := 0; i < d.lines; i++ {
		list.Add(d.row(i))
	}

	pins := layout.NewPinBoard().
		Pin(layout.TopLeft(1, 0), widgets.NewLabel("top-left").WithStyle(th.TextMuted)).
		Pin(layout.TopRight(1, 0), widgets.NewLabel("top-right").WithStyle(th.TextMuted)).
		Pin(layout.BottomLeft(1, 0), widgets.NewLabel("bottom-left").WithStyle(th.TextMuted)).
		Pin(layout.BottomRight(1, 0), widgets.NewLabel("bottom-right").WithStyle(th.TextMuted)).
		Pin(layout.Center(), d.card())

	body := layout.HBox(list).Split(th.Border).Add(pins)

	footer := widgets.NewLabel(fmt.Sprintf(
		"j/k scroll  pgup/pgdn page  q quit  |  extent %d  |  %s",
		d.cfg.Render.MaxVirtualExtent, d.status,
	)).WithStyle(th.TextMuted)

	return layout.VBox(header).
		Split(th.Border).Add(body).
		Split(th.Border).Add(footer).
		WithBorder(th.Line()).
		WithFill(th.Fill())
}

func (d *demo) row(i int) runtime.View {
	th := d.theme
	s := th.Text
	switch {
	case i == d.position:
		s = s.Merge(th.Selection)
	case i%10 == 0:
		s = th.Accent
	}
	return widgets.NewLabel(fmt.Sprintf(" %04d  row %d of the scroll box", i, i)).
		WithStyle(s).
		WithWidth(runtime.FillSize())
}

func (d *demo) card() runtime.View {
	th := d.theme
	return layout.VBox(
		widgets.NewLabel("pin board").WithStyle(th.Heading),
		widgets.NewLabel(fmt.Sprintf("theme %s", th.Name)).WithStyle(th.Text),
		widgets.NewLabel(fmt.Sprintf("scroll %d", d.position)).WithStyle(th.Accent),
	).
		WithWidth(runtime.HugSize()).
		WithHeight(runtime.HugSize()).
		WithBorder(th.Line())
}
