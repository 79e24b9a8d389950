package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/odvcencio/buckle/pkg/config"
	"github.com/odvcencio/buckle/pkg/ui/app"
	"github.com/odvcencio/buckle/pkg/ui/backend/sim"
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/terminal"
	"github.com/odvcencio/buckle/pkg/ui/theme"
)

func TestDemoUpdateScrolls(t *testing.T) {
	d := newDemo(config.DefaultConfig(), theme.DefaultTheme(), 50)

	steps := []struct {
		ev   terminal.Event
		want int
		act  app.Action
	}{
		{terminal.KeyEvent{Key: terminal.KeyDown}, 1, app.ActionRedraw},
		{terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'j'}, 2, app.ActionRedraw},
		{terminal.KeyEvent{Key: terminal.KeyPageDown}, 12, app.ActionRedraw},
		{terminal.MouseEvent{Button: terminal.MouseWheelUp}, 9, app.ActionRedraw},
		{terminal.KeyEvent{Key: terminal.KeyEnd}, 49, app.ActionRedraw},
		{terminal.KeyEvent{Key: terminal.KeyDown}, 49, app.ActionNone},
		{terminal.KeyEvent{Key: terminal.KeyHome}, 0, app.ActionRedraw},
		{terminal.KeyEvent{Key: terminal.KeyUp}, 0, app.ActionNone},
		{terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'x'}, 0, app.ActionNone},
	}
	for i, step := range steps {
		if act := d.update(step.ev); act != step.act {
			t.Fatalf("step %d: action=%v want %v", i, act, step.act)
		}
		if d.position != step.want {
			t.Fatalf("step %d: position=%d want %d", i, d.position, step.want)
		}
	}

	if act := d.update(terminal.KeyEvent{Key: terminal.KeyRune, Rune: 'q'}); act != app.ActionQuit {
		t.Fatalf("q should quit, got %v", act)
	}
}

func TestDemoScrollStopsAtVirtualExtent(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Render.MaxVirtualExtent = 20
	d := newDemo(cfg, theme.DefaultTheme(), 500)

	d.update(terminal.KeyEvent{Key: terminal.KeyEnd})
	if d.position != 19 {
		t.Fatalf("position=%d want 19", d.position)
	}
}

func TestDemoAppliesOfferedConfig(t *testing.T) {
	d := newDemo(config.DefaultConfig(), theme.DefaultTheme(), 10)

	if act := d.update(terminal.InterruptEvent{Reason: "config"}); act != app.ActionRedraw {
		t.Fatalf("config interrupt should redraw, got %v", act)
	}
	if d.status != "ready" {
		t.Fatalf("nothing offered, status=%q", d.status)
	}

	next := config.DefaultConfig()
	next.Render.Corners = config.CornersRounded
	d.offer(next)
	d.update(terminal.InterruptEvent{Reason: "config"})
	if d.theme.Corners != runtime.CornersRounded {
		t.Fatalf("expected rounded corners after reload")
	}
	if d.status != "config reloaded" {
		t.Fatalf("status=%q", d.status)
	}

	broken := config.DefaultConfig()
	broken.Render.Theme = filepath.Join(t.TempDir(), "missing.yaml")
	d.offer(broken)
	d.update(terminal.InterruptEvent{Reason: "config"})
	if !strings.HasPrefix(d.status, "reload failed") {
		t.Fatalf("status=%q", d.status)
	}
	if d.cfg != next {
		t.Fatalf("failed reload should keep the previous config")
	}
}

func TestDemoRunsOnSimulatedTerminal(t *testing.T) {
	screen := sim.New(60, 16)
	d := newDemo(config.DefaultConfig(), theme.DefaultTheme(), 100)
	loop := app.New(app.Config{Backend: screen, Build: d.build, Update: d.update})

	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background()) }()

	waitFor := func(what string, cond func() bool) {
		t.Helper()
		deadline := time.Now().Add(3 * time.Second)
		for time.Now().Before(deadline) {
			if cond() {
				return
			}
			time.Sleep(10 * time.Millisecond)
		}
		t.Fatalf("timed out waiting for %s:\n%s", what, screen.Capture())
	}

	waitFor("first frame", func() bool { return screen.ContainsText("row 1/100") })
	if !strings.HasPrefix(screen.Capture(), "┌") {
		t.Fatalf("expected border:\n%s", screen.Capture())
	}

	screen.InjectKey(terminal.KeyPageDown, 0)
	waitFor("scrolled frame", func() bool { return screen.ContainsText("row 11/100") })
	if !screen.ContainsText(" 0010  row 10") {
		t.Fatalf("list did not scroll:\n%s", screen.Capture())
	}

	rounded := config.DefaultConfig()
	rounded.Render.Corners = config.CornersRounded
	d.offer(rounded)
	if err := loop.Redraw("config"); err != nil {
		t.Fatalf("Redraw: %v", err)
	}
	waitFor("rounded corners", func() bool { return strings.HasPrefix(screen.Capture(), "╭") })

	screen.InjectKeyRune('q')
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("demo did not stop")
	}
}
