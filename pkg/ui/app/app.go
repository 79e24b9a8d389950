// Package app runs a view tree against a terminal backend: it pumps input
// events, rebuilds and renders the tree into a fresh frame, and hands the
// frame to the committer.
package app

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/buckle/pkg/errors"
	"github.com/odvcencio/buckle/pkg/logging"
	"github.com/odvcencio/buckle/pkg/telemetry"
	"github.com/odvcencio/buckle/pkg/ui/backend"
	"github.com/odvcencio/buckle/pkg/ui/compositor"
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/terminal"
)

// Action tells the loop what to do after an event.
type Action uint8

const (
	// ActionNone leaves the screen as is.
	ActionNone Action = iota
	// ActionRedraw renders a new frame.
	ActionRedraw
	// ActionQuit stops the loop.
	ActionQuit
)

// BuildFunc returns the view tree for the next frame.
type BuildFunc func() runtime.View

// UpdateFunc reacts to an input event. Resize events are handled by the
// loop before Update sees them.
type UpdateFunc func(ev terminal.Event) Action

// DefaultUpdate quits on the usual quit keys and redraws on interrupts.
func DefaultUpdate(ev terminal.Event) Action {
	if terminal.IsQuit(ev) {
		return ActionQuit
	}
	if _, ok := ev.(terminal.InterruptEvent); ok {
		return ActionRedraw
	}
	return ActionNone
}

// Config configures an App.
type Config struct {
	Backend backend.Backend
	Build   BuildFunc
	Update  UpdateFunc
	Logger  *logging.Logger
	Metrics *telemetry.Metrics
	Hub     *telemetry.Hub
	// EventBuffer bounds queued input events. Defaults to 64.
	EventBuffer int
}

// App is a single-threaded frame loop fed by an input goroutine.
type App struct {
	backend backend.Backend
	build   BuildFunc
	update  UpdateFunc
	logger  *logging.Logger
	metrics *telemetry.Metrics
	hub     *telemetry.Hub
	buffer  int

	committer *compositor.Committer
	finiOnce  sync.Once
}

// New creates an App from cfg.
func New(cfg Config) *App {
	if cfg.Update == nil {
		cfg.Update = DefaultUpdate
	}
	if cfg.EventBuffer <= 0 {
		cfg.EventBuffer = 64
	}
	return &App{
		backend: cfg.Backend,
		build:   cfg.Build,
		update:  cfg.Update,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		hub:     cfg.Hub,
		buffer:  cfg.EventBuffer,
	}
}

// Redraw asks a running loop to render a new frame. Safe to call from any
// goroutine.
func (a *App) Redraw(reason string) error {
	return a.backend.PostEvent(terminal.InterruptEvent{Reason: reason})
}

// Run initializes the backend and loops until quit or ctx is done.
// The backend is always restored before Run returns.
func (a *App) Run(ctx context.Context) error {
	if a.backend == nil || a.build == nil {
		return errors.New(errors.ErrCodeInternal, "app requires a backend and a build function")
	}
	if err := a.backend.Init(); err != nil {
		return errors.Wrap(err, errors.ErrCodeBackendInit, "initializing terminal")
	}
	defer a.fini()

	a.committer = compositor.New(a.backend,
		compositor.WithLogger(a.logger),
		compositor.WithMetrics(a.metrics),
		compositor.WithHub(a.hub),
	)
	w, h := a.backend.Size()
	a.committer.Reset(runtime.Dims(w, h))
	_ = a.logger.Info(logging.CategoryApp, "start", "frame loop started", map[string]any{
		"width":  w,
		"height": h,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan terminal.Event, a.buffer)
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(events)
		for {
			ev := a.backend.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-gctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		// The pump blocks in PollEvent until the backend is finalized.
		defer a.fini()
		defer cancel()
		return a.loop(gctx, events)
	})

	err := g.Wait()
	_ = a.logger.Info(logging.CategoryApp, "stop", "frame loop stopped", map[string]any{
		"frames": a.committer.Frames(),
	})
	return err
}

func (a *App) fini() {
	a.finiOnce.Do(a.backend.Fini)
}

func (a *App) loop(ctx context.Context, events <-chan terminal.Event) error {
	if err := a.render(ctx); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			action := ActionNone
			if rs, isResize := ev.(terminal.ResizeEvent); isResize {
				a.resize(rs)
				action = ActionRedraw
			}
			switch a.update(ev) {
			case ActionQuit:
				return nil
			case ActionRedraw:
				action = ActionRedraw
			}
			if action == ActionRedraw {
				if err := a.render(ctx); err != nil {
					return err
				}
			}
		}
	}
}

func (a *App) resize(ev terminal.ResizeEvent) {
	a.backend.Sync()
	a.committer.Reset(runtime.Dims(ev.Width, ev.Height))
	a.hub.Publish(telemetry.Event{
		Type: telemetry.EventResize,
		Data: map[string]any{"width": ev.Width, "height": ev.Height},
	})
	_ = a.logger.Debug(logging.CategoryBackend, "resize", "terminal resized", map[string]any{
		"width":  ev.Width,
		"height": ev.Height,
	})
}

// render paints one frame. A frame rejected as FRAME_INVALID means the
// terminal changed size since the last commit: the display is reset to
// the frame's size and the same frame is committed as a full repaint.
func (a *App) render(ctx context.Context) error {
	start := time.Now()
	frame := a.committer.AllocateFrame()
	runtime.RenderRoot(a.build(), frame)
	a.metrics.ObserveRender(time.Since(start))

	_, err := a.committer.Commit(ctx, frame)
	if errors.IsCode(err, errors.ErrCodeFrameInvalid) {
		a.committer.Reset(frame.Dimensions())
		_, err = a.committer.Commit(ctx, frame)
	}
	if err != nil {
		_ = a.logger.Error(logging.CategoryRender, "commit_failed", err.Error(), nil)
		return err
	}
	return nil
}

// Frames returns the number of frames committed by the last Run.
func (a *App) Frames() uint64 {
	if a.committer == nil {
		return 0
	}
	return a.committer.Frames()
}
