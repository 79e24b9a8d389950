// Package compositor owns the frame on screen. It hands out blank frame
// buffers sized to the target, diffs each newly painted frame against the
// one last committed, and applies only the cells that changed.
package compositor

import (
	"context"
	"sync"
	"time"

	"github.com/odvcencio/buckle/pkg/errors"
	"github.com/odvcencio/buckle/pkg/logging"
	"github.com/odvcencio/buckle/pkg/telemetry"
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
)

// Target is the terminal surface the committer paints onto.
//
//go:generate mockgen -package=compositor -destination=mock_target_test.go github.com/odvcencio/buckle/pkg/ui/compositor Target
type Target interface {
	// Size returns the current surface dimensions.
	Size() (width, height int)
	// SetContent stages a glyph at (x, y). Wide glyphs cover x+1 as well.
	SetContent(x, y int, r rune, s style.Style)
	// Show flushes staged cells to the terminal.
	Show()
	// Clear blanks the whole surface.
	Clear()
}

// Option configures a Committer.
type Option func(*Committer)

// WithLogger logs invalid frames and resets.
func WithLogger(l *logging.Logger) Option {
	return func(c *Committer) { c.logger = l }
}

// WithMetrics records commit outcomes.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Committer) { c.metrics = m }
}

// WithHub publishes commit events.
func WithHub(h *telemetry.Hub) Option {
	return func(c *Committer) { c.hub = h }
}

// Committer retains exactly one frame: the one currently displayed.
// A committed frame replaces it wholesale; the committer takes ownership
// of every buffer passed to Commit.
type Committer struct {
	mu      sync.Mutex
	target  Target
	current *runtime.Buffer
	frame   uint64

	logger  *logging.Logger
	metrics *telemetry.Metrics
	hub     *telemetry.Hub
}

// New creates a committer for target. The retained frame starts blank at
// the target's current size, matching a freshly cleared screen.
func New(target Target, opts ...Option) *Committer {
	c := &Committer{target: target}
	for _, opt := range opts {
		opt(c)
	}
	c.current = runtime.NewBuffer(c.targetSize())
	return c
}

func (c *Committer) targetSize() runtime.Dimensions {
	w, h := c.target.Size()
	return runtime.Dims(w, h)
}

// AllocateFrame returns a blank buffer sized to the target.
func (c *Committer) AllocateFrame() *runtime.Buffer {
	return runtime.NewBuffer(c.targetSize())
}

// Commit diffs frame against the displayed frame and applies the changed
// cells in row-major order, then retains frame. It returns the number of
// cells written.
//
// A frame whose dimensions differ from the displayed one is rejected with
// a FRAME_INVALID error and nothing is applied. Callers should Reset to
// the new size and render again.
func (c *Committer) Commit(ctx context.Context, frame *runtime.Buffer) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, span := telemetry.StartSpan(ctx, "compositor.commit")
	defer span.End()

	diff := c.current.Diff(frame)
	span.SetAttributes(telemetry.String("diff", diff.Kind.String()))

	switch diff.Kind {
	case runtime.DiffNoChange:
		c.metrics.ObserveCommit(telemetry.ResultNoChange, 0)
		return 0, nil

	case runtime.DiffInvalid:
		have, got := c.current.Dimensions(), frame.Dimensions()
		c.metrics.ObserveCommit(telemetry.ResultInvalid, 0)
		c.hub.Publish(telemetry.Event{
			Type:      telemetry.EventFrameInvalid,
			Timestamp: time.Now(),
			Frame:     c.frame,
			Data:      map[string]any{"have": have, "got": got},
		})
		_ = c.logger.Warn(logging.CategoryCommit, "frame_invalid", "frame dimensions do not match the display", map[string]any{
			"have_width":  have.Width,
			"have_height": have.Height,
			"got_width":   got.Width,
			"got_height":  got.Height,
		})
		return 0, errors.New(errors.ErrCodeFrameInvalid, "frame dimensions do not match the displayed frame").
			WithContext("have", have).
			WithContext("got", got).
			WithRemediation("reset the committer to the new size and render again")
	}

	written := 0
	for _, ch := range diff.Changes {
		if ch.Cell.Continuation() {
			continue
		}
		c.target.SetContent(ch.Point.X, ch.Point.Y, ch.Cell.Rune, ch.Cell.Style)
		written++
	}
	c.target.Show()

	c.current = frame
	c.frame++

	span.SetAttributes(telemetry.Int("cells", len(diff.Changes)))
	c.metrics.ObserveCommit(telemetry.ResultChanged, len(diff.Changes))
	c.hub.Publish(telemetry.Event{
		Type:      telemetry.EventFrameCommitted,
		Timestamp: time.Now(),
		Frame:     c.frame,
		Data:      map[string]any{"cells": len(diff.Changes)},
	})
	return written, nil
}

// Reset clears the target and replaces the displayed frame with a blank
// one of d. The next commit repaints every non-blank cell.
func (c *Committer) Reset(d runtime.Dimensions) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.target.Clear()
	c.current = runtime.NewBuffer(d)
	_ = c.logger.Debug(logging.CategoryCommit, "reset", "display reset", map[string]any{
		"width":  d.Width,
		"height": d.Height,
	})
}

// Current returns the displayed frame. It must not be modified.
func (c *Committer) Current() *runtime.Buffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// Dimensions returns the size of the displayed frame.
func (c *Committer) Dimensions() runtime.Dimensions {
	return c.Current().Dimensions()
}

// Frames returns the number of frames applied so far.
func (c *Committer) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}
