package compositor

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/odvcencio/buckle/pkg/errors"
	"github.com/odvcencio/buckle/pkg/logging"
	"github.com/odvcencio/buckle/pkg/telemetry"
	"github.com/odvcencio/buckle/pkg/ui/runtime"
	"github.com/odvcencio/buckle/pkg/ui/style"
)

func newMockCommitter(t *testing.T, w, h int, opts ...Option) (*Committer, *MockTarget) {
	t.Helper()
	ctrl := gomock.NewController(t)
	target := NewMockTarget(ctrl)
	target.EXPECT().Size().Return(w, h).AnyTimes()
	return New(target, opts...), target
}

func TestCommit_AppliesOnlyChangedCellsInPointOrder(t *testing.T) {
	c, target := newMockCommitter(t, 4, 2)
	red := style.New().Foreground(style.ColorRed)

	frame := c.AllocateFrame()
	frame.SetCell(runtime.Pt(3, 0), 'b', red)
	frame.SetCell(runtime.Pt(1, 1), 'c', style.New())
	frame.SetCell(runtime.Pt(0, 0), 'a', style.New())

	gomock.InOrder(
		target.EXPECT().SetContent(0, 0, 'a', style.New()),
		target.EXPECT().SetContent(3, 0, 'b', red),
		target.EXPECT().SetContent(1, 1, 'c', style.New()),
		target.EXPECT().Show(),
	)

	n, err := c.Commit(context.Background(), frame)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Same(t, frame, c.Current())
	assert.Equal(t, uint64(1), c.Frames())
}

func TestCommit_NoChangeTouchesNothing(t *testing.T) {
	c, _ := newMockCommitter(t, 3, 3)

	// No SetContent or Show expectations: any call fails the test.
	n, err := c.Commit(context.Background(), c.AllocateFrame())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, c.Frames())
}

func TestCommit_SecondFrameSendsOnlyTheDelta(t *testing.T) {
	c, target := newMockCommitter(t, 5, 1)

	first := c.AllocateFrame()
	first.DrawText(first.Bounds(), "hello", style.New())
	target.EXPECT().SetContent(gomock.Any(), 0, gomock.Any(), style.New()).Times(5)
	target.EXPECT().Show()
	_, err := c.Commit(context.Background(), first)
	require.NoError(t, err)

	second := c.AllocateFrame()
	second.DrawText(second.Bounds(), "help!", style.New())
	gomock.InOrder(
		target.EXPECT().SetContent(3, 0, 'p', style.New()),
		target.EXPECT().SetContent(4, 0, '!', style.New()),
		target.EXPECT().Show(),
	)
	n, err := c.Commit(context.Background(), second)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCommit_InvalidFrameIsRejectedWhole(t *testing.T) {
	var logs bytes.Buffer
	metrics := telemetry.NewMetrics()
	hub := telemetry.NewHub(4)
	events, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	c, _ := newMockCommitter(t, 4, 2,
		WithLogger(logging.NewWriterLogger(&logs, "test")),
		WithMetrics(metrics),
		WithHub(hub),
	)
	before := c.Current()

	frame := runtime.NewBuffer(runtime.Dims(5, 2))
	frame.DrawText(frame.Bounds(), "wider", style.New())

	n, err := c.Commit(context.Background(), frame)
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeFrameInvalid))
	assert.Zero(t, n)
	assert.Same(t, before, c.Current(), "displayed frame must survive an invalid commit")
	assert.Contains(t, logs.String(), "frame_invalid")

	ev := <-events
	assert.Equal(t, telemetry.EventFrameInvalid, ev.Type)
}

func TestCommit_SkipsWideGlyphContinuation(t *testing.T) {
	c, target := newMockCommitter(t, 3, 1)
	frame := c.AllocateFrame()
	frame.DrawText(frame.Bounds(), "日x", style.New())

	gomock.InOrder(
		target.EXPECT().SetContent(0, 0, '日', style.New()),
		target.EXPECT().SetContent(2, 0, 'x', style.New()),
		target.EXPECT().Show(),
	)
	n, err := c.Commit(context.Background(), frame)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestReset_ClearsAndForcesRepaint(t *testing.T) {
	c, target := newMockCommitter(t, 2, 1)

	frame := c.AllocateFrame()
	frame.DrawText(frame.Bounds(), "ab", style.New())
	target.EXPECT().SetContent(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(2)
	target.EXPECT().Show()
	_, err := c.Commit(context.Background(), frame)
	require.NoError(t, err)

	target.EXPECT().Clear()
	c.Reset(runtime.Dims(3, 1))
	assert.Equal(t, runtime.Dims(3, 1), c.Dimensions())
	assert.Equal(t, "   ", c.Current().String())

	again := runtime.NewBuffer(runtime.Dims(3, 1))
	again.DrawText(again.Bounds(), "ab", style.New())
	gomock.InOrder(
		target.EXPECT().SetContent(0, 0, 'a', style.New()),
		target.EXPECT().SetContent(1, 0, 'b', style.New()),
		target.EXPECT().Show(),
	)
	n, err := c.Commit(context.Background(), again)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFrameDiff(t *testing.T) {
	assert.Empty(t, FrameDiff("ab\ncd", "ab\ncd"))

	diff := FrameDiff("ab\ncd", "ab\nce")
	assert.Contains(t, diff, "-cd|")
	assert.Contains(t, diff, "+ce|")
}
