package gui

import (
	"context"
	"image"
	"testing"
	"time"

	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/platform"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoiceMessageFromUpdate(t *testing.T) {
	var log []string
	c, h := newTestContext(t, input.Press(input.KeyX), input.State{}, input.Press(input.KeyA))

	var answer bool
	a := newRecorder("A", &log)
	a.onUpdate = func(c *Context, in input.State) {
		assert.False(t, c.InFrame())
		answer = c.ShowChoiceMessage("Overwrite save?", "")
		assert.False(t, c.InFrame())
	}
	c.Stack.Push(a)

	_, err := c.Step()
	require.NoError(t, err)
	assert.True(t, answer)
	// One loop frame and two modal frames.
	assert.Equal(t, 3, h.Presented())
	assert.Equal(t, uint64(3), c.Ticks())
}

func TestChoiceMessageCancel(t *testing.T) {
	c, _ := newTestContext(t, input.Press(input.KeyB))
	assert.False(t, c.ShowChoiceMessage("Delete?", "This cannot be undone"))
}

func TestChoiceMessageEndsWhenPlatformStops(t *testing.T) {
	c, h := newTestContext(t)
	h.Frames = 4
	assert.False(t, c.ShowChoiceMessage("Delete?", ""))
	assert.Equal(t, 4, h.Presented())
}

func TestModalFromDrawReopensFrame(t *testing.T) {
	var log []string
	c, h := newTestContext(t, input.State{}, input.Press(input.KeyA))

	a := newRecorder("A", &log)
	a.onDrawTop = func(c *Context) {
		c.Warn("Save file is damaged", "")
		assert.True(t, c.InFrame())
		assert.Equal(t, render.Top, c.Current())
	}
	c.Stack.Push(a)

	_, err := c.Step()
	require.NoError(t, err)
	assert.False(t, c.InFrame())
	// Partial loop frame, one modal frame, then the resumed loop frame.
	assert.Equal(t, 3, h.Presented())
}

func TestWarnIgnoresOtherKeys(t *testing.T) {
	c, h := newTestContext(t, input.Press(input.KeyB), input.Hold(input.KeyA), input.Press(input.KeyA))
	c.Warn("Careful", "")
	assert.Equal(t, 3, h.Presented())
}

func TestErrorShowsCode(t *testing.T) {
	c, h := newTestContext(t, input.Press(input.KeyA))
	c.Error("Could not write file", 0xC8804478)
	assert.Equal(t, 1, h.Presented())
}

func TestSingleFrameModalsDoNotPoll(t *testing.T) {
	c, h := newTestContext(t, input.Press(input.KeyA))
	c.WaitFrame("Loading", "")
	c.ShowRestoreProgress(3, 10)
	c.ShowDownloadProgress("/pocketedit/extrasaves.json", 1, 2)

	assert.Equal(t, 3, h.Presented())
	assert.Equal(t, uint64(0), c.Ticks())
	assert.False(t, c.InFrame())
	assert.NotNil(t, h.Last())
}

func TestSingleFrameModalInsideFrame(t *testing.T) {
	c, h := newTestContext(t)
	c.BeginFrame()
	c.Target(render.Bottom)
	c.ShowRestoreProgress(1, 1)
	assert.True(t, c.InFrame())
	assert.Equal(t, render.Bottom, c.Current())
	require.NoError(t, c.EndFrame())
	assert.Equal(t, 3, h.Presented())
}

func TestModalEndsWhenContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h := platform.NewHeadless(input.NewScript(), 0)
	require.NoError(t, h.Start(ctx))
	c := NewContext(render.NewRenderer(render.NewFontShaper(render.BasicFaces())), h, nil)

	var log []string
	asking := make(chan struct{})
	answer := true
	a := newRecorder("A", &log)
	a.onUpdate = func(c *Context, in input.State) {
		close(asking)
		answer = c.ShowChoiceMessage("Overwrite save?", "")
	}
	c.Stack.Push(a)

	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	<-asking
	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run still blocked after cancel")
	}
	assert.False(t, answer)
	assert.False(t, c.InFrame())
}

func TestDialogPanelPlacement(t *testing.T) {
	panel := dialogPanel()
	assert.Equal(t, image.Rect(20, 60, 380, 160), panel)

	c, h := newTestContext(t, input.Press(input.KeyA))
	c.Warn("Careful", "")
	assert.Equal(t, render.ColorMidBlue, h.Last().RGBAAt(panel.Min.X, panel.Min.Y))
	assert.Equal(t, render.ColorDarkBlue, h.Last().RGBAAt(panel.Min.X-1, panel.Min.Y))
}
