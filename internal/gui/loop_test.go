package gui

import (
	"context"
	"testing"

	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepDelegatesThroughOverlay(t *testing.T) {
	var log []string
	c, h := newTestContext(t, input.Press(input.KeySelect))

	a := newRecorder("A", &log)
	c.Stack.Push(a)
	w := c.Stack.Push(NewReplaceable(a))
	o := newRecorder("O", &log)
	o.handlesInput = true
	w.AddOverlay(o)

	exit, err := c.Step()
	require.NoError(t, err)
	assert.False(t, exit)
	assert.Equal(t, []string{"A.DrawTop", "O.DrawTop", "A.DrawBottom", "O.DrawBottom", "O.Update"}, log)
	assert.NotContains(t, log, "A.Update")
	assert.Equal(t, 1, h.Presented())
	assert.False(t, c.InFrame())
}

func TestStepHelpSuppressesUpdate(t *testing.T) {
	var log []string
	c, h := newTestContext(t, input.Press(input.KeySelect), input.State{})

	a := newRecorder("A", &log)
	a.help = NewInstructions().
		AddText(render.Top, "Press A to pick", 200, 120, render.TextStyle{AlignX: render.TextCenter}).
		AddBox(render.Bottom, 10, 10, 40, 20, render.ColorYellow, "Search", 100, 40)
	c.Stack.Push(a)

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, []string{"A.DrawTop", "A.DrawBottom"}, log)

	// The box shows through the dimmed bottom surface.
	bottom := h.Last().RGBAAt(render.BottomOrigin.X+20, render.BottomOrigin.Y+20)
	assert.NotEqual(t, uint8(0), bottom.R)

	log = nil
	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, []string{"A.DrawTop", "A.DrawBottom", "A.Update"}, log)
}

func TestStepQuitOnlyOnRoot(t *testing.T) {
	var log []string
	c, _ := newTestContext(t, input.Press(input.KeyStart), input.Press(input.KeyStart))

	c.Stack.Push(newRecorder("A", &log))
	child := newRecorder("B", &log)
	c.Stack.Push(child)

	exit, err := c.Step()
	require.NoError(t, err)
	assert.False(t, exit)

	require.NoError(t, c.Back())
	assert.True(t, child.disposed)

	exit, err = c.Step()
	require.NoError(t, err)
	assert.True(t, exit)
}

func TestStepPopDuringUpdate(t *testing.T) {
	var log []string
	c, _ := newTestContext(t, input.Press(input.KeyB), input.State{})

	c.Stack.Push(newRecorder("A", &log))
	child := newRecorder("B", &log)
	child.onUpdate = func(c *Context, in input.State) {
		if in.Pressed(input.KeyB) {
			require.NoError(t, c.Back())
		}
	}
	c.Stack.Push(child)

	_, err := c.Step()
	require.NoError(t, err)
	assert.Equal(t, []string{"B.DrawTop", "B.DrawBottom", "B.Update"}, log)

	log = nil
	_, err = c.Step()
	require.NoError(t, err)
	assert.Equal(t, []string{"A.DrawTop", "A.DrawBottom", "A.Update"}, log)
}

func TestStepHeldQuitDoesNotExit(t *testing.T) {
	var log []string
	c, _ := newTestContext(t, input.Hold(input.KeyStart))
	c.Stack.Push(newRecorder("A", &log))

	exit, err := c.Step()
	require.NoError(t, err)
	assert.False(t, exit)
}

func TestStepResetsTextCursor(t *testing.T) {
	var log []string
	c, _ := newTestContext(t, input.State{}, input.State{})
	a := newRecorder("A", &log)
	var rows []int
	a.onDrawTop = func(c *Context) {
		rows = append(rows, c.Cursor())
		c.SlicedText("first", 10, 10, render.TextStyle{}, 50)
		c.ScrollingText("second", 10, 30, render.TextStyle{}, 50)
		rows = append(rows, c.Cursor())
	}
	c.Stack.Push(a)

	for i := 0; i < 2; i++ {
		_, err := c.Step()
		require.NoError(t, err)
	}
	assert.Equal(t, []int{0, 26, 0, 26}, rows)
}

func TestRunStopsWhenPlatformStops(t *testing.T) {
	var log []string
	c, h := newTestContext(t)
	h.Frames = 3
	c.Stack.Push(newRecorder("A", &log))

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 3, h.Presented())
}

func TestRunExitsOnQuit(t *testing.T) {
	var log []string
	c, h := newTestContext(t, input.State{}, input.Press(input.KeyStart), input.State{})
	c.Stack.Push(newRecorder("A", &log))

	require.NoError(t, c.Run(context.Background()))
	assert.Equal(t, 2, h.Presented())
}

func TestRunHonoursContext(t *testing.T) {
	var log []string
	c, _ := newTestContext(t)
	c.Stack.Push(newRecorder("A", &log))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, c.Run(ctx), context.Canceled)
}
