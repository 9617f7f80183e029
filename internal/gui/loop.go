package gui

import (
	"context"
	"fmt"
	"time"

	"github.com/rook-computer/pocketedit/internal/render"
)

// Step runs one tick: poll, draw both surfaces through the active screen,
// submit the frame and dispatch input. It reports whether the quit key was
// pressed on the root screen.
func (c *Context) Step() (bool, error) {
	in := c.poll()
	c.BeginFrame()
	defer c.Shaper.Reset()

	top := c.Stack.Top()
	if help := top.Instructions(); in.IsHeld(c.HelpKey) && !help.Empty() {
		c.Target(render.Top)
		top.DrawTop(c)
		help.DrawTop(c)
		c.FlushText()

		c.Target(render.Bottom)
		top.DrawBottom(c)
		help.DrawBottom(c)
		c.FlushText()

		c.drawHome(in)
		return false, c.EndFrame()
	}

	c.Target(render.Top)
	top.DrawTop(c)
	c.FlushText()

	c.Target(render.Bottom)
	top.DrawBottom(c)
	c.FlushText()

	c.drawHome(in)
	err := c.EndFrame()

	top.Update(c, in)
	exit := c.Stack.Len() == 1 && in.Pressed(c.QuitKey)
	return exit, err
}

// Run steps until the quit key exits the root screen, the platform stops
// or ctx is cancelled.
func (c *Context) Run(ctx context.Context) error {
	c.Logger.Infof("loop", "frame loop started")
	defer c.Logger.Infof("loop", "frame loop stopped after %d ticks", c.ticks)

	lastLog := time.Now()
	for c.Platform.Running() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		exit, err := c.Step()
		if err != nil {
			if !c.Platform.Running() {
				return nil
			}
			return fmt.Errorf("tick %d: %w", c.ticks, err)
		}
		if exit {
			return nil
		}

		if time.Since(lastLog) > time.Second {
			c.Logger.Infof("loop", "heartbeat, ticks=%d depth=%d", c.ticks, c.Stack.Len())
			lastLog = time.Now()
		}
	}
	return nil
}
