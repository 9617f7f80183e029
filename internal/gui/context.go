package gui

import (
	"image"

	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
)

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type noopLogger struct{}

func (noopLogger) Infof(string, string, ...interface{})  {}
func (noopLogger) Errorf(string, string, ...interface{}) {}

// Platform is what the frame loop needs from the device: one input state
// per tick and somewhere to submit finished frames.
type Platform interface {
	Running() bool
	Poll() input.State
	Present(top, bottom *image.RGBA) error
}

// Context holds every piece of compositor state and is passed to all draw
// and update calls. Drawing methods come from the embedded Renderer.
type Context struct {
	*render.Renderer

	Stack    *Stack
	Platform Platform
	Logger   Logger

	// HelpKey shows the active screen's instructions while held; QuitKey
	// exits when pressed on the root screen.
	HelpKey input.Keys
	QuitKey input.Keys

	Home     HomeIndicator
	Waver    Waver
	Bob      Bob
	Selector Selector

	frame FrameScope
	input input.State
	ticks uint64
}

func NewContext(r *render.Renderer, p Platform, logger Logger) *Context {
	if logger == nil {
		logger = noopLogger{}
	}
	if r.Logger == nil {
		r.Logger = logger
	}
	return &Context{
		Renderer: r,
		Stack:    &Stack{Logger: logger},
		Platform: p,
		Logger:   logger,
		HelpKey:  input.KeySelect,
		QuitKey:  input.KeyStart,
		Home:     NewHomeIndicator(),
		Waver:    NewWaver(),
	}
}

// Input returns the state polled for the current tick.
func (c *Context) Input() input.State { return c.input }

// Ticks counts polled ticks, modal ones included.
func (c *Context) Ticks() uint64 { return c.ticks }

// InFrame reports whether a frame scope is open.
func (c *Context) InFrame() bool { return c.frame.Open() }

// BeginFrame opens a frame scope with both surfaces cleared.
func (c *Context) BeginFrame() {
	c.frame.Begin()
	c.Renderer.BeginFrame()
}

// EndFrame flushes pending text on the current surface, closes the scope
// and submits both surfaces.
func (c *Context) EndFrame() error {
	c.FlushText()
	c.frame.End()
	return c.Platform.Present(c.Canvas.Image(render.Top), c.Canvas.Image(render.Bottom))
}

// Back pops the active screen.
func (c *Context) Back() error { return c.Stack.Pop() }

func (c *Context) poll() input.State {
	c.input = c.Platform.Poll()
	c.ticks++
	return c.input
}

// drawHome latches a refused home request and draws the fading badge on
// the bottom surface.
func (c *Context) drawHome(in input.State) {
	if in.HomeBlocked {
		c.Home.Trigger()
	}
	c.Home.Draw(c.Renderer)
}
