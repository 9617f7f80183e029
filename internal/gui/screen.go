// Package gui composites a stack of screens onto the two display surfaces
// and drives them once per tick.
package gui

import "github.com/rook-computer/pocketedit/internal/input"

// Screen is one drawable, updatable unit. DrawTop and DrawBottom paint the
// currently targeted surface and must not change screen state.
type Screen interface {
	DrawTop(c *Context)
	DrawBottom(c *Context)
	Update(c *Context, in input.State)

	// HandlesInput reports whether the screen wants this tick's input when
	// it is attached as an overlay.
	HandlesInput() bool
	// ReplacesTop and ReplacesBottom report whether the screen, attached as
	// an overlay, suppresses its parent's drawing on that surface.
	ReplacesTop() bool
	ReplacesBottom() bool
}

// Instructor is implemented by screens that provide help shown while the
// help key is held.
type Instructor interface {
	Instructions() *Instructions
}

// Disposer is implemented by screens holding resources to release when
// they are popped or detached.
type Disposer interface {
	Dispose()
}

// Attacher is implemented by screens that need their delegation node, for
// example to attach or close overlays. Embedding Node provides it.
type Attacher interface {
	Attached(r *Replaceable)
}

// Base provides the default capabilities: input is handled and nothing is
// replaced.
type Base struct{}

func (Base) HandlesInput() bool   { return true }
func (Base) ReplacesTop() bool    { return false }
func (Base) ReplacesBottom() bool { return false }

// Node links a screen to the wrapper that delegates to it.
type Node struct {
	node *Replaceable
}

func (n *Node) Attached(r *Replaceable) { n.node = r }

// Wrapper returns the delegation node, or nil before the screen was wrapped.
func (n *Node) Wrapper() *Replaceable { return n.node }

// AddOverlay attaches s on top of this screen.
func (n *Node) AddOverlay(s Screen) *Replaceable {
	if n.node == nil {
		panic("gui: AddOverlay on a screen that is not wrapped")
	}
	return n.node.AddOverlay(s)
}

// Close detaches this screen from its parent. It is a no-op for a screen
// that is not attached as an overlay.
func (n *Node) Close() {
	if n.node != nil {
		n.node.Close()
	}
}
