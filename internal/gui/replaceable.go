package gui

import (
	"github.com/rook-computer/pocketedit/internal/input"
)

// Replaceable wraps a base screen and at most one overlay, itself a
// Replaceable, so overlays nest into a linked chain. Drawing is additive
// from the base up; input goes to the deepest overlay that claims it.
type Replaceable struct {
	base    Screen
	overlay *Replaceable
	parent  *Replaceable
}

// NewReplaceable wraps base in a fresh delegation node.
func NewReplaceable(base Screen) *Replaceable {
	if base == nil {
		panic("gui: nil screen")
	}
	if _, ok := base.(*Replaceable); ok {
		panic("gui: cannot wrap a Replaceable")
	}
	r := &Replaceable{base: base}
	if a, ok := base.(Attacher); ok {
		a.Attached(r)
	}
	return r
}

// Wrap returns s itself when it already is a Replaceable, else a new wrapper.
func Wrap(s Screen) *Replaceable {
	if r, ok := s.(*Replaceable); ok {
		return r
	}
	return NewReplaceable(s)
}

func (r *Replaceable) Base() Screen { return r.base }

// Overlay returns the attached overlay or nil.
func (r *Replaceable) Overlay() *Replaceable { return r.overlay }

// Parent returns the node this one is attached to, or nil.
func (r *Replaceable) Parent() *Replaceable { return r.parent }

// Depth counts the overlays attached below r.
func (r *Replaceable) Depth() int {
	n := 0
	for o := r.overlay; o != nil; o = o.overlay {
		n++
	}
	return n
}

// AddOverlay attaches s, disposing any overlay it replaces. Attaching a node
// that already has a parent, or one of r's own ancestors, panics.
func (r *Replaceable) AddOverlay(s Screen) *Replaceable {
	o := Wrap(s)
	if o.parent != nil {
		panic("gui: overlay already attached")
	}
	for p := r; p != nil; p = p.parent {
		if p == o {
			panic("gui: overlay would create a cycle")
		}
	}
	if r.overlay != nil {
		r.overlay.dispose()
	}
	o.parent = r
	r.overlay = o
	return o
}

// RemoveOverlay detaches and disposes the overlay chain below r.
func (r *Replaceable) RemoveOverlay() {
	if r.overlay == nil {
		return
	}
	o := r.overlay
	r.overlay = nil
	o.dispose()
}

// Close detaches r from its parent.
func (r *Replaceable) Close() {
	if r.parent != nil && r.parent.overlay == r {
		r.parent.RemoveOverlay()
	}
}

func (r *Replaceable) dispose() {
	if r.overlay != nil {
		r.overlay.dispose()
		r.overlay = nil
	}
	r.parent = nil
	if d, ok := r.base.(Disposer); ok {
		d.Dispose()
	}
}

// Dispose releases the base screen and every attached overlay.
func (r *Replaceable) Dispose() { r.dispose() }

func (r *Replaceable) DrawTop(c *Context) {
	if r.overlay != nil {
		if !r.overlay.ReplacesTop() {
			r.base.DrawTop(c)
		}
		r.overlay.DrawTop(c)
		return
	}
	r.base.DrawTop(c)
}

func (r *Replaceable) DrawBottom(c *Context) {
	if r.overlay != nil {
		if !r.overlay.ReplacesBottom() {
			r.base.DrawBottom(c)
		}
		r.overlay.DrawBottom(c)
		return
	}
	r.base.DrawBottom(c)
}

func (r *Replaceable) Update(c *Context, in input.State) {
	if r.overlay != nil && r.overlay.HandlesInput() {
		r.overlay.Update(c, in)
		return
	}
	r.base.Update(c, in)
}

func (r *Replaceable) HandlesInput() bool {
	if r.overlay != nil {
		return r.overlay.HandlesInput()
	}
	return r.base.HandlesInput()
}

func (r *Replaceable) ReplacesTop() bool {
	if r.overlay != nil {
		return r.overlay.ReplacesTop()
	}
	return r.base.ReplacesTop()
}

func (r *Replaceable) ReplacesBottom() bool {
	if r.overlay != nil {
		return r.overlay.ReplacesBottom()
	}
	return r.base.ReplacesBottom()
}

// Instructions resolves through the chain like the capabilities do: the
// deepest overlay's help wins.
func (r *Replaceable) Instructions() *Instructions {
	if r.overlay != nil {
		return r.overlay.Instructions()
	}
	if i, ok := r.base.(Instructor); ok {
		return i.Instructions()
	}
	return nil
}
