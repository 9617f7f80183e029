package gui

import (
	"testing"

	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesWithoutOverlay(t *testing.T) {
	var log []string
	for _, caps := range [][3]bool{{true, false, false}, {false, true, false}, {false, false, true}} {
		s := newRecorder("A", &log)
		s.handlesInput, s.replacesTop, s.replacesBottom = caps[0], caps[1], caps[2]
		r := NewReplaceable(s)
		assert.Equal(t, caps[0], r.HandlesInput())
		assert.Equal(t, caps[1], r.ReplacesTop())
		assert.Equal(t, caps[2], r.ReplacesBottom())
	}
}

func TestCapabilitiesResolveToDeepestOverlay(t *testing.T) {
	var log []string
	base := newRecorder("A", &log)
	base.replacesTop = true

	mid := newRecorder("O", &log)
	mid.handlesInput = false
	mid.replacesBottom = true

	deep := newRecorder("P", &log)
	deep.handlesInput = true

	r := NewReplaceable(base)
	o := r.AddOverlay(mid)
	assert.False(t, r.HandlesInput())
	assert.False(t, r.ReplacesTop())
	assert.True(t, r.ReplacesBottom())

	o.AddOverlay(deep)
	assert.True(t, r.HandlesInput())
	assert.False(t, r.ReplacesTop())
	assert.False(t, r.ReplacesBottom())
	assert.Equal(t, 2, r.Depth())
}

func TestDrawIsAdditive(t *testing.T) {
	var log []string
	r := NewReplaceable(newRecorder("A", &log))
	o := r.AddOverlay(newRecorder("O", &log))
	o.AddOverlay(newRecorder("P", &log))

	r.DrawTop(nil)
	r.DrawBottom(nil)
	assert.Equal(t, []string{
		"A.DrawTop", "O.DrawTop", "P.DrawTop",
		"A.DrawBottom", "O.DrawBottom", "P.DrawBottom",
	}, log)
}

func TestOverlayReplacesOneSurface(t *testing.T) {
	var log []string
	r := NewReplaceable(newRecorder("A", &log))
	o := newRecorder("O", &log)
	o.replacesTop = true
	r.AddOverlay(o)

	r.DrawTop(nil)
	r.DrawBottom(nil)
	assert.Equal(t, []string{"O.DrawTop", "A.DrawBottom", "O.DrawBottom"}, log)
}

func TestInputIsExclusive(t *testing.T) {
	var log []string
	r := NewReplaceable(newRecorder("A", &log))
	o := newRecorder("O", &log)
	r.AddOverlay(o)

	r.Update(nil, input.Press(input.KeyA))
	assert.Equal(t, []string{"O.Update"}, log)

	log = nil
	o.handlesInput = false
	r.Update(nil, input.Press(input.KeyA))
	assert.Equal(t, []string{"A.Update"}, log)
}

func TestAddOverlayDisposesReplaced(t *testing.T) {
	var log []string
	r := NewReplaceable(newRecorder("A", &log))
	first := newRecorder("O1", &log)
	nested := newRecorder("N", &log)
	r.AddOverlay(first).AddOverlay(nested)

	second := newRecorder("O2", &log)
	r.AddOverlay(second)
	assert.True(t, first.disposed)
	assert.True(t, nested.disposed)
	assert.False(t, second.disposed)
	assert.Equal(t, 1, r.Depth())
}

func TestOverlayCloseItself(t *testing.T) {
	var log []string
	base := newRecorder("A", &log)
	r := NewReplaceable(base)
	o := newRecorder("O", &log)
	o.onUpdate = func(*Context, input.State) { o.Close() }
	r.AddOverlay(o)

	r.Update(nil, input.State{})
	assert.Nil(t, r.Overlay())
	assert.True(t, o.disposed)

	// Closing the root node is a no-op.
	base.Close()
	assert.Same(t, r, base.Wrapper())
}

func TestAddOverlayRejectsCycles(t *testing.T) {
	var log []string
	r := NewReplaceable(newRecorder("A", &log))
	o := r.AddOverlay(newRecorder("O", &log))

	assert.Panics(t, func() { o.AddOverlay(r) })
	assert.Panics(t, func() { r.AddOverlay(r) })
	assert.Panics(t, func() { NewReplaceable(newRecorder("B", &log)).AddOverlay(o) })
}

func TestInstructionsFollowOverlay(t *testing.T) {
	var log []string
	base := newRecorder("A", &log)
	base.help = NewInstructions().AddText(render.Top, "help", 0, 0, render.TextStyle{})
	r := NewReplaceable(base)
	assert.False(t, r.Instructions().Empty())

	r.AddOverlay(newRecorder("O", &log))
	assert.True(t, r.Instructions().Empty())
}
