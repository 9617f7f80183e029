package gui

import (
	"image/color"
	"testing"

	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHomeIndicatorFade(t *testing.T) {
	r := render.NewRenderer(nil)
	r.BeginFrame()
	r.Target(render.Bottom)

	h := NewHomeIndicator()
	h.Draw(r)
	assert.Equal(t, 0.0, h.Alpha())

	h.Trigger()
	assert.Equal(t, 1.0, h.Alpha())
	h.Draw(r)
	assert.InDelta(t, 0.999, h.Alpha(), 1e-9)
	h.Draw(r)
	assert.InDelta(t, 0.997, h.Alpha(), 1e-9)
	h.Draw(r)
	assert.InDelta(t, 0.994, h.Alpha(), 1e-9)

	center := r.Canvas.Image(render.Bottom).RGBAAt(HomeIconOrigin.X+homeIconSize/2, HomeIconOrigin.Y+homeIconSize/2)
	assert.NotEqual(t, render.ColorBlack, center)
}

func TestHomeIndicatorFadesOut(t *testing.T) {
	r := render.NewRenderer(nil)
	r.BeginFrame()
	h := NewHomeIndicator()
	h.Trigger()
	draws := 0
	for h.Alpha() > 0 {
		h.Draw(r)
		draws++
		require.Less(t, draws, 100)
	}
	// alpha after n draws is 1 - 0.001*n*(n+1)/2
	assert.Equal(t, 45, draws)
}

func TestHomeBlockedInputTriggersIndicator(t *testing.T) {
	var log []string
	c, _ := newTestContext(t, input.State{HomeBlocked: true})
	c.Stack.Push(newRecorder("A", &log))
	_, err := c.Step()
	require.NoError(t, err)
	assert.InDelta(t, 0.999, c.Home.Alpha(), 1e-9)
}

func TestWaverOscillates(t *testing.T) {
	w := NewWaver()
	assert.Equal(t, uint8(254), w.Next())
	var v uint8
	for i := 0; i < 100; i++ {
		v = w.Next()
	}
	assert.Equal(t, uint8(154), v)
	assert.Equal(t, uint8(155), w.Next())

	var zero Waver
	assert.Equal(t, uint8(254), zero.Next())
}

func TestBobCycles(t *testing.T) {
	var b Bob
	var seq []int
	for i := 0; i < 24; i++ {
		seq = append(seq, b.Next())
	}
	assert.Equal(t, 3, seq[11])
	assert.Equal(t, 0, seq[23])
	assert.Equal(t, 0, seq[0])
}

func TestSelectorDrawsFrame(t *testing.T) {
	r := render.NewRenderer(nil)
	r.BeginFrame()
	var s Selector
	s.Draw(r, 10, 10)
	img := r.Canvas.Image(r.Current())
	edge := img.RGBAAt(10, 10)
	assert.Equal(t, uint8(255), edge.A)
	assert.NotEqual(t, color.RGBA{A: 255}, edge)
}
