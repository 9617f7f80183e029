package gui

import (
	"image/color"
	"math"

	"github.com/rook-computer/pocketedit/internal/render"
)

// Waver oscillates an alpha value between 255 and 155, one step per call.
type Waver struct {
	amount uint8
	rising bool
}

func NewWaver() Waver { return Waver{amount: 255} }

func (w *Waver) Next() uint8 {
	// zero value starts at full opacity
	if w.amount == 0 {
		w.amount = 255
	}
	if w.rising {
		w.amount++
		if w.amount == 255 {
			w.rising = false
		}
	} else {
		w.amount--
		if w.amount < 155 {
			w.rising = true
		}
	}
	return w.amount
}

// Bob yields a small 0..3 offset that moves a list pointer up and down.
type Bob struct {
	current int
	down    bool
}

func (b *Bob) Next() int {
	if !b.down {
		b.current++
		if b.current >= 12 {
			b.down = true
		}
	} else {
		b.current--
		if b.current <= 0 {
			b.down = false
		}
	}
	return b.current / 4
}

const selectorSize = 50

// Selector draws the pulsing highlight box used by grid screens.
type Selector struct {
	timer float64
}

// Draw paints the 50x50 highlight at (x, y) and advances the pulse.
func (s *Selector) Draw(r *render.Renderer, x, y int) {
	const w = 2
	col := s.color()
	r.DrawSolidRect(x, y, selectorSize, selectorSize, color.NRGBA{R: 255, G: 255, B: 255, A: 100})
	r.DrawSolidRect(x, y, selectorSize, w, col)
	r.DrawSolidRect(x, y+w, w, selectorSize-2*w, col)
	r.DrawSolidRect(x+selectorSize-w, y+w, w, selectorSize-2*w, col)
	r.DrawSolidRect(x, y+selectorSize-w, selectorSize, w, col)
	s.timer += .025
}

func (s *Selector) color() color.RGBA {
	k := math.Max(0, math.Abs(math.Mod(s.timer, 1)-0.5)/0.5)
	base := render.ColorSelector
	mix := func(v uint8) uint8 { return uint8(float64(v) + float64(255-v)*k) }
	return color.RGBA{R: mix(base.R), G: mix(base.G), B: mix(base.B), A: 255}
}
