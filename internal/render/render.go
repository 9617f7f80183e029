package render

import (
	"image/color"

	"github.com/rook-computer/pocketedit/internal/render/layout"
)

// Logger is satisfied by app.Logger.
type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

type queuedText struct {
	text  *Text
	x, y  int
	align TextPosX
	color color.Color
}

// Renderer draws onto whichever surface was last selected with Target.
// Plain text is queued per surface and drawn by FlushText; every other
// primitive flushes the queue first so painter's order holds.
type Renderer struct {
	Canvas *Canvas
	Shaper Shaper
	Scroll *ScrollRegistry
	Logger Logger

	target Surface
	queues [2][]queuedText
	cursor int
}

func NewRenderer(shaper Shaper) *Renderer {
	if shaper == nil {
		shaper = NewFontShaper(BasicFaces())
	}
	return &Renderer{
		Canvas: NewCanvas(),
		Shaper: shaper,
		Scroll: NewScrollRegistry(),
	}
}

// Target selects the surface for subsequent drawing and discards any text
// still queued for it.
func (r *Renderer) Target(s Surface) {
	r.target = s
	r.queues[s] = r.queues[s][:0]
}

// Current returns the selected surface.
func (r *Renderer) Current() Surface { return r.target }

// BeginFrame clears both surfaces and the chop surface and rewinds the
// vertical text cursor.
func (r *Renderer) BeginFrame() {
	r.Canvas.Clear(Top, ColorBlack)
	r.Canvas.Clear(Bottom, ColorBlack)
	r.Canvas.ClearChop()
	r.queues[Top] = r.queues[Top][:0]
	r.queues[Bottom] = r.queues[Bottom][:0]
	r.ResetCursor()
}

// ResetCursor rewinds the vertical text cursor to the first chop row.
func (r *Renderer) ResetCursor() { r.cursor = 0 }

// Cursor returns the chop row the next windowed text will use.
func (r *Renderer) Cursor() int { return r.cursor }

// ParseText shapes str, wrapping at maxWidth when it is positive.
func (r *Renderer) ParseText(str string, scale float64, maxWidth int) *Text {
	return r.Shaper.Shape(str, scale, maxWidth)
}

// anchorY applies the vertical anchoring policy shared by every text variant.
func anchorY(y int, t *Text, pos TextPosY) int {
	return layout.Align(y, t.Height(), pos.anchor())
}

// DrawText queues shaped text on the current surface.
func (r *Renderer) DrawText(t *Text, x, y int, style TextStyle) {
	r.queues[r.target] = append(r.queues[r.target], queuedText{
		text:  t,
		x:     x,
		y:     anchorY(y, t, style.AlignY),
		align: style.AlignX,
		color: style.color(),
	})
}

// Text shapes and queues str on the current surface.
func (r *Renderer) Text(str string, x, y int, style TextStyle) {
	r.DrawText(r.ParseText(str, style.scale(), style.MaxWidth), x, y, style)
}

// Pending reports how many text runs are queued on the current surface.
func (r *Renderer) Pending() int { return len(r.queues[r.target]) }

// FlushText draws the queued text of the current surface.
func (r *Renderer) FlushText() {
	queue := r.queues[r.target]
	if len(queue) == 0 {
		return
	}
	dst := r.Canvas.Image(r.target)
	for _, q := range queue {
		r.Shaper.Draw(dst, q.text, q.x, q.y, q.align, q.color)
	}
	r.queues[r.target] = queue[:0]
}
