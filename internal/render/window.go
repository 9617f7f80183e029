package render

import (
	"image"
	"image/draw"

	"github.com/rook-computer/pocketedit/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// ScrollingText draws str into a field width pixels wide at (x, y),
// shifting it left a little every tick and parking it at both ends.
// Progress is kept in the scroll registry keyed by str.
func (r *Renderer) ScrollingText(str string, x, y int, style TextStyle, width int) {
	t := r.ParseText(str, style.scale(), 0)
	entry := r.Scroll.Entry(str)
	r.drawWindow(t, x, y, style, width, -entry.Pixels())
	entry.Advance(width, t.MaxLineWidth)
}

// SlicedText draws the first width pixels of str at (x, y). It rewinds
// the scroll entry for str every call.
func (r *Renderer) SlicedText(str string, x, y int, style TextStyle, width int) {
	t := r.ParseText(str, style.scale(), 0)
	r.drawWindow(t, x, y, style, width, 0)
	r.Scroll.Rewind(str)
}

// drawWindow renders t into the next free chop row, then copies a
// width-wide window of that row onto the current surface.
func (r *Renderer) drawWindow(t *Text, x, y int, style TextStyle, width, offsetX int) {
	r.FlushText()
	y = anchorY(y, t, style.AlignY)

	chop := r.Canvas.Chop()
	row := r.cursor
	r.cursor += t.LineHeight

	band := layout.Clamp(image.Rect(0, row, ChopWidth, row+t.LineHeight), chop.Bounds())
	if band.Empty() {
		return
	}
	bandImg := chop.SubImage(band).(*image.RGBA)
	draw.Draw(bandImg, band, image.Transparent, image.Point{}, draw.Src)
	r.Shaper.Draw(bandImg, t, offsetX, row, style.AlignX, style.color())

	src := layout.Clamp(image.Rect(0, row, width, row+t.LineHeight), band)
	if src.Empty() {
		return
	}
	xdraw.Copy(r.Canvas.Image(r.target), image.Pt(x, y), chop, src, xdraw.Over, nil)
}
