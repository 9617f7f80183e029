package render

import (
	"image"
	"image/color"
	"image/draw"
)

// Surface selects one of the two physical displays.
type Surface int

const (
	Top Surface = iota
	Bottom
)

func (s Surface) String() string {
	if s == Bottom {
		return "bottom"
	}
	return "top"
}

// Canvas holds the pixel storage for both displays and the off-screen
// chop surface.
type Canvas struct {
	top    *image.RGBA
	bottom *image.RGBA
	chop   *image.RGBA
}

func NewCanvas() *Canvas {
	return &Canvas{
		top:    image.NewRGBA(image.Rect(0, 0, TopWidth, SurfaceHeight)),
		bottom: image.NewRGBA(image.Rect(0, 0, BottomWidth, SurfaceHeight)),
		chop:   image.NewRGBA(image.Rect(0, 0, ChopWidth, ChopHeight)),
	}
}

// Image returns the backing image of surface s.
func (c *Canvas) Image(s Surface) *image.RGBA {
	if s == Bottom {
		return c.bottom
	}
	return c.top
}

// Chop returns the off-screen surface used for windowed text.
func (c *Canvas) Chop() *image.RGBA { return c.chop }

// Clear fills surface s with col.
func (c *Canvas) Clear(s Surface, col color.Color) {
	img := c.Image(s)
	draw.Draw(img, img.Bounds(), &image.Uniform{C: col}, image.Point{}, draw.Src)
}

// ClearChop makes the whole chop surface transparent.
func (c *Canvas) ClearChop() {
	draw.Draw(c.chop, c.chop.Bounds(), image.Transparent, image.Point{}, draw.Src)
}
