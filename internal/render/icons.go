package render

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// HomeBlockedIcon draws the "home button unavailable" badge: a white disc
// crossed by a red bar.
func HomeBlockedIcon(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float32(size)

	z := vector.NewRasterizer(size, size)
	disc(z, s/2, s/2, s/2)
	z.Draw(img, img.Bounds(), image.NewUniform(ColorWhite), image.Point{})

	z.Reset(size, size)
	disc(z, s/2, s/2, s/2-s/10)
	z.Draw(img, img.Bounds(), image.NewUniform(ColorDarkBlue), image.Point{})

	z.Reset(size, size)
	bar := s / 8
	z.MoveTo(s*0.2, s*0.2+bar)
	z.LineTo(s*0.2+bar, s*0.2)
	z.LineTo(s*0.8, s*0.8-bar)
	z.LineTo(s*0.8-bar, s*0.8)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(color.RGBA{R: 0xE0, G: 0x20, B: 0x20, A: 0xFF}), image.Point{})
	return img
}

func disc(z *vector.Rasterizer, cx, cy, rad float32) {
	// Four cubic arcs; k is the standard circle approximation constant.
	const k = 0.5523
	z.MoveTo(cx+rad, cy)
	z.CubeTo(cx+rad, cy+rad*k, cx+rad*k, cy+rad, cx, cy+rad)
	z.CubeTo(cx-rad*k, cy+rad, cx-rad, cy+rad*k, cx-rad, cy)
	z.CubeTo(cx-rad, cy-rad*k, cx-rad*k, cy-rad, cx, cy-rad)
	z.CubeTo(cx+rad*k, cy-rad, cx+rad, cy-rad*k, cx+rad, cy)
	z.ClosePath()
}
