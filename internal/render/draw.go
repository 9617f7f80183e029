package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// DrawSolidRect fills a w x h rectangle at (x, y), blending by alpha.
func (r *Renderer) DrawSolidRect(x, y, w, h int, col color.Color) {
	r.FlushText()
	dst := r.Canvas.Image(r.target)
	draw.Draw(dst, image.Rect(x, y, x+w, y+h), &image.Uniform{C: col}, image.Point{}, draw.Over)
}

// DrawImage draws img with its top-left corner at (x, y) and the given
// opacity in [0, 1].
func (r *Renderer) DrawImage(img image.Image, x, y int, alpha float64) {
	if img == nil || alpha <= 0 {
		return
	}
	r.FlushText()
	dst := r.Canvas.Image(r.target)
	b := img.Bounds()
	dr := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	if alpha >= 1 {
		draw.Draw(dst, dr, img, b.Min, draw.Over)
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(alpha * 0xFF)})
	draw.DrawMask(dst, dr, img, b.Min, mask, image.Point{}, draw.Over)
}

// DrawImageScaled draws img scaled into the w x h rectangle at (x, y).
func (r *Renderer) DrawImageScaled(img image.Image, x, y, w, h int) {
	if img == nil {
		return
	}
	r.FlushText()
	xdraw.NearestNeighbor.Scale(r.Canvas.Image(r.target), image.Rect(x, y, x+w, y+h), img, img.Bounds(), xdraw.Over, nil)
}

func (r *Renderer) fillPath(col color.Color, build func(z *vector.Rasterizer)) {
	r.FlushText()
	dst := r.Canvas.Image(r.target)
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	build(z)
	z.Draw(dst, b, image.NewUniform(col), image.Point{})
}

// DrawSolidTriangle fills the triangle through the three points.
func (r *Renderer) DrawSolidTriangle(x1, y1, x2, y2, x3, y3 float32, col color.Color) {
	r.fillPath(col, func(z *vector.Rasterizer) {
		z.MoveTo(x1, y1)
		z.LineTo(x2, y2)
		z.LineTo(x3, y3)
		z.ClosePath()
	})
}

// DrawLine draws a line of the given width as a quad of two triangles.
func (r *Renderer) DrawLine(x1, y1, x2, y2, width float32, col color.Color) {
	angle := math.Atan2(float64(y2-y1), float64(x2-x1)) + math.Pi/2
	dy := width / 2 * float32(math.Sin(angle))
	dx := width / 2 * float32(math.Cos(angle))
	r.fillPath(col, func(z *vector.Rasterizer) {
		z.MoveTo(x1-dx, y1-dy)
		z.LineTo(x1+dx, y1+dy)
		z.LineTo(x2+dx, y2+dy)
		z.LineTo(x2-dx, y2-dy)
		z.ClosePath()
	})
}

// DrawSolidCircle fills a circle of radius rad centered at (x, y).
func (r *Renderer) DrawSolidCircle(x, y, rad float32, col color.Color) {
	r.fillPath(col, func(z *vector.Rasterizer) {
		const segments = 32
		for i := 0; i <= segments; i++ {
			a := 2 * math.Pi * float64(i) / segments
			px := x + rad*float32(math.Cos(a))
			py := y + rad*float32(math.Sin(a))
			if i == 0 {
				z.MoveTo(px, py)
			} else {
				z.LineTo(px, py)
			}
		}
		z.ClosePath()
	})
}

// Dim masks the whole current surface.
func (r *Renderer) Dim() {
	b := r.Canvas.Image(r.target).Bounds()
	r.DrawSolidRect(0, 0, b.Dx(), b.Dy(), ColorMaskBlack)
}

// BackgroundTop paints the standard top surface backdrop.
func (r *Renderer) BackgroundTop(stripes bool) {
	r.DrawSolidRect(0, 0, TopWidth, SurfaceHeight, ColorDarkBlue)
	if stripes {
		for x := -SurfaceHeight; x < TopWidth; x += 7 {
			r.DrawLine(float32(x), SurfaceHeight, float32(x+SurfaceHeight), 0, 2, ColorLineBlue)
		}
	}
	r.DrawSolidRect(0, 0, TopWidth, 25, ColorHeaderBar)
}

// BackgroundBottom paints the standard bottom surface backdrop.
func (r *Renderer) BackgroundBottom(stripes bool) {
	r.DrawSolidRect(0, 0, BottomWidth, SurfaceHeight, ColorMidBlue)
	if stripes {
		for x := -SurfaceHeight; x < BottomWidth; x += 7 {
			r.DrawLine(float32(x), 0, float32(x+SurfaceHeight), SurfaceHeight, 2, ColorLineBlue)
		}
	}
	r.DrawSolidRect(0, 220, BottomWidth, 20, ColorDarkBlue)
}
