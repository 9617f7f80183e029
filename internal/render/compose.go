package render

import (
	"image"
	"image/draw"

	xdraw "golang.org/x/image/draw"
)

// Composite geometry: the top surface above, the bottom surface centered
// under it.
const (
	CompositeWidth  = TopWidth
	CompositeHeight = SurfaceHeight * 2
)

// BottomOrigin is where the bottom surface lands in the composite.
var BottomOrigin = image.Pt((TopWidth-BottomWidth)/2, SurfaceHeight)

// Compose stacks both surfaces into dst, allocating it when nil or the
// wrong size.
func Compose(dst *image.RGBA, top, bottom *image.RGBA) *image.RGBA {
	bounds := image.Rect(0, 0, CompositeWidth, CompositeHeight)
	if dst == nil || dst.Bounds() != bounds {
		dst = image.NewRGBA(bounds)
	}
	draw.Draw(dst, bounds, image.Black, image.Point{}, draw.Src)
	draw.Draw(dst, top.Bounds(), top, image.Point{}, draw.Src)
	draw.Draw(dst, bottom.Bounds().Add(BottomOrigin), bottom, image.Point{}, draw.Src)
	return dst
}

// ScaleInto nearest-neighbor scales src over the whole of dst.
func ScaleInto(dst draw.Image, src image.Image) {
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
}

// BottomPoint converts a composite coordinate into bottom surface space.
// ok is false when p falls outside the bottom surface.
func BottomPoint(p image.Point) (image.Point, bool) {
	q := p.Sub(BottomOrigin)
	return q, q.In(image.Rect(0, 0, BottomWidth, SurfaceHeight))
}
