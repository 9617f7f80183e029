package layout

import "image"

// Anchor selects which edge of a span a coordinate refers to.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorCenter
	AnchorEnd
)

// Align returns the start coordinate of a span of length extent whose
// anchor point sits at pos.
func Align(pos, extent int, anchor Anchor) int {
	switch anchor {
	case AnchorCenter:
		return pos - extent/2
	case AnchorEnd:
		return pos - extent
	default:
		return pos
	}
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// Clamp limits rect to bounds. The result may be empty.
func Clamp(rect, bounds image.Rectangle) image.Rectangle {
	return Normalize(rect).Intersect(bounds)
}

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Columns splits rect into n equal-width columns; the last one absorbs the remainder.
func Columns(rect image.Rectangle, n int) []image.Rectangle {
	rect = Normalize(rect)
	if n <= 0 {
		return nil
	}
	width := rect.Dx() / n
	cols := make([]image.Rectangle, n)
	for i := range cols {
		minX := rect.Min.X + i*width
		maxX := minX + width
		if i == n-1 {
			maxX = rect.Max.X
		}
		cols[i] = image.Rect(minX, rect.Min.Y, maxX, rect.Max.Y)
	}
	return cols
}

// Rows returns the rectangle of row index i when rect is cut into rows of rowHeight.
func Rows(rect image.Rectangle, rowHeight, i int) image.Rectangle {
	rect = Normalize(rect)
	minY := rect.Min.Y + i*rowHeight
	return Clamp(image.Rect(rect.Min.X, minY, rect.Max.X, minY+rowHeight), rect)
}

// Center returns a rectangle of size (widthPx,heightPx) centered in rect.
// The size is clamped to rect.
func Center(rect image.Rectangle, widthPx, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	if widthPx > rect.Dx() {
		widthPx = rect.Dx()
	}
	if heightPx > rect.Dy() {
		heightPx = rect.Dy()
	}
	if widthPx < 0 {
		widthPx = 0
	}
	if heightPx < 0 {
		heightPx = 0
	}
	minX := rect.Min.X + (rect.Dx()-widthPx)/2
	minY := rect.Min.Y + (rect.Dy()-heightPx)/2
	return image.Rect(minX, minY, minX+widthPx, minY+heightPx)
}
