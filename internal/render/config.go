package render

import "image/color"

// Surface geometry of the handheld. The off-screen chop surface is the
// scratch target for windowed text.
const (
	TopWidth      = 400
	BottomWidth   = 320
	SurfaceHeight = 240

	ChopWidth  = 512
	ChopHeight = 256
)

// Palette shared by the compositor and screens.
var (
	ColorBlack     = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	ColorWhite     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	ColorGrey      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF}
	ColorYellow    = color.RGBA{R: 0xFF, G: 0xDC, B: 0x00, A: 0xFF}
	ColorLineBlue  = color.RGBA{R: 0x1E, G: 0x28, B: 0x6E, A: 0xFF}
	ColorSelector  = color.RGBA{R: 0x9A, G: 0xB5, B: 0xF8, A: 0xFF}
	ColorDarkBlue  = color.RGBA{R: 0x1A, G: 0x23, B: 0x7E, A: 0xFF}
	ColorMidBlue   = color.RGBA{R: 0x28, G: 0x35, B: 0x93, A: 0xFF}
	ColorHeaderBar = color.RGBA{R: 0x0F, G: 0x16, B: 0x59, A: 0xFF}

	// ColorMaskBlack is premultiplied black at ~75% opacity.
	ColorMaskBlack = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xBE}
)

// Font scales relative to the shaper's base point size.
const (
	FontSize9  = 0.6
	FontSize11 = 0.73
	FontSize12 = 0.8
	FontSize15 = 1.0
	FontSize18 = 1.2
)
