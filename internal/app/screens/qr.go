package screens

import (
	"image"

	"github.com/rook-computer/pocketedit/internal/gui"
	"github.com/rook-computer/pocketedit/internal/input"
	"github.com/rook-computer/pocketedit/internal/render"
	"github.com/rook-computer/pocketedit/internal/render/layout"
)

const qrDisplaySize = 180

// QROverlay shows a payload as a QR code on the bottom surface until A or
// B is pressed.
type QROverlay struct {
	gui.Node

	Payload string

	img image.Image
	err error
}

func NewQROverlay(payload string) *QROverlay {
	o := &QROverlay{Payload: payload}
	o.img, o.err = render.QRCodeImage(payload, render.QRSize, render.ColorBlack, render.ColorWhite)
	return o
}

// Image returns the encoded code, nil if encoding failed.
func (o *QROverlay) Image() image.Image { return o.img }

func (o *QROverlay) HandlesInput() bool   { return true }
func (o *QROverlay) ReplacesTop() bool    { return false }
func (o *QROverlay) ReplacesBottom() bool { return true }

func (o *QROverlay) DrawTop(c *gui.Context) {
	c.Dim()
	c.Text("Scan to copy the save path", render.TopWidth/2, 100, render.TextStyle{Scale: render.FontSize15, AlignX: render.TextCenter})
	c.ScrollingText(o.Payload, 40, 130, render.TextStyle{Scale: render.FontSize11}, render.TopWidth-80)
}

func (o *QROverlay) DrawBottom(c *gui.Context) {
	c.BackgroundBottom(false)
	if o.err != nil || o.img == nil {
		c.Text("Could not encode path", render.BottomWidth/2, 110, render.TextStyle{AlignX: render.TextCenter, Color: render.ColorYellow})
		return
	}
	r := qrRect()
	c.DrawImageScaled(o.img, r.Min.X, r.Min.Y, r.Dx(), r.Dy())
}

func (o *QROverlay) Update(c *gui.Context, in input.State) {
	if in.Pressed(input.KeyA) || in.Pressed(input.KeyB) {
		o.Close()
	}
}

// qrRect centers the code above the bottom bar.
func qrRect() image.Rectangle {
	return layout.Center(image.Rect(0, 0, render.BottomWidth, render.SurfaceHeight-20), qrDisplaySize, qrDisplaySize)
}
