package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
)

// QRSize is the largest square that fits the bottom surface with a margin.
const QRSize = 200

// QRCodeImage encodes payload as a borderless QR code of sizePx pixels in
// the given colors. An empty payload yields (nil, nil).
func QRCodeImage(payload string, sizePx int, fg, bg color.Color) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = QRSize
	}

	code, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, fmt.Errorf("encode qr code: %w", err)
	}
	code.DisableBorder = true
	if fg != nil {
		code.ForegroundColor = fg
	}
	if bg != nil {
		code.BackgroundColor = bg
	}
	return code.Image(sizePx), nil
}
