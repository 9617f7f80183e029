package gui

import (
	"image"

	"github.com/rook-computer/pocketedit/internal/render"
)

const (
	homeAccel    = 0.001
	homeIconSize = 60
)

// HomeIconOrigin is where the home-blocked badge is drawn on the bottom surface.
var HomeIconOrigin = image.Pt(130, 90)

// HomeIndicator fades the home-blocked badge out with accelerating speed
// after each refused home request.
type HomeIndicator struct {
	Icon image.Image

	alpha float64
	delta float64
}

func NewHomeIndicator() HomeIndicator {
	return HomeIndicator{Icon: render.HomeBlockedIcon(homeIconSize)}
}

// Trigger restarts the fade at full opacity.
func (h *HomeIndicator) Trigger() {
	h.alpha = 1
	h.delta = homeAccel
}

// Alpha is the opacity the next Draw will use.
func (h *HomeIndicator) Alpha() float64 { return h.alpha }

// Draw paints the badge on the current surface while it is visible and
// advances the fade.
func (h *HomeIndicator) Draw(r *render.Renderer) {
	if h.alpha <= 0 {
		return
	}
	r.DrawImage(h.Icon, HomeIconOrigin.X, HomeIconOrigin.Y, h.alpha)
	h.alpha -= h.delta
	h.delta += homeAccel
}
