package gui

import (
	"image/color"

	"github.com/rook-computer/pocketedit/internal/render"
)

type instructionText struct {
	surface render.Surface
	text    string
	x, y    int
	style   render.TextStyle
}

type instructionBox struct {
	surface    render.Surface
	x, y, w, h int
	fill       color.Color
	label      string
	labelX     int
	labelY     int
}

// Instructions is a screen's help page: labelled boxes and text drawn over
// the dimmed screen on either surface.
type Instructions struct {
	texts []instructionText
	boxes []instructionBox
}

func NewInstructions() *Instructions { return &Instructions{} }

// AddText adds a text run on surface s.
func (i *Instructions) AddText(s render.Surface, text string, x, y int, style render.TextStyle) *Instructions {
	i.texts = append(i.texts, instructionText{surface: s, text: text, x: x, y: y, style: style})
	return i
}

// AddBox highlights the w x h area at (x, y) on surface s and places label
// at (labelX, labelY). An empty label draws just the box.
func (i *Instructions) AddBox(s render.Surface, x, y, w, h int, fill color.Color, label string, labelX, labelY int) *Instructions {
	i.boxes = append(i.boxes, instructionBox{
		surface: s, x: x, y: y, w: w, h: h, fill: fill,
		label: label, labelX: labelX, labelY: labelY,
	})
	return i
}

// Empty reports whether there is nothing to show. A nil Instructions is empty.
func (i *Instructions) Empty() bool {
	return i == nil || len(i.texts) == 0 && len(i.boxes) == 0
}

func (i *Instructions) DrawTop(c *Context)    { i.draw(c, render.Top) }
func (i *Instructions) DrawBottom(c *Context) { i.draw(c, render.Bottom) }

func (i *Instructions) draw(c *Context, s render.Surface) {
	if i.Empty() {
		return
	}
	c.Dim()
	for _, b := range i.boxes {
		if b.surface != s {
			continue
		}
		c.DrawSolidRect(b.x, b.y, b.w, b.h, b.fill)
		if b.label != "" {
			c.DrawSolidRect(b.labelX-2, b.labelY-2, 4, 4, b.fill)
			c.DrawLine(float32(b.x+b.w/2), float32(b.y+b.h/2), float32(b.labelX), float32(b.labelY), 1, b.fill)
			c.Text(b.label, b.labelX, b.labelY, render.TextStyle{Scale: render.FontSize11, Color: render.ColorWhite, AlignY: render.TextMiddle})
		}
	}
	for _, t := range i.texts {
		if t.surface == s {
			c.Text(t.text, t.x, t.y, t.style)
		}
	}
}
