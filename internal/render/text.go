package render

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/rivo/uniseg"
	"github.com/rook-computer/pocketedit/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// TextPosX anchors each line horizontally on the x coordinate.
type TextPosX int

const (
	TextLeft TextPosX = iota
	TextCenter
	TextRight
)

// TextPosY anchors the whole block vertically on the y coordinate.
type TextPosY int

const (
	TextTop TextPosY = iota
	TextMiddle
	TextBottom
)

func (p TextPosX) anchor() layout.Anchor { return layout.Anchor(p) }
func (p TextPosY) anchor() layout.Anchor { return layout.Anchor(p) }

// TextStyle describes how to render text.
type TextStyle struct {
	Color  color.Color
	Scale  float64 // relative to the shaper base size; 0 means 1
	AlignX TextPosX
	AlignY TextPosY
	// MaxWidth wraps lines wider than this many pixels; 0 disables wrapping.
	MaxWidth int
}

func (s TextStyle) scale() float64 {
	if s.Scale <= 0 {
		return 1
	}
	return s.Scale
}

func (s TextStyle) color() color.Color {
	if s.Color == nil {
		return ColorWhite
	}
	return s.Color
}

// Text is a shaped string with measured lines. It is immutable once shaped.
type Text struct {
	Source       string
	Lines        []string
	LineWidths   []int
	MaxLineWidth int
	LineHeight   int
	Ascent       int
	Scale        float64

	face font.Face
}

func (t *Text) LineCount() int { return len(t.Lines) }

// Height is the pixel height of the whole block.
func (t *Text) Height() int { return t.LineHeight * len(t.Lines) }

// Shaper measures strings and draws shaped text.
type Shaper interface {
	Shape(str string, scale float64, maxWidth int) *Text
	Draw(dst draw.Image, t *Text, x, y int, align TextPosX, col color.Color)
	// Reset drops per-frame shaping buffers.
	Reset()
}

type shapeKey struct {
	str      string
	scale    float64
	maxWidth int
}

// FontShaper shapes text with x/image font faces.
type FontShaper struct {
	Logger interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}

	source FaceSource
	faces  map[float64]font.Face
	frame  map[shapeKey]*Text
}

func NewFontShaper(source FaceSource) *FontShaper {
	if source == nil {
		source = BasicFaces()
	}
	return &FontShaper{
		source: source,
		faces:  make(map[float64]font.Face),
		frame:  make(map[shapeKey]*Text),
	}
}

func (s *FontShaper) face(scale float64) font.Face {
	if f, ok := s.faces[scale]; ok {
		return f
	}
	f, err := s.source(scale)
	if err != nil || f == nil {
		if s.Logger != nil {
			s.Logger.Errorf("text", "face at scale %.2f failed, using basicfont: %v", scale, err)
		}
		f = basicfont.Face7x13
	}
	s.faces[scale] = f
	return f
}

// Shape measures str. Strings are split at mandatory breaks and, when
// maxWidth > 0, wrapped at line-break opportunities.
func (s *FontShaper) Shape(str string, scale float64, maxWidth int) *Text {
	if scale <= 0 {
		scale = 1
	}
	key := shapeKey{str: str, scale: scale, maxWidth: maxWidth}
	if t, ok := s.frame[key]; ok {
		return t
	}

	face := s.face(scale)
	metrics := face.Metrics()
	t := &Text{
		Source:     str,
		Lines:      wrapLines(face, str, maxWidth),
		LineHeight: metrics.Height.Ceil(),
		Ascent:     metrics.Ascent.Ceil(),
		Scale:      scale,
		face:       face,
	}
	t.LineWidths = make([]int, len(t.Lines))
	for i, line := range t.Lines {
		w := font.MeasureString(face, line).Ceil()
		t.LineWidths[i] = w
		if w > t.MaxLineWidth {
			t.MaxLineWidth = w
		}
	}
	s.frame[key] = t
	return t
}

const lineTrim = " \t\r\n"

func wrapLines(face font.Face, str string, maxWidth int) []string {
	var lines []string
	var line strings.Builder
	state := -1
	rest := str
	for len(rest) > 0 {
		var segment string
		var mustBreak bool
		segment, rest, mustBreak, state = uniseg.FirstLineSegmentInString(rest, state)
		if maxWidth > 0 && line.Len() > 0 {
			candidate := strings.TrimRight(line.String()+segment, lineTrim)
			if font.MeasureString(face, candidate).Ceil() > maxWidth {
				lines = append(lines, strings.TrimRight(line.String(), lineTrim))
				line.Reset()
			}
		}
		line.WriteString(segment)
		if mustBreak && len(rest) > 0 {
			lines = append(lines, strings.TrimRight(line.String(), lineTrim))
			line.Reset()
		}
	}
	if line.Len() > 0 || len(lines) == 0 {
		lines = append(lines, strings.TrimRight(line.String(), lineTrim))
	}
	return lines
}

// Draw renders every line of t with its top edge at y.
func (s *FontShaper) Draw(dst draw.Image, t *Text, x, y int, align TextPosX, col color.Color) {
	face := t.face
	if face == nil {
		face = s.face(t.Scale)
	}
	drawer := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(col),
		Face: face,
	}
	for i, line := range t.Lines {
		lineX := layout.Align(x, t.LineWidths[i], align.anchor())
		baseline := y + i*t.LineHeight + t.Ascent
		drawer.Dot = fixed.P(lineX, baseline)
		drawer.DrawString(line)
	}
}

func (s *FontShaper) Reset() {
	clear(s.frame)
}
