package render

import (
	"fmt"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FaceSource returns the font face to use at a given scale.
type FaceSource func(scale float64) (font.Face, error)

// Font backends understood by LoadFaces.
const (
	BackendOpenType = "opentype"
	BackendFreetype = "freetype"
	BackendBasic    = "basic"
)

// BasicFaces always returns the fixed 7x13 bitmap face; scale is ignored.
func BasicFaces() FaceSource {
	return func(float64) (font.Face, error) { return basicfont.Face7x13, nil }
}

// OpenTypeFaces rasterizes data with x/image/font/opentype at basePt*scale.
func OpenTypeFaces(data []byte, basePt float64) (FaceSource, error) {
	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse opentype font: %w", err)
	}
	return func(scale float64) (font.Face, error) {
		return opentype.NewFace(fnt, &opentype.FaceOptions{Size: basePt * scale, DPI: 72, Hinting: font.HintingFull})
	}, nil
}

// FreetypeFaces rasterizes data with the freetype truetype package.
func FreetypeFaces(data []byte, basePt float64) (FaceSource, error) {
	fnt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse truetype font: %w", err)
	}
	return func(scale float64) (font.Face, error) {
		return truetype.NewFace(fnt, &truetype.Options{Size: basePt * scale, DPI: 72, Hinting: font.HintingFull}), nil
	}, nil
}

// LoadFaces builds a FaceSource for backend. An empty path uses the
// embedded Go Regular font.
func LoadFaces(backend, path string, basePt float64) (FaceSource, error) {
	if backend == BackendBasic {
		return BasicFaces(), nil
	}
	data := goregular.TTF
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read font %s: %w", path, err)
		}
		data = raw
	}
	if basePt <= 0 {
		basePt = 15
	}
	switch backend {
	case BackendFreetype:
		return FreetypeFaces(data, basePt)
	case BackendOpenType, "":
		return OpenTypeFaces(data, basePt)
	default:
		return nil, fmt.Errorf("unknown font backend %q", backend)
	}
}
