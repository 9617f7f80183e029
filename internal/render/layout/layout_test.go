package layout

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlign(t *testing.T) {
	assert.Equal(t, 100, Align(100, 40, AnchorStart))
	assert.Equal(t, 80, Align(100, 40, AnchorCenter))
	assert.Equal(t, 60, Align(100, 40, AnchorEnd))
}

func TestClampDegradesToBounds(t *testing.T) {
	bounds := image.Rect(0, 0, 512, 256)
	assert.Equal(t, image.Rect(0, 250, 512, 256), Clamp(image.Rect(0, 250, 900, 270), bounds))
	assert.True(t, Clamp(image.Rect(0, 300, 10, 320), bounds).Empty())
	assert.Equal(t, image.Rect(0, 0, 10, 10), Clamp(image.Rect(10, 10, 0, 0), bounds))
}

func TestColumns(t *testing.T) {
	cols := Columns(image.Rect(0, 0, 401, 240), 2)
	assert.Len(t, cols, 2)
	assert.Equal(t, image.Rect(0, 0, 200, 240), cols[0])
	assert.Equal(t, image.Rect(200, 0, 401, 240), cols[1])
	assert.Nil(t, Columns(image.Rect(0, 0, 10, 10), 0))
}

func TestRowsClampsLastRow(t *testing.T) {
	rect := image.Rect(0, 0, 200, 30)
	assert.Equal(t, image.Rect(0, 12, 200, 24), Rows(rect, 12, 1))
	assert.Equal(t, image.Rect(0, 24, 200, 30), Rows(rect, 12, 2))
}

func TestCenterAndInset(t *testing.T) {
	assert.Equal(t, image.Rect(110, 70, 210, 170), Center(image.Rect(0, 0, 320, 240), 100, 100))
	assert.Equal(t, image.Rect(0, 0, 320, 240), Center(image.Rect(0, 0, 320, 240), 1000, 1000))
	assert.Equal(t, image.Rect(4, 4, 16, 16), Inset(image.Rect(0, 0, 20, 20), 4))
}
