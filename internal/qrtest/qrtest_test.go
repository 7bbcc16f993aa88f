package qrtest

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinarize(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 9, 6))
	img.Set(5, 5, color.White)
	img.Set(6, 5, color.RGBA{R: 0xff, G: 0xc0, B: 0xcb, A: 0xff})
	img.Set(7, 5, color.RGBA{R: 0xfe, G: 0xff, B: 0xff, A: 0xff})
	img.Set(8, 5, color.Black)

	out := Binarize(img)
	assert.Equal(t, image.Rect(0, 0, 4, 1), out.Bounds())
	assert.Equal(t, []uint8{0xff, 0, 0, 0}, out.Pix)
}
