// Package qrtest scans rendered codes in tests.
package qrtest

import (
	"image"
	"image/color"
	"testing"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
	"github.com/stretchr/testify/require"
)

// Binarize maps every pixel that is not pure white to black. Gradient ink
// can be lighter than the binarizer's local threshold near the light end of
// a palette, so the scan only looks at ink versus background.
func Binarize(img image.Image) *image.Gray {
	b := img.Bounds()
	out := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			v := uint8(0)
			if isWhite(img.At(x, y)) {
				v = 0xff
			}
			out.Pix[(y-b.Min.Y)*out.Stride+(x-b.Min.X)] = v
		}
	}
	return out
}

func isWhite(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return a == 0xffff && r == 0xffff && g == 0xffff && b == 0xffff
}

// Decode binarizes img and returns the text a QR reader finds in it.
func Decode(t testing.TB, img image.Image) string {
	t.Helper()
	bmp, err := gozxing.NewBinaryBitmapFromImage(Binarize(img))
	require.NoError(t, err)
	result, err := qrcode.NewQRCodeReader().Decode(bmp, nil)
	require.NoError(t, err, "QR code not decodable")
	return result.GetText()
}
