package render

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/cristianadrielbraun/brandqr/internal/qrtest"
)

// decodeQR scans img with every inked pixel treated as a dark module.
func decodeQR(t *testing.T, img image.Image) string {
	t.Helper()
	return qrtest.Decode(t, img)
}

// solidLogo is an opaque square of c.
func solidLogo(side int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

// ringLogo is a transparent square with an opaque ring, plus a soft
// gradient of alpha across its first row.
func ringLogo(side int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	c := float64(side) / 2
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			d := dx*dx + dy*dy
			if d < c*c*0.8 && d > c*c*0.3 {
				img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 30, B: 90, A: 255})
			}
		}
	}
	for x := 0; x < side; x++ {
		img.SetNRGBA(x, 0, color.NRGBA{R: 10, G: 20, B: 30, A: uint8(x * 255 / side)})
	}
	return img
}

type fakeLogos map[string]image.Image

func (f fakeLogos) Logo(_ context.Context, label string) (image.Image, bool) {
	img, ok := f[label]
	return img, ok
}
