package render

import (
	"image/color"

	"github.com/cristianadrielbraun/brandqr/internal/palette"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.NRGBA{A: 255}
)

// lerpColor interpolates between two stops, truncating each channel.
func lerpColor(c1, c2 palette.ColorStop, t float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c1.R) + t*(float64(c2.R)-float64(c1.R))),
		G: uint8(float64(c1.G) + t*(float64(c2.G)-float64(c1.G))),
		B: uint8(float64(c1.B) + t*(float64(c2.B)-float64(c1.B))),
		A: 255,
	}
}

// tintOf returns 90% of each channel of c, truncated, so a logo stays
// darker than the gradient around it.
func tintOf(c color.Color) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.NRGBA{
		R: uint8(uint16(n.R) * 9 / 10),
		G: uint8(uint16(n.G) * 9 / 10),
		B: uint8(uint16(n.B) * 9 / 10),
		A: 255,
	}
}
