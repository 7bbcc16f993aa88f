package render

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"

	"github.com/cristianadrielbraun/brandqr/internal/palette"
)

// Gradient fills a width x height image with a diagonal gradient through the
// palette stops. Color is a function of x+y only, so bands run along the
// anti-diagonal. The palette's n segments split [0, n] evenly.
func Gradient(width, height int, p palette.Palette) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if len(p.Stops) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPalette, p.Name)
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	if len(p.Stops) == 1 {
		draw.Draw(img, img.Bounds(), &image.Uniform{C: p.Stops[0].RGBA()}, image.Point{}, draw.Src)
		return img, nil
	}

	n := p.Segments()
	span := float64(width + height)

	// Every pixel on the same anti-diagonal shares a color, so compute each
	// x+y once.
	diag := make([]uint8, 4*(width+height-1))
	for s := 0; s < width+height-1; s++ {
		dist := float64(s) / span * float64(n)
		segment := int(dist)
		if segment >= n {
			segment = n - 1
		}
		c := lerpColor(p.Stops[segment], p.Stops[segment+1], dist-float64(segment))
		diag[4*s], diag[4*s+1], diag[4*s+2], diag[4*s+3] = c.R, c.G, c.B, c.A
	}

	for y := 0; y < height; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*width]
		copy(row, diag[4*y:4*(y+width)])
	}
	return img, nil
}
