package render

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

// Rendering defaults: 10 px per module and a 2-module quiet zone.
const (
	DefaultModuleSize = 10
	DefaultBorder     = 2
)

// RenderMask rasterizes the grid as grayscale, ink 0 and background 255.
// border is counted in modules on each side.
func RenderMask(grid *ModuleGrid, moduleSize, border int) *image.Gray {
	if moduleSize <= 0 {
		moduleSize = DefaultModuleSize
	}
	if border < 0 {
		border = 0
	}

	side := (grid.Size() + 2*border) * moduleSize
	img := image.NewGray(image.Rect(0, 0, side, side))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}

	off := border * moduleSize
	for my := 0; my < grid.Size(); my++ {
		for mx := 0; mx < grid.Size(); mx++ {
			if !grid.Dark(mx, my) {
				continue
			}
			x0 := off + mx*moduleSize
			for py := off + my*moduleSize; py < off+(my+1)*moduleSize; py++ {
				row := img.Pix[py*img.Stride+x0 : py*img.Stride+x0+moduleSize]
				for i := range row {
					row[i] = 0
				}
			}
		}
	}
	return img
}

// InvertMask turns the grayscale rendering into an alpha stencil that is
// opaque on ink and clear on background.
func InvertMask(gray *image.Gray) *image.Alpha {
	b := gray.Bounds()
	a := image.NewAlpha(b)
	for y := 0; y < b.Dy(); y++ {
		src := gray.Pix[y*gray.Stride : y*gray.Stride+b.Dx()]
		dst := a.Pix[y*a.Stride : y*a.Stride+b.Dx()]
		for i, v := range src {
			dst[i] = 0xff - v
		}
	}
	return a
}

// ApplyGradient paints gradient through the ink pixels of mask onto a white
// canvas. The result has exactly the mask's bounds.
func ApplyGradient(mask *image.Gray, gradient image.Image) (*image.RGBA, error) {
	b := mask.Bounds()
	if gradient.Bounds().Dx() != b.Dx() || gradient.Bounds().Dy() != b.Dy() {
		return nil, fmt.Errorf("gradient is %v, mask is %v", gradient.Bounds().Size(), b.Size())
	}

	out := image.NewRGBA(b)
	draw.Draw(out, b, &image.Uniform{C: white}, image.Point{}, draw.Src)
	draw.DrawMask(out, b, gradient, gradient.Bounds().Min, InvertMask(mask), b.Min, draw.Over)
	return out, nil
}

// Plain converts the mask to a black-on-white RGBA image.
func Plain(mask *image.Gray) *image.RGBA {
	out := image.NewRGBA(mask.Bounds())
	draw.Draw(out, out.Bounds(), mask, mask.Bounds().Min, draw.Src)
	return out
}
