package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// LogoMode selects how PrepareLogo recolors a logo.
type LogoMode int

const (
	// LogoTint paints the logo in a darkened reference color.
	LogoTint LogoMode = iota
	// LogoBlack paints the logo solid black.
	LogoBlack
)

func (m LogoMode) String() string {
	switch m {
	case LogoBlack:
		return "black"
	default:
		return "tint"
	}
}

// PrepareLogo replaces the RGB of every visible pixel with a single color
// and leaves alpha untouched. Fully transparent pixels become
// transparent black.
func PrepareLogo(raw image.Image, mode LogoMode, ref color.Color) *image.NRGBA {
	src := toNRGBA(raw)

	target := black
	if mode == LogoTint && ref != nil {
		target = tintOf(ref)
	}

	b := src.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		in := src.Pix[y*src.Stride : y*src.Stride+4*b.Dx()]
		px := out.Pix[y*out.Stride : y*out.Stride+4*b.Dx()]
		for i := 0; i < len(in); i += 4 {
			a := in[i+3]
			if a == 0 {
				continue
			}
			px[i], px[i+1], px[i+2], px[i+3] = target.R, target.G, target.B, a
		}
	}
	return out
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	n := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(n, n.Bounds(), img, b.Min, draw.Src)
	return n
}

// OverlayOptions controls logo sizing relative to the QR image.
type OverlayOptions struct {
	// SizeFactor divides the QR width to get the logo side.
	SizeFactor int
	// BorderFactor scales the logo side to get the white halo diameter.
	BorderFactor float64
}

// DefaultOverlay keeps the logo at 1/8 of the QR width, well inside what
// level H error correction recovers.
var DefaultOverlay = OverlayOptions{SizeFactor: 8, BorderFactor: 1.3}

func (o OverlayOptions) withDefaults() OverlayOptions {
	if o.SizeFactor <= 0 {
		o.SizeFactor = DefaultOverlay.SizeFactor
	}
	if o.BorderFactor < 1 {
		o.BorderFactor = DefaultOverlay.BorderFactor
	}
	return o
}

// LogoGeometry returns the logo side and halo side for a QR of the given
// width.
func (o OverlayOptions) LogoGeometry(qrWidth int) (logoSize, borderSize int) {
	o = o.withDefaults()
	logoSize = qrWidth / o.SizeFactor
	borderSize = int(float64(logoSize) * o.BorderFactor)
	if borderSize < logoSize {
		borderSize = logoSize
	}
	return logoSize, borderSize
}

// OverlayLogo resizes logo, sets it on a white circle and pastes the
// result centered on qr. An *image.RGBA base is modified in place; other
// image types are copied first. Pixels outside the circle are untouched.
func OverlayLogo(qr image.Image, logo image.Image, opts OverlayOptions) *image.RGBA {
	base, ok := qr.(*image.RGBA)
	if !ok {
		base = image.NewRGBA(qr.Bounds())
		draw.Draw(base, base.Bounds(), qr, qr.Bounds().Min, draw.Src)
	}

	b := base.Bounds()
	logoSize, borderSize := opts.LogoGeometry(b.Dx())
	if logoSize <= 0 || logo == nil || logo.Bounds().Empty() {
		return base
	}

	resized := imaging.Resize(logo, logoSize, logoSize, imaging.Lanczos)
	badge := borderedLogo(resized, borderSize)

	at := b.Min.Add(image.Pt((b.Dx()-borderSize)/2, (b.Dy()-borderSize)/2))
	draw.Draw(base, image.Rectangle{Min: at, Max: at.Add(badge.Bounds().Size())}, badge, image.Point{}, draw.Over)
	return base
}

// borderedLogo draws an opaque white disc inscribed in a transparent square
// and composites logo at its center using the logo's own alpha.
func borderedLogo(logo image.Image, size int) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, size, size))

	r := float64(size) / 2
	scanner := rasterx.NewScannerGV(size, size, canvas, canvas.Bounds())
	filler := rasterx.NewFiller(size, size, scanner)
	filler.SetColor(color.White)
	rasterx.AddCircle(r, r, r, filler)
	filler.Draw()

	lb := logo.Bounds()
	at := image.Pt((size-lb.Dx())/2, (size-lb.Dy())/2)
	draw.Draw(canvas, image.Rectangle{Min: at, Max: at.Add(lb.Size())}, logo, lb.Min, draw.Over)
	return canvas
}
