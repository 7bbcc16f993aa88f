// Package palette holds the color stop tables used to tint QR codes.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a color string is not a #rrggbb triple.
var ErrInvalidHex = errors.New("invalid hex color")

// ColorStop is one RGB anchor of a gradient.
type ColorStop struct {
	R, G, B uint8
}

// RGBA returns the stop as an opaque color.RGBA.
func (s ColorStop) RGBA() color.RGBA {
	return color.RGBA{R: s.R, G: s.G, B: s.B, A: 255}
}

// Hex formats the stop as #rrggbb.
func (s ColorStop) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", s.R, s.G, s.B)
}

// ParseHex parses "#rrggbb" or "rrggbb".
func ParseHex(s string) (ColorStop, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(v) != 6 {
		return ColorStop{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	r, err1 := strconv.ParseUint(v[0:2], 16, 8)
	g, err2 := strconv.ParseUint(v[2:4], 16, 8)
	b, err3 := strconv.ParseUint(v[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return ColorStop{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return ColorStop{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// Palette is an ordered list of color stops. Adjacent stops form one
// interpolation segment.
type Palette struct {
	Name  string
	Stops []ColorStop
}

// Segments returns the number of interpolation segments.
func (p Palette) Segments() int {
	if len(p.Stops) == 0 {
		return 0
	}
	return len(p.Stops) - 1
}

// Hex returns the stops formatted as #rrggbb strings.
func (p Palette) Hex() []string {
	out := make([]string, len(p.Stops))
	for i, s := range p.Stops {
		out[i] = s.Hex()
	}
	return out
}

// FromHex builds a palette from hex strings.
func FromHex(name string, stops ...string) (Palette, error) {
	p := Palette{Name: name, Stops: make([]ColorStop, 0, len(stops))}
	for _, s := range stops {
		c, err := ParseHex(s)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", name, err)
		}
		p.Stops = append(p.Stops, c)
	}
	return p, nil
}

func mustPalette(name string, stops ...string) Palette {
	p, err := FromHex(name, stops...)
	if err != nil {
		panic(err)
	}
	return p
}
