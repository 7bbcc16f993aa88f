package render

import (
	"bytes"
	"context"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianadrielbraun/brandqr/internal/brand"
)

func TestGenerateBlackWithoutLogoIsPlain(t *testing.T) {
	p := New(Options{Logos: fakeLogos{}})
	res, err := p.Generate(context.Background(), Request{Text: exampleURL, Palette: "Black"})
	require.NoError(t, err)

	assert.False(t, res.Locked)
	assert.False(t, res.HasLogo)
	assert.Equal(t, "example.com", res.Domain)
	assert.Equal(t, "example", res.Label)

	grid, err := Encode(exampleURL)
	require.NoError(t, err)
	plain := Plain(RenderMask(grid, DefaultModuleSize, DefaultBorder))
	assert.Equal(t, plain.Bounds(), res.Image.Bounds())
	assert.Equal(t, plain.Pix, res.Image.Pix)
}

func TestGenerateNoColorizeBrand(t *testing.T) {
	logos := fakeLogos{"github": solidLogo(120, color.NRGBA{R: 240, G: 80, B: 10, A: 255})}
	p := New(Options{Logos: logos})

	text := "https://github.com/yeqown/go-qrcode"
	assert.True(t, p.Locked(text))

	res, err := p.Generate(context.Background(), Request{Text: text, Palette: "Blue"})
	require.NoError(t, err)
	assert.True(t, res.Locked)
	assert.True(t, res.HasLogo)
	assert.Equal(t, "Black", res.Palette.Name)

	// Only black, white and the grays of the halo's antialiased edge.
	b := res.Image.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := res.Image.RGBAAt(x, y)
			require.True(t, c.R == c.G && c.G == c.B && c.A == 255, "pixel %d,%d is %v", x, y, c)
		}
	}
	assert.Equal(t, color.RGBA{A: 255}, res.Image.RGBAAt(b.Dx()/2, b.Dy()/2))
	assert.Equal(t, text, decodeQR(t, res.Image))
}

func TestGenerateTintsLogoFromGradientCenter(t *testing.T) {
	logos := fakeLogos{"acme": solidLogo(120, color.NRGBA{R: 1, G: 2, B: 3, A: 255})}
	p := New(Options{Logos: logos})

	res, err := p.Generate(context.Background(), Request{Text: "https://acme.com/welcome", Palette: "blue"})
	require.NoError(t, err)
	require.True(t, res.HasLogo)
	assert.False(t, res.Locked)
	assert.Equal(t, "Blue", res.Palette.Name)

	b := res.Image.Bounds()
	gradient, err := Gradient(b.Dx(), b.Dy(), res.Palette)
	require.NoError(t, err)
	want := tintOf(gradient.RGBAAt(b.Dx()/2, b.Dy()/2))
	got := res.Image.RGBAAt(b.Dx()/2, b.Dy()/2)
	assert.InDelta(t, want.R, got.R, 1)
	assert.InDelta(t, want.G, got.G, 1)
	assert.InDelta(t, want.B, got.B, 1)
}

func TestGenerateEmailUsesDomainLogo(t *testing.T) {
	logos := fakeLogos{"gmail": solidLogo(40, color.NRGBA{R: 255, A: 255})}
	p := New(Options{Logos: logos})
	res, err := p.Generate(context.Background(), Request{Text: "someone@gmail.com", Palette: "Green"})
	require.NoError(t, err)
	assert.True(t, res.Locked)
	assert.True(t, res.HasLogo)
	assert.Equal(t, "gmail.com", res.Domain)
}

func TestGenerateCustomPolicy(t *testing.T) {
	p := New(Options{Policy: brand.NewPolicy("example")})
	res, err := p.Generate(context.Background(), Request{Text: exampleURL, Palette: "Red"})
	require.NoError(t, err)
	assert.True(t, res.Locked)
	assert.Equal(t, "Black", res.Palette.Name)
	assert.False(t, p.Locked("https://github.com"))
}

func TestGenerateIsDeterministic(t *testing.T) {
	p := New(Options{})
	a, err := p.Generate(context.Background(), Request{Text: "hello world", Palette: "Orange"})
	require.NoError(t, err)
	b, err := p.Generate(context.Background(), Request{Text: "hello world", Palette: "Orange"})
	require.NoError(t, err)
	assert.Equal(t, a.Image.Pix, b.Image.Pix)
	assert.Equal(t, "", a.Domain)
}

func TestGenerateDefaultPalette(t *testing.T) {
	p := New(Options{})
	res, err := p.Generate(context.Background(), Request{Text: "plain text"})
	require.NoError(t, err)
	assert.Equal(t, p.Catalog().Default().Name, res.Palette.Name)
}

func TestGenerateErrors(t *testing.T) {
	p := New(Options{})

	_, err := p.Generate(context.Background(), Request{Text: "hello", Palette: "Instagram"})
	assert.ErrorIs(t, err, ErrUnknownPalette)

	_, err = p.Generate(context.Background(), Request{Text: ""})
	assert.ErrorIs(t, err, ErrEmptyText)

	_, err = p.Generate(context.Background(), Request{Text: strings.Repeat("z", 4000)})
	assert.ErrorIs(t, err, ErrEncode)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = p.Generate(ctx, Request{Text: "hello"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerateModuleSizeAndBorder(t *testing.T) {
	p := New(Options{ModuleSize: 4, Border: 4})
	res, err := p.Generate(context.Background(), Request{Text: exampleURL})
	require.NoError(t, err)

	grid, err := Encode(exampleURL)
	require.NoError(t, err)
	assert.Equal(t, (grid.Size()+8)*4, res.Image.Bounds().Dx())
}

func TestResultPNG(t *testing.T) {
	p := New(Options{})
	res, err := p.Generate(context.Background(), Request{Text: exampleURL, Palette: "Blue"})
	require.NoError(t, err)

	data, err := res.PNG()
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, res.Image.Bounds(), img.Bounds())
	assert.Equal(t, exampleURL, decodeQR(t, img))
}
