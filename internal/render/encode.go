package render

import (
	"fmt"

	"github.com/yeqown/go-qrcode/v2"
)

// ModuleGrid is the square dark/light bitmap produced by the encoder. It is
// never mutated after construction.
type ModuleGrid struct {
	size int
	dark []bool
}

// newModuleGrid copies rows into a grid. Rows must form a square.
func newModuleGrid(rows [][]bool) (*ModuleGrid, error) {
	n := len(rows)
	if n == 0 {
		return nil, fmt.Errorf("module grid is empty")
	}
	g := &ModuleGrid{size: n, dark: make([]bool, n*n)}
	for y, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("module grid row %d has %d cells, want %d", y, len(row), n)
		}
		copy(g.dark[y*n:(y+1)*n], row)
	}
	return g, nil
}

// Size is the number of modules per side, quiet zone excluded.
func (g *ModuleGrid) Size() int { return g.size }

// Dark reports whether the module at (x, y) is ink. Out of range is light.
func (g *ModuleGrid) Dark(x, y int) bool {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return false
	}
	return g.dark[y*g.size+x]
}

// Encode builds the module grid for text at the highest error-correction
// level, letting the encoder pick the smallest version that fits.
func Encode(text string) (*ModuleGrid, error) {
	if text == "" {
		return nil, ErrEmptyText
	}

	qrc, err := qrcode.NewWith(text, qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest))
	if err != nil {
		return nil, &EncodeError{Text: text, Err: err}
	}

	w := &gridWriter{}
	if err := qrc.Save(w); err != nil {
		return nil, &EncodeError{Text: text, Err: err}
	}
	if w.grid == nil {
		return nil, &EncodeError{Text: text, Err: fmt.Errorf("encoder produced no matrix")}
	}
	return w.grid, nil
}

// gridWriter implements qrcode.Writer and captures the matrix instead of
// drawing it.
type gridWriter struct {
	grid *ModuleGrid
}

func (w *gridWriter) Write(mat qrcode.Matrix) error {
	n := mat.Width()
	if n <= 0 || mat.Height() != n {
		return fmt.Errorf("unexpected matrix %dx%d", mat.Width(), mat.Height())
	}
	g := &ModuleGrid{size: n, dark: make([]bool, n*n)}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		g.dark[y*n+x] = v.IsSet()
	})
	w.grid = g
	return nil
}

func (w *gridWriter) Close() error { return nil }
