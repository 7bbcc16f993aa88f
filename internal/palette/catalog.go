package palette

import (
	"errors"
	"fmt"
	"strings"
)

// Neutral is the palette forced for brands that must stay monochrome.
const Neutral = "Black"

// ErrNotFound is returned by Catalog.Lookup for unknown names.
var ErrNotFound = errors.New("palette not found")

// Builtin returns the default palette table.
func Builtin() []Palette {
	return []Palette{
		mustPalette("Black", "#000000", "#000000", "#000000", "#000000", "#000000"),
		mustPalette("Blue", "#00c6ff", "#0072ff", "#0048ff", "#001f7f", "#00004d"),
		mustPalette("Green", "#a8ff78", "#78ffd6", "#48ffbb", "#00b386", "#004d40"),
		mustPalette("Orange", "#ffd194", "#ffba6f", "#ff8f43", "#d95c00", "#7f3300"),
		mustPalette("Purple", "#d4a4ff", "#a766ff", "#7733ff", "#4d00b3", "#2a005d"),
		mustPalette("Pink", "#ffc0cb", "#ff99b6", "#ff6699", "#e60073", "#99004d"),
		mustPalette("Red", "#ff7f7f", "#ff4c4c", "#e60000", "#990000", "#4d0000"),
	}
}

// Catalog is an immutable, ordered set of palettes.
type Catalog struct {
	palettes []Palette
	index    map[string]int
}

// NewCatalog validates the palettes and indexes them by lowercase name.
// Order is preserved for presentation.
func NewCatalog(palettes []Palette) (*Catalog, error) {
	if len(palettes) == 0 {
		return nil, errors.New("catalog needs at least one palette")
	}

	c := &Catalog{
		palettes: make([]Palette, 0, len(palettes)),
		index:    make(map[string]int, len(palettes)),
	}
	for _, p := range palettes {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, errors.New("palette name is required")
		}
		if len(p.Stops) == 0 {
			return nil, fmt.Errorf("palette %s has no color stops", name)
		}
		key := strings.ToLower(name)
		if _, dup := c.index[key]; dup {
			return nil, fmt.Errorf("duplicate palette %s", name)
		}
		c.index[key] = len(c.palettes)
		c.palettes = append(c.palettes, Palette{Name: name, Stops: p.Stops}.clone())
	}
	return c, nil
}

// DefaultCatalog wraps Builtin.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(Builtin())
	if err != nil {
		panic(err)
	}
	return c
}

// Lookup finds a palette by case-insensitive name.
func (c *Catalog) Lookup(name string) (Palette, error) {
	i, ok := c.index[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.palettes[i].clone(), nil
}

// Default is the first palette in the table.
func (c *Catalog) Default() Palette {
	return c.palettes[0].clone()
}

// Names lists palette names in table order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.palettes))
	for i, p := range c.palettes {
		names[i] = p.Name
	}
	return names
}

// All returns a copy of the palette table.
func (c *Catalog) All() []Palette {
	out := make([]Palette, len(c.palettes))
	for i, p := range c.palettes {
		out[i] = p.clone()
	}
	return out
}

// clone detaches the stops from the catalog's storage.
func (p Palette) clone() Palette {
	stops := make([]ColorStop, len(p.Stops))
	copy(stops, p.Stops)
	return Palette{Name: p.Name, Stops: stops}
}
