// grid is the spatial core of the grid world: a bounds-checked cell store
// with wall-drawing and sub-grid geometry, a fixed-width numeric encoder
// gated by visibility, the directional visibility sweep, and a memoized tile
// renderer over the pixel-primitive library.
package grid

import (
	"fmt"

	"multigrid/world"
)

// Point is an integer cell coordinate.
type Point struct {
	X, Y int
}

// Grid is a width×height array of cell slots in row-major order; each slot is
// empty (nil) or holds one world.Object. A grid exclusively owns its slots:
// Copy, Slice and RotateLeft clone every occupied cell's object, so mutating
// a derived grid never affects the source.
type Grid struct {
	width, height int
	cells         []world.Object
}

// New returns a grid with all cells empty. Dimensions below 3×3 are an
// error, never clamped.
func New(width, height int) (*Grid, error) {
	if width < 3 || height < 3 {
		return nil, fmt.Errorf("grid: dimensions %dx%d below minimum 3x3", width, height)
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]world.Object, width*height),
	}, nil
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return g.height }

// checkBounds panics on out-of-range coordinates: a bounds violation is a
// caller precondition failure, not a recoverable condition.
func (g *Grid) checkBounds(x, y int) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		panic(fmt.Sprintf("grid: coordinates (%d,%d) out of bounds %dx%d", x, y, g.width, g.height))
	}
}

// Set places obj (or nil to clear) at (x,y). Panics when out of bounds.
func (g *Grid) Set(x, y int, obj world.Object) {
	g.checkBounds(x, y)
	g.cells[y*g.width+x] = obj
}

// Get returns the object at (x,y), nil for an empty cell. Panics when out of
// bounds.
func (g *Grid) Get(x, y int) world.Object {
	g.checkBounds(x, y)
	return g.cells[y*g.width+x]
}

// Contains reports whether any slot holds exactly this object (identity, not
// structural equality).
func (g *Grid) Contains(obj world.Object) bool {
	for _, cell := range g.cells {
		if cell == obj && cell != nil {
			return true
		}
	}
	return false
}

// ContainsKey reports whether any occupied slot matches the (color, type)
// key. An empty color is a wildcard matching on type alone.
func (g *Grid) ContainsKey(color, typ string) bool {
	for _, cell := range g.cells {
		if cell == nil {
			continue
		}
		if cell.Type() != typ {
			continue
		}
		if color == "" || cell.Color() == color {
			return true
		}
	}
	return false
}

// Copy returns a deep copy: every occupied slot's object is cloned, so the
// copy holds independent object instances.
func (g *Grid) Copy() *Grid {
	out := &Grid{
		width:  g.width,
		height: g.height,
		cells:  make([]world.Object, len(g.cells)),
	}
	for i, cell := range g.cells {
		if cell != nil {
			out.cells[i] = cell.Clone()
		}
	}
	return out
}

// Equal compares two grids by their world-frame encodings, not structurally:
// grids built by different mutation sequences compare equal when their
// contents encode identically.
func (g *Grid) Equal(other *Grid, cfg *world.Config) bool {
	if other == nil {
		return false
	}
	return g.Encode(cfg, nil).Equal(other.Encode(cfg, nil))
}

// ObjectFactory produces the object placed by the wall helpers; nil selects
// an opaque wall.
type ObjectFactory func() world.Object

func wallFactory(factory ObjectFactory) ObjectFactory {
	if factory == nil {
		return func() world.Object { return world.NewWall() }
	}
	return factory
}

// HorzWall fills length cells from (x,y) along increasing x. A negative
// length extends to the right edge.
func (g *Grid) HorzWall(x, y, length int, factory ObjectFactory) {
	factory = wallFactory(factory)
	if length < 0 {
		length = g.width - x
	}
	for i := 0; i < length; i++ {
		g.Set(x+i, y, factory())
	}
}

// VertWall fills length cells from (x,y) along increasing y. A negative
// length extends to the bottom edge.
func (g *Grid) VertWall(x, y, length int, factory ObjectFactory) {
	factory = wallFactory(factory)
	if length < 0 {
		length = g.height - y
	}
	for j := 0; j < length; j++ {
		g.Set(x, y+j, factory())
	}
}

// WallRect draws the four edges of a rectangle; the interior is untouched.
func (g *Grid) WallRect(x, y, w, h int) {
	g.HorzWall(x, y, w, nil)
	g.HorzWall(x, y+h-1, w, nil)
	g.VertWall(x, y, h, nil)
	g.VertWall(x+w-1, y, h, nil)
}

// RotateLeft returns a new grid rotated 90° counter-clockwise: source cell
// (i,j) maps to (j, newHeight-1-i). Observers call this repeatedly to orient
// a view for their facing before the visibility sweep.
func (g *Grid) RotateLeft() *Grid {
	out := &Grid{
		width:  g.height,
		height: g.width,
		cells:  make([]world.Object, len(g.cells)),
	}
	for i := 0; i < g.width; i++ {
		for j := 0; j < g.height; j++ {
			if cell := g.Get(i, j); cell != nil {
				out.Set(j, out.height-1-i, cell.Clone())
			}
		}
	}
	return out
}

// Slice extracts the w×h sub-grid with top-left corner (x0,y0). Requested
// coordinates outside the source are filled with fresh opaque walls rather
// than failing, so callers may slice regions extending past the edges.
func (g *Grid) Slice(x0, y0, w, h int) (*Grid, error) {
	out, err := New(w, h)
	if err != nil {
		return nil, fmt.Errorf("slice: %w", err)
	}
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			x, y := x0+i, y0+j
			if x >= 0 && x < g.width && y >= 0 && y < g.height {
				if cell := g.Get(x, y); cell != nil {
					out.Set(i, j, cell.Clone())
				}
			} else {
				out.Set(i, j, world.NewWall())
			}
		}
	}
	return out, nil
}
