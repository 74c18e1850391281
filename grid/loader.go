package grid

import (
	"fmt"

	"multigrid/world"
)

// Layout glyphs for FromStrings. Rows run top to bottom, so rows[0] is y=0.
const (
	glyphWall  = 'W'
	glyphEmpty = '.'
	glyphSpace = ' '
	glyphFloor = 'F'
	glyphGoal  = 'G'
	glyphBall  = 'o'
)

var agentGlyphs = map[rune]int{
	'>': world.DirRight,
	'v': world.DirDown,
	'<': world.DirLeft,
	'^': world.DirUp,
}

// FromStrings converts an ascii layout to a grid, one rune per cell. Rows
// must be non-empty and uniform in width. Agent glyphs ('>', 'v', '<', '^')
// place a red agent with the drawn facing.
func FromStrings(rows []string) (*Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("layout: no rows")
	}
	width := len(rows[0])

	g, err := New(width, len(rows))
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}

	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("layout: row %d width %d, want %d", y, len(row), width)
		}
		for x, r := range row {
			obj, err := objectForGlyph(r)
			if err != nil {
				return nil, fmt.Errorf("layout: row %d col %d: %w", y, x, err)
			}
			if obj != nil {
				g.Set(x, y, obj)
			}
		}
	}

	return g, nil
}

func objectForGlyph(r rune) (world.Object, error) {
	if dir, ok := agentGlyphs[r]; ok {
		return world.NewAgent("red", dir), nil
	}

	switch r {
	case glyphEmpty, glyphSpace:
		return nil, nil
	case glyphWall:
		return world.NewWall(), nil
	case glyphFloor:
		return world.NewFloor("blue"), nil
	case glyphGoal:
		return world.NewGoal(), nil
	case glyphBall:
		return world.NewBall("purple"), nil
	default:
		return nil, fmt.Errorf("unknown glyph %q", r)
	}
}

// AgentPos returns the coordinates and facing of the first agent cell in
// row-major order, or ok=false when the grid holds none.
func (g *Grid) AgentPos() (p Point, dir int, ok bool) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if a, isAgent := g.Get(x, y).(*world.Agent); isAgent {
				return Point{X: x, Y: y}, a.Direction, true
			}
		}
	}
	return Point{}, 0, false
}
