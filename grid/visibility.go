package grid

// Mask is a per-cell visibility array indexed [x][y]; true marks a cell the
// observer can currently see.
type Mask [][]bool

// NewMask returns an all-false mask of the given dimensions.
func NewMask(width, height int) Mask {
	m := make(Mask, width)
	for x := range m {
		m[x] = make([]bool, height)
	}
	return m
}

// ComputeVisibility runs the directional sweep and returns the visibility
// mask for an observer facing decreasing y (callers orient the grid with
// RotateLeft beforehand to match the real facing). The grid is not modified.
//
// The sweep processes every row from height-1 down to 0, including rows
// below the observer, which hold no seed cells and stay dark. Within a row, a
// forward then a backward pass each propagate from visible cells: an empty or
// transparent cell marks its lateral neighbor plus, when y>0, the lateral
// diagonal and its own cell in the next row toward the view direction. An
// opaque occupied cell is itself visible but propagates nothing. The two
// passes OR into the same mask; neither excludes the other.
func ComputeVisibility(g *Grid, observer Point) Mask {
	g.checkBounds(observer.X, observer.Y)

	mask := NewMask(g.width, g.height)
	mask[observer.X][observer.Y] = true

	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width-1; x++ {
			if !mask[x][y] {
				continue
			}
			if cell := g.Get(x, y); cell != nil && cell.Opaque() {
				continue
			}

			mask[x+1][y] = true
			if y > 0 {
				mask[x+1][y-1] = true
				mask[x][y-1] = true
			}
		}

		for x := g.width - 1; x >= 1; x-- {
			if !mask[x][y] {
				continue
			}
			if cell := g.Get(x, y); cell != nil && cell.Opaque() {
				continue
			}

			mask[x-1][y] = true
			if y > 0 {
				mask[x-1][y-1] = true
				mask[x][y-1] = true
			}
		}
	}

	return mask
}

// Prune clears every grid cell whose mask entry is false, destructively
// removing content the observer cannot see.
func Prune(g *Grid, mask Mask) {
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !mask[x][y] {
				g.Set(x, y, nil)
			}
		}
	}
}

// ProcessVis computes visibility and prunes the grid in place, returning the
// mask: the combined convenience form of ComputeVisibility followed by Prune.
func ProcessVis(g *Grid, observer Point) Mask {
	mask := ComputeVisibility(g, observer)
	Prune(g, mask)
	return mask
}
