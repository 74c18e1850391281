// gridview contains the view components derived from grid observation
// frames: a generic builder wiring data-model channels to view-model
// consumers, and the element-update records pushed to web clients.
package gridview

import (
	"html/template"

	"multigrid/grid"
	"multigrid/rendering"
	"multigrid/world"
)

// EleUpdate is an element identifier and the attribute/content operations to
// apply to it. Sent to clients as JSON; a small client loop finds each
// element by id and applies the ops.
type EleUpdate struct {
	// EleId is the id by which the client finds the element.
	EleId string
	// Ops keys are attribute names, or the reserved "textContent".
	Ops []Op
}

// Op is an attribute key and its new value.
type Op struct {
	Key   string
	Value string
}

// ViewComponent is a server-side view: Parse adds its template to the parent
// (inheriting the parent's func-map), Updates exposes its ele-update stream.
type ViewComponent interface {
	Updates() <-chan []EleUpdate
	Parse(*template.Template) (string, error)
}

// Frame is one observation snapshot pushed from the driver: the world grid,
// the observer's visibility mask, and the observer position.
type Frame struct {
	Grid     *grid.Grid
	Vis      grid.Mask
	Observer grid.Point
	Config   *world.Config
}

// Cell is the view-model for one tile. Fields are immediately usable as svg
// attribute values.
type Cell struct {
	X, Y     int
	Fill     string
	Opacity  string
	Observer bool
}

const (
	emptyFill = "#000000"

	visibleOpacity = "1.0"
	hiddenOpacity  = "0.30"
)

// Convert flattens a frame to the [x][y] cell view-model: each tile's fill
// comes from its object color, cells outside the visibility mask are dimmed,
// and the observer tile is flagged for its outline.
func Convert(f Frame) [][]Cell {
	w, h := f.Grid.Width(), f.Grid.Height()

	cells := make([][]Cell, w)
	for x := 0; x < w; x++ {
		cells[x] = make([]Cell, h)
		for y := 0; y < h; y++ {
			fill := emptyFill
			if obj := f.Grid.Get(x, y); obj != nil {
				fill = rendering.Colors[obj.Color()].Hex()
			}

			opacity := visibleOpacity
			if f.Vis != nil && !f.Vis[x][y] {
				opacity = hiddenOpacity
			}

			cells[x][y] = Cell{
				X:        x,
				Y:        y,
				Fill:     fill,
				Opacity:  opacity,
				Observer: f.Observer.X == x && f.Observer.Y == y,
			}
		}
	}

	return cells
}
