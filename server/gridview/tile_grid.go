package gridview

import (
	"fmt"
	"html/template"

	channerics "github.com/niceyeti/channerics/channels"
)

// TileGrid renders the world as a flat svg grid of tiles, colored by cell
// content, dimmed outside the observer's visibility mask, with a ring marking
// the observer itself.
type TileGrid struct {
	name    string
	updates <-chan []EleUpdate
}

func NewTileGrid(
	done <-chan struct{},
	cells <-chan [][]Cell,
) *TileGrid {
	tg := &TileGrid{name: "tile-grid"}
	tg.updates = channerics.Convert(done, cells, tg.onUpdate)
	return tg
}

// Updates returns the ele-update stream for this view.
func (tg *TileGrid) Updates() <-chan []EleUpdate {
	return tg.updates
}

// onUpdate maps a cell snapshot to the attribute updates that bring the svg
// in line with it.
func (tg *TileGrid) onUpdate(cells [][]Cell) (ops []EleUpdate) {
	for _, col := range cells {
		for _, cell := range col {
			ops = append(ops, EleUpdate{
				EleId: fmt.Sprintf("%d-%d-tile", cell.X, cell.Y),
				Ops: []Op{
					{Key: "fill", Value: cell.Fill},
					{Key: "fill-opacity", Value: cell.Opacity},
				},
			})
			if cell.Observer {
				ops = append(ops, EleUpdate{
					EleId: "observer-ring",
					Ops: []Op{
						{Key: "x", Value: fmt.Sprintf("%d", cell.X*tileDim+1)},
						{Key: "y", Value: fmt.Sprintf("%d", cell.Y*tileDim+1)},
					},
				})
			}
		}
	}
	return
}

// tileDim is the svg tile edge in pixels; baked into the template and the
// observer-ring position updates.
const tileDim = 24

// Parse adds this view's template to the parent and returns its name. The
// parent must carry the arithmetic func-map.
func (tg *TileGrid) Parse(
	t *template.Template,
) (name string, err error) {
	name = tg.name
	_, err = t.Parse(
		`{{ define "` + name + `" }}
		{{ $x_cells := len . }}
		{{ $y_cells := len (index . 0) }}
		{{ $tile := ` + fmt.Sprintf("%d", tileDim) + ` }}
		{{ $width := mult $tile $x_cells }}
		{{ $height := mult $tile $y_cells }}
		<div id="grid_world">
			<svg id="` + tg.name + `"
				width="{{ add $width 2 }}px"
				height="{{ add $height 2 }}px"
				style="shape-rendering: crispEdges; background: #000;">
				{{ range $col := . }}
					{{ range $cell := $col }}
					<rect id="{{ $cell.X }}-{{ $cell.Y }}-tile"
						x="{{ mult $cell.X $tile }}"
						y="{{ mult $cell.Y $tile }}"
						width="{{ $tile }}"
						height="{{ $tile }}"
						fill="{{ $cell.Fill }}"
						fill-opacity="{{ $cell.Opacity }}"
						stroke="#333"
						stroke-width="1"/>
					{{ end }}
				{{ end }}
				<rect id="observer-ring"
					x="1" y="1"
					width="{{ sub $tile 2 }}"
					height="{{ sub $tile 2 }}"
					fill="none"
					stroke="yellow"
					stroke-width="2"/>
			</svg>
		</div>
		{{ end }}`)
	return
}
