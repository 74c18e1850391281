package grid

import (
	"fmt"
	"sync"

	"multigrid/rendering"
	"multigrid/world"
)

// TilePixels is the default edge length of a rendered tile.
const TilePixels = 32

// supersample is the factor tiles are rendered above their final resolution
// before the anti-aliasing downsample.
const supersample = 3

// Renderer rasterizes grids tile by tile, memoizing each rendered tile for
// the lifetime of the renderer. Rendering a given object/highlight/size
// combination is pure, so cached tiles are never invalidated or evicted.
// The cache is mutex-guarded; a host may render grids from multiple
// goroutines.
type Renderer struct {
	mu    sync.Mutex
	tiles map[string]*rendering.Image
}

func NewRenderer() *Renderer {
	return &Renderer{tiles: make(map[string]*rendering.Image)}
}

// tileKey builds the cache key: the object's encoding (or an empty-cell
// sentinel) combined with the highlight marks and tile size. These three
// together are injective over visually distinct tiles.
func tileKey(cfg *world.Config, obj world.Object, highlights []int, tileSize int) string {
	enc := "empty"
	if obj != nil {
		enc = fmt.Sprintf("%v", obj.Encode(cfg, false))
	}
	return fmt.Sprintf("%s|%v|%d", enc, highlights, tileSize)
}

// RenderTile returns the pixel block for one cell. On a cache hit the stored
// image is returned unchanged; the object's render callback is not invoked
// again. On a miss the tile is drawn at supersampled resolution: the top and
// left grid lines, the object (if any), then one translucent tint per
// highlight mark (marks resolve to colors modulo the color table). The result
// is block-average downsampled before caching.
func (r *Renderer) RenderTile(cfg *world.Config, obj world.Object, highlights []int, tileSize int) *rendering.Image {
	key := tileKey(cfg, obj, highlights, tileSize)

	r.mu.Lock()
	defer r.mu.Unlock()
	if tile, ok := r.tiles[key]; ok {
		return tile
	}

	img := rendering.NewImage(tileSize*supersample, tileSize*supersample)

	// Grid lines along the top and left edges.
	rendering.FillCoords(img, rendering.PointInRect(0, 0.031, 0, 1), rendering.GridLine)
	rendering.FillCoords(img, rendering.PointInRect(0, 1, 0, 0.031), rendering.GridLine)

	if obj != nil {
		obj.Render(img)
	}

	for _, mark := range highlights {
		tint := rendering.Colors[cfg.HighlightColor(mark)]
		rendering.Highlight(img, tint)
	}

	tile := rendering.Downsample(img, supersample)
	r.tiles[key] = tile
	return tile
}

// Render rasterizes the whole grid at the given tile size. highlights, when
// non-nil, supplies the marks for cell (x,y) at highlights[x][y]; a nil mask
// renders every tile unhighlighted.
func (r *Renderer) Render(cfg *world.Config, g *Grid, tileSize int, highlights [][][]int) *rendering.Image {
	img := rendering.NewImage(g.width*tileSize, g.height*tileSize)

	for j := 0; j < g.height; j++ {
		for i := 0; i < g.width; i++ {
			var marks []int
			if highlights != nil {
				marks = highlights[i][j]
			}
			tile := r.RenderTile(cfg, g.Get(i, j), marks, tileSize)
			img.Blit(tile, i*tileSize, j*tileSize)
		}
	}

	return img
}

// VisibilityHighlights converts a visibility mask to a per-cell highlight
// mask marking every visible cell with the given color index, the form
// Render consumes for observer overlays.
func VisibilityHighlights(mask Mask, mark int) [][][]int {
	out := make([][][]int, len(mask))
	for x := range mask {
		out[x] = make([][]int, len(mask[x]))
		for y := range mask[x] {
			if mask[x][y] {
				out[x][y] = []int{mark}
			}
		}
	}
	return out
}
