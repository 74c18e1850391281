package grid

import (
	"testing"

	"multigrid/rendering"
	"multigrid/world"

	. "github.com/smartystreets/goconvey/convey"
)

// countingObject records render invocations, for exercising the tile cache.
type countingObject struct {
	renders int
}

func (o *countingObject) Type() string  { return "ball" }
func (o *countingObject) Color() string { return "red" }
func (o *countingObject) Opaque() bool  { return false }

func (o *countingObject) Encode(cfg *world.Config, _ bool) []uint8 {
	enc := make([]uint8, cfg.EncodeDim)
	enc[0] = cfg.ObjectIdx["ball"]
	enc[1] = cfg.ColorIdx["red"]
	return enc
}

func (o *countingObject) Render(img *rendering.Image) {
	o.renders++
	rendering.FillCoords(img, rendering.PointInRect(0, 1, 0, 1), rendering.Colors["red"])
}

func (o *countingObject) Clone() world.Object { return o }

func TestTileCache(t *testing.T) {
	cfg := world.DefaultConfig()

	Convey("When tiles are rendered through the cache", t, func() {
		Convey("When a repeated tile is served from cache", func() {
			r := NewRenderer()
			obj := &countingObject{}

			first := r.RenderTile(cfg, obj, nil, 8)
			second := r.RenderTile(cfg, obj, nil, 8)

			So(second, ShouldEqual, first)
			So(obj.renders, ShouldEqual, 1)
		})

		Convey("When the highlight marks differ", func() {
			r := NewRenderer()
			obj := &countingObject{}

			plain := r.RenderTile(cfg, obj, nil, 8)
			marked := r.RenderTile(cfg, obj, []int{0}, 8)

			So(marked, ShouldNotEqual, plain)
			So(obj.renders, ShouldEqual, 2)
		})

		Convey("When the tile size differs", func() {
			r := NewRenderer()
			obj := &countingObject{}

			small := r.RenderTile(cfg, obj, nil, 8)
			large := r.RenderTile(cfg, obj, nil, 16)

			So(small.Width, ShouldEqual, 8)
			So(small.Height, ShouldEqual, 8)
			So(large.Width, ShouldEqual, 16)
			So(obj.renders, ShouldEqual, 2)
		})

		Convey("When structurally identical objects share a tile", func() {
			r := NewRenderer()
			a := &countingObject{}
			b := &countingObject{}

			first := r.RenderTile(cfg, a, nil, 8)
			second := r.RenderTile(cfg, b, nil, 8)

			So(second, ShouldEqual, first)
			So(a.renders, ShouldEqual, 1)
			So(b.renders, ShouldEqual, 0)
		})

		Convey("When an empty tile carries only the grid lines", func() {
			r := NewRenderer()
			tile := r.RenderTile(cfg, nil, nil, 8)

			So(tile.At(0, 0), ShouldNotResemble, rendering.RGB{0, 0, 0})
			So(tile.At(4, 4), ShouldResemble, rendering.RGB{0, 0, 0})
		})

		Convey("When a highlight tints the whole tile", func() {
			r := NewRenderer()
			plain := r.RenderTile(cfg, nil, nil, 8)
			marked := r.RenderTile(cfg, nil, []int{0}, 8)

			So(marked.At(4, 4), ShouldNotResemble, plain.At(4, 4))
		})
	})
}

func TestRenderGrid(t *testing.T) {
	cfg := world.DefaultConfig()

	Convey("When a whole grid is rasterized", t, func() {
		Convey("When tiles land at their cell offsets", func() {
			g := mustGrid(3, 3)
			g.Set(1, 1, world.NewGoal())

			r := NewRenderer()
			img := r.Render(cfg, g, 8, nil)

			So(img.Width, ShouldEqual, 24)
			So(img.Height, ShouldEqual, 24)
			// Center of the goal tile is green; center of an empty tile black.
			So(img.At(12, 12), ShouldResemble, rendering.Colors["green"])
			So(img.At(4, 4), ShouldResemble, rendering.RGB{0, 0, 0})
		})

		Convey("When highlights apply per cell", func() {
			g := mustGrid(3, 3)
			highlights := make([][][]int, 3)
			for x := range highlights {
				highlights[x] = make([][]int, 3)
			}
			highlights[0][0] = []int{0}

			r := NewRenderer()
			img := r.Render(cfg, g, 8, highlights)

			So(img.At(4, 4), ShouldNotResemble, rendering.RGB{0, 0, 0})
			So(img.At(12, 12), ShouldResemble, rendering.RGB{0, 0, 0})
		})
	})
}

func TestVisibilityHighlights(t *testing.T) {
	Convey("When a mask becomes a highlight overlay", t, func() {
		mask := NewMask(3, 3)
		mask[0][0] = true
		mask[2][1] = true

		hl := VisibilityHighlights(mask, 4)
		So(hl[0][0], ShouldResemble, []int{4})
		So(hl[2][1], ShouldResemble, []int{4})
		So(hl[1][1], ShouldBeNil)
	})
}
