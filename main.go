/*
Demo driver for the multigrid spatial core: loads an ascii map, walks an
agent around it, and serves a live view of the agent's visibility mask.
With -snapshot, renders a single frame to a png and exits instead.
*/

package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"multigrid/grid"
	"multigrid/server"
	"multigrid/server/gridview"
	"multigrid/world"

	channerics "github.com/niceyeti/channerics/channels"
)

var defaultMap = []string{
	"WWWWWWWWWWWW",
	"W....W.....W",
	"W....W..o..W",
	"W>...W.....W",
	"W....WWW.WWW",
	"W..........W",
	"W....FFF..GW",
	"WWWWWWWWWWWW",
}

func main() {
	addr := flag.String("addr", "localhost:8080", "address to serve the live view on")
	snapshot := flag.String("snapshot", "", "render one frame to this png file and exit")
	tick := flag.Duration("tick", 400*time.Millisecond, "agent step period")
	flag.Parse()

	g, err := grid.FromStrings(defaultMap)
	if err != nil {
		log.Fatal(err)
	}
	pos, dir, ok := g.AgentPos()
	if !ok {
		log.Fatal("map contains no agent")
	}

	cfg := world.DefaultConfig()

	if *snapshot != "" {
		if err := writeSnapshot(*snapshot, g, pos, cfg); err != nil {
			log.Fatal(err)
		}
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initial := observe(g, pos, cfg)

	frames := make(chan gridview.Frame)
	go patrol(ctx, g, pos, dir, *tick, cfg, frames)

	srv, err := server.NewServer(ctx, *addr, initial, frames)
	if err != nil {
		log.Fatal(err)
	}
	log.Fatal(srv.Serve())
}

// observe snapshots the world from the agent's position: a grid copy, the
// visibility mask computed over it, and the observer location.
func observe(g *grid.Grid, pos grid.Point, cfg *world.Config) gridview.Frame {
	mask := grid.ComputeVisibility(g, pos)
	return gridview.Frame{
		Grid:     g.Copy(),
		Vis:      mask,
		Observer: pos,
		Config:   cfg,
	}
}

// patrol steps the agent around the map: forward while the next cell is
// free, otherwise turn left. Each step publishes an observation frame and
// logs the agent's egocentric encoding dimensions.
func patrol(
	ctx context.Context,
	g *grid.Grid,
	pos grid.Point,
	dir int,
	tick time.Duration,
	cfg *world.Config,
	frames chan<- gridview.Frame,
) {
	defer close(frames)

	for range channerics.NewTicker(ctx.Done(), tick) {
		next := ahead(pos, dir)
		if g.Get(next.X, next.Y) != nil {
			dir = turnLeft(dir)
		} else {
			g.Set(pos.X, pos.Y, nil)
			pos = next
		}
		g.Set(pos.X, pos.Y, world.NewAgent("red", dir))

		frame := observe(g, pos, cfg)

		// The egocentric observation the agent itself would receive.
		ego, err := egoView(g, pos, dir)
		if err != nil {
			log.Println("ego view:", err)
			continue
		}
		obs := ego.EncodeForAgents(cfg, grid.Point{X: ego.Width() / 2, Y: ego.Height() - 1}, nil)
		w, h, d := obs.Dims()
		log.Printf("agent at (%d,%d) facing %d, observation %dx%dx%d", pos.X, pos.Y, dir, w, h, d)

		select {
		case frames <- frame:
		case <-ctx.Done():
			return
		}
	}
}

const egoSpan = 5

// egoView crops the agent's forward-facing window and rotates it so the
// agent faces up, as an agent-relative observation.
func egoView(g *grid.Grid, pos grid.Point, dir int) (*grid.Grid, error) {
	half := egoSpan / 2

	var x0, y0 int
	switch dir {
	case world.DirRight:
		x0, y0 = pos.X, pos.Y-half
	case world.DirDown:
		x0, y0 = pos.X-half, pos.Y
	case world.DirLeft:
		x0, y0 = pos.X-egoSpan+1, pos.Y-half
	case world.DirUp:
		x0, y0 = pos.X-half, pos.Y-egoSpan+1
	default:
		return nil, fmt.Errorf("invalid direction %d", dir)
	}

	view, err := g.Slice(x0, y0, egoSpan, egoSpan)
	if err != nil {
		return nil, err
	}
	// Rotate until the agent's facing becomes up.
	for i := 0; i < dir+1; i++ {
		view = view.RotateLeft()
	}
	return view, nil
}

func ahead(pos grid.Point, dir int) grid.Point {
	switch dir {
	case world.DirRight:
		return grid.Point{X: pos.X + 1, Y: pos.Y}
	case world.DirDown:
		return grid.Point{X: pos.X, Y: pos.Y + 1}
	case world.DirLeft:
		return grid.Point{X: pos.X - 1, Y: pos.Y}
	default:
		return grid.Point{X: pos.X, Y: pos.Y - 1}
	}
}

func turnLeft(dir int) int {
	return (dir + 3) % 4
}

// writeSnapshot renders the full map with the observer's visible cells
// highlighted, at the default tile resolution.
func writeSnapshot(path string, g *grid.Grid, pos grid.Point, cfg *world.Config) error {
	mask := grid.ComputeVisibility(g, pos)
	highlights := grid.VisibilityHighlights(mask, 0)

	r := grid.NewRenderer()
	img := r.Render(cfg, g, grid.TilePixels, highlights)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img.ToRGBA()); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	log.Printf("wrote %s", path)
	return nil
}
