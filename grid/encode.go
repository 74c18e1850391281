package grid

import (
	"bytes"
	"fmt"

	"multigrid/world"
)

// Tensor is a width×height×depth array of small unsigned channel values, the
// observation format consumed by learning agents.
type Tensor struct {
	width, height, depth int
	data                 []uint8
}

func newTensor(width, height, depth int) *Tensor {
	return &Tensor{
		width:  width,
		height: height,
		depth:  depth,
		data:   make([]uint8, width*height*depth),
	}
}

// Dims returns (width, height, depth).
func (t *Tensor) Dims() (int, int, int) { return t.width, t.height, t.depth }

// At returns channel c of cell (x,y).
func (t *Tensor) At(x, y, c int) uint8 {
	return t.data[(x*t.height+y)*t.depth+c]
}

func (t *Tensor) setCell(x, y int, enc []uint8) {
	copy(t.data[(x*t.height+y)*t.depth:], enc)
}

// Bytes returns a copy of the raw channel data, cells in x-major order.
func (t *Tensor) Bytes() []uint8 {
	return append([]uint8(nil), t.data...)
}

// Equal reports channel-for-channel equality.
func (t *Tensor) Equal(other *Tensor) bool {
	if other == nil {
		return false
	}
	return t.width == other.width &&
		t.height == other.height &&
		t.depth == other.depth &&
		bytes.Equal(t.data, other.data)
}

// Encode produces the width×height×D observation tensor for the grid, D per
// cfg.EncodeDim. A nil mask treats every cell as visible. Visible empty cells
// carry the empty sentinel in channel 0 and zero elsewhere; visible occupied
// cells carry the object's own encoding verbatim. Cells outside the mask are
// left at zero in every channel, distinguishable from "known empty" exactly
// when the empty sentinel index is non-zero, which the default object
// registry guarantees.
func (g *Grid) Encode(cfg *world.Config, vis Mask) *Tensor {
	return g.encode(cfg, vis, nil)
}

// EncodeForAgents is Encode with agent-relative identity: the occupied cell
// at agentPos encodes with the current-agent flag set.
func (g *Grid) EncodeForAgents(cfg *world.Config, agentPos Point, vis Mask) *Tensor {
	return g.encode(cfg, vis, &agentPos)
}

func (g *Grid) encode(cfg *world.Config, vis Mask, agentPos *Point) *Tensor {
	t := newTensor(g.width, g.height, cfg.EncodeDim)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if vis != nil && !vis[x][y] {
				continue
			}

			cell := g.Get(x, y)
			if cell == nil {
				t.data[(x*t.height+y)*t.depth] = cfg.EmptyIndex()
				continue
			}

			current := agentPos != nil && agentPos.X == x && agentPos.Y == y
			enc := cell.Encode(cfg, current)
			if len(enc) != cfg.EncodeDim {
				panic(fmt.Sprintf("grid: %s object encoded %d channels, config requires %d",
					cell.Type(), len(enc), cfg.EncodeDim))
			}
			t.setCell(x, y, enc)
		}
	}
	return t
}
