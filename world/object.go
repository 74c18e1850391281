package world

import (
	"math"

	"multigrid/rendering"
)

// Object is a single occupant of a grid cell. The grid core consumes only
// this capability set: an opacity predicate for the visibility sweep, a
// fixed-width numeric encoding, a render callback over a supersampled tile
// buffer, and the color/type identity used for containment queries.
type Object interface {
	Type() string
	Color() string
	// Opaque objects block sight propagation through their cell; the cell
	// itself is still seen.
	Opaque() bool
	// Encode returns exactly cfg.EncodeDim channels describing this object.
	// currentAgent is true only when the encoding is produced agent-relative
	// and this object sits at the observer's own position.
	Encode(cfg *Config, currentAgent bool) []uint8
	Render(img *rendering.Image)
	// Clone returns an independent copy; grid deep-copies rely on it.
	Clone() Object
}

// encodeBasic is the common layout: [type, color, state, 0...].
func encodeBasic(cfg *Config, typ, color string, state uint8) []uint8 {
	enc := make([]uint8, cfg.EncodeDim)
	enc[0] = cfg.ObjectIdx[typ]
	enc[1] = cfg.ColorIdx[color]
	enc[2] = state
	return enc
}

// Wall blocks both movement and sight.
type Wall struct {
	color string
}

func NewWall() *Wall { return &Wall{color: "grey"} }

func (w *Wall) Type() string  { return "wall" }
func (w *Wall) Color() string { return w.color }
func (w *Wall) Opaque() bool  { return true }

func (w *Wall) Encode(cfg *Config, _ bool) []uint8 {
	return encodeBasic(cfg, w.Type(), w.color, 0)
}

func (w *Wall) Render(img *rendering.Image) {
	rendering.FillCoords(img, rendering.PointInRect(0, 1, 0, 1), rendering.Colors[w.color])
}

func (w *Wall) Clone() Object {
	c := *w
	return &c
}

// Floor is a colored walkable cell; purely decorative for the spatial core.
type Floor struct {
	color string
}

func NewFloor(color string) *Floor { return &Floor{color: color} }

func (f *Floor) Type() string  { return "floor" }
func (f *Floor) Color() string { return f.color }
func (f *Floor) Opaque() bool  { return false }

func (f *Floor) Encode(cfg *Config, _ bool) []uint8 {
	return encodeBasic(cfg, f.Type(), f.color, 0)
}

func (f *Floor) Render(img *rendering.Image) {
	// Pale fill inside the grid lines.
	fill := rendering.Colors[f.color].Scale(0.5)
	rendering.FillCoords(img, rendering.PointInRect(0.031, 1, 0.031, 1), fill)
}

func (f *Floor) Clone() Object {
	c := *f
	return &c
}

// Goal marks a terminal cell.
type Goal struct {
	color string
}

func NewGoal() *Goal { return &Goal{color: "green"} }

func (g *Goal) Type() string  { return "goal" }
func (g *Goal) Color() string { return g.color }
func (g *Goal) Opaque() bool  { return false }

func (g *Goal) Encode(cfg *Config, _ bool) []uint8 {
	return encodeBasic(cfg, g.Type(), g.color, 0)
}

func (g *Goal) Render(img *rendering.Image) {
	rendering.FillCoords(img, rendering.PointInRect(0, 1, 0, 1), rendering.Colors[g.color])
}

func (g *Goal) Clone() Object {
	c := *g
	return &c
}

// Ball is a simple movable object.
type Ball struct {
	color string
}

func NewBall(color string) *Ball { return &Ball{color: color} }

func (b *Ball) Type() string  { return "ball" }
func (b *Ball) Color() string { return b.color }
func (b *Ball) Opaque() bool  { return false }

func (b *Ball) Encode(cfg *Config, _ bool) []uint8 {
	return encodeBasic(cfg, b.Type(), b.color, 0)
}

func (b *Ball) Render(img *rendering.Image) {
	rendering.FillCoords(img, rendering.PointInCircle(0.5, 0.5, 0.31), rendering.Colors[b.color])
}

func (b *Ball) Clone() Object {
	c := *b
	return &c
}

// Agent directions, in clockwise encoding order.
const (
	DirRight = 0
	DirDown  = 1
	DirLeft  = 2
	DirUp    = 3
)

// Agent is an observer occupying a cell, rendered as a triangle pointing
// along its facing.
type Agent struct {
	color     string
	Direction int
}

func NewAgent(color string, direction int) *Agent {
	return &Agent{color: color, Direction: direction}
}

func (a *Agent) Type() string  { return "agent" }
func (a *Agent) Color() string { return a.color }
func (a *Agent) Opaque() bool  { return false }

// Encode emits the facing in the state channel; when the extended channels
// are configured, the last channel flags the current agent.
func (a *Agent) Encode(cfg *Config, currentAgent bool) []uint8 {
	enc := encodeBasic(cfg, a.Type(), a.color, uint8(a.Direction))
	if currentAgent && cfg.EncodeDim >= 6 {
		enc[cfg.EncodeDim-1] = 1
	}
	return enc
}

func (a *Agent) Render(img *rendering.Image) {
	tri := rendering.PointInTriangle(0.12, 0.19, 0.87, 0.50, 0.12, 0.81)
	theta := 0.5 * math.Pi * float64(a.Direction)
	rendering.FillCoords(img, rendering.Rotate(tri, 0.5, 0.5, theta), rendering.Colors[a.color])
}

func (a *Agent) Clone() Object {
	c := *a
	return &c
}
