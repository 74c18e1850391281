// world defines the object catalog of the grid world and the configuration
// (encoding width, index tables) consumed by the grid encoder and renderer.
package world

import "fmt"

// Object type names, in index order. "unseen" deliberately holds index zero so
// that an all-zero encoding channel reads as unknown, while "empty" holds a
// non-zero index: the encoder relies on this to keep "known empty" and
// "never observed" distinguishable.
var DefaultObjectOrder = []string{
	"unseen",
	"empty",
	"wall",
	"floor",
	"door",
	"key",
	"ball",
	"box",
	"goal",
	"lava",
	"agent",
}

// Color names in index order; highlight marks resolve into this table modulo
// its length.
var DefaultColorOrder = []string{"red", "green", "blue", "purple", "yellow", "grey"}

// Config carries the world-level parameters of the encoding and rendering:
// the fixed channel count per cell and the object/color index registries.
type Config struct {
	// EncodeDim is D, the channel count of every cell encoding. Must be >= 3;
	// >= 6 enables the extended channels (e.g. the current-agent flag).
	EncodeDim int

	ObjectIdx  map[string]uint8
	ColorIdx   map[string]uint8
	ColorOrder []string
}

// NewConfig builds a config over the default registries.
func NewConfig(encodeDim int) (*Config, error) {
	if encodeDim < 3 {
		return nil, fmt.Errorf("world: encode dim %d below minimum 3", encodeDim)
	}

	objects := make(map[string]uint8, len(DefaultObjectOrder))
	for i, name := range DefaultObjectOrder {
		objects[name] = uint8(i)
	}
	colors := make(map[string]uint8, len(DefaultColorOrder))
	for i, name := range DefaultColorOrder {
		colors[name] = uint8(i)
	}

	return &Config{
		EncodeDim:  encodeDim,
		ObjectIdx:  objects,
		ColorIdx:   colors,
		ColorOrder: append([]string(nil), DefaultColorOrder...),
	}, nil
}

// DefaultConfig returns the standard 6-channel configuration.
func DefaultConfig() *Config {
	cfg, err := NewConfig(6)
	if err != nil {
		panic(err)
	}
	return cfg
}

// EmptyIndex is the sentinel written to channel 0 of visible empty cells.
func (c *Config) EmptyIndex() uint8 {
	return c.ObjectIdx["empty"]
}

// HighlightColor resolves a highlight mark to a color name, wrapping marks
// modulo the color table length.
func (c *Config) HighlightColor(mark int) string {
	return c.ColorOrder[mark%len(c.ColorOrder)]
}
