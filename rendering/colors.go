package rendering

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// highlightAlpha is the opacity of the translucent tint overlaid on
// highlighted tiles.
const highlightAlpha = 0.30

// Colors is the named palette shared by objects and highlight tints.
var Colors = map[string]RGB{
	"red":    hex("#ff0000"),
	"green":  hex("#00ff00"),
	"blue":   hex("#0000ff"),
	"purple": hex("#7027c3"),
	"yellow": hex("#ffff00"),
	"grey":   hex("#646464"),
}

// GridLine is the fixed color of tile edge lines.
var GridLine = Colors["grey"]

func hex(s string) RGB {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(fmt.Sprintf("rendering: bad palette hex %q: %v", s, err))
	}
	return fromColorful(c)
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.RGB255()
	return RGB{r, g, b}
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c[0]) / 255.0,
		G: float64(c[1]) / 255.0,
		B: float64(c[2]) / 255.0,
	}
}

// Hex returns the css hex form of a color, for the svg views.
func (c RGB) Hex() string {
	return toColorful(c).Hex()
}

// Scale returns the color with each channel scaled by t in [0,1].
func (c RGB) Scale(t float64) RGB {
	return RGB{
		uint8(float64(c[0]) * t),
		uint8(float64(c[1]) * t),
		uint8(float64(c[2]) * t),
	}
}

// Highlight overlays a translucent tint across the whole buffer, blending
// each pixel toward the tint color in linear RGB.
func Highlight(img *Image, tint RGB) {
	t := toColorful(tint)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			blended := toColorful(img.At(x, y)).BlendRgb(t, highlightAlpha)
			img.SetPixel(x, y, fromColorful(blended))
		}
	}
}
