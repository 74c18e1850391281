// rendering is the pixel-primitive library used by the tile renderer:
// a dense RGB buffer plus shape fills over normalized coordinates, block-average
// downsampling for anti-aliasing, and translucent highlight overlays.
package rendering

import (
	"image"
	"math"
)

// RGB is a single pixel color.
type RGB [3]uint8

// Image is a dense, row-major RGB pixel buffer (3 bytes per pixel).
// It is the buffer type passed to object render callbacks.
type Image struct {
	Width, Height int
	Pix           []uint8
}

// NewImage allocates a zeroed (black) buffer of the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// At returns the pixel at (x,y). Callers are expected to stay in bounds.
func (m *Image) At(x, y int) RGB {
	i := (y*m.Width + x) * 3
	return RGB{m.Pix[i], m.Pix[i+1], m.Pix[i+2]}
}

// SetPixel writes the pixel at (x,y).
func (m *Image) SetPixel(x, y int, c RGB) {
	i := (y*m.Width + x) * 3
	m.Pix[i], m.Pix[i+1], m.Pix[i+2] = c[0], c[1], c[2]
}

// Blit copies src into the receiver with its top-left corner at (x0,y0).
func (m *Image) Blit(src *Image, x0, y0 int) {
	for y := 0; y < src.Height; y++ {
		di := ((y0+y)*m.Width + x0) * 3
		si := y * src.Width * 3
		copy(m.Pix[di:di+src.Width*3], src.Pix[si:si+src.Width*3])
	}
}

// ToRGBA converts the buffer to a stdlib image for PNG export and display.
func (m *Image) ToRGBA() *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			c := m.At(x, y)
			i := out.PixOffset(x, y)
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = c[0], c[1], c[2], 0xff
		}
	}
	return out
}

// ShapeFn is a predicate over normalized coordinates: both arguments are in
// [0,1), sampled at each pixel center.
type ShapeFn func(x, y float64) bool

// FillCoords sets every pixel whose normalized center satisfies the predicate.
func FillCoords(img *Image, fn ShapeFn, c RGB) {
	for py := 0; py < img.Height; py++ {
		yf := (float64(py) + 0.5) / float64(img.Height)
		for px := 0; px < img.Width; px++ {
			xf := (float64(px) + 0.5) / float64(img.Width)
			if fn(xf, yf) {
				img.SetPixel(px, py, c)
			}
		}
	}
}

// PointInRect returns a shape predicate for an axis-aligned rectangle.
func PointInRect(xmin, xmax, ymin, ymax float64) ShapeFn {
	return func(x, y float64) bool {
		return x >= xmin && x <= xmax && y >= ymin && y <= ymax
	}
}

// PointInCircle returns a shape predicate for a circle centered at (cx,cy).
func PointInCircle(cx, cy, r float64) ShapeFn {
	return func(x, y float64) bool {
		return (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r
	}
}

// PointInTriangle returns a shape predicate for the triangle (a, b, c),
// via barycentric sign tests.
func PointInTriangle(ax, ay, bx, by, cx, cy float64) ShapeFn {
	return func(x, y float64) bool {
		v0x, v0y := cx-ax, cy-ay
		v1x, v1y := bx-ax, by-ay
		v2x, v2y := x-ax, y-ay

		dot00 := v0x*v0x + v0y*v0y
		dot01 := v0x*v1x + v0y*v1y
		dot02 := v0x*v2x + v0y*v2y
		dot11 := v1x*v1x + v1y*v1y
		dot12 := v1x*v2x + v1y*v2y

		inv := 1.0 / (dot00*dot11 - dot01*dot01)
		u := (dot11*dot02 - dot01*dot12) * inv
		v := (dot00*dot12 - dot01*dot02) * inv
		return u >= 0 && v >= 0 && u+v < 1
	}
}

// Rotate wraps a shape predicate, rotating its input about (cx,cy) by theta
// radians. Rotating the inputs by -theta rotates the rendered shape by +theta.
func Rotate(fn ShapeFn, cx, cy, theta float64) ShapeFn {
	sin, cos := math.Sin(-theta), math.Cos(-theta)
	return func(x, y float64) bool {
		x, y = x-cx, y-cy
		x2 := cx + x*cos - y*sin
		y2 := cy + y*cos + x*sin
		return fn(x2, y2)
	}
}

// Downsample shrinks the image by the given factor, averaging each factor²
// block of pixels. This is the anti-aliasing half of supersampled tile
// rendering. Dimensions are expected to be exact multiples of the factor.
func Downsample(img *Image, factor int) *Image {
	out := NewImage(img.Width/factor, img.Height/factor)
	n := factor * factor
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			var sum [3]int
			for dy := 0; dy < factor; dy++ {
				for dx := 0; dx < factor; dx++ {
					c := img.At(x*factor+dx, y*factor+dy)
					sum[0] += int(c[0])
					sum[1] += int(c[1])
					sum[2] += int(c[2])
				}
			}
			out.SetPixel(x, y, RGB{
				uint8(sum[0] / n),
				uint8(sum[1] / n),
				uint8(sum[2] / n),
			})
		}
	}
	return out
}
