package rendering

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var black = RGB{0, 0, 0}

func TestShapeFills(t *testing.T) {
	Convey("When shapes are filled over normalized coordinates", t, func() {
		Convey("When the full unit rect is filled", func() {
			img := NewImage(8, 8)
			FillCoords(img, PointInRect(0, 1, 0, 1), Colors["red"])
			So(img.At(0, 0), ShouldResemble, Colors["red"])
			So(img.At(7, 7), ShouldResemble, Colors["red"])
		})

		Convey("When the left half is filled", func() {
			img := NewImage(10, 10)
			FillCoords(img, PointInRect(0, 0.5, 0, 1), Colors["blue"])
			So(img.At(4, 5), ShouldResemble, Colors["blue"])
			So(img.At(5, 5), ShouldResemble, black)
		})

		Convey("When a circle is filled", func() {
			img := NewImage(10, 10)
			FillCoords(img, PointInCircle(0.5, 0.5, 0.31), Colors["green"])
			So(img.At(5, 5), ShouldResemble, Colors["green"])
			So(img.At(0, 0), ShouldResemble, black)
			So(img.At(9, 5), ShouldResemble, black)
		})

		Convey("When a triangle is filled", func() {
			img := NewImage(20, 20)
			FillCoords(img, PointInTriangle(0.12, 0.19, 0.87, 0.50, 0.12, 0.81), Colors["red"])
			// Centroid is inside, far corners outside.
			So(img.At(7, 10), ShouldResemble, Colors["red"])
			So(img.At(19, 0), ShouldResemble, black)
			So(img.At(19, 19), ShouldResemble, black)
		})

		Convey("When a shape is rotated a half turn", func() {
			img := NewImage(10, 10)
			left := PointInRect(0, 0.5, 0, 1)
			FillCoords(img, Rotate(left, 0.5, 0.5, 3.14159265358979), Colors["red"])
			So(img.At(8, 5), ShouldResemble, Colors["red"])
			So(img.At(1, 5), ShouldResemble, black)
		})
	})
}

func TestImageOps(t *testing.T) {
	Convey("When image buffers are composed", t, func() {
		Convey("When a tile is blitted at an offset", func() {
			dst := NewImage(8, 8)
			src := NewImage(2, 2)
			FillCoords(src, PointInRect(0, 1, 0, 1), Colors["yellow"])

			dst.Blit(src, 4, 2)
			So(dst.At(4, 2), ShouldResemble, Colors["yellow"])
			So(dst.At(5, 3), ShouldResemble, Colors["yellow"])
			So(dst.At(3, 2), ShouldResemble, black)
			So(dst.At(6, 2), ShouldResemble, black)
		})

		Convey("When downsampling averages blocks", func() {
			img := NewImage(4, 4)
			// Only the top-left 2x2 block is white.
			for y := 0; y < 2; y++ {
				for x := 0; x < 2; x++ {
					img.SetPixel(x, y, RGB{255, 255, 255})
				}
			}

			out := Downsample(img, 2)
			So(out.Width, ShouldEqual, 2)
			So(out.Height, ShouldEqual, 2)
			So(out.At(0, 0), ShouldResemble, RGB{255, 255, 255})
			So(out.At(1, 0), ShouldResemble, black)
			So(out.At(1, 1), ShouldResemble, black)
		})

		Convey("When converting to a stdlib image", func() {
			img := NewImage(2, 1)
			img.SetPixel(1, 0, Colors["red"])
			rgba := img.ToRGBA()
			r, g, b, a := rgba.At(1, 0).RGBA()
			So(r>>8, ShouldEqual, 255)
			So(g>>8, ShouldEqual, 0)
			So(b>>8, ShouldEqual, 0)
			So(a>>8, ShouldEqual, 255)
		})
	})
}

func TestColors(t *testing.T) {
	Convey("When palette colors are manipulated", t, func() {
		Convey("When converting to css hex", func() {
			So(Colors["red"].Hex(), ShouldEqual, "#ff0000")
			So(Colors["grey"].Hex(), ShouldEqual, "#646464")
		})

		Convey("When scaling channels", func() {
			scaled := Colors["red"].Scale(0.5)
			So(scaled[0], ShouldEqual, 127)
			So(scaled[1], ShouldEqual, 0)
			So(scaled[2], ShouldEqual, 0)
		})

		Convey("When highlighting a buffer", func() {
			img := NewImage(2, 2)
			Highlight(img, Colors["red"])
			tinted := img.At(0, 0)
			So(tinted[0], ShouldBeGreaterThan, 0)
			So(tinted[1], ShouldEqual, 0)
			So(tinted[2], ShouldEqual, 0)
			So(img.At(1, 1), ShouldResemble, tinted)
		})
	})
}
