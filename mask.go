package squircle

import (
	"image"

	"golang.org/x/image/vector"
)

// Mask rasterizes the squircle contour into an 8-bit coverage mask.
// Hosts that composite raster masks instead of applying vector clip
// contours can multiply an element's alpha by the result. A zero (or
// negative) dimension yields an empty mask.
func Mask(width, height int, radius float64) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, max(width, 0), max(height, 0)))
	if width <= 0 || height <= 0 {
		return dst
	}

	z := vector.NewRasterizer(width, height)
	for _, elem := range contour(float64(width), float64(height), radius).Elements() {
		switch e := elem.(type) {
		case MoveTo:
			z.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			z.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			z.CubeTo(
				float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case Close:
			z.ClosePath()
		}
	}
	z.Draw(dst, dst.Bounds(), image.Opaque, image.Point{})
	return dst
}
