package squircle

import "math"

// Rect describes the dimensions of a squircle rectangle. It is the
// record form of the (width, height, radius) triple accepted by
// [Generate].
type Rect struct {
	Width  float64
	Height float64
	Radius float64
}

// Generate returns SVG path data for a closed squircle contour of the
// given size. The contour starts at (radius, 0) on the top edge and
// runs clockwise; coordinates are absolute, in the same unit space as
// the inputs. The corner radius is clamped to half the shorter side
// (and to zero from below), so the contour can never self-intersect.
//
// If width or height is zero the result is the empty string: no
// partial contour is ever emitted.
//
// Generate is a pure function; identical inputs yield byte-identical
// output.
func Generate(width, height, radius float64) string {
	return contour(width, height, radius).String()
}

// GenerateRect is the record form of [Generate]. The two forms behave
// identically.
func GenerateRect(r Rect) string {
	return Generate(r.Width, r.Height, r.Radius)
}

// EffectiveRadius returns the corner radius actually used for curve
// construction: the requested radius clamped to [0, min(width, height)/2].
func EffectiveRadius(width, height, radius float64) float64 {
	r := math.Max(radius, 0)
	return math.Min(r, math.Min(width/2, height/2))
}

// contour builds the closed clockwise squircle contour: one move-to,
// then for each corner a line along the edge followed by the three
// corner cubics, then a close. Zero (or negative) width or height
// yields an empty path.
func contour(width, height, radius float64) *Path {
	p := NewPath()
	if width <= 0 || height <= 0 {
		return p
	}
	r := EffectiveRadius(width, height, radius)

	// Corner start anchors in clockwise order from the top edge.
	anchors := [4]Point{
		Pt(width-r, 0),
		Pt(width, height-r),
		Pt(r, height),
		Pt(0, r),
	}

	p.MoveTo(r, 0)
	for k, anchor := range anchors {
		p.LineTo(anchor.X, anchor.Y)
		appendCorner(p, anchor, k, r)
	}
	p.Close()
	return p
}
