package squircle

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path built from move, line, and cubic
// Bezier commands.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 20),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// String renders the path as SVG path data: absolute M/L/C/Z commands
// separated by single spaces. An empty path renders as the empty
// string.
func (p *Path) String() string {
	if len(p.elements) == 0 {
		return ""
	}
	var b strings.Builder
	for i, elem := range p.elements {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch e := elem.(type) {
		case MoveTo:
			b.WriteString("M ")
			writeCoords(&b, e.Point)
		case LineTo:
			b.WriteString("L ")
			writeCoords(&b, e.Point)
		case CubicTo:
			b.WriteString("C ")
			writeCoords(&b, e.Control1)
			b.WriteByte(' ')
			writeCoords(&b, e.Control2)
			b.WriteByte(' ')
			writeCoords(&b, e.Point)
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func writeCoords(b *strings.Builder, pt Point) {
	b.WriteString(fmtCoord(pt.X))
	b.WriteByte(' ')
	b.WriteString(fmtCoord(pt.Y))
}

// fmtCoord formats a coordinate compactly: rounded to six decimal
// places, trailing zeros dropped. Rounding keeps the output stable
// against float noise from control-point scaling.
func fmtCoord(v float64) string {
	v = math.Round(v*1e6) / 1e6
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
