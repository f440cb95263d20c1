package squircle

// cornerSegment is one cubic Bezier arc of the corner approximation.
// All points are offsets from the corner's start anchor, expressed as
// fractions of the effective radius.
type cornerSegment struct {
	ctrl1, ctrl2, end Point
}

// cornerTable is the canonical top-right corner: three chained cubics
// approximating one quarter of the superellipse x^4 + y^4 = r^4,
// Hermite-fitted at 30-degree parameter steps. The frame runs from the
// corner's start anchor at (0, 0) to the corner's end at (1, 1), x
// along the incoming edge and y in the turn direction, so every value
// stays in [0, 1]. The other three corners are the images of this
// table under discrete quarter-turn rotation, never fitted separately.
//
// Process-wide constant. Never mutated after initialization.
var cornerTable = [3]cornerSegment{
	{Pt(0.52035, 0), Pt(0.60061, 0.02268), Pt(0.70711, 0.0694)},
	{Pt(0.81185, 0.11535), Pt(0.88465, 0.18815), Pt(0.9306, 0.29289)},
	{Pt(0.97732, 0.39939), Pt(1, 0.47965), Pt(1, 1)},
}

// appendCorner emits the three corner cubics for quarter-turn index k
// (0 = top-right, clockwise), anchored at the corner's start point and
// scaled by the effective radius r. The current point must already be
// at the anchor.
func appendCorner(p *Path, anchor Point, k int, r float64) {
	for _, seg := range cornerTable {
		c1 := anchor.Add(seg.ctrl1.RotateQuarter(k).Mul(r))
		c2 := anchor.Add(seg.ctrl2.RotateQuarter(k).Mul(r))
		end := anchor.Add(seg.end.RotateQuarter(k).Mul(r))
		p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
}
