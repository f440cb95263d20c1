package squircle

import (
	"math"
	"strings"
	"testing"
)

func TestGenerate_StartsAndCloses(t *testing.T) {
	cases := []struct {
		name    string
		w, h, r float64
	}{
		{"square", 100, 100, 20},
		{"wide", 300, 80, 12},
		{"tall", 60, 400, 30},
		{"zero radius", 100, 100, 0},
		{"oversized radius", 50, 50, 500},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			d := Generate(tt.w, tt.h, tt.r)
			if !strings.HasPrefix(d, "M ") {
				t.Errorf("path data %q does not begin with a move-to", d)
			}
			if !strings.HasSuffix(d, "Z") {
				t.Errorf("path data %q does not end with a close", d)
			}
		})
	}
}

func TestGenerate_DegenerateDimensions(t *testing.T) {
	cases := []struct {
		name    string
		w, h, r float64
	}{
		{"zero width", 0, 100, 10},
		{"zero height", 100, 0, 10},
		{"both zero", 0, 0, 10},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if d := Generate(tt.w, tt.h, tt.r); d != "" {
				t.Errorf("Generate(%v, %v, %v) = %q, want empty string", tt.w, tt.h, tt.r, d)
			}
		})
	}
}

func TestGenerate_ClampsRadius(t *testing.T) {
	// 20 = 40/2 is the clamp ceiling for both calls, so the starting
	// coordinates must agree.
	a := Generate(40, 100, 50)
	b := Generate(40, 100, 20)
	if !strings.HasPrefix(a, "M 20 0 ") {
		t.Errorf("Generate(40, 100, 50) starts %q, want M 20 0", a[:min(len(a), 12)])
	}
	if !strings.HasPrefix(b, "M 20 0 ") {
		t.Errorf("Generate(40, 100, 20) starts %q, want M 20 0", b[:min(len(b), 12)])
	}
	if a != b {
		t.Error("clamped and pre-clamped radius produced different contours")
	}
}

func TestGenerate_NegativeRadiusClampsToZero(t *testing.T) {
	got := Generate(100, 100, -15)
	want := Generate(100, 100, 0)
	if got != want {
		t.Errorf("Generate with negative radius = %q, want same as radius 0 (%q)", got, want)
	}
	if !strings.HasPrefix(got, "M 0 0 ") {
		t.Errorf("zero-radius contour starts %q, want M 0 0", got[:min(len(got), 12)])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(123.4, 567.8, 21.5)
	b := Generate(123.4, 567.8, 21.5)
	if a != b {
		t.Error("identical inputs produced different output")
	}
}

func TestGenerate_DistinctDimensionsDistinctOutput(t *testing.T) {
	if Generate(100, 100, 20) == Generate(200, 100, 20) {
		t.Error("different widths produced identical contours")
	}
	if Generate(100, 100, 20) == Generate(100, 100, 30) {
		t.Error("different radii produced identical contours")
	}
}

func TestGenerateRect_MatchesPositional(t *testing.T) {
	got := GenerateRect(Rect{Width: 140, Height: 90, Radius: 18})
	want := Generate(140, 90, 18)
	if got != want {
		t.Errorf("GenerateRect = %q, want %q", got, want)
	}
}

func TestEffectiveRadius(t *testing.T) {
	cases := []struct {
		name    string
		w, h, r float64
		want    float64
	}{
		{"unclamped", 100, 100, 20, 20},
		{"clamped by width", 40, 100, 50, 20},
		{"clamped by height", 100, 30, 50, 15},
		{"negative clamps to zero", 100, 100, -5, 0},
		{"exact half", 80, 100, 40, 40},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveRadius(tt.w, tt.h, tt.r); got != tt.want {
				t.Errorf("EffectiveRadius(%v, %v, %v) = %v, want %v", tt.w, tt.h, tt.r, got, tt.want)
			}
		})
	}
}

func TestContour_ElementCount(t *testing.T) {
	p := contour(100, 100, 20)
	// Move, then per corner one line and three cubics, then close.
	if got := len(p.Elements()); got != 18 {
		t.Fatalf("contour has %d elements, want 18", got)
	}
}

// TestContour_CornerSymmetry checks that each corner is the exact
// quarter-turn image of the canonical top-right corner, not an
// independent approximation.
func TestContour_CornerSymmetry(t *testing.T) {
	const w, h, r = 200.0, 120.0, 25.0
	const tol = 1e-9

	p := contour(w, h, r)
	elems := p.Elements()

	anchors := [4]Point{
		Pt(w-r, 0),
		Pt(w, h-r),
		Pt(r, h),
		Pt(0, r),
	}

	// cubics for corner k occupy elements 2+4k .. 4+4k.
	cornerCubics := func(k int) [3]CubicTo {
		var out [3]CubicTo
		for i := 0; i < 3; i++ {
			c, ok := elems[2+4*k+i].(CubicTo)
			if !ok {
				t.Fatalf("element %d of corner %d is %T, want CubicTo", i, k, elems[2+4*k+i])
			}
			out[i] = c
		}
		return out
	}

	canonical := cornerCubics(0)
	for k := 1; k < 4; k++ {
		got := cornerCubics(k)
		for i := 0; i < 3; i++ {
			checkRotated := func(name string, base, pt Point) {
				want := anchors[k].Add(base.Sub(anchors[0]).RotateQuarter(k))
				if math.Abs(pt.X-want.X) > tol || math.Abs(pt.Y-want.Y) > tol {
					t.Errorf("corner %d cubic %d %s = %v, want %v", k, i, name, pt, want)
				}
			}
			checkRotated("control1", canonical[i].Control1, got[i].Control1)
			checkRotated("control2", canonical[i].Control2, got[i].Control2)
			checkRotated("end", canonical[i].Point, got[i].Point)
		}
	}
}

// TestContour_ClosesWhereItStarted checks that the last corner lands
// back on the move-to point so the close command never draws a visible
// edge.
func TestContour_ClosesWhereItStarted(t *testing.T) {
	p := contour(150, 90, 22)
	elems := p.Elements()

	start, ok := elems[0].(MoveTo)
	if !ok {
		t.Fatalf("first element is %T, want MoveTo", elems[0])
	}
	last, ok := elems[len(elems)-2].(CubicTo)
	if !ok {
		t.Fatalf("second-to-last element is %T, want CubicTo", elems[len(elems)-2])
	}
	if math.Abs(last.Point.X-start.Point.X) > 1e-9 || math.Abs(last.Point.Y-start.Point.Y) > 1e-9 {
		t.Errorf("contour ends at %v, want %v", last.Point, start.Point)
	}
}
