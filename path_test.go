package squircle

import "testing"

func TestPath_Basic(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CubicTo(10, 5, 5, 10, 0, 10)
	p.Close()

	if got := len(p.Elements()); got != 4 {
		t.Errorf("expected 4 elements, got %d", got)
	}
	// Close returns the current point to the subpath start.
	if cp := p.CurrentPoint(); cp != Pt(0, 0) {
		t.Errorf("current point after close = %v, want (0, 0)", cp)
	}
}

func TestPath_String(t *testing.T) {
	p := NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.CubicTo(10, 5, 5, 10, 0, 10)
	p.Close()

	want := "M 0 0 L 10 0 C 10 5 5 10 0 10 Z"
	if got := p.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestPath_StringEmpty(t *testing.T) {
	if got := NewPath().String(); got != "" {
		t.Errorf("empty path String() = %q, want empty", got)
	}
}

func TestFmtCoord(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{20, "20"},
		{0, "0"},
		{-0.00000001, "0"}, // rounds to zero, never "-0"
		{13.5355339059327, "13.535534"},
		{0.5, "0.5"},
		{-7.25, "-7.25"},
	}
	for _, tt := range tests {
		if got := fmtCoord(tt.in); got != tt.want {
			t.Errorf("fmtCoord(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
