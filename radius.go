package squircle

// DefaultMobileBreakpoint is the viewport width at or below which the
// mobile value of a responsive radius applies, when no breakpoint is
// configured.
const DefaultMobileBreakpoint = 769

// Radius is a corner radius setting: either a single value used at
// every viewport width, or a mobile/desktop pair selected by comparing
// the viewport width against a breakpoint. The zero value is a fixed
// radius of 0.
type Radius struct {
	mobile     float64
	desktop    float64
	responsive bool
}

// Fixed returns a radius that is the same at every viewport width.
func Fixed(r float64) Radius {
	return Radius{mobile: r, desktop: r}
}

// Responsive returns a radius that resolves to mobile when the
// viewport width is at or below the breakpoint, and to desktop above
// it.
func Responsive(mobile, desktop float64) Radius {
	return Radius{mobile: mobile, desktop: desktop, responsive: true}
}

// Resolve returns the radius for the given viewport width. A
// breakpoint of 0 means [DefaultMobileBreakpoint]. Fixed settings
// ignore both arguments.
func (r Radius) Resolve(viewportWidth, breakpoint float64) float64 {
	if !r.responsive {
		return r.desktop
	}
	if breakpoint == 0 {
		breakpoint = DefaultMobileBreakpoint
	}
	if viewportWidth <= breakpoint {
		return r.mobile
	}
	return r.desktop
}
