package squircle

// Options configures a binding created by [Binder.Bind].
type Options struct {
	// Radius is the corner radius setting, fixed or responsive.
	Radius Radius

	// BorderWidth is the width of the decorative outline traced along
	// the contour. Zero (the default) disables the outline.
	BorderWidth float64

	// BorderColor is the outline color. Empty means the inherited text
	// color ("currentColor").
	BorderColor string

	// MobileBreakpoint overrides [DefaultMobileBreakpoint] for
	// responsive radius settings when non-zero.
	MobileBreakpoint float64
}

func (o Options) borderColor() string {
	if o.BorderColor == "" {
		return "currentColor"
	}
	return o.BorderColor
}
