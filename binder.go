package squircle

// Binder creates bindings that keep a surface's corner shape and
// optional outline synchronized with its rendered size.
type Binder struct {
	env Environment
}

// NewBinder returns a Binder operating in the given host environment.
func NewBinder(env Environment) *Binder {
	return &Binder{env: env}
}

// Bind attaches to a surface, runs one synchronization pass
// immediately, and registers for size-change notifications. It returns
// an idempotent unbind function that deregisters both notification
// channels and removes any overlay the binding created. unbind is safe
// to call multiple times and safe even if the surface had zero size at
// bind time.
func (b *Binder) Bind(s Surface, opts Options) (unbind func()) {
	return b.bind(s, opts).unbind
}

func (b *Binder) bind(s Surface, opts Options) *binding {
	bd := &binding{
		env:     b.env,
		surface: s,
		opts:    opts,
		precise: supportsClipPath(b.env),
	}
	if !bd.precise {
		Logger().Debug("clip contours unsupported, binding in fallback mode")
	}

	bd.sync()

	if stop, ok := b.env.ObserveResize(s, bd.sync); ok {
		bd.stops = append(bd.stops, stop)
	}
	bd.stops = append(bd.stops, b.env.OnViewportResize(bd.sync))
	return bd
}

// binding is the per-surface session state. It lives on the host
// environment's event goroutine; passes are triggered by discrete
// notification events and run to completion, so no locking is needed.
type binding struct {
	env     Environment
	surface Surface
	opts    Options
	precise bool

	width, height float64
	contour       string
	overlay       Node
	stops         []func()
	done          bool
}

// sync is the synchronization pass: read the surface's size, resolve
// the responsive radius against the current viewport, and apply the
// shape in precise or fallback mode. A zero-sized surface is skipped
// so a half-laid-out element never flashes a wrong contour.
func (bd *binding) sync() {
	if bd.done {
		return
	}
	w, h := bd.surface.Size()
	if w == 0 || h == 0 {
		return
	}
	bd.width, bd.height = w, h

	radius := bd.opts.Radius.Resolve(bd.env.ViewportWidth(), bd.opts.MobileBreakpoint)
	if bd.precise {
		bd.applyPrecise(w, h, radius)
	} else {
		bd.applyFallback(EffectiveRadius(w, h, radius))
	}
	Logger().Debug("squircle sync",
		"width", w, "height", h, "radius", radius, "precise", bd.precise)
}

// applyPrecise clips the surface to the exact contour and maintains
// the outline overlay.
func (bd *binding) applyPrecise(w, h, radius float64) {
	bd.contour = Generate(w, h, radius)
	clip := "path('" + bd.contour + "')"
	bd.surface.SetStyle("clip-path", clip)
	// Legacy name for hosts that only recognize the prefixed form.
	bd.surface.SetStyle("-webkit-clip-path", clip)

	bw := bd.opts.BorderWidth
	if bw <= 0 {
		bd.removeOverlay()
		return
	}
	if bd.overlay == nil {
		bd.overlay = bd.surface.AppendOverlay()
		bd.overlay.SetStyle("position", "absolute")
		bd.overlay.SetStyle("pointer-events", "none")
	}
	// The clip removes the outer half of a stroke drawn on the
	// boundary, so trace at double width and shift by half the border
	// to center the visible stroke on the true edge.
	doc := strokeSVG(w, h, radius, 2*bw, bd.opts.borderColor())
	bd.overlay.SetStyle("top", fmtCoord(bw/2)+"px")
	bd.overlay.SetStyle("left", fmtCoord(bw/2)+"px")
	bd.overlay.SetStyle("width", fmtCoord(w)+"px")
	bd.overlay.SetStyle("height", fmtCoord(h)+"px")
	bd.overlay.SetStyle("background-image", `url("`+dataURI(doc)+`")`)
}

// applyFallback approximates the shape with plain circular corners of
// the effective radius. No contour is used in this mode, so a
// requested border is a simple uniform outline.
func (bd *binding) applyFallback(r float64) {
	bd.contour = ""
	bd.surface.SetStyle("border-radius", fmtCoord(r)+"px")
	bd.surface.SetStyle("overflow", "hidden")
	if bd.opts.BorderWidth > 0 {
		bd.surface.SetStyle("border", fmtCoord(bd.opts.BorderWidth)+"px solid "+bd.opts.borderColor())
	} else {
		bd.surface.RemoveStyle("border")
	}
}

func (bd *binding) removeOverlay() {
	if bd.overlay != nil {
		bd.surface.RemoveOverlay(bd.overlay)
		bd.overlay = nil
	}
}

// unbind stops both notification channels and removes the overlay.
// Idempotent: later calls and later stray notifications are no-ops.
func (bd *binding) unbind() {
	if bd.done {
		return
	}
	bd.done = true
	for _, stop := range bd.stops {
		stop()
	}
	bd.stops = nil
	bd.removeOverlay()
	Logger().Debug("squircle unbind")
}

// setOptions replaces the binding's options and re-runs the
// synchronization pass. Used by attribute-driven elements.
func (bd *binding) setOptions(opts Options) {
	bd.opts = opts
	bd.sync()
}
