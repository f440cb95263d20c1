package squircle

// Node is a styleable node in the host environment.
type Node interface {
	// SetStyle sets an inline style property on the node.
	SetStyle(property, value string)

	// RemoveStyle clears an inline style property previously set.
	RemoveStyle(property string)
}

// Surface is a live-sized element the binder can shape. Any concrete
// host element type satisfying this capability set can be bound; the
// binder never depends on a particular element hierarchy.
type Surface interface {
	Node

	// Size returns the element's current rendered width and height in
	// device-independent units. A zero dimension means layout has not
	// settled yet.
	Size() (width, height float64)

	// AppendOverlay attaches a decorative child node to the element and
	// returns it. The binder styles the overlay but never reads it back.
	AppendOverlay() Node

	// RemoveOverlay detaches a node previously returned by
	// AppendOverlay.
	RemoveOverlay(Node)
}

// Environment captures the host capabilities the binder consumes. All
// methods must be callable in headless contexts; capability queries
// report false there rather than failing.
type Environment interface {
	// SupportsClipPath reports whether the host can apply an arbitrary
	// clip contour to an element. The binder queries this at most once
	// per binding.
	SupportsClipPath() bool

	// ViewportWidth returns the current viewport width, used to resolve
	// responsive radius settings.
	ViewportWidth() float64

	// ObserveResize registers fn to run whenever the surface's rendered
	// size changes, using the host's fine-grained observation primitive.
	// ok is false when no such primitive exists; the binder then relies
	// on the viewport channel alone. stop deregisters fn.
	ObserveResize(s Surface, fn func()) (stop func(), ok bool)

	// OnViewportResize registers fn to run whenever the viewport is
	// resized. This coarse channel is always available and also covers
	// breakpoint crossings that an element-size observer cannot see.
	OnViewportResize(fn func()) (stop func())
}

// supportsClipPath probes the environment's clip capability, absorbing
// panics: some hosts fail feature detection for unknown feature strings
// instead of reporting false, and an unknown host must resolve to
// fallback mode rather than take the binding down.
func supportsClipPath(env Environment) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			ok = false
			Logger().Warn("clip capability probe failed, assuming unsupported", "reason", r)
		}
	}()
	return env.SupportsClipPath()
}
