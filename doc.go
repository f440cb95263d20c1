// Package squircle generates smooth rounded-rectangle ("squircle")
// outlines and keeps live surfaces clipped to them.
//
// # Overview
//
// A squircle is a rounded rectangle whose corners follow a
// superellipse-style curve instead of a circular arc, producing the
// flatter-then-sharper corner transition familiar from iOS app icons.
// The package has two layers:
//
//   - Path generation: pure functions that turn (width, height, radius)
//     into a closed piecewise-cubic contour, available as SVG path data
//     ([Generate]), a standalone SVG document ([ToSVG]), a
//     percent-encoded data URI ([ToDataURI]), or a raster coverage mask
//     ([Mask]).
//   - Adaptive binding: a [Binder] that watches a live-sized [Surface]
//     and re-applies the generated contour whenever the surface's
//     measured size changes, degrading to a plain border-radius when
//     the host [Environment] cannot apply arbitrary clip contours.
//
// # Quick Start
//
//	import "github.com/Taruunn/smooth-squircle"
//
//	// Path data for a 200x120 squircle with 24-unit corners:
//	d := squircle.Generate(200, 120, 24)
//
//	// Keep an element's shape in sync with its size:
//	unbind := squircle.NewBinder(env).Bind(el, squircle.Options{
//	    Radius:      squircle.Fixed(24),
//	    BorderWidth: 1,
//	})
//	defer unbind()
//
// # Concurrency
//
// Path generation is pure and safe for concurrent use. Bindings are
// confined to the host environment's single event goroutine: all
// notification callbacks and unbind calls must run there.
package squircle
