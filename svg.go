package squircle

import (
	"fmt"
	"net/url"
)

// ToSVG returns a standalone SVG document containing the squircle as a
// single filled path sized to width x height. The path data equals
// [Generate] for the same inputs.
func ToSVG(width, height, radius float64) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s"><path fill="#000" d="%s"/></svg>`,
		fmtCoord(width), fmtCoord(height), Generate(width, height, radius))
}

// ToDataURI returns the [ToSVG] document as a percent-encoded
// data:image/svg+xml reference, directly usable wherever an image URL
// is accepted. Percent encoding keeps the payload smaller than base64
// for SVG text and decodes back to the document verbatim.
func ToDataURI(width, height, radius float64) string {
	return dataURI(ToSVG(width, height, radius))
}

// dataURI wraps an SVG document as a percent-encoded data reference.
func dataURI(doc string) string {
	return "data:image/svg+xml," + url.PathEscape(doc)
}

// strokeSVG returns an SVG document tracing the squircle contour with a
// centered stroke and no fill. The binder renders its border overlay
// from this document.
func strokeSVG(width, height, radius, strokeWidth float64, color string) string {
	return fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s"><path fill="none" stroke="%s" stroke-width="%s" d="%s"/></svg>`,
		fmtCoord(width), fmtCoord(height), color, fmtCoord(strokeWidth),
		Generate(width, height, radius))
}
