package squircle

import (
	"strconv"
	"strings"
)

// Element drives a binding declaratively through string attributes, for
// hosts that expose custom tag-like elements. Recognized attributes:
//
//	radius        single value ("24") or mobile/desktop pair ("16 32")
//	border-width  outline width
//	border-color  outline color
//
// Setting a recognized attribute while the element is attached
// re-triggers a synchronization pass. Unparseable values resolve to
// the zero value for the field.
type Element struct {
	surface Surface
	binder  *Binder
	bd      *binding
	attrs   map[string]string
}

// NewElement wraps a surface for attribute-driven binding in env. The
// element is created detached; call [Element.Attach] once the surface
// is live.
func NewElement(env Environment, s Surface) *Element {
	return &Element{
		surface: s,
		binder:  NewBinder(env),
		attrs:   make(map[string]string),
	}
}

// Attach starts the binding using the current attribute values. A
// second Attach without a Detach is a no-op.
func (e *Element) Attach() {
	if e.bd != nil {
		return
	}
	e.bd = e.binder.bind(e.surface, e.options())
}

// Detach tears the binding down. Safe to call repeatedly or before
// Attach.
func (e *Element) Detach() {
	if e.bd == nil {
		return
	}
	e.bd.unbind()
	e.bd = nil
}

// SetAttribute records an attribute value and, when attached,
// re-synchronizes the surface. Unrecognized attributes are stored but
// have no effect on the shape.
func (e *Element) SetAttribute(name, value string) {
	e.attrs[name] = value
	if e.bd != nil {
		e.bd.setOptions(e.options())
	}
}

// Attribute returns the recorded value of an attribute.
func (e *Element) Attribute(name string) string {
	return e.attrs[name]
}

// options parses the recognized attributes into binder options.
func (e *Element) options() Options {
	var opts Options
	if v, ok := e.attrs["radius"]; ok {
		opts.Radius = parseRadius(v)
	}
	if v, ok := e.attrs["border-width"]; ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			opts.BorderWidth = f
		}
	}
	if v, ok := e.attrs["border-color"]; ok {
		opts.BorderColor = strings.TrimSpace(v)
	}
	return opts
}

// parseRadius accepts "24" or a "mobile desktop" pair like "16 32".
func parseRadius(v string) Radius {
	fields := strings.Fields(v)
	switch len(fields) {
	case 1:
		if f, err := strconv.ParseFloat(fields[0], 64); err == nil {
			return Fixed(f)
		}
	case 2:
		m, errM := strconv.ParseFloat(fields[0], 64)
		d, errD := strconv.ParseFloat(fields[1], 64)
		if errM == nil && errD == nil {
			return Responsive(m, d)
		}
	}
	return Radius{}
}
