// Package svg models an SVG document as a tree of write-only elements
// and serializes it to markup. It is the rendering side of the service:
// geometry and attributes go in, standard SVG markup comes out. The
// session layer owns entity lifecycles and validation; this package only
// builds and renders trees.
package svg

import (
	"fmt"
	"os"
	"strings"
)

const xmlns = "http://www.w3.org/2000/svg"

// Drawing is the root of a document tree: a viewport size, a defs
// section for reusable definitions (gradients), and a list of children.
type Drawing struct {
	Width  Length
	Height Length

	defs     []*Element
	children []*Element
}

// NewDrawing creates an empty drawing with the given viewport size.
func NewDrawing(width, height Length) *Drawing {
	return &Drawing{Width: width, Height: height}
}

// Append adds a top-level child element.
func (d *Drawing) Append(el *Element) {
	d.children = append(d.children, el)
}

// Def adds an element to the <defs> section.
func (d *Drawing) Def(el *Element) {
	d.defs = append(d.defs, el)
}

// Children returns the top-level child elements in append order.
func (d *Drawing) Children() []*Element { return d.children }

// Defs returns the defs section elements in append order.
func (d *Drawing) Defs() []*Element { return d.defs }

// String serializes the drawing as a single-line SVG document.
func (d *Drawing) String() string {
	return d.Render(false)
}

// Render serializes the drawing, optionally indented for readability.
func (d *Drawing) Render(pretty bool) string {
	root := NewElement("svg").
		Set("xmlns", xmlns).
		Set("width", d.Width.String()).
		Set("height", d.Height.String())
	if len(d.defs) > 0 {
		defs := NewElement("defs")
		for _, el := range d.defs {
			defs.Append(el)
		}
		root.Append(defs)
	}
	for _, el := range d.children {
		root.Append(el)
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="utf-8"?>`)
	indent := ""
	if pretty {
		b.WriteByte('\n')
		indent = "  "
	}
	root.render(&b, indent, 0)
	return b.String()
}

// Save writes the serialized document to a file.
func (d *Drawing) Save(path string, pretty bool) error {
	if err := os.WriteFile(path, []byte(d.Render(pretty)), 0o644); err != nil {
		return fmt.Errorf("save drawing: %w", err)
	}
	return nil
}
